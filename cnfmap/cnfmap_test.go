package cnfmap_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iascar-go/ccgcount/cnfmap"
)

func TestParseXORCompanion(t *testing.T) {
	f, err := os.Open("../testdata/xor.cnf")
	require.NoError(t, err)
	defer f.Close()

	m, err := cnfmap.Parse(f)
	require.NoError(t, err)
	require.Equal(t, 1, m["p"])
	require.Equal(t, 2, m["q"])
}

func TestParseIgnoresBareComments(t *testing.T) {
	m, err := cnfmap.Parse(strings.NewReader("c\nc 3 r\np cnf 1 0\n"))
	require.NoError(t, err)
	require.Equal(t, 3, m["r"])
	require.Len(t, m, 1)
}

func TestParseBadIntegerIsFatal(t *testing.T) {
	_, err := cnfmap.Parse(strings.NewReader("c x r\n"))
	require.Error(t, err)
}
