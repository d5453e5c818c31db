package ccgio_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iascar-go/ccgcount/ccgio"
)

func TestReadEquiv(t *testing.T) {
	f, err := os.Open("../testdata/equiv.ccg")
	require.NoError(t, err)
	defer f.Close()

	header, g, err := ccgio.Read(f)
	require.NoError(t, err)
	require.Equal(t, 7, header.NodeCount)
	require.Equal(t, 1, g.AtomToVar["a"])
	root, err := g.Root()
	require.NoError(t, err)
	require.Equal(t, "2", g.Nodes[root].Value.String())
}

func TestRoundTripWithAndWithoutValues(t *testing.T) {
	f, err := os.Open("../testdata/equiv.ccg")
	require.NoError(t, err)
	defer f.Close()
	header, g, err := ccgio.Read(f)
	require.NoError(t, err)

	var plain bytes.Buffer
	require.NoError(t, ccgio.Write(&plain, header, g))
	_, g2, err := ccgio.Read(&plain)
	require.NoError(t, err)
	root2, err := g2.Root()
	require.NoError(t, err)
	require.Equal(t, "2", g2.Nodes[root2].Value.String())

	var withVals bytes.Buffer
	require.NoError(t, ccgio.Write(&withVals, header, g, ccgio.WithValues(true)))
	require.Contains(t, withVals.String(), "* 2 0 2 1\n")
	_, g3, err := ccgio.Read(&withVals)
	require.NoError(t, err)
	root3, err := g3.Root()
	require.NoError(t, err)
	require.Equal(t, "2", g3.Nodes[root3].Value.String())
}

func TestReadRejectsChildOutOfOrder(t *testing.T) {
	bad := "ccg 2 1 0 0\n1 1\n* 1 1\n"
	_, _, err := ccgio.Read(bytes.NewBufferString(bad))
	require.Error(t, err)
}
