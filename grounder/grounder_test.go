package grounder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iascar-go/ccgcount/grounder"
)

func TestFileSupportedAtoms(t *testing.T) {
	supported, err := (grounder.FileSupported{}).SupportedAtoms("../testdata/xor.supported")
	require.NoError(t, err)
	require.Contains(t, supported, "p")
	require.Contains(t, supported, "q")
	require.Len(t, supported, 2)
}

func TestFileSupportedMissingFile(t *testing.T) {
	_, err := (grounder.FileSupported{}).SupportedAtoms("../testdata/does-not-exist")
	require.Error(t, err)
}
