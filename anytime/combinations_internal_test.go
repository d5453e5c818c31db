package anytime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombinationsSizes(t *testing.T) {
	require.Len(t, combinations(5, 2), 10)
	require.Len(t, combinations(4, 0), 0)
	require.Len(t, combinations(4, 5), 0)
	require.Len(t, combinations(3, 3), 1)
}

func TestCombinationsAreSortedKSubsets(t *testing.T) {
	for _, combo := range combinations(4, 2) {
		require.Len(t, combo, 2)
		require.Less(t, combo[0], combo[1])
		for _, v := range combo {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 4)
		}
	}
}
