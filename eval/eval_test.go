package eval_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iascar-go/ccgcount/ccgio"
	"github.com/iascar-go/ccgcount/eval"
	"github.com/iascar-go/ccgcount/nnf"
)

func TestEvaluateSDNNFXor(t *testing.T) {
	f, err := os.Open("../testdata/xor.nnf")
	require.NoError(t, err)
	defer f.Close()
	g, err := nnf.Parse(f)
	require.NoError(t, err)

	count, err := eval.EvaluateSDNNF(g, nil)
	require.NoError(t, err)
	require.Equal(t, "2", count.String())

	count, err = eval.EvaluateSDNNF(g, []int{1})
	require.NoError(t, err)
	require.Equal(t, "1", count.String(), "p=true leaves exactly one XOR model (p,-q)")

	count, err = eval.EvaluateSDNNF(g, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, "0", count.String(), "p=true,q=true satisfies neither XOR disjunct")
}

func TestEvaluateSDNNFZeroChildGatesAreConstants(t *testing.T) {
	trueConst, err := nnf.Parse(strings.NewReader("nnf 2 0 1\nL 1\nA 0\n"))
	require.NoError(t, err)
	count, err := eval.EvaluateSDNNF(trueConst, nil)
	require.NoError(t, err)
	require.Equal(t, "2", count.String(), "A 0 is true regardless of var 1, so both its values are models")

	falseConst, err := nnf.Parse(strings.NewReader("nnf 2 0 1\nL 1\nO 1 0\n"))
	require.NoError(t, err)
	count, err = eval.EvaluateSDNNF(falseConst, nil)
	require.NoError(t, err)
	require.True(t, count.IsZero(), "O 0 is false regardless of var 1")
}

func TestEvaluateCCGContradictoryAssumptionsCollapseEvenForAbsentVariable(t *testing.T) {
	f, err := os.Open("../testdata/equiv.ccg")
	require.NoError(t, err)
	defer f.Close()
	_, g, err := ccgio.Read(f)
	require.NoError(t, err)

	// Variable 99 never occurs in equiv.ccg; the contradiction must still
	// collapse the result to 0 rather than being silently ignored.
	count, err := eval.EvaluateCCG(g, []int{99, -99})
	require.NoError(t, err)
	require.True(t, count.IsZero())
}

func TestEvaluateSDNNFNoSmoothMatchesSmoothWhenAlreadySmooth(t *testing.T) {
	f, err := os.Open("../testdata/xor.nnf")
	require.NoError(t, err)
	defer f.Close()
	g, err := nnf.Parse(f)
	require.NoError(t, err)

	smooth, err := eval.EvaluateSDNNF(g, nil)
	require.NoError(t, err)
	noSmooth, err := eval.EvaluateSDNNFNoSmooth(g, nil)
	require.NoError(t, err)
	require.Equal(t, smooth.String(), noSmooth.String(), "every Or child already mentions both xor variables, so gap-filling is a no-op")
}

func TestEvaluateCCGEquivalence(t *testing.T) {
	f, err := os.Open("../testdata/equiv.ccg")
	require.NoError(t, err)
	defer f.Close()
	_, g, err := ccgio.Read(f)
	require.NoError(t, err)

	count, err := eval.EvaluateCCG(g, nil)
	require.NoError(t, err)
	require.Equal(t, "2", count.String())

	countA, err := eval.EvaluateCCG(g, []int{1})
	require.NoError(t, err)
	countNotA, err := eval.EvaluateCCG(g, []int{-1})
	require.NoError(t, err)
	require.Equal(t, "1", countA.String())
	require.Equal(t, "1", countNotA.String())
	require.Equal(t, count.String(), countA.Add(countNotA).String(), "decomposable over a: halves sum to the unassumed count")
}

func TestEvaluateCCGIdempotentUnderDuplicates(t *testing.T) {
	f, err := os.Open("../testdata/onehot3.ccg")
	require.NoError(t, err)
	defer f.Close()
	_, g, err := ccgio.Read(f)
	require.NoError(t, err)

	single, err := eval.EvaluateCCG(g, []int{1})
	require.NoError(t, err)
	dup, err := eval.EvaluateCCG(g, []int{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, single.String(), dup.String())
}

func TestEvaluateCCGContradictionCollapsesToZero(t *testing.T) {
	f, err := os.Open("../testdata/onehot3.ccg")
	require.NoError(t, err)
	defer f.Close()
	_, g, err := ccgio.Read(f)
	require.NoError(t, err)

	count, err := eval.EvaluateCCG(g, []int{1, -1})
	require.NoError(t, err)
	require.True(t, count.IsZero())
}

func TestEvaluateCCGOneHotSummedOverVariable(t *testing.T) {
	f, err := os.Open("../testdata/onehot3.ccg")
	require.NoError(t, err)
	defer f.Close()
	_, g, err := ccgio.Read(f)
	require.NoError(t, err)

	base, err := eval.EvaluateCCG(g, nil)
	require.NoError(t, err)
	for _, v := range []int{1, 2, 3} {
		pos, err := eval.EvaluateCCG(g, []int{v})
		require.NoError(t, err)
		neg, err := eval.EvaluateCCG(g, []int{-v})
		require.NoError(t, err)
		require.Equal(t, base.String(), pos.Add(neg).String())
	}
}
