package transpile_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iascar-go/ccgcount/bigcount"
	"github.com/iascar-go/ccgcount/cnfmap"
	"github.com/iascar-go/ccgcount/eval"
	"github.com/iascar-go/ccgcount/grounder"
	"github.com/iascar-go/ccgcount/nnf"
	"github.com/iascar-go/ccgcount/transpile"
)

func TestTranspileXORFullySupportedRoundTrips(t *testing.T) {
	nf, err := os.Open("../testdata/xor.nnf")
	require.NoError(t, err)
	defer nf.Close()
	nnfGraph, err := nnf.Parse(nf)
	require.NoError(t, err)

	cf, err := os.Open("../testdata/xor.cnf")
	require.NoError(t, err)
	defer cf.Close()
	cnfMap, err := cnfmap.Parse(cf)
	require.NoError(t, err)

	supported, err := (grounder.FileSupported{}).SupportedAtoms("../testdata/xor.supported")
	require.NoError(t, err)

	result, err := transpile.Transpile(transpile.Config{NNF: nnfGraph, CNFMap: cnfMap, Supported: supported})
	require.NoError(t, err)
	require.Equal(t, 7, result.Header.NodeCount, "no pruning when every atom is supported")

	count, err := eval.EvaluateCCG(result.Graph, nil)
	require.NoError(t, err)
	require.Equal(t, "2", count.String())
}

func TestTranspilePassThroughSingleRetainedChild(t *testing.T) {
	// a ∨ c, where b's gate (a ∧ b) loses b to pruning and must resolve to
	// a pass-through onto a's retained node, not an empty node.
	nnfGraph := &nnf.Graph{
		VarCount: 3,
		Nodes: []nnf.Node{
			{Kind: nnf.Leaf, Literal: 1, Vars: []int{1}}, // a
			{Kind: nnf.Leaf, Literal: 2, Vars: []int{2}}, // b, unknown to the program
			{Kind: nnf.And, Children: []int{0, 1}, Vars: []int{1, 2}},
			{Kind: nnf.Leaf, Literal: 3, Vars: []int{3}}, // c
			{Kind: nnf.Or, Children: []int{2, 3}, Vars: []int{1, 2, 3}},
		},
	}
	cnfMap := cnfmap.Mapping{"a": 1, "c": 3} // b has no CNF mapping at all
	supported := map[string]struct{}{"a": {}, "c": {}}

	result, err := transpile.Transpile(transpile.Config{NNF: nnfGraph, CNFMap: cnfMap, Supported: supported})
	require.NoError(t, err)
	// Expect 2 leaves (a, c) and the root Or directly over both, the
	// pass-through gate never materialized as an empty node.
	require.Equal(t, 3, result.Header.NodeCount)

	count, err := eval.EvaluateCCG(result.Graph, nil)
	require.NoError(t, err)
	require.Equal(t, "2", count.String(), "the CCG evaluator does no gap-filling: the root Or sums its two leaf values, 1 + 1")
}

func TestTranspileRootNeverPoppedWhenUnary(t *testing.T) {
	nnfGraph := &nnf.Graph{
		VarCount: 2,
		Nodes: []nnf.Node{
			{Kind: nnf.Leaf, Literal: 1, Vars: []int{1}}, // a, supported
			{Kind: nnf.Leaf, Literal: 2, Vars: []int{2}}, // b, unknown to the program
			{Kind: nnf.And, Children: []int{0, 1}, Vars: []int{1, 2}},
		},
	}
	cnfMap := cnfmap.Mapping{"a": 1}
	supported := map[string]struct{}{"a": {}}

	result, err := transpile.Transpile(transpile.Config{NNF: nnfGraph, CNFMap: cnfMap, Supported: supported})
	require.NoError(t, err)
	require.Equal(t, 2, result.Header.NodeCount, "root must still be materialized, not collapsed away")

	count, err := eval.EvaluateCCG(result.Graph, nil)
	require.NoError(t, err)
	require.Equal(t, "1", count.String())
}

func TestTranspileRootWithNoRetainedChildrenIsFatal(t *testing.T) {
	nnfGraph := &nnf.Graph{
		VarCount: 2,
		Nodes: []nnf.Node{
			{Kind: nnf.Leaf, Literal: 1, Vars: []int{1}},
			{Kind: nnf.Leaf, Literal: 2, Vars: []int{2}},
			{Kind: nnf.And, Children: []int{0, 1}, Vars: []int{1, 2}},
		},
	}
	cnfMap := cnfmap.Mapping{} // neither atom known
	supported := map[string]struct{}{}

	_, err := transpile.Transpile(transpile.Config{NNF: nnfGraph, CNFMap: cnfMap, Supported: supported})
	require.Error(t, err)
}

func TestTranspileFalsifiedByGrounderLeafIsZero(t *testing.T) {
	nnfGraph := &nnf.Graph{
		VarCount: 1,
		Nodes: []nnf.Node{
			{Kind: nnf.Leaf, Literal: 1, Vars: []int{1}},
		},
	}
	cnfMap := cnfmap.Mapping{"a": 1}
	supported := map[string]struct{}{} // known to CNF but not supported by grounder

	result, err := transpile.Transpile(transpile.Config{NNF: nnfGraph, CNFMap: cnfMap, Supported: supported})
	require.NoError(t, err)
	require.Equal(t, bigcount.Zero.String(), result.Graph.Nodes[0].Value.String())
}
