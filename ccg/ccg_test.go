package ccg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iascar-go/ccgcount/bigcount"
	"github.com/iascar-go/ccgcount/ccg"
)

func validEquivNodes() []ccg.Node {
	return []ccg.Node{
		{Kind: ccg.Leaf, Literal: 1, Value: bigcount.One},
		{Kind: ccg.Leaf, Literal: -1, Value: bigcount.One},
		{Kind: ccg.Leaf, Literal: 2, Value: bigcount.One},
		{Kind: ccg.Leaf, Literal: -2, Value: bigcount.One},
		{Kind: ccg.And, Children: []int{0, 2}, Value: bigcount.One},
		{Kind: ccg.And, Children: []int{1, 3}, Value: bigcount.One},
		{Kind: ccg.Or, Children: []int{4, 5}, Value: bigcount.FromInt64(2)},
	}
}

func TestNewGraphValid(t *testing.T) {
	g, err := ccg.NewGraph(validEquivNodes(), map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)
	require.Equal(t, 7, g.Len())
	root, err := g.Root()
	require.NoError(t, err)
	require.Equal(t, 6, root)
	require.Equal(t, "a", g.VarToAtom[1])
}

func TestNewGraphEmpty(t *testing.T) {
	_, err := ccg.NewGraph(nil, nil)
	require.ErrorIs(t, err, ccg.ErrEmptyGraph)
}

func TestNewGraphChildOutOfOrder(t *testing.T) {
	nodes := []ccg.Node{
		{Kind: ccg.Leaf, Literal: 1, Value: bigcount.One},
		{Kind: ccg.And, Children: []int{1}, Value: bigcount.One}, // self-reference
	}
	_, err := ccg.NewGraph(nodes, map[string]int{"a": 1})
	require.ErrorIs(t, err, ccg.ErrChildOutOfOrder)
}

func TestNewGraphEmptyChildren(t *testing.T) {
	nodes := []ccg.Node{
		{Kind: ccg.Leaf, Literal: 1, Value: bigcount.One},
		{Kind: ccg.And, Children: nil, Value: bigcount.One},
	}
	_, err := ccg.NewGraph(nodes, map[string]int{"a": 1})
	require.ErrorIs(t, err, ccg.ErrEmptyChildren)
}

func TestNewGraphBadLiteral(t *testing.T) {
	nodes := []ccg.Node{{Kind: ccg.Leaf, Literal: 0, Value: bigcount.One}}
	_, err := ccg.NewGraph(nodes, map[string]int{"a": 1})
	require.ErrorIs(t, err, ccg.ErrBadLiteral)
}

func TestNewGraphUnknownVariable(t *testing.T) {
	nodes := []ccg.Node{{Kind: ccg.Leaf, Literal: 1, Value: bigcount.One}}
	_, err := ccg.NewGraph(nodes, map[string]int{"b": 2})
	require.ErrorIs(t, err, ccg.ErrUnknownVariable)
}

func TestCombineValues(t *testing.T) {
	nodes := validEquivNodes()
	and := ccg.CombineValues(ccg.And, nodes, []int{0, 2})
	require.Equal(t, "1", and.String())
	or := ccg.CombineValues(ccg.Or, nodes, []int{4, 5})
	require.Equal(t, "2", or.String())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "*", ccg.And.String())
	require.Equal(t, "+", ccg.Or.String())
	require.Equal(t, "L", ccg.Leaf.String())
}
