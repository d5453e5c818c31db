// Package nnf defines the in-memory sd-DNNF graph: a topologically ordered
// node array whose Or nodes additionally carry a decision variable, plus
// the header's total variable count used for smooth gap-filling at
// evaluation time (see eval.EvaluateSDNNF).
package nnf

import "github.com/iascar-go/ccgcount/xset"

// Kind distinguishes the three sd-DNNF node variants.
type Kind uint8

const (
	// Leaf is a literal node.
	Leaf Kind = iota
	// And is a decomposable conjunction gate.
	And
	// Or is a deterministic, smooth disjunction gate.
	Or
)

// Node is a single sd-DNNF node. DecisionVar is only meaningful for Or
// nodes (spec.md §6.2's "O <dvar> <k> ..." form); it is metadata the
// compressor consults but the evaluator does not need. Vars holds the
// sorted, deduplicated set of variable ids mentioned anywhere in this
// node's subgraph, maintained incrementally as the graph is parsed
// (spec.md §4.1 "each node additionally carries the set of variables
// mentioned in its subgraph").
type Node struct {
	Kind        Kind
	Literal     int // non-zero for Leaf
	DecisionVar int // meaningful for Or only
	Children    []int
	Vars        []int
}

// Graph is an sd-DNNF: a topologically ordered node array plus the header's
// declared variable count (used at the root for the final smoothing
// shift-left, spec.md §4.1).
type Graph struct {
	Nodes    []Node
	VarCount int
}

// Root returns the index of the unique root node (the last node).
func (g *Graph) Root() int {
	return len(g.Nodes) - 1
}

// varsOfLiteral returns the single-element variable set for a literal leaf.
func varsOfLiteral(literal int) []int {
	v := literal
	if v < 0 {
		v = -v
	}
	return []int{v}
}

// unionChildVars computes the merged, sorted variable set of a gate node
// from its children's own Vars sets.
func unionChildVars(nodes []Node, children []int) []int {
	var acc []int
	for _, c := range children {
		acc = xset.Union(acc, nodes[c].Vars)
	}
	return acc
}
