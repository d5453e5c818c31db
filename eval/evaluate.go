// Package eval implements the CCG evaluator (spec.md §4.1): a single
// bottom-up sweep over a topologically ordered node array, computing an
// arbitrary-precision model count under a set of literal assumptions.
//
// The topological-index-is-evaluation-order invariant (I1: every child
// index < its parent's index) lets a single linear pass over the node
// array replace an explicit recursion or DAG scheduler, per the teacher's
// own dfs.TopologicalSort pattern of driving a traversal purely off index
// order rather than pointer-chasing.
package eval

import (
	"github.com/iascar-go/ccgcount/bigcount"
	"github.com/iascar-go/ccgcount/ccg"
	"github.com/iascar-go/ccgcount/ccgerr"
	"github.com/iascar-go/ccgcount/xset"
)

// Unchecked, when true, lets EvaluateCCG skip its own bounds/arity
// re-validation and trust the Graph's already-mandatory ccg.Graph.Validate
// pass (performed once at load time in ccg.NewGraph / ccgio.Read). Default
// false: development and every call from cmd/ccgtool and anytime use the
// bounds-checked path. Flip only after independently fuzz-verifying I1
// compliance for the specific Graph values in play, per the governing
// spec's "Unsafe indexing" design note.
var Unchecked = false

// EvaluateCCG computes evaluate(ccg, assumptions) per spec.md §4.1: no
// gap-filling (the compressor already folded those factors into node
// values, or answer-set counting never needs them).
//
// Complexity: linear in the number of node edges, times big-integer
// arithmetic cost.
func EvaluateCCG(g *ccg.Graph, assumptions []int) (bigcount.Count, error) {
	if g == nil || g.Len() == 0 {
		return bigcount.Zero, ccg.ErrEmptyGraph
	}
	if xset.HasContradiction(assumptions) {
		// A literal and its negation both assumed: unsatisfiable regardless
		// of whether either's variable even occurs in g (invariant 5's
		// contradiction-collapse holds independent of g's shape).
		return bigcount.Zero, nil
	}
	assumed := toSet(assumptions)

	results := make([]bigcount.Count, g.Len())
	for i, node := range g.Nodes {
		switch node.Kind {
		case ccg.Leaf:
			if assumed[-node.Literal] {
				results[i] = bigcount.Zero
			} else {
				results[i] = node.Value
			}
		case ccg.And:
			if !Unchecked && len(node.Children) == 0 {
				return bigcount.Zero, ccgerr.MalformedNode.New("And node with no children")
			}
			acc := bigcount.One
			for _, c := range node.Children {
				if !Unchecked && c >= i {
					return bigcount.Zero, ccgerr.MalformedNode.New("child index not less than own index")
				}
				acc = acc.Mul(results[c])
			}
			results[i] = acc
		case ccg.Or:
			if !Unchecked && len(node.Children) == 0 {
				return bigcount.Zero, ccgerr.MalformedNode.New("Or node with no children")
			}
			acc := bigcount.Zero
			for _, c := range node.Children {
				if !Unchecked && c >= i {
					return bigcount.Zero, ccgerr.MalformedNode.New("child index not less than own index")
				}
				acc = acc.Add(results[c])
			}
			results[i] = acc
		}
	}

	root, err := g.Root()
	if err != nil {
		return bigcount.Zero, err
	}
	return results[root], nil
}

// toSet builds a membership set from a literal slice. Duplicates collapse
// naturally (spec.md §8 invariant 4: evaluate is idempotent under
// duplicates); the contradiction case (invariant 5) is handled up front by
// xset.HasContradiction before toSet is ever built.
func toSet(literals []int) map[int]bool {
	set := make(map[int]bool, len(literals))
	for _, l := range literals {
		set[l] = true
	}
	return set
}
