// File: evaluate_sdnnf.go
// Role: the "Propositional (smooth)" evaluator variant of spec.md §4.1,
// used when counting directly over an sd-DNNF rather than a compressed
// CCG. Each Or node's children are smoothed against the node's merged
// variable set before summing, and the root is smoothed once more against
// the header's declared variable count.
package eval

import (
	"github.com/iascar-go/ccgcount/bigcount"
	"github.com/iascar-go/ccgcount/ccgerr"
	"github.com/iascar-go/ccgcount/nnf"
	"github.com/iascar-go/ccgcount/xset"
)

// EvaluateSDNNF computes a model count directly over an sd-DNNF, applying
// the smooth gap-filling factor 2^(|V|-|Vi|) at every Or node and once more
// at the root against the header's var_count, per spec.md §4.1.
func EvaluateSDNNF(g *nnf.Graph, assumptions []int) (bigcount.Count, error) {
	if g == nil || len(g.Nodes) == 0 {
		return bigcount.Zero, ccgerr.ParseFailure.New("empty sd-DNNF")
	}
	if xset.HasContradiction(assumptions) {
		return bigcount.Zero, nil
	}
	assumed := toSet(assumptions)

	results := make([]bigcount.Count, len(g.Nodes))
	for i, node := range g.Nodes {
		switch node.Kind {
		case nnf.Leaf:
			if assumed[-node.Literal] {
				results[i] = bigcount.Zero
			} else {
				results[i] = bigcount.One
			}
		case nnf.And:
			acc := bigcount.One
			for _, c := range node.Children {
				acc = acc.Mul(results[c])
			}
			results[i] = acc
		case nnf.Or:
			merged := len(node.Vars)
			acc := bigcount.Zero
			for _, c := range node.Children {
				gap := merged - len(g.Nodes[c].Vars)
				contribution := results[c]
				if gap > 0 {
					contribution = contribution.Lsh(uint(gap))
				}
				acc = acc.Add(contribution)
			}
			results[i] = acc
		}
	}

	root := g.Root()
	rootGap := g.VarCount - len(g.Nodes[root].Vars)
	result := results[root]
	if rootGap > 0 {
		result = result.Lsh(uint(rootGap))
	}
	return result, nil
}

// EvaluateSDNNFNoSmooth evaluates an sd-DNNF the same way EvaluateCCG
// evaluates a compressed CCG: no gap-filling factor at Or nodes or the
// root. This is the "count-nnf-asp" entry point's semantics: an sd-DNNF
// compiled from a supported-model encoding whose leaves already fully
// account for every relevant variable needs no smoothing correction.
func EvaluateSDNNFNoSmooth(g *nnf.Graph, assumptions []int) (bigcount.Count, error) {
	if g == nil || len(g.Nodes) == 0 {
		return bigcount.Zero, ccgerr.ParseFailure.New("empty sd-DNNF")
	}
	if xset.HasContradiction(assumptions) {
		return bigcount.Zero, nil
	}
	assumed := toSet(assumptions)

	results := make([]bigcount.Count, len(g.Nodes))
	for i, node := range g.Nodes {
		switch node.Kind {
		case nnf.Leaf:
			if assumed[-node.Literal] {
				results[i] = bigcount.Zero
			} else {
				results[i] = bigcount.One
			}
		case nnf.And:
			acc := bigcount.One
			for _, c := range node.Children {
				acc = acc.Mul(results[c])
			}
			results[i] = acc
		case nnf.Or:
			acc := bigcount.Zero
			for _, c := range node.Children {
				acc = acc.Add(results[c])
			}
			results[i] = acc
		}
	}
	return results[g.Root()], nil
}
