// Package transpile implements the sd-DNNF -> CCG compressor (spec.md
// §4.2): it projects an sd-DNNF onto the atoms known to the grounder,
// prunes unsupported leaves and their now-empty gates, renumbers children,
// precomputes node values, and emits a CCG.
//
// Grounded on original_source/src/transpiler.rs's single linear pass over
// NNF nodes maintaining an old-to-new id map (node_id_diffs), adapted from
// a clingo-backed grounder call to the grounder.Supported seam, and from
// Rust's Integer/HashMap idioms to bigcount.Count and Go maps. The two
// historical bugs the governing spec calls out by name are each a guarded
// branch with its own test: a gate with exactly one retained child becomes
// a pass-through (never an empty node) unless it is the root, and the root
// is never popped even when it becomes unary.
package transpile

import (
	"github.com/iascar-go/ccgcount/bigcount"
	"github.com/iascar-go/ccgcount/ccg"
	"github.com/iascar-go/ccgcount/ccgerr"
	"github.com/iascar-go/ccgcount/ccgio"
	"github.com/iascar-go/ccgcount/cnfmap"
	"github.com/iascar-go/ccgcount/internal/clog"
	"github.com/iascar-go/ccgcount/nnf"
	"github.com/iascar-go/ccgcount/xset"
)

var log = clog.New("transpile")

// Config bundles a transpile run's inputs: the parsed sd-DNNF, the CNF
// companion mapping (atom name -> CNF variable id, as cnfmap.Parse returns
// it; Transpile inverts it internally), and the grounder's reported
// supported-atom set.
type Config struct {
	NNF       *nnf.Graph
	CNFMap    cnfmap.Mapping
	Supported map[string]struct{}
}

// Result is a completed transpile: the CCG header fields spec.md §4.2
// specifies (N, E, V, log10C) plus the resulting Graph.
type Result struct {
	Header ccgio.Header
	Graph  *ccg.Graph
}

// sentinelUnset marks an old node index whose idDiff entry must never be
// dereferenced (it was dropped outright, not redirected).
const sentinelUnset = -1

// Transpile runs the compressor algorithm of spec.md §4.2 over cfg and
// returns the resulting CCG.
func Transpile(cfg Config) (Result, error) {
	if cfg.NNF == nil || len(cfg.NNF.Nodes) == 0 {
		return Result{}, ccgerr.ParseFailure.New("transpile: empty nnf graph")
	}
	varToAtom := invertCNFMap(cfg.CNFMap)

	oldNodes := cfg.NNF.Nodes
	n := len(oldNodes)
	rootOld := n - 1

	dropped := make([]bool, n)
	idDiff := make([]int, n)
	for i := range idDiff {
		idDiff[i] = sentinelUnset
	}

	newNodes := make([]ccg.Node, 0, n)
	atomToVar := make(map[string]int)
	newLeaves := 0
	var knownVars, supportedVars []int

	for i, old := range oldNodes {
		switch old.Kind {
		case nnf.Leaf:
			variable := absInt(old.Literal)
			name, known := varToAtom[variable]
			if !known {
				// Neither supported nor falsified-by-grounder: not known
				// to the program at all.
				dropped[i] = true
				continue
			}
			knownVars = append(knownVars, variable)

			_, supported := cfg.Supported[name]
			var val bigcount.Count
			switch {
			case supported:
				supportedVars = append(supportedVars, variable)
				val = bigcount.One
			case old.Literal > 0:
				// Falsified-by-grounder, positive occurrence: fixed false.
				val = bigcount.Zero
			default:
				// Falsified-by-grounder, negative occurrence: fixed true.
				val = bigcount.One
			}

			atomToVar[name] = variable
			if old.Literal > 0 {
				newLeaves++
			}
			idDiff[i] = len(newNodes)
			newNodes = append(newNodes, ccg.Node{Kind: ccg.Leaf, Literal: old.Literal, Value: val})

		case nnf.And, nnf.Or:
			kind := ccg.And
			if old.Kind == nnf.Or {
				kind = ccg.Or
			}
			isRoot := i == rootOld

			children := remapChildren(old.Children, dropped, idDiff, len(newNodes))

			switch {
			case len(children) == 0 && !isRoot:
				dropped[i] = true
			case len(children) == 0 && isRoot:
				return Result{}, ccgerr.MalformedNode.New("transpile: root has no retained children after pruning")
			case len(children) == 1 && !isRoot:
				// Historical bug (a): pass-through, never an empty node.
				idDiff[i] = children[0]
			default:
				// >=2 retained children, or a unary root (historical bug
				// (b): the root must never be popped; its single child's
				// value is copied up by materializing it here too).
				value := ccg.CombineValues(kind, newNodes, children)
				idDiff[i] = len(newNodes)
				newNodes = append(newNodes, ccg.Node{Kind: kind, Children: children, Value: value})
			}
		}
	}

	g, err := ccg.NewGraph(newNodes, atomToVar)
	if err != nil {
		return Result{}, ccgerr.MalformedNode.New(err.Error())
	}

	root, err := g.Root()
	if err != nil {
		return Result{}, err
	}
	edgeCount := 0
	for _, nd := range newNodes {
		edgeCount += len(nd.Children)
	}
	log.Debugf("transpiled %d nnf nodes into %d ccg nodes (%d nodes dropped)", n, len(newNodes), countDropped(dropped))
	if falsified := xset.Difference(knownVars, supportedVars); len(falsified) > 0 {
		log.Debugf("variables known to the cnf companion but not reported supported by the grounder: %v", falsified)
	}

	header := ccgio.Header{
		NodeCount:  len(newNodes),
		EdgeCount:  edgeCount,
		NewLeaves:  newLeaves,
		Log10Count: newNodes[root].Value.Log10(),
	}
	return Result{Header: header, Graph: g}, nil
}

// remapChildren filters an old gate's child list to the retained,
// renumbered children: dropped children disappear outright; surviving
// children (whether materialized or resolved through a pass-through) are
// remapped via idDiff. A remapped id that has not yet been registered in
// the growing node array (>= its current length) is dropped defensively,
// mirroring the original pipeline's own defensive filter.
func remapChildren(oldChildren []int, dropped []bool, idDiff []int, retainedSoFar int) []int {
	var out []int
	for _, oc := range oldChildren {
		if dropped[oc] {
			continue
		}
		nc := idDiff[oc]
		if nc < 0 || nc >= retainedSoFar {
			continue
		}
		out = append(out, nc)
	}
	return out
}

// invertCNFMap turns atom-name -> CNF-variable-id into CNF-variable-id ->
// atom-name, the direction the pruning pass actually needs (an NNF literal
// carries a variable id, not a name).
func invertCNFMap(m cnfmap.Mapping) map[int]string {
	out := make(map[int]string, len(m))
	for name, id := range m {
		out[id] = name
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func countDropped(dropped []bool) int {
	n := 0
	for _, d := range dropped {
		if d {
			n++
		}
	}
	return n
}
