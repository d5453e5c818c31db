// Package ccg defines the in-memory Counting Graph: a topologically ordered
// node array plus an atom-name <-> variable-id mapping, and the structural
// invariants I1-I5 a valid CCG must satisfy.
//
// Errors:
//
//	ErrEmptyGraph      - a Graph with zero nodes (no root).
//	ErrChildOutOfOrder - a child index is not strictly less than its own
//	                     node's index (invariant I1).
//	ErrEmptyChildren   - an And/Or node declares zero children.
//	ErrBadLiteral      - a Leaf node's literal is zero.
//	ErrUnknownVariable - an occurring variable id has no atom-mapping
//	                     counterpart (invariant I5).
package ccg

import (
	"errors"

	"github.com/iascar-go/ccgcount/bigcount"
)

// Sentinel errors for Graph construction and validation.
var (
	// ErrEmptyGraph indicates a Graph has no nodes, so it has no root
	// (violates invariant I2).
	ErrEmptyGraph = errors.New("ccg: graph has no nodes")

	// ErrChildOutOfOrder indicates a child index is not strictly less than
	// its parent's own index (violates invariant I1).
	ErrChildOutOfOrder = errors.New("ccg: child index not less than parent index")

	// ErrEmptyChildren indicates an And/Or node was built with zero
	// children, which spec.md treats as fatal rather than a pass-through
	// or a neutral node.
	ErrEmptyChildren = errors.New("ccg: gate node has no children")

	// ErrBadLiteral indicates a Leaf node's literal is zero; literals are
	// non-zero signed variable ids by construction.
	ErrBadLiteral = errors.New("ccg: leaf literal is zero")

	// ErrUnknownVariable indicates a variable id occurring in a node has no
	// entry in the atom mapping (violates invariant I5).
	ErrUnknownVariable = errors.New("ccg: variable id has no atom mapping")
)

// Kind distinguishes the three CCG node variants.
type Kind uint8

const (
	// Leaf is a literal node: non-zero literal, precomputed count.
	Leaf Kind = iota
	// And is a conjunction gate: precomputed count is the product of its
	// children's precomputed counts.
	And
	// Or is a disjunction gate: precomputed count is the sum of its
	// children's precomputed counts.
	Or
)

// String renders the Kind the way the CCG text format spells it
// ("*" for And, "+" for Or; Leaf has no operator token).
func (k Kind) String() string {
	switch k {
	case And:
		return "*"
	case Or:
		return "+"
	default:
		return "L"
	}
}

// Node is a single tagged record in a Graph's topologically ordered
// sequence. Exactly one of the three Kind variants applies:
//
//   - Leaf: Literal is non-zero, Children is empty, Value is the
//     precomputed count (1 for a retained leaf, 0 if pruned at compile
//     time).
//   - And/Or: Literal is zero, Children holds child indices each strictly
//     less than this node's own index, Value is the precomputed product
//     or sum of the children's Values (invariant I4).
type Node struct {
	Kind     Kind
	Literal  int // non-zero for Leaf, 0 for And/Or
	Children []int
	Value    bigcount.Count
}

// Graph is a Counting Graph: a topologically ordered node array (index i's
// children are all < i, invariant I1; the last node is the unique root,
// invariant I2) plus the atom-name <-> variable-id mapping shared with its
// companion CCG/CNF files.
//
// Graph is not safe for concurrent mutation; once built it is read-only and
// safe for concurrent evaluation (eval.EvaluateCCG never mutates it).
type Graph struct {
	Nodes []Node
	// AtomToVar maps atom name to variable id (invariant: total function,
	// bijective on its image per spec.md's Atom mapping).
	AtomToVar map[string]int
	// VarToAtom is the inverse of AtomToVar, maintained alongside it.
	VarToAtom map[int]string
}

// NewGraph builds a Graph from nodes and an atom mapping and validates
// the structural invariants Validate checks (I1, I2, non-empty gates,
// non-zero literals, I5) before returning it; node values are not checked. Validation is mandatory, never optional (see
// SPEC_FULL.md's "Unsafe indexing" design note): a Graph that fails
// Validate is never handed back to the caller.
func NewGraph(nodes []Node, atomToVar map[string]int) (*Graph, error) {
	g := &Graph{
		Nodes:     nodes,
		AtomToVar: atomToVar,
		VarToAtom: invert(atomToVar),
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func invert(m map[string]int) map[int]string {
	inv := make(map[int]string, len(m))
	for name, id := range m {
		inv[id] = name
	}
	return inv
}

// Root returns the index of the unique root node (the last node), or
// ErrEmptyGraph if the Graph has no nodes.
func (g *Graph) Root() (int, error) {
	if len(g.Nodes) == 0 {
		return 0, ErrEmptyGraph
	}
	return len(g.Nodes) - 1, nil
}

// Len returns the node count N.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// CombineValues folds a gate's precomputed Value from its children's
// already-known Values (invariant I4): the product for And, the sum for
// Or. It is shared by ccgio (reconstructing a value omitted by the
// non-withvals emission mode) and by transpile (materializing a freshly
// pruned gate), so both sites agree on the one neutral-element policy: a
// child that evaporates during pruning contributes the multiplicative
// identity to And and the additive identity to Or.
func CombineValues(kind Kind, nodes []Node, children []int) bigcount.Count {
	acc := bigcount.One
	if kind == Or {
		acc = bigcount.Zero
	}
	for _, c := range children {
		if kind == And {
			acc = acc.Mul(nodes[c].Value)
		} else {
			acc = acc.Add(nodes[c].Value)
		}
	}
	return acc
}
