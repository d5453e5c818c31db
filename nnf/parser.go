// File: parser.go
// Role: reads the line-oriented sd-DNNF (NNF) text format (spec.md §6.2).
//
// Format recap:
//
//	nnf <node_count> <edge_count> <var_count>
//	L <literal>
//	A <k> <c_0> ... <c_{k-1}>
//	O <dvar> <k> <c_0> ... <c_{k-1}>
package nnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iascar-go/ccgcount/ccgerr"
	"github.com/iascar-go/ccgcount/xset"
)

// Parse reads an sd-DNNF from r and returns the resulting Graph. Any
// structural violation (missing header fields, wrong arity, out-of-range
// child index) is fatal: Parse never returns a partial Graph alongside an
// error.
func Parse(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	if !scanner.Scan() {
		return nil, ccgerr.ReadFailure.New("empty nnf input")
	}
	nodeCount, _, varCount, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, nodeCount)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		node, err := parseLine(nodes, line, len(nodes))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if err := scanner.Err(); err != nil {
		return nil, ccgerr.ReadFailure.New(err.Error())
	}
	if len(nodes) == 0 {
		return nil, ccgerr.ParseFailure.New("nnf has no nodes")
	}

	return &Graph{Nodes: nodes, VarCount: varCount}, nil
}

// parseHeader tokenizes "nnf <node_count> <edge_count> <var_count>".
func parseHeader(line string) (nodeCount, edgeCount, varCount int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "nnf" {
		return 0, 0, 0, ccgerr.ParseFailure.New(fmt.Sprintf("bad nnf header: %q", line))
	}
	vals := make([]int, 3)
	for i, f := range fields[1:] {
		n, convErr := strconv.Atoi(f)
		if convErr != nil {
			return 0, 0, 0, ccgerr.ParseFailure.New(fmt.Sprintf("bad nnf header integer %q", f))
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], nil
}

// parseLine tokenizes one L/A/O node line. ownIndex is the index this node
// will occupy, used to validate invariant I1 against already-parsed nodes.
func parseLine(parsed []Node, line string, ownIndex int) (Node, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Node{}, ccgerr.MalformedNode.New("empty node line")
	}

	switch fields[0] {
	case "L":
		if len(fields) != 2 {
			return Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("L node wrong arity: %q", line))
		}
		lit, err := strconv.Atoi(fields[1])
		if err != nil || lit == 0 {
			return Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("L node bad literal: %q", line))
		}
		return Node{Kind: Leaf, Literal: lit, Vars: varsOfLiteral(lit)}, nil

	case "A":
		children, err := parseChildren(fields[1:], ownIndex)
		if err != nil {
			return Node{}, err
		}
		if err := checkDecomposable(parsed, children); err != nil {
			return Node{}, err
		}
		return Node{Kind: And, Children: children, Vars: unionChildVars(parsed, children)}, nil

	case "O":
		if len(fields) < 2 {
			return Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("O node missing decision var: %q", line))
		}
		dvar, err := strconv.Atoi(fields[1])
		if err != nil {
			return Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("O node bad decision var: %q", line))
		}
		children, err := parseChildren(fields[2:], ownIndex)
		if err != nil {
			return Node{}, err
		}
		return Node{Kind: Or, DecisionVar: dvar, Children: children, Vars: unionChildVars(parsed, children)}, nil

	default:
		return Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("unknown node tag %q", fields[0]))
	}
}

// checkDecomposable enforces the sd-DNNF decomposability property (GLOSSARY:
// "And gates are decomposable: child variable sets are disjoint") pairwise
// over an And node's already-parsed children, using each child's own Vars
// set recorded when it was parsed.
func checkDecomposable(parsed []Node, children []int) error {
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			if shared := xset.Intersect(parsed[children[i]].Vars, parsed[children[j]].Vars); len(shared) > 0 {
				return ccgerr.MalformedNode.New(fmt.Sprintf("A node children %d and %d share variable %d: not decomposable", children[i], children[j], shared[0]))
			}
		}
	}
	return nil
}

// parseChildren parses "<k> <c_0> ... <c_{k-1}>" and validates arity and
// invariant I1 (every child index strictly less than ownIndex). k == 0 is
// legal: an "A 0" is the empty product (the true constant, count 1) and an
// "O 0" is the empty sum (the false constant, count 0), per
// original_source/src/counting.rs's count_on_nnf (an And with no children
// multiplies nothing and stays at its accumulator's identity 1; an Or with
// no children sums nothing and stays at 0). Knowledge compilers emit these
// routinely; only the post-compression CCG evaluator treats an empty child
// list as malformed (ccg.NewGraph), not the raw sd-DNNF parser.
func parseChildren(fields []string, ownIndex int) ([]int, error) {
	if len(fields) == 0 {
		return nil, ccgerr.MalformedNode.New("gate node missing child count")
	}
	k, err := strconv.Atoi(fields[0])
	if err != nil || k < 0 {
		return nil, ccgerr.MalformedNode.New(fmt.Sprintf("gate node bad child count %q", fields[0]))
	}
	if len(fields)-1 != k {
		return nil, ccgerr.MalformedNode.New(fmt.Sprintf("gate node declares %d children, found %d", k, len(fields)-1))
	}
	children := make([]int, k)
	for i, f := range fields[1:] {
		c, err := strconv.Atoi(f)
		if err != nil {
			return nil, ccgerr.MalformedNode.New(fmt.Sprintf("bad child index %q", f))
		}
		if c >= ownIndex {
			return nil, ccgerr.MalformedNode.New(fmt.Sprintf("child index %d not less than own index %d", c, ownIndex))
		}
		children[i] = c
	}
	return children, nil
}
