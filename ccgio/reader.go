// Package ccgio reads and writes the line-oriented CCG text format
// (spec.md §6.1):
//
//	ccg N E V log10C
//	c <atom-name> <variable-id>      (zero or more mapping lines)
//	<literal> <value>                (Leaf node)
//	<op> <m> <child_0> ... <child_{m-1}> [<value>]   (And/Or node, op in {*,+})
//
// Two historical child-index conventions are tolerated on read: plain
// decimal child ids, or the same with one optional trailing
// precomputed-value token (the "withvals" emission mode). Write supports
// both via the WithValues option.
package ccgio

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/iascar-go/ccgcount/bigcount"
	"github.com/iascar-go/ccgcount/ccg"
	"github.com/iascar-go/ccgcount/ccgerr"
)

// Header carries the four values on a CCG file's first line.
type Header struct {
	NodeCount  int
	EdgeCount  int
	NewLeaves  int
	Log10Count float64
}

// Read parses a full CCG file from r, returning its Header and the
// resulting *ccg.Graph. The Graph is validated (ccg.Graph.Validate) before
// being returned; validation failures surface as MalformedNode.
func Read(r io.Reader) (Header, *ccg.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	if !scanner.Scan() {
		return Header{}, nil, ccgerr.ReadFailure.New("empty ccg input")
	}
	header, err := parseHeader(scanner.Text())
	if err != nil {
		return Header{}, nil, err
	}

	atomToVar := make(map[string]int)
	nodes := make([]ccg.Node, 0, header.NodeCount)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "c ") {
			name, id, err := parseMappingLine(line)
			if err != nil {
				return Header{}, nil, err
			}
			atomToVar[name] = id
			continue
		}
		node, err := parseNodeLine(nodes, line, len(nodes))
		if err != nil {
			return Header{}, nil, err
		}
		nodes = append(nodes, node)
	}
	if err := scanner.Err(); err != nil {
		return Header{}, nil, ccgerr.ReadFailure.New(err.Error())
	}

	g, err := ccg.NewGraph(nodes, atomToVar)
	if err != nil {
		return Header{}, nil, ccgerr.MalformedNode.New(err.Error())
	}
	return header, g, nil
}

func parseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 || fields[0] != "ccg" {
		return Header{}, ccgerr.ParseFailure.New(fmt.Sprintf("bad ccg header: %q", line))
	}
	n, err1 := strconv.Atoi(fields[1])
	e, err2 := strconv.Atoi(fields[2])
	v, err3 := strconv.Atoi(fields[3])
	l, err4 := strconv.ParseFloat(fields[4], 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Header{}, ccgerr.ParseFailure.New(fmt.Sprintf("bad ccg header fields: %q", line))
	}
	return Header{NodeCount: n, EdgeCount: e, NewLeaves: v, Log10Count: l}, nil
}

// parseMappingLine tokenizes "c <atom-name> <variable-id>" per spec.md
// §6.1's own mapping-line order (name before id — the opposite order from
// the CNF companion format, see cnfmap's doc comment).
func parseMappingLine(line string) (name string, id int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", 0, ccgerr.ParseFailure.New(fmt.Sprintf("bad ccg mapping line: %q", line))
	}
	id, convErr := strconv.Atoi(fields[2])
	if convErr != nil {
		return "", 0, ccgerr.ParseFailure.New(fmt.Sprintf("bad ccg mapping id: %q", line))
	}
	return fields[1], id, nil
}

// parseNodeLine distinguishes a Leaf line ("<literal> <value>") from a gate
// line ("<op> <m> <children...> [<value>]") by whether the first token is
// an operator glyph.
func parseNodeLine(parsed []ccg.Node, line string, ownIndex int) (ccg.Node, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ccg.Node{}, ccgerr.MalformedNode.New("empty node line")
	}

	switch fields[0] {
	case "*", "+":
		return parseGateLine(parsed, fields, ownIndex)
	default:
		return parseLeafLine(fields)
	}
}

func parseLeafLine(fields []string) (ccg.Node, error) {
	if len(fields) != 2 {
		return ccg.Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("leaf node wrong arity: %v", fields))
	}
	lit, err1 := strconv.Atoi(fields[0])
	val, err2 := strconv.ParseInt(fields[1], 10, 64)
	if err1 != nil || err2 != nil || lit == 0 {
		return ccg.Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("bad leaf node: %v", fields))
	}
	return ccg.Node{Kind: ccg.Leaf, Literal: lit, Value: bigcount.FromInt64(val)}, nil
}

func parseGateLine(parsed []ccg.Node, fields []string, ownIndex int) (ccg.Node, error) {
	kind := ccg.And
	if fields[0] == "+" {
		kind = ccg.Or
	}
	if len(fields) < 2 {
		return ccg.Node{}, ccgerr.MalformedNode.New("gate node missing child count")
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil || m <= 0 {
		return ccg.Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("gate node bad/zero child count %q", fields[1]))
	}

	rest := fields[2:]
	hasTrailingValue := len(rest) == m+1
	if !hasTrailingValue && len(rest) != m {
		return ccg.Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("gate node declares %d children, found %d tokens", m, len(rest)))
	}

	children := make([]int, m)
	for i := 0; i < m; i++ {
		c, err := strconv.Atoi(rest[i])
		if err != nil {
			return ccg.Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("bad child index %q", rest[i]))
		}
		if c >= ownIndex {
			return ccg.Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("child index %d not less than own index %d", c, ownIndex))
		}
		children[i] = c
	}

	var value bigcount.Count
	if hasTrailingValue {
		v, ok := new(big.Int).SetString(rest[m], 10)
		if !ok {
			return ccg.Node{}, ccgerr.MalformedNode.New(fmt.Sprintf("bad trailing value %q", rest[m]))
		}
		value = bigcount.FromBigInt(v)
	} else {
		value = ccg.CombineValues(kind, parsed, children)
	}

	return ccg.Node{Kind: kind, Children: children, Value: value}, nil
}
