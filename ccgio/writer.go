// File: writer.go
// Role: emits the CCG text format (spec.md §6.1) from a built ccg.Graph.
package ccgio

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/iascar-go/ccgcount/ccg"
)

// WriteOption configures Write's emission mode.
type WriteOption func(*writeConfig)

type writeConfig struct {
	withValues bool
}

// WithValues enables the "withvals" emission mode (spec.md §9 Open
// Question 3): every gate line carries a trailing precomputed-value token.
// Default is off, matching the non-withvals reader being the common case
// in the corpus this format was grounded on.
func WithValues(on bool) WriteOption {
	return func(c *writeConfig) { c.withValues = on }
}

// Write serializes header, then the mapping lines (sorted by atom name for
// deterministic output), then every node in index order.
func Write(w io.Writer, header Header, g *ccg.Graph, opts ...WriteOption) error {
	cfg := writeConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "ccg %d %d %d %g\n", header.NodeCount, header.EdgeCount, header.NewLeaves, header.Log10Count); err != nil {
		return err
	}

	names := make([]string, 0, len(g.AtomToVar))
	for name := range g.AtomToVar {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(bw, "c %s %d\n", name, g.AtomToVar[name]); err != nil {
			return err
		}
	}

	for _, node := range g.Nodes {
		if err := writeNode(bw, node, cfg); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeNode(bw *bufio.Writer, node ccg.Node, cfg writeConfig) error {
	switch node.Kind {
	case ccg.Leaf:
		_, err := fmt.Fprintf(bw, "%d %s\n", node.Literal, node.Value.String())
		return err
	default:
		if _, err := fmt.Fprintf(bw, "%s %d", node.Kind.String(), len(node.Children)); err != nil {
			return err
		}
		for _, c := range node.Children {
			if _, err := fmt.Fprintf(bw, " %d", c); err != nil {
				return err
			}
		}
		if cfg.withValues {
			if _, err := fmt.Fprintf(bw, " %s", node.Value.String()); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(bw, "\n")
		return err
	}
}
