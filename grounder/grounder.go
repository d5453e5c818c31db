// Package grounder is the external-collaborator boundary the transpiler
// calls through. Per the governing spec, the logic-program grounder itself
// ("which atom names are supported") is out of scope; implementing ASP
// semantics from scratch is an explicit Non-goal. This package defines only
// the seam a real grounder adapter would satisfy, plus one concrete,
// file-backed implementation that stands in for it in tests and for
// pipelines where an external process has already dumped its supported
// atoms to a text file (mirroring how the original pipeline's clingo
// coupling was itself just a one-shot text artifact at transpile time).
package grounder

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/iascar-go/ccgcount/ccgerr"
)

// Supported reports, for a grounded logic program, the set of atom names
// the grounder emits a literal for.
type Supported interface {
	// SupportedAtoms returns the set of atom names the grounder reports a
	// literal for, given the grounded program at programPath.
	SupportedAtoms(programPath string) (map[string]struct{}, error)
}

// FileSupported reads a line-oriented supported-atoms file: one atom name
// per line, blank lines and "#"-prefixed comments skipped. It implements
// Supported by treating programPath as the path to that file directly
// (callers that drive a real grounder pipe its dump to such a file first).
type FileSupported struct{}

// SupportedAtoms implements Supported.
func (FileSupported) SupportedAtoms(programPath string) (map[string]struct{}, error) {
	f, err := os.Open(programPath)
	if err != nil {
		return nil, ccgerr.ReadFailure.New(err.Error())
	}
	defer f.Close()
	return parseSupported(f)
}

func parseSupported(r io.Reader) (map[string]struct{}, error) {
	scanner := bufio.NewScanner(r)
	out := make(map[string]struct{})
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, ccgerr.GrounderFailure.New(err.Error())
	}
	return out, nil
}
