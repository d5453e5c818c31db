// Package cnfmap reads the CNF companion file's atom-name <-> variable-id
// mapping consumed by transpile (spec.md §4.2 step 1: "Build the CNF
// mapping"). The format is not given its own section in spec.md; per
// SPEC_FULL.md §6.5 this is grounded on original_source/src/transpiler.rs's
// read_cnf_mappings: comment lines of the form
//
//	c <variable-id> <atom-name>
//
// (integer before name). This is the mirror image of the CCG format's own
// mapping-line order (spec.md §6.1: "c <atom-name> <variable-id>"); the two
// file kinds are produced by different external tools in the pipeline and
// are not required to agree, so each reader hard-codes its own order rather
// than guessing (Open Question 2 in spec.md §9).
package cnfmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iascar-go/ccgcount/ccgerr"
)

// Mapping is a total function from atom name to CNF variable id.
type Mapping map[string]int

// Parse reads every "c <variable-id> <atom-name>" comment line from r and
// returns the accumulated Mapping. Non-comment lines (the clauses
// themselves) are ignored; this package only consumes the mapping
// metadata, not the CNF encoding.
func Parse(r io.Reader) (Mapping, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	m := make(Mapping)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "c ") && line != "c" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue // a bare "c" comment with no mapping payload
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, ccgerr.ParseFailure.New(fmt.Sprintf("bad cnf mapping line %q", line))
		}
		m[fields[2]] = id
	}
	if err := scanner.Err(); err != nil {
		return nil, ccgerr.ReadFailure.New(err.Error())
	}
	return m, nil
}
