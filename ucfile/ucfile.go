// Package ucfile reads the UC/cycles file format (spec.md §6.3):
//
//	<depth-or-zero>
//	c <atom-name> <cycle-local-id>      (optional cycle mapping comments)
//	m <lit> <lit> ...                   (exclusion route)
//	p <lit> <lit> ...                   (inclusion route)
//
// The comment-line mapping order (name before id) matches the CCG format's
// own mapping-line order (spec.md §6.1) and is the mirror image of the CNF
// companion format's order (see cnfmap's doc comment) — grounded on
// original_source/src/counting.rs's count_on_cg_with_cycles, which reads
// "s := line.next(); i := line.next()" with s used as the string key into
// the CCG's own atom map.
package ucfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iascar-go/ccgcount/ccgerr"
	"github.com/iascar-go/ccgcount/internal/clog"
)

var log = clog.New("ucfile")

// Polarity distinguishes an exclusion route ("m", to be subtracted) from an
// inclusion route ("p", to be added).
type Polarity int

const (
	// Exclusion is a "-"-tagged route, a "m" line.
	Exclusion Polarity = iota
	// Inclusion is a "+"-tagged route, a "p" line.
	Inclusion
)

// UC is a single unsupported constraint: a literal set with a polarity tag.
type UC struct {
	Literals []int
	Polarity Polarity
}

// File is a fully parsed UC/cycles file.
type File struct {
	// Depth is the header's recommended alternation depth; 0 means "no
	// depth bound recommended".
	Depth int
	UCs    []UC
	Cycles map[int]string // cycle-local-id -> atom-name, from "c" comments
}

// Read parses a UC file from r.
func Read(r io.Reader) (File, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	if !scanner.Scan() {
		return File{}, ccgerr.ReadFailure.New("empty uc file")
	}
	depth, err := parseDepthHeader(scanner.Text())
	if err != nil {
		return File{}, err
	}

	file := File{Depth: depth, Cycles: make(map[int]string)}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "c ") {
			name, id, ok := parseCycleComment(line)
			if ok {
				file.Cycles[id] = name
			}
			continue
		}
		uc, err := parseRouteLine(line)
		if err != nil {
			return File{}, err
		}
		file.UCs = append(file.UCs, uc)
	}
	if err := scanner.Err(); err != nil {
		return File{}, ccgerr.ReadFailure.New(err.Error())
	}
	return file, nil
}

func parseDepthHeader(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, ccgerr.ParseFailure.New("uc file missing depth header")
	}
	d, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, ccgerr.ParseFailure.New(fmt.Sprintf("bad uc depth header %q", fields[0]))
	}
	return d, nil
}

func parseCycleComment(line string) (name string, id int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", 0, false
	}
	id, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", 0, false
	}
	return fields[1], id, true
}

func parseRouteLine(line string) (UC, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return UC{}, ccgerr.ParseFailure.New(fmt.Sprintf("bad uc route line %q", line))
	}
	var polarity Polarity
	switch fields[0] {
	case "m":
		polarity = Exclusion
	case "p":
		polarity = Inclusion
	default:
		return UC{}, ccgerr.ParseFailure.New(fmt.Sprintf("unknown uc route tag %q", fields[0]))
	}
	lits := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		l, err := strconv.Atoi(f)
		if err != nil {
			return UC{}, ccgerr.ParseFailure.New(fmt.Sprintf("bad uc literal %q", f))
		}
		lits = append(lits, l)
	}
	return UC{Literals: lits, Polarity: polarity}, nil
}

// RemapCycles composes the cycles file's local-id -> atom-name mapping with
// the CCG's own atom-name -> variable-id mapping, preserving each literal's
// sign, for the cycles-guided anytime variant (spec.md §4.3). A literal
// whose local id has no entry in cycles, or whose atom has no entry in
// ccgAtomToVar, is warned-and-skipped in verbose mode (the rest of the same
// UC's literals are kept); outside verbose mode the same condition is
// fatal, per spec.md §7's MissingMapping policy (see ccgerr.IsFatal).
func RemapCycles(ucs []UC, cycles map[int]string, ccgAtomToVar map[string]int) ([]UC, error) {
	out := make([]UC, 0, len(ucs))
	for _, uc := range ucs {
		var remapped []int
		for _, l := range uc.Literals {
			localID := l
			sign := 1
			if localID < 0 {
				localID = -localID
				sign = -1
			}
			name, ok := cycles[localID]
			if !ok {
				if !clog.Verbose() {
					return nil, ccgerr.MissingMapping.New(fmt.Sprintf("uc literal %d: no cycle mapping for local id %d", l, localID))
				}
				log.Warnf("uc literal %d: no cycle mapping for local id %d", l, localID)
				continue
			}
			varID, ok := ccgAtomToVar[name]
			if !ok {
				if !clog.Verbose() {
					return nil, ccgerr.MissingMapping.New(fmt.Sprintf("uc literal %d: atom %q has no ccg variable mapping", l, name))
				}
				log.Warnf("uc literal %d: atom %q has no ccg variable mapping", l, name)
				continue
			}
			remapped = append(remapped, sign*varID)
		}
		out = append(out, UC{Literals: remapped, Polarity: uc.Polarity})
	}
	return out, nil
}
