// Command ccgtool is the illustrative CLI driver of spec.md §6.4. It is
// external to the core (the core is the three library components: the
// transpiler, the evaluator, and the anytime counter); this file only
// wires flag parsing to those libraries and maps ccgerr kinds to process
// exit codes.
//
// No CLI-framework dependency (cobra/urfave-cli/pflag) occurs anywhere in
// the example corpus this module was grounded on, so the standard library
// flag package is used directly rather than introducing one.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iascar-go/ccgcount/anytime"
	"github.com/iascar-go/ccgcount/ccgio"
	"github.com/iascar-go/ccgcount/cnfmap"
	"github.com/iascar-go/ccgcount/eval"
	"github.com/iascar-go/ccgcount/grounder"
	"github.com/iascar-go/ccgcount/internal/clog"
	"github.com/iascar-go/ccgcount/nnf"
	"github.com/iascar-go/ccgcount/transpile"
	"github.com/iascar-go/ccgcount/ucfile"
)

var log = clog.New("ccgtool")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ccgtool <count-nnf|count-nnf-asp|count-ccg|transpile|count-as-anytime> [flags] <file>")
		return 2
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "count-nnf":
		return runCountNNF(rest, false)
	case "count-nnf-asp":
		return runCountNNF(rest, true)
	case "count-ccg":
		return runCountCCG(rest)
	case "transpile":
		return runTranspile(rest)
	case "count-as-anytime":
		return runCountAnytime(rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", cmd)
		return 2
	}
}

// assumptionFlags holds -a/-fa/-v, shared by the counting subcommands
// (transpile binds its own flags).
type assumptionFlags struct {
	inline  string
	file    string
	verbose bool
}

func bindAssumptionFlags(fs *flag.FlagSet) *assumptionFlags {
	af := &assumptionFlags{}
	fs.StringVar(&af.inline, "a", "", "space-separated assumption literals")
	fs.StringVar(&af.file, "fa", "", "file of newline-separated assumption literals")
	fs.BoolVar(&af.verbose, "v", false, "verbose structured logging")
	return af
}

func (af *assumptionFlags) resolve() ([]int, error) {
	clog.SetVerbose(af.verbose)
	var lits []int
	if af.inline != "" {
		for _, f := range strings.Fields(af.inline) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("bad -a literal %q: %w", f, err)
			}
			lits = append(lits, n)
		}
	}
	if af.file != "" {
		f, err := os.Open(af.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("bad -fa literal %q: %w", line, err)
			}
			lits = append(lits, n)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	return lits, nil
}

func runCountNNF(args []string, asp bool) int {
	fs := flag.NewFlagSet("count-nnf", flag.ContinueOnError)
	af := bindAssumptionFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: count-nnf [-a ...] [-fa file] <nnf-file>")
		return 2
	}
	assumptions, err := af.resolve()
	if err != nil {
		return fail(err)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer f.Close()
	g, err := nnf.Parse(f)
	if err != nil {
		return fail(err)
	}

	if asp {
		count, err := eval.EvaluateSDNNFNoSmooth(g, assumptions)
		if err != nil {
			return fail(err)
		}
		fmt.Println(count.String())
		return 0
	}
	count, err := eval.EvaluateSDNNF(g, assumptions)
	if err != nil {
		return fail(err)
	}
	fmt.Println(count.String())
	return 0
}

func runCountCCG(args []string) int {
	fs := flag.NewFlagSet("count-ccg", flag.ContinueOnError)
	af := bindAssumptionFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: count-ccg [-a ...] [-fa file] <ccg-file>")
		return 2
	}
	assumptions, err := af.resolve()
	if err != nil {
		return fail(err)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer f.Close()
	_, g, err := ccgio.Read(f)
	if err != nil {
		return fail(err)
	}

	count, err := eval.EvaluateCCG(g, assumptions)
	if err != nil {
		return fail(err)
	}
	fmt.Println(count.String())
	return 0
}

func runTranspile(args []string) int {
	fs := flag.NewFlagSet("transpile", flag.ContinueOnError)
	cnfPath := fs.String("cnf", "", "CNF companion file (atom-name <-> variable-id mapping)")
	supportedPath := fs.String("supported", "", "grounder-emitted supported atoms file")
	withValues := fs.Bool("withvals", false, "emit trailing precomputed-value token on gate lines")
	verbose := fs.Bool("v", false, "verbose structured logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	clog.SetVerbose(*verbose)
	if fs.NArg() != 1 || *cnfPath == "" || *supportedPath == "" {
		fmt.Fprintln(os.Stderr, "usage: transpile -cnf <file> -supported <file> [-withvals] <nnf-file>")
		return 2
	}

	nf, err := os.Open(fs.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer nf.Close()
	nnfGraph, err := nnf.Parse(nf)
	if err != nil {
		return fail(err)
	}

	cf, err := os.Open(*cnfPath)
	if err != nil {
		return fail(err)
	}
	defer cf.Close()
	cnfMapping, err := cnfmap.Parse(cf)
	if err != nil {
		return fail(err)
	}

	supported, err := (grounder.FileSupported{}).SupportedAtoms(*supportedPath)
	if err != nil {
		return fail(err)
	}

	result, err := transpile.Transpile(transpile.Config{NNF: nnfGraph, CNFMap: cnfMapping, Supported: supported})
	if err != nil {
		return fail(err)
	}

	if err := ccgio.Write(os.Stdout, result.Header, result.Graph, ccgio.WithValues(*withValues)); err != nil {
		return fail(err)
	}
	return 0
}

func runCountAnytime(args []string) int {
	fs := flag.NewFlagSet("count-as-anytime", flag.ContinueOnError)
	af := bindAssumptionFlags(fs)
	ucPath := fs.String("uc", "", "UC/cycles file")
	depth := fs.Int("d", 0, "alternation depth (0 = use the UC file's header depth, where 0 means exact)")
	timeout := fs.Duration("timeout", 0, "process-level timeout (0 = none)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *ucPath == "" {
		fmt.Fprintln(os.Stderr, "usage: count-as-anytime -uc <file> [-d depth] [-a ...] [-fa file] <ccg-file>")
		return 2
	}
	assumptions, err := af.resolve()
	if err != nil {
		return fail(err)
	}

	cf, err := os.Open(fs.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer cf.Close()
	_, g, err := ccgio.Read(cf)
	if err != nil {
		return fail(err)
	}

	uf, err := os.Open(*ucPath)
	if err != nil {
		return fail(err)
	}
	defer uf.Close()
	ucFile, err := ucfile.Read(uf)
	if err != nil {
		return fail(err)
	}

	if len(ucFile.Cycles) > 0 {
		remapped, err := ucfile.RemapCycles(ucFile.UCs, ucFile.Cycles, g.AtomToVar)
		if err != nil {
			return fail(err)
		}
		result, err := anytime.CountAnswerSetsCycles(g, remapped, assumptions)
		if err != nil {
			return fail(err)
		}
		log.Debugf("cycles-guided: last completed k=%d exact=%v", result.LastK, result.Exact)
		fmt.Println(result.Count.String())
		return 0
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	effectiveDepth := *depth
	if effectiveDepth == 0 {
		effectiveDepth = ucFile.Depth
	}

	result, err := anytime.CountAnswerSets(ctx, g, ucFile.UCs, assumptions, effectiveDepth)
	if err != nil {
		return fail(err)
	}
	log.Debugf("last completed k=%d exact=%v early-terminated=%v", result.LastK, result.Exact, result.EarlyTerminated)
	fmt.Println(result.Count.String())
	return 0
}

func fail(err error) int {
	log.Errorf("%v", err)
	return 1
}
