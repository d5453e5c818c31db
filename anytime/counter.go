// Package anytime implements the anytime inclusion-exclusion answer-set
// counter (spec.md §4.3): it repairs a CCG's supported-model count by
// truncated inclusion-exclusion over a list of unsupported constraints
// (UCs), up to alternation depth d, producing alternating upper and lower
// bounds that converge to the exact answer-set count.
package anytime

import (
	"context"
	"runtime"

	"github.com/iascar-go/ccgcount/bigcount"
	"github.com/iascar-go/ccgcount/ccg"
	"github.com/iascar-go/ccgcount/eval"
	"github.com/iascar-go/ccgcount/internal/clog"
	"github.com/iascar-go/ccgcount/ucfile"
	"github.com/iascar-go/ccgcount/xset"
)

var log = clog.New("anytime")

// Result is count_as's output plus the anytime bookkeeping spec.md §5
// requires any caller-enforced timeout to be able to read: "the
// implementation must expose the current count and the index k at which
// the loop last completed".
type Result struct {
	Count bigcount.Count
	// LastK is the highest subset-size tier fully processed.
	LastK int
	// EarlyTerminated is true if the loop stopped because a full k-pass
	// left count unchanged (spec.md §4.3's early-termination rule); this
	// includes a pass at the final planned k.
	EarlyTerminated bool
	// Exact is true when Count is the exact answer-set count: the loop ran
	// through k = n, early termination fired, or the base count was already
	// 0. It is false when depth or a cancelled context cut the loop short.
	Exact bool
}

// Option configures CountAnswerSets.
type Option func(*config)

type config struct {
	workers   int
	preFilter bool
}

func defaultConfig() config {
	return config{workers: runtime.GOMAXPROCS(0), preFilter: true}
}

// WithWorkers overrides the worker-pool size for the per-k parallel
// map-reduce. Default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithPreFilter toggles the optional pre-filter that drops UCs
// contradicting the caller's assumptions before the loop starts (spec.md
// §4.3 "Optional pre-filter"). Default on; it changes neither correctness
// nor the final answer, only loop size.
func WithPreFilter(on bool) Option {
	return func(c *config) { c.preFilter = on }
}

// CountAnswerSets computes count_as(ccg, ucs, assumptions, depth) per
// spec.md §4.3. depth = 0 means exact (process every subset size up to
// n); depth = k > 0 truncates after subset size k, returning a lower bound
// when k is odd and an upper bound when k is even, unless convergence
// short-circuits the loop first.
//
// ctx governs cooperative cancellation for a caller-enforced timeout
// (spec.md §5): on cancellation, CountAnswerSets returns the best Result
// computed so far (the count after the last fully completed k) rather than
// an error.
func CountAnswerSets(ctx context.Context, g *ccg.Graph, ucs []ucfile.UC, assumptions []int, depth int, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	base, err := eval.EvaluateCCG(g, assumptions)
	if err != nil {
		return Result{}, err
	}
	if base.IsZero() {
		return Result{Count: bigcount.Zero, LastK: 0, Exact: true}, nil
	}

	if cfg.preFilter {
		before := len(ucs)
		ucs = preFilterUCs(ucs, assumptions)
		log.Debugf("pre-filter dropped %d of %d ucs", before-len(ucs), before)
	}

	n := len(ucs)
	bound := n
	if depth > 0 && depth < n {
		bound = depth
	}

	count := base
	for k := 1; k <= bound; k++ {
		select {
		case <-ctx.Done():
			return Result{Count: count, LastK: k - 1, Exact: false}, nil
		default:
		}

		subsetIdx := combinations(n, k)
		buildDelta := func(subset []int) []int {
			delta := make([]int, len(assumptions))
			copy(delta, assumptions)
			for _, i := range subset {
				delta = append(delta, ucs[i].Literals...)
			}
			return delta
		}
		term, err := evaluateSubsets(g, subsetIdx, cfg.workers, buildDelta)
		if err != nil {
			return Result{}, err
		}

		previous := count
		if k%2 == 1 {
			count = count.Sub(term)
		} else {
			count = count.Add(term)
		}

		if count.Cmp(previous) == 0 {
			log.Debugf("early termination at k=%d", k)
			return Result{Count: count, LastK: k, EarlyTerminated: true, Exact: true}, nil
		}
	}

	return Result{Count: count, LastK: bound, Exact: bound == n}, nil
}

// preFilterUCs drops every UC whose literals, combined with the caller's
// assumptions, contain a literal and its negation (spec.md §4.3 "Optional
// pre-filter"): such routes evaluate to 0 regardless, so dropping them is
// value-neutral and only shrinks n.
func preFilterUCs(ucs []ucfile.UC, assumptions []int) []ucfile.UC {
	out := make([]ucfile.UC, 0, len(ucs))
	for _, uc := range ucs {
		combined := make([]int, 0, len(assumptions)+len(uc.Literals))
		combined = append(combined, assumptions...)
		combined = append(combined, uc.Literals...)
		if !xset.HasContradiction(combined) {
			out = append(out, uc)
		}
	}
	return out
}
