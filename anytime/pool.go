// File: pool.go
// Role: the parallel inner map-reduce over a single k-tier's subsets
// (spec.md §5). Grounded on the teacher's raw-goroutine plus
// sync.WaitGroup concurrency style (katalvlaran-lvlath/core/concurrency_test.go)
// rather than an external worker-pool/errgroup library — none occurs
// anywhere in the example corpus this module was grounded on.
//
// Each worker owns a private bigcount.Count accumulator and no other
// scratch state (eval.EvaluateCCG allocates its own result buffer per
// call); workers are combined by a single
// sequential addition once every worker has drained its share of the
// subset list, matching "reduced at the end of each k" (spec.md §5).
package anytime

import (
	"sync"

	"github.com/iascar-go/ccgcount/bigcount"
	"github.com/iascar-go/ccgcount/ccg"
	"github.com/iascar-go/ccgcount/eval"
)

// evaluateSubsets computes the sum over subsets of evaluate(g, delta(subset))
// using workers goroutines pulling from a shared channel. buildDelta
// constructs the per-subset assumption union.
func evaluateSubsets(g *ccg.Graph, subsets [][]int, workers int, buildDelta func(subset []int) []int) (bigcount.Count, error) {
	if len(subsets) == 0 {
		return bigcount.Zero, nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(subsets) {
		workers = len(subsets)
	}

	jobs := make(chan []int, len(subsets))
	for _, s := range subsets {
		jobs <- s
	}
	close(jobs)

	var mu sync.Mutex
	var total bigcount.Count = bigcount.Zero
	var firstErr error

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			local := bigcount.Zero
			for subset := range jobs {
				delta := buildDelta(subset)
				c, err := eval.EvaluateCCG(g, delta)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					return
				}
				local = local.Add(c)
			}
			mu.Lock()
			total = total.Add(local)
			mu.Unlock()
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return bigcount.Zero, firstErr
	}
	return total, nil
}
