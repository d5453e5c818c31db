// File: combinations.go
// Role: enumerates k-subsets of {0..n-1} in a fixed canonical order for the
// inclusion-exclusion loop. Order only matters for determinism of work
// distribution, never for the result (summation commutes, spec.md §4.3).
package anytime

// combinations returns every k-element subset of {0, 1, ..., n-1}, each
// represented as a sorted slice of indices, in lexicographic order.
func combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]int, k)
		copy(combo, idx)
		out = append(out, combo)

		// Advance to the next combination, or stop if exhausted.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
