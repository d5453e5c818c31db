// Package xset provides deterministic set operations over sorted slices of
// signed integers (literals) and their absolute values (variable ids): the
// "Utilities" component of ccgcount, grounded on the teacher's adjacency-set
// conventions (deterministic sort order, read-only returned slices,
// independent backing arrays) but adapted from vertex-ID sets to literal
// sets.
//
// Every function treats its input slices as read-only and returns a freshly
// allocated, sorted, duplicate-free result. Determinism: equal inputs
// (up to set equality) always produce byte-identical output slices.
package xset

import "sort"

// SortUnique returns a sorted copy of xs with duplicates removed.
// Complexity: O(n log n).
func SortUnique(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	out := make([]int, len(xs))
	copy(out, xs)
	sort.Ints(out)
	out = dedupSorted(out)
	return out
}

// dedupSorted compacts consecutive equal elements of an already-sorted
// slice in place and returns the shrunk slice.
func dedupSorted(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	w := 1
	for r := 1; r < len(sorted); r++ {
		if sorted[r] != sorted[w-1] {
			sorted[w] = sorted[r]
			w++
		}
	}
	return sorted[:w]
}

// Union returns the sorted, duplicate-free union of a and b.
// Complexity: O((len(a)+len(b)) log (len(a)+len(b))).
func Union(a, b []int) []int {
	merged := make([]int, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return SortUnique(merged)
}

// Contains reports whether sorted (already SortUnique'd) contains x via
// binary search. Complexity: O(log n).
func Contains(sorted []int, x int) bool {
	i := sort.SearchInts(sorted, x)
	return i < len(sorted) && sorted[i] == x
}

// Intersect returns the sorted intersection of a and b. a and b need not be
// pre-sorted; both are normalized internally. Used by nnf.checkDecomposable
// to reject an And node whose children's variable sets overlap (the sd-DNNF
// decomposability property). Complexity: O(n log n).
func Intersect(a, b []int) []int {
	as := SortUnique(a)
	bs := SortUnique(b)
	var out []int
	for _, x := range as {
		if Contains(bs, x) {
			out = append(out, x)
		}
	}
	return out
}

// Difference returns the sorted set a \ b. a and b need not be pre-sorted.
// Used by transpile.Transpile to report the variables a CNF companion file
// names that the grounder never reported as supported. Complexity:
// O(n log n).
func Difference(a, b []int) []int {
	as := SortUnique(a)
	bs := SortUnique(b)
	var out []int
	for _, x := range as {
		if !Contains(bs, x) {
			out = append(out, x)
		}
	}
	return out
}

// HasContradiction reports whether literals contains both a literal and its
// negation. Used by the evaluator's "contradiction collapse" invariant and
// by the anytime counter's pre-filter.
func HasContradiction(literals []int) bool {
	seen := make(map[int]struct{}, len(literals))
	for _, l := range literals {
		seen[l] = struct{}{}
	}
	for l := range seen {
		if _, ok := seen[-l]; ok {
			return true
		}
	}
	return false
}
