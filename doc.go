// Package ccgcount compiles smooth-deterministic decomposable negation
// normal form (sd-DNNF) into compressed Counting Graphs and counts answer
// sets of disjunctive logic programs over them.
//
// Three components form the core:
//
//	transpile — compresses an sd-DNNF into a CCG, pruning leaves and gates
//	            the grounder never reports as supported.
//	eval      — evaluates a CCG or an sd-DNNF under a set of literal
//	            assumptions in one bottom-up sweep, producing an
//	            arbitrary-precision model count (bigcount.Count).
//	anytime   — repairs a CCG's supported-model count into an answer-set
//	            count by truncated inclusion-exclusion over a list of
//	            unsupported constraints, returning tightening bounds as the
//	            truncation depth increases.
//
// Supporting packages: ccg and nnf hold the two in-memory DAG
// representations; ccgio, cnfmap, and ucfile read and write their text
// file formats; grounder is the seam through which an external logic-
// program grounder's supported-atom set is consumed; ccgerr names the
// error-kind taxonomy surfaced by every package above.
//
// cmd/ccgtool is an illustrative CLI driver; it is not part of the core
// and exists only to exercise the library packages from the command line.
package ccgcount
