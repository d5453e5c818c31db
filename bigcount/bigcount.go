// Package bigcount is the arbitrary-precision count domain: a thin,
// immutable wrapper around math/big.Int exposing exactly the operations the
// rest of ccgcount needs (add, multiply, subtract, compare, shift-left,
// base-10 logarithm). No third-party arbitrary-precision integer library
// appears anywhere in the example corpus this module was grounded on
// (shopspring/decimal is fixed-point decimal, not an unbounded integer), so
// math/big is used directly rather than invented or swapped for a stub.
//
// Values are never mutated in place: every operation returns a new Count,
// matching the "Overall count... never mutated in place across calls"
// lifecycle (see the governing specification's data model).
package bigcount

import (
	"math"
	"math/big"
)

// Count is a non-negative (by construction of every producer in this
// module) arbitrary-precision integer.
type Count struct {
	v *big.Int
}

// Zero is the additive identity.
var Zero = Count{v: big.NewInt(0)}

// One is the multiplicative identity.
var One = Count{v: big.NewInt(1)}

// FromInt64 builds a Count from a machine integer.
func FromInt64(n int64) Count {
	return Count{v: big.NewInt(n)}
}

// FromBigInt builds a Count from an existing *big.Int, taking ownership of
// it (the caller must not mutate v afterward).
func FromBigInt(v *big.Int) Count {
	if v == nil {
		return Zero
	}
	return Count{v: v}
}

// clone returns c with a fresh, independently-mutable backing *big.Int, or
// a fresh zero if c is the zero value of Count.
func (c Count) clone() *big.Int {
	if c.v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(c.v)
}

// Add returns c + other.
func (c Count) Add(other Count) Count {
	r := c.clone()
	r.Add(r, other.clone())
	return Count{v: r}
}

// Mul returns c * other.
func (c Count) Mul(other Count) Count {
	r := c.clone()
	r.Mul(r, other.clone())
	return Count{v: r}
}

// Sub returns c - other. Callers in anytime inclusion-exclusion may produce
// an intermediate negative accumulator; Count does not clamp, since the
// final returned value is only ever examined after the alternating sum
// settles (see anytime.CountAnswerSets, invariant 1 in the testable
// properties: evaluate() itself never returns negative, but the
// accumulator mid-loop legitimately can go negative between terms).
func (c Count) Sub(other Count) Count {
	r := c.clone()
	r.Sub(r, other.clone())
	return Count{v: r}
}

// Cmp returns -1, 0, or +1 as c is less than, equal to, or greater than
// other.
func (c Count) Cmp(other Count) int {
	return c.clone().Cmp(other.clone())
}

// Lsh returns c shifted left by n bits (c * 2^n). Used by the smooth
// sd-DNNF evaluator's gap-filling factor at Or nodes and at the root.
func (c Count) Lsh(n uint) Count {
	r := c.clone()
	r.Lsh(r, n)
	return Count{v: r}
}

// Sign returns -1, 0, or +1 as c is negative, zero, or positive.
func (c Count) Sign() int {
	return c.clone().Sign()
}

// IsZero reports whether c is exactly zero.
func (c Count) IsZero() bool {
	return c.Sign() == 0
}

// Log10 returns the base-10 logarithm of c, matching the original
// pipeline's "to_f64().log10()" diagnostic. Log10 of zero or a negative
// value returns math.Inf(-1), the IEEE result of log10(0); callers that
// care (the CCG header writer) only call Log10 on a count already known
// positive.
func (c Count) Log10() float64 {
	f := new(big.Float).SetInt(c.clone())
	x, _ := f.Float64()
	if x <= 0 {
		return math.Inf(-1)
	}
	return math.Log10(x)
}

// String renders the exact decimal value.
func (c Count) String() string {
	return c.clone().String()
}
