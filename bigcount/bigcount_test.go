package bigcount_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iascar-go/ccgcount/bigcount"
)

func TestArithmetic(t *testing.T) {
	a := bigcount.FromInt64(7)
	b := bigcount.FromInt64(3)

	require.Equal(t, "10", a.Add(b).String())
	require.Equal(t, "21", a.Mul(b).String())
	require.Equal(t, "4", a.Sub(b).String())
	require.Equal(t, -1, b.Sub(a).Sign())
	require.Equal(t, 1, a.Cmp(b))
	require.Equal(t, 0, a.Cmp(a))
}

func TestImmutability(t *testing.T) {
	a := bigcount.FromInt64(5)
	b := bigcount.FromInt64(2)
	_ = a.Add(b)
	require.Equal(t, "5", a.String(), "Add must not mutate its receiver")
	require.Equal(t, "2", b.String(), "Add must not mutate its argument")
}

func TestLsh(t *testing.T) {
	c := bigcount.FromInt64(3)
	require.Equal(t, "12", c.Lsh(2).String())
	require.Equal(t, "3", c.Lsh(0).String())
}

func TestZeroAndIsZero(t *testing.T) {
	require.True(t, bigcount.Zero.IsZero())
	require.False(t, bigcount.One.IsZero())
	require.True(t, bigcount.FromInt64(1).Sub(bigcount.One).IsZero())
}

func TestLog10(t *testing.T) {
	require.InDelta(t, 2.0, bigcount.FromInt64(100).Log10(), 1e-9)
	require.Equal(t, math.Inf(-1), bigcount.Zero.Log10())
}
