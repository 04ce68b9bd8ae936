//go:build vect_debug

package vect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Under the vect_debug tag the same degenerate inputs are fatal.

func TestNormalizeZeroPanics(t *testing.T) {
	require.Panics(t, func() { Vect2Zero().Normalize() })
	require.Panics(t, func() { Vect3Zero().Normalize() })
}

func TestDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() { NewVect2(1, 2).Div(0) })
	require.Panics(t, func() { NewVect3(1, 2, 3).Div(0) })

	require.Panics(t, func() {
		v := NewVect2(1, 2)
		v.DivInPlace(0)
	})
	require.Panics(t, func() {
		v := NewVect3(1, 2, 3)
		v.DivInPlace(0)
	})
}

func TestArithmeticOverflowPanics(t *testing.T) {
	big := NewVect2(math.MaxFloat64, 0)
	require.Panics(t, func() { big.Add(big) })
	require.Panics(t, func() { big.Sub(big.Neg()) })
	require.Panics(t, func() { big.Mul(2) })
	require.Panics(t, func() { big.Div(0.5) })
	require.Panics(t, func() {
		v := big
		v.AddInPlace(big)
	})
	require.Panics(t, func() {
		v := big
		v.MulInPlace(2)
	})

	big3 := NewVect3(0, math.MaxFloat64, 0)
	require.Panics(t, func() { big3.Add(big3) })
	require.Panics(t, func() { big3.Sub(big3.Neg()) })
	require.Panics(t, func() { big3.Mul(2) })
	require.Panics(t, func() { big3.Div(0.5) })
	require.Panics(t, func() {
		v := big3
		v.SubInPlace(big3.Neg())
	})
	require.Panics(t, func() {
		v := big3
		v.DivInPlace(0.5)
	})
}

func TestNonFiniteResultPanics(t *testing.T) {
	inf := math.Inf(1)

	require.Panics(t, func() { NewVect2(inf, 0).Length() })
	require.Panics(t, func() { NewVect2(inf, 0).Dot(NewVect2(1, 0)) })
	require.Panics(t, func() { NewVect3(inf, 0, 0).Cross(NewVect3(0, 1, 0)) })
	require.Panics(t, func() { NewVect2(math.MaxFloat64, 0).Lerp(NewVect2(-math.MaxFloat64, 0), -2) })
}
