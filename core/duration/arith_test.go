// File: arith_test.go
// Title: Duration Arithmetic Tests
// Description: Tests for the checked and saturating arithmetic, including
//              overflow at the representation limits and the minimum-value
//              negation special case.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedAdd(t *testing.T) {
	testCases := []struct {
		name string
		a, b Duration
		want Duration
		ok   bool
	}{
		{"simple", Seconds(1), Seconds(2), Seconds(3), true},
		{"nanos carry", New(1, 600_000_000), New(0, 600_000_000), New(2, 200_000_000), true},
		{"negative carry", New(-1, -600_000_000), New(0, -600_000_000), New(-2, -200_000_000), true},
		{"cross sign fix", Seconds(3), New(-2, -500_000_000), New(0, 500_000_000), true},
		{"cross sign fix negative", Seconds(-3), New(2, 500_000_000), New(0, -500_000_000), true},
		{"cancel to zero", New(5, 250_000_000), New(-5, -250_000_000), Zero, true},
		{"overflow", Max, Nanosecond, Zero, false},
		{"underflow", Min, New(0, -1), Zero, false},
		{"max plus zero", Max, Zero, Max, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.CheckedAdd(tc.b)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckedSub(t *testing.T) {
	testCases := []struct {
		name string
		a, b Duration
		want Duration
		ok   bool
	}{
		{"simple", Seconds(5), Seconds(2), Seconds(3), true},
		{"borrow", New(1, 100_000_000), New(0, 600_000_000), New(0, 500_000_000), true},
		{"result negative", Seconds(2), Seconds(5), Seconds(-3), true},
		{"underflow", Min, Nanosecond, Zero, false},
		{"overflow", Max, New(0, -1), Zero, false},
		{"min minus zero", Min, Zero, Min, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.CheckedSub(tc.b)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddSubInverse(t *testing.T) {
	values := []Duration{
		Zero, Nanosecond, Seconds(1), Minutes(-90),
		New(5, 999_999_999), New(-5, -999_999_999), Days(400),
	}
	for _, a := range values {
		for _, b := range values {
			sum, ok := a.CheckedAdd(b)
			if !ok {
				continue
			}
			back, ok := sum.CheckedSub(b)
			assert.True(t, ok)
			assert.Equal(t, a, back, "(%v + %v) - %v", a, b, b)
		}
	}
}

func TestCheckedMul(t *testing.T) {
	testCases := []struct {
		name   string
		d      Duration
		factor int32
		want   Duration
		ok     bool
	}{
		{"simple", Seconds(3), 4, Seconds(12), true},
		{"nanos scale", New(0, 500_000_000), 3, New(1, 500_000_000), true},
		{"negative factor", Minutes(90), -2, Minutes(-180), true},
		{"zero factor", Max, 0, Zero, true},
		{"sub-second negation", New(0, -250_000_000), -4, Seconds(1), true},
		{"overflow", Max, 2, Zero, false},
		{"min times minus one", Min, -1, Zero, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.d.CheckedMul(tc.factor)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckedDiv(t *testing.T) {
	testCases := []struct {
		name    string
		d       Duration
		divisor int32
		want    Duration
		ok      bool
	}{
		{"even", Seconds(10), 2, Seconds(5), true},
		{"remainder into nanos", Seconds(1), 2, New(0, 500_000_000), true},
		{"negative truncates toward zero", Seconds(-3), 2, New(-1, -500_000_000), true},
		{"mixed parts", New(7, 500_000_000), 3, New(2, 499_999_999), true},
		{"divide by zero", Seconds(1), 0, Zero, false},
		{"min by minus one", Min, -1, Zero, false},
		{"min by one", Min, 1, Min, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.d.CheckedDiv(tc.divisor)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNegAndAbs(t *testing.T) {
	assert.Equal(t, Seconds(-5), Seconds(5).Neg())
	assert.Equal(t, Zero, Zero.Neg())

	if _, ok := Min.CheckedNeg(); ok {
		t.Error("Min.CheckedNeg() must fail")
	}
	neg, ok := Max.CheckedNeg()
	assert.True(t, ok)
	assert.Equal(t, Max, neg.Neg())

	// The minimum value's exact negation is unrepresentable.
	assert.Equal(t, Max, Min.Neg())
	assert.Equal(t, Max, Min.Abs())
	assert.Equal(t, Seconds(5), Seconds(-5).Abs())
	assert.Equal(t, Seconds(5), Seconds(5).Abs())
}

func TestSaturatingArithmetic(t *testing.T) {
	assert.Equal(t, Max, Max.SaturatingAdd(Second))
	assert.Equal(t, Min, Min.SaturatingAdd(Seconds(-1)))
	subbed, subOK := Max.CheckedSub(Second)
	assert.Equal(t, Max.SaturatingSub(Second), mustChecked(t, subbed, subOK))

	assert.Equal(t, Min, Min.SaturatingSub(Second))
	assert.Equal(t, Max, Max.SaturatingSub(Seconds(-1)))

	assert.Equal(t, Max, Max.SaturatingMul(2))
	assert.Equal(t, Min, Max.SaturatingMul(-2))
	assert.Equal(t, Max, Min.SaturatingMul(-2))
	assert.Equal(t, Seconds(6), Seconds(3).SaturatingMul(2))
}

func mustChecked(t *testing.T, d Duration, ok bool) Duration {
	t.Helper()
	if !ok {
		t.Fatal("checked operation unexpectedly overflowed")
	}
	return d
}
