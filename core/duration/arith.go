// File: arith.go
// Title: Duration Arithmetic
// Description: Implements overflow-checked and saturating arithmetic on
//              Duration values, preserving the sign-consistency invariant
//              through every operation.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package duration

import (
	"math"

	"github.com/tempuslib/tempus/utils/mathx"
)

// renormalize restores the representation invariant after a component-wise
// add or sub, where |nanos| may reach just under 2e9. The second step moves
// seconds toward zero and therefore cannot overflow.
func renormalize(secs int64, nanos int32) (Duration, bool) {
	var ok bool
	if nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		if secs, ok = mathx.CheckedAdd(secs, 1); !ok {
			return Zero, false
		}
	} else if nanos <= -nanosPerSecond {
		nanos += nanosPerSecond
		if secs, ok = mathx.CheckedSub(secs, 1); !ok {
			return Zero, false
		}
	}

	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	return Duration{secs, nanos}, true
}

// CheckedAdd returns d+o, or (Zero, false) when the sum is unrepresentable.
func (d Duration) CheckedAdd(o Duration) (Duration, bool) {
	secs, ok := mathx.CheckedAdd(d.seconds, o.seconds)
	if !ok {
		return Zero, false
	}
	return renormalize(secs, d.nanoseconds+o.nanoseconds)
}

// CheckedSub returns d-o, or (Zero, false) when the difference is
// unrepresentable.
func (d Duration) CheckedSub(o Duration) (Duration, bool) {
	secs, ok := mathx.CheckedSub(d.seconds, o.seconds)
	if !ok {
		return Zero, false
	}
	return renormalize(secs, d.nanoseconds-o.nanoseconds)
}

// CheckedMul scales d by an integer factor, or returns (Zero, false) on
// overflow. The factor is limited to int32 so the nanosecond intermediate
// product cannot itself overflow.
func (d Duration) CheckedMul(factor int32) (Duration, bool) {
	// 999_999_999 * 2^31 fits comfortably in int64.
	totalNanos := int64(d.nanoseconds) * int64(factor)
	extraSecs := totalNanos / nanosPerSecond
	nanos := int32(totalNanos % nanosPerSecond)

	secs, ok := mathx.CheckedMul(d.seconds, int64(factor))
	if !ok {
		return Zero, false
	}
	if secs, ok = mathx.CheckedAdd(secs, extraSecs); !ok {
		return Zero, false
	}

	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	return Duration{secs, nanos}, true
}

// CheckedDiv divides d by an integer divisor with truncation, distributing
// the seconds remainder into the nanosecond field. Returns (Zero, false)
// only for a zero divisor or the single overflowing case Min / -1.
func (d Duration) CheckedDiv(divisor int32) (Duration, bool) {
	if divisor == 0 {
		return Zero, false
	}
	if d.seconds == math.MinInt64 && divisor == -1 {
		return Zero, false
	}

	secs := d.seconds / int64(divisor)
	carry := d.seconds - secs*int64(divisor)
	extraNanos := carry * nanosPerSecond / int64(divisor)
	nanos := int32(int64(d.nanoseconds)/int64(divisor) + extraNanos)
	return Duration{secs, nanos}, true
}

// CheckedNeg returns the negation, or (Zero, false) for the minimum value.
func (d Duration) CheckedNeg() (Duration, bool) {
	if d.seconds == math.MinInt64 {
		return Zero, false
	}
	return Duration{-d.seconds, -d.nanoseconds}, true
}

// Neg returns the negation, saturating to Max for the minimum value.
func (d Duration) Neg() Duration {
	if n, ok := d.CheckedNeg(); ok {
		return n
	}
	return Max
}

// Abs returns the magnitude, saturating to Max for the minimum value since
// its exact negation is unrepresentable.
func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Neg()
	}
	return d
}

// SaturatingAdd returns d+o, clamping to Min or Max on overflow.
func (d Duration) SaturatingAdd(o Duration) Duration {
	if sum, ok := d.CheckedAdd(o); ok {
		return sum
	}
	// Overflow requires both operands on the same side of zero.
	if d.IsNegative() {
		return Min
	}
	return Max
}

// SaturatingSub returns d-o, clamping to Min or Max on overflow.
func (d Duration) SaturatingSub(o Duration) Duration {
	if diff, ok := d.CheckedSub(o); ok {
		return diff
	}
	if d.IsNegative() {
		return Min
	}
	return Max
}

// SaturatingMul scales d by factor, clamping to Min or Max on overflow.
func (d Duration) SaturatingMul(factor int32) Duration {
	if prod, ok := d.CheckedMul(factor); ok {
		return prod
	}
	if d.Sign()*sign32(factor) < 0 {
		return Min
	}
	return Max
}

func sign32(v int32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
