// File: mathx.go
// Title: Checked and Floor Integer Arithmetic
// Description: Implements floor division/modulo and overflow-checked integer
//              operations shared by the duration, date, and zone packages.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package mathx

import "math"

// FloorDiv divides a by b, rounding the quotient toward negative infinity.
// b must be non-zero.
func FloorDiv(a, b int64) int64 {
	q, r := a/b, a%b
	if (r > 0 && b < 0) || (r < 0 && b > 0) {
		return q - 1
	}
	return q
}

// FloorMod returns a modulo b with the result carrying the sign of b.
// b must be non-zero. FloorDiv(a, b)*b + FloorMod(a, b) == a.
func FloorMod(a, b int64) int64 {
	r := a % b
	if (r > 0 && b < 0) || (r < 0 && b > 0) {
		return r + b
	}
	return r
}

// CheckedAdd returns a+b and whether the addition stayed within int64 range.
func CheckedAdd(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// CheckedSub returns a-b and whether the subtraction stayed within int64 range.
func CheckedSub(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

// CheckedMul returns a*b and whether the multiplication stayed within int64
// range.
func CheckedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 * -1 wraps, and dividing it back by -1 would fault.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

// Clamp constrains v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
