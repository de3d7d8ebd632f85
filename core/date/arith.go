// File: arith.go
// Title: Day-Granularity Date Arithmetic
// Description: Implements duration addition and subtraction on dates via
//              the Julian day interchange point. Only the whole-day part of
//              a duration moves a date; sub-day remainders are the datetime
//              layer's responsibility.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package date

import (
	"fmt"

	"github.com/tempuslib/tempus/core/duration"
)

// wholeDaysOf extracts the truncating whole-day count of a duration. The
// floor-semantics WholeDays accessor is wrong here: the datetime layer
// splits sub-day remainders off through clock carry signals, and flooring
// would count a borrowed day twice.
func wholeDaysOf(d duration.Duration) int64 {
	secs, _ := d.AsParts()
	return secs / 86_400
}

// CheckedAdd moves the date by the whole-day part of the duration,
// returning (zero, false) when the result leaves the supported range.
func (d Date) CheckedAdd(dur duration.Duration) (Date, bool) {
	// Julian days stay within ±6e6 and whole-day counts within ±2e14, so
	// the int64 sum itself cannot overflow; only the range check matters.
	moved, err := FromJulianDay(d.ToJulianDay() + wholeDaysOf(dur))
	if err != nil {
		return Date{}, false
	}
	return moved, true
}

// CheckedSub moves the date backward by the whole-day part of the duration.
func (d Date) CheckedSub(dur duration.Duration) (Date, bool) {
	moved, err := FromJulianDay(d.ToJulianDay() - wholeDaysOf(dur))
	if err != nil {
		return Date{}, false
	}
	return moved, true
}

// SaturatingAdd is CheckedAdd clamping to Min or Max instead of failing.
func (d Date) SaturatingAdd(dur duration.Duration) Date {
	if moved, ok := d.CheckedAdd(dur); ok {
		return moved
	}
	if dur.IsNegative() {
		return Min
	}
	return Max
}

// SaturatingSub is CheckedSub clamping to Min or Max instead of failing.
func (d Date) SaturatingSub(dur duration.Duration) Date {
	if moved, ok := d.CheckedSub(dur); ok {
		return moved
	}
	if dur.IsNegative() {
		return Max
	}
	return Min
}

// MustAdd is the panicking convenience form of CheckedAdd, for call sites
// that have already established the result is representable.
func (d Date) MustAdd(dur duration.Duration) Date {
	moved, ok := d.CheckedAdd(dur)
	if !ok {
		panic(fmt.Sprintf("date %v + %v overflows the supported range", d, dur))
	}
	return moved
}

// MustSub is the panicking convenience form of CheckedSub.
func (d Date) MustSub(dur duration.Duration) Date {
	moved, ok := d.CheckedSub(dur)
	if !ok {
		panic(fmt.Sprintf("date %v - %v overflows the supported range", d, dur))
	}
	return moved
}

// Sub returns the signed whole-day span from o to d as a duration.
func (d Date) Sub(o Date) duration.Duration {
	return duration.Days(d.ToJulianDay() - o.ToJulianDay())
}
