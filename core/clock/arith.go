// File: arith.go
// Title: Adjusting Time Arithmetic
// Description: Implements duration addition and subtraction on Time values.
//              Day rollover is never applied silently; it is reported as an
//              Adjustment carry signal for the caller to fold into a date.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package clock

import (
	"github.com/tempuslib/tempus/core/duration"
)

// Adjustment signals whether an adjusting operation wrapped past a day
// boundary and in which direction.
type Adjustment int

const (
	// AdjustNone means the result stayed within the same day.
	AdjustNone Adjustment = iota
	// AdjustNextDay means the result wrapped forward into the next day.
	AdjustNextDay
	// AdjustPreviousDay means the result wrapped backward into the previous day.
	AdjustPreviousDay
)

// String returns a readable form of the adjustment signal.
func (a Adjustment) String() string {
	switch a {
	case AdjustNone:
		return "none"
	case AdjustNextDay:
		return "next day"
	case AdjustPreviousDay:
		return "previous day"
	default:
		return "invalid"
	}
}

// AdjustingAdd adds a duration to the time of day. The duration's whole-day
// part is ignored here: only the sub-day remainder moves the clock, and a
// result outside [0, 24) hours wraps back into range while reporting the
// direction as the Adjustment. The receiver must be a normalized
// (non-leap-second) value.
func (t Time) AdjustingAdd(d duration.Duration) (Time, Adjustment) {
	secs, subNanos := d.AsParts()

	nanoseconds := int64(t.nanosecond) + int64(subNanos)
	seconds := int64(t.second) + secs%60
	minutes := int64(t.minute) + secs/60%60
	hours := int64(t.hour) + secs/3_600%24

	return t.carry(hours, minutes, seconds, nanoseconds)
}

// AdjustingSub subtracts a duration from the time of day, with the same
// carry contract as AdjustingAdd.
func (t Time) AdjustingSub(d duration.Duration) (Time, Adjustment) {
	secs, subNanos := d.AsParts()

	nanoseconds := int64(t.nanosecond) - int64(subNanos)
	seconds := int64(t.second) - secs%60
	minutes := int64(t.minute) - secs/60%60
	hours := int64(t.hour) - secs/3_600%24

	return t.carry(hours, minutes, seconds, nanoseconds)
}

// carry normalizes the decomposed fields. Each field starts within one span
// of its range, so a single correction per stage suffices.
func (t Time) carry(hours, minutes, seconds, nanoseconds int64) (Time, Adjustment) {
	if nanoseconds >= nanosPerSecond {
		nanoseconds -= nanosPerSecond
		seconds++
	} else if nanoseconds < 0 {
		nanoseconds += nanosPerSecond
		seconds--
	}
	if seconds >= 60 {
		seconds -= 60
		minutes++
	} else if seconds < 0 {
		seconds += 60
		minutes--
	}
	if minutes >= 60 {
		minutes -= 60
		hours++
	} else if minutes < 0 {
		minutes += 60
		hours--
	}

	adjustment := AdjustNone
	if hours >= 24 {
		hours -= 24
		adjustment = AdjustNextDay
	} else if hours < 0 {
		hours += 24
		adjustment = AdjustPreviousDay
	}

	return Time{uint8(hours), uint8(minutes), uint8(seconds), uint32(nanoseconds)}, adjustment
}

// Sub returns the signed duration from o to t, assuming both values belong
// to the same calendar day. No day-boundary correction is applied.
func (t Time) Sub(o Time) duration.Duration {
	hourDiff := int64(t.hour) - int64(o.hour)
	minuteDiff := int64(t.minute) - int64(o.minute)
	secondDiff := int64(t.second) - int64(o.second)
	nanoDiff := int64(t.nanosecond) - int64(o.nanosecond)

	return duration.New(hourDiff*3_600+minuteDiff*60+secondDiff, nanoDiff)
}
