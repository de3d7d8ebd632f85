// File: duration.go
// Title: Duration Type and Constructors
// Description: Defines the Duration value type, its normalizing constructors,
//              unit constants, component accessors with floor semantics, and
//              comparison operations.
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

const (
	nanosPerSecond = 1_000_000_000
	nanosPerMilli  = 1_000_000
	nanosPerMicro  = 1_000

	secondsPerMinute = 60
	secondsPerHour   = 3_600
	secondsPerDay    = 86_400
	secondsPerWeek   = 604_800
)

// Duration is a signed span of time: whole seconds plus a nanosecond
// remainder whose sign matches the seconds' sign. The zero value is a
// zero-length duration.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

// Unit values and range bounds.
var (
	Zero        = Duration{}
	Nanosecond  = Duration{0, 1}
	Microsecond = Duration{0, nanosPerMicro}
	Millisecond = Duration{0, nanosPerMilli}
	Second      = Duration{1, 0}
	Minute      = Duration{secondsPerMinute, 0}
	Hour        = Duration{secondsPerHour, 0}
	Day         = Duration{secondsPerDay, 0}
	Week        = Duration{secondsPerWeek, 0}

	// Min and Max are the least and greatest representable durations.
	Min = Duration{math.MinInt64, -(nanosPerSecond - 1)}
	Max = Duration{math.MaxInt64, nanosPerSecond - 1}
)

// New builds a Duration from seconds and nanoseconds, normalizing the
// nanosecond remainder into (-1e9, 1e9) with a sign matching the seconds.
// The inputs need not be sign-consistent. A combination whose normalized
// seconds exceed the int64 range saturates to Min or Max.
func New(seconds, nanoseconds int64) Duration {
	carry := nanoseconds / nanosPerSecond
	nanos := int32(nanoseconds % nanosPerSecond)

	secs, ok := mathx.CheckedAdd(seconds, carry)
	if !ok {
		if seconds > 0 {
			return Max
		}
		return Min
	}

	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	return Duration{secs, nanos}
}

// Seconds returns a duration of the given whole seconds.
func Seconds(s int64) Duration {
	return Duration{s, 0}
}

// Minutes returns a duration of the given whole minutes, saturating on overflow.
func Minutes(m int64) Duration {
	return scaledSeconds(m, secondsPerMinute)
}

// Hours returns a duration of the given whole hours, saturating on overflow.
func Hours(h int64) Duration {
	return scaledSeconds(h, secondsPerHour)
}

// Days returns a duration of the given whole days, saturating on overflow.
func Days(d int64) Duration {
	return scaledSeconds(d, secondsPerDay)
}

// Weeks returns a duration of the given whole weeks, saturating on overflow.
func Weeks(w int64) Duration {
	return scaledSeconds(w, secondsPerWeek)
}

func scaledSeconds(count, unit int64) Duration {
	secs, ok := mathx.CheckedMul(count, unit)
	if !ok {
		if count > 0 {
			return Max
		}
		return Min
	}
	return Duration{secs, 0}
}

// Milliseconds returns a duration of the given milliseconds.
func Milliseconds(ms int64) Duration {
	return Duration{ms / 1_000, int32(ms%1_000) * nanosPerMilli}
}

// Microseconds returns a duration of the given microseconds.
func Microseconds(us int64) Duration {
	return Duration{us / 1_000_000, int32(us%1_000_000) * nanosPerMicro}
}

// Nanoseconds returns a duration of the given nanoseconds.
func Nanoseconds(ns int64) Duration {
	return Duration{ns / nanosPerSecond, int32(ns % nanosPerSecond)}
}

// AsParts returns the raw (seconds, nanoseconds) pair with truncating
// semantics: both carry the duration's sign and |nanoseconds| < 1e9.
// Carry arithmetic in the clock and date layers depends on this form;
// use the Whole* accessors for floor semantics.
func (d Duration) AsParts() (int64, int32) {
	return d.seconds, d.nanoseconds
}

// SubsecNanoseconds returns the nanosecond remainder, negative for negative
// durations.
func (d Duration) SubsecNanoseconds() int32 {
	return d.nanoseconds
}

// SubsecMicroseconds returns the remainder in whole microseconds.
func (d Duration) SubsecMicroseconds() int32 {
	return d.nanoseconds / nanosPerMicro
}

// SubsecMilliseconds returns the remainder in whole milliseconds.
func (d Duration) SubsecMilliseconds() int32 {
	return d.nanoseconds / nanosPerMilli
}

// WholeSeconds returns the number of whole seconds, floored toward negative
// infinity: a duration of -1.5s reports -2. Saturates at the int64 minimum.
func (d Duration) WholeSeconds() int64 {
	if d.nanoseconds < 0 {
		if d.seconds == math.MinInt64 {
			return math.MinInt64
		}
		return d.seconds - 1
	}
	return d.seconds
}

// WholeMinutes returns the number of whole minutes, floored toward negative
// infinity.
func (d Duration) WholeMinutes() int64 {
	return mathx.FloorDiv(d.WholeSeconds(), secondsPerMinute)
}

// WholeHours returns the number of whole hours, floored toward negative
// infinity: a duration of -90 minutes reports -2.
func (d Duration) WholeHours() int64 {
	return mathx.FloorDiv(d.WholeSeconds(), secondsPerHour)
}

// WholeDays returns the number of whole days, floored toward negative
// infinity.
func (d Duration) WholeDays() int64 {
	return mathx.FloorDiv(d.WholeSeconds(), secondsPerDay)
}

// WholeWeeks returns the number of whole weeks, floored toward negative
// infinity.
func (d Duration) WholeWeeks() int64 {
	return mathx.FloorDiv(d.WholeSeconds(), secondsPerWeek)
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanoseconds == 0
}

// IsPositive reports whether the duration is strictly positive.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || (d.seconds == 0 && d.nanoseconds > 0)
}

// IsNegative reports whether the duration is strictly negative.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || (d.seconds == 0 && d.nanoseconds < 0)
}

// Sign returns -1, 0, or 1 for negative, zero, and positive durations.
func (d Duration) Sign() int {
	switch {
	case d.IsPositive():
		return 1
	case d.IsNegative():
		return -1
	default:
		return 0
	}
}

// Compare returns -1, 0, or 1 ordering d against o. The sign-consistency
// invariant makes lexicographic comparison of the parts correct.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.seconds < o.seconds:
		return -1
	case d.seconds > o.seconds:
		return 1
	case d.nanoseconds < o.nanoseconds:
		return -1
	case d.nanoseconds > o.nanoseconds:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two durations represent the same span.
func (d Duration) Equal(o Duration) bool {
	return d == o
}
