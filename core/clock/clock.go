// File: clock.go
// Title: Time Type and Constructors
// Description: Defines the Time value type, its validated constructors
//              including the leap-second entry point, component accessors,
//              and the Replace* transformations.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package clock

import (
	tperr "github.com/tempuslib/tempus/core/error"
)

const (
	nanosPerSecond = 1_000_000_000
	nanosPerMilli  = 1_000_000
	nanosPerMicro  = 1_000

	// leapSecondMaxNanos bounds the nanosecond field of leap-second values:
	// strictly below 2_000_000_000, so 23:59:59.999999999 + a full inserted
	// second is representable but nothing beyond it.
	leapSecondMaxNanos = 2_000_000_000 - 1
)

// Time is a wall-clock time of day with nanosecond precision. The zero
// value is midnight.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

// Boundary values.
var (
	Midnight = Time{}
	Noon     = Time{hour: 12}
	Max      = Time{23, 59, 59, nanosPerSecond - 1}
)

func checkHMS(hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return tperr.ComponentRange("hour", 0, 23, int64(hour))
	}
	if minute < 0 || minute > 59 {
		return tperr.ComponentRange("minute", 0, 59, int64(minute))
	}
	if second < 0 || second > 59 {
		return tperr.ComponentRange("second", 0, 59, int64(second))
	}
	return nil
}

// FromHMS builds a Time from hour, minute, and second.
func FromHMS(hour, minute, second int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	return Time{uint8(hour), uint8(minute), uint8(second), 0}, nil
}

// FromHMSMilli builds a Time with millisecond precision.
func FromHMSMilli(hour, minute, second, millisecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if millisecond < 0 || millisecond > 999 {
		return Time{}, tperr.ComponentRange("millisecond", 0, 999, int64(millisecond))
	}
	return Time{uint8(hour), uint8(minute), uint8(second), uint32(millisecond) * nanosPerMilli}, nil
}

// FromHMSMicro builds a Time with microsecond precision.
func FromHMSMicro(hour, minute, second, microsecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if microsecond < 0 || microsecond > 999_999 {
		return Time{}, tperr.ComponentRange("microsecond", 0, 999_999, int64(microsecond))
	}
	return Time{uint8(hour), uint8(minute), uint8(second), uint32(microsecond) * nanosPerMicro}, nil
}

// FromHMSNano builds a Time with nanosecond precision.
func FromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if nanosecond < 0 || nanosecond > nanosPerSecond-1 {
		return Time{}, tperr.ComponentRange("nanosecond", 0, nanosPerSecond-1, int64(nanosecond))
	}
	return Time{uint8(hour), uint8(minute), uint8(second), uint32(nanosecond)}, nil
}

// FromHMSNanoLeap builds a Time that may represent an inserted leap second.
// It is the only constructor permitting the nanosecond field to exceed the
// normal bound, up to 1_999_999_999 inclusive. Arithmetic on such a value is
// unspecified; the representation exists for interchange with sources that
// encode leap seconds this way.
func FromHMSNanoLeap(hour, minute, second, nanosecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if nanosecond < 0 || nanosecond > leapSecondMaxNanos {
		return Time{}, tperr.ComponentRange("nanosecond", 0, leapSecondMaxNanos, int64(nanosecond))
	}
	return Time{uint8(hour), uint8(minute), uint8(second), uint32(nanosecond)}, nil
}

// Hour returns the hour in 0..23.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute in 0..59.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second in 0..59.
func (t Time) Second() int { return int(t.second) }

// Millisecond returns the sub-second fraction in whole milliseconds.
func (t Time) Millisecond() int { return int(t.nanosecond / nanosPerMilli) }

// Microsecond returns the sub-second fraction in whole microseconds.
func (t Time) Microsecond() int { return int(t.nanosecond / nanosPerMicro) }

// Nanosecond returns the sub-second fraction in nanoseconds. Values built by
// FromHMSNanoLeap may report up to 1_999_999_999.
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// IsLeapSecond reports whether the value carries an out-of-range sub-second
// field representing an inserted leap second.
func (t Time) IsLeapSecond() bool { return t.nanosecond >= nanosPerSecond }

// AsHMS returns the hour, minute, and second components.
func (t Time) AsHMS() (hour, minute, second int) {
	return int(t.hour), int(t.minute), int(t.second)
}

// AsHMSNano returns all four components.
func (t Time) AsHMSNano() (hour, minute, second, nanosecond int) {
	return int(t.hour), int(t.minute), int(t.second), int(t.nanosecond)
}

// ReplaceHour returns a copy with the hour replaced.
func (t Time) ReplaceHour(hour int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, tperr.ComponentRange("hour", 0, 23, int64(hour))
	}
	t.hour = uint8(hour)
	return t, nil
}

// ReplaceMinute returns a copy with the minute replaced.
func (t Time) ReplaceMinute(minute int) (Time, error) {
	if minute < 0 || minute > 59 {
		return Time{}, tperr.ComponentRange("minute", 0, 59, int64(minute))
	}
	t.minute = uint8(minute)
	return t, nil
}

// ReplaceSecond returns a copy with the second replaced.
func (t Time) ReplaceSecond(second int) (Time, error) {
	if second < 0 || second > 59 {
		return Time{}, tperr.ComponentRange("second", 0, 59, int64(second))
	}
	t.second = uint8(second)
	return t, nil
}

// ReplaceNanosecond returns a copy with the sub-second fraction replaced.
// The normal bound applies; leap-second values require FromHMSNanoLeap.
func (t Time) ReplaceNanosecond(nanosecond int) (Time, error) {
	if nanosecond < 0 || nanosecond > nanosPerSecond-1 {
		return Time{}, tperr.ComponentRange("nanosecond", 0, nanosPerSecond-1, int64(nanosecond))
	}
	t.nanosecond = uint32(nanosecond)
	return t, nil
}

// Compare returns -1, 0, or 1 ordering t against o within one day.
func (t Time) Compare(o Time) int {
	a := t.sinceMidnightNanos()
	b := o.sinceMidnightNanos()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is earlier in the day than o.
func (t Time) Before(o Time) bool { return t.Compare(o) < 0 }

// After reports whether t is later in the day than o.
func (t Time) After(o Time) bool { return t.Compare(o) > 0 }

// sinceMidnightNanos returns the nanoseconds elapsed since midnight. Fits
// int64 even for leap-second values.
func (t Time) sinceMidnightNanos() int64 {
	secs := int64(t.hour)*3_600 + int64(t.minute)*60 + int64(t.second)
	return secs*nanosPerSecond + int64(t.nanosecond)
}
