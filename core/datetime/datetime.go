// File: datetime.go
// Title: DateTime Type, Arithmetic, and Ordering
// Description: Defines the DateTime value type, its constructors and
//              accessors, carry-propagating duration arithmetic, ordering,
//              and the Unix interchange helpers.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package datetime

import (
	"fmt"

	"github.com/tempuslib/tempus/core/clock"
	"github.com/tempuslib/tempus/core/date"
	"github.com/tempuslib/tempus/core/duration"
	tperr "github.com/tempuslib/tempus/core/error"
	"github.com/tempuslib/tempus/utils/mathx"
)

// unixEpochJulianDay is the Julian day number of 1970-01-01.
const unixEpochJulianDay = 2_440_588

// DateTime is a naive calendar date plus time of day.
type DateTime struct {
	date date.Date
	time clock.Time
}

// Min and Max are the earliest and latest representable date-times.
var (
	Min = DateTime{date.Min, clock.Midnight}
	Max = DateTime{date.Max, clock.Max}
)

// New combines a date and a time of day.
func New(d date.Date, t clock.Time) DateTime {
	return DateTime{d, t}
}

// AtMidnight returns the first instant of the given date.
func AtMidnight(d date.Date) DateTime {
	return DateTime{d, clock.Midnight}
}

// Date returns the calendar date component.
func (dt DateTime) Date() date.Date { return dt.date }

// Time returns the time-of-day component.
func (dt DateTime) Time() clock.Time { return dt.time }

// Year returns the calendar year.
func (dt DateTime) Year() int { return dt.date.Year() }

// Month returns the calendar month.
func (dt DateTime) Month() date.Month { return dt.date.Month() }

// Day returns the day of the month.
func (dt DateTime) Day() int { return dt.date.Day() }

// Ordinal returns the 1-based day-of-year.
func (dt DateTime) Ordinal() int { return dt.date.Ordinal() }

// Weekday returns the day of the week.
func (dt DateTime) Weekday() date.Weekday { return dt.date.Weekday() }

// Hour returns the hour in 0..23.
func (dt DateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute in 0..59.
func (dt DateTime) Minute() int { return dt.time.Minute() }

// Second returns the second in 0..59.
func (dt DateTime) Second() int { return dt.time.Second() }

// Nanosecond returns the sub-second fraction in nanoseconds.
func (dt DateTime) Nanosecond() int { return dt.time.Nanosecond() }

// ReplaceDate returns the same time of day on another date.
func (dt DateTime) ReplaceDate(d date.Date) DateTime {
	dt.date = d
	return dt
}

// ReplaceTime returns the same date with another time of day.
func (dt DateTime) ReplaceTime(t clock.Time) DateTime {
	dt.time = t
	return dt
}

// CheckedAdd moves the value by a duration: the clock absorbs the sub-day
// remainder and reports rollover, the date takes the whole-day part plus
// that carry. Returns (zero, false) when the date leaves its range.
func (dt DateTime) CheckedAdd(dur duration.Duration) (DateTime, bool) {
	movedTime, adjustment := dt.time.AdjustingAdd(dur)
	movedDate, ok := dt.date.CheckedAdd(dur)
	if !ok {
		return DateTime{}, false
	}
	return applyAdjustment(movedDate, movedTime, adjustment)
}

// CheckedSub moves the value backward by a duration with the same carry
// contract as CheckedAdd.
func (dt DateTime) CheckedSub(dur duration.Duration) (DateTime, bool) {
	movedTime, adjustment := dt.time.AdjustingSub(dur)
	movedDate, ok := dt.date.CheckedSub(dur)
	if !ok {
		return DateTime{}, false
	}
	return applyAdjustment(movedDate, movedTime, adjustment)
}

func applyAdjustment(d date.Date, t clock.Time, adjustment clock.Adjustment) (DateTime, bool) {
	switch adjustment {
	case clock.AdjustNextDay:
		next, ok := d.NextDay()
		if !ok {
			return DateTime{}, false
		}
		return DateTime{next, t}, true
	case clock.AdjustPreviousDay:
		prev, ok := d.PreviousDay()
		if !ok {
			return DateTime{}, false
		}
		return DateTime{prev, t}, true
	default:
		return DateTime{d, t}, true
	}
}

// SaturatingAdd is CheckedAdd clamping to Min or Max instead of failing.
func (dt DateTime) SaturatingAdd(dur duration.Duration) DateTime {
	if moved, ok := dt.CheckedAdd(dur); ok {
		return moved
	}
	if dur.IsNegative() {
		return Min
	}
	return Max
}

// SaturatingSub is CheckedSub clamping to Min or Max instead of failing.
func (dt DateTime) SaturatingSub(dur duration.Duration) DateTime {
	if moved, ok := dt.CheckedSub(dur); ok {
		return moved
	}
	if dur.IsNegative() {
		return Max
	}
	return Min
}

// MustAdd is the panicking convenience form of CheckedAdd.
func (dt DateTime) MustAdd(dur duration.Duration) DateTime {
	moved, ok := dt.CheckedAdd(dur)
	if !ok {
		panic(fmt.Sprintf("datetime %v + %v overflows the supported range", dt, dur))
	}
	return moved
}

// MustSub is the panicking convenience form of CheckedSub.
func (dt DateTime) MustSub(dur duration.Duration) DateTime {
	moved, ok := dt.CheckedSub(dur)
	if !ok {
		panic(fmt.Sprintf("datetime %v - %v overflows the supported range", dt, dur))
	}
	return moved
}

// Sub returns the signed duration from o to dt. The result always fits: the
// supported date range spans far less than the duration type can hold.
func (dt DateTime) Sub(o DateTime) duration.Duration {
	return dt.date.Sub(o.date).SaturatingAdd(dt.time.Sub(o.time))
}

// Compare orders two values lexicographically by (date, time).
func (dt DateTime) Compare(o DateTime) int {
	if c := dt.date.Compare(o.date); c != 0 {
		return c
	}
	return dt.time.Compare(o.time)
}

// Before reports whether dt is chronologically before o.
func (dt DateTime) Before(o DateTime) bool { return dt.Compare(o) < 0 }

// After reports whether dt is chronologically after o.
func (dt DateTime) After(o DateTime) bool { return dt.Compare(o) > 0 }

// Equal reports whether both components match.
func (dt DateTime) Equal(o DateTime) bool { return dt == o }

// UnixSeconds returns the whole seconds since 1970-01-01 00:00:00, reading
// the value as UTC. The sub-second fraction is discarded.
func (dt DateTime) UnixSeconds() int64 {
	days := dt.date.ToJulianDay() - unixEpochJulianDay
	secs := int64(dt.Hour())*3_600 + int64(dt.Minute())*60 + int64(dt.Second())
	return days*86_400 + secs
}

// FromUnixSeconds builds the UTC date-time of a Unix timestamp.
func FromUnixSeconds(seconds int64) (DateTime, error) {
	days := mathx.FloorDiv(seconds, 86_400)
	rem := mathx.FloorMod(seconds, 86_400)

	d, err := date.FromJulianDay(unixEpochJulianDay + days)
	if err != nil {
		return DateTime{}, tperr.Wrap(err, "unix timestamp outside the supported date range")
	}
	t, err := clock.FromHMS(int(rem/3_600), int(rem/60%60), int(rem%60))
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{d, t}, nil
}
