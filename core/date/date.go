// File: date.go
// Title: Date Type and Calendar Conversions
// Description: Defines the Date value type with validated constructors from
//              the calendar, ordinal, ISO-week, and Julian-day forms, and the
//              exact inverse conversion to each. All year arithmetic uses
//              floor division so negative years convert correctly.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package date

import (
	tperr "github.com/tempuslib/tempus/core/error"
	"github.com/tempuslib/tempus/utils/mathx"
)

// Supported year range. Ordinal conversions are exact across the whole range.
const (
	MinYear = -9999
	MaxYear = 9999
)

// julianDayEpochOffset shifts the year-relative day count onto the Julian
// day scale, where day 0 is -4713-11-24.
const julianDayEpochOffset = 1_721_425

// Date is a civil date in the proleptic Gregorian calendar, stored as a
// year and a 1-based ordinal day-of-year. The zero value is the ordinal-0
// sentinel and not a valid date; construct values through the From*
// functions.
type Date struct {
	year    int32
	ordinal uint16
}

// Min and Max are the earliest and latest representable dates.
var (
	Min = Date{MinYear, 1}
	Max = Date{MaxYear, 365} // 9999 is a common year
)

// Julian-day bounds corresponding to Min and Max.
var (
	minJulianDay = Min.ToJulianDay()
	maxJulianDay = Max.ToJulianDay()
)

// cumulativeDays holds days-before-month tables for common and leap years,
// indexed by month-1.
var cumulativeDays = [2][12]int{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

// IsLeapYear applies the proleptic Gregorian rule: divisible by 4 and
// either not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the length of a month in the given year.
func DaysInMonth(month Month, year int) int {
	switch month {
	case February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// WeeksInYear returns the ISO week count of a year: 53 when January 1 falls
// on a Thursday, or on a Wednesday in a leap year; 52 otherwise.
func WeeksInYear(year int) int {
	jan1 := Date{int32(year), 1}.Weekday()
	if jan1 == Thursday || (jan1 == Wednesday && IsLeapYear(year)) {
		return 53
	}
	return 52
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return tperr.ComponentRange("year", MinYear, MaxYear, int64(year))
	}
	return nil
}

// FromCalendarDate builds a Date from a (year, month, day) triple. The day
// bound accounts for the month length and leap years.
func FromCalendarDate(year int, month Month, day int) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	if !month.IsValid() {
		return Date{}, tperr.ComponentRange("month", 1, 12, int64(month))
	}
	if max := DaysInMonth(month, year); day < 1 || day > max {
		return Date{}, tperr.ComponentRangeConditional("day", 1, int64(max), int64(day))
	}

	leap := 0
	if IsLeapYear(year) {
		leap = 1
	}
	return Date{int32(year), uint16(cumulativeDays[leap][month-1] + day)}, nil
}

// FromOrdinalDate builds a Date from a year and a 1-based day-of-year.
func FromOrdinalDate(year, ordinal int) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	if max := DaysInYear(year); ordinal < 1 || ordinal > max {
		return Date{}, tperr.ComponentRangeConditional("ordinal", 1, int64(max), int64(ordinal))
	}
	return Date{int32(year), uint16(ordinal)}, nil
}

// FromISOWeekDate builds a Date from an ISO week-date triple. Week 1 is the
// week containing the year's first Thursday; the result may fall in the
// previous or next calendar year.
func FromISOWeekDate(year, week int, weekday Weekday) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	if max := WeeksInYear(year); week < 1 || week > max {
		return Date{}, tperr.ComponentRangeConditional("week", 1, int64(max), int64(week))
	}
	if !weekday.IsValid() {
		return Date{}, tperr.ComponentRange("weekday", 1, 7, int64(weekday))
	}

	// Weekday-offset anchor of January 4, derived from the day count up to
	// the start of the year.
	adjYear := int64(year) - 1
	raw := 365*adjYear + mathx.FloorDiv(adjYear, 4) - mathx.FloorDiv(adjYear, 100) +
		mathx.FloorDiv(adjYear, 400)
	var jan4 int64
	switch raw % 7 {
	case -6, 1:
		jan4 = 8
	case -5, 2:
		jan4 = 9
	case -4, 3:
		jan4 = 10
	case -3, 4:
		jan4 = 4
	case -2, 5:
		jan4 = 5
	case -1, 6:
		jan4 = 6
	default:
		jan4 = 7
	}

	ordinal := int64(week)*7 + int64(weekday.NumberFromMonday()) - jan4
	switch {
	case ordinal < 1:
		if year-1 < MinYear {
			return Date{}, tperr.ComponentRange("year", MinYear, MaxYear, int64(year-1))
		}
		return Date{int32(year - 1), uint16(ordinal + int64(DaysInYear(year-1)))}, nil
	case ordinal > int64(DaysInYear(year)):
		if year+1 > MaxYear {
			return Date{}, tperr.ComponentRange("year", MinYear, MaxYear, int64(year+1))
		}
		return Date{int32(year + 1), uint16(ordinal - int64(DaysInYear(year)))}, nil
	default:
		return Date{int32(year), uint16(ordinal)}, nil
	}
}

// FromJulianDay builds a Date from a Julian day number using Peter Baum's
// inverse algorithm, widened to int64 so the 100*z intermediate cannot
// overflow anywhere in the supported range.
func FromJulianDay(julianDay int64) (Date, error) {
	if julianDay < minJulianDay || julianDay > maxJulianDay {
		return Date{}, tperr.ComponentRange("julian_day", minJulianDay, maxJulianDay, julianDay)
	}

	z := julianDay - 1_721_119
	g := 100*z - 25
	a := g / 3_652_425 // truncating division, required by the algorithm
	b := a - a/4
	year := mathx.FloorDiv(100*b+g, 36_525)
	ordinal := b + z - mathx.FloorDiv(36_525*year, 100)

	// The computation above lands on a March-based year; shifting January
	// and February back in may cross a year boundary in either direction.
	if IsLeapYear(int(year)) {
		ordinal += 60
		if ordinal >= 367 {
			ordinal -= 366
			year++
		} else if ordinal < 1 {
			ordinal += 366
			year--
		}
	} else {
		ordinal += 59
		if ordinal >= 366 {
			ordinal -= 365
			year++
		} else if ordinal < 1 {
			ordinal += 365
			year--
		}
	}

	return Date{int32(year), uint16(ordinal)}, nil
}

// Year returns the calendar year.
func (d Date) Year() int {
	return int(d.year)
}

// Ordinal returns the 1-based day-of-year.
func (d Date) Ordinal() int {
	return int(d.ordinal)
}

// Month returns the calendar month.
func (d Date) Month() Month {
	month, _ := d.monthDay()
	return month
}

// Day returns the day of the month.
func (d Date) Day() int {
	_, day := d.monthDay()
	return day
}

func (d Date) monthDay() (Month, int) {
	leap := 0
	if IsLeapYear(int(d.year)) {
		leap = 1
	}
	table := &cumulativeDays[leap]
	month := December
	for m := February; m <= December; m++ {
		if int(d.ordinal) <= table[m-1] {
			month = m - 1
			break
		}
	}
	return month, int(d.ordinal) - table[month-1]
}

// ToCalendarDate returns the (year, month, day) triple.
func (d Date) ToCalendarDate() (year int, month Month, day int) {
	month, day = d.monthDay()
	return int(d.year), month, day
}

// ToOrdinalDate returns the (year, ordinal) pair.
func (d Date) ToOrdinalDate() (year, ordinal int) {
	return int(d.year), int(d.ordinal)
}

// ToJulianDay returns the Julian day number, day 0 being -4713-11-24.
func (d Date) ToJulianDay() int64 {
	y := int64(d.year) - 1
	return int64(d.ordinal) + 365*y + mathx.FloorDiv(y, 4) - mathx.FloorDiv(y, 100) +
		mathx.FloorDiv(y, 400) + julianDayEpochOffset
}

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	switch d.ToJulianDay() % 7 {
	case -6, 1:
		return Tuesday
	case -5, 2:
		return Wednesday
	case -4, 3:
		return Thursday
	case -3, 4:
		return Friday
	case -2, 5:
		return Saturday
	case -1, 6:
		return Sunday
	default:
		return Monday
	}
}

// ToISOWeekDate returns the ISO (year, week, weekday) triple. The ISO year
// differs from the calendar year for dates near January 1.
func (d Date) ToISOWeekDate() (year, week int, weekday Weekday) {
	year = int(d.year)
	weekday = d.Weekday()
	week = (int(d.ordinal) + 10 - weekday.NumberFromMonday()) / 7

	switch {
	case week == 0:
		return year - 1, WeeksInYear(year - 1), weekday
	case week == 53 && WeeksInYear(year) == 52:
		return year + 1, 1, weekday
	default:
		return year, week, weekday
	}
}

// ISOWeek returns just the ISO week number in 1..53.
func (d Date) ISOWeek() int {
	_, week, _ := d.ToISOWeekDate()
	return week
}

// SundayBasedWeek returns the zero-based week number where week 1 begins on
// the year's first Sunday, as used by strftime's %U.
func (d Date) SundayBasedWeek() int {
	return (int(d.ordinal) - d.Weekday().NumberDaysFromSunday() + 6) / 7
}

// MondayBasedWeek returns the zero-based week number where week 1 begins on
// the year's first Monday, as used by strftime's %W.
func (d Date) MondayBasedWeek() int {
	return (int(d.ordinal) - d.Weekday().NumberDaysFromMonday() + 6) / 7
}

// NextDay returns the following date, or (zero, false) at Max.
func (d Date) NextDay() (Date, bool) {
	if d == Max {
		return Date{}, false
	}
	if int(d.ordinal) == DaysInYear(int(d.year)) {
		return Date{d.year + 1, 1}, true
	}
	return Date{d.year, d.ordinal + 1}, true
}

// PreviousDay returns the preceding date, or (zero, false) at Min.
func (d Date) PreviousDay() (Date, bool) {
	if d == Min {
		return Date{}, false
	}
	if d.ordinal == 1 {
		return Date{d.year - 1, uint16(DaysInYear(int(d.year - 1)))}, true
	}
	return Date{d.year, d.ordinal - 1}, true
}

// ReplaceYear returns the same calendar month and day in another year.
// February 29 cannot move into a common year.
func (d Date) ReplaceYear(year int) (Date, error) {
	_, month, day := d.ToCalendarDate()
	return FromCalendarDate(year, month, day)
}

// ReplaceMonth returns the same year and day in another month, failing when
// the day exceeds the new month's length.
func (d Date) ReplaceMonth(month Month) (Date, error) {
	year, _, day := d.ToCalendarDate()
	return FromCalendarDate(year, month, day)
}

// ReplaceDay returns the same year and month with another day of the month.
func (d Date) ReplaceDay(day int) (Date, error) {
	year, month, _ := d.ToCalendarDate()
	return FromCalendarDate(year, month, day)
}

// Compare returns -1, 0, or 1 ordering d against o chronologically.
func (d Date) Compare(o Date) int {
	switch {
	case d.year < o.year:
		return -1
	case d.year > o.year:
		return 1
	case d.ordinal < o.ordinal:
		return -1
	case d.ordinal > o.ordinal:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is chronologically before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is chronologically after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }
