// File: weekday.go
// Title: Weekday Enumeration
// Description: Defines the Weekday type with ISO numbering (Monday = 1
//              through Sunday = 7) and the numbering accessors needed by
//              week-based calendar computations.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package date

import (
	"strconv"

	tperr "github.com/tempuslib/tempus/core/error"
)

// Weekday is a day of the week with ISO numbering: Monday = 1 .. Sunday = 7.
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// String returns the English weekday name, or "Weekday(n)" for invalid values.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w-1]
}

// IsValid reports whether w is one of the seven weekdays.
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

// Next returns the weekday after w, wrapping Sunday to Monday.
func (w Weekday) Next() Weekday {
	if w == Sunday {
		return Monday
	}
	return w + 1
}

// Previous returns the weekday before w, wrapping Monday to Sunday.
func (w Weekday) Previous() Weekday {
	if w == Monday {
		return Sunday
	}
	return w - 1
}

// NumberFromMonday returns the 1-based ISO number: Monday = 1 .. Sunday = 7.
func (w Weekday) NumberFromMonday() int {
	return int(w)
}

// NumberFromSunday returns the 1-based number with Sunday first:
// Sunday = 1 .. Saturday = 7.
func (w Weekday) NumberFromSunday() int {
	if w == Sunday {
		return 1
	}
	return int(w) + 1
}

// NumberDaysFromMonday returns the 0-based offset from Monday.
func (w Weekday) NumberDaysFromMonday() int {
	return int(w) - 1
}

// NumberDaysFromSunday returns the 0-based offset from Sunday.
func (w Weekday) NumberDaysFromSunday() int {
	if w == Sunday {
		return 0
	}
	return int(w)
}

// WeekdayFromMonday converts a 1-based ISO weekday number into a Weekday.
func WeekdayFromMonday(n int) (Weekday, error) {
	if n < 1 || n > 7 {
		return 0, tperr.ComponentRange("weekday", 1, 7, int64(n))
	}
	return Weekday(n), nil
}
