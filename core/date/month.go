// File: month.go
// Title: Month Enumeration
// Description: Defines the Month type with January through December numbered
//              1 to 12, plus navigation and length helpers.
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

// Month is a calendar month, January = 1 through December = 12.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// String returns the English month name, or "Month(n)" for invalid values.
func (m Month) String() string {
	if m < January || m > December {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// IsValid reports whether m is one of the twelve calendar months.
func (m Month) IsValid() bool {
	return m >= January && m <= December
}

// Next returns the month after m, wrapping December to January.
func (m Month) Next() Month {
	if m == December {
		return January
	}
	return m + 1
}

// Previous returns the month before m, wrapping January to December.
func (m Month) Previous() Month {
	if m == January {
		return December
	}
	return m - 1
}

// MonthFromNumber converts a 1-based month number into a Month.
func MonthFromNumber(n int) (Month, error) {
	if n < 1 || n > 12 {
		return 0, tperr.ComponentRange("month", 1, 12, int64(n))
	}
	return Month(n), nil
}
