// Package date implements the proleptic-Gregorian calendar date value.
//
// Package: date
// Title: Calendar Date Value
// Description: This package provides the Date type: a civil date stored as a
//              (year, ordinal day-of-year) pair, with validated constructors
//              from calendar, ordinal, ISO-week and Julian-day forms, exact
//              inverse conversions back to each of those forms, and
//              day-granularity arithmetic built on the duration package.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with all four calendar forms
//
// All calendar rules are proleptic Gregorian: the leap-year rule (divisible
// by 4 and either not by 100 or by 400) extends unchanged to years before
// the calendar's historical adoption, and to negative years. Every internal
// division on a year quantity uses floor semantics; truncating division
// silently shifts dates before year 1.
//
// The Julian day number is the interchange point for day arithmetic: day 0
// is -4713-11-24, and conversions in both directions are exact over the
// whole supported year range of ±9999.
package date
