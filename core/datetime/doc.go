// Package datetime composes a calendar date and a clock time into one value.
//
// Package: datetime
// Title: Combined Date-Time Value
// Description: This package provides the DateTime type: a date.Date paired
//              with a clock.Time, ordered lexicographically. Its arithmetic
//              splits a duration into whole-day and sub-day parts, lets the
//              clock layer report day rollover as a carry, and folds that
//              carry into the date.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation
//
// A DateTime carries no offset or zone: it is a naive wall-clock reading.
// The zone package interprets such values against timezone rules. The Unix
// interchange helpers treat the value as UTC.
package datetime
