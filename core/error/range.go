// File: range.go
// Title: Component Range Errors
// Description: Implements the RangeError type returned whenever a named
//              date or time component falls outside its permitted bounds.
//              The violated name, bounds, and offending value stay accessible
//              so callers can react without parsing the message.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package error

import (
	"errors"
	"fmt"
)

// RangeError reports that a named component was outside its permitted range.
// The bounds are inclusive. When the range depends on other components (for
// example the day of a month), conditional is set and the message says so.
type RangeError struct {
	name        string
	minimum     int64
	maximum     int64
	value       int64
	conditional bool
}

// ComponentRange creates a RangeError for a fixed inclusive range.
func ComponentRange(name string, minimum, maximum, value int64) *RangeError {
	return &RangeError{
		name:    name,
		minimum: minimum,
		maximum: maximum,
		value:   value,
	}
}

// ComponentRangeConditional creates a RangeError whose bounds depend on the
// values of other components, such as the day within a given month and year.
func ComponentRangeConditional(name string, minimum, maximum, value int64) *RangeError {
	return &RangeError{
		name:        name,
		minimum:     minimum,
		maximum:     maximum,
		value:       value,
		conditional: true,
	}
}

// Error implements the standard error interface
func (e *RangeError) Error() string {
	if e.conditional {
		return fmt.Sprintf("%s must be in the range %d to %d, given values of other parameters",
			e.name, e.minimum, e.maximum)
	}
	return fmt.Sprintf("%s must be in the range %d to %d", e.name, e.minimum, e.maximum)
}

// Name returns the name of the violated component
func (e *RangeError) Name() string {
	return e.name
}

// Minimum returns the inclusive lower bound
func (e *RangeError) Minimum() int64 {
	return e.minimum
}

// Maximum returns the inclusive upper bound
func (e *RangeError) Maximum() int64 {
	return e.maximum
}

// Value returns the offending value
func (e *RangeError) Value() int64 {
	return e.value
}

// Conditional reports whether the bounds depend on other components
func (e *RangeError) Conditional() bool {
	return e.conditional
}

// Code returns CodeComponentRange so RangeError participates in code checks
func (e *RangeError) Code() Code {
	return CodeComponentRange
}

// Severity returns SeverityLow; range violations are correctable input errors
func (e *RangeError) Severity() Severity {
	return SeverityLow
}

// AsComponentRange extracts a RangeError from an error chain.
func AsComponentRange(err error) (*RangeError, bool) {
	var re *RangeError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsComponentRange reports whether err is (or wraps) a RangeError.
func IsComponentRange(err error) bool {
	_, ok := AsComponentRange(err)
	return ok
}
