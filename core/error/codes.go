// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the tempus library. These codes enable
//              structured error handling without string matching on messages.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the tempus library
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Validation
	CodeComponentRange Code = "COMPONENT_RANGE"
	CodeInvalidFormat  Code = "INVALID_FORMAT"

	// Zone resolution
	CodeAmbiguousLocalTime Code = "AMBIGUOUS_LOCAL_TIME"
	CodeSkippedLocalTime   Code = "SKIPPED_LOCAL_TIME"

	// Rule-set loading
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeComponentRange, CodeInvalidFormat,
		CodeAmbiguousLocalTime, CodeSkippedLocalTime,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeComponentRange, CodeInvalidFormat:
		return "validation"
	case CodeAmbiguousLocalTime, CodeSkippedLocalTime:
		return "zone"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
