// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that embedding
//              applications can prioritize handling without inspecting
//              messages. The library itself only distinguishes recoverable
//              input errors from internal invariant violations.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates invalid input the caller can correct
	// Examples: component out of range, unparseable text
	SeverityLow Severity = iota

	// SeverityMedium indicates a condition needing a caller decision
	// Examples: ambiguous or skipped local time during zone resolution
	SeverityMedium

	// SeverityHigh indicates a broken external input set
	// Examples: malformed or inconsistent zone rule files
	SeverityHigh

	// SeverityCritical indicates an internal invariant violation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeComponentRange, CodeInvalidFormat:
		return SeverityLow
	case CodeAmbiguousLocalTime, CodeSkippedLocalTime:
		return SeverityMedium
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
