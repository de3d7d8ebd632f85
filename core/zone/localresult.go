// File: localresult.go
// Title: Local Time Classification
// Description: Defines the LocalResult type: the Single/Ambiguous/None
//              outcome of resolving a naive local date-time against a
//              timezone's offset rules.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package zone

import (
	tperr "github.com/tempuslib/tempus/core/error"
)

// ResultKind enumerates the three resolution outcomes.
type ResultKind int

const (
	// KindNone means no UTC instant produces this local reading: clocks
	// jumped forward over it.
	KindNone ResultKind = iota
	// KindSingle means exactly one offset is valid.
	KindSingle
	// KindAmbiguous means two offsets are valid: clocks moved backward
	// across this local reading.
	KindAmbiguous
)

// String returns a readable form of the kind.
func (k ResultKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSingle:
		return "single"
	case KindAmbiguous:
		return "ambiguous"
	default:
		return "invalid"
	}
}

// LocalResult classifies one naive local date-time against one zone rule
// set. It is a derived value, recomputed on each resolution, never stored.
type LocalResult struct {
	kind    ResultKind
	earlier OffsetDateTime
	later   OffsetDateTime
}

// SingleResult wraps the unique resolution of a local reading.
func SingleResult(odt OffsetDateTime) LocalResult {
	return LocalResult{kind: KindSingle, earlier: odt, later: odt}
}

// AmbiguousResult wraps the two resolutions of a repeated local reading,
// ordered by their UTC instant.
func AmbiguousResult(earlier, later OffsetDateTime) LocalResult {
	return LocalResult{kind: KindAmbiguous, earlier: earlier, later: later}
}

// NoneResult marks a skipped local reading.
func NoneResult() LocalResult {
	return LocalResult{kind: KindNone}
}

// Kind returns the classification.
func (r LocalResult) Kind() ResultKind { return r.kind }

// IsNone reports a skipped local reading.
func (r LocalResult) IsNone() bool { return r.kind == KindNone }

// IsSingle reports an unambiguous resolution.
func (r LocalResult) IsSingle() bool { return r.kind == KindSingle }

// IsAmbiguous reports a repeated local reading.
func (r LocalResult) IsAmbiguous() bool { return r.kind == KindAmbiguous }

// Single returns the unique resolution, or an error when the reading was
// ambiguous or skipped. Callers needing a best-effort value must choose
// explicitly through Earliest or Latest.
func (r LocalResult) Single() (OffsetDateTime, error) {
	switch r.kind {
	case KindSingle:
		return r.earlier, nil
	case KindAmbiguous:
		return OffsetDateTime{}, tperr.New("local time is ambiguous: clocks moved backward across it").
			WithCode(tperr.CodeAmbiguousLocalTime)
	default:
		return OffsetDateTime{}, tperr.New("local time was skipped: clocks moved forward over it").
			WithCode(tperr.CodeSkippedLocalTime)
	}
}

// Earliest returns the resolution with the earliest UTC instant, or
// (zero, false) for a skipped reading.
func (r LocalResult) Earliest() (OffsetDateTime, bool) {
	if r.kind == KindNone {
		return OffsetDateTime{}, false
	}
	return r.earlier, true
}

// Latest returns the resolution with the latest UTC instant, or
// (zero, false) for a skipped reading.
func (r LocalResult) Latest() (OffsetDateTime, bool) {
	if r.kind == KindNone {
		return OffsetDateTime{}, false
	}
	return r.later, true
}
