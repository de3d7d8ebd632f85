// File: timezone.go
// Title: TimeZone Capability Interface
// Description: Defines the TimeZone interface as the minimal capability set
//              the resolver needs, the trivial fixed-offset implementation,
//              and the single cached acquisition point for the process-wide
//              system offset.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package zone

import (
	"sync"
	"time"

	"github.com/tempuslib/tempus/core/datetime"
)

// TimeZone is the capability set a zone must provide: an offset for any UTC
// instant, and the set of offsets that could produce a given local reading.
type TimeZone interface {
	// Name returns the zone's identifier.
	Name() string
	// OffsetAtUTC returns the offset in effect at a UTC instant.
	OffsetAtUTC(utc datetime.DateTime) Offset
	// OffsetsAtLocal classifies a naive local reading against the zone's
	// rules, attaching each valid offset.
	OffsetsAtLocal(local datetime.DateTime) LocalResult
}

// FixedZone is a TimeZone with one constant offset and therefore no
// transitions: every local reading resolves to Single.
type FixedZone struct {
	name   string
	offset Offset
}

// NewFixedZone builds a constant-offset zone.
func NewFixedZone(name string, offset Offset) *FixedZone {
	return &FixedZone{name: name, offset: offset}
}

// Name returns the zone's identifier.
func (z *FixedZone) Name() string { return z.name }

// Offset returns the constant offset.
func (z *FixedZone) Offset() Offset { return z.offset }

// OffsetAtUTC implements TimeZone; the offset never varies.
func (z *FixedZone) OffsetAtUTC(datetime.DateTime) Offset { return z.offset }

// OffsetsAtLocal implements TimeZone; every local reading is unambiguous.
func (z *FixedZone) OffsetsAtLocal(local datetime.DateTime) LocalResult {
	return SingleResult(OffsetDateTime{local: local, offset: z.offset})
}

var (
	systemOnce sync.Once
	systemZone *FixedZone
)

// System returns a zone frozen at the offset the process environment
// reported the first time System was called. Reading the environment's
// timezone concurrently with mutations of it (such as setenv of TZ) is
// unsound on some platforms, so this is the library's single acquisition
// point: one read, cached for the process lifetime. Long-running processes
// that cross a DST transition keep the captured offset; use a rule-based
// zone when that matters.
func System() TimeZone {
	systemOnce.Do(func() {
		name, offsetSeconds := time.Now().Zone()
		systemZone = NewFixedZone(name, Offset{int32(offsetSeconds)})
	})
	return systemZone
}
