// File: offsetdatetime.go
// Title: Offset-Carrying Date-Time
// Description: Defines the OffsetDateTime type pairing a local date-time
//              with the offset that produced it, plus the FromUTC/FromLocal
//              resolver entry points and UTC-instant ordering.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package zone

import (
	"github.com/tempuslib/tempus/core/datetime"
)

// OffsetDateTime is a local date-time together with its offset from UTC.
// Values built through FromLocal carry an offset that was valid for at
// least one instant of that local day; values built through FromUTC carry
// the offset in effect at their instant.
type OffsetDateTime struct {
	local  datetime.DateTime
	offset Offset
}

// NewOffsetDateTime pairs a local reading with an offset without consulting
// any zone rules. Prefer FromUTC or FromLocal when a TimeZone is available.
func NewOffsetDateTime(local datetime.DateTime, offset Offset) OffsetDateTime {
	return OffsetDateTime{local: local, offset: offset}
}

// FromUTC attaches a zone's offset to a UTC instant. This always succeeds:
// a UTC instant has exactly one offset in any zone. Locals that would leave
// the representable date range saturate to its boundary.
func FromUTC(utc datetime.DateTime, tz TimeZone) OffsetDateTime {
	offset := tz.OffsetAtUTC(utc)
	return OffsetDateTime{
		local:  utc.SaturatingAdd(offset.AsDuration()),
		offset: offset,
	}
}

// FromLocal resolves a naive local reading against a zone's rules,
// classifying it as Single, Ambiguous, or None.
func FromLocal(local datetime.DateTime, tz TimeZone) LocalResult {
	return tz.OffsetsAtLocal(local)
}

// Local returns the wall-clock reading.
func (o OffsetDateTime) Local() datetime.DateTime { return o.local }

// Offset returns the offset from UTC.
func (o OffsetDateTime) Offset() Offset { return o.offset }

// UTC returns the instant as a UTC date-time.
func (o OffsetDateTime) UTC() datetime.DateTime {
	return o.local.SaturatingSub(o.offset.AsDuration())
}

// InZone re-expresses the same instant in another zone.
func (o OffsetDateTime) InZone(tz TimeZone) OffsetDateTime {
	return FromUTC(o.UTC(), tz)
}

// Compare orders two values by their UTC instant; equal instants with
// different offsets compare equal.
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	return o.UTC().Compare(other.UTC())
}

// Before reports whether o's instant precedes other's.
func (o OffsetDateTime) Before(other OffsetDateTime) bool { return o.Compare(other) < 0 }

// After reports whether o's instant follows other's.
func (o OffsetDateTime) After(other OffsetDateTime) bool { return o.Compare(other) > 0 }

// String renders the local reading followed by its offset, e.g.
// "2024-06-15 12:00:00.0 +02:00:00".
func (o OffsetDateTime) String() string {
	return o.local.String() + " " + o.offset.String()
}
