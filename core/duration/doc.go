// Package duration implements the signed elapsed-time value used across tempus.
//
// Package: duration
// Title: Signed Duration Value
// Description: This package provides the Duration type: a signed count of
//              whole seconds plus a sign-consistent nanosecond remainder.
//              Every constructing operation normalizes to that form, all
//              arithmetic is overflow-checked or saturating, and the whole-unit
//              accessors use floor semantics so negative durations round toward
//              negative infinity.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with checked and saturating arithmetic
//
// The representation invariant: the nanosecond remainder lies in
// (-1_000_000_000, 1_000_000_000) and its sign matches the seconds' sign
// (either may be zero). A duration of -90 seconds and -500ms is stored as
// (-90, -500_000_000), never as (-91, +500_000_000).
//
// Two accessor families coexist deliberately. WholeSeconds, WholeMinutes,
// WholeHours, WholeDays, and WholeWeeks floor toward negative infinity, so a
// -90 minute duration reports -2 whole hours. AsParts returns the raw
// truncating (seconds, nanoseconds) pair; the clock and date arithmetic
// layers need magnitude splitting, and flooring there would double-count a
// borrowed day.
//
// Arithmetic overflow is reported as (Zero, false) by the Checked* operations
// and clamped to Min/Max by the Saturating* operations. It is never an error
// value.
package duration
