// Package zone resolves naive date-times against timezone offset rules.
//
// Package: zone
// Title: Timezone Offset Resolution
// Description: This package provides the Offset value type, the TimeZone
//              capability interface, and the classification of a naive local
//              date-time against a zone's rules: exactly one valid offset
//              (Single), two valid offsets where clocks moved backward
//              (Ambiguous), or none where clocks jumped forward (None).
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation
//
// The calendar kernel itself never consults the process environment. The
// single point that does is System(), which captures the process-wide local
// offset exactly once; see its documentation for the concurrency hazard
// this isolates.
package zone
