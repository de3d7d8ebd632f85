// Package clock implements the time-of-day value type.
//
// Package: clock
// Title: Clock Time Value
// Description: This package provides the Time type: an hour/minute/second/
//              nanosecond wall-clock value with no attached date. Arithmetic
//              never crosses a day boundary silently; instead the adjusting
//              operations report day rollover as an explicit Adjustment signal
//              that the datetime layer folds into its date component.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with adjusting arithmetic
//
// For normally constructed values the nanosecond field lies in
// [0, 1_000_000_000). Leap-second values are representable through the
// dedicated FromHMSNanoLeap constructor, which permits the nanosecond field
// to reach 1_999_999_999; no other constructor and no arithmetic operation
// produces such a value, and the adjusting operations assume their receiver
// is normalized.
package clock
