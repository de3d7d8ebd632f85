// Package mathx implements integer arithmetic helpers for the tempus library.
//
// Package: mathx
// Title: Checked and Floor Integer Arithmetic
// Description: This package provides the small set of integer operations the
//              calendar kernel depends on: division and modulo that round
//              toward negative infinity (required for Julian-day and ISO-week
//              computations on negative years), and overflow-checked addition,
//              subtraction, and multiplication used by the duration and date
//              arithmetic.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with floor and checked operations
//
// Go's native / and % operators truncate toward zero. Calendar arithmetic on
// proleptic years before the epoch needs floor semantics instead: for example
// FloorDiv(-1, 4) is -1, while -1/4 is 0. Using the wrong one silently shifts
// every date before year 1 by a day or more, so all calendar code in this
// module goes through FloorDiv/FloorMod rather than the bare operators.
//
// The checked operations return an explicit ok bool instead of wrapping on
// overflow. They exist because arithmetic overflow is an expected outcome for
// duration and date math, not a programming error.
package mathx
