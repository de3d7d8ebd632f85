// Package error provides structured error handling for the tempus library.
//
// Package: error
// Title: tempus Error Handling Framework
// Description: This package implements the structured error system used by
//              every tempus value type. It provides error codes for consistent
//              classification, severity levels, contextual wrapping, and the
//              first-class ComponentRange error that carries the violated
//              component name and its permitted bounds.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with codes and ComponentRange
//
// Features:
// - Structured error codes for consistent classification
// - Error severity levels
// - Contextual error wrapping with key-value details
// - First-class ComponentRange errors exposing name, bounds, and value
//
// Errors in tempus are returned, never logged: a value library cannot know
// which failures its caller considers fatal. Arithmetic overflow is not an
// error at all — the arithmetic operations report it as a (zero, false)
// absence — so every error produced here describes invalid input, not an
// out-of-range result.
//
// Usage:
//   import tperr "github.com/tempuslib/tempus/core/error"
//
//   // Reject a component outside its permitted range
//   err := tperr.ComponentRange("hour", 0, 23, 24)
//
//   // Recover the structured information later
//   if cr, ok := tperr.AsComponentRange(err); ok {
//     fmt.Println(cr.Name(), cr.Minimum(), cr.Maximum())
//   }
//
//   // Check error classification
//   if tperr.HasCode(err, tperr.CodeComponentRange) {
//     // handle invalid input
//   }
package error
