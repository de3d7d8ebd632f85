// File: format.go
// Title: Time Formatting and Parsing
// Description: Implements the textual form "H:MM:SS.f" with a trimmed but
//              always-present fraction, its parser, and the text, YAML, and
//              SQL codecs built on that pair.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package clock

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	tperr "github.com/tempuslib/tempus/core/error"
)

// String renders the time as "H:MM:SS.f" with an unpadded hour and the
// fraction trimmed to the shortest width that loses nothing, but never
// removed entirely: midnight is "0:00:00.0". A leap-second value renders
// its seconds field as 60, e.g. "23:59:60.5".
func (t Time) String() string {
	second := t.second
	value := t.nanosecond
	if value >= nanosPerSecond {
		second++
		value -= nanosPerSecond
	}
	width := 9
	for value%10 == 0 && width > 1 {
		value /= 10
		width--
	}
	return fmt.Sprintf("%d:%02d:%02d.%0*d", t.hour, t.minute, second, width, value)
}

// ParseTime reads the form produced by String. The fraction is optional on
// input and may carry 1 to 9 digits; hours may be one or two digits.
func ParseTime(s string) (Time, error) {
	invalid := func() error {
		return tperr.Newf("time %q is not in H:MM:SS[.f] form", s).
			WithCode(tperr.CodeInvalidFormat)
	}

	rest := s
	var fraction string
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		fraction = rest[dot+1:]
		rest = rest[:dot]
		if fraction == "" || len(fraction) > 9 {
			return Time{}, invalid()
		}
	}

	parts := strings.Split(rest, ":")
	if len(parts) != 3 {
		return Time{}, invalid()
	}
	hour, err := parseField(parts[0], 1, 2)
	if err != nil {
		return Time{}, invalid()
	}
	minute, err := parseField(parts[1], 2, 2)
	if err != nil {
		return Time{}, invalid()
	}
	second, err := parseField(parts[2], 2, 2)
	if err != nil {
		return Time{}, invalid()
	}

	nanos := 0
	if fraction != "" {
		if nanos, err = parseField(fraction, 1, 9); err != nil {
			return Time{}, invalid()
		}
		for i := len(fraction); i < 9; i++ {
			nanos *= 10
		}
	}

	// A seconds field of 60 is the textual encoding of a leap second: it
	// maps back onto second 59 with an out-of-range nanosecond fraction.
	if second == 60 {
		return FromHMSNanoLeap(hour, minute, 59, nanos+nanosPerSecond)
	}
	return FromHMSNano(hour, minute, second, nanos)
}

// parseField reads an unsigned decimal field of a bounded digit count.
func parseField(s string, minDigits, maxDigits int) (int, error) {
	if len(s) < minDigits || len(s) > maxDigits {
		return 0, fmt.Errorf("field %q has wrong width", s)
	}
	value := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("field %q is not numeric", s)
		}
		value = value*10 + int(c-'0')
	}
	return value, nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseTime.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Time) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar string nodes.
func (t *Time) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return tperr.Wrap(err, "time must be a YAML string").
			WithCode(tperr.CodeInvalidFormat)
	}
	return t.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer, storing the textual form.
func (t Time) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner for string and []byte columns.
func (t *Time) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	default:
		return tperr.Newf("cannot scan %T into Time", src).
			WithCode(tperr.CodeInvalidFormat)
	}
}
