// File: format.go
// Title: Date Formatting and Parsing
// Description: Implements the textual form "YYYY-MM-DD" with proper sign
//              handling for negative years, its exact-inverse parser, and
//              the text, YAML, and SQL codecs built on that pair.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package date

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	tperr "github.com/tempuslib/tempus/core/error"
)

// String renders the date as "YYYY-MM-DD": the year zero-padded to four
// digits, or five when negative so the sign has room. A year of magnitude
// 10000 or more would render with an explicit sign and no padding, though
// the supported range never produces one.
func (d Date) String() string {
	year, month, day := d.ToCalendarDate()
	switch {
	case year >= 10_000 || year <= -10_000:
		return fmt.Sprintf("%+d-%02d-%02d", year, month, day)
	case year < 0:
		return fmt.Sprintf("%05d-%02d-%02d", year, month, day)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}
}

// ParseDate reads the form produced by String: an optionally signed year of
// at least four digits, then zero-padded two-digit month and day.
func ParseDate(s string) (Date, error) {
	invalid := func() error {
		return tperr.Newf("date %q is not in YYYY-MM-DD form", s).
			WithCode(tperr.CodeInvalidFormat)
	}

	rest := s
	sign := 1
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		if rest[0] == '-' {
			sign = -1
		}
		rest = rest[1:]
	}

	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return Date{}, invalid()
	}
	year, err := parseDigits(parts[0], 4, 6)
	if err != nil {
		return Date{}, invalid()
	}
	monthNum, err := parseDigits(parts[1], 2, 2)
	if err != nil {
		return Date{}, invalid()
	}
	day, err := parseDigits(parts[2], 2, 2)
	if err != nil {
		return Date{}, invalid()
	}

	return FromCalendarDate(sign*year, Month(monthNum), day)
}

// parseDigits reads an unsigned decimal field of a bounded digit count.
func parseDigits(s string, minDigits, maxDigits int) (int, error) {
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
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseDate.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar string nodes.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return tperr.Wrap(err, "date must be a YAML string").
			WithCode(tperr.CodeInvalidFormat)
	}
	return d.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer, storing the textual form.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner for string and []byte columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return tperr.Newf("cannot scan %T into Date", src).
			WithCode(tperr.CodeInvalidFormat)
	}
}
