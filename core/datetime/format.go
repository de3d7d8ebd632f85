// File: format.go
// Title: DateTime Formatting and Parsing
// Description: Implements the textual form "YYYY-MM-DD H:MM:SS.f" joining
//              the date and time displays with a space, its parser, and the
//              text, YAML, and SQL codecs.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package datetime

import (
	"database/sql/driver"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tempuslib/tempus/core/clock"
	"github.com/tempuslib/tempus/core/date"
	tperr "github.com/tempuslib/tempus/core/error"
)

// String renders the value as the date and time displays joined by a space,
// e.g. "2024-02-29 13:45:00.5".
func (dt DateTime) String() string {
	return dt.date.String() + " " + dt.time.String()
}

// ParseDateTime reads the form produced by String. A "T" separator is
// accepted in place of the space for interchange with ISO-style sources.
func ParseDateTime(s string) (DateTime, error) {
	sep := strings.IndexAny(s, " T")
	if sep < 0 {
		return DateTime{}, tperr.Newf("datetime %q is missing the date/time separator", s).
			WithCode(tperr.CodeInvalidFormat)
	}

	d, err := date.ParseDate(s[:sep])
	if err != nil {
		return DateTime{}, err
	}
	t, err := clock.ParseTime(s[sep+1:])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{d, t}, nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseDateTime.
func (dt *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (dt DateTime) MarshalYAML() (interface{}, error) {
	return dt.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar string nodes.
func (dt *DateTime) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return tperr.Wrap(err, "datetime must be a YAML string").
			WithCode(tperr.CodeInvalidFormat)
	}
	return dt.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer, storing the textual form.
func (dt DateTime) Value() (driver.Value, error) {
	return dt.String(), nil
}

// Scan implements sql.Scanner for string and []byte columns.
func (dt *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return dt.UnmarshalText([]byte(v))
	case []byte:
		return dt.UnmarshalText(v)
	default:
		return tperr.Newf("cannot scan %T into DateTime", src).
			WithCode(tperr.CodeInvalidFormat)
	}
}
