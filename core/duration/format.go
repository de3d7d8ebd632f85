// File: format.go
// Title: Duration Formatting and Parsing
// Description: Implements the compact unit display form ("1d2h30m"), its
//              exact-inverse parser, and the text and YAML codecs built on
//              that pair.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package duration

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	tperr "github.com/tempuslib/tempus/core/error"
	"github.com/tempuslib/tempus/utils/mathx"
)

// String renders the duration as a signed sequence of unit terms, largest
// unit first, omitting zero terms: "1d2h30m", "-90m" prints as "-1h30m",
// the zero duration as "0s".
func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}

	// Build from unsigned magnitudes so Min formats without negation overflow.
	secs := unsignedAbs(d.seconds)
	nanos := uint64(d.nanoseconds)
	if d.nanoseconds < 0 {
		nanos = uint64(-int64(d.nanoseconds))
	}

	writeTerm(&b, secs/secondsPerDay, "d")
	writeTerm(&b, secs/secondsPerHour%24, "h")
	writeTerm(&b, secs/secondsPerMinute%60, "m")
	writeTerm(&b, secs%60, "s")
	writeTerm(&b, nanos/nanosPerMilli, "ms")
	writeTerm(&b, nanos/nanosPerMicro%1_000, "µs")
	writeTerm(&b, nanos%1_000, "ns")
	return b.String()
}

func writeTerm(b *strings.Builder, value uint64, unit string) {
	if value != 0 {
		fmt.Fprintf(b, "%d%s", value, unit)
	}
}

func unsignedAbs(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// parseUnits maps parser unit suffixes to their scale. Sub-second units
// carry their scale in nanoseconds and are flagged by subsec.
var parseUnits = []struct {
	suffix string
	scale  int64
	subsec bool
}{
	{"ns", 1, true},
	{"µs", nanosPerMicro, true},
	{"us", nanosPerMicro, true},
	{"ms", nanosPerMilli, true},
	{"w", secondsPerWeek, false},
	{"d", secondsPerDay, false},
	{"h", secondsPerHour, false},
	{"m", secondsPerMinute, false},
	{"s", 1, false},
}

// Parse reads the compact unit form produced by String. An optional leading
// sign applies to the whole value; at least one term is required. "us" is
// accepted as an alias for "µs".
func Parse(s string) (Duration, error) {
	input := s
	if s == "" {
		return Zero, tperr.New("empty duration").WithCode(tperr.CodeInvalidFormat)
	}

	negative := false
	if s[0] == '+' || s[0] == '-' {
		negative = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return Zero, tperr.Newf("duration %q has a sign but no terms", input).
			WithCode(tperr.CodeInvalidFormat)
	}

	var totalSecs, totalNanos int64
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return Zero, tperr.Newf("duration %q: expected digits at %q", input, s).
				WithCode(tperr.CodeInvalidFormat)
		}

		var value int64
		for _, c := range []byte(s[:i]) {
			scaled, ok := mathx.CheckedMul(value, 10)
			if ok {
				scaled, ok = mathx.CheckedAdd(scaled, int64(c-'0'))
			}
			if !ok {
				return Zero, tperr.Newf("duration %q: term too large", input).
					WithCode(tperr.CodeInvalidFormat)
			}
			value = scaled
		}
		s = s[i:]

		matched := false
		for _, u := range parseUnits {
			if strings.HasPrefix(s, u.suffix) {
				// "m" must not swallow the first byte of "ms".
				if u.suffix == "m" && strings.HasPrefix(s, "ms") {
					continue
				}
				term, ok := mathx.CheckedMul(value, u.scale)
				if !ok {
					return Zero, tperr.Newf("duration %q: term too large", input).
						WithCode(tperr.CodeInvalidFormat)
				}
				// Accumulate with the sign already applied so the minimum
				// value, whose magnitude exceeds MaxInt64, still parses.
				if negative {
					term, ok = mathx.CheckedSub(0, term)
				}
				if ok {
					if u.subsec {
						totalNanos, ok = mathx.CheckedAdd(totalNanos, term)
					} else {
						totalSecs, ok = mathx.CheckedAdd(totalSecs, term)
					}
				}
				if !ok {
					return Zero, tperr.Newf("duration %q overflows", input).
						WithCode(tperr.CodeInvalidFormat)
				}
				s = s[len(u.suffix):]
				matched = true
				break
			}
		}
		if !matched {
			return Zero, tperr.Newf("duration %q: unknown unit at %q", input, s).
				WithCode(tperr.CodeInvalidFormat)
		}
	}

	return New(totalSecs, totalNanos), nil
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar string nodes.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return tperr.Wrap(err, "duration must be a YAML string").
			WithCode(tperr.CodeInvalidFormat)
	}
	return d.UnmarshalText([]byte(s))
}
