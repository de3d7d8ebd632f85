// File: offset.go
// Title: UTC Offset Value
// Description: Defines the Offset type: a signed second count from UTC with
//              magnitude strictly below one day, validated constructors with
//              sign coercion, component accessors, and the textual codec.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package zone

import (
	"fmt"
	"strings"

	"github.com/tempuslib/tempus/core/duration"
	tperr "github.com/tempuslib/tempus/core/error"
)

const maxOffsetSeconds = 86_400 - 1

// Offset is a signed shift from UTC in seconds, |seconds| < 86400. The zero
// value is UTC itself.
type Offset struct {
	seconds int32
}

// UTC is the zero offset.
var UTC = Offset{}

// OffsetFromHMS builds an offset from hour, minute, and second components.
// Components may carry individual signs on input, but the result takes the
// sign of the most significant non-zero component: (-5, 30, 0) means
// -05:30:00, five and a half hours west.
func OffsetFromHMS(hours, minutes, seconds int) (Offset, error) {
	if hours < -23 || hours > 23 {
		return Offset{}, tperr.ComponentRange("hours", -23, 23, int64(hours))
	}
	if minutes < -59 || minutes > 59 {
		return Offset{}, tperr.ComponentRange("minutes", -59, 59, int64(minutes))
	}
	if seconds < -59 || seconds > 59 {
		return Offset{}, tperr.ComponentRange("seconds", -59, 59, int64(seconds))
	}

	sign := 1
	switch {
	case hours < 0, hours == 0 && minutes < 0, hours == 0 && minutes == 0 && seconds < 0:
		sign = -1
	}
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	total := sign * (abs(hours)*3_600 + abs(minutes)*60 + abs(seconds))
	return Offset{int32(total)}, nil
}

// OffsetFromSeconds builds an offset from a raw second count.
func OffsetFromSeconds(seconds int) (Offset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return Offset{}, tperr.ComponentRange("seconds", -maxOffsetSeconds, maxOffsetSeconds, int64(seconds))
	}
	return Offset{int32(seconds)}, nil
}

// WholeSeconds returns the full signed offset in seconds.
func (o Offset) WholeSeconds() int {
	return int(o.seconds)
}

// WholeHours returns the signed whole hours of the offset.
func (o Offset) WholeHours() int {
	return int(o.seconds / 3_600)
}

// MinutesPastHour returns the signed minutes beyond the whole hours.
func (o Offset) MinutesPastHour() int {
	return int(o.seconds / 60 % 60)
}

// SecondsPastMinute returns the signed seconds beyond the whole minutes.
func (o Offset) SecondsPastMinute() int {
	return int(o.seconds % 60)
}

// AsHMS returns the three sign-consistent components.
func (o Offset) AsHMS() (hours, minutes, seconds int) {
	return o.WholeHours(), o.MinutesPastHour(), o.SecondsPastMinute()
}

// AsDuration returns the offset as a duration for date-time arithmetic.
func (o Offset) AsDuration() duration.Duration {
	return duration.Seconds(int64(o.seconds))
}

// IsUTC reports whether the offset is zero.
func (o Offset) IsUTC() bool { return o.seconds == 0 }

// IsPositive reports whether the offset is east of UTC.
func (o Offset) IsPositive() bool { return o.seconds > 0 }

// IsNegative reports whether the offset is west of UTC.
func (o Offset) IsNegative() bool { return o.seconds < 0 }

// Compare returns -1, 0, or 1 ordering o against other by signed seconds.
func (o Offset) Compare(other Offset) int {
	switch {
	case o.seconds < other.seconds:
		return -1
	case o.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

// String renders the offset as "+HH:MM:SS" or "-HH:MM:SS".
func (o Offset) String() string {
	sign := "+"
	secs := int(o.seconds)
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, secs/3_600, secs/60%60, secs%60)
}

// ParseOffset reads "±HH", "±HH:MM", or "±HH:MM:SS". The sign is required
// except for the literal "Z", which is UTC.
func ParseOffset(s string) (Offset, error) {
	if s == "Z" || s == "z" {
		return UTC, nil
	}
	invalid := func() error {
		return tperr.Newf("offset %q is not in ±HH[:MM[:SS]] form", s).
			WithCode(tperr.CodeInvalidFormat)
	}

	if len(s) == 0 || (s[0] != '+' && s[0] != '-') {
		return Offset{}, invalid()
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}

	parts := strings.Split(s[1:], ":")
	if len(parts) < 1 || len(parts) > 3 {
		return Offset{}, invalid()
	}
	values := [3]int{}
	for i, p := range parts {
		if len(p) != 2 || p[0] < '0' || p[0] > '9' || p[1] < '0' || p[1] > '9' {
			return Offset{}, invalid()
		}
		values[i] = int(p[0]-'0')*10 + int(p[1]-'0')
	}

	return OffsetFromHMS(sign*values[0], sign*values[1], sign*values[2])
}
