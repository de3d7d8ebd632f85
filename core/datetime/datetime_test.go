// File: datetime_test.go
// Title: DateTime Tests
// Description: Tests for carry-propagating arithmetic, ordering, and the
//              Unix interchange helpers.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempuslib/tempus/core/clock"
	"github.com/tempuslib/tempus/core/date"
	"github.com/tempuslib/tempus/core/duration"
)

func mustDateTime(t *testing.T, year int, month date.Month, day, hour, minute, second, nano int) DateTime {
	t.Helper()
	d, err := date.FromCalendarDate(year, month, day)
	require.NoError(t, err)
	tm, err := clock.FromHMSNano(hour, minute, second, nano)
	require.NoError(t, err)
	return New(d, tm)
}

func TestAccessors(t *testing.T) {
	dt := mustDateTime(t, 2024, date.February, 29, 13, 45, 30, 500_000_000)

	assert.Equal(t, 2024, dt.Year())
	assert.Equal(t, date.February, dt.Month())
	assert.Equal(t, 29, dt.Day())
	assert.Equal(t, 60, dt.Ordinal())
	assert.Equal(t, date.Thursday, dt.Weekday())
	assert.Equal(t, 13, dt.Hour())
	assert.Equal(t, 45, dt.Minute())
	assert.Equal(t, 30, dt.Second())
	assert.Equal(t, 500_000_000, dt.Nanosecond())
	assert.Equal(t, dt.Date(), AtMidnight(dt.Date()).Date())
	assert.Equal(t, clock.Midnight, AtMidnight(dt.Date()).Time())
}

func TestCheckedAddCarry(t *testing.T) {
	testCases := []struct {
		name  string
		start DateTime
		d     duration.Duration
		want  DateTime
	}{
		{
			"sub-day within same day",
			mustDateTime(t, 2024, date.June, 15, 10, 0, 0, 0),
			duration.Hours(3),
			mustDateTime(t, 2024, date.June, 15, 13, 0, 0, 0),
		},
		{
			"clock wraps into next day",
			mustDateTime(t, 2024, date.June, 15, 23, 0, 0, 0),
			duration.Hours(2),
			mustDateTime(t, 2024, date.June, 16, 1, 0, 0, 0),
		},
		{
			"whole days plus wrap",
			mustDateTime(t, 2024, date.February, 28, 23, 30, 0, 0),
			duration.Days(1).SaturatingAdd(duration.Hours(1)),
			mustDateTime(t, 2024, date.March, 1, 0, 30, 0, 0),
		},
		{
			"negative duration borrows a day",
			mustDateTime(t, 2024, date.March, 1, 0, 30, 0, 0),
			duration.Hours(-1),
			mustDateTime(t, 2024, date.February, 29, 23, 30, 0, 0),
		},
		{
			"one nanosecond over midnight",
			mustDateTime(t, 2023, date.December, 31, 23, 59, 59, 999_999_999),
			duration.Nanosecond,
			mustDateTime(t, 2024, date.January, 1, 0, 0, 0, 0),
		},
		{
			"midnight minus one nanosecond",
			mustDateTime(t, 2024, date.January, 1, 0, 0, 0, 0),
			duration.Nanoseconds(-1),
			mustDateTime(t, 2023, date.December, 31, 23, 59, 59, 999_999_999),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.start.CheckedAdd(tc.d)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)

			// Subtracting the same duration returns to the start.
			back, ok := got.CheckedSub(tc.d)
			require.True(t, ok)
			assert.Equal(t, tc.start, back)
		})
	}
}

func TestCheckedAddOverflow(t *testing.T) {
	_, ok := Max.CheckedAdd(duration.Nanosecond)
	assert.False(t, ok)
	_, ok = Max.CheckedAdd(duration.Days(1))
	assert.False(t, ok)
	_, ok = Min.CheckedSub(duration.Nanosecond)
	assert.False(t, ok)
	_, ok = Min.CheckedAdd(duration.Nanoseconds(-1))
	assert.False(t, ok)

	// The carry alone can push past the date range.
	almost := New(date.Max, clock.Midnight)
	moved, ok := almost.CheckedAdd(duration.Hours(23))
	require.True(t, ok)
	assert.Equal(t, 23, moved.Hour())
	_, ok = almost.CheckedAdd(duration.Hours(25))
	assert.False(t, ok)
}

func TestSaturating(t *testing.T) {
	assert.Equal(t, Max, Max.SaturatingAdd(duration.Second))
	assert.Equal(t, Min, Min.SaturatingAdd(duration.Seconds(-1)))
	assert.Equal(t, Min, Min.SaturatingSub(duration.Second))
	assert.Equal(t, Max, Max.SaturatingSub(duration.Seconds(-1)))

	dt := mustDateTime(t, 2024, date.June, 15, 12, 0, 0, 0)
	assert.Equal(t, dt.MustAdd(duration.Hours(1)), dt.SaturatingAdd(duration.Hours(1)))
}

func TestMustPanics(t *testing.T) {
	assert.Panics(t, func() { Max.MustAdd(duration.Nanosecond) })
	assert.Panics(t, func() { Min.MustSub(duration.Nanosecond) })
}

func TestSubDuration(t *testing.T) {
	a := mustDateTime(t, 2024, date.March, 1, 0, 30, 0, 0)
	b := mustDateTime(t, 2024, date.February, 29, 23, 30, 0, 0)

	assert.Equal(t, duration.Hours(1), a.Sub(b))
	assert.Equal(t, duration.Hours(-1), b.Sub(a))
	assert.Equal(t, duration.Zero, a.Sub(a))

	c := mustDateTime(t, 2024, date.March, 2, 0, 0, 0, 1)
	assert.Equal(t, duration.New(84_600, 1), c.Sub(a))
}

func TestCompare(t *testing.T) {
	a := mustDateTime(t, 2024, date.June, 15, 10, 0, 0, 0)
	b := mustDateTime(t, 2024, date.June, 15, 10, 0, 0, 1)
	c := mustDateTime(t, 2024, date.June, 16, 0, 0, 0, 0)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, c.After(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.True(t, Min.Before(Max))
}

func TestUnixSeconds(t *testing.T) {
	epoch := mustDateTime(t, 1970, date.January, 1, 0, 0, 0, 0)
	assert.Equal(t, int64(0), epoch.UnixSeconds())

	// 2000-01-01T00:00:00Z is 946684800.
	y2k := mustDateTime(t, 2000, date.January, 1, 0, 0, 0, 0)
	assert.Equal(t, int64(946_684_800), y2k.UnixSeconds())

	// Negative timestamps floor correctly.
	before := mustDateTime(t, 1969, date.December, 31, 23, 59, 59, 0)
	assert.Equal(t, int64(-1), before.UnixSeconds())
}

func TestFromUnixSeconds(t *testing.T) {
	dt, err := FromUnixSeconds(946_684_800)
	require.NoError(t, err)
	assert.Equal(t, mustDateTime(t, 2000, date.January, 1, 0, 0, 0, 0), dt)

	dt, err = FromUnixSeconds(-1)
	require.NoError(t, err)
	assert.Equal(t, mustDateTime(t, 1969, date.December, 31, 23, 59, 59, 0), dt)

	// Round trips across a spread of timestamps.
	for _, ts := range []int64{0, 1, -1, 86_400, -86_400, 946_684_800, 1_700_000_000, -62_135_596_800} {
		dt, err := FromUnixSeconds(ts)
		require.NoError(t, err)
		assert.Equal(t, ts, dt.UnixSeconds(), "timestamp %d", ts)
	}

	_, err = FromUnixSeconds(1 << 62)
	assert.Error(t, err)
}

func TestReplaceComponents(t *testing.T) {
	dt := mustDateTime(t, 2024, date.June, 15, 10, 0, 0, 0)
	other := mustDateTime(t, 2025, date.January, 1, 10, 0, 0, 0)

	assert.Equal(t, other, dt.ReplaceDate(other.Date()))
	assert.Equal(t, mustDateTime(t, 2024, date.June, 15, 23, 59, 0, 0),
		dt.ReplaceTime(mustDateTime(t, 1, date.January, 1, 23, 59, 0, 0).Time()))
	// The receiver is unchanged.
	assert.Equal(t, 10, dt.Hour())
}
