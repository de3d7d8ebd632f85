// File: tzdb_test.go
// Title: Rule Zone and Loader Tests
// Description: Tests for TOML and YAML zone file loading, load-time
//              validation, and the DST classification behavior of RuleZone
//              across spring-forward and fall-back transitions.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package tzdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempuslib/tempus/core/clock"
	"github.com/tempuslib/tempus/core/date"
	"github.com/tempuslib/tempus/core/datetime"
	tperr "github.com/tempuslib/tempus/core/error"
	"github.com/tempuslib/tempus/core/zone"
)

const berlinTOML = `
[[zone]]
name = "Europe/Berlin"
offset = "+01:00:00"

[[zone.transition]]
at = "2024-03-31 01:00:00"
offset = "+02:00:00"

[[zone.transition]]
at = "2024-10-27 01:00:00"
offset = "+01:00:00"

[[zone]]
name = "Asia/Kolkata"
offset = "+05:30:00"
`

const berlinYAML = `
zone:
  - name: Europe/Berlin
    offset: "+01:00:00"
    transition:
      - at: "2024-03-31 01:00:00"
        offset: "+02:00:00"
      - at: "2024-10-27 01:00:00"
        offset: "+01:00:00"
  - name: Asia/Kolkata
    offset: "+05:30:00"
`

func mustDT(t *testing.T, year int, month date.Month, day, hour, minute, second int) datetime.DateTime {
	t.Helper()
	d, err := date.FromCalendarDate(year, month, day)
	require.NoError(t, err)
	c, err := clock.FromHMS(hour, minute, second)
	require.NoError(t, err)
	return datetime.New(d, c)
}

func mustOffset(t *testing.T, s string) zone.Offset {
	t.Helper()
	o, err := zone.ParseOffset(s)
	require.NoError(t, err)
	return o
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	db, err := Load(writeTempFile(t, "zones.toml", berlinTOML))
	require.NoError(t, err)

	assert.Equal(t, 2, db.Len())
	assert.Equal(t, []string{"Europe/Berlin", "Asia/Kolkata"}, db.Names())

	berlin, ok := db.ByName("Europe/Berlin")
	require.True(t, ok)
	assert.Equal(t, "Europe/Berlin", berlin.Name())

	_, ok = db.ByName("Europe/Paris")
	assert.False(t, ok)
}

func TestLoadYAML(t *testing.T) {
	for _, ext := range []string{"zones.yaml", "zones.yml"} {
		t.Run(ext, func(t *testing.T) {
			db, err := Load(writeTempFile(t, ext, berlinYAML))
			require.NoError(t, err)
			assert.Equal(t, 2, db.Len())
			_, ok := db.ByName("Europe/Berlin")
			assert.True(t, ok)
		})
	}
}

func TestLoadFormatsEquivalent(t *testing.T) {
	fromTOML, err := LoadBytes([]byte(berlinTOML), FormatTOML)
	require.NoError(t, err)
	fromYAML, err := LoadBytes([]byte(berlinYAML), FormatYAML)
	require.NoError(t, err)

	tomlBerlin, ok := fromTOML.ByName("Europe/Berlin")
	require.True(t, ok)
	yamlBerlin, ok := fromYAML.ByName("Europe/Berlin")
	require.True(t, ok)

	// Both loads resolve identical probe instants to identical offsets.
	probes := []datetime.DateTime{
		mustDT(t, 2024, date.January, 15, 12, 0, 0),
		mustDT(t, 2024, date.March, 31, 0, 59, 59),
		mustDT(t, 2024, date.March, 31, 1, 0, 0),
		mustDT(t, 2024, date.July, 1, 12, 0, 0),
		mustDT(t, 2024, date.October, 27, 1, 0, 0),
	}
	for _, probe := range probes {
		assert.Equal(t, tomlBerlin.OffsetAtUTC(probe), yamlBerlin.OffsetAtUTC(probe))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no zones", "other = 1\n"},
		{"missing name", "[[zone]]\noffset = \"+01:00:00\"\n"},
		{"bad base offset", "[[zone]]\nname = \"X\"\noffset = \"eastish\"\n"},
		{"bad transition instant", `
[[zone]]
name = "X"
offset = "+01:00:00"
[[zone.transition]]
at = "not a datetime"
offset = "+02:00:00"
`},
		{"unsorted transitions", `
[[zone]]
name = "X"
offset = "+01:00:00"
[[zone.transition]]
at = "2024-10-27 01:00:00"
offset = "+02:00:00"
[[zone.transition]]
at = "2024-03-31 01:00:00"
offset = "+01:00:00"
`},
		{"duplicate zone", `
[[zone]]
name = "X"
offset = "+01:00:00"
[[zone]]
name = "X"
offset = "+02:00:00"
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tc.content), FormatTOML)
			require.Error(t, err)
			assert.True(t, tperr.HasCode(err, tperr.CodeInvalidConfig))
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.True(t, tperr.HasCode(err, tperr.CodeConfigError))

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, tperr.HasCode(err, tperr.CodeConfigError))

	// Malformed content reported with the file path attached.
	_, err = Load(writeTempFile(t, "broken.toml", "[[zone\n"))
	require.Error(t, err)
	assert.True(t, tperr.HasCode(err, tperr.CodeConfigError))
}

func loadBerlin(t *testing.T) *RuleZone {
	t.Helper()
	db, err := LoadBytes([]byte(berlinTOML), FormatTOML)
	require.NoError(t, err)
	z, ok := db.ByName("Europe/Berlin")
	require.True(t, ok)
	return z
}

func TestRuleZoneOffsetAtUTC(t *testing.T) {
	berlin := loadBerlin(t)
	winter := mustOffset(t, "+01:00:00")
	summer := mustOffset(t, "+02:00:00")

	tests := []struct {
		name string
		utc  datetime.DateTime
		want zone.Offset
	}{
		{"before first transition", mustDT(t, 2024, date.January, 15, 12, 0, 0), winter},
		{"instant before spring forward", mustDT(t, 2024, date.March, 31, 0, 59, 59), winter},
		{"exactly at spring forward", mustDT(t, 2024, date.March, 31, 1, 0, 0), summer},
		{"midsummer", mustDT(t, 2024, date.July, 1, 12, 0, 0), summer},
		{"exactly at fall back", mustDT(t, 2024, date.October, 27, 1, 0, 0), winter},
		{"after last transition", mustDT(t, 2024, date.December, 25, 0, 0, 0), winter},
		{"far past", mustDT(t, 1900, date.June, 1, 0, 0, 0), winter},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, berlin.OffsetAtUTC(tc.utc))
		})
	}
}

func TestRuleZoneSkippedLocalTime(t *testing.T) {
	berlin := loadBerlin(t)

	// Clocks jump from local 02:00 to 03:00 on 2024-03-31; 02:30 never
	// happens.
	res := zone.FromLocal(mustDT(t, 2024, date.March, 31, 2, 30, 0), berlin)
	assert.True(t, res.IsNone())

	_, err := res.Single()
	require.Error(t, err)
	assert.True(t, tperr.HasCode(err, tperr.CodeSkippedLocalTime))

	// The boundary readings on both sides resolve.
	before := zone.FromLocal(mustDT(t, 2024, date.March, 31, 1, 59, 59), berlin)
	assert.True(t, before.IsSingle())
	after := zone.FromLocal(mustDT(t, 2024, date.March, 31, 3, 0, 0), berlin)
	assert.True(t, after.IsSingle())
}

func TestRuleZoneAmbiguousLocalTime(t *testing.T) {
	berlin := loadBerlin(t)
	winter := mustOffset(t, "+01:00:00")
	summer := mustOffset(t, "+02:00:00")

	// Clocks fall back from local 03:00 to 02:00 on 2024-10-27; 02:30
	// happens twice.
	local := mustDT(t, 2024, date.October, 27, 2, 30, 0)
	res := zone.FromLocal(local, berlin)
	require.True(t, res.IsAmbiguous())

	_, err := res.Single()
	require.Error(t, err)
	assert.True(t, tperr.HasCode(err, tperr.CodeAmbiguousLocalTime))

	earliest, ok := res.Earliest()
	require.True(t, ok)
	latest, ok := res.Latest()
	require.True(t, ok)

	assert.Equal(t, summer, earliest.Offset())
	assert.Equal(t, winter, latest.Offset())
	assert.Equal(t, mustDT(t, 2024, date.October, 27, 0, 30, 0), earliest.UTC())
	assert.Equal(t, mustDT(t, 2024, date.October, 27, 1, 30, 0), latest.UTC())
	assert.True(t, earliest.Before(latest))
}

func TestRuleZoneSingleLocalTime(t *testing.T) {
	berlin := loadBerlin(t)
	summer := mustOffset(t, "+02:00:00")

	res := zone.FromLocal(mustDT(t, 2024, date.June, 15, 12, 0, 0), berlin)
	require.True(t, res.IsSingle())
	odt, err := res.Single()
	require.NoError(t, err)
	assert.Equal(t, summer, odt.Offset())
	assert.Equal(t, mustDT(t, 2024, date.June, 15, 10, 0, 0), odt.UTC())
}

func TestRuleZoneFixedBehavesLikeFixedZone(t *testing.T) {
	db, err := LoadBytes([]byte(berlinTOML), FormatTOML)
	require.NoError(t, err)
	kolkata, ok := db.ByName("Asia/Kolkata")
	require.True(t, ok)

	offset := mustOffset(t, "+05:30:00")
	local := mustDT(t, 2024, date.October, 27, 2, 30, 0)

	res := zone.FromLocal(local, kolkata)
	require.True(t, res.IsSingle())
	odt, err := res.Single()
	require.NoError(t, err)
	assert.Equal(t, offset, odt.Offset())
	assert.Equal(t, offset, kolkata.OffsetAtUTC(local))
}

func TestRuleZoneRoundTripThroughUTC(t *testing.T) {
	berlin := loadBerlin(t)

	// Any UTC instant attaches exactly one offset, and the resulting local
	// reading resolves back to the same instant (possibly among two
	// candidates on a fall-back day).
	probes := []datetime.DateTime{
		mustDT(t, 2024, date.January, 1, 0, 0, 0),
		mustDT(t, 2024, date.March, 31, 0, 30, 0),
		mustDT(t, 2024, date.March, 31, 1, 30, 0),
		mustDT(t, 2024, date.October, 27, 0, 30, 0),
		mustDT(t, 2024, date.October, 27, 1, 30, 0),
		mustDT(t, 2024, date.December, 31, 23, 59, 59),
	}
	for _, utc := range probes {
		odt := zone.FromUTC(utc, berlin)
		assert.Equal(t, utc, odt.UTC())

		res := zone.FromLocal(odt.Local(), berlin)
		require.False(t, res.IsNone(), "local %s must resolve", odt.Local())
		earliest, _ := res.Earliest()
		latest, _ := res.Latest()
		found := earliest.UTC().Equal(utc) || latest.UTC().Equal(utc)
		assert.True(t, found, "utc %s must be among the resolutions", utc)
	}
}

func TestNewRuleZoneValidation(t *testing.T) {
	base := mustOffset(t, "+01:00:00")

	_, err := NewRuleZone("", base, nil)
	require.Error(t, err)
	assert.True(t, tperr.HasCode(err, tperr.CodeInvalidConfig))

	at := mustDT(t, 2024, date.March, 31, 1, 0, 0)
	_, err = NewRuleZone("X", base, []Transition{
		{At: at, Offset: mustOffset(t, "+02:00:00")},
		{At: at, Offset: mustOffset(t, "+01:00:00")},
	})
	require.Error(t, err)
	assert.True(t, tperr.HasCode(err, tperr.CodeInvalidConfig))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "unknown", Format(99).String())
}
