// File: load.go
// Title: Zone File Loading
// Description: Loads named rule zones from TOML and YAML files with format
//              auto-detection from the file extension, validating offsets and
//              transition ordering at load time.
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
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tempuslib/tempus/core/datetime"
	tperr "github.com/tempuslib/tempus/core/error"
	"github.com/tempuslib/tempus/core/zone"
)

// Format represents the zone file format.
type Format int

const (
	// FormatTOML represents TOML format (default).
	FormatTOML Format = iota

	// FormatYAML represents YAML format.
	FormatYAML

	// FormatAuto auto-detects the format from the file extension.
	FormatAuto
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// zoneFile mirrors the on-disk layout of a zone file.
type zoneFile struct {
	Zones []zoneSpec `toml:"zone" yaml:"zone"`
}

type zoneSpec struct {
	Name        string           `toml:"name" yaml:"name"`
	Offset      string           `toml:"offset" yaml:"offset"`
	Transitions []transitionSpec `toml:"transition" yaml:"transition"`
}

type transitionSpec struct {
	At     string `toml:"at" yaml:"at"`
	Offset string `toml:"offset" yaml:"offset"`
}

// DB is a set of named zones loaded from one file.
type DB struct {
	zones map[string]*RuleZone
	names []string
}

// Load reads a zone file, auto-detecting the format from its extension.
func Load(filePath string) (*DB, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat reads a zone file in an explicit format.
func LoadWithFormat(filePath string, format Format) (*DB, error) {
	if filePath == "" {
		return nil, tperr.New("zone file path cannot be empty").
			WithCode(tperr.CodeConfigError)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, tperr.Wrap(err, "failed to read zone file").
			WithCode(tperr.CodeConfigError).
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	db, err := LoadBytes(content, format)
	if err != nil {
		return nil, tperr.Wrap(err, "failed to load zone file").
			WithCode(tperr.CodeConfigError).
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	return db, nil
}

// LoadBytes parses zone file content in an explicit format.
func LoadBytes(content []byte, format Format) (*DB, error) {
	var file zoneFile
	switch format {
	case FormatTOML, FormatAuto:
		if err := toml.Unmarshal(content, &file); err != nil {
			return nil, tperr.Wrap(err, "TOML parse error").
				WithCode(tperr.CodeInvalidConfig)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, tperr.Wrap(err, "YAML parse error").
				WithCode(tperr.CodeInvalidConfig)
		}
	default:
		return nil, tperr.Newf("unsupported format: %s", format).
			WithCode(tperr.CodeInvalidConfig)
	}

	if len(file.Zones) == 0 {
		return nil, tperr.New("zone file declares no zones").
			WithCode(tperr.CodeInvalidConfig)
	}

	db := &DB{zones: make(map[string]*RuleZone, len(file.Zones))}
	for _, spec := range file.Zones {
		z, err := buildZone(spec)
		if err != nil {
			return nil, err
		}
		if _, exists := db.zones[z.Name()]; exists {
			return nil, tperr.Newf("zone %q declared twice", z.Name()).
				WithCode(tperr.CodeInvalidConfig)
		}
		db.zones[z.Name()] = z
		db.names = append(db.names, z.Name())
	}
	return db, nil
}

// detectFormat determines the zone file format from the file extension.
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// buildZone converts a parsed zone declaration into a validated RuleZone.
func buildZone(spec zoneSpec) (*RuleZone, error) {
	base, err := zone.ParseOffset(spec.Offset)
	if err != nil {
		return nil, tperr.Wrap(err, "invalid base offset").
			WithCode(tperr.CodeInvalidConfig).
			WithDetail("zone", spec.Name)
	}

	transitions := make([]Transition, len(spec.Transitions))
	for i, tr := range spec.Transitions {
		at, err := datetime.ParseDateTime(tr.At)
		if err != nil {
			return nil, tperr.Wrap(err, "invalid transition instant").
				WithCode(tperr.CodeInvalidConfig).
				WithDetail("zone", spec.Name).
				WithDetail("at", tr.At)
		}
		offset, err := zone.ParseOffset(tr.Offset)
		if err != nil {
			return nil, tperr.Wrap(err, "invalid transition offset").
				WithCode(tperr.CodeInvalidConfig).
				WithDetail("zone", spec.Name).
				WithDetail("at", tr.At)
		}
		transitions[i] = Transition{At: at, Offset: offset}
	}

	return NewRuleZone(spec.Name, base, transitions)
}

// ByName returns the named zone.
func (db *DB) ByName(name string) (*RuleZone, bool) {
	z, ok := db.zones[name]
	return z, ok
}

// Names returns the zone names in declaration order.
func (db *DB) Names() []string {
	return append([]string(nil), db.names...)
}

// Len returns the number of zones in the set.
func (db *DB) Len() int { return len(db.zones) }
