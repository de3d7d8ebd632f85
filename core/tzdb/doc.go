// Package tzdb provides rule-based timezones loaded from configuration files.
//
// Package: tzdb
// Title: Rule-Based Timezone Source
// Description: This package implements RuleZone, a zone.TimeZone backed by a
//              base offset and an ordered table of UTC transition instants,
//              and loads named zones from TOML or YAML files with the format
//              auto-detected from the file extension.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation
//
// A zone file declares one or more zones, each with a name, a base offset in
// effect before the first transition, and transitions giving the UTC instant
// a new offset takes effect:
//
//	[[zone]]
//	name = "Europe/Berlin"
//	offset = "+01:00:00"
//
//	[[zone.transition]]
//	at = "2024-03-31 01:00:00"
//	offset = "+02:00:00"
//
//	[[zone.transition]]
//	at = "2024-10-27 01:00:00"
//	offset = "+01:00:00"
//
// The equivalent YAML form uses the same keys. Transition instants must be
// strictly increasing; offsets use the same ±HH:MM:SS form the zone package
// parses. Validation happens at load time so resolution never fails.
package tzdb
