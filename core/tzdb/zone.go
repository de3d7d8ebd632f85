// File: zone.go
// Title: Rule-Based Zone Implementation
// Description: Implements RuleZone, a zone.TimeZone over a base offset and a
//              sorted table of UTC transition instants, including the local
//              reading classification into Single, Ambiguous, or None.
// Author: tempus project
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package tzdb

import (
	"sort"

	"github.com/tempuslib/tempus/core/datetime"
	tperr "github.com/tempuslib/tempus/core/error"
	"github.com/tempuslib/tempus/core/zone"
)

// Transition marks the UTC instant a new offset takes effect.
type Transition struct {
	// At is the UTC instant of the change.
	At datetime.DateTime
	// Offset is the offset in effect from At onward.
	Offset zone.Offset
}

type transition struct {
	at     int64 // unix seconds
	offset zone.Offset
}

// RuleZone is a zone.TimeZone backed by a transition table. The base offset
// is in effect before the first transition; each transition replaces it from
// its instant onward.
type RuleZone struct {
	name        string
	base        zone.Offset
	transitions []transition
}

// lookaround bounds how far, in unix seconds, a valid offset can displace a
// local reading from its UTC instant. Offsets are strictly below one day in
// magnitude, so two days on each side covers every candidate.
const lookaround = 2 * 86_400

// NewRuleZone builds a rule-based zone, validating that the transition
// instants are strictly increasing.
func NewRuleZone(name string, base zone.Offset, transitions []Transition) (*RuleZone, error) {
	if name == "" {
		return nil, tperr.New("zone name cannot be empty").
			WithCode(tperr.CodeInvalidConfig)
	}

	table := make([]transition, len(transitions))
	for i, tr := range transitions {
		at := tr.At.UnixSeconds()
		if i > 0 && at <= table[i-1].at {
			return nil, tperr.Newf("zone %q: transition %d at %s does not follow its predecessor", name, i, tr.At).
				WithCode(tperr.CodeInvalidConfig)
		}
		table[i] = transition{at: at, offset: tr.Offset}
	}

	return &RuleZone{name: name, base: base, transitions: table}, nil
}

// Name returns the zone's identifier.
func (z *RuleZone) Name() string { return z.name }

// offsetAtUnix returns the offset in effect at a UTC instant given in unix
// seconds.
func (z *RuleZone) offsetAtUnix(unix int64) zone.Offset {
	i := sort.Search(len(z.transitions), func(i int) bool {
		return z.transitions[i].at > unix
	})
	if i == 0 {
		return z.base
	}
	return z.transitions[i-1].offset
}

// OffsetAtUTC implements zone.TimeZone.
func (z *RuleZone) OffsetAtUTC(utc datetime.DateTime) zone.Offset {
	return z.offsetAtUnix(utc.UnixSeconds())
}

// OffsetsAtLocal implements zone.TimeZone. A candidate offset o resolves the
// local reading l when the zone really uses o at the instant l-o; zero valid
// candidates mean the reading was skipped, two mean it was repeated.
func (z *RuleZone) OffsetsAtLocal(local datetime.DateTime) zone.LocalResult {
	l := local.UnixSeconds()

	var valid []zone.OffsetDateTime
	for _, o := range z.offsetsNear(l) {
		if z.offsetAtUnix(l-int64(o.WholeSeconds())) == o {
			valid = append(valid, zone.NewOffsetDateTime(local, o))
		}
	}

	switch len(valid) {
	case 0:
		return zone.NoneResult()
	case 1:
		return zone.SingleResult(valid[0])
	default:
		// A larger offset maps the reading to an earlier UTC instant.
		sort.Slice(valid, func(i, j int) bool {
			return valid[j].Offset().Compare(valid[i].Offset()) < 0
		})
		return zone.AmbiguousResult(valid[0], valid[1])
	}
}

// offsetsNear returns the distinct offsets in effect within the lookaround
// window of a local unix second, in the order they take effect.
func (z *RuleZone) offsetsNear(l int64) []zone.Offset {
	lo, hi := l-lookaround, l+lookaround

	var candidates []zone.Offset
	add := func(o zone.Offset) {
		for _, c := range candidates {
			if c == o {
				return
			}
		}
		candidates = append(candidates, o)
	}

	add(z.offsetAtUnix(lo))
	i := sort.Search(len(z.transitions), func(i int) bool {
		return z.transitions[i].at > lo
	})
	for ; i < len(z.transitions) && z.transitions[i].at <= hi; i++ {
		add(z.transitions[i].offset)
	}
	return candidates
}
