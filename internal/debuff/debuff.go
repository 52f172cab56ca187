// Package debuff implements negative status effects attached to enemies:
// application with refresh-not-stack semantics, timed decay, and magnitude
// queries for the external movement/damage collaborators.
package debuff

import "github.com/udisondev/spellforge/internal/clock"

// Kind identifies a debuff family. A target carries at most one live
// instance of each kind.
type Kind int

const (
	Slow Kind = iota
	Weaken
	Blind
	Disorient
	Corrode
	Stun
	Burn
)

var kindNames = map[Kind]string{
	Slow:      "slow",
	Weaken:    "weaken",
	Blind:     "blind",
	Disorient: "disorient",
	Corrode:   "corrode",
	Stun:      "stun",
	Burn:      "burn",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves a config string to a Kind.
// Unknown strings resolve to Slow with ok=false.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return Slow, false
}

// Instance is one live debuff on one target.
// Magnitude is a multiplier or flat value — interpretation is per kind
// (e.g. Slow 0.6 = move at 60% speed, Corrode 5 = flat armor loss).
type Instance struct {
	Kind      Kind
	Magnitude float64
	timer     *clock.Timer
}

// Remaining returns seconds until the instance decays.
func (i *Instance) Remaining() float64 {
	return i.timer.Duration() - i.timer.Elapsed()
}

// Expired reports whether the duration timer has finished.
func (i *Instance) Expired() bool {
	return i.timer.IsFinished()
}
