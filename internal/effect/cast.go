package effect

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/udisondev/spellforge/internal/config"
	"github.com/udisondev/spellforge/internal/debuff"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
)

// Cast constructors: the external cast trigger supplies positions/directions
// and the pre-scaled damage; everything else comes from the spell's config
// tuning. The config Damage field is the base value the caller scales by
// caster attributes before calling — effects never read caster state.

// parseElement resolves a config element string, logging malformed values.
func parseElement(s string) event.Element {
	el, ok := event.ParseElement(s)
	if !ok {
		slog.Error("unknown element in spell config, using fire", "element", s)
	}
	return el
}

// parseDebuff converts an optional config debuff setting.
func parseDebuff(setting *config.DebuffSetting) []DebuffSpec {
	if setting == nil {
		return nil
	}
	kind, ok := debuff.ParseKind(setting.Kind)
	if !ok {
		slog.Error("unknown debuff kind in spell config, using slow", "kind", setting.Kind)
	}
	return []DebuffSpec{{Kind: kind, Magnitude: setting.Magnitude, Duration: setting.Duration}}
}

// zoneElementDebuffs maps each cycling-zone element to the debuff its damage
// ticks carry.
var zoneElementDebuffs = map[event.Element]DebuffSpec{
	event.Fire:      {Kind: debuff.Burn, Magnitude: 3, Duration: 2.0},
	event.Frost:     {Kind: debuff.Slow, Magnitude: 0.6, Duration: 1.5},
	event.Poison:    {Kind: debuff.Corrode, Magnitude: 4, Duration: 3.0},
	event.Lightning: {Kind: debuff.Stun, Magnitude: 1, Duration: 0.5},
}

// CastWave spawns an expanding wave centered on the caster.
func CastWave(m *Manager, center geom.Vec2, damage float64, cfg config.WaveSpell) uint32 {
	w := NewWave(center, cfg.MaxRadius, cfg.ExpandDuration, damage,
		parseElement(cfg.Element), parseDebuff(cfg.Debuff)...)
	m.Add(w)
	return w.ID()
}

// CastCyclingZone spawns a chaos-anomaly zone at the target position.
func CastCyclingZone(m *Manager, center geom.Vec2, damage float64, cfg config.ZoneSpell) uint32 {
	z := NewCyclingZone(center, cfg.Radius, damage, cfg.Lifetime,
		cfg.TickInterval, cfg.CycleInterval, zoneElementDebuffs)
	m.Add(z)
	return z.ID()
}

// CastInfluenceZone spawns a nightfall zone writing into table.
func CastInfluenceZone(m *Manager, center geom.Vec2, cfg config.InfluenceSpell, table *InfluenceTable) uint32 {
	z := NewInfluenceZone(center, cfg.Radius, cfg.Multiplier, cfg.Lifetime,
		parseElement(cfg.Element), table)
	m.Add(z)
	return z.ID()
}

// CastPiercingShot spawns a cinder-shot projectile from the caster toward dir.
func CastPiercingShot(m *Manager, from, dir geom.Vec2, damage float64, cfg config.ProjectileSpell) uint32 {
	p := NewPiercingProjectile(from, dir, cfg.Speed, damage, cfg.Lifetime,
		cfg.HitRadius, parseElement(cfg.Element), parseDebuff(cfg.Debuff)...)
	m.Add(p)
	return p.ID()
}

// CastFrozenOrb spawns a pulsing aura orb from the caster toward dir.
func CastFrozenOrb(m *Manager, from, dir geom.Vec2, damage float64, cfg config.OrbSpell) uint32 {
	p := NewOrbProjectile(from, dir, cfg.Speed, damage, cfg.Lifetime,
		cfg.DamageRadius, cfg.TickInterval, cfg.TargetCooldown,
		parseElement(cfg.Element), parseDebuff(cfg.Debuff)...)
	m.Add(p)
	return p.ID()
}

// CastThunderStrike drops a delayed-strike marker on the target position.
func CastThunderStrike(m *Manager, target geom.Vec2, damage float64, cfg config.StrikeSpell) uint32 {
	mk := NewMarker(target, cfg.Delay, StrikeSpec{
		Damage:         damage,
		Radius:         cfg.Radius,
		VisualLifetime: cfg.VisualLifetime,
		Element:        parseElement(cfg.Element),
	})
	m.Add(mk)
	return mk.ID()
}

// CastJudgment anchors a periodic strike caster at origin.
func CastJudgment(m *Manager, origin geom.Vec2, damage float64, cfg config.JudgmentSpell) uint32 {
	j := NewJudgmentCaster(origin, cfg.Range, cfg.Interval, cfg.Lifetime,
		cfg.Strike.Delay, StrikeSpec{
			Damage:         damage,
			Radius:         cfg.Strike.Radius,
			VisualLifetime: cfg.Strike.VisualLifetime,
			Element:        parseElement(cfg.Strike.Element),
		})
	m.Add(j)
	return j.ID()
}

// CastEmberSwarm spawns an orbit controller with its satellites spread
// evenly around the circle, each phase jittered by the seeded rng for
// reproducible variety. Returns the controller ID.
func CastEmberSwarm(m *Manager, origin geom.Vec2, damage float64, cfg config.SwarmSpell, rng *rand.Rand) uint32 {
	count := cfg.Satellites
	if count <= 0 {
		slog.Error("swarm cast with no satellites, clamping to 1", "requested", cfg.Satellites)
		count = 1
	}

	ctrl := NewController(origin, cfg.OrbitDuration)
	m.Add(ctrl)

	el := parseElement(cfg.Element)
	for i := range count {
		phase := 2 * math.Pi * float64(i) / float64(count)
		if rng != nil {
			phase += rng.Float64() * 0.2
		}
		sat := NewSatellite(ctrl, phase, cfg.AngularRate, cfg.OrbitRadius,
			cfg.Speed, damage, cfg.HitRadius, cfg.MaxFlight, el)
		m.Add(sat)
	}

	return ctrl.ID()
}
