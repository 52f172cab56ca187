package effect

import (
	"log/slog"

	"github.com/udisondev/spellforge/internal/clock"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
)

// StrikeSpec bundles the parameters a marker hands to the strike it spawns.
type StrikeSpec struct {
	Damage         float64
	Radius         float64
	VisualLifetime float64
	Element        event.Element
	Debuffs        []DebuffSpec
}

// Marker is stage one of the delayed-strike chain (thunder-strike): it holds
// a target position and a delay timer, spawns a Strike at that position the
// step the delay elapses, then despawns.
type Marker struct {
	id      uint32
	target  geom.Vec2
	delay   *clock.Timer
	spec    StrikeSpec
	spawned bool
}

// NewMarker creates a strike marker at the target position.
func NewMarker(target geom.Vec2, delay float64, spec StrikeSpec) *Marker {
	return &Marker{
		id:     nextEffectID(),
		target: target,
		delay:  clock.New(delay, clock.Once),
		spec:   spec,
	}
}

func (m *Marker) ID() uint32 { return m.id }
func (m *Marker) Kind() Kind { return KindMarker }

// Advance ticks the delay and detonates: the strike is spawned on the exact
// step the timer crosses, carrying the marker's damage unchanged.
func (m *Marker) Advance(dt float64, ctx *Context) {
	m.delay.Tick(dt)
	if m.delay.JustFinished() {
		ctx.Spawn(NewStrike(m.target, m.spec))
		m.spawned = true
	}
}

// Collide is a no-op — markers have no geometry of their own.
func (m *Marker) Collide(_ *Context) {}

// Done reports detonation.
func (m *Marker) Done() bool { return m.spawned }

// RemainingFraction exposes the countdown for the rendering collaborator
// (ground-marker shrink).
func (m *Marker) RemainingFraction() float64 {
	return m.delay.RemainingFraction()
}

// Strike is stage two: it damages everything inside its radius exactly once,
// on exactly one step, then lingers only as a fading visual until its
// visual-lifetime timer finishes.
type Strike struct {
	id            uint32
	center        geom.Vec2
	spec          StrikeSpec
	damageApplied bool
	visual        *clock.Timer
}

// NewStrike creates a strike at center. Damage applies on its first collide
// pass — the same step its marker fired, given the manager's spawn ordering.
func NewStrike(center geom.Vec2, spec StrikeSpec) *Strike {
	return &Strike{
		id:     nextEffectID(),
		center: center,
		spec:   spec,
		visual: clock.New(spec.VisualLifetime, clock.Once),
	}
}

func (s *Strike) ID() uint32 { return s.id }
func (s *Strike) Kind() Kind { return KindStrike }

// Advance only ticks the visual timer; all gameplay happens in the single
// damage pass.
func (s *Strike) Advance(dt float64, _ *Context) {
	s.visual.Tick(dt)
}

// Collide applies damage once, regardless of how many steps the visual
// lingers afterwards.
func (s *Strike) Collide(ctx *Context) {
	if s.damageApplied {
		return
	}
	s.damageApplied = true

	for _, en := range ctx.Enemies {
		if !geom.CircleContains(s.center, s.spec.Radius, en.Pos) {
			continue
		}
		ctx.Events.PushDamage(event.Damage{
			TargetID: en.ID,
			Amount:   s.spec.Damage,
			Element:  s.spec.Element,
			SourceID: s.id,
		})
		for _, spec := range s.spec.Debuffs {
			ctx.Events.PushDebuff(event.Debuff{
				TargetID:  en.ID,
				Kind:      spec.Kind,
				Magnitude: spec.Magnitude,
				Duration:  spec.Duration,
			})
		}
	}
}

// Done reports visual expiry.
func (s *Strike) Done() bool { return s.visual.IsFinished() }

// VisualFraction returns the remaining visual fraction for shrink/fade.
func (s *Strike) VisualFraction() float64 {
	return s.visual.RemainingFraction()
}

// JudgmentCaster is the periodic variant: a repeating outer timer that, each
// time it fires, targets the nearest enemy within range with a fresh marker.
// Cycles with no enemy in range are silently skipped.
type JudgmentCaster struct {
	id          uint32
	origin      geom.Vec2
	rangeRadius float64
	interval    *clock.Timer
	lifetime    *clock.Timer
	markerDelay float64
	spec        StrikeSpec
}

// NewJudgmentCaster creates a periodic strike caster anchored at origin.
func NewJudgmentCaster(origin geom.Vec2, rangeRadius, interval, lifetime, markerDelay float64, spec StrikeSpec) *JudgmentCaster {
	return &JudgmentCaster{
		id:          nextEffectID(),
		origin:      origin,
		rangeRadius: rangeRadius,
		interval:    clock.New(interval, clock.Repeating),
		lifetime:    clock.New(lifetime, clock.Once),
		markerDelay: markerDelay,
		spec:        spec,
	}
}

func (j *JudgmentCaster) ID() uint32 { return j.id }
func (j *JudgmentCaster) Kind() Kind { return KindJudgment }

// Advance ticks both timers and, on each interval pulse, drops a marker on
// the nearest in-range enemy's current position (first-found wins ties).
func (j *JudgmentCaster) Advance(dt float64, ctx *Context) {
	j.lifetime.Tick(dt)
	j.interval.Tick(dt)
	if !j.interval.JustFinished() {
		return
	}

	candidates := make([]geom.Candidate, 0, len(ctx.Enemies))
	for _, en := range ctx.Enemies {
		candidates = append(candidates, geom.Candidate{ID: en.ID, Pos: en.Pos})
	}

	id, dist, ok := geom.Nearest(j.origin, candidates)
	if !ok || dist > j.rangeRadius {
		slog.Debug("judgment cycle skipped, no enemy in range", "effect", j.id)
		return
	}

	target, ok := ctx.EnemyPosition(id)
	if !ok {
		return
	}
	ctx.Spawn(NewMarker(target.Pos, j.markerDelay, j.spec))
}

// Collide is a no-op — only spawned strikes carry geometry.
func (j *JudgmentCaster) Collide(_ *Context) {}

// Done reports lifetime expiry.
func (j *JudgmentCaster) Done() bool { return j.lifetime.IsFinished() }
