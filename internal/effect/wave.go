package effect

import (
	"log/slog"

	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
)

// minExpandDuration is the clamp floor for malformed wave definitions.
// A non-positive expansion duration would make the expansion rate undefined;
// the wave degrades to a near-instant burst instead of crashing the step.
const minExpandDuration = 0.01

// Wave is the expanding-wave archetype (void-pulse, glacial-pulse,
// psychic-scream): the radius grows linearly from zero, every target is hit
// at most once — on the step the growing radius first reaches it — and the
// instance despawns once the radius has fully expanded.
type Wave struct {
	id            uint32
	center        geom.Vec2
	currentRadius float64
	maxRadius     float64
	expansionRate float64
	damage        float64
	element       event.Element
	debuffs       []DebuffSpec
	hits          *HitSet
}

// NewWave creates an expanding wave. expandDuration non-positive is a
// configuration error and is clamped to a minimum positive duration.
func NewWave(center geom.Vec2, maxRadius, expandDuration, damage float64, element event.Element, debuffs ...DebuffSpec) *Wave {
	if maxRadius < 0 {
		maxRadius = 0
	}
	if expandDuration < minExpandDuration {
		slog.Error("wave expansion duration clamped",
			"requested", expandDuration,
			"clamped_to", minExpandDuration)
		expandDuration = minExpandDuration
	}

	return &Wave{
		id:            nextEffectID(),
		center:        center,
		maxRadius:     maxRadius,
		expansionRate: maxRadius / expandDuration,
		damage:        damage,
		element:       element,
		debuffs:       debuffs,
		hits:          NewHitSet(),
	}
}

func (w *Wave) ID() uint32 { return w.id }
func (w *Wave) Kind() Kind { return KindWave }

// Advance grows the radius. Monotonic: never shrinks, never exceeds max.
func (w *Wave) Advance(dt float64, _ *Context) {
	if dt <= 0 {
		return
	}
	w.currentRadius += w.expansionRate * dt
	if w.currentRadius > w.maxRadius {
		w.currentRadius = w.maxRadius
	}
}

// Collide hits every enemy inside the current radius that the wave has not
// already processed.
func (w *Wave) Collide(ctx *Context) {
	for _, en := range ctx.Enemies {
		if w.hits.Has(en.ID) {
			continue
		}
		if !geom.CircleContains(w.center, w.currentRadius, en.Pos) {
			continue
		}

		ctx.Events.PushDamage(event.Damage{
			TargetID: en.ID,
			Amount:   w.damage,
			Element:  w.element,
			SourceID: w.id,
		})
		for _, spec := range w.debuffs {
			ctx.Events.PushDebuff(event.Debuff{
				TargetID:  en.ID,
				Kind:      spec.Kind,
				Magnitude: spec.Magnitude,
				Duration:  spec.Duration,
			})
		}
		w.hits.Add(en.ID)
	}
}

// Done reports full expansion. The collide phase has already run against the
// final radius within the same step, so nothing inside max range is missed.
func (w *Wave) Done() bool {
	return w.currentRadius >= w.maxRadius
}

// Radius returns the current wave radius for the rendering collaborator.
func (w *Wave) Radius() float64 { return w.currentRadius }

// MaxRadius returns the configured final radius.
func (w *Wave) MaxRadius() float64 { return w.maxRadius }

// HitCount returns the number of targets this wave has processed.
func (w *Wave) HitCount() int { return w.hits.Len() }
