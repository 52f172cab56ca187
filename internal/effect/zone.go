package effect

import (
	"github.com/udisondev/spellforge/internal/clock"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
)

// cycleOrder is the fixed element rotation of cycling zones. The current
// element advances one slot each time the cycle timer fires and wraps after
// the last.
var cycleOrder = []event.Element{event.Fire, event.Frost, event.Poison, event.Lightning}

// Zone is the persistent-area archetype (chaos-anomaly): a fixed circle that
// damages every enemy inside it on each pulse of its repeating tick timer.
// There is no per-target dedup — a target inside on every tick is damaged
// every tick; only the tick timer gates frequency. An optional cycle timer
// rotates the damage element through cycleOrder.
type Zone struct {
	id       uint32
	center   geom.Vec2
	radius   float64
	damage   float64
	lifetime *clock.Timer
	tick     *clock.Timer
	cycle    *clock.Timer // nil for fixed-element zones
	cycleIdx int
	element  event.Element // used when cycle == nil
	debuffs  map[event.Element]DebuffSpec
}

// NewZone creates a fixed-element zone.
func NewZone(center geom.Vec2, radius, damage, lifetime, tickInterval float64, element event.Element) *Zone {
	return &Zone{
		id:       nextEffectID(),
		center:   center,
		radius:   radius,
		damage:   damage,
		lifetime: clock.New(lifetime, clock.Once),
		tick:     clock.New(tickInterval, clock.Repeating),
		element:  element,
	}
}

// NewCyclingZone creates a zone whose element rotates through cycleOrder
// every cycleInterval seconds, starting at Fire. debuffs maps an element to
// the debuff applied alongside that element's damage ticks; elements without
// an entry deal plain damage.
func NewCyclingZone(center geom.Vec2, radius, damage, lifetime, tickInterval, cycleInterval float64, debuffs map[event.Element]DebuffSpec) *Zone {
	z := NewZone(center, radius, damage, lifetime, tickInterval, cycleOrder[0])
	z.cycle = clock.New(cycleInterval, clock.Repeating)
	z.debuffs = debuffs
	return z
}

func (z *Zone) ID() uint32 { return z.id }
func (z *Zone) Kind() Kind { return KindZone }

// Advance ticks the lifetime, damage-tick and cycle timers. A cycle boundary
// crossed this step is visible to this step's collision pass.
func (z *Zone) Advance(dt float64, _ *Context) {
	z.lifetime.Tick(dt)
	z.tick.Tick(dt)
	if z.cycle != nil {
		z.cycle.Tick(dt)
		if z.cycle.JustFinished() {
			z.cycleIdx = (z.cycleIdx + 1) % len(cycleOrder)
		}
	}
}

// Collide damages every enemy currently inside the zone, but only on the
// step the tick timer pulses.
func (z *Zone) Collide(ctx *Context) {
	if !z.tick.JustFinished() {
		return
	}

	el := z.CurrentElement()
	spec, hasDebuff := z.debuffs[el]

	for _, en := range ctx.Enemies {
		if !geom.CircleContains(z.center, z.radius, en.Pos) {
			continue
		}

		ctx.Events.PushDamage(event.Damage{
			TargetID: en.ID,
			Amount:   z.damage,
			Element:  el,
			SourceID: z.id,
		})
		if hasDebuff {
			ctx.Events.PushDebuff(event.Debuff{
				TargetID:  en.ID,
				Kind:      spec.Kind,
				Magnitude: spec.Magnitude,
				Duration:  spec.Duration,
			})
		}
	}
}

// Done reports lifetime expiry.
func (z *Zone) Done() bool {
	return z.lifetime.IsFinished()
}

// CurrentElement returns the element of the next damage pulse.
func (z *Zone) CurrentElement() event.Element {
	if z.cycle == nil {
		return z.element
	}
	return cycleOrder[z.cycleIdx]
}

// RemainingFraction exposes lifetime progress for the rendering collaborator.
func (z *Zone) RemainingFraction() float64 {
	return z.lifetime.RemainingFraction()
}

// Radius returns the zone radius.
func (z *Zone) Radius() float64 { return z.radius }
