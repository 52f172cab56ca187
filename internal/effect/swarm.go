package effect

import (
	"log/slog"
	"math"
	"slices"

	"github.com/udisondev/spellforge/internal/clock"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
	"github.com/udisondev/spellforge/internal/world"
)

// Controller is the orbit/launch archetype (ember-swarm): satellites circle
// it until the orbit timer finishes, then every satellite is assigned a
// target and flies out. The controller owns the forward satellite list;
// satellites hold only a weak back-reference by ID and remove themselves
// from the list when they despawn.
//
// Termination requires having passed through the launched state: a
// controller still orbiting is never despawned by the empty-list rule, even
// with zero satellites.
type Controller struct {
	id         uint32
	pos        geom.Vec2
	orbit      *clock.Timer
	launched   bool
	satellites []uint32
}

// NewController creates an orbit controller at pos.
func NewController(pos geom.Vec2, orbitDuration float64) *Controller {
	return &Controller{
		id:    nextEffectID(),
		pos:   pos,
		orbit: clock.New(orbitDuration, clock.Once),
	}
}

func (c *Controller) ID() uint32 { return c.id }
func (c *Controller) Kind() Kind { return KindSwarmController }

// Position returns the controller's current position. Satellites reposition
// against it every orbiting step.
func (c *Controller) Position() geom.Vec2 { return c.pos }

// MoveTo relocates the controller (it follows the caster in the source
// game); orbiting satellites pick the new position up the same step.
func (c *Controller) MoveTo(pos geom.Vec2) { c.pos = pos }

// Launched reports whether the orbit phase has ended.
func (c *Controller) Launched() bool { return c.launched }

// SatelliteCount returns the number of satellites still alive.
func (c *Controller) SatelliteCount() int { return len(c.satellites) }

// adopt records a satellite in the forward list. Called at cast time.
func (c *Controller) adopt(satelliteID uint32) {
	c.satellites = append(c.satellites, satelliteID)
}

// RemoveSatellite drops a satellite from the forward list. Satellites call
// this on themselves when they despawn (hit or flight timeout).
func (c *Controller) RemoveSatellite(satelliteID uint32) {
	n := 0
	for _, id := range c.satellites {
		if id != satelliteID {
			c.satellites[n] = id
			n++
		}
	}
	c.satellites = c.satellites[:n]
}

// Advance ticks the orbit timer and performs the orbit→launch handoff the
// step it finishes.
func (c *Controller) Advance(dt float64, ctx *Context) {
	if c.launched {
		return
	}
	c.orbit.Tick(dt)
	if c.orbit.JustFinished() {
		c.launch(ctx)
		c.launched = true
	}
}

// launch assigns every satellite a target: enemies sorted by distance to the
// controller (stable — encounter order breaks ties), cycled round-robin when
// there are fewer enemies than satellites. With no enemies at all each
// satellite flies outward along its current radial direction.
func (c *Controller) launch(ctx *Context) {
	sorted := make([]world.Enemy, len(ctx.Enemies))
	copy(sorted, ctx.Enemies)
	slices.SortStableFunc(sorted, func(a, b world.Enemy) int {
		da := c.pos.DistanceSquared(a.Pos)
		db := c.pos.DistanceSquared(b.Pos)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})

	for i, satID := range c.satellites {
		eff, ok := ctx.Lookup(satID)
		if !ok {
			continue
		}
		sat, ok := eff.(*Satellite)
		if !ok {
			continue
		}
		if len(sorted) == 0 {
			sat.launchOutward()
			continue
		}
		sat.launchAt(sorted[i%len(sorted)].ID)
	}

	slog.Debug("swarm launched",
		"controller", c.id,
		"satellites", len(c.satellites),
		"targets", len(sorted))
}

// Collide is a no-op — only satellites carry collision geometry.
func (c *Controller) Collide(_ *Context) {}

// Done: launched and every satellite gone.
func (c *Controller) Done() bool {
	return c.launched && len(c.satellites) == 0
}

// Satellite is one ember of the swarm. While orbiting it is repositioned on
// the controller's current position every step; once launched it re-homes
// toward its live target each step, freezing its last-known direction if the
// target despawns mid-flight.
type Satellite struct {
	id           uint32
	controllerID uint32
	pos          geom.Vec2
	phase        float64 // radians on the orbit circle
	angularRate  float64
	orbitRadius  float64
	speed        float64
	damage       float64
	element      event.Element
	hitRadius    float64
	debuffs      []DebuffSpec

	launched  bool
	hasTarget bool
	targetID  uint32
	dir       geom.Vec2
	flight    *clock.Timer
	expired   bool
}

// NewSatellite creates a satellite orbiting the given controller and links
// it into the controller's forward list.
func NewSatellite(ctrl *Controller, phase, angularRate, orbitRadius, speed, damage, hitRadius, maxFlight float64, element event.Element, debuffs ...DebuffSpec) *Satellite {
	s := &Satellite{
		id:           nextEffectID(),
		controllerID: ctrl.ID(),
		pos:          orbitPosition(ctrl.Position(), phase, orbitRadius),
		phase:        phase,
		angularRate:  angularRate,
		orbitRadius:  orbitRadius,
		speed:        speed,
		damage:       damage,
		element:      element,
		hitRadius:    hitRadius,
		debuffs:      debuffs,
		flight:       clock.New(maxFlight, clock.Once),
	}
	ctrl.adopt(s.id)
	return s
}

func orbitPosition(center geom.Vec2, phase, radius float64) geom.Vec2 {
	return center.Add(geom.V(math.Cos(phase), math.Sin(phase)).Scale(radius))
}

func (s *Satellite) ID() uint32 { return s.id }
func (s *Satellite) Kind() Kind { return KindSwarmSatellite }

// Position returns the satellite's current position for rendering.
func (s *Satellite) Position() geom.Vec2 { return s.pos }

// Target returns the live target ID, ok=false while orbiting or after the
// target was lost.
func (s *Satellite) Target() (uint32, bool) { return s.targetID, s.hasTarget }

// launchAt switches the satellite to homing flight. Called by the controller
// during the orbit→launch handoff.
func (s *Satellite) launchAt(targetID uint32) {
	s.launched = true
	s.hasTarget = true
	s.targetID = targetID
	// dir is refreshed against the live target position on the next Advance;
	// seed it radially in case the target is gone already.
	s.dir = geom.V(math.Cos(s.phase), math.Sin(s.phase))
}

// launchOutward sends the satellite straight along its current radial
// direction — the no-enemies fallback.
func (s *Satellite) launchOutward() {
	s.launched = true
	s.hasTarget = false
	s.dir = geom.V(math.Cos(s.phase), math.Sin(s.phase))
}

// Advance: orbiting satellites track the controller's current position;
// launched satellites home toward the live target (or hold the last-known
// direction) and count down the max-flight timer.
func (s *Satellite) Advance(dt float64, ctx *Context) {
	if s.expired {
		return
	}

	if !s.launched {
		s.phase += s.angularRate * dt
		eff, ok := ctx.Lookup(s.controllerID)
		if ok {
			if ctrl, isCtrl := eff.(*Controller); isCtrl {
				s.pos = orbitPosition(ctrl.Position(), s.phase, s.orbitRadius)
			}
		}
		// Controller missing: stale reference, keep last position this step.
		return
	}

	s.flight.Tick(dt)
	if s.flight.IsFinished() {
		// Flew too long — despawn without damage.
		s.detach(ctx)
		s.expired = true
		return
	}

	if s.hasTarget {
		if target, ok := ctx.EnemyPosition(s.targetID); ok {
			if unit, ok := target.Pos.Sub(s.pos).Normalize(); ok {
				s.dir = unit
			}
		} else {
			// Target despawned mid-flight: freeze last-known direction and
			// continue straight.
			s.hasTarget = false
			slog.Debug("satellite target lost, continuing straight",
				"satellite", s.id, "target", s.targetID)
		}
	}

	s.pos = s.pos.Add(s.dir.Scale(s.speed * dt))
}

// Collide checks for target impact: damage once, remove self from the
// controller's list, despawn.
func (s *Satellite) Collide(ctx *Context) {
	if !s.launched || s.expired || !s.hasTarget {
		return
	}

	target, ok := ctx.EnemyPosition(s.targetID)
	if !ok {
		return
	}
	if !geom.CircleContains(s.pos, s.hitRadius, target.Pos) {
		return
	}

	ctx.Events.PushDamage(event.Damage{
		TargetID: s.targetID,
		Amount:   s.damage,
		Element:  s.element,
		SourceID: s.id,
	})
	for _, spec := range s.debuffs {
		ctx.Events.PushDebuff(event.Debuff{
			TargetID:  s.targetID,
			Kind:      spec.Kind,
			Magnitude: spec.Magnitude,
			Duration:  spec.Duration,
		})
	}

	s.detach(ctx)
	s.expired = true
}

// detach removes the satellite from its controller's forward list. A missing
// controller is a stale reference and a silent no-op.
func (s *Satellite) detach(ctx *Context) {
	eff, ok := ctx.Lookup(s.controllerID)
	if !ok {
		return
	}
	if ctrl, isCtrl := eff.(*Controller); isCtrl {
		ctrl.RemoveSatellite(s.id)
	}
}

// Done reports impact or flight timeout.
func (s *Satellite) Done() bool { return s.expired }
