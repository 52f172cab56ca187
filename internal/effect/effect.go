// Package effect implements the spell-effect state machines: expanding
// waves, cycling zones, piercing projectiles, delayed strikes and the
// orbit/launch swarm controller, plus the manager that drives them all
// through the fixed per-step phase order.
package effect

import (
	"github.com/udisondev/spellforge/internal/debuff"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/world"
)

// Kind tags the archetype of a live effect instance. The rendering
// collaborator dispatches visuals on it; the engine only ever drives the
// Effect interface.
type Kind int

const (
	KindWave Kind = iota
	KindZone
	KindInfluenceZone
	KindProjectile
	KindMarker
	KindStrike
	KindJudgment
	KindSwarmController
	KindSwarmSatellite
)

var kindNames = map[Kind]string{
	KindWave:            "wave",
	KindZone:            "zone",
	KindInfluenceZone:   "influence_zone",
	KindProjectile:      "projectile",
	KindMarker:          "marker",
	KindStrike:          "strike",
	KindJudgment:        "judgment",
	KindSwarmController: "swarm_controller",
	KindSwarmSatellite:  "swarm_satellite",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Effect is one live spell-effect instance.
//
// The manager calls Advance on every instance, then Collide on every
// instance, then removes instances reporting Done. Within one step an
// instance's own timers therefore always advance before its own collision
// check — a timer that crosses its threshold this step is visible to this
// step's collision and spawn logic.
//
// Effects never read another effect's internal state except through the
// explicit Context.Lookup weak-reference path (swarm satellites resolving
// their controller).
type Effect interface {
	ID() uint32
	Kind() Kind

	// Advance runs timers, movement and phase transitions. Follow-on
	// entities (strike from marker, markers from judgment) are requested
	// via ctx.Spawn.
	Advance(dt float64, ctx *Context)

	// Collide queries the enemy snapshot against the instance's current
	// geometry and enqueues damage/debuff events for newly eligible targets.
	Collide(ctx *Context)

	// Done reports the terminal condition. The manager despawns the
	// instance at the end of the step in which Done first returns true.
	Done() bool
}

// DebuffSpec describes a debuff an effect applies alongside its damage.
type DebuffSpec struct {
	Kind      debuff.Kind
	Magnitude float64
	Duration  float64
}

// Context is the per-step view handed to every effect. It carries the
// read-only enemy snapshot, the write-only event queue, the spawn buffer and
// the effect lookup used for weak back-references.
type Context struct {
	Enemies []world.Enemy
	Events  *event.Queue

	lookup  func(uint32) (Effect, bool)
	spawned []Effect
}

// Spawn buffers a follow-on effect. The manager registers buffered spawns
// after the advance phase and before the collide phase, so a freshly spawned
// strike collides on the very step its marker fired.
func (c *Context) Spawn(e Effect) {
	c.spawned = append(c.spawned, e)
}

// Lookup resolves an effect instance by ID. Returns ok=false for despawned
// or unknown instances — callers must treat that as "reference gone, no-op",
// never as an error.
func (c *Context) Lookup(id uint32) (Effect, bool) {
	if c.lookup == nil {
		return nil, false
	}
	return c.lookup(id)
}

// EnemyPosition finds an enemy in the step snapshot by ID.
func (c *Context) EnemyPosition(id uint32) (pos world.Enemy, ok bool) {
	for _, en := range c.Enemies {
		if en.ID == id {
			return en, true
		}
	}
	return world.Enemy{}, false
}

func (c *Context) takeSpawned() []Effect {
	taken := c.spawned
	c.spawned = nil
	return taken
}

// nextEffectID allocates an ID from the shared generator.
func nextEffectID() uint32 {
	return world.IDGenerator().NextEffectID()
}
