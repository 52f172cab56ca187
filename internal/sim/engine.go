// Package sim wires the spell-effect engine together: the enemy registry,
// the effect manager, the debuff registry, the influence table and the event
// queue, driven in a fixed per-step order.
package sim

import (
	"log/slog"

	"github.com/udisondev/spellforge/internal/debuff"
	"github.com/udisondev/spellforge/internal/effect"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/world"
)

// DamageApplier is the external damage-application collaborator. It consumes
// drained damage events fire-and-forget: its success or failure (target
// already dead, immune, …) is invisible to the effect that produced the
// event.
type DamageApplier func(ev event.Damage)

// Engine drives one world's spell-effect simulation.
//
// Scheduling model: single-threaded, cooperative, fixed discrete steps. A
// step processes, in this order and nothing in between:
//
//	1. effect timers / phase transitions / spawns  (Manager.Step advance)
//	2. collision & event enqueue                   (Manager.Step collide)
//	3. influence-adjusted event drain → applier
//	4. debuff-application drain → registry
//	5. debuff decay
//
// Step is not reentrant and must be called from one goroutine; the contained
// registries are independently read-safe for external collaborators.
type Engine struct {
	World     *world.Registry
	Effects   *effect.Manager
	Debuffs   *debuff.Registry
	Influence *effect.InfluenceTable

	queue   *event.Queue
	applier DamageApplier
	steps   uint64
}

// NewEngine creates an engine delivering drained damage events to applier.
// A nil applier discards damage (debuffs still apply).
func NewEngine(applier DamageApplier) *Engine {
	return &Engine{
		World:     world.NewRegistry(),
		Effects:   effect.NewManager(),
		Debuffs:   debuff.NewRegistry(),
		Influence: effect.NewInfluenceTable(),
		queue:     event.NewQueue(),
		applier:   applier,
	}
}

// Step advances the simulation by dt seconds.
func (e *Engine) Step(dt float64) {
	// Influence marks are a pure function of this step's positions.
	e.Influence.Reset()

	e.Effects.Step(dt, e.World.Snapshot(), e.queue)

	// Damage-modification step: influence-zone marks multiply matching
	// events before the applier sees them.
	for _, d := range e.queue.DrainDamage() {
		d.Amount *= e.Influence.Multiplier(d.Element, d.TargetID)
		if e.applier != nil {
			e.applier(d)
		}
	}

	for _, b := range e.queue.DrainDebuffs() {
		e.Debuffs.Apply(b.TargetID, b.Kind, b.Magnitude, b.Duration)
	}

	e.Debuffs.Tick(dt)
	e.steps++
}

// Steps returns the number of steps processed so far.
func (e *Engine) Steps() uint64 {
	return e.steps
}

// RemoveEnemy despawns an enemy and purges its debuffs, keeping the two
// registries consistent. Called by the owner of enemy lifecycle (the demo's
// applier on kill, the real game's death system).
func (e *Engine) RemoveEnemy(id uint32) {
	if e.World.Remove(id) {
		e.Debuffs.Purge(id)
		slog.Debug("enemy despawned", "id", id)
	}
}
