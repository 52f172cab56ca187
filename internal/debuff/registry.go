package debuff

import (
	"log/slog"
	"sync"

	"github.com/udisondev/spellforge/internal/clock"
)

// Registry tracks active debuffs per target.
//
// Stacking rule: applying a kind the target already carries replaces the
// timer and magnitude (refresh-not-stack) — there are never two simultaneous
// instances of one kind on one target.
//
// Thread-safe: all methods are protected by sync.RWMutex. The step loop is
// the only writer; external collaborators (movement, rendering) read.
type Registry struct {
	mu      sync.RWMutex
	targets map[uint32]map[Kind]*Instance
}

// NewRegistry creates an empty debuff registry.
func NewRegistry() *Registry {
	return &Registry{targets: make(map[uint32]map[Kind]*Instance)}
}

// Apply attaches a debuff to a target, refreshing any existing instance of
// the same kind with the new magnitude and a full new duration.
// Non-positive durations are accepted and decay on the next Tick.
func (r *Registry) Apply(targetID uint32, kind Kind, magnitude, duration float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds, ok := r.targets[targetID]
	if !ok {
		kinds = make(map[Kind]*Instance, 4)
		r.targets[targetID] = kinds
	}

	if existing, ok := kinds[kind]; ok {
		existing.Magnitude = magnitude
		existing.timer = clock.New(duration, clock.Once)
		slog.Debug("debuff refreshed",
			"target", targetID,
			"kind", kind.String(),
			"duration", duration)
		return
	}

	kinds[kind] = &Instance{
		Kind:      kind,
		Magnitude: magnitude,
		timer:     clock.New(duration, clock.Once),
	}
	slog.Debug("debuff applied",
		"target", targetID,
		"kind", kind.String(),
		"magnitude", magnitude,
		"duration", duration)
}

// Tick advances all duration timers by dt and removes expired instances.
func (r *Registry) Tick(dt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for targetID, kinds := range r.targets {
		for kind, inst := range kinds {
			inst.timer.Tick(dt)
			if inst.timer.IsFinished() {
				delete(kinds, kind)
				slog.Debug("debuff expired", "target", targetID, "kind", kind.String())
			}
		}
		if len(kinds) == 0 {
			delete(r.targets, targetID)
		}
	}
}

// Has reports whether the target carries a live instance of kind.
func (r *Registry) Has(targetID uint32, kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.targets[targetID][kind]
	return ok
}

// Magnitude returns the magnitude of the target's instance of kind.
func (r *Registry) Magnitude(targetID uint32, kind Kind) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.targets[targetID][kind]
	if !ok {
		return 0, false
	}
	return inst.Magnitude, true
}

// MoveSpeedMultiplier returns the factor the external movement system should
// apply to the target's speed. 1.0 when unaffected; a stunned target is
// fully rooted regardless of other debuffs.
func (r *Registry) MoveSpeedMultiplier(targetID uint32) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds, ok := r.targets[targetID]
	if !ok {
		return 1.0
	}
	if _, stunned := kinds[Stun]; stunned {
		return 0
	}
	if slow, ok := kinds[Slow]; ok {
		return slow.Magnitude
	}
	return 1.0
}

// Active returns copies of all live instances on the target.
func (r *Registry) Active(targetID uint32) []Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := r.targets[targetID]
	if len(kinds) == 0 {
		return nil
	}
	result := make([]Instance, 0, len(kinds))
	for _, inst := range kinds {
		result = append(result, *inst)
	}
	return result
}

// Count returns the number of live debuffs on the target.
func (r *Registry) Count(targetID uint32) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets[targetID])
}

// Purge drops every debuff on the target. Called when an enemy despawns so
// stale references never linger.
func (r *Registry) Purge(targetID uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.targets, targetID)
}
