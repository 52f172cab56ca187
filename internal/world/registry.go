// Package world tracks the living enemy population the spell-effect engine
// queries every step. Effects only ever read it — debuffs that affect enemy
// movement are consumed by the external movement system, never applied here.
package world

import (
	"log/slog"
	"sync"

	"github.com/udisondev/spellforge/internal/geom"
)

// Enemy is one row of the per-step snapshot handed to effects.
type Enemy struct {
	ID  uint32
	Pos geom.Vec2
}

// Registry holds living enemies in encounter order.
//
// Encounter order matters: nearest-neighbor ties and the swarm controller's
// round-robin target assignment both break ties by the order enemies were
// first seen, so Snapshot must be deterministic.
//
// Thread-safe: the step loop writes, external collaborators read.
type Registry struct {
	mu    sync.RWMutex
	order []uint32
	byID  map[uint32]geom.Vec2
}

// NewRegistry creates an empty enemy registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[uint32]geom.Vec2)}
}

// Spawn registers a new enemy at pos and returns its object ID.
func (r *Registry) Spawn(pos geom.Vec2) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := IDGenerator().NextEnemyID()
	r.byID[id] = pos
	r.order = append(r.order, id)

	slog.Debug("enemy spawned", "id", id, "x", pos.X, "y", pos.Y)
	return id
}

// Remove deletes an enemy. Returns false if the ID was not present.
func (r *Registry) Remove(id uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)

	n := 0
	for _, existing := range r.order {
		if existing != id {
			r.order[n] = existing
			n++
		}
	}
	r.order = r.order[:n]

	slog.Debug("enemy removed", "id", id)
	return true
}

// MoveTo updates an enemy position. Returns false for unknown IDs.
func (r *Registry) MoveTo(id uint32, pos geom.Vec2) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.byID[id] = pos
	return true
}

// Position returns the current position of an enemy.
func (r *Registry) Position(id uint32) (geom.Vec2, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.byID[id]
	return pos, ok
}

// Snapshot returns the living enemies in encounter order. The returned slice
// is a copy — effects can hold it for the rest of the step without seeing
// later mutations.
func (r *Registry) Snapshot() []Enemy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Enemy, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, Enemy{ID: id, Pos: r.byID[id]})
	}
	return result
}

// Count returns the number of living enemies.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
