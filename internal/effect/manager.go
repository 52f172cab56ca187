package effect

import (
	"log/slog"
	"sync"

	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/world"
)

// Manager owns every live effect instance and drives the per-step phase
// order: advance all → register spawns → collide all → remove the done.
//
// Instances are kept in insertion order, which makes the whole step
// deterministic for a given cast/spawn history. Across instances no ordering
// is required by the effects themselves — each is independent — but
// determinism keeps tests and replays exact.
//
// Thread-safe: Step is the single writer; rendering and stats collaborators
// read through the RWMutex.
type Manager struct {
	mu      sync.RWMutex
	effects []Effect
	index   map[uint32]Effect
}

// NewManager creates an empty effect manager.
func NewManager() *Manager {
	return &Manager{index: make(map[uint32]Effect)}
}

// Add registers a freshly cast effect instance.
func (m *Manager) Add(e Effect) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.add(e)
}

// add registers an instance. Must be called with mu held.
func (m *Manager) add(e Effect) {
	m.effects = append(m.effects, e)
	m.index[e.ID()] = e
	slog.Debug("effect spawned", "id", e.ID(), "kind", e.Kind().String())
}

// Lookup resolves an effect by ID.
func (m *Manager) Lookup(id uint32) (Effect, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.index[id]
	return e, ok
}

// Count returns the number of live effect instances.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.effects)
}

// CountKind returns the number of live instances of one archetype.
func (m *Manager) CountKind(k Kind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, e := range m.effects {
		if e.Kind() == k {
			count++
		}
	}
	return count
}

// Effects returns a copy of the live instance list for external readers.
func (m *Manager) Effects() []Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Effect, len(m.effects))
	copy(result, m.effects)
	return result
}

// Step drives one simulation step over all instances.
//
// Phase order per instance is guaranteed: timers advance before transitions
// fire before collision runs. Spawns requested during the advance phase are
// registered before the collide phase, so a strike detonating this step also
// damages this step. Instances reporting Done are removed at the end; their
// final collide pass has already run.
func (m *Manager) Step(dt float64, enemies []world.Enemy, events *event.Queue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctx := &Context{
		Enemies: enemies,
		Events:  events,
		lookup: func(id uint32) (Effect, bool) {
			e, ok := m.index[id]
			return e, ok
		},
	}

	for _, e := range m.effects {
		e.Advance(dt, ctx)
	}

	// Register follow-on spawns. A spawned effect may itself request spawns
	// while advancing on later steps, never within this one, so a single
	// flush loop is enough to drain the buffer.
	for _, spawned := range ctx.takeSpawned() {
		m.add(spawned)
	}

	for _, e := range m.effects {
		e.Collide(ctx)
	}

	// Cleanup: compact in place, same idiom as the debuff sweep.
	n := 0
	for _, e := range m.effects {
		if e.Done() {
			delete(m.index, e.ID())
			slog.Debug("effect despawned", "id", e.ID(), "kind", e.Kind().String())
		} else {
			m.effects[n] = e
			n++
		}
	}
	clear(m.effects[n:])
	m.effects = m.effects[:n]
}
