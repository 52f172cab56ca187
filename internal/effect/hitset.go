package effect

// HitSet records targets an effect instance has already affected. Once a
// target ID is inserted it is never reprocessed by that instance for the
// remainder of its life.
type HitSet struct {
	ids map[uint32]struct{}
}

// NewHitSet creates an empty hit set.
func NewHitSet() *HitSet {
	return &HitSet{ids: make(map[uint32]struct{})}
}

// Has reports whether the target was already hit.
func (s *HitSet) Has(id uint32) bool {
	_, ok := s.ids[id]
	return ok
}

// Add marks the target as hit.
func (s *HitSet) Add(id uint32) {
	s.ids[id] = struct{}{}
}

// Len returns the number of recorded targets.
func (s *HitSet) Len() int {
	return len(s.ids)
}

// CooldownMap is the timed variant of hit deduplication: a hit target is
// blocked only until its per-target cooldown elapses, then becomes eligible
// again. Used by aura-style effects (frozen-orb) that repeatedly tick
// targets lingering in range.
type CooldownMap struct {
	remaining map[uint32]float64
}

// NewCooldownMap creates an empty cooldown map.
func NewCooldownMap() *CooldownMap {
	return &CooldownMap{remaining: make(map[uint32]float64)}
}

// Tick advances all per-target cooldowns by dt and drops the expired ones.
func (m *CooldownMap) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	for id, rem := range m.remaining {
		rem -= dt
		if rem <= 0 {
			delete(m.remaining, id)
		} else {
			m.remaining[id] = rem
		}
	}
}

// Blocked reports whether the target is still inside its cooldown window.
func (m *CooldownMap) Blocked(id uint32) bool {
	_, ok := m.remaining[id]
	return ok
}

// Block puts the target on cooldown for the given number of seconds.
// Non-positive cooldowns leave the target immediately eligible.
func (m *CooldownMap) Block(id uint32, cooldown float64) {
	if cooldown <= 0 {
		return
	}
	m.remaining[id] = cooldown
}

// Len returns the number of targets currently on cooldown.
func (m *CooldownMap) Len() int {
	return len(m.remaining)
}
