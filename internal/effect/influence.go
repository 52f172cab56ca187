package effect

import (
	"sync"

	"github.com/udisondev/spellforge/internal/clock"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
)

// InfluenceTable collects the damage multipliers contributed by influence
// zones. The engine resets it at the start of every step and influence zones
// re-mark their members during the collide phase, so membership is a pure
// per-step function of position: a target that leaves all zones (or whose
// zone despawns) simply stops being marked.
//
// When several zones amplify the same element for the same target, the
// strongest multiplier wins.
//
// Thread-safe: the damage-modification step and external readers consult it
// while the step loop rebuilds it.
type InfluenceTable struct {
	mu          sync.RWMutex
	multipliers map[event.Element]map[uint32]float64
}

// NewInfluenceTable creates an empty influence table.
func NewInfluenceTable() *InfluenceTable {
	return &InfluenceTable{multipliers: make(map[event.Element]map[uint32]float64)}
}

// Reset clears all marks. Called once at the start of every step.
func (t *InfluenceTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.multipliers)
}

// Amplify marks a target as amplified for the given element. The strongest
// multiplier wins when a target sits inside several zones.
func (t *InfluenceTable) Amplify(el event.Element, targetID uint32, multiplier float64) {
	if multiplier <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	targets, ok := t.multipliers[el]
	if !ok {
		targets = make(map[uint32]float64)
		t.multipliers[el] = targets
	}
	if existing, ok := targets[targetID]; !ok || multiplier > existing {
		targets[targetID] = multiplier
	}
}

// Multiplier returns the factor to apply to a damage event of element el
// against targetID. 1.0 when the target carries no mark.
func (t *InfluenceTable) Multiplier(el event.Element, targetID uint32) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if m, ok := t.multipliers[el][targetID]; ok {
		return m
	}
	return 1.0
}

// Marked reports whether the target currently carries a mark for el.
func (t *InfluenceTable) Marked(el event.Element, targetID uint32) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.multipliers[el][targetID]
	return ok
}

// InfluenceZone is the zone-of-influence variant (nightfall): instead of
// dealing damage itself it tags every enemy inside its radius with a damage
// multiplier for one element, consulted by the damage-modification step
// before events are finalized. The membership test is continuous — no hit
// dedup of any kind.
type InfluenceZone struct {
	id         uint32
	center     geom.Vec2
	radius     float64
	multiplier float64
	element    event.Element
	lifetime   *clock.Timer
	table      *InfluenceTable
}

// NewInfluenceZone creates an influence zone writing into table.
func NewInfluenceZone(center geom.Vec2, radius, multiplier, lifetime float64, element event.Element, table *InfluenceTable) *InfluenceZone {
	return &InfluenceZone{
		id:         nextEffectID(),
		center:     center,
		radius:     radius,
		multiplier: multiplier,
		element:    element,
		lifetime:   clock.New(lifetime, clock.Once),
		table:      table,
	}
}

func (z *InfluenceZone) ID() uint32 { return z.id }
func (z *InfluenceZone) Kind() Kind { return KindInfluenceZone }

// Advance ticks the lifetime timer.
func (z *InfluenceZone) Advance(dt float64, _ *Context) {
	z.lifetime.Tick(dt)
}

// Collide re-marks every enemy currently inside the zone. Marks from the
// previous step were wiped by the engine's table reset, so leaving the
// radius removes the mark the same step.
func (z *InfluenceZone) Collide(ctx *Context) {
	if z.table == nil {
		return
	}
	for _, en := range ctx.Enemies {
		if geom.CircleContains(z.center, z.radius, en.Pos) {
			z.table.Amplify(z.element, en.ID, z.multiplier)
		}
	}
}

// Done reports lifetime expiry.
func (z *InfluenceZone) Done() bool {
	return z.lifetime.IsFinished()
}

// RemainingFraction exposes lifetime progress for the rendering collaborator.
func (z *InfluenceZone) RemainingFraction() float64 {
	return z.lifetime.RemainingFraction()
}
