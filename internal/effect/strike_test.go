package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
	"github.com/udisondev/spellforge/internal/world"
)

func testStrikeSpec() StrikeSpec {
	return StrikeSpec{
		Damage:         35,
		Radius:         3.0,
		VisualLifetime: 0.4,
		Element:        event.Lightning,
	}
}

func TestMarker_SpawnsStrikeWhenDelayElapses(t *testing.T) {
	mk := NewMarker(geom.V(5, 0), 0.5, testStrikeSpec())
	ctx := newTestContext(nil)

	mk.Advance(0.25, ctx)
	assert.False(t, mk.Done())
	assert.Empty(t, ctx.takeSpawned())

	mk.Advance(0.25, ctx)
	spawned := ctx.takeSpawned()
	require.Len(t, spawned, 1, "strike spawns on the exact step the delay crosses")
	assert.Equal(t, KindStrike, spawned[0].Kind())
	assert.True(t, mk.Done(), "marker despawns once it has detonated")
}

func TestStrike_DamageExactlyOnceWhileVisualLingers(t *testing.T) {
	s := NewStrike(geom.V(0, 0), testStrikeSpec())
	ctx := newTestContext([]world.Enemy{
		{ID: 1, Pos: geom.V(1, 0)},
		{ID: 2, Pos: geom.V(2, 2)},
		{ID: 3, Pos: geom.V(10, 0)}, // outside radius
	})

	total := 0
	steps := 0
	for !s.Done() {
		s.Advance(0.1, ctx)
		s.Collide(ctx)
		total += len(ctx.Events.DrainDamage())
		steps++
	}

	assert.Equal(t, 2, total, "everything in radius damaged exactly once, on exactly one step")
	assert.Equal(t, 4, steps, "visual lingers for its whole lifetime")
}

func TestStrike_DamageAppliesEvenWithNoTargets(t *testing.T) {
	// The single damage pass is consumed even when it finds nothing; a
	// target walking in later is never hit.
	s := NewStrike(geom.V(0, 0), testStrikeSpec())

	empty := newTestContext(nil)
	s.Advance(0.1, empty)
	s.Collide(empty)
	assert.Empty(t, empty.Events.DrainDamage())

	late := newTestContext([]world.Enemy{{ID: 1, Pos: geom.V(0, 0)}})
	s.Advance(0.1, late)
	s.Collide(late)
	assert.Empty(t, late.Events.DrainDamage())
}

func TestMarkerToStrike_FullChainThroughManager(t *testing.T) {
	m := NewManager()
	q := event.NewQueue()
	enemies := []world.Enemy{{ID: 1, Pos: geom.V(5, 0)}}

	m.Add(NewMarker(geom.V(5, 0), 0.5, testStrikeSpec()))

	// Step 1: delay mid-count, nothing happens.
	m.Step(0.25, enemies, q)
	assert.Equal(t, 0, q.DamageCount())
	assert.Equal(t, 1, m.CountKind(KindMarker))

	// Step 2: delay crosses — strike spawns AND damages the same step.
	m.Step(0.25, enemies, q)
	dmg := q.DrainDamage()
	require.Len(t, dmg, 1, "strike detonation damages the step the delay elapses")
	assert.Equal(t, 35.0, dmg[0].Amount)
	assert.Equal(t, 0, m.CountKind(KindMarker), "marker despawned after detonating")
	assert.Equal(t, 1, m.CountKind(KindStrike))

	// Visual decay: strike lingers, no further damage.
	m.Step(0.25, enemies, q)
	assert.Equal(t, 0, q.DamageCount())
	m.Step(0.25, enemies, q)
	assert.Equal(t, 0, m.CountKind(KindStrike), "strike despawned after its visual lifetime")
}

func TestJudgment_TargetsNearestAndSkipsEmptyCycles(t *testing.T) {
	j := NewJudgmentCaster(geom.V(0, 0), 10.0, 1.0, 30.0, 0.5, testStrikeSpec())

	// No enemies: cycle fires, nothing spawns, no error.
	empty := newTestContext(nil)
	j.Advance(1.0, empty)
	assert.Empty(t, empty.takeSpawned(), "a cycle with no enemy in range is silently skipped")

	// Nearest in-range enemy picked; ties broken by encounter order.
	ctx := newTestContext([]world.Enemy{
		{ID: 1, Pos: geom.V(4, 0)},
		{ID: 2, Pos: geom.V(-4, 0)}, // same distance, seen second
		{ID: 3, Pos: geom.V(9, 0)},
	})
	j.Advance(1.0, ctx)
	spawned := ctx.takeSpawned()
	require.Len(t, spawned, 1)
	mk, ok := spawned[0].(*Marker)
	require.True(t, ok)
	assert.Equal(t, geom.V(4, 0), mk.target, "marker lands on the first-encountered nearest enemy")
}

func TestJudgment_OutOfRangeEnemySkipped(t *testing.T) {
	j := NewJudgmentCaster(geom.V(0, 0), 5.0, 1.0, 30.0, 0.5, testStrikeSpec())
	ctx := newTestContext([]world.Enemy{{ID: 1, Pos: geom.V(20, 0)}})

	j.Advance(1.0, ctx)
	assert.Empty(t, ctx.takeSpawned())
}

func TestJudgment_LifetimeBoundsCasting(t *testing.T) {
	j := NewJudgmentCaster(geom.V(0, 0), 10.0, 1.0, 2.0, 0.5, testStrikeSpec())
	ctx := newTestContext([]world.Enemy{{ID: 1, Pos: geom.V(3, 0)}})

	spawns := 0
	for !j.Done() {
		j.Advance(1.0, ctx)
		spawns += len(ctx.takeSpawned())
	}

	assert.Equal(t, 2, spawns, "a marker per interval pulse until lifetime expires")
}
