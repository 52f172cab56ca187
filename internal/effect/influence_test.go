package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
	"github.com/udisondev/spellforge/internal/world"
)

func TestInfluenceZone_MarksMembersEveryStep(t *testing.T) {
	table := NewInfluenceTable()
	z := NewInfluenceZone(geom.V(0, 0), 5.0, 1.5, 10.0, event.Shadow, table)

	inside := []world.Enemy{{ID: 1, Pos: geom.V(2, 0)}}
	outside := []world.Enemy{{ID: 1, Pos: geom.V(8, 0)}}

	// Step 1: target inside — marked.
	table.Reset()
	ctx := newTestContext(inside)
	z.Advance(0.1, ctx)
	z.Collide(ctx)
	assert.Equal(t, 1.5, table.Multiplier(event.Shadow, 1))
	assert.True(t, table.Marked(event.Shadow, 1))

	// Step 2: target moved out — the mark disappears with the rebuild.
	table.Reset()
	ctx = newTestContext(outside)
	z.Advance(0.1, ctx)
	z.Collide(ctx)
	assert.Equal(t, 1.0, table.Multiplier(event.Shadow, 1),
		"the marker is removed the moment a target leaves the zone")

	// Step 3: back inside — re-marked, membership is continuous, not dedup'd.
	table.Reset()
	ctx = newTestContext(inside)
	z.Advance(0.1, ctx)
	z.Collide(ctx)
	assert.Equal(t, 1.5, table.Multiplier(event.Shadow, 1))
}

func TestInfluenceTable_StrongestMultiplierWins(t *testing.T) {
	table := NewInfluenceTable()

	table.Amplify(event.Shadow, 1, 1.3)
	table.Amplify(event.Shadow, 1, 1.8)
	table.Amplify(event.Shadow, 1, 1.5)

	assert.Equal(t, 1.8, table.Multiplier(event.Shadow, 1))
}

func TestInfluenceTable_ElementScoped(t *testing.T) {
	table := NewInfluenceTable()
	table.Amplify(event.Shadow, 1, 2.0)

	assert.Equal(t, 1.0, table.Multiplier(event.Fire, 1),
		"a shadow mark must not amplify fire damage")
	assert.Equal(t, 1.0, table.Multiplier(event.Shadow, 2))
}

func TestInfluenceZone_LifetimeExpiry(t *testing.T) {
	table := NewInfluenceTable()
	z := NewInfluenceZone(geom.V(0, 0), 5.0, 1.5, 1.0, event.Shadow, table)

	ctx := newTestContext(nil)
	z.Advance(0.5, ctx)
	assert.False(t, z.Done())
	z.Advance(0.5, ctx)
	assert.True(t, z.Done())
}
