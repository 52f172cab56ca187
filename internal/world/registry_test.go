package world

import (
	"testing"

	"github.com/udisondev/spellforge/internal/geom"
)

func TestRegistry_SnapshotPreservesEncounterOrder(t *testing.T) {
	r := NewRegistry()

	first := r.Spawn(geom.V(1, 0))
	second := r.Spawn(geom.V(2, 0))
	third := r.Spawn(geom.V(3, 0))

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot size = %d, want 3", len(snap))
	}
	if snap[0].ID != first || snap[1].ID != second || snap[2].ID != third {
		t.Fatal("snapshot must preserve encounter order")
	}
}

func TestRegistry_RemoveKeepsOrder(t *testing.T) {
	r := NewRegistry()

	a := r.Spawn(geom.V(1, 0))
	b := r.Spawn(geom.V(2, 0))
	c := r.Spawn(geom.V(3, 0))

	if !r.Remove(b) {
		t.Fatal("expected removal of a live enemy to succeed")
	}
	if r.Remove(b) {
		t.Fatal("double removal must fail")
	}

	snap := r.Snapshot()
	if len(snap) != 2 || snap[0].ID != a || snap[1].ID != c {
		t.Fatalf("snapshot after removal = %v", snap)
	}
}

func TestRegistry_MoveTo(t *testing.T) {
	r := NewRegistry()
	id := r.Spawn(geom.V(0, 0))

	if !r.MoveTo(id, geom.V(5, 5)) {
		t.Fatal("MoveTo failed for live enemy")
	}
	pos, ok := r.Position(id)
	if !ok || pos != geom.V(5, 5) {
		t.Fatalf("Position = %v, %v", pos, ok)
	}

	if r.MoveTo(999, geom.V(1, 1)) {
		t.Fatal("MoveTo must fail for unknown ID")
	}
}

func TestRegistry_SnapshotIsACopy(t *testing.T) {
	r := NewRegistry()
	id := r.Spawn(geom.V(0, 0))

	snap := r.Snapshot()
	r.MoveTo(id, geom.V(9, 9))

	if snap[0].Pos != geom.V(0, 0) {
		t.Fatal("snapshot must not see later mutations")
	}
}

func TestObjectIDGenerator_Ranges(t *testing.T) {
	gen := NewObjectIDGenerator()

	enemy := gen.NextEnemyID()
	eff := gen.NextEffectID()

	if enemy < 0x10000000 || enemy >= 0x20000000 {
		t.Fatalf("enemy ID %#x outside enemy range", enemy)
	}
	if eff < 0x20000000 || eff >= 0x30000000 {
		t.Fatalf("effect ID %#x outside effect range", eff)
	}
	if gen.NextEnemyID() == enemy {
		t.Fatal("IDs must be unique")
	}
}
