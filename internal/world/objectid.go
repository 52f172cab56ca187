package world

import "sync/atomic"

// ObjectIDGenerator generates unique object IDs for all simulation entities.
// Centralized generation prevents collisions between enemies and effects.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid/missing reference)
//	0x10000000 - 0x1FFFFFFF: Enemies (268M IDs)
//	0x20000000 - 0x2FFFFFFF: Effect instances (268M IDs)
//	0x30000000 - 0xFFFFFFFF: Reserved for future use
type ObjectIDGenerator struct {
	nextEnemyID  atomic.Uint32
	nextEffectID atomic.Uint32
}

// NewObjectIDGenerator creates a new ID generator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	gen := &ObjectIDGenerator{}
	gen.nextEnemyID.Store(0x10000000)
	gen.nextEffectID.Store(0x20000000)
	return gen
}

// NextEnemyID generates the next unique enemy object ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) NextEnemyID() uint32 {
	return g.nextEnemyID.Add(1)
}

// NextEffectID generates the next unique effect-instance ID.
// Thread-safe via atomic increment.
func (g *ObjectIDGenerator) NextEffectID() uint32 {
	return g.nextEffectID.Add(1)
}

// Global ID generator (singleton pattern).
var globalIDGenerator = NewObjectIDGenerator()

// IDGenerator returns the global object ID generator.
// Thread-safe singleton.
func IDGenerator() *ObjectIDGenerator {
	return globalIDGenerator
}
