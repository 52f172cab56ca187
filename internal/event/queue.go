// Package event carries the per-step damage/debuff event channel: effects
// write, the external damage-application collaborator drains. Events live
// for exactly one simulation step and are never persisted.
package event

import "github.com/udisondev/spellforge/internal/debuff"

// Damage is a one-step damage request against a target.
// Amount arrives pre-scaled by caster attributes; the influence step may
// still multiply it before the applier consumes it.
type Damage struct {
	TargetID uint32
	Amount   float64
	Element  Element
	SourceID uint32 // effect instance that produced the event
}

// Debuff is a one-step debuff-application request.
type Debuff struct {
	TargetID  uint32
	Kind      debuff.Kind
	Magnitude float64
	Duration  float64
}

// Queue is the ordered per-step event buffer. Effects only push; the step
// loop drains both lists exactly once per step, so no event is processed
// twice or carried over.
//
// Not goroutine-safe: the step loop is single-threaded.
type Queue struct {
	damage  []Damage
	debuffs []Debuff
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// PushDamage appends a damage request.
func (q *Queue) PushDamage(d Damage) {
	q.damage = append(q.damage, d)
}

// PushDebuff appends a debuff-application request.
func (q *Queue) PushDebuff(d Debuff) {
	q.debuffs = append(q.debuffs, d)
}

// DrainDamage returns all queued damage events in push order and clears
// the queue.
func (q *Queue) DrainDamage() []Damage {
	drained := q.damage
	q.damage = nil
	return drained
}

// DrainDebuffs returns all queued debuff events in push order and clears
// the queue.
func (q *Queue) DrainDebuffs() []Debuff {
	drained := q.debuffs
	q.debuffs = nil
	return drained
}

// DamageCount returns the number of pending damage events.
func (q *Queue) DamageCount() int {
	return len(q.damage)
}

// DebuffCount returns the number of pending debuff events.
func (q *Queue) DebuffCount() int {
	return len(q.debuffs)
}
