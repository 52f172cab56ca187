// Package clock provides the countdown/repeat timer primitive that drives
// every spell-effect phase transition in the simulation.
package clock

import "math"

// Mode selects how a Timer behaves after it crosses its threshold.
type Mode int

const (
	// Once: the timer latches finished and never fires again.
	Once Mode = iota
	// Repeating: the timer wraps its elapsed time and fires each cycle.
	Repeating
)

// Timer is a dt-driven countdown used by effect state machines.
//
// JustFinished is an edge-triggered, single-step pulse: it is computed inside
// Tick (true only on the step where the threshold is crossed), never by
// comparing state across separate calls.
//
// Not goroutine-safe: timers belong to exactly one effect instance and are
// ticked by the single-threaded step loop.
type Timer struct {
	duration     float64
	elapsed      float64
	mode         Mode
	finished     bool // latched, Once mode only
	justFinished bool
}

// New creates a timer with the given duration in seconds.
// A negative duration is clamped to zero: a zero-duration timer fires
// JustFinished on its very first Tick regardless of dt.
func New(duration float64, mode Mode) *Timer {
	if duration < 0 {
		duration = 0
	}
	return &Timer{duration: duration, mode: mode}
}

// Tick advances the timer by dt seconds. Negative dt is treated as zero.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if dt < 0 {
		dt = 0
	}

	switch t.mode {
	case Once:
		if t.finished {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.justFinished = true
		}
	case Repeating:
		t.elapsed += dt
		if t.elapsed >= t.duration {
			if t.duration <= 0 {
				t.elapsed = 0
			} else {
				t.elapsed = math.Mod(t.elapsed, t.duration)
			}
			t.justFinished = true
		}
	}
}

// JustFinished reports whether the timer crossed its threshold on the most
// recent Tick. False on every other step, including all steps after a Once
// timer has latched.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// IsFinished reports completion. For Once mode it stays true forever after
// the crossing step. For Repeating mode it mirrors the JustFinished pulse,
// since the timer resets each cycle.
func (t *Timer) IsFinished() bool {
	if t.mode == Once {
		return t.finished
	}
	return t.justFinished
}

// Elapsed returns seconds accumulated toward the current threshold.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Duration returns the configured threshold in seconds.
func (t *Timer) Duration() float64 {
	return t.duration
}

// RemainingFraction returns the unfinished part of the current cycle in
// [0, 1]. Used by the rendering collaborator for progress-based visuals.
func (t *Timer) RemainingFraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	rem := (t.duration - t.elapsed) / t.duration
	if rem < 0 {
		return 0
	}
	return rem
}
