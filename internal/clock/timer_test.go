package clock

import (
	"math"
	"testing"
)

func TestOnceTimer_LatchesAfterCrossing(t *testing.T) {
	tm := New(1.0, Once)

	tm.Tick(0.5)
	if tm.JustFinished() {
		t.Fatal("timer fired before threshold")
	}
	if tm.IsFinished() {
		t.Fatal("timer finished before threshold")
	}

	tm.Tick(0.5)
	if !tm.JustFinished() {
		t.Fatal("timer did not pulse on the crossing tick")
	}
	if !tm.IsFinished() {
		t.Fatal("timer not finished on the crossing tick")
	}

	tm.Tick(0.5)
	if tm.JustFinished() {
		t.Fatal("JustFinished must be a single-step pulse")
	}
	if !tm.IsFinished() {
		t.Fatal("Once timer must stay finished forever")
	}
}

func TestRepeatingTimer_PulsesEachCycle(t *testing.T) {
	tm := New(0.5, Repeating)

	tm.Tick(0.3)
	if tm.JustFinished() || tm.IsFinished() {
		t.Fatal("fired mid-cycle")
	}

	tm.Tick(0.3) // elapsed 0.6 → wraps to 0.1
	if !tm.JustFinished() {
		t.Fatal("did not fire on wrap")
	}
	if !tm.IsFinished() {
		t.Fatal("repeating IsFinished must mirror the pulse")
	}
	if math.Abs(tm.Elapsed()-0.1) > 1e-9 {
		t.Fatalf("Elapsed() = %v, want ~0.1 after wrap", tm.Elapsed())
	}

	tm.Tick(0.3) // elapsed 0.4
	if tm.JustFinished() || tm.IsFinished() {
		t.Fatal("fired mid-cycle after wrap")
	}

	tm.Tick(0.2) // elapsed 0.6 → fires again
	if !tm.JustFinished() {
		t.Fatal("did not fire on second wrap")
	}
}

func TestZeroDurationTimer_FiresOnFirstTick(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		dt       float64
	}{
		{"zero duration zero dt", 0, 0},
		{"zero duration large dt", 0, 100},
		{"negative duration clamped", -3, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New(tt.duration, Once)
			tm.Tick(tt.dt)
			if !tm.JustFinished() {
				t.Fatal("zero-duration timer must fire on its very first tick")
			}
		})
	}
}

func TestTimer_NegativeDtTreatedAsZero(t *testing.T) {
	tm := New(1.0, Once)
	tm.Tick(0.6)
	tm.Tick(-5)
	if tm.IsFinished() {
		t.Fatal("negative dt must not advance the timer")
	}
	if math.Abs(tm.Elapsed()-0.6) > 1e-9 {
		t.Fatalf("Elapsed() = %v, want 0.6", tm.Elapsed())
	}
}

func TestTimer_RemainingFraction(t *testing.T) {
	tm := New(2.0, Once)
	if tm.RemainingFraction() != 1.0 {
		t.Fatalf("fresh timer RemainingFraction = %v, want 1", tm.RemainingFraction())
	}

	tm.Tick(0.5)
	if math.Abs(tm.RemainingFraction()-0.75) > 1e-9 {
		t.Fatalf("RemainingFraction = %v, want 0.75", tm.RemainingFraction())
	}

	tm.Tick(10)
	if tm.RemainingFraction() != 0 {
		t.Fatalf("finished timer RemainingFraction = %v, want 0", tm.RemainingFraction())
	}
}

func TestRepeatingTimer_HugeDtWrapsOnce(t *testing.T) {
	tm := New(0.5, Repeating)
	tm.Tick(1.7) // 3 full cycles and a bit
	if !tm.JustFinished() {
		t.Fatal("must fire when dt spans several cycles")
	}
	if math.Abs(tm.Elapsed()-0.2) > 1e-9 {
		t.Fatalf("Elapsed() = %v, want remainder 0.2", tm.Elapsed())
	}
}
