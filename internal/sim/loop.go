package sim

import (
	"context"
	"log/slog"
	"time"
)

// Run drives Step on a real-time ticker until the context is canceled.
// tickRate is steps per second; non-positive rates fall back to 30.
//
// Tests never use Run — they call Step directly with synthetic dt values.
func (e *Engine) Run(ctx context.Context, tickRate int) error {
	if tickRate <= 0 {
		slog.Error("invalid tick rate, using 30", "requested", tickRate)
		tickRate = 30
	}

	interval := time.Second / time.Duration(tickRate)
	dt := interval.Seconds()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("simulation loop started", "tick_rate", tickRate, "dt", dt)

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation loop stopping", "steps", e.steps)
			return ctx.Err()

		case <-ticker.C:
			e.Step(dt)
		}
	}
}
