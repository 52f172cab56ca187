package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/spellforge/internal/config"
	"github.com/udisondev/spellforge/internal/effect"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
	"github.com/udisondev/spellforge/internal/sim"
)

const ConfigPath = "config/simulator.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// battlefield tracks demo enemy health so the damage applier has something
// to apply damage to. The real game's health/death system owns this.
type battlefield struct {
	mu     sync.Mutex
	engine *sim.Engine
	health map[uint32]float64
	total  float64
	kills  int
}

func (b *battlefield) apply(ev event.Damage) {
	b.mu.Lock()
	defer b.mu.Unlock()

	hp, ok := b.health[ev.TargetID]
	if !ok {
		return // already dead, fire-and-forget
	}
	hp -= ev.Amount
	b.total += ev.Amount

	slog.Debug("damage applied",
		"target", ev.TargetID,
		"amount", ev.Amount,
		"element", ev.Element.String(),
		"hp_left", hp)

	if hp <= 0 {
		delete(b.health, ev.TargetID)
		b.kills++
		b.engine.RemoveEnemy(ev.TargetID)
		return
	}
	b.health[ev.TargetID] = hp
}

func (b *battlefield) stats() (total float64, kills int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total, b.kills
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("SPELLFORGE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("spellforge simulator starting",
		"tick_rate", cfg.TickRate,
		"seed", cfg.Seed,
		"enemies", cfg.EnemyCount)

	field := &battlefield{health: make(map[uint32]float64)}
	engine := sim.NewEngine(field.apply)
	field.engine = engine

	// Seeded PRNG: the whole demo is reproducible for a given seed.
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	for range cfg.EnemyCount {
		pos := geom.V(
			(rng.Float64()-0.5)*cfg.ArenaSize,
			(rng.Float64()-0.5)*cfg.ArenaSize,
		)
		id := engine.World.Spawn(pos)
		field.health[id] = 100
	}

	castAll(engine, cfg.Spells, rng)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return engine.Run(ctx, cfg.TickRate)
	})

	g.Go(func() error {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				total, kills := field.stats()
				slog.Info("simulation stats",
					"steps", engine.Steps(),
					"effects", engine.Effects.Count(),
					"enemies", engine.World.Count(),
					"damage_total", total,
					"kills", kills)
			}
		}
	})

	err = g.Wait()

	total, kills := field.stats()
	slog.Info("simulation finished",
		"steps", engine.Steps(),
		"damage_total", total,
		"kills", kills)
	return err
}

// castAll fires one cast of every archetype around the origin — the demo
// stands in for the external cast trigger.
func castAll(engine *sim.Engine, spells config.Spells, rng *rand.Rand) {
	m := engine.Effects
	origin := geom.V(0, 0)

	effect.CastWave(m, origin, spells.VoidPulse.Damage, spells.VoidPulse)
	effect.CastWave(m, origin, spells.GlacialPulse.Damage, spells.GlacialPulse)
	effect.CastCyclingZone(m, geom.V(5, 5), spells.ChaosAnomaly.Damage, spells.ChaosAnomaly)
	effect.CastInfluenceZone(m, geom.V(-5, -5), spells.Nightfall, engine.Influence)
	effect.CastPiercingShot(m, origin, geom.V(1, 0), spells.CinderShot.Damage, spells.CinderShot)
	effect.CastFrozenOrb(m, origin, geom.V(0, 1), spells.FrozenOrb.Damage, spells.FrozenOrb)
	effect.CastThunderStrike(m, geom.V(8, 0), spells.ThunderStrike.Damage, spells.ThunderStrike)
	effect.CastJudgment(m, origin, spells.Judgment.Strike.Damage, spells.Judgment)
	effect.CastEmberSwarm(m, origin, spells.EmberSwarm.Damage, spells.EmberSwarm, rng)

	slog.Info("all archetypes cast", "effects", m.Count())
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
