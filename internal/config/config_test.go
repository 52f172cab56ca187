package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSimulation(t *testing.T) {
	cfg := DefaultSimulation()

	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 12, cfg.EnemyCount)

	assert.Equal(t, 8.0, cfg.Spells.VoidPulse.MaxRadius)
	assert.Equal(t, "void", cfg.Spells.VoidPulse.Element)
	assert.Nil(t, cfg.Spells.VoidPulse.Debuff)

	require.NotNil(t, cfg.Spells.GlacialPulse.Debuff)
	assert.Equal(t, "slow", cfg.Spells.GlacialPulse.Debuff.Kind)

	assert.Equal(t, 6, cfg.Spells.EmberSwarm.Satellites)
	assert.Equal(t, "lightning", cfg.Spells.Judgment.Strike.Element)
}

func TestLoadSimulation_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadSimulation(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulation(), cfg)
}

func TestLoadSimulation_OverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := []byte(`
tick_rate: 60
seed: 42
spells:
  void_pulse:
    max_radius: 12.0
    element: shadow
  ember_swarm:
    satellites: 3
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadSimulation(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 12.0, cfg.Spells.VoidPulse.MaxRadius)
	assert.Equal(t, "shadow", cfg.Spells.VoidPulse.Element)
	assert.Equal(t, 3, cfg.Spells.EmberSwarm.Satellites)

	// Untouched sections keep their defaults.
	assert.Equal(t, 18.0, cfg.Spells.CinderShot.Speed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadSimulation_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: [not a number"), 0o644))

	_, err := LoadSimulation(path)
	assert.Error(t, err)
}
