// Package config loads the simulator's YAML configuration: runtime settings
// plus per-spell tuning. Tuning values arrive untrusted — construction sites
// clamp malformed numbers instead of failing, so a broken spell definition
// degrades rather than crashing the step loop.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulation holds all configuration for the headless simulator.
type Simulation struct {
	// Runtime
	TickRate int    `yaml:"tick_rate"` // simulation steps per second
	LogLevel string `yaml:"log_level"` // debug | info | warn | error
	Seed     uint64 `yaml:"seed"`      // PRNG seed for reproducible jitter

	// Demo population
	EnemyCount int     `yaml:"enemy_count"`
	ArenaSize  float64 `yaml:"arena_size"` // enemies spawn in [-size/2, size/2]²

	Spells Spells `yaml:"spells"`
}

// Spells is the per-spell tuning table. Damage values here are final:
// caster-attribute scaling happens before an effect is created and the
// effect never reads caster state.
type Spells struct {
	VoidPulse     WaveSpell       `yaml:"void_pulse"`
	GlacialPulse  WaveSpell       `yaml:"glacial_pulse"`
	ChaosAnomaly  ZoneSpell       `yaml:"chaos_anomaly"`
	Nightfall     InfluenceSpell  `yaml:"nightfall"`
	CinderShot    ProjectileSpell `yaml:"cinder_shot"`
	FrozenOrb     OrbSpell        `yaml:"frozen_orb"`
	ThunderStrike StrikeSpell     `yaml:"thunder_strike"`
	Judgment      JudgmentSpell   `yaml:"judgment"`
	EmberSwarm    SwarmSpell      `yaml:"ember_swarm"`
}

// DebuffSetting describes a debuff a spell applies on hit.
// Kind is parsed by debuff.ParseKind; unknown kinds degrade to slow.
type DebuffSetting struct {
	Kind      string  `yaml:"kind"`
	Magnitude float64 `yaml:"magnitude"`
	Duration  float64 `yaml:"duration"`
}

// WaveSpell tunes an expanding-wave cast.
type WaveSpell struct {
	MaxRadius      float64        `yaml:"max_radius"`
	ExpandDuration float64        `yaml:"expand_duration"`
	Damage         float64        `yaml:"damage"`
	Element        string         `yaml:"element"`
	Debuff         *DebuffSetting `yaml:"debuff,omitempty"`
}

// ZoneSpell tunes a cycling-zone cast.
type ZoneSpell struct {
	Radius        float64 `yaml:"radius"`
	Lifetime      float64 `yaml:"lifetime"`
	TickInterval  float64 `yaml:"tick_interval"`
	CycleInterval float64 `yaml:"cycle_interval"`
	Damage        float64 `yaml:"damage"`
}

// InfluenceSpell tunes a zone-of-influence cast.
type InfluenceSpell struct {
	Radius     float64 `yaml:"radius"`
	Lifetime   float64 `yaml:"lifetime"`
	Multiplier float64 `yaml:"multiplier"`
	Element    string  `yaml:"element"` // element whose damage is amplified
}

// ProjectileSpell tunes a cinder-shot style piercing projectile.
type ProjectileSpell struct {
	Speed     float64        `yaml:"speed"`
	Lifetime  float64        `yaml:"lifetime"`
	HitRadius float64        `yaml:"hit_radius"`
	Damage    float64        `yaml:"damage"`
	Element   string         `yaml:"element"`
	Debuff    *DebuffSetting `yaml:"debuff,omitempty"`
}

// OrbSpell tunes a frozen-orb style pulsing aura projectile.
type OrbSpell struct {
	Speed          float64        `yaml:"speed"`
	Lifetime       float64        `yaml:"lifetime"`
	DamageRadius   float64        `yaml:"damage_radius"`
	TickInterval   float64        `yaml:"tick_interval"`
	TargetCooldown float64        `yaml:"target_cooldown"`
	Damage         float64        `yaml:"damage"`
	Element        string         `yaml:"element"`
	Debuff         *DebuffSetting `yaml:"debuff,omitempty"`
}

// StrikeSpell tunes a thunder-strike cast (marker → strike).
type StrikeSpell struct {
	Delay          float64 `yaml:"delay"`
	Radius         float64 `yaml:"radius"`
	VisualLifetime float64 `yaml:"visual_lifetime"`
	Damage         float64 `yaml:"damage"`
	Element        string  `yaml:"element"`
}

// JudgmentSpell tunes the periodic strike caster.
type JudgmentSpell struct {
	Range    float64     `yaml:"range"`
	Interval float64     `yaml:"interval"`
	Lifetime float64     `yaml:"lifetime"`
	Strike   StrikeSpell `yaml:"strike"`
}

// SwarmSpell tunes an ember-swarm cast.
type SwarmSpell struct {
	Satellites    int     `yaml:"satellites"`
	OrbitDuration float64 `yaml:"orbit_duration"`
	OrbitRadius   float64 `yaml:"orbit_radius"`
	AngularRate   float64 `yaml:"angular_rate"` // radians per second
	Speed         float64 `yaml:"speed"`
	MaxFlight     float64 `yaml:"max_flight"`
	HitRadius     float64 `yaml:"hit_radius"`
	Damage        float64 `yaml:"damage"`
	Element       string  `yaml:"element"`
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		TickRate:   30,
		LogLevel:   "info",
		Seed:       1,
		EnemyCount: 12,
		ArenaSize:  60,
		Spells: Spells{
			VoidPulse: WaveSpell{
				MaxRadius:      8.0,
				ExpandDuration: 0.6,
				Damage:         25,
				Element:        "void",
			},
			GlacialPulse: WaveSpell{
				MaxRadius:      6.0,
				ExpandDuration: 0.5,
				Damage:         15,
				Element:        "frost",
				Debuff:         &DebuffSetting{Kind: "slow", Magnitude: 0.6, Duration: 2.5},
			},
			ChaosAnomaly: ZoneSpell{
				Radius:        6.0,
				Lifetime:      8.0,
				TickInterval:  0.5,
				CycleInterval: 2.0,
				Damage:        6,
			},
			Nightfall: InfluenceSpell{
				Radius:     7.0,
				Lifetime:   10.0,
				Multiplier: 1.5,
				Element:    "shadow",
			},
			CinderShot: ProjectileSpell{
				Speed:     18.0,
				Lifetime:  1.2,
				HitRadius: 0.8,
				Damage:    20,
				Element:   "fire",
				Debuff:    &DebuffSetting{Kind: "burn", Magnitude: 4, Duration: 3.0},
			},
			FrozenOrb: OrbSpell{
				Speed:          4.0,
				Lifetime:       5.0,
				DamageRadius:   3.5,
				TickInterval:   0.4,
				TargetCooldown: 0.4,
				Damage:         5,
				Element:        "frost",
				Debuff:         &DebuffSetting{Kind: "slow", Magnitude: 0.7, Duration: 1.0},
			},
			ThunderStrike: StrikeSpell{
				Delay:          0.8,
				Radius:         3.0,
				VisualLifetime: 0.4,
				Damage:         35,
				Element:        "lightning",
			},
			Judgment: JudgmentSpell{
				Range:    15.0,
				Interval: 1.5,
				Lifetime: 9.0,
				Strike: StrikeSpell{
					Delay:          0.5,
					Radius:         2.5,
					VisualLifetime: 0.3,
					Damage:         28,
					Element:        "lightning",
				},
			},
			EmberSwarm: SwarmSpell{
				Satellites:    6,
				OrbitDuration: 1.5,
				OrbitRadius:   2.0,
				AngularRate:   4.0,
				Speed:         14.0,
				MaxFlight:     3.0,
				HitRadius:     0.6,
				Damage:        12,
				Element:       "fire",
			},
		},
	}
}

// LoadSimulation reads the simulator config from path. A missing file is not
// an error — defaults apply.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
