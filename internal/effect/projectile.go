package effect

import (
	"log/slog"

	"github.com/udisondev/spellforge/internal/clock"
	"github.com/udisondev/spellforge/internal/event"
	"github.com/udisondev/spellforge/internal/geom"
)

// ProjectileVariant selects the hit-deduplication discipline of a
// piercing projectile.
type ProjectileVariant int

const (
	// PierceOnce (cinder-shot): a permanent hit set — each target is damaged
	// at most once for the projectile's whole life.
	PierceOnce ProjectileVariant = iota
	// PulseAura (frozen-orb): a per-target cooldown map gated on a repeating
	// tick timer — targets lingering in the aura are damaged repeatedly,
	// re-eligible once their individual cooldown elapses.
	PulseAura
)

// Projectile is the piercing-projectile archetype. It moves linearly every
// step — unconditionally, even while despawn is pending — never despawns on
// hit, and terminates only when its lifetime timer finishes.
type Projectile struct {
	id        uint32
	pos       geom.Vec2
	dir       geom.Vec2 // normalized; zero for degenerate cast direction
	speed     float64
	damage    float64
	element   event.Element
	lifetime  *clock.Timer
	variant   ProjectileVariant
	hitRadius float64
	debuffs   []DebuffSpec

	// PierceOnce state
	hits *HitSet

	// PulseAura state
	pulse     *clock.Timer
	cooldowns *CooldownMap
	cooldown  float64
}

// NewPiercingProjectile creates a cinder-shot style projectile: a fixed
// collision radius, one hit per target forever. A degenerate direction is a
// configuration error; the projectile degrades to a stationary field.
func NewPiercingProjectile(pos, dir geom.Vec2, speed, damage, lifetime, hitRadius float64, element event.Element, debuffs ...DebuffSpec) *Projectile {
	unit, ok := dir.Normalize()
	if !ok {
		slog.Error("projectile cast with degenerate direction, staying at spawn point")
	}
	return &Projectile{
		id:        nextEffectID(),
		pos:       pos,
		dir:       unit,
		speed:     speed,
		damage:    damage,
		element:   element,
		lifetime:  clock.New(lifetime, clock.Once),
		variant:   PierceOnce,
		hitRadius: hitRadius,
		debuffs:   debuffs,
		hits:      NewHitSet(),
	}
}

// NewOrbProjectile creates a frozen-orb style projectile: a damage aura that
// pulses on tickInterval and blocks each damaged target for targetCooldown
// seconds before it becomes eligible again.
func NewOrbProjectile(pos, dir geom.Vec2, speed, damage, lifetime, damageRadius, tickInterval, targetCooldown float64, element event.Element, debuffs ...DebuffSpec) *Projectile {
	unit, ok := dir.Normalize()
	if !ok {
		slog.Error("orb cast with degenerate direction, staying at spawn point")
	}
	return &Projectile{
		id:        nextEffectID(),
		pos:       pos,
		dir:       unit,
		speed:     speed,
		damage:    damage,
		element:   element,
		lifetime:  clock.New(lifetime, clock.Once),
		variant:   PulseAura,
		hitRadius: damageRadius,
		debuffs:   debuffs,
		pulse:     clock.New(tickInterval, clock.Repeating),
		cooldowns: NewCooldownMap(),
		cooldown:  targetCooldown,
	}
}

func (p *Projectile) ID() uint32 { return p.id }
func (p *Projectile) Kind() Kind { return KindProjectile }

// Variant returns the hit-deduplication discipline.
func (p *Projectile) Variant() ProjectileVariant { return p.variant }

// Advance moves the projectile and ticks its timers.
func (p *Projectile) Advance(dt float64, _ *Context) {
	p.pos = p.pos.Add(p.dir.Scale(p.speed * dt))
	p.lifetime.Tick(dt)
	if p.variant == PulseAura {
		p.pulse.Tick(dt)
		p.cooldowns.Tick(dt)
	}
}

// Collide applies the variant's dedup discipline against enemies within
// hitRadius. The projectile keeps flying either way — piercing.
func (p *Projectile) Collide(ctx *Context) {
	switch p.variant {
	case PierceOnce:
		for _, en := range ctx.Enemies {
			if p.hits.Has(en.ID) {
				continue
			}
			if !geom.CircleContains(p.pos, p.hitRadius, en.Pos) {
				continue
			}
			p.hit(ctx, en.ID)
			p.hits.Add(en.ID)
		}
	case PulseAura:
		if !p.pulse.JustFinished() {
			return
		}
		for _, en := range ctx.Enemies {
			if p.cooldowns.Blocked(en.ID) {
				continue
			}
			if !geom.CircleContains(p.pos, p.hitRadius, en.Pos) {
				continue
			}
			p.hit(ctx, en.ID)
			p.cooldowns.Block(en.ID, p.cooldown)
		}
	}
}

func (p *Projectile) hit(ctx *Context, targetID uint32) {
	ctx.Events.PushDamage(event.Damage{
		TargetID: targetID,
		Amount:   p.damage,
		Element:  p.element,
		SourceID: p.id,
	})
	for _, spec := range p.debuffs {
		ctx.Events.PushDebuff(event.Debuff{
			TargetID:  targetID,
			Kind:      spec.Kind,
			Magnitude: spec.Magnitude,
			Duration:  spec.Duration,
		})
	}
}

// Done reports lifetime expiry. Hits never terminate a piercing projectile.
func (p *Projectile) Done() bool {
	return p.lifetime.IsFinished()
}

// Position returns the current projectile position for rendering.
func (p *Projectile) Position() geom.Vec2 { return p.pos }

// Direction returns the normalized flight direction.
func (p *Projectile) Direction() geom.Vec2 { return p.dir }
