package debuff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_RefreshNotStack(t *testing.T) {
	r := NewRegistry()

	r.Apply(100, Slow, 0.6, 2.0)
	r.Tick(1.0)

	// Reapplying before expiry replaces magnitude and restarts the clock.
	r.Apply(100, Slow, 0.5, 3.0)

	active := r.Active(100)
	require.Len(t, active, 1, "same kind must never stack")
	assert.Equal(t, 0.5, active[0].Magnitude)
	assert.InDelta(t, 3.0, active[0].Remaining(), 1e-9,
		"remaining duration must be the second application's full duration")
}

func TestApply_DifferentKindsCoexist(t *testing.T) {
	r := NewRegistry()

	r.Apply(100, Slow, 0.6, 2.0)
	r.Apply(100, Burn, 4, 3.0)
	r.Apply(100, Weaken, 0.8, 1.0)

	assert.Equal(t, 3, r.Count(100))
	assert.True(t, r.Has(100, Slow))
	assert.True(t, r.Has(100, Burn))
	assert.True(t, r.Has(100, Weaken))
}

func TestTick_RemovesExpired(t *testing.T) {
	r := NewRegistry()

	r.Apply(100, Slow, 0.6, 1.0)
	r.Apply(100, Burn, 4, 3.0)

	r.Tick(1.5)
	assert.False(t, r.Has(100, Slow), "slow expired at 1.0")
	assert.True(t, r.Has(100, Burn), "burn lives until 3.0")

	r.Tick(1.5)
	assert.False(t, r.Has(100, Burn))
	assert.Equal(t, 0, r.Count(100))
}

func TestMagnitude(t *testing.T) {
	r := NewRegistry()
	r.Apply(7, Corrode, 5, 2.0)

	mag, ok := r.Magnitude(7, Corrode)
	require.True(t, ok)
	assert.Equal(t, 5.0, mag)

	_, ok = r.Magnitude(7, Blind)
	assert.False(t, ok)
}

func TestMoveSpeedMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *Registry)
		want  float64
	}{
		{
			name:  "unaffected",
			setup: func(r *Registry) {},
			want:  1.0,
		},
		{
			name:  "slowed",
			setup: func(r *Registry) { r.Apply(1, Slow, 0.6, 2.0) },
			want:  0.6,
		},
		{
			name: "stun overrides slow",
			setup: func(r *Registry) {
				r.Apply(1, Slow, 0.6, 2.0)
				r.Apply(1, Stun, 1, 0.5)
			},
			want: 0,
		},
		{
			name:  "non-movement debuff irrelevant",
			setup: func(r *Registry) { r.Apply(1, Burn, 4, 2.0) },
			want:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			tt.setup(r)
			assert.Equal(t, tt.want, r.MoveSpeedMultiplier(1))
		})
	}
}

func TestPurge(t *testing.T) {
	r := NewRegistry()
	r.Apply(9, Slow, 0.5, 10)
	r.Apply(9, Burn, 2, 10)

	r.Purge(9)
	assert.Equal(t, 0, r.Count(9))
}

func TestParseKind(t *testing.T) {
	k, ok := ParseKind("corrode")
	assert.True(t, ok)
	assert.Equal(t, Corrode, k)

	_, ok = ParseKind("nonsense")
	assert.False(t, ok)
}
