package vitals_test

import (
	"math"
	"testing"

	"github.com/KirkDiggler/delve-vitals/internal/domain/vitals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_Parts(t *testing.T) {
	tests := []struct {
		name      string
		value     vitals.Fixed
		wantWhole int
		wantFrac  uint16
	}{
		{name: "zero", value: 0, wantWhole: 0, wantFrac: 0},
		{name: "one and a half", value: vitals.One + vitals.One/2, wantWhole: 1, wantFrac: 0x8000},
		{name: "slightly negative floors to minus one", value: -vitals.One / 4, wantWhole: -1, wantFrac: 0xC000},
		{name: "minus three", value: -3 * vitals.One, wantWhole: -3, wantFrac: 0},
		{name: "max", value: vitals.Fixed(math.MaxInt32), wantWhole: 32767, wantFrac: 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			whole, frac := tt.value.Parts()
			assert.Equal(t, tt.wantWhole, whole)
			assert.Equal(t, tt.wantFrac, frac)
			assert.Equal(t, tt.value, vitals.FromParts(whole, frac))
		})
	}
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, vitals.Fixed(math.MaxInt32), vitals.SaturatingAdd(vitals.Fixed(math.MaxInt32-5), 100))
	assert.Equal(t, vitals.Fixed(math.MinInt32), vitals.SaturatingAdd(vitals.Fixed(math.MinInt32+5), -100))
	assert.Equal(t, vitals.Fixed(7), vitals.SaturatingAdd(3, 4))
}

func TestVitals_AdjustHP_AccumulatesFraction(t *testing.T) {
	v := vitals.Vitals{HP: vitals.Pool{Current: 10, Max: 100}}
	gain := vitals.FromInt(2) + vitals.Fixed(int64(vitals.One)*7/10)

	first := v.AdjustHP(gain)
	assert.Equal(t, 2, first.Delta)
	assert.Equal(t, 12, v.HP.Current)
	assert.InDelta(t, 0.7, float64(v.HP.Frac)/float64(vitals.One), 0.001)

	v.AdjustHP(gain)
	v.AdjustHP(gain)
	assert.Equal(t, 18, v.HP.Current, "three turns of 2.7 should carry an extra point")
}

func TestVitals_AdjustHP_ClampsToMax(t *testing.T) {
	tests := []struct {
		name      string
		pool      vitals.Pool
		gain      vitals.Fixed
		wantHP    int
		wantFrac  uint16
		wantDelta int
	}{
		{
			name:      "overshoot clamps with zero fraction",
			pool:      vitals.Pool{Current: 99, Max: 100, Frac: 0x8000},
			gain:      vitals.FromInt(5),
			wantHP:    100,
			wantDelta: 1,
		},
		{
			name:      "fraction only is not a visible change",
			pool:      vitals.Pool{Current: 50, Max: 100},
			gain:      vitals.One / 2,
			wantHP:    50,
			wantFrac:  0x8000,
			wantDelta: 0,
		},
		{
			name:      "negative gain may go below zero",
			pool:      vitals.Pool{Current: 2, Max: 100},
			gain:      vitals.FromInt(-5),
			wantHP:    -3,
			wantDelta: -5,
		},
		{
			name:      "positive overflow saturates then clamps",
			pool:      vitals.Pool{Current: 30000, Max: 32767},
			gain:      vitals.Fixed(math.MaxInt32),
			wantHP:    32767,
			wantDelta: 2767,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := vitals.Vitals{HP: tt.pool}
			change := v.AdjustHP(tt.gain)
			assert.Equal(t, tt.wantHP, v.HP.Current)
			assert.Equal(t, tt.wantFrac, v.HP.Frac)
			assert.Equal(t, tt.wantDelta, change.Delta)
			assert.LessOrEqual(t, v.HP.Current, v.HP.Max)
		})
	}
}

func TestVitals_AdjustHP_NeverExceedsMax(t *testing.T) {
	v := vitals.Vitals{HP: vitals.Pool{Current: 1, Max: 40}}
	gains := []vitals.Fixed{1442, vitals.One * 3, 99999, vitals.One / 3, vitals.Fixed(math.MaxInt32)}

	for i := 0; i < 50; i++ {
		v.AdjustHP(gains[i%len(gains)])
		require.LessOrEqual(t, v.HP.Current, v.HP.Max)
		if v.HP.Current == v.HP.Max {
			require.Zero(t, v.HP.Frac)
		}
	}
}

func TestVitals_FullLargePoolStaysFull(t *testing.T) {
	v := vitals.New(40000, 40000)

	hp := v.AdjustHP(vitals.One)
	mana := v.AdjustMana(vitals.One)

	assert.Equal(t, 40000, v.HP.Current)
	assert.Zero(t, v.HP.Frac)
	assert.Zero(t, hp.Delta)
	assert.Equal(t, 40000, v.Mana.Current)
	assert.Zero(t, mana.Delta)
}

func TestVitals_LargePoolBelowMaxKeepsWholePart(t *testing.T) {
	v := vitals.Vitals{HP: vitals.Pool{Current: 35000, Max: 40000}}

	change := v.AdjustHP(vitals.One / 2)

	assert.Equal(t, 35000, v.HP.Current)
	assert.Equal(t, uint16(0x8000), v.HP.Frac)
	assert.Zero(t, change.Delta)
	assert.Equal(t, vitals.One/2, change.Precise)
}

func TestVitals_AdjustMana(t *testing.T) {
	tests := []struct {
		name        string
		pool        vitals.Pool
		gain        vitals.Fixed
		wantMana    int
		wantFrac    uint16
		wantPrecise vitals.Fixed
	}{
		{
			name:        "zero gain is a no-op",
			pool:        vitals.Pool{Current: 5, Max: 10, Frac: 7},
			gain:        0,
			wantMana:    5,
			wantFrac:    7,
			wantPrecise: 0,
		},
		{
			name:        "drain floors at zero",
			pool:        vitals.Pool{Current: 1, Max: 10, Frac: 0x4000},
			gain:        vitals.FromInt(-3),
			wantMana:    0,
			wantPrecise: -(vitals.One + 0x4000),
		},
		{
			name:        "gain caps at max",
			pool:        vitals.Pool{Current: 9, Max: 10},
			gain:        vitals.FromInt(4),
			wantMana:    10,
			wantPrecise: vitals.One,
		},
		{
			name:        "ordinary gain reports exact delta",
			pool:        vitals.Pool{Current: 3, Max: 10},
			gain:        524,
			wantMana:    3,
			wantFrac:    524,
			wantPrecise: 524,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := vitals.Vitals{Mana: tt.pool}
			change := v.AdjustMana(tt.gain)
			assert.Equal(t, tt.wantMana, v.Mana.Current)
			assert.Equal(t, tt.wantFrac, v.Mana.Frac)
			assert.Equal(t, tt.wantPrecise, change.Precise)
			assert.GreaterOrEqual(t, v.Mana.Current, 0)
		})
	}
}

func TestVitals_DeadIsFrozen(t *testing.T) {
	v := vitals.New(20, 10)
	v.Damage(25)
	v.MarkDead("a kobold")
	before := v

	v.AdjustHP(vitals.FromInt(100))
	v.AdjustMana(vitals.FromInt(-5))
	v.Damage(3)
	v.MarkDead("something else")

	assert.Equal(t, before, v)
	assert.Equal(t, "a kobold", v.DiedFrom)
}

func TestVitals_HPDeficit(t *testing.T) {
	v := vitals.Vitals{HP: vitals.Pool{Current: 7, Max: 10, Frac: 0x8000}}
	assert.Equal(t, vitals.Fixed(2*vitals.One+vitals.One/2), v.HPDeficit())
}
