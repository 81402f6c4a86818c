package mechanics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiminishingGrowth(t *testing.T) {
	assert.Equal(t, 100.0, DiminishingGrowth(0, 100))
	assert.Equal(t, 0.0, DiminishingGrowth(10000, 100))
	assert.Equal(t, 50.0, DiminishingGrowth(10000-50, 100_000), "clamped to remaining headroom")
}

func TestDiminishingGrowth_StrictlyDecreasing(t *testing.T) {
	levels := []float64{0, 2500, 5000, 7500}
	prev := DiminishingGrowth(levels[0], 100)
	for _, lvl := range levels[1:] {
		got := DiminishingGrowth(lvl, 100)
		assert.Less(t, got, prev, "growth at %v should be below growth at lower skill", lvl)
		prev = got
	}
}

func TestDecay(t *testing.T) {
	assert.Equal(t, 0.0, Decay(1000, 0))
	assert.Equal(t, 0.0, Decay(0, 1))
	assert.InDelta(t, 7.5, Decay(1000, 1), 1e-9)
	assert.InDelta(t, 5*Decay(1000, 1), Decay(5000, 1), 1e-9)
	assert.InDelta(t, 0.5*Decay(1000, 1), Decay(1000, 0.5), 1e-9)
}

func TestBurnoutRisk(t *testing.T) {
	tests := []struct {
		stress, energy float64
		want           bool
	}{
		{95, 9, false},
		{96, 10, false},
		{96, 9, true},
		{100, 0, true},
		{50, 0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BurnoutRisk(tt.stress, tt.energy), "BurnoutRisk(%v, %v)", tt.stress, tt.energy)
	}
}

func TestProjectedSkillChange(t *testing.T) {
	assert.Equal(t, 100.0, ProjectedSkillChange(0, 1, 100))
	assert.InDelta(t, DiminishingGrowth(4000, 20)-Decay(4000, 0.6), ProjectedSkillChange(4000, 0.6, 20), 1e-9)
	assert.Less(t, ProjectedSkillChange(8000, 1, 10), 0.0, "managers lose coding skill")
}

func TestApplySkillDelta(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   float64
		want    int
	}{
		{"gain from zero", 0, 40, 40},
		{"gain is diminished", 10000 - 5000, 150, 5100},
		{"gain floors fraction", 100, 10, 109},
		{"loss applies directly", 500, -7.5, 492},
		{"loss floors at zero", 5, -50, 0},
		{"capped", 10000, 500, 10000},
		{"no change", 1234, 0, 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplySkillDelta(tt.current, tt.delta))
		})
	}
}

func TestApplyXPDelta(t *testing.T) {
	assert.Equal(t, 150, ApplyXPDelta(100, 50.9))
	assert.Equal(t, 0, ApplyXPDelta(10, -50))
	assert.Equal(t, 250000, ApplyXPDelta(200000, 50000), "uncapped")
}

func TestApplyReputationDelta(t *testing.T) {
	assert.Equal(t, 10000, ApplyReputationDelta(9990, 50))
	assert.Equal(t, 0, ApplyReputationDelta(10, -50))
	assert.Equal(t, 125, ApplyReputationDelta(100, 25))
}
