package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_Deterministic(t *testing.T) {
	a := Seeded(42)
	b := Seeded(42)
	for range 100 {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeeded_DifferentSeedsDiverge(t *testing.T) {
	a := Seeded(1)
	b := Seeded(2)

	same := 0
	for range 20 {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestSeeded_Range(t *testing.T) {
	src := Seeded(7)
	for range 1000 {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestFixed(t *testing.T) {
	f := &Fixed{Rolls: []float64{0.1, 0.5}}
	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 0.5, f.Float64())
	assert.Equal(t, 0.1, f.Float64(), "cycles")

	assert.Equal(t, 0.99, (&Fixed{}).Float64())
	assert.Equal(t, 0.3, Always(0.3).Float64())
}

func TestMix_StreamsDiffer(t *testing.T) {
	assert.NotEqual(t, mix(1, streamState), mix(1, streamIncrement))
	assert.NotEqual(t, mix(1, streamState), mix(2, streamState))
	assert.Equal(t, mix(9, streamState), mix(9, streamState))
}
