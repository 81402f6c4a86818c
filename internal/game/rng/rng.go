// Package rng provides the injectable random source used by event rolls
// and interview resolution.
package rng

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
)

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// Seeded returns a PCG source for seed. Equal seeds replay the same rolls.
func Seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(mix(seed, streamState), mix(seed, streamIncrement)))
}

// PCG takes two words; each is an FNV-1a hash of the seed and a stream tag.
const (
	streamState     byte = 's'
	streamIncrement byte = 'i'
)

func mix(seed int64, stream byte) uint64 {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	buf[8] = stream
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

// Fixed replays a scripted sequence of rolls, cycling when exhausted.
// Intended for tests that need a specific event or interview outcome.
type Fixed struct {
	Rolls []float64
	next  int
}

// Float64 returns the next scripted roll, or 0.99 when no rolls are scripted.
func (f *Fixed) Float64() float64 {
	if len(f.Rolls) == 0 {
		return 0.99
	}
	v := f.Rolls[f.next%len(f.Rolls)]
	f.next++
	return v
}

// Always returns a source that yields v forever.
func Always(v float64) *Fixed {
	return &Fixed{Rolls: []float64{v}}
}
