package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Selector draws a value from a range
type Selector interface {
	Draw(r Range) int
}

// SelectorFunc adapts a plain function to the Selector interface
type SelectorFunc func(r Range) int

// Draw calls f(r)
func (f SelectorFunc) Draw(r Range) int {
	return f(r)
}

// RandomSelector draws uniformly distributed values from a generator that is seeded
// once when the selector is created. It is not safe for concurrent use.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a selector seeded from the operating system's entropy source
func NewRandomSelector() *RandomSelector {
	return NewSeededSelector(newSeed())
}

// NewSeededSelector creates a selector with a fixed seed
func NewSeededSelector(seed [2]uint64) *RandomSelector {
	return &RandomSelector{
		rng: rand.New(rand.NewPCG(seed[0], seed[1])),
	}
}

// Draw returns a value in [r.Start(), r.End()]. A single-value range returns its start.
func (s *RandomSelector) Draw(r Range) int {
	if r.end <= r.start {
		return r.start
	}
	// end-start never exceeds MaxInt, so span+1 fits in a uint64
	span := uint64(r.end - r.start)
	return r.start + int(s.rng.Uint64N(span+1))
}

func newSeed() [2]uint64 {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return [2]uint64{rand.Uint64(), rand.Uint64()}
	}
	return [2]uint64{
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	}
}
