// Package synth simulates plucked strings with the Karplus-Strong algorithm.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vskvj3/deques/internal/datastructures"
)

const (
	DefaultSampleRate = 44100
	DefaultDecay      = 0.996
)

var ErrInvalidFrequency = errors.New("invalid frequency")

// GuitarString is a vibrating string modeled as a fixed-length ring of
// displacement samples.
type GuitarString struct {
	buffer datastructures.Deque[float64]
	decay  float64
	ticks  int
}

// NewGuitarString creates a silent string tuned to frequency. The buffer holds
// sampleRate/frequency samples, truncated to an integer.
func NewGuitarString(frequency float64, sampleRate int, decay float64) (*GuitarString, error) {
	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("%w: %v Hz", ErrInvalidFrequency, frequency)
	}
	n := int(float64(sampleRate) / frequency)
	if n < 2 {
		return nil, fmt.Errorf("%w: %v Hz needs %d samples at %d Hz", ErrInvalidFrequency, frequency, n, sampleRate)
	}

	buffer := datastructures.NewArrayDeque[float64]()
	for i := 0; i < n; i++ {
		buffer.AddLast(0)
	}
	return &GuitarString{buffer: buffer, decay: decay}, nil
}

// Len returns the number of samples in the string's buffer.
func (g *GuitarString) Len() int {
	return g.buffer.Len()
}

// Pluck replaces every sample with white noise in [-0.5, 0.5).
func (g *GuitarString) Pluck(rng *rand.Rand) {
	for i := g.buffer.Len(); i > 0; i-- {
		g.buffer.RemoveFirst()
		g.buffer.AddLast(rng.Float64() - 0.5)
	}
}

// Tic advances the simulation by one sample: the front sample is dropped and
// the decayed average of it and the new front is appended.
func (g *GuitarString) Tic() {
	first, _ := g.buffer.RemoveFirst()
	next, _ := g.buffer.GetFirst()
	g.buffer.AddLast(g.decay * 0.5 * (first + next))
	g.ticks++
}

// Sample returns the current sample at the front of the buffer.
func (g *GuitarString) Sample() float64 {
	sample, _ := g.buffer.GetFirst()
	return sample
}

// Time returns the number of times Tic has been called.
func (g *GuitarString) Time() int {
	return g.ticks
}
