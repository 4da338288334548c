package synth

import (
	"fmt"
	"math/rand"

	"github.com/vskvj3/deques/internal/utils"
)

// Player holds one string per Keyboard key and mixes them into a single
// output signal.
type Player struct {
	strings []*GuitarString
	rng     *rand.Rand
	logger  *utils.Logger
}

// NewPlayer tunes a string for every key.
func NewPlayer(sampleRate int, decay float64, rng *rand.Rand, logger *utils.Logger) (*Player, error) {
	strs := make([]*GuitarString, len(Keyboard))
	for i := range strs {
		s, err := NewGuitarString(NoteFrequency(i), sampleRate, decay)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", Keyboard[i], err)
		}
		strs[i] = s
	}
	return &Player{strings: strs, rng: rng, logger: logger}, nil
}

// Render plucks the keys of melody in order and returns samplesPerNote mixed
// samples for each one. Characters that are not on the Keyboard are skipped.
func (p *Player) Render(melody string, samplesPerNote int) []float64 {
	var out []float64
	for _, key := range melody {
		idx := KeyIndex(key)
		if idx < 0 {
			p.logger.Warn(fmt.Sprintf("Skipping key %q: not on the keyboard", key))
			continue
		}
		p.logger.Debug(fmt.Sprintf("Plucking key %q at %.2f Hz", key, NoteFrequency(idx)))
		p.strings[idx].Pluck(p.rng)

		for i := 0; i < samplesPerNote; i++ {
			out = append(out, p.tic())
		}
	}
	return out
}

// tic sums the current samples of all strings, clipped to [-1, 1], and
// advances every string.
func (p *Player) tic() float64 {
	var sample float64
	for _, s := range p.strings {
		sample += s.Sample()
		s.Tic()
	}
	if sample > 1 {
		return 1
	}
	if sample < -1 {
		return -1
	}
	return sample
}
