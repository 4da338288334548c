package synth

import (
	"math"
	"strings"
)

// Keyboard lays out 37 keys, chromatically from 110 Hz to 880 Hz.
const Keyboard = "q2we4r5ty7u8i9op-[=zxdcfvgbnjmk,.;/' "

// concertKey is the index of the key tuned to 440 Hz.
const concertKey = 24

// NoteFrequency returns the frequency of key i on Keyboard.
func NoteFrequency(i int) float64 {
	return 440 * math.Pow(2, float64(i-concertKey)/12)
}

// KeyIndex returns the position of r on Keyboard, or -1.
func KeyIndex(r rune) int {
	return strings.IndexRune(Keyboard, r)
}
