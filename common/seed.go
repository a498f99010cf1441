package common

// Random is a source of uniform draws in [0, 1).
type Random interface {
	Random() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Produces deterministic sequences so effect layouts can be reproduced.
type SeededRNG struct {
	state uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{state: seed}
}

// Random generates the next random number using Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Between draws from src in the range [min, max).
func Between(src Random, min, max float64) float64 {
	return src.Random()*(max-min) + min
}

// Centered draws from src in the range [-span/2, span/2).
func Centered(src Random, span float64) float64 {
	return (src.Random() - 0.5) * span
}
