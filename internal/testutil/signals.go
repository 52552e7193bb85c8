package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine samples a sine of the given frequency (cycles per
// coordinate unit) on a uniform grid with the given spacing.
func DeterministicSine(freq, spacing, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq * spacing
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued field.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Grid returns n uniformly spaced coordinate labels starting at start.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// WithHoles returns a copy of data with NaN at the given positions,
// simulating missing observations.
func WithHoles(data []float64, positions ...int) []float64 {
	out := append([]float64(nil), data...)
	for _, p := range positions {
		if p >= 0 && p < len(out) {
			out[p] = math.NaN()
		}
	}
	return out
}
