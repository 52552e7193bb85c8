package window

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// FIRWin designs a low-pass FIR filter with the windowed-sinc method:
// the ideal sinc response at the given cutoff, tapered by the named window
// from the catalog, scaled to unit gain at DC.
//
// taps must be a positive odd integer. cutoff is expressed in the same units
// as nyquist (typically cycles per coordinate unit); it must lie in
// (0, nyquist]. Shape parameters for parametric windows pass through opts.
func FIRWin(taps int, cutoff float64, name string, nyquist float64, opts ...Option) ([]float64, error) {
	if err := validateLength(taps); err != nil {
		return nil, err
	}
	if err := validateNyquist(nyquist); err != nil {
		return nil, err
	}
	if cutoff <= 0 || cutoff > nyquist {
		return nil, fmt.Errorf("%w: %v with nyquist %v", ErrInvalidCutoff, cutoff, nyquist)
	}

	shape, err := Generate(name, taps, opts...)
	if err != nil {
		return nil, err
	}

	// Normalized cutoff in cycles per sample; nyquist maps to 0.5.
	fc := cutoff / (2 * nyquist)

	center := (taps - 1) / 2
	h := make([]float64, taps)
	for i := range h {
		k := float64(i - center)
		h[i] = 2 * fc * sinc(2*fc*k) * shape[i]
	}

	sum := vecmath.Sum(h)
	if sum == 0 {
		return nil, errZeroGain
	}
	vecmath.ScaleBlockInPlace(h, 1/sum)

	return h, nil
}
