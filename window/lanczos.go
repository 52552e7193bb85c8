package window

import (
	"fmt"
	"math"
)

// Cutoff used when the Lanczos low-pass window is requested without one.
const defaultLanczosCutoff = 0.02

// lanczosLowPass computes the coefficients of a Lanczos low-pass window of
// odd length n with cutoff fc in cycles per sample:
//
//	w[k] = 2 fc sinc(2 fc k) sinc(k / (n/2))
//
// for k = -(n-1)/2 .. (n-1)/2, with the k = 0 singularity resolved to 2 fc.
func lanczosLowPass(n int, fc float64) ([]float64, error) {
	if fc <= 0 || fc > 0.5 {
		return nil, fmt.Errorf("%w: lanczos cutoff %v", ErrInvalidCutoff, fc)
	}

	w := make([]float64, n)
	center := (n - 1) / 2
	half := float64(n) / 2

	for i := range w {
		if i == center {
			w[i] = 2 * fc
			continue
		}

		k := float64(i - center)
		w[i] = 2 * fc * sinc(2*fc*k) * sinc(k/half)
	}

	return w, nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
