package window

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// FrequencyResponse holds the magnitude response of a 1-D kernel on a
// centered frequency axis.
type FrequencyResponse struct {
	// Freq is the frequency axis in cycles per coordinate unit,
	// from -nyquist to +nyquist.
	Freq []float64
	// MagnitudeDB is the magnitude normalized to the response peak, in dB.
	MagnitudeDB []float64
}

// Response computes the zero-padded spectral magnitude response of kernel
// coefficients sampled at the given spacing. nfft is rounded up to the next
// power of two and to at least the coefficient count; nfft <= 0 selects 2048.
func Response(coeffs []float64, spacing float64, nfft int) (FrequencyResponse, error) {
	if len(coeffs) == 0 {
		return FrequencyResponse{}, errEmptyCoeffs
	}
	if spacing <= 0 {
		return FrequencyResponse{}, fmt.Errorf("window: spacing must be positive: %v", spacing)
	}

	if nfft <= 0 {
		nfft = 2048
	}
	if nfft < len(coeffs) {
		nfft = len(coeffs)
	}
	nfft = nextPowerOf2(nfft)

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return FrequencyResponse{}, fmt.Errorf("window: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, nfft)
	for i, v := range coeffs {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, nfft)
	if err := plan.Forward(spectrum, padded); err != nil {
		return FrequencyResponse{}, fmt.Errorf("window: forward FFT failed: %w", err)
	}

	re := make([]float64, nfft)
	im := make([]float64, nfft)
	for i, c := range spectrum {
		re[i] = real(c)
		im[i] = imag(c)
	}
	mag := make([]float64, nfft)
	vecmath.Magnitude(mag, re, im)

	peak := 0.0
	for _, m := range mag {
		if m > peak {
			peak = m
		}
	}
	if peak == 0 {
		return FrequencyResponse{}, errZeroGain
	}

	// Shift DC to the center and convert to dB relative to the peak.
	resp := FrequencyResponse{
		Freq:        make([]float64, nfft),
		MagnitudeDB: make([]float64, nfft),
	}
	for i := range resp.Freq {
		src := (i + nfft/2) % nfft
		resp.Freq[i] = (float64(i)/float64(nfft) - 0.5) / spacing
		resp.MagnitudeDB[i] = 20 * math.Log10(mag[src]/peak)
	}

	return resp, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
