package window

import (
	"math"
	"testing"
)

func TestResponseShapeAndPeak(t *testing.T) {
	taps, err := FIRWin(31, 2, "hamming", 10)
	if err != nil {
		t.Fatalf("FIRWin: %v", err)
	}

	resp, err := Response(taps, 0.05, 1024)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}

	if len(resp.Freq) != 1024 || len(resp.MagnitudeDB) != 1024 {
		t.Fatalf("lengths = %d/%d, want 1024", len(resp.Freq), len(resp.MagnitudeDB))
	}

	// DC sits at the center of the shifted axis and carries the peak for a
	// low-pass kernel.
	center := len(resp.Freq) / 2
	if resp.Freq[center] != 0 {
		t.Fatalf("Freq[center] = %v, want 0", resp.Freq[center])
	}
	if math.Abs(resp.MagnitudeDB[center]) > 1e-9 {
		t.Fatalf("MagnitudeDB[center] = %v, want 0", resp.MagnitudeDB[center])
	}

	// The axis spans plus/minus the Nyquist frequency 1/(2*0.05) = 10.
	if math.Abs(resp.Freq[0]+10) > 1e-9 {
		t.Fatalf("Freq[0] = %v, want -10", resp.Freq[0])
	}

	for i, db := range resp.MagnitudeDB {
		if db > 1e-9 {
			t.Fatalf("MagnitudeDB[%d] = %v above peak", i, db)
		}
	}
}

func TestResponseRoundsUpFFTSize(t *testing.T) {
	taps, _ := Generate("hann", 9)

	resp, err := Response(taps, 1, 100)
	if err != nil {
		t.Fatalf("Response: %v", err)
	}
	if len(resp.Freq) != 128 {
		t.Fatalf("len = %d, want 128", len(resp.Freq))
	}
}

func TestResponseValidation(t *testing.T) {
	if _, err := Response(nil, 1, 0); err == nil {
		t.Fatal("empty coeffs: expected error")
	}
	if _, err := Response([]float64{1}, 0, 0); err == nil {
		t.Fatal("zero spacing: expected error")
	}
	if _, err := Response([]float64{0, 0, 0}, 1, 64); err == nil {
		t.Fatal("all-zero kernel: expected error")
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 1}, {2, 2}, {3, 4}, {9, 16}, {1024, 1024}, {1025, 2048},
	}
	for _, tc := range cases {
		if got := nextPowerOf2(tc.in); got != tc.want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
