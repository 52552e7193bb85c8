package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/window"
)

func ExampleGenerate() {
	w, _ := window.Generate("lanczos", 5, window.WithCutoff(0.25))
	fmt.Printf("%.3f %.3f %.3f %.3f %.3f\n", w[0], w[1], w[2], w[3], w[4])
	// Output:
	// 0.000 0.241 0.500 0.241 0.000
}

func ExampleFIRWin() {
	taps, _ := window.FIRWin(5, 5, "boxcar", 10)

	sum := 0.0
	for _, v := range taps {
		sum += v
	}
	fmt.Printf("taps: %d, DC gain: %.3f\n", len(taps), sum)
	// Output:
	// taps: 5, DC gain: 1.000
}
