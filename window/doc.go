// Package window provides the name-keyed window-function catalog and the
// windowed-sinc FIR design used by the filter package.
//
// The catalog resolves a window name against a small local registry first and
// delegates every other name to the standard catalog in
// gonum.org/v1/gonum/dsp/window. The only locally implemented family is the
// Lanczos low-pass window
//
//	w[k] = 2 fc sinc(2 fc k) sinc(k / (n/2)),  w[0] = 2 fc
//
// with k symmetric about zero and sinc(x) = sin(pi x)/(pi x).
//
// # Usage
//
//	w, err := window.Generate("hann", 21)
//	w, err := window.Generate("lanczos", 21, window.WithCutoff(0.1))
//
//	taps, err := window.FIRWin(31, 2.5, "hamming", 10) // low-pass, fc relative to Nyquist
//
//	resp, err := window.Response(taps, 0.05, 2048)     // spectral magnitude in dB
//
// Window lengths are odd so kernels stay symmetric about a center tap.
package window
