package filter

import (
	"github.com/cwbudde/algo-vecmath"
)

// Kernel is a separable N-dimensional FIR kernel. Axes corresponding to
// filtering dimensions carry that dimension's taps; every other axis has
// length one so the kernel broadcasts over it. Kernels are immutable
// snapshots built by [Window.Configure].
type Kernel struct {
	coeffs []float64
	shape  []int
}

// Coeffs returns a copy of the coefficients in row-major order.
func (k *Kernel) Coeffs() []float64 {
	return append([]float64(nil), k.coeffs...)
}

// Shape returns a copy of the per-axis tap counts.
func (k *Kernel) Shape() []int {
	return append([]int(nil), k.shape...)
}

// Rank returns the number of kernel axes.
func (k *Kernel) Rank() int { return len(k.shape) }

// Normalized returns the coefficients scaled to unit sum, preserving DC gain
// under convolution.
func (k *Kernel) Normalized() ([]float64, error) {
	sum := vecmath.Sum(k.coeffs)
	if sum == 0 {
		return nil, ErrZeroKernel
	}

	out := make([]float64, len(k.coeffs))
	vecmath.ScaleBlock(out, k.coeffs, 1/sum)
	return out, nil
}

// outer returns the outer product of two flat coefficient vectors, the
// running step of separable kernel synthesis.
func outer(a, b []float64) []float64 {
	out := make([]float64, len(a)*len(b))
	for i, av := range a {
		vecmath.ScaleBlock(out[i*len(b):(i+1)*len(b)], b, av)
	}
	return out
}
