package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-ndfilter/ndarray"
	"github.com/cwbudde/algo-ndfilter/window"
)

// Window binds a separable FIR kernel to a labeled array. A Window is built
// by [New] or rebuilt in full by [Configure]; between configuration calls all
// derived state (kernel, halo, per-dimension Nyquist frequencies) is an
// immutable snapshot shared read-only by concurrent applications.
type Window struct {
	arr     *ndarray.Array
	dims    []string
	order   map[string]int
	cutoff  map[string]float64
	win     map[string]window.Spec
	chunks  map[string]int
	kernel  *Kernel
	halo    []int
	nyquist map[string]float64
	spacing map[string]float64
}

// ConfigOption configures a window.
type ConfigOption func(*settings)

type settings struct {
	order   any
	dims    []string
	hasDims bool
	cutoff  any
	win     any
	chunks  any
}

// WithOrder sets the kernel order (tap count) of the filtering dimensions.
// Accepts a single int, a positional []int, or a map[string]int keyed by
// dimension name. A zero or missing order defaults to the full dimension
// size; even orders are rounded up to the next odd value so the kernel keeps
// a center tap.
func WithOrder(order any) ConfigOption {
	return func(s *settings) {
		s.order = order
	}
}

// WithDims selects the filtering dimensions. Without this option every array
// dimension is filtered. WithDims() with no arguments selects none, which
// yields the identity kernel.
func WithDims(dims ...string) ConfigOption {
	return func(s *settings) {
		s.dims = dims
		s.hasDims = true
	}
}

// WithCutoff sets per-dimension cutoff frequencies, in cycles per coordinate
// unit. Accepts a single float64, a positional []float64, or a
// map[string]float64. A zero cutoff means no low-pass design: the window
// shape itself is used as the kernel along that dimension.
func WithCutoff(cutoff any) ConfigOption {
	return func(s *settings) {
		s.cutoff = cutoff
	}
}

// WithWindow sets per-dimension window shapes. Accepts a window name or a
// [window.Spec], positionally as a slice, or as a map keyed by dimension
// name. The default is "boxcar".
func WithWindow(win any) ConfigOption {
	return func(s *settings) {
		s.win = win
	}
}

// WithChunks sets per-dimension chunk sizes for the execution engine.
// Accepts a single int, a positional []int aligned to the array dimensions,
// or a map[string]int. Dimensions without an entry stay a single chunk.
func WithChunks(chunks any) ConfigOption {
	return func(s *settings) {
		s.chunks = chunks
	}
}

// New creates a configured window over arr.
func New(arr *ndarray.Array, opts ...ConfigOption) (*Window, error) {
	if arr == nil {
		return nil, fmt.Errorf("filter: nil array")
	}

	w := &Window{arr: arr}
	if err := w.Configure(opts...); err != nil {
		return nil, err
	}
	return w, nil
}

// Configure rebuilds the window from scratch: filtering dimensions, orders,
// cutoffs, window shapes, chunking, and the derived kernel and halo. On error
// the window keeps its previous configuration.
func (w *Window) Configure(opts ...ConfigOption) error {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	dims := s.dims
	if !s.hasDims {
		dims = w.arr.Dims()
	}

	seen := make(map[string]bool, len(dims))
	for _, d := range dims {
		if _, ok := w.arr.AxisNum(d); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDimension, d)
		}
		if seen[d] {
			return fmt.Errorf("filter: duplicate filtering dimension %q", d)
		}
		seen[d] = true
	}

	order, err := normalizeArg(s.order, dims, 0)
	if err != nil {
		return err
	}
	shape := w.arr.Shape()
	for _, d := range dims {
		n := order[d]
		if n < 0 {
			return fmt.Errorf("%w: %d for dimension %q", ErrInvalidOrder, n, d)
		}
		if n == 0 {
			ax, _ := w.arr.AxisNum(d)
			n = shape[ax]
		}
		if n%2 == 0 {
			n++
		}
		order[d] = n
	}

	cutoff, err := normalizeArg(s.cutoff, dims, 0.0)
	if err != nil {
		return err
	}

	win, err := normalizeArg(coerceWindowArg(s.win), dims, window.Spec{Name: "boxcar"})
	if err != nil {
		return err
	}

	chunks, err := normalizeArg(s.chunks, w.arr.Dims(), 0)
	if err != nil {
		return err
	}

	kernel, halo, nyquist, spacing, err := buildKernel(w.arr, dims, order, cutoff, win)
	if err != nil {
		return err
	}

	w.dims = append([]string(nil), dims...)
	w.order = order
	w.cutoff = cutoff
	w.win = win
	w.chunks = chunks
	w.kernel = kernel
	w.halo = halo
	w.nyquist = nyquist
	w.spacing = spacing

	return nil
}

// buildKernel synthesizes the separable N-dimensional kernel by walking the
// array's dimensions in their native order, so kernel axis order matches the
// array exactly. Filtering dimensions contribute their 1-D taps by outer
// product; every other dimension becomes a unit-length broadcast axis.
func buildKernel(
	arr *ndarray.Array,
	dims []string,
	order map[string]int,
	cutoff map[string]float64,
	win map[string]window.Spec,
) (*Kernel, []int, map[string]float64, map[string]float64, error) {
	filtering := make(map[string]bool, len(dims))
	for _, d := range dims {
		filtering[d] = true
	}

	coeffs := []float64{1}
	shape := make([]int, 0, arr.Rank())
	halo := make([]int, arr.Rank())
	nyquist := make(map[string]float64, len(dims))
	spacing := make(map[string]float64, len(dims))

	for axis, d := range arr.Dims() {
		if !filtering[d] {
			shape = append(shape, 1)
			continue
		}

		dx, err := arr.Spacing(d)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		fnyq := 1 / (2 * math.Abs(dx))

		n := order[d]
		var taps []float64
		if cutoff[d] == 0 {
			taps, err = window.GenerateSpec(win[d], n)
		} else {
			taps, err = window.FIRWin(n, cutoff[d], win[d].Name, fnyq, window.WithParam(win[d].Param))
		}
		if err != nil {
			return nil, nil, nil, nil, err
		}

		coeffs = outer(coeffs, taps)
		shape = append(shape, n)
		halo[axis] = n / 2
		nyquist[d] = fnyq
		spacing[d] = dx
	}

	return &Kernel{coeffs: coeffs, shape: shape}, halo, nyquist, spacing, nil
}

// Array returns the array the window is bound to.
func (w *Window) Array() *ndarray.Array { return w.arr }

// Dims returns a copy of the filtering dimension names.
func (w *Window) Dims() []string {
	return append([]string(nil), w.dims...)
}

// Order returns a copy of the per-dimension kernel orders.
func (w *Window) Order() map[string]int {
	return copyMap(w.order)
}

// Cutoff returns a copy of the per-dimension cutoff frequencies;
// zero means no cutoff.
func (w *Window) Cutoff() map[string]float64 {
	return copyMap(w.cutoff)
}

// Kernel returns the current kernel, or nil before configuration.
func (w *Window) Kernel() *Kernel { return w.kernel }

// Halo returns a copy of the per-axis halo depths used for chunked
// convolution.
func (w *Window) Halo() []int {
	return append([]int(nil), w.halo...)
}

// Nyquist returns a copy of the per-dimension Nyquist frequencies,
// 1/(2*spacing).
func (w *Window) Nyquist() map[string]float64 {
	return copyMap(w.nyquist)
}

// Spacing returns a copy of the per-dimension sample spacings.
func (w *Window) Spacing() map[string]float64 {
	return copyMap(w.spacing)
}

// String describes the configured filtering dimensions.
func (w *Window) String() string {
	if w.kernel == nil {
		return "Window [unconfigured]"
	}

	parts := make([]string, len(w.dims))
	for i, d := range w.dims {
		desc := fmt.Sprintf("%s: order=%d window=%s", d, w.order[d], w.win[d])
		if w.cutoff[d] != 0 {
			desc += fmt.Sprintf(" cutoff=%g", w.cutoff[d])
		}
		parts[i] = desc
	}
	return fmt.Sprintf("Window [%s]", strings.Join(parts, ", "))
}

// Taper would apply the window as a multiplicative taper instead of a
// convolution kernel.
func (w *Window) Taper() (*ndarray.Array, error) {
	return nil, ErrNotImplemented
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
