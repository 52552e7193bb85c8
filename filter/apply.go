package filter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ndfilter/ndarray"
	"github.com/cwbudde/algo-ndfilter/ndarray/chunk"
)

// ApplyOption configures one application of the window.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	mode     Mode
	weights  []float64
	workers  int
	progress func(done, total int)
}

// WithMode selects the boundary policy. The default is [ModeReflect].
func WithMode(m Mode) ApplyOption {
	return func(cfg *applyConfig) {
		cfg.mode = m
	}
}

// WithWeights supplies a precomputed boundary-weight field instead of
// convolving the presence mask. Its length must equal the array size.
func WithWeights(weights []float64) ApplyOption {
	return func(cfg *applyConfig) {
		cfg.weights = weights
	}
}

// WithWorkers bounds the worker pool used when computing.
func WithWorkers(n int) ApplyOption {
	return func(cfg *applyConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithProgress installs a progress callback for the compute step.
func WithProgress(fn func(done, total int)) ApplyOption {
	return func(cfg *applyConfig) {
		cfg.progress = fn
	}
}

// Deferred is an unevaluated filtering operation: the chunked convolution
// node together with the renormalization state applied after evaluation.
type Deferred struct {
	node    *chunk.Deferred
	src     *Window
	weights []float64
	mask    []bool
	mode    Mode
}

// Node returns the underlying chunk-engine node, allowing further
// map-overlap stages to be fused before evaluation.
func (d *Deferred) Node() *chunk.Deferred { return d.node }

// Compute evaluates the convolution, renormalizes by the boundary weights,
// and re-nulls cells that were missing in the input.
func (d *Deferred) Compute(opts ...chunk.ComputeOption) (*ndarray.Array, error) {
	out, err := d.node.Compute(opts...)
	if err != nil {
		return nil, err
	}

	data := out.Data()
	for i := range data {
		if !d.mask[i] || d.weights[i] == 0 {
			data[i] = math.NaN()
			continue
		}
		data[i] /= d.weights[i]
	}

	if d.mode == ModeValid {
		nullIncompleteSupport(data, d.src.arr.Shape(), d.src.halo)
	}

	return out, nil
}

// Apply convolves the window's kernel with its array and returns the
// realized result. The output carries the input's dimensions, coordinates,
// and name; cells missing in the input are missing in the output.
func (w *Window) Apply(opts ...ApplyOption) (*ndarray.Array, error) {
	cfg := applyConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d, err := w.applyDeferred(cfg)
	if err != nil {
		return nil, err
	}

	var computeOpts []chunk.ComputeOption
	if cfg.workers > 0 {
		computeOpts = append(computeOpts, chunk.WithWorkers(cfg.workers))
	}
	if cfg.progress != nil {
		computeOpts = append(computeOpts, chunk.WithProgress(cfg.progress))
	}

	return d.Compute(computeOpts...)
}

// ApplyDeferred builds the filtering operation without evaluating it, so it
// can participate in a larger computation graph. Configuration and weight
// errors surface here, before any chunk work is scheduled.
func (w *Window) ApplyDeferred(opts ...ApplyOption) (*Deferred, error) {
	cfg := applyConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return w.applyDeferred(cfg)
}

func (w *Window) applyDeferred(cfg applyConfig) (*Deferred, error) {
	if w.kernel == nil {
		return nil, ErrNotConfigured
	}
	if w.kernel.Rank() != w.arr.Rank() {
		return nil, fmt.Errorf("%w: kernel rank %d, array rank %d",
			ErrShapeMismatch, w.kernel.Rank(), w.arr.Rank())
	}

	pad, err := cfg.mode.pad()
	if err != nil {
		return nil, err
	}

	coeffs, err := w.kernel.Normalized()
	if err != nil {
		return nil, err
	}

	mask := w.arr.IsFinite()

	weights := cfg.weights
	if weights == nil {
		weights, err = w.maskWeights(mask, coeffs, pad)
		if err != nil {
			return nil, err
		}
	} else if len(weights) != w.arr.Size() {
		return nil, fmt.Errorf("%w: %d weights for %d cells",
			ErrShapeMismatch, len(weights), w.arr.Size())
	}

	filled := w.arr.FillMissing(0)

	ch, err := chunk.Split(filled, w.chunks)
	if err != nil {
		return nil, err
	}

	node, err := ch.MapOverlap(blockConvolver(coeffs, w.kernel.shape), w.halo, pad)
	if err != nil {
		return nil, err
	}

	return &Deferred{
		node:    node,
		src:     w,
		weights: weights,
		mask:    mask,
		mode:    cfg.mode,
	}, nil
}

// maskWeights convolves the presence mask with the normalized kernel,
// yielding the local fraction of kernel weight backed by actual data.
func (w *Window) maskWeights(mask []bool, coeffs []float64, pad chunk.Pad) ([]float64, error) {
	floats := make([]float64, len(mask))
	for i, ok := range mask {
		if ok {
			floats[i] = 1
		}
	}
	return convolveFull(floats, w.arr, coeffs, w.kernel.shape, pad)
}

// BoundaryWeights computes the renormalization field as a standalone
// diagnostic. Dimensions named in dropDims, along which the mask is known to
// be constant, are collapsed to their first index to save space; they must
// not be filtering dimensions. The field is null wherever the (reduced) mask
// is false, mirroring the convolution's boundary behavior.
func (w *Window) BoundaryWeights(mode Mode, dropDims ...string) (*ndarray.Array, error) {
	if w.kernel == nil {
		return nil, ErrNotConfigured
	}

	pad, err := mode.pad()
	if err != nil {
		return nil, err
	}

	coeffs, err := w.kernel.Normalized()
	if err != nil {
		return nil, err
	}

	drop := make(map[string]bool, len(dropDims))
	for _, d := range dropDims {
		if _, ok := w.arr.AxisNum(d); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, d)
		}
		for _, fd := range w.dims {
			if fd == d {
				return nil, fmt.Errorf("filter: cannot drop filtering dimension %q", d)
			}
		}
		drop[d] = true
	}

	reduced, kshape, halo, err := w.reduceFirstIndex(drop)
	if err != nil {
		return nil, err
	}

	mask := reduced.IsFinite()
	floats := make([]float64, len(mask))
	for i, ok := range mask {
		if ok {
			floats[i] = 1
		}
	}

	weights, err := convolveFull(floats, reduced, coeffs, kshape, pad)
	if err != nil {
		return nil, err
	}

	if mode == ModeValid {
		nullIncompleteSupport(weights, reduced.Shape(), halo)
	}
	for i, ok := range mask {
		if !ok {
			weights[i] = math.NaN()
		}
	}

	out, err := ndarray.Like(weights, reduced)
	if err != nil {
		return nil, err
	}
	return renamed(out, "boundary weights")
}

// reduceFirstIndex selects index 0 along every dropped dimension, returning
// the reduced array together with the correspondingly reduced kernel shape
// and halo.
func (w *Window) reduceFirstIndex(drop map[string]bool) (*ndarray.Array, []int, []int, error) {
	if len(drop) == 0 {
		return w.arr, w.kernel.Shape(), w.Halo(), nil
	}

	dims := w.arr.Dims()
	shape := w.arr.Shape()
	stride := w.arr.Strides()
	src := w.arr.Data()

	keptDims := make([]string, 0, len(dims))
	keptShape := make([]int, 0, len(dims))
	keptStride := make([]int, 0, len(dims))
	kshape := make([]int, 0, len(dims))
	halo := make([]int, 0, len(dims))

	for a, d := range dims {
		if drop[d] {
			continue
		}
		keptDims = append(keptDims, d)
		keptShape = append(keptShape, shape[a])
		keptStride = append(keptStride, stride[a])
		kshape = append(kshape, w.kernel.shape[a])
		halo = append(halo, w.halo[a])
	}

	size := 1
	for _, n := range keptShape {
		size *= n
	}

	data := make([]float64, size)
	idx := make([]int, len(keptShape))
	for i := range data {
		off := 0
		for a := range idx {
			off += idx[a] * keptStride[a]
		}
		data[i] = src[off]

		for a := len(idx) - 1; a >= 0; a-- {
			idx[a]++
			if idx[a] < keptShape[a] {
				break
			}
			idx[a] = 0
		}
	}

	opts := make([]ndarray.Option, 0, len(keptDims))
	for _, d := range keptDims {
		if coords := w.arr.Coords(d); coords != nil {
			opts = append(opts, ndarray.WithCoords(d, coords))
		}
	}

	arr, err := ndarray.New(data, keptDims, keptShape, opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return arr, kshape, halo, nil
}

// nullIncompleteSupport sets NaN on every cell whose kernel footprint
// extends past the domain edge, the "valid" boundary behavior.
func nullIncompleteSupport(data []float64, shape, halo []int) {
	stride := ndarray.RowMajorStrides(shape)
	for i := range data {
		for a := range shape {
			pos := (i / stride[a]) % shape[a]
			if pos < halo[a] || pos >= shape[a]-halo[a] {
				data[i] = math.NaN()
				break
			}
		}
	}
}

// renamed rebuilds an array under a new name, keeping dims and coordinates.
func renamed(arr *ndarray.Array, name string) (*ndarray.Array, error) {
	opts := []ndarray.Option{ndarray.WithName(name)}
	for _, d := range arr.Dims() {
		if coords := arr.Coords(d); coords != nil {
			opts = append(opts, ndarray.WithCoords(d, coords))
		}
	}
	return ndarray.New(arr.Data(), arr.Dims(), arr.Shape(), opts...)
}
