package chunk

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ndfilter/ndarray"
)

// Errors returned by the chunk engine.
var (
	ErrBadChunkSize = errors.New("chunk: chunk size must be non-negative")
	ErrBadDepth     = errors.New("chunk: halo depth must be non-negative")
	ErrDepthRank    = errors.New("chunk: halo depth rank does not match array rank")
	ErrBlockShape   = errors.New("chunk: block function returned wrong length")
)

// Pad selects how samples outside the array domain are synthesized when a
// chunk's halo extends past a domain edge.
type Pad int

const (
	// PadReflect mirrors the data across the edge (half-sample symmetric:
	// d c b a | a b c d | d c b a).
	PadReflect Pad = iota

	// PadZero fills with zeros past the edge.
	PadZero
)

// BlockFunc transforms one padded block. block holds the chunk plus halo
// samples in row-major order, shape its per-axis lengths. The returned slice
// must have the same length as block; the engine trims the halo afterwards.
// Block functions must be pure: they run concurrently over chunks.
type BlockFunc func(block []float64, shape []int) []float64

// Chunked is an array split into a grid of independently processable chunks.
type Chunked struct {
	src   *ndarray.Array
	sizes []int // chunk size per axis
	grid  []int // number of chunks per axis
}

// Split divides arr into chunks with the given per-dimension chunk sizes.
// A missing or zero entry keeps the whole axis as a single chunk; sizes
// larger than the axis are clamped.
func Split(arr *ndarray.Array, sizes map[string]int) (*Chunked, error) {
	shape := arr.Shape()
	dims := arr.Dims()

	resolved := make([]int, len(shape))
	grid := make([]int, len(shape))

	for i, d := range dims {
		size := sizes[d]
		if size < 0 {
			return nil, fmt.Errorf("%w: %d for dimension %q", ErrBadChunkSize, size, d)
		}
		if size == 0 || size > shape[i] {
			size = shape[i]
		}

		resolved[i] = size
		grid[i] = (shape[i] + size - 1) / size
	}

	for d := range sizes {
		if _, ok := arr.AxisNum(d); !ok {
			return nil, fmt.Errorf("chunk: chunk size for unknown dimension %q", d)
		}
	}

	return &Chunked{src: arr, sizes: resolved, grid: grid}, nil
}

// Whole wraps arr as a single chunk covering the full domain.
func Whole(arr *ndarray.Array) *Chunked {
	ch, err := Split(arr, nil)
	if err != nil {
		// Split without explicit sizes cannot fail.
		panic(err)
	}
	return ch
}

// Sizes returns a copy of the resolved per-axis chunk sizes.
func (c *Chunked) Sizes() []int {
	return append([]int(nil), c.sizes...)
}

// NumChunks returns the total number of chunks in the grid.
func (c *Chunked) NumChunks() int {
	n := 1
	for _, g := range c.grid {
		n *= g
	}
	return n
}

// MapOverlap describes applying fn over every chunk extended by depth extra
// samples per axis side, trimming the halo off the result. It returns an
// unevaluated [Deferred]; nothing runs until Compute.
func (c *Chunked) MapOverlap(fn BlockFunc, depth []int, pad Pad) (*Deferred, error) {
	d := &Deferred{src: c}
	return d.MapOverlap(fn, depth, pad)
}

// stage is one map-overlap pass over the chunk grid.
type stage struct {
	fn    BlockFunc
	depth []int
	pad   Pad
}

// Deferred is an unevaluated chain of map-overlap stages over a chunked
// array. Deferred values are immutable; MapOverlap returns extended copies,
// so a node can be shared as the base of several computations.
type Deferred struct {
	src    *Chunked
	stages []stage
}

// MapOverlap appends a further stage, returning a new Deferred.
func (d *Deferred) MapOverlap(fn BlockFunc, depth []int, pad Pad) (*Deferred, error) {
	if len(depth) != d.src.src.Rank() {
		return nil, fmt.Errorf("%w: %d depths for rank %d", ErrDepthRank, len(depth), d.src.src.Rank())
	}
	for i, dp := range depth {
		if dp < 0 {
			return nil, fmt.Errorf("%w: %d on axis %d", ErrBadDepth, dp, i)
		}
	}

	stages := make([]stage, len(d.stages), len(d.stages)+1)
	copy(stages, d.stages)
	stages = append(stages, stage{fn: fn, depth: append([]int(nil), depth...), pad: pad})

	return &Deferred{src: d.src, stages: stages}, nil
}

// reflectIndex maps an out-of-range global index into the domain using
// half-sample symmetric reflection.
func reflectIndex(g, n int) int {
	for g < 0 || g >= n {
		if g < 0 {
			g = -g - 1
		} else {
			g = 2*n - 1 - g
		}
	}
	return g
}

// axisIndexMap precomputes, for one axis of a padded block, the source index
// of every padded position. Out-of-domain positions map to -1 under PadZero.
func axisIndexMap(start, csize, depth, axisLen int, pad Pad) []int {
	m := make([]int, csize+2*depth)
	for i := range m {
		g := start - depth + i
		switch {
		case g >= 0 && g < axisLen:
			m[i] = g
		case pad == PadZero:
			m[i] = -1
		default:
			m[i] = reflectIndex(g, axisLen)
		}
	}
	return m
}
