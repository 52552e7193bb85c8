package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// Array is a dense row-major N-dimensional array with named dimensions.
// Missing values are represented as NaN.
type Array struct {
	data   []float64
	dims   []string
	shape  []int
	stride []int
	coords map[string][]float64
	name   string
}

// Option configures array construction.
type Option func(*Array)

// WithName sets the array name.
func WithName(name string) Option {
	return func(a *Array) {
		a.name = name
	}
}

// WithCoords attaches 1-D coordinate labels to a named dimension.
// The slice is copied. Length validation happens in New.
func WithCoords(dim string, values []float64) Option {
	vals := append([]float64(nil), values...)

	return func(a *Array) {
		a.coords[dim] = vals
	}
}

// New creates an array over data with the given dimension names and shape.
// The data slice is shared, not copied; len(data) must equal the product of
// the shape, dimension names must be distinct, and any coordinates supplied
// via [WithCoords] must match their dimension's length.
func New(data []float64, dims []string, shape []int, opts ...Option) (*Array, error) {
	if len(dims) != len(shape) {
		return nil, fmt.Errorf("ndarray: %d dimension names for %d axes", len(dims), len(shape))
	}

	size := 1
	seen := make(map[string]bool, len(dims))
	for i, d := range dims {
		if d == "" {
			return nil, fmt.Errorf("ndarray: empty dimension name at axis %d", i)
		}
		if seen[d] {
			return nil, fmt.Errorf("ndarray: duplicate dimension name %q", d)
		}
		seen[d] = true

		if shape[i] <= 0 {
			return nil, fmt.Errorf("ndarray: axis %q has non-positive length %d", d, shape[i])
		}
		size *= shape[i]
	}

	if len(data) != size {
		return nil, fmt.Errorf("ndarray: data length %d does not match shape size %d", len(data), size)
	}

	a := &Array{
		data:   data,
		dims:   append([]string(nil), dims...),
		shape:  append([]int(nil), shape...),
		stride: RowMajorStrides(shape),
		coords: make(map[string][]float64),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	for dim, vals := range a.coords {
		ax, ok := a.AxisNum(dim)
		if !ok {
			return nil, fmt.Errorf("ndarray: coordinates for unknown dimension %q", dim)
		}
		if len(vals) != a.shape[ax] {
			return nil, fmt.Errorf("ndarray: %d coordinates for dimension %q of length %d",
				len(vals), dim, a.shape[ax])
		}
	}

	return a, nil
}

// Like creates an array over data carrying the dimension names, coordinates,
// and name of ref. The data length must match ref's size.
func Like(data []float64, ref *Array) (*Array, error) {
	opts := make([]Option, 0, len(ref.coords)+1)
	for dim, vals := range ref.coords {
		opts = append(opts, WithCoords(dim, vals))
	}
	if ref.name != "" {
		opts = append(opts, WithName(ref.name))
	}

	return New(data, ref.dims, ref.shape, opts...)
}

// Name returns the array name, possibly empty.
func (a *Array) Name() string { return a.name }

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.dims) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Dims returns a copy of the ordered dimension names.
func (a *Array) Dims() []string {
	return append([]string(nil), a.dims...)
}

// Shape returns a copy of the per-axis lengths.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Strides returns a copy of the row-major strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.stride...)
}

// Data returns the backing slice. Mutations are visible to the array.
func (a *Array) Data() []float64 { return a.data }

// AxisNum returns the axis position of a named dimension.
func (a *Array) AxisNum(dim string) (int, bool) {
	for i, d := range a.dims {
		if d == dim {
			return i, true
		}
	}
	return 0, false
}

// Coords returns a copy of the coordinate labels of a dimension,
// or nil if the dimension is unlabeled.
func (a *Array) Coords(dim string) []float64 {
	vals, ok := a.coords[dim]
	if !ok {
		return nil
	}
	return append([]float64(nil), vals...)
}

// At returns the element at the given per-axis index.
func (a *Array) At(index ...int) float64 {
	return a.data[a.offset(index)]
}

// SetAt stores v at the given per-axis index.
func (a *Array) SetAt(v float64, index ...int) {
	a.data[a.offset(index)] = v
}

func (a *Array) offset(index []int) int {
	if len(index) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for rank-%d array", len(index), len(a.shape)))
	}

	off := 0
	for i, ix := range index {
		if ix < 0 || ix >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range for axis %q of length %d",
				ix, a.dims[i], a.shape[i]))
		}
		off += ix * a.stride[i]
	}
	return off
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := append([]float64(nil), a.data...)

	out, err := Like(data, a)
	if err != nil {
		// Like cannot fail for a well-formed receiver.
		panic(err)
	}
	return out
}

// IsFinite returns a mask that is true where the data is present
// (neither NaN nor infinite).
func (a *Array) IsFinite() []bool {
	mask := make([]bool, len(a.data))
	for i, v := range a.data {
		mask[i] = !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return mask
}

// FillMissing returns a copy with every missing value replaced by fill.
func (a *Array) FillMissing(fill float64) *Array {
	out := a.Clone()
	for i, v := range out.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out.data[i] = fill
		}
	}
	return out
}

// String returns a short description of the array.
func (a *Array) String() string {
	parts := make([]string, len(a.dims))
	for i, d := range a.dims {
		parts[i] = fmt.Sprintf("%s: %d", d, a.shape[i])
	}

	name := a.name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("Array %s (%s)", name, strings.Join(parts, ", "))
}

// RowMajorStrides returns the row-major strides of a shape.
func RowMajorStrides(shape []int) []int {
	stride := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		stride[i] = acc
		acc *= shape[i]
	}
	return stride
}
