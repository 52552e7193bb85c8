package filter

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/ndarray"
	"github.com/cwbudde/algo-ndfilter/ndarray/chunk"
	"github.com/cwbudde/algo-vecmath"
)

// Mode selects the boundary policy at the domain edges.
type Mode int

const (
	// ModeReflect mirrors the data across the domain edges.
	ModeReflect Mode = iota

	// ModeZero treats samples past the edges as zero ("same" behavior).
	ModeZero

	// ModeValid synthesizes nothing: cells whose kernel footprint leaves the
	// domain are null in the output.
	ModeValid
)

// String returns the mode name used by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeReflect:
		return "reflect"
	case ModeZero:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode resolves a boundary mode name. Recognized names are "reflect",
// "same" (with alias "zero"), and "valid".
func ParseMode(name string) (Mode, error) {
	switch name {
	case "reflect":
		return ModeReflect, nil
	case "same", "zero":
		return ModeZero, nil
	case "valid":
		return ModeValid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, name)
	}
}

// pad maps the mode onto the chunk engine's edge synthesis. ModeValid pads
// with zeros; its incomplete-support cells are nulled after convolution.
func (m Mode) pad() (chunk.Pad, error) {
	switch m {
	case ModeReflect:
		return chunk.PadReflect, nil
	case ModeZero, ModeValid:
		return chunk.PadZero, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedMode, m)
	}
}

// blockConvolver adapts the N-dimensional direct convolution to the chunk
// engine's block contract.
func blockConvolver(kernel []float64, kshape []int) chunk.BlockFunc {
	return func(block []float64, shape []int) []float64 {
		return convolveBlock(block, shape, kernel, kshape)
	}
}

// convolveBlock computes the same-shape direct convolution of a block with a
// kernel of matching rank, treating samples outside the block as zero. The
// caller guarantees (via the halo protocol) that every retained output cell
// has its full kernel footprint inside the block.
//
// The work is organized tap by tap: each kernel coefficient contributes a
// scaled, shifted copy of the input to the output, and the innermost axis is
// processed as contiguous runs through the vecmath block operations.
func convolveBlock(block []float64, shape []int, kernel []float64, kshape []int) []float64 {
	rank := len(shape)
	out := make([]float64, len(block))

	if rank == 0 {
		if len(kernel) > 0 {
			out[0] = block[0] * kernel[0]
		}
		return out
	}

	stride := ndarray.RowMajorStrides(shape)
	last := rank - 1

	radius := make([]int, rank)
	for a, k := range kshape {
		radius[a] = (k - 1) / 2
	}

	tap := make([]int, rank)   // kernel tap coordinates
	shift := make([]int, rank) // source shift per axis for the current tap
	lo := make([]int, rank)    // valid output range per axis
	hi := make([]int, rank)
	idx := make([]int, rank)
	scratch := make([]float64, shape[last])

	for _, w := range kernel {
		empty := w == 0
		for a := range rank {
			// Convolution flips the kernel: tap t reads from offset r - t.
			shift[a] = radius[a] - tap[a]
			lo[a] = max(0, -shift[a])
			hi[a] = min(shape[a], shape[a]-shift[a])
			if hi[a] <= lo[a] {
				empty = true
			}
		}

		if !empty {
			runLen := hi[last] - lo[last]
			copy(idx, lo)

			for {
				dstOff := 0
				for a := range rank {
					dstOff += idx[a] * stride[a]
				}
				srcOff := dstOff
				for a := range rank {
					srcOff += shift[a] * stride[a]
				}

				vecmath.ScaleBlock(scratch[:runLen], block[srcOff:srcOff+runLen], w)
				vecmath.AddBlockInPlace(out[dstOff:dstOff+runLen], scratch[:runLen])

				a := last - 1
				for ; a >= 0; a-- {
					idx[a]++
					if idx[a] < hi[a] {
						break
					}
					idx[a] = lo[a]
				}
				if a < 0 {
					break
				}
			}
		}

		for a := rank - 1; a >= 0; a-- {
			tap[a]++
			if tap[a] < kshape[a] {
				break
			}
			tap[a] = 0
		}
	}

	return out
}

// convolveFull eagerly convolves a full data field carrying ref's labels,
// using the chunk engine with a single whole-domain chunk.
func convolveFull(data []float64, ref *ndarray.Array, kernel []float64, kshape []int, pad chunk.Pad) ([]float64, error) {
	arr, err := ndarray.Like(data, ref)
	if err != nil {
		return nil, err
	}

	depth := make([]int, len(kshape))
	for a, k := range kshape {
		depth[a] = (k - 1) / 2
	}

	d, err := chunk.Whole(arr).MapOverlap(blockConvolver(kernel, kshape), depth, pad)
	if err != nil {
		return nil, err
	}

	out, err := d.Compute()
	if err != nil {
		return nil, err
	}
	return out.Data(), nil
}
