package chunk

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-ndfilter/ndarray"
)

// ComputeOption configures Compute.
type ComputeOption func(*computeConfig)

type computeConfig struct {
	workers  int
	progress func(done, total int)
}

// WithWorkers bounds the number of concurrent chunk tasks.
// The default is GOMAXPROCS.
func WithWorkers(n int) ComputeOption {
	return func(cfg *computeConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithProgress installs a progress callback invoked after every completed
// chunk task. Calls are serialized; the callback should return quickly.
func WithProgress(fn func(done, total int)) ComputeOption {
	return func(cfg *computeConfig) {
		cfg.progress = fn
	}
}

// Compute executes all stages and returns the realized array. Within a stage
// the chunk tasks run in parallel on a bounded worker pool; stages run in
// order since each consumes the previous stage's output. Compute blocks until
// every task has finished.
func (d *Deferred) Compute(opts ...ComputeOption) (*ndarray.Array, error) {
	cfg := computeConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	src := d.src.src
	cur := src.Data()
	nchunks := d.src.NumChunks()
	total := nchunks * len(d.stages)

	var (
		mu       sync.Mutex
		done     int
		firstErr error
	)

	for _, st := range d.stages {
		out := make([]float64, len(cur))
		jobs := make(chan int)

		var wg sync.WaitGroup
		for range cfg.workers {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for ci := range jobs {
					err := d.src.runChunk(cur, out, ci, st)

					mu.Lock()
					if err != nil {
						if firstErr == nil {
							firstErr = err
						}
					} else {
						done++
						if cfg.progress != nil {
							cfg.progress(done, total)
						}
					}
					mu.Unlock()
				}
			}()
		}

		for ci := range nchunks {
			jobs <- ci
		}
		close(jobs)
		wg.Wait()

		if firstErr != nil {
			return nil, firstErr
		}

		cur = out
	}

	if len(d.stages) == 0 {
		cur = append([]float64(nil), cur...)
	}

	return ndarray.Like(cur, src)
}

// runChunk executes one chunk task of one stage: extract the padded block
// from in, apply the block function, and scatter the trimmed result into out.
func (c *Chunked) runChunk(in, out []float64, ci int, st stage) error {
	shape := c.src.Shape()
	stride := c.src.Strides()
	rank := len(shape)

	// Chunk grid coordinates from the linear chunk index (row-major).
	coord := make([]int, rank)
	rem := ci
	for a := rank - 1; a >= 0; a-- {
		coord[a] = rem % c.grid[a]
		rem /= c.grid[a]
	}

	start := make([]int, rank)
	csize := make([]int, rank)
	pshape := make([]int, rank)
	maps := make([][]int, rank)
	blockLen := 1

	for a := range rank {
		start[a] = coord[a] * c.sizes[a]
		csize[a] = min(c.sizes[a], shape[a]-start[a])
		pshape[a] = csize[a] + 2*st.depth[a]
		maps[a] = axisIndexMap(start[a], csize[a], st.depth[a], shape[a], st.pad)
		blockLen *= pshape[a]
	}

	// Gather the chunk plus halo, synthesizing out-of-domain samples.
	block := make([]float64, blockLen)
	idx := make([]int, rank)
	for p := range block {
		off := 0
		zero := false
		for a := range rank {
			src := maps[a][idx[a]]
			if src < 0 {
				zero = true
				break
			}
			off += src * stride[a]
		}

		if !zero {
			block[p] = in[off]
		}

		for a := rank - 1; a >= 0; a-- {
			idx[a]++
			if idx[a] < pshape[a] {
				break
			}
			idx[a] = 0
		}
	}

	res := st.fn(block, pshape)
	if len(res) != blockLen {
		return fmt.Errorf("%w: got %d, want %d", ErrBlockShape, len(res), blockLen)
	}

	// Trim the halo and scatter the chunk back into the full output.
	pstride := ndarray.RowMajorStrides(pshape)
	for a := range idx {
		idx[a] = 0
	}

	inner := 1
	for _, n := range csize {
		inner *= n
	}

	for range inner {
		srcOff := 0
		dstOff := 0
		for a := range rank {
			srcOff += (st.depth[a] + idx[a]) * pstride[a]
			dstOff += (start[a] + idx[a]) * stride[a]
		}
		out[dstOff] = res[srcOff]

		for a := rank - 1; a >= 0; a-- {
			idx[a]++
			if idx[a] < csize[a] {
				break
			}
			idx[a] = 0
		}
	}

	return nil
}
