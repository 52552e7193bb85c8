// Package chunk provides a small deferred execution engine that applies pure
// block transforms over overlapping chunks of an [ndarray.Array].
//
// An array is split into a grid of chunks with [Split]. MapOverlap describes
// one transformation stage: every chunk is presented to the block function
// together with a halo of extra samples per axis side, so chunk-local
// neighborhood operations (convolution in particular) produce results
// identical to a single whole-array pass. Interior halos are read from
// neighboring chunk data; at the domain edges samples are synthesized
// according to the pad policy. After the transform the halo is trimmed off
// again, so every stage preserves the logical array shape.
//
// Stages compose: the Deferred returned by MapOverlap can itself be extended
// with further MapOverlap calls before anything runs. Compute then executes
// all stages, fanning the chunk tasks of each stage out over a bounded worker
// pool. Chunk tasks are independent apart from their read-only halo
// dependency, so execution order is unconstrained.
//
//	ch, _ := chunk.Split(arr, map[string]int{"x": 1000})
//	d, _ := ch.MapOverlap(smooth, []int{0, 2}, chunk.PadReflect)
//	out, err := d.Compute(chunk.WithProgress(bar))
package chunk
