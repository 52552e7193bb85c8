// Package filter provides multi-dimensional linear filtering over labeled,
// chunked N-dimensional arrays.
//
// A [Window] binds a separable FIR kernel to an [ndarray.Array]. The kernel
// is synthesized per filtering dimension (a plain window shape from the
// catalog, or a windowed-sinc low-pass when a cutoff frequency is given) and
// combined across dimensions by outer product, keeping unit-length kernel
// axes for every non-filtering dimension so kernel rank always matches array
// rank.
//
// Applying the window convolves the data chunk by chunk with a halo of
// neighbor samples along each filtering axis, so the chunked result is
// identical to a whole-array convolution. Missing values (NaN) contribute
// nothing to the weighted sum: the input is zero-filled, the raw result is
// divided by a boundary-weight field (the convolution of the presence mask
// with the kernel), and cells that were missing stay missing.
//
// # Usage
//
//	w, err := filter.New(arr,
//		filter.WithDims("x", "y"),
//		filter.WithOrder(9),
//		filter.WithCutoff(map[string]float64{"x": 0.05}),
//		filter.WithWindow("hamming"),
//		filter.WithChunks(map[string]int{"x": 500}))
//
//	smoothed, err := w.Apply(filter.WithMode(filter.ModeReflect))
//
// For graph composition, ApplyDeferred returns an unevaluated node that can
// be extended before a single Compute pays the evaluation cost.
package filter
