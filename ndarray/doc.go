// Package ndarray provides a dense row-major N-dimensional array with named
// dimensions and optional per-dimension coordinate labels.
//
// Arrays are the data carrier for the filtering packages: dimension names
// select filtering axes, coordinate labels determine sample spacing (and with
// it the Nyquist frequency), and missing values are represented as NaN.
//
// # Usage
//
//	arr, err := ndarray.New(data, []string{"y", "x"}, []int{64, 128},
//		ndarray.WithCoords("x", xCoords),
//		ndarray.WithCoords("y", yCoords),
//		ndarray.WithName("ssh"))
//
//	dx, err := arr.Spacing("x")   // uniform coordinate step
//	mask := arr.IsFinite()        // true where data is present
//
// The payload is shared, not copied: Data returns the backing slice, and
// Clone produces an independent copy when isolation is needed.
package ndarray
