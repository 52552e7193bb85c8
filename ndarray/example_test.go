package ndarray_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/ndarray"
)

func ExampleNew() {
	arr, _ := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, []string{"y", "x"}, []int{2, 3},
		ndarray.WithCoords("x", []float64{0, 0.5, 1}),
		ndarray.WithName("height"))

	fmt.Println(arr)
	fmt.Println(arr.At(1, 2))
	// Output:
	// Array height (y: 2, x: 3)
	// 6
}

func ExampleArray_Spacing() {
	arr, _ := ndarray.New(make([]float64, 5), []string{"x"}, []int{5},
		ndarray.WithCoords("x", []float64{0, 0.1, 0.2, 0.3, 0.4}))

	dx, _ := arr.Spacing("x")
	fmt.Printf("%.1f\n", dx)
	// Output:
	// 0.1
}
