package filter_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-ndfilter/filter"
	"github.com/cwbudde/algo-ndfilter/ndarray"
)

func ExampleWindow_Apply() {
	arr, err := ndarray.New([]float64{1, 2, 3, 4}, []string{"time"}, []int{4})
	if err != nil {
		log.Fatal(err)
	}

	w, err := filter.New(arr, filter.WithOrder(3))
	if err != nil {
		log.Fatal(err)
	}

	out, err := w.Apply()
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range out.Data() {
		fmt.Printf("%.2f ", v)
	}
	fmt.Println()
	// Output:
	// 1.33 2.00 3.00 3.67
}

func ExampleWindow_BoundaryWeights() {
	arr, err := ndarray.New(make([]float64, 6), []string{"time"}, []int{6})
	if err != nil {
		log.Fatal(err)
	}

	w, err := filter.New(arr, filter.WithOrder(3))
	if err != nil {
		log.Fatal(err)
	}

	bw, err := w.BoundaryWeights(filter.ModeZero)
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range bw.Data() {
		fmt.Printf("%.2f ", v)
	}
	fmt.Println()
	// Output:
	// 0.67 1.00 1.00 1.00 1.00 0.67
}
