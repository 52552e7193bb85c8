package testutil

import (
	"testing"

	"github.com/cwbudde/algo-ndfilter/ndarray"
)

// OnesArray builds a labeled array of the given shape filled with 1.0,
// failing t on invalid dims/shape.
func OnesArray(t *testing.T, dims []string, shape []int) *ndarray.Array {
	t.Helper()

	size := 1
	for _, n := range shape {
		size *= n
	}

	arr, err := ndarray.New(Ones(size), dims, shape)
	if err != nil {
		t.Fatalf("OnesArray: %v", err)
	}
	return arr
}
