package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-ndfilter/window"
)

func TestNormalizeArgDefault(t *testing.T) {
	got, err := normalizeArg[int](nil, []string{"time", "x"}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["time"] != 7 || got["x"] != 7 {
		t.Fatalf("got %v, want 7 everywhere", got)
	}
}

func TestNormalizeArgScalar(t *testing.T) {
	got, err := normalizeArg(11, []string{"time", "x"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["time"] != 11 || got["x"] != 11 {
		t.Fatalf("got %v, want 11 everywhere", got)
	}
}

func TestNormalizeArgMap(t *testing.T) {
	got, err := normalizeArg(map[string]int{"time": 5}, []string{"time", "x"}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["time"] != 5 {
		t.Fatalf("time = %d, want 5", got["time"])
	}
	if got["x"] != 3 {
		t.Fatalf("x = %d, want default 3", got["x"])
	}
}

func TestNormalizeArgSlice(t *testing.T) {
	got, err := normalizeArg([]float64{0.1, 0.2}, []string{"time", "x", "y"}, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["time"] != 0.1 || got["x"] != 0.2 {
		t.Fatalf("got %v, want positional values", got)
	}
	if got["y"] != 0.5 {
		t.Fatalf("y = %g, want default past slice end", got["y"])
	}
}

func TestNormalizeArgRejectsType(t *testing.T) {
	if _, err := normalizeArg[int]("nope", []string{"time"}, 0); !errors.Is(err, ErrUnsupportedArgType) {
		t.Fatalf("err = %v, want ErrUnsupportedArgType", err)
	}
}

func TestCoerceWindowArg(t *testing.T) {
	if got := coerceWindowArg("hann"); got != (window.Spec{Name: "hann"}) {
		t.Fatalf("string: got %v", got)
	}

	specs, ok := coerceWindowArg([]string{"hann", "hamming"}).([]window.Spec)
	if !ok || len(specs) != 2 || specs[1].Name != "hamming" {
		t.Fatalf("slice: got %v", specs)
	}

	m, ok := coerceWindowArg(map[string]string{"time": "blackman"}).(map[string]window.Spec)
	if !ok || m["time"].Name != "blackman" {
		t.Fatalf("map: got %v", m)
	}

	// Anything already in Spec form passes through untouched.
	spec := window.Spec{Name: "gaussian", Param: 0.4}
	if got := coerceWindowArg(spec); got != spec {
		t.Fatalf("passthrough: got %v", got)
	}
}
