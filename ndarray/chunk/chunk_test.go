package chunk

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ndfilter/ndarray"
)

func mustArray(t *testing.T, data []float64, dims []string, shape []int) *ndarray.Array {
	t.Helper()
	arr, err := ndarray.New(data, dims, shape)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return arr
}

// boxcar3 is a 3-tap moving average along the last axis of the block, with
// zero treatment outside the block. Used as a representative neighborhood
// operation whose correctness depends on the halo protocol.
func boxcar3(block []float64, shape []int) []float64 {
	out := make([]float64, len(block))
	n := shape[len(shape)-1]
	rows := len(block) / n

	for r := range rows {
		row := block[r*n : (r+1)*n]
		dst := out[r*n : (r+1)*n]
		for i := range row {
			acc := row[i]
			if i > 0 {
				acc += row[i-1]
			}
			if i < n-1 {
				acc += row[i+1]
			}
			dst[i] = acc / 3
		}
	}
	return out
}

func TestSplitResolvesSizes(t *testing.T) {
	arr := mustArray(t, make([]float64, 24), []string{"y", "x"}, []int{4, 6})

	ch, err := Split(arr, map[string]int{"x": 4})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	sizes := ch.Sizes()
	if sizes[0] != 4 || sizes[1] != 4 {
		t.Fatalf("sizes = %v, want [4 4]", sizes)
	}
	if ch.NumChunks() != 2 {
		t.Fatalf("NumChunks = %d, want 2", ch.NumChunks())
	}
}

func TestSplitRejectsBadSizes(t *testing.T) {
	arr := mustArray(t, make([]float64, 6), []string{"x"}, []int{6})

	if _, err := Split(arr, map[string]int{"x": -1}); !errors.Is(err, ErrBadChunkSize) {
		t.Fatalf("err = %v, want ErrBadChunkSize", err)
	}
	if _, err := Split(arr, map[string]int{"z": 2}); err == nil {
		t.Fatal("expected error for unknown dimension")
	}
}

func TestSplitClampsOversizedChunks(t *testing.T) {
	arr := mustArray(t, make([]float64, 6), []string{"x"}, []int{6})

	ch, err := Split(arr, map[string]int{"x": 100})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if ch.NumChunks() != 1 {
		t.Fatalf("NumChunks = %d, want 1", ch.NumChunks())
	}
}

func TestMapOverlapValidation(t *testing.T) {
	arr := mustArray(t, make([]float64, 6), []string{"x"}, []int{6})
	ch := Whole(arr)

	if _, err := ch.MapOverlap(boxcar3, []int{1, 1}, PadReflect); !errors.Is(err, ErrDepthRank) {
		t.Fatalf("err = %v, want ErrDepthRank", err)
	}
	if _, err := ch.MapOverlap(boxcar3, []int{-1}, PadReflect); !errors.Is(err, ErrBadDepth) {
		t.Fatalf("err = %v, want ErrBadDepth", err)
	}
}

func TestComputeIdentityNoStages(t *testing.T) {
	arr := mustArray(t, []float64{1, 2, 3, 4}, []string{"x"}, []int{4})

	out, err := (&Deferred{src: Whole(arr)}).Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i, v := range out.Data() {
		if v != arr.Data()[i] {
			t.Fatalf("out[%d] = %v, want %v", i, v, arr.Data()[i])
		}
	}

	// The realized array must not alias the source.
	out.Data()[0] = 99
	if arr.Data()[0] == 99 {
		t.Fatal("Compute aliased the source data")
	}
}

func TestChunkedMatchesWhole(t *testing.T) {
	data := make([]float64, 120)
	for i := range data {
		data[i] = math.Sin(float64(i) * 0.3)
	}

	for _, pad := range []Pad{PadReflect, PadZero} {
		whole := mustArray(t, append([]float64(nil), data...), []string{"y", "x"}, []int{8, 15})
		dw, err := Whole(whole).MapOverlap(boxcar3, []int{0, 1}, pad)
		if err != nil {
			t.Fatalf("MapOverlap: %v", err)
		}
		want, err := dw.Compute()
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}

		for _, sizes := range []map[string]int{
			{"x": 4},
			{"x": 5, "y": 3},
			{"x": 1},
			{"y": 2},
		} {
			arr := mustArray(t, append([]float64(nil), data...), []string{"y", "x"}, []int{8, 15})
			ch, err := Split(arr, sizes)
			if err != nil {
				t.Fatalf("Split(%v): %v", sizes, err)
			}
			d, err := ch.MapOverlap(boxcar3, []int{0, 1}, pad)
			if err != nil {
				t.Fatalf("MapOverlap: %v", err)
			}
			got, err := d.Compute()
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}

			for i := range want.Data() {
				if math.Abs(got.Data()[i]-want.Data()[i]) > 1e-12 {
					t.Fatalf("sizes %v: index %d: got %v, want %v",
						sizes, i, got.Data()[i], want.Data()[i])
				}
			}
		}
	}
}

func TestReflectPadding(t *testing.T) {
	arr := mustArray(t, []float64{1, 2, 3, 4}, []string{"x"}, []int{4})

	// With reflect padding the left edge sees [1 1 2] -> 4/3.
	d, err := Whole(arr).MapOverlap(boxcar3, []int{1}, PadReflect)
	if err != nil {
		t.Fatalf("MapOverlap: %v", err)
	}
	out, err := d.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if math.Abs(out.Data()[0]-4.0/3) > 1e-12 {
		t.Fatalf("out[0] = %v, want %v", out.Data()[0], 4.0/3)
	}
	if math.Abs(out.Data()[3]-11.0/3) > 1e-12 {
		t.Fatalf("out[3] = %v, want %v", out.Data()[3], 11.0/3)
	}
}

func TestZeroPadding(t *testing.T) {
	arr := mustArray(t, []float64{1, 2, 3, 4}, []string{"x"}, []int{4})

	// With zero padding the left edge sees [0 1 2] -> 1.
	d, err := Whole(arr).MapOverlap(boxcar3, []int{1}, PadZero)
	if err != nil {
		t.Fatalf("MapOverlap: %v", err)
	}
	out, err := d.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if math.Abs(out.Data()[0]-1) > 1e-12 {
		t.Fatalf("out[0] = %v, want 1", out.Data()[0])
	}
}

func TestStagesCompose(t *testing.T) {
	arr := mustArray(t, []float64{0, 0, 9, 0, 0, 0}, []string{"x"}, []int{6})

	double := func(block []float64, shape []int) []float64 {
		out := make([]float64, len(block))
		for i, v := range block {
			out[i] = 2 * v
		}
		return out
	}

	ch, _ := Split(arr, map[string]int{"x": 2})
	d, err := ch.MapOverlap(boxcar3, []int{1}, PadReflect)
	if err != nil {
		t.Fatalf("MapOverlap: %v", err)
	}
	d2, err := d.MapOverlap(double, []int{0}, PadReflect)
	if err != nil {
		t.Fatalf("MapOverlap: %v", err)
	}

	out, err := d2.Compute(WithWorkers(2))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Smoothed impulse of height 9 spreads to 3 per cell, then doubles.
	want := []float64{0, 6, 6, 6, 0, 0}
	for i := range want {
		if math.Abs(out.Data()[i]-want[i]) > 1e-12 {
			t.Fatalf("out = %v, want %v", out.Data(), want)
		}
	}

	// The intermediate node is unchanged by the extension.
	outFirst, err := d.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if math.Abs(outFirst.Data()[1]-3) > 1e-12 {
		t.Fatalf("first stage alone: out[1] = %v, want 3", outFirst.Data()[1])
	}
}

func TestProgressReporting(t *testing.T) {
	arr := mustArray(t, make([]float64, 12), []string{"x"}, []int{12})

	ch, _ := Split(arr, map[string]int{"x": 3})
	d, _ := ch.MapOverlap(boxcar3, []int{1}, PadReflect)

	var calls int
	lastDone := 0
	_, err := d.Compute(WithWorkers(3), WithProgress(func(done, total int) {
		calls++
		if total != 4 {
			t.Errorf("total = %d, want 4", total)
		}
		if done <= lastDone {
			t.Errorf("done not monotonic: %d after %d", done, lastDone)
		}
		lastDone = done
	}))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if calls != 4 {
		t.Fatalf("progress calls = %d, want 4", calls)
	}
}

func TestBlockShapeError(t *testing.T) {
	arr := mustArray(t, make([]float64, 6), []string{"x"}, []int{6})

	bad := func(block []float64, shape []int) []float64 {
		return block[:1]
	}

	d, _ := Whole(arr).MapOverlap(bad, []int{0}, PadReflect)
	if _, err := d.Compute(); !errors.Is(err, ErrBlockShape) {
		t.Fatalf("err = %v, want ErrBlockShape", err)
	}
}

func TestReflectIndex(t *testing.T) {
	cases := []struct{ g, n, want int }{
		{-1, 4, 0},
		{-2, 4, 1},
		{4, 4, 3},
		{5, 4, 2},
		{2, 4, 2},
		{-1, 1, 0},
		{3, 1, 0},
		{-5, 2, 0},
	}
	for _, tc := range cases {
		if got := reflectIndex(tc.g, tc.n); got != tc.want {
			t.Fatalf("reflectIndex(%d, %d) = %d, want %d", tc.g, tc.n, got, tc.want)
		}
	}
}

func TestDeepHaloBeyondChunkSize(t *testing.T) {
	// Halo deeper than the chunk size must still read the right neighbor data.
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	whole := mustArray(t, append([]float64(nil), data...), []string{"x"}, []int{8})
	arr := mustArray(t, append([]float64(nil), data...), []string{"x"}, []int{8})

	mean5 := func(block []float64, shape []int) []float64 {
		n := shape[0]
		out := make([]float64, n)
		for i := range out {
			acc := 0.0
			cnt := 0.0
			for j := i - 2; j <= i+2; j++ {
				if j >= 0 && j < n {
					acc += block[j]
					cnt++
				}
			}
			out[i] = acc / cnt
		}
		return out
	}

	dw, _ := Whole(whole).MapOverlap(mean5, []int{2}, PadReflect)
	want, err := dw.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	ch, _ := Split(arr, map[string]int{"x": 1})
	d, _ := ch.MapOverlap(mean5, []int{2}, PadReflect)
	got, err := d.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for i := range want.Data() {
		if math.Abs(got.Data()[i]-want.Data()[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, got.Data()[i], want.Data()[i])
		}
	}
}
