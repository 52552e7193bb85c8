package ndarray

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonUniformSpacing reports that a dimension's coordinate steps cannot be
// collapsed to a single scalar spacing.
var ErrNonUniformSpacing = errors.New("ndarray: non-uniform coordinate spacing")

// Relative tolerance for treating coordinate steps as uniform.
const spacingRtol = 1e-8

// Spacing returns the scalar sample spacing of a dimension, derived from its
// coordinate labels. Unlabeled dimensions have unit spacing. The coordinates
// must be strictly monotonic with uniform steps within a small relative
// tolerance; otherwise Spacing returns [ErrNonUniformSpacing].
func (a *Array) Spacing(dim string) (float64, error) {
	ax, ok := a.AxisNum(dim)
	if !ok {
		return 0, fmt.Errorf("ndarray: unknown dimension %q", dim)
	}

	vals, ok := a.coords[dim]
	if !ok {
		return 1, nil
	}

	if a.shape[ax] < 2 {
		return 0, fmt.Errorf("%w: dimension %q has fewer than two samples", ErrNonUniformSpacing, dim)
	}

	dx := vals[1] - vals[0]
	if dx == 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		return 0, fmt.Errorf("%w: dimension %q has degenerate step %v", ErrNonUniformSpacing, dim, dx)
	}

	tol := spacingRtol * math.Abs(dx)
	for i := 2; i < len(vals); i++ {
		step := vals[i] - vals[i-1]
		if math.Abs(step-dx) > tol {
			return 0, fmt.Errorf("%w: dimension %q steps %v and %v disagree",
				ErrNonUniformSpacing, dim, dx, step)
		}
	}

	return dx, nil
}
