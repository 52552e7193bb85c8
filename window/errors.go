package window

import (
	"errors"
	"fmt"
)

var (
	ErrEvenLength    = errors.New("window: length must be a positive odd integer")
	ErrUnknownWindow = errors.New("window: unknown window name")
	ErrInvalidCutoff = errors.New("window: cutoff must be in (0, nyquist]")
	errEmptyCoeffs   = errors.New("window: coefficients must not be empty")
	errZeroGain      = errors.New("window: zero DC gain, cannot normalize")
)

func validateLength(n int) error {
	if n <= 0 || n%2 == 0 {
		return fmt.Errorf("%w: %d", ErrEvenLength, n)
	}
	return nil
}

func validateNyquist(nyquist float64) error {
	if nyquist <= 0 {
		return fmt.Errorf("window: nyquist frequency must be positive: %v", nyquist)
	}
	return nil
}
