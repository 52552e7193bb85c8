package filter

import "errors"

// Errors returned at configuration or apply time.
var (
	ErrNotConfigured      = errors.New("filter: window has not been configured")
	ErrUnsupportedArgType = errors.New("filter: unsupported per-dimension argument type")
	ErrUnknownDimension   = errors.New("filter: dimension not present in array")
	ErrInvalidOrder       = errors.New("filter: order must be a positive integer")
	ErrShapeMismatch      = errors.New("filter: shape mismatch")
	ErrUnsupportedMode    = errors.New("filter: unsupported boundary mode")
	ErrNotImplemented     = errors.New("filter: tapering is not implemented")
	ErrZeroKernel         = errors.New("filter: kernel sums to zero, cannot normalize")
)
