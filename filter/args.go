package filter

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/window"
)

// normalizeArg resolves a per-dimension argument that may be nil, a single
// value, a positional slice, or a map keyed by dimension name, into a value
// for every selected dimension.
//
//   - nil assigns the default everywhere.
//   - A single T assigns that value everywhere.
//   - A map[string]T is looked up per dimension, absent keys get the default.
//   - A []T assigns positionally, indices past its end get the default.
//   - Anything else fails with [ErrUnsupportedArgType].
//
// Vector-valued per-dimension arguments are expressed by instantiating T as a
// slice type, in which case the single-value case carries the whole vector.
func normalizeArg[T any](arg any, dims []string, def T) (map[string]T, error) {
	out := make(map[string]T, len(dims))

	switch v := arg.(type) {
	case nil:
		for _, d := range dims {
			out[d] = def
		}
	case T:
		for _, d := range dims {
			out[d] = v
		}
	case map[string]T:
		for _, d := range dims {
			if val, ok := v[d]; ok {
				out[d] = val
			} else {
				out[d] = def
			}
		}
	case []T:
		for i, d := range dims {
			if i < len(v) {
				out[d] = v[i]
			} else {
				out[d] = def
			}
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedArgType, arg)
	}

	return out, nil
}

// coerceWindowArg widens plain window names into [window.Spec] values so the
// generic normalizer sees a single value type.
func coerceWindowArg(arg any) any {
	switch v := arg.(type) {
	case string:
		return window.Spec{Name: v}
	case []string:
		out := make([]window.Spec, len(v))
		for i, name := range v {
			out[i] = window.Spec{Name: name}
		}
		return out
	case map[string]string:
		out := make(map[string]window.Spec, len(v))
		for d, name := range v {
			out[d] = window.Spec{Name: name}
		}
		return out
	default:
		return arg
	}
}
