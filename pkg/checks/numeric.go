package checks

import "github.com/dmitrymomot/paramcheck"

// Positive accepts numeric values greater than zero.
func Positive() paramcheck.Predicate {
	return func(value any) bool {
		n, ok := asFloat(value)
		return ok && n > 0
	}
}

// NonNegative accepts numeric values greater than or equal to zero.
func NonNegative() paramcheck.Predicate {
	return func(value any) bool {
		n, ok := asFloat(value)
		return ok && n >= 0
	}
}

// Range accepts numeric values within [min, max].
func Range(min, max float64) paramcheck.Predicate {
	return func(value any) bool {
		n, ok := asFloat(value)
		return ok && n >= min && n <= max
	}
}

func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
