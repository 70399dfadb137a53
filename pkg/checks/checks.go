package checks

import (
	"slices"

	"github.com/dmitrymomot/paramcheck"
)

// NotNil accepts any present, non-nil value.
func NotNil() paramcheck.Predicate {
	return func(value any) bool {
		return value != nil && value != paramcheck.Missing
	}
}

// IsString accepts string values, including empty ones.
func IsString() paramcheck.Predicate {
	return func(value any) bool {
		_, ok := value.(string)
		return ok
	}
}

// IsBool accepts boolean values.
func IsBool() paramcheck.Predicate {
	return func(value any) bool {
		_, ok := value.(bool)
		return ok
	}
}

// IsNumber accepts any built-in integer or float value.
func IsNumber() paramcheck.Predicate {
	return func(value any) bool {
		_, ok := asFloat(value)
		return ok
	}
}

// OneOf accepts values equal to one of the allowed values.
func OneOf[T comparable](allowed ...T) paramcheck.Predicate {
	return func(value any) bool {
		v, ok := value.(T)
		if !ok {
			return false
		}
		return slices.Contains(allowed, v)
	}
}
