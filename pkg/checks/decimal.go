package checks

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/paramcheck"
)

// DecimalString accepts strings parseable as exact decimal numbers, the
// safe representation for monetary amounts crossing API boundaries.
func DecimalString() paramcheck.Predicate {
	return func(value any) bool {
		_, ok := parseDecimal(value)
		return ok
	}
}

// PositiveDecimal accepts decimal strings strictly greater than zero.
func PositiveDecimal() paramcheck.Predicate {
	return func(value any) bool {
		d, ok := parseDecimal(value)
		return ok && d.IsPositive()
	}
}

// DecimalPrecision accepts decimal strings with at most maxPlaces fraction
// digits, preventing sub-unit precision from slipping into financial
// amounts.
func DecimalPrecision(maxPlaces int32) paramcheck.Predicate {
	return func(value any) bool {
		d, ok := parseDecimal(value)
		return ok && d.Equal(d.Round(maxPlaces))
	}
}

func parseDecimal(value any) (decimal.Decimal, bool) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
