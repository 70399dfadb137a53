package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramcheck"
	"github.com/dmitrymomot/paramcheck/pkg/checks"
)

func TestNotNil(t *testing.T) {
	check := checks.NotNil()

	t.Run("accepts present values", func(t *testing.T) {
		assert.True(t, check("value"))
		assert.True(t, check(0))
		assert.True(t, check(""))
		assert.True(t, check(false))
	})

	t.Run("rejects nil and missing", func(t *testing.T) {
		assert.False(t, check(nil))
		assert.False(t, check(paramcheck.Missing))
	})
}

func TestIsString(t *testing.T) {
	check := checks.IsString()

	t.Run("accepts strings including empty", func(t *testing.T) {
		assert.True(t, check("value"))
		assert.True(t, check(""))
	})

	t.Run("rejects other types", func(t *testing.T) {
		assert.False(t, check(42))
		assert.False(t, check(nil))
		assert.False(t, check(paramcheck.Missing))
	})
}

func TestIsBool(t *testing.T) {
	check := checks.IsBool()

	assert.True(t, check(true))
	assert.True(t, check(false))
	assert.False(t, check("true"))
	assert.False(t, check(1))
	assert.False(t, check(nil))
}

func TestIsNumber(t *testing.T) {
	check := checks.IsNumber()

	t.Run("accepts integer and float kinds", func(t *testing.T) {
		assert.True(t, check(42))
		assert.True(t, check(int64(42)))
		assert.True(t, check(uint8(42)))
		assert.True(t, check(4.2))
		assert.True(t, check(float32(4.2)))
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		assert.False(t, check("42"))
		assert.False(t, check(nil))
		assert.False(t, check(paramcheck.Missing))
	})
}

func TestOneOf(t *testing.T) {
	t.Run("accepts listed string values", func(t *testing.T) {
		check := checks.OneOf("USD", "EUR", "GBP")

		assert.True(t, check("USD"))
		assert.True(t, check("GBP"))
		assert.False(t, check("JPY"))
		assert.False(t, check(""))
	})

	t.Run("accepts listed integer values", func(t *testing.T) {
		check := checks.OneOf(1, 2, 3)

		assert.True(t, check(2))
		assert.False(t, check(4))
	})

	t.Run("rejects values of the wrong type", func(t *testing.T) {
		check := checks.OneOf("USD")

		assert.False(t, check(42))
		assert.False(t, check(nil))
	})

	t.Run("works inside a custom check rule", func(t *testing.T) {
		params := map[string]any{"currency": "CHF"}

		_, err := paramcheck.Validate(params, []any{
			paramcheck.Check("currency", checks.OneOf("USD", "EUR")),
		})

		require.Error(t, err)
		assert.Equal(t, "Invalid value of 'CHF' was provided for parameter 'currency'.", err.Error())
	})
}
