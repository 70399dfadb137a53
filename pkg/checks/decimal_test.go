package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/paramcheck/pkg/checks"
)

func TestDecimalString(t *testing.T) {
	check := checks.DecimalString()

	t.Run("accepts decimal numbers", func(t *testing.T) {
		assert.True(t, check("19.99"))
		assert.True(t, check("0"))
		assert.True(t, check("-3.5"))
		assert.True(t, check("1000000.000001"))
	})

	t.Run("rejects non-decimal strings", func(t *testing.T) {
		assert.False(t, check(""))
		assert.False(t, check("   "))
		assert.False(t, check("19.99 USD"))
		assert.False(t, check("abc"))
	})

	t.Run("rejects non-strings", func(t *testing.T) {
		assert.False(t, check(19.99))
		assert.False(t, check(nil))
	})
}

func TestPositiveDecimal(t *testing.T) {
	check := checks.PositiveDecimal()

	assert.True(t, check("19.99"))
	assert.True(t, check("0.01"))
	assert.False(t, check("0"))
	assert.False(t, check("0.00"))
	assert.False(t, check("-19.99"))
	assert.False(t, check("abc"))
}

func TestDecimalPrecision(t *testing.T) {
	check := checks.DecimalPrecision(2)

	t.Run("accepts at most two fraction digits", func(t *testing.T) {
		assert.True(t, check("19.99"))
		assert.True(t, check("19.9"))
		assert.True(t, check("19"))
		assert.True(t, check("-0.5"))
	})

	t.Run("rejects excess precision", func(t *testing.T) {
		assert.False(t, check("19.999"))
		assert.False(t, check("0.001"))
	})

	t.Run("trailing zeros do not count as precision", func(t *testing.T) {
		assert.True(t, check("19.990"))
	})

	t.Run("rejects non-decimal values", func(t *testing.T) {
		assert.False(t, check("abc"))
		assert.False(t, check(19.999))
	})
}
