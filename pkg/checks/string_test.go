package checks_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/paramcheck"
	"github.com/dmitrymomot/paramcheck/pkg/checks"
)

func TestNonEmptyString(t *testing.T) {
	check := checks.NonEmptyString()

	t.Run("accepts non-blank strings", func(t *testing.T) {
		assert.True(t, check("value"))
		assert.True(t, check(" value "))
	})

	t.Run("rejects empty and whitespace-only strings", func(t *testing.T) {
		assert.False(t, check(""))
		assert.False(t, check("   "))
		assert.False(t, check("\t\n"))
	})

	t.Run("rejects non-strings", func(t *testing.T) {
		assert.False(t, check(42))
		assert.False(t, check(nil))
		assert.False(t, check(paramcheck.Missing))
	})
}

func TestMinLen(t *testing.T) {
	check := checks.MinLen(3)

	assert.True(t, check("abc"))
	assert.True(t, check("abcd"))
	assert.False(t, check("ab"))
	assert.False(t, check(""))
	assert.False(t, check(123))
}

func TestMaxLen(t *testing.T) {
	check := checks.MaxLen(3)

	assert.True(t, check("abc"))
	assert.True(t, check(""))
	assert.False(t, check("abcd"))
	assert.False(t, check(1234))
}

func TestMatches(t *testing.T) {
	check := checks.Matches(regexp.MustCompile(`^[A-Z]{2}\d{4}$`))

	t.Run("accepts matching strings", func(t *testing.T) {
		assert.True(t, check("AB1234"))
	})

	t.Run("rejects non-matching strings", func(t *testing.T) {
		assert.False(t, check("ab1234"))
		assert.False(t, check("AB12345"))
		assert.False(t, check(""))
	})

	t.Run("rejects non-strings", func(t *testing.T) {
		assert.False(t, check(121234))
	})
}

func TestNoWhitespace(t *testing.T) {
	check := checks.NoWhitespace()

	assert.True(t, check("api-key-123"))
	assert.True(t, check(""))
	assert.False(t, check("api key"))
	assert.False(t, check("key\t"))
	assert.False(t, check("key\n"))
	assert.False(t, check(42))
}
