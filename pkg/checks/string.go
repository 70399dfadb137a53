package checks

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/paramcheck"
)

// NonEmptyString accepts strings that are not empty after trimming
// whitespace.
func NonEmptyString() paramcheck.Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) != ""
	}
}

// MinLen accepts strings of at least min bytes.
func MinLen(min int) paramcheck.Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && len(s) >= min
	}
}

// MaxLen accepts strings of at most max bytes.
func MaxLen(max int) paramcheck.Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && len(s) <= max
	}
}

// Matches accepts strings matched by re.
func Matches(re *regexp.Regexp) paramcheck.Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && re.MatchString(s)
	}
}

// NoWhitespace accepts strings containing no whitespace characters.
func NoWhitespace() paramcheck.Predicate {
	return func(value any) bool {
		s, ok := value.(string)
		return ok && !strings.ContainsAny(s, " \t\n\r\v\f")
	}
}
