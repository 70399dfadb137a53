package checks

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/paramcheck"
)

// UUID accepts canonical 36-character UUID strings of any version.
func UUID() paramcheck.Predicate {
	return func(value any) bool {
		_, ok := parseUUID(value)
		return ok
	}
}

// UUIDv4 accepts canonical UUID strings of version 4.
func UUIDv4() paramcheck.Predicate {
	return func(value any) bool {
		id, ok := parseUUID(value)
		return ok && id.Version() == 4
	}
}

func parseUUID(value any) (uuid.UUID, bool) {
	s, ok := value.(string)
	if !ok {
		return uuid.UUID{}, false
	}

	// Fast rejection: check length and hyphen positions before parsing.
	if len(s) != 36 {
		return uuid.UUID{}, false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.UUID{}, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}
