// Package checks provides reusable predicate constructors for paramcheck
// custom-check rules.
//
// Every function returns a paramcheck.Predicate closing over its
// configuration. Predicates receive the raw parameter value as `any` (or
// paramcheck.Missing for absent parameters); a value of the wrong dynamic
// type simply fails the predicate, which surfaces as a regular validation
// failure rather than a usage error.
//
// # Usage
//
//	_, err := paramcheck.Validate(params, []any{
//	    paramcheck.Check("email", checks.Email()),
//	    paramcheck.Check("id", checks.UUIDv4()),
//	    paramcheck.Checks(map[string]paramcheck.Predicate{
//	        "amount":   checks.PositiveDecimal(),
//	        "currency": checks.OneOf("USD", "EUR", "GBP"),
//	    }),
//	})
//
// All constructors are pure and allocation-light; the package holds no
// state and is safe for concurrent use.
package checks
