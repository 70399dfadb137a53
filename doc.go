// Package paramcheck verifies that required named parameters are present
// and valid, extracts the validated subset into an output map, and reports
// every failure from a pass as one aggregate error.
//
// The package is built around an ordered list of rule descriptors evaluated
// against a map of provided values. Rules never short-circuit: every rule
// is evaluated even after earlier ones fail, so callers see all problems in
// a single error instead of fixing them one at a time.
//
// # Usage
//
//	params := map[string]any{"cat": "Garfield", "dog": "Jake"}
//
//	out, err := paramcheck.Validate(params, []any{
//	    "cat",                        // required parameter
//	    []string{"dog", "wolf"},      // at least one of these
//	    paramcheck.Check("cat", checks.NonEmptyString()),
//	})
//	if err != nil {
//	    // err aggregates every failed rule, in rule order
//	}
//	// out holds exactly the validated names and values
//
// Rules can also be built with the typed constructors Required, AnyOf,
// Check and Checks, or loaded declaratively from YAML via RuleSet.
//
// A reusable instance carries a custom fallback predicate:
//
//	v, err := paramcheck.New(paramcheck.WithDefaultValidation(func(value any) bool {
//	    return value != paramcheck.Missing && value != ""
//	}))
//
// Extraction can merge into an existing map, optionally prefixing names:
//
//	cfg := map[string]any{}
//	_, err := v.Validate(params, rules,
//	    paramcheck.WithTarget(cfg),
//	    paramcheck.WithPrefix("db_"),
//	)
//
// # Asynchronous Observation
//
// ValidateAsync runs the same synchronous validation but delivers both
// success and failure through a Future, so validation errors can be handled
// uniformly with other deferred failures:
//
//	result, err := paramcheck.ValidateAsync(params, rules).Await()
//
// # Error Handling
//
// Two tiers are kept apart. Malformed calls (nil parameter map, nil rule
// list, nil predicate, nil error factory) return sentinel usage errors
// immediately. Data-validation failures accumulate across the whole pass
// and come back as a single *ValidationError; detect it with
// IsValidationError or errors.As, or substitute your own error type with
// WithErrorFactory.
//
// Absent parameters are represented by the Missing sentinel. A present nil
// or empty string passes the default validity predicate; only Missing fails
// it. Required-but-nullable semantics are intentional.
package paramcheck
