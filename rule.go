package paramcheck

import (
	"fmt"
	"sort"
	"strings"
)

// Predicate reports whether a parameter value is acceptable. It receives the
// value from the provided parameters map, or Missing when the parameter is
// absent.
type Predicate func(value any) bool

// missing is the sentinel type for parameters absent from the provided map.
type missing struct{}

// String renders the sentinel as "undefined" inside error messages.
func (missing) String() string { return "undefined" }

// Missing is the value a Predicate receives for a parameter that is not
// present in the provided map. A present nil or empty value is distinct from
// Missing: both pass the default validity predicate, an absent key does not.
var Missing = missing{}

// Rule is a single parsed validation rule. Rules are built with Required,
// AnyOf, Check, or Checks, or parsed from the loosely-typed descriptor list
// accepted by Validate.
type Rule interface {
	eval(defaultCheck Predicate, params map[string]any) outcome
}

// pair preserves extraction order within a single rule outcome.
type pair struct {
	name  string
	value any
}

// outcome is the result of evaluating one rule: the name/value entries that
// passed, and the failure messages produced.
type outcome struct {
	extracted []pair
	errs      []string
}

// Required returns a rule that extracts the named parameter when it
// satisfies the default validity predicate. An empty name contributes
// nothing.
func Required(name string) Rule {
	return requiredRule{name: name}
}

// AnyOf returns a logical-OR rule: at least one of the named parameters must
// satisfy the default validity predicate, and every one that does is
// extracted. An empty name list contributes nothing.
func AnyOf(names ...string) Rule {
	return anyOfRule{names: names}
}

// Check returns a rule that extracts the named parameter only when the given
// predicate accepts its value. A nil predicate is a usage error surfaced by
// Validate before any rule is evaluated.
func Check(name string, check Predicate) Rule {
	return checksRule{entries: []checkEntry{{name: name, check: check}}}
}

// Checks returns a rule with one predicate per named parameter. Entries are
// evaluated in sorted name order so that failure text is deterministic.
func Checks(checks map[string]Predicate) Rule {
	return checksFromMap(checks)
}

type requiredRule struct {
	name string
}

func (r requiredRule) eval(defaultCheck Predicate, params map[string]any) outcome {
	if r.name == "" {
		return outcome{}
	}
	value := lookup(params, r.name)
	if !defaultCheck(value) {
		return outcome{errs: []string{invalidValueMessage(r.name, value)}}
	}
	return outcome{extracted: []pair{{name: r.name, value: extractable(value)}}}
}

type anyOfRule struct {
	names []string
}

func (r anyOfRule) eval(defaultCheck Predicate, params map[string]any) outcome {
	if len(r.names) == 0 {
		return outcome{}
	}
	var out outcome
	for _, name := range r.names {
		value := lookup(params, name)
		if defaultCheck(value) {
			out.extracted = append(out.extracted, pair{name: name, value: extractable(value)})
		}
	}
	if len(out.extracted) == 0 {
		quoted := make([]string, len(r.names))
		for i, name := range r.names {
			quoted[i] = "'" + name + "'"
		}
		out.errs = []string{fmt.Sprintf("One of the following parameters must be included: %s.", strings.Join(quoted, ", "))}
	}
	return out
}

type checkEntry struct {
	name  string
	check Predicate
}

type checksRule struct {
	entries []checkEntry
}

func (r checksRule) eval(_ Predicate, params map[string]any) outcome {
	var out outcome
	for _, entry := range r.entries {
		value := lookup(params, entry.name)
		if entry.check(value) {
			out.extracted = append(out.extracted, pair{name: entry.name, value: extractable(value)})
		} else {
			out.errs = append(out.errs, invalidValueMessage(entry.name, value))
		}
	}
	return out
}

func checksFromMap(checks map[string]Predicate) checksRule {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]checkEntry, len(names))
	for i, name := range names {
		entries[i] = checkEntry{name: name, check: checks[name]}
	}
	return checksRule{entries: entries}
}

// parseRules converts the loosely-typed descriptor list into parsed rules,
// up front, so that malformed custom checks fail before any evaluation or
// merging happens. Recognized element shapes: Rule, string, []string,
// map[string]Predicate, and map[string]func(any) bool. Empty strings, empty
// slices, empty maps, and unrecognized shapes contribute nothing.
func parseRules(descriptors []any) ([]Rule, error) {
	rules := make([]Rule, 0, len(descriptors))
	for _, raw := range descriptors {
		switch d := raw.(type) {
		case Rule:
			if err := validateRuleFuncs(d); err != nil {
				return nil, err
			}
			rules = append(rules, d)
		case string:
			if d == "" {
				continue
			}
			rules = append(rules, requiredRule{name: d})
		case []string:
			if len(d) == 0 {
				continue
			}
			rules = append(rules, anyOfRule{names: d})
		case map[string]Predicate:
			if len(d) == 0 {
				continue
			}
			r := checksFromMap(d)
			if err := validateRuleFuncs(r); err != nil {
				return nil, err
			}
			rules = append(rules, r)
		case map[string]func(any) bool:
			if len(d) == 0 {
				continue
			}
			converted := make(map[string]Predicate, len(d))
			for name, fn := range d {
				converted[name] = fn
			}
			r := checksFromMap(converted)
			if err := validateRuleFuncs(r); err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
	}
	return rules, nil
}

func validateRuleFuncs(r Rule) error {
	cr, ok := r.(checksRule)
	if !ok {
		return nil
	}
	for _, entry := range cr.entries {
		if entry.check == nil {
			return fmt.Errorf("%w: parameter %q", ErrNilValidationFunc, entry.name)
		}
	}
	return nil
}

func lookup(params map[string]any, name string) any {
	if value, ok := params[name]; ok {
		return value
	}
	return Missing
}

// extractable maps the Missing sentinel to nil so it never leaks into the
// output when a custom default predicate accepts absent parameters.
func extractable(value any) any {
	if value == Missing {
		return nil
	}
	return value
}

func invalidValueMessage(name string, value any) string {
	return fmt.Sprintf("Invalid value of '%v' was provided for parameter '%s'.", value, name)
}
