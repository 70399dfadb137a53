package paramcheck

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleSet is a declarative rule list loadable from YAML. Only required
// parameters (scalar items) and logical-OR groups (sequence items) can be
// expressed declaratively; custom predicate rules are code-only.
//
//	rules:
//	  - api_key
//	  - [username, email]
type RuleSet []Rule

// UnmarshalYAML decodes a sequence whose items are either scalars (a
// required parameter name) or string sequences (a logical-OR group). Empty
// names and empty groups are skipped, matching Validate's handling of empty
// descriptors. Any other node shape is an error.
func (rs *RuleSet) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("paramcheck: rule set must be a YAML sequence (line %d)", value.Line)
	}
	rules := make(RuleSet, 0, len(value.Content))
	for _, item := range value.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			var name string
			if err := item.Decode(&name); err != nil {
				return fmt.Errorf("paramcheck: invalid rule name (line %d): %w", item.Line, err)
			}
			if name == "" {
				continue
			}
			rules = append(rules, requiredRule{name: name})
		case yaml.SequenceNode:
			var names []string
			if err := item.Decode(&names); err != nil {
				return fmt.Errorf("paramcheck: invalid rule group (line %d): %w", item.Line, err)
			}
			if len(names) == 0 {
				continue
			}
			rules = append(rules, anyOfRule{names: names})
		default:
			return fmt.Errorf("paramcheck: unsupported rule shape (line %d)", item.Line)
		}
	}
	*rs = rules
	return nil
}

// Descriptors adapts the rule set to the descriptor list accepted by
// Validate.
func (rs RuleSet) Descriptors() []any {
	descriptors := make([]any, len(rs))
	for i, rule := range rs {
		descriptors[i] = rule
	}
	return descriptors
}
