package paramcheck

import "strings"

// Validator interprets an ordered rule list against a map of provided
// parameters. The zero value is ready to use and applies the default
// validity predicate (value is not Missing). A Validator holds no mutable
// state after construction and is safe for concurrent use.
type Validator struct {
	defaultValidation Predicate
}

// Option configures a Validator during construction.
type Option func(*Validator) error

// WithDefaultValidation replaces the fallback predicate applied by Required
// and AnyOf rules and by string/[]string descriptors. Predicates receive
// Missing for absent parameters.
func WithDefaultValidation(check Predicate) Option {
	return func(v *Validator) error {
		if check == nil {
			return ErrNilDefaultValidation
		}
		v.defaultValidation = check
		return nil
	}
}

// New constructs a Validator.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// notMissing is the default validity predicate. Present nil and empty
// values pass; only absent parameters fail.
func notMissing(value any) bool {
	return value != Missing
}

type validateConfig struct {
	target     map[string]any
	prefix     string
	factory    ErrorFactory
	factorySet bool
}

// ValidateOption adjusts a single Validate call.
type ValidateOption func(*validateConfig)

// WithTarget merges extracted parameters into target instead of a fresh
// map; the same map is returned, letting callers accumulate results across
// calls. A nil target behaves as if the option were omitted.
func WithTarget(target map[string]any) ValidateOption {
	return func(c *validateConfig) {
		c.target = target
	}
}

// WithPrefix prepends prefix to every extracted parameter name on merge
// into the output. Failure messages always carry the original names.
func WithPrefix(prefix string) ValidateOption {
	return func(c *validateConfig) {
		c.prefix = prefix
	}
}

// WithErrorFactory substitutes the construction of the aggregate validation
// error. The factory receives the joined failure message and must return a
// non-nil error; callers typically wrap ValidationError so errors.As keeps
// working.
func WithErrorFactory(factory ErrorFactory) ValidateOption {
	return func(c *validateConfig) {
		c.factory = factory
		c.factorySet = true
	}
}

// Validate evaluates every rule descriptor, in order, against params. All
// entries that pass are merged into the output map rule by rule; failure
// messages accumulate across the whole pass and are returned together as
// one aggregate error, so a caller sees every problem at once rather than
// fixing them one at a time.
//
// On validation failure the returned map still holds entries merged by
// earlier rules; callers should treat it as indeterminate. Usage errors
// (nil params, nil rules, nil predicates, nil error factory) are returned
// immediately and are never ValidationErrors.
func (v *Validator) Validate(params map[string]any, rules []any, opts ...ValidateOption) (map[string]any, error) {
	if params == nil {
		return nil, ErrNilParams
	}
	if rules == nil {
		return nil, ErrNilRules
	}

	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.factorySet && cfg.factory == nil {
		return nil, ErrNilErrorFactory
	}

	parsed, err := parseRules(rules)
	if err != nil {
		return nil, err
	}

	defaultCheck := v.defaultValidation
	if defaultCheck == nil {
		defaultCheck = notMissing
	}

	out := cfg.target
	if out == nil {
		out = make(map[string]any)
	}

	var messages []string
	for _, rule := range parsed {
		res := rule.eval(defaultCheck, params)
		for _, p := range res.extracted {
			out[cfg.prefix+p.name] = p.value
		}
		messages = append(messages, res.errs...)
	}

	if len(messages) > 0 {
		if cfg.factory != nil {
			return out, cfg.factory(strings.Join(messages, " "))
		}
		return out, &ValidationError{Messages: messages}
	}
	return out, nil
}

// defaultValidator backs the package-level entry points. It carries no
// configuration and no mutable state, so sharing it is safe.
var defaultValidator = &Validator{}

// Validate calls Validator.Validate on a shared zero-configuration instance.
func Validate(params map[string]any, rules []any, opts ...ValidateOption) (map[string]any, error) {
	return defaultValidator.Validate(params, rules, opts...)
}

// ValidateAsync calls Validator.ValidateAsync on a shared
// zero-configuration instance.
func ValidateAsync(params map[string]any, rules []any, opts ...ValidateOption) *Future {
	return defaultValidator.ValidateAsync(params, rules, opts...)
}
