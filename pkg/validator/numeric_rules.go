package validator

import "reflect"

var numberGuard = Kinds("number",
	reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
	reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
	reflect.Float32, reflect.Float64,
)

type numberConfig struct {
	kind    any
	min     any
	max     any
	among   any
	exclude any
}

// NumberOption configures a number validator.
type NumberOption func(*numberConfig)

// IntegersOnly rejects floating point values.
func IntegersOnly() NumberOption {
	return func(c *numberConfig) { c.kind = "integer" }
}

// FloatsOnly rejects integer values.
func FloatsOnly() NumberOption {
	return func(c *numberConfig) { c.kind = "float" }
}

// MinValue requires the value to be greater than or equal to min.
func MinValue[T Numeric](min T) NumberOption {
	return func(c *numberConfig) { c.min = min }
}

// MaxValue requires the value to be less than or equal to max.
func MaxValue[T Numeric](max T) NumberOption {
	return func(c *numberConfig) { c.max = max }
}

// AmongValues requires the value to equal one of values.
func AmongValues[T Numeric](values ...T) NumberOption {
	return func(c *numberConfig) { c.among = toAnySlice(values) }
}

// ExcludeValues rejects values equal to any of values.
func ExcludeValues[T Numeric](values ...T) NumberOption {
	return func(c *numberConfig) { c.exclude = toAnySlice(values) }
}

// NewNumber builds a validator for Go numbers. Facets run in the order
// kind, min, max, among, exclude.
func NewNumber(opts ...NumberOption) (*Composite, error) {
	cfg := numberConfig{kind: Unset, min: Unset, max: Unset, among: Unset, exclude: Unset}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.min != Unset && cfg.max != Unset {
		if c, ok := compareNumbers(cfg.min, cfg.max); !ok || c > 0 {
			return nil, constructionError("number", "min value %v can't be greater than max value %v", cfg.min, cfg.max)
		}
	}

	return NewComposite("number", numberGuard,
		Checker{Name: "kind", Check: checkNumberKind, Args: []any{cfg.kind}},
		Checker{Name: "min_value", Check: checkMinValue, Args: []any{cfg.min}},
		Checker{Name: "max_value", Check: checkMaxValue, Args: []any{cfg.max}},
		Checker{Name: "among", Check: checkAmong, Args: []any{cfg.among}},
		Checker{Name: "exclude", Check: checkExclude, Args: []any{cfg.exclude}},
	), nil
}

// MustNumber is like NewNumber but panics on a configuration error.
func MustNumber(opts ...NumberOption) *Composite {
	v, err := NewNumber(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func checkNumberKind(value any, args ...any) (Outcome, error) {
	switch args[0] {
	case "integer":
		if !isInteger(value) {
			return Fail("must be an integer, got %T", value), nil
		}
	case "float":
		if isInteger(value) {
			return Fail("must be a floating point number, got %T", value), nil
		}
	}
	return Pass(), nil
}

func checkMinValue(value any, args ...any) (Outcome, error) {
	if c, ok := compareNumbers(value, args[0]); !ok || c < 0 {
		return Fail("must be at least %v, got %v", args[0], value), nil
	}
	return Pass(), nil
}

func checkMaxValue(value any, args ...any) (Outcome, error) {
	if c, ok := compareNumbers(value, args[0]); !ok || c > 0 {
		return Fail("must be at most %v, got %v", args[0], value), nil
	}
	return Pass(), nil
}

func toAnySlice[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
