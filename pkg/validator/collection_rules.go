package validator

import (
	"reflect"
)

var iterableGuard = Kinds("slice, array or map", reflect.Slice, reflect.Array, reflect.Map)

type iterableConfig struct {
	sequence   any
	allowEmpty any
	elemTypes  any
	elemMin    any
	elemMax    any
	minItems   any
	maxItems   any
}

// IterableOption configures an iterable validator.
type IterableOption func(*iterableConfig)

// SequencesOnly rejects maps, leaving slices and arrays.
func SequencesOnly() IterableOption {
	return func(c *iterableConfig) { c.sequence = true }
}

// AllowEmpty controls empty collections: false rejects them, true accepts
// them with a warning.
func AllowEmpty(allowed bool) IterableOption {
	return func(c *iterableConfig) { c.allowEmpty = allowed }
}

// ElementTypes requires every element to be an instance of one of types.
func ElementTypes(types ...reflect.Type) IterableOption {
	return func(c *iterableConfig) {
		if len(types) > 0 {
			c.elemTypes = types
		}
	}
}

// ElementsOf is ElementTypes for a single type parameter.
func ElementsOf[T any]() IterableOption {
	return ElementTypes(reflect.TypeFor[T]())
}

// ElementMin requires every element to be a number not below min.
func ElementMin[T Numeric](min T) IterableOption {
	return func(c *iterableConfig) { c.elemMin = min }
}

// ElementMax requires every element to be a number not above max.
func ElementMax[T Numeric](max T) IterableOption {
	return func(c *iterableConfig) { c.elemMax = max }
}

// MinItems requires at least n elements.
func MinItems(n int) IterableOption {
	return func(c *iterableConfig) { c.minItems = n }
}

// MaxItems allows at most n elements.
func MaxItems(n int) IterableOption {
	return func(c *iterableConfig) { c.maxItems = n }
}

// NewIterable builds a validator for slices, arrays and maps. Map values
// are checked through their keys. Facets run in the order sequence,
// allow_empty, element_types, element_min, element_max, min_items, max_items.
func NewIterable(opts ...IterableOption) (*Composite, error) {
	cfg := iterableConfig{
		sequence:   Unset,
		allowEmpty: Unset,
		elemTypes:  Unset,
		elemMin:    Unset,
		elemMax:    Unset,
		minItems:   Unset,
		maxItems:   Unset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.elemMin != Unset && cfg.elemMax != Unset {
		if c, ok := compareNumbers(cfg.elemMin, cfg.elemMax); !ok || c > 0 {
			return nil, constructionError("iterable", "min value %v can't be greater than max value %v", cfg.elemMin, cfg.elemMax)
		}
	}
	if minItems, ok := cfg.minItems.(int); ok {
		if maxItems, ok := cfg.maxItems.(int); ok && minItems > maxItems {
			return nil, constructionError("iterable", "min items %d can't be greater than max items %d", minItems, maxItems)
		}
	}

	return NewComposite("iterable", iterableGuard,
		Checker{Name: "sequence", Check: checkSequence, Args: []any{cfg.sequence}},
		Checker{Name: "allow_empty", Check: checkAllowEmpty, Args: []any{cfg.allowEmpty}},
		Checker{Name: "element_types", Check: checkElementTypes, Args: []any{cfg.elemTypes}},
		Checker{Name: "element_min", Check: checkElementMin, Args: []any{cfg.elemMin}},
		Checker{Name: "element_max", Check: checkElementMax, Args: []any{cfg.elemMax}},
		Checker{Name: "min_items", Check: checkMinItems, Args: []any{cfg.minItems}},
		Checker{Name: "max_items", Check: checkMaxItems, Args: []any{cfg.maxItems}},
	), nil
}

// MustIterable is like NewIterable but panics on a configuration error.
func MustIterable(opts ...IterableOption) *Composite {
	v, err := NewIterable(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// elements returns slice and array items, or map keys.
func elements(value any) []any {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		out := make([]any, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, iter.Key().Interface())
		}
		return out
	}
	return nil
}

func length(value any) int {
	return reflect.ValueOf(value).Len()
}

func checkSequence(value any, _ ...any) (Outcome, error) {
	if reflect.TypeOf(value).Kind() == reflect.Map {
		return Fail("expected slice or array, got %T", value), nil
	}
	return Pass(), nil
}

func checkAllowEmpty(value any, args ...any) (Outcome, error) {
	if length(value) != 0 {
		return Pass(), nil
	}
	if allowed, _ := args[0].(bool); allowed {
		return Warn("collection is empty"), nil
	}
	return Fail("must not be empty"), nil
}

func checkElementTypes(value any, args ...any) (Outcome, error) {
	types, _ := args[0].([]reflect.Type)
	for i, el := range elements(value) {
		if !InstanceOf(el, types...) {
			return Fail("element %d: expected %v, got %T", i, types, el), nil
		}
	}
	return Pass(), nil
}

func checkElementMin(value any, args ...any) (Outcome, error) {
	for i, el := range elements(value) {
		if c, ok := compareNumbers(el, args[0]); !ok || c < 0 {
			return Fail("element %d: must be at least %v, got %v", i, args[0], el), nil
		}
	}
	return Pass(), nil
}

func checkElementMax(value any, args ...any) (Outcome, error) {
	for i, el := range elements(value) {
		if c, ok := compareNumbers(el, args[0]); !ok || c > 0 {
			return Fail("element %d: must be at most %v, got %v", i, args[0], el), nil
		}
	}
	return Pass(), nil
}

func checkMinItems(value any, args ...any) (Outcome, error) {
	min := args[0].(int)
	if n := length(value); n < min {
		return Fail("must have at least %d items, got %d", min, n), nil
	}
	return Pass(), nil
}

func checkMaxItems(value any, args ...any) (Outcome, error) {
	max := args[0].(int)
	if n := length(value); n > max {
		return Fail("must have at most %d items, got %d", max, n), nil
	}
	return Pass(), nil
}
