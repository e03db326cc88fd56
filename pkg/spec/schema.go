package spec

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrymomot/contractkit/pkg/validator"
)

// Field declares one schema key and its accepted alternatives.
// An optional field may be left out of the map entirely; when present it
// must match like any other field. Add Nil to the alternatives to accept an
// explicit nil value.
type Field struct {
	Name         string
	Alternatives []Spec
	Optional     bool
}

// Key declares a required field.
func Key(name string, alts ...Spec) Field {
	return Field{Name: name, Alternatives: alts}
}

// OptionalKey declares a field that may be absent.
func OptionalKey(name string, alts ...Spec) Field {
	return Field{Name: name, Alternatives: alts, Optional: true}
}

// Schema validates string-keyed maps. The map's key set must equal the
// declared keys (optional keys may be missing); a mismatch is returned as a
// *SchemaKeyMismatchError. Fields are then matched in declaration order and
// the first non-compliant field fails the whole map.
//
// A Schema is itself a validator.Predicate, so it can be used as an
// alternative anywhere, including inside another schema.
type Schema struct {
	*validator.Composite
	fields fieldList
}

var mappingGuard = &validator.TypeGuard{
	Name: "map with string keys",
	Allow: func(value any) bool {
		if value == nil {
			return false
		}
		t := reflect.TypeOf(value)
		return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
	},
}

// NewSchema builds a schema from its fields. Empty or duplicate field names
// and alternatives that can never be evaluated are reported as
// ErrInvalidSchema.
func NewSchema(fields ...Field) (*Schema, error) {
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", ErrInvalidSchema, i)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: field %q declared twice", ErrInvalidSchema, f.Name)
		}
		seen[f.Name] = struct{}{}
		if err := validateSpecs(f.Alternatives); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidSchema, f.Name, err)
		}
	}

	fl := make(fieldList, len(fields))
	for i, f := range fields {
		f.Alternatives = slices.Clone(f.Alternatives)
		fl[i] = f
	}

	return &Schema{
		Composite: validator.NewComposite("schema", mappingGuard,
			validator.Checker{Name: "required_keys", Check: fl.requiredKeys, Args: []any{fl}},
			validator.Checker{Name: "compliance", Check: fl.compliance, Args: []any{fl}},
		),
		fields: fl,
	}, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Keys returns the declared field names in declaration order.
func (s *Schema) Keys() []string {
	return s.fields.names()
}

// Fields returns a copy of the declared fields.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

func (s *Schema) String() string {
	if s == nil {
		return "schema<nil>"
	}
	return "schema{" + strings.Join(s.fields.names(), ", ") + "}"
}

type fieldList []Field

func (fl fieldList) names() []string {
	names := make([]string, len(fl))
	for i, f := range fl {
		names[i] = f.Name
	}
	return names
}

// entries copies a string-keyed map of any concrete type into map[string]any.
func entries(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	rv := reflect.ValueOf(value)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out
}

func (fl fieldList) requiredKeys(value any, _ ...any) (validator.Outcome, error) {
	m := entries(value)

	declared := make(map[string]struct{}, len(fl))
	var missing []string
	for _, f := range fl {
		declared[f.Name] = struct{}{}
		if _, ok := m[f.Name]; !ok && !f.Optional {
			missing = append(missing, f.Name)
		}
	}

	actual := make([]string, 0, len(m))
	var unexpected []string
	for k := range m {
		actual = append(actual, k)
		if _, ok := declared[k]; !ok {
			unexpected = append(unexpected, k)
		}
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		return validator.Pass(), nil
	}

	slices.Sort(actual)
	slices.Sort(unexpected)
	return validator.Outcome{}, &SchemaKeyMismatchError{
		Expected:   fl.names(),
		Actual:     actual,
		Missing:    missing,
		Unexpected: unexpected,
	}
}

func (fl fieldList) compliance(value any, _ ...any) (validator.Outcome, error) {
	m := entries(value)

	var warnings []string
	for _, f := range fl {
		v, ok := m[f.Name]
		if !ok {
			continue
		}
		out, err := Match(v, f.Alternatives...)
		if err != nil {
			return validator.Outcome{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		if !out.Status {
			return validator.Fail("field %q: %s", f.Name, out.Message), nil
		}
		if out.Warning {
			warnings = append(warnings, fmt.Sprintf("field %q: %s", f.Name, out.Message))
		}
	}

	if len(warnings) > 0 {
		return validator.Warn("%s", strings.Join(warnings, "; ")), nil
	}
	return validator.Pass(), nil
}
