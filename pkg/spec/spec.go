package spec

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrymomot/contractkit/pkg/validator"
)

// Spec is one accepted alternative for a value. The set of variants is
// closed: TypeSpec, LiteralSpec, PredicateSpec, SchemaSpec and OneOfSpec.
type Spec interface {
	fmt.Stringer
	isSpec()
}

// TypeSpec accepts values whose dynamic type is one of Types, or implements
// one of them when the type is an interface.
type TypeSpec struct {
	Name  string
	Types []reflect.Type
}

// LiteralSpec accepts values equal to Value. Numbers compare by value
// across Go kinds.
type LiteralSpec struct {
	Value any
}

// PredicateSpec forwards the verdict of a validator.Predicate unchanged.
type PredicateSpec struct {
	Predicate validator.Predicate
}

// SchemaSpec validates a string-keyed map against a nested Schema.
type SchemaSpec struct {
	Schema *Schema
}

// OneOfSpec accepts values that match any of its nested alternatives.
type OneOfSpec struct {
	Alternatives []Spec
}

func (TypeSpec) isSpec()      {}
func (LiteralSpec) isSpec()   {}
func (PredicateSpec) isSpec() {}
func (SchemaSpec) isSpec()    {}
func (OneOfSpec) isSpec()     {}

// Type accepts values of type T.
func Type[T any]() TypeSpec {
	t := reflect.TypeFor[T]()
	return TypeSpec{Name: t.String(), Types: []reflect.Type{t}}
}

// TypeOf accepts values of any of the given types under a display name.
func TypeOf(name string, types ...reflect.Type) TypeSpec {
	return TypeSpec{Name: name, Types: types}
}

// Literal accepts values equal to v.
func Literal(v any) LiteralSpec {
	return LiteralSpec{Value: v}
}

// Pred wraps a predicate, typically a validator.Composite or a *Schema.
func Pred(p validator.Predicate) PredicateSpec {
	return PredicateSpec{Predicate: p}
}

// Func wraps a boolean test under a display name.
func Func(name string, fn func(value any) bool) PredicateSpec {
	return PredicateSpec{Predicate: validator.Check(name, fn)}
}

// Nested validates a map against s.
func Nested(s *Schema) SchemaSpec {
	return SchemaSpec{Schema: s}
}

// OneOf groups alternatives into a single one.
func OneOf(alts ...Spec) OneOfSpec {
	return OneOfSpec{Alternatives: alts}
}

var (
	String = Type[string]()
	Bool   = Type[bool]()
	Int    = Type[int]()
	Float  = Type[float64]()
	Error  = Type[error]()
	Nil    = Literal(nil)

	// Any accepts every non-nil value.
	Any = TypeOf("any", reflect.TypeFor[any]())

	Map   = TypeOf("map[string]any", reflect.TypeFor[map[string]any]())
	Slice = TypeOf("[]any", reflect.TypeFor[[]any]())

	Integer = TypeOf("integer", integerTypes...)
	Number  = TypeOf("number", append(slices.Clone(integerTypes),
		reflect.TypeFor[float32](), reflect.TypeFor[float64]())...)
)

var integerTypes = []reflect.Type{
	reflect.TypeFor[int](), reflect.TypeFor[int8](), reflect.TypeFor[int16](),
	reflect.TypeFor[int32](), reflect.TypeFor[int64](),
	reflect.TypeFor[uint](), reflect.TypeFor[uint8](), reflect.TypeFor[uint16](),
	reflect.TypeFor[uint32](), reflect.TypeFor[uint64](),
}

func (s TypeSpec) String() string {
	if s.Name != "" {
		return s.Name
	}
	names := make([]string, len(s.Types))
	for i, t := range s.Types {
		names[i] = fmt.Sprint(t)
	}
	return strings.Join(names, " | ")
}

func (s LiteralSpec) String() string {
	switch v := s.Value.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (s PredicateSpec) String() string {
	if st, ok := s.Predicate.(fmt.Stringer); ok {
		return st.String()
	}
	return fmt.Sprintf("%T", s.Predicate)
}

func (s SchemaSpec) String() string {
	return s.Schema.String()
}

func (s OneOfSpec) String() string {
	return "one of " + Describe(s.Alternatives...)
}

// Describe renders an alternatives list for diagnostics, e.g. [int, "auto", nil].
func Describe(alts ...Spec) string {
	parts := make([]string, len(alts))
	for i, alt := range alts {
		if alt == nil {
			parts[i] = "<nil spec>"
			continue
		}
		parts[i] = alt.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// validateSpecs reports alternatives that can never be evaluated.
func validateSpecs(alts []Spec) error {
	for i, alt := range alts {
		switch a := alt.(type) {
		case nil:
			return fmt.Errorf("alternative %d is nil", i)
		case TypeSpec:
			if len(a.Types) == 0 {
				return fmt.Errorf("alternative %d: type spec %q has no types", i, a.Name)
			}
		case PredicateSpec:
			if a.Predicate == nil {
				return fmt.Errorf("alternative %d: nil predicate", i)
			}
		case SchemaSpec:
			if a.Schema == nil {
				return fmt.Errorf("alternative %d: nil schema", i)
			}
		case OneOfSpec:
			if err := validateSpecs(a.Alternatives); err != nil {
				return fmt.Errorf("alternative %d: %w", i, err)
			}
		}
	}
	return nil
}

// Verify checks that every alternative can be evaluated. NewSchema and the
// guard package run it on every declaration.
func Verify(alts ...Spec) error {
	if err := validateSpecs(alts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return nil
}
