package spec

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/contractkit/pkg/validator"
)

// fieldEntry is one field of a YAML schema document.
type fieldEntry struct {
	Type       string    `yaml:"type"`
	Optional   bool      `yaml:"optional"`
	Nullable   bool      `yaml:"nullable"`
	Values     []any     `yaml:"values"`
	Min        *float64  `yaml:"min"`
	Max        *float64  `yaml:"max"`
	In         yaml.Node `yaml:"in"`
	NotIn      yaml.Node `yaml:"not_in"`
	MinLength  *int      `yaml:"min_length"`
	MaxLength  *int      `yaml:"max_length"`
	Pattern    string    `yaml:"pattern"`
	IgnoreCase bool      `yaml:"ignore_case"`
	Format     string    `yaml:"format"`
	AllowEmpty *bool     `yaml:"allow_empty"`
	MinItems   *int      `yaml:"min_items"`
	MaxItems   *int      `yaml:"max_items"`
	Fields     yaml.Node `yaml:"fields"`
}

var entryKeys = map[string]struct{}{
	"type": {}, "optional": {}, "nullable": {}, "values": {}, "min": {}, "max": {},
	"in": {}, "not_in": {}, "min_length": {}, "max_length": {}, "pattern": {},
	"ignore_case": {}, "format": {}, "allow_empty": {}, "min_items": {}, "max_items": {},
	"fields": {},
}

type document struct {
	Fields yaml.Node `yaml:"fields"`
}

// ParseSchema builds a Schema from a YAML document of the form
//
//	fields:
//	  name:
//	    type: string
//	    pattern: '[A-Za-z]+'
//	  birthyear:
//	    type: int
//	    min: 1890
//	    max: 2020
//	  bio:
//	    type: string
//	    max_length: 1024
//	    nullable: true
//	  address:
//	    optional: true
//	    fields:
//	      city: {type: string}
//
// Field order in the document is the validation order. Supported types are
// string, int (or integer), float, number, bool, list, map, null and any.
// A field with values and no type accepts exactly those literals.
func ParseSchema(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %w", ErrInvalidSchema, err)
	}
	if doc.Fields.Kind == 0 {
		return nil, fmt.Errorf("%w: missing fields mapping", ErrInvalidSchema)
	}
	return schemaFromNode(&doc.Fields, "")
}

// LoadSchema reads a YAML schema document from r.
func LoadSchema(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return ParseSchema(data)
}

// LoadSchemaFile reads a YAML schema document from path.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return ParseSchema(data)
}

func schemaFromNode(node *yaml.Node, prefix string) (*Schema, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %sfields must be a mapping", ErrInvalidSchema, prefix)
	}

	fields := make([]Field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		path := prefix + name

		f, err := fieldFromNode(name, path, node.Content[i+1])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return NewSchema(fields...)
}

func fieldFromNode(name, path string, node *yaml.Node) (Field, error) {
	if node.Kind != yaml.MappingNode {
		return Field{}, fmt.Errorf("%w: field %q must be a mapping", ErrInvalidSchema, path)
	}
	for i := 0; i < len(node.Content); i += 2 {
		if _, ok := entryKeys[node.Content[i].Value]; !ok {
			return Field{}, fmt.Errorf("%w: field %q: unknown key %q", ErrInvalidSchema, path, node.Content[i].Value)
		}
	}

	var entry fieldEntry
	if err := node.Decode(&entry); err != nil {
		return Field{}, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, path, err)
	}

	alts, err := entry.alternatives(path)
	if err != nil {
		return Field{}, err
	}
	// An empty list already accepts nil.
	if entry.Nullable && len(alts) > 0 {
		alts = append(alts, Nil)
	}
	return Field{Name: name, Alternatives: alts, Optional: entry.Optional}, nil
}

func (e fieldEntry) alternatives(path string) ([]Spec, error) {
	fail := func(format string, args ...any) ([]Spec, error) {
		return nil, fmt.Errorf("%w: field %q: %s", ErrInvalidSchema, path, fmt.Sprintf(format, args...))
	}

	if len(e.Values) > 0 {
		if e.Type != "" {
			return fail("values and type are mutually exclusive")
		}
		alts := make([]Spec, len(e.Values))
		for i, v := range e.Values {
			alts[i] = Literal(v)
		}
		return alts, nil
	}

	typ := e.Type
	if typ == "" && e.Fields.Kind != 0 {
		typ = "map"
	}

	switch typ {
	case "", "any":
		return nil, nil
	case "null":
		return []Spec{Nil}, nil
	case "bool":
		return []Spec{Bool}, nil
	case "string":
		return e.stringAlternatives(path)
	case "int", "integer":
		return e.numberAlternatives(path, Integer, validator.IntegersOnly())
	case "float":
		return e.numberAlternatives(path, TypeOf("float", reflect.TypeFor[float32](), reflect.TypeFor[float64]()), validator.FloatsOnly())
	case "number":
		return e.numberAlternatives(path, Number, nil)
	case "list":
		return e.listAlternatives(path)
	case "map":
		if e.Fields.Kind == 0 {
			return []Spec{Func("map", isStringMap)}, nil
		}
		nested, err := schemaFromNode(&e.Fields, path+".")
		if err != nil {
			return nil, err
		}
		return []Spec{Nested(nested)}, nil
	}
	return fail("unknown type %q", e.Type)
}

func (e fieldEntry) stringAlternatives(path string) ([]Spec, error) {
	var opts []validator.StringOption
	if e.MinLength != nil {
		opts = append(opts, validator.MinLength(*e.MinLength))
	}
	if e.MaxLength != nil {
		opts = append(opts, validator.MaxLength(*e.MaxLength))
	}
	if e.In.Kind != 0 {
		var in []string
		if err := e.In.Decode(&in); err != nil {
			return nil, fmt.Errorf("%w: field %q: in: %w", ErrInvalidSchema, path, err)
		}
		if e.IgnoreCase {
			opts = append(opts, validator.AmongStringsFold(in...))
		} else {
			opts = append(opts, validator.AmongStrings(in...))
		}
	}
	if e.NotIn.Kind != 0 {
		var notIn []string
		if err := e.NotIn.Decode(&notIn); err != nil {
			return nil, fmt.Errorf("%w: field %q: not_in: %w", ErrInvalidSchema, path, err)
		}
		opts = append(opts, validator.ExcludeStrings(notIn...))
	}
	if e.Pattern != "" {
		opts = append(opts, validator.MatchPattern(e.Pattern))
		if e.IgnoreCase {
			opts = append(opts, validator.FoldCase())
		}
	}
	switch e.Format {
	case "":
	case "uuid":
		opts = append(opts, validator.UUID())
	case "email":
		opts = append(opts, validator.Email())
	case "url":
		opts = append(opts, validator.URL())
	default:
		return nil, fmt.Errorf("%w: field %q: unknown format %q", ErrInvalidSchema, path, e.Format)
	}

	if len(opts) == 0 {
		return []Spec{String}, nil
	}
	v, err := validator.NewString(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, path, err)
	}
	return []Spec{Pred(v)}, nil
}

func (e fieldEntry) numberAlternatives(path string, base TypeSpec, kind validator.NumberOption) ([]Spec, error) {
	var opts []validator.NumberOption
	if e.Min != nil {
		opts = append(opts, validator.MinValue(*e.Min))
	}
	if e.Max != nil {
		opts = append(opts, validator.MaxValue(*e.Max))
	}
	if e.In.Kind != 0 {
		var in []float64
		if err := e.In.Decode(&in); err != nil {
			return nil, fmt.Errorf("%w: field %q: in: %w", ErrInvalidSchema, path, err)
		}
		opts = append(opts, validator.AmongValues(in...))
	}
	if e.NotIn.Kind != 0 {
		var notIn []float64
		if err := e.NotIn.Decode(&notIn); err != nil {
			return nil, fmt.Errorf("%w: field %q: not_in: %w", ErrInvalidSchema, path, err)
		}
		opts = append(opts, validator.ExcludeValues(notIn...))
	}

	if len(opts) == 0 {
		return []Spec{base}, nil
	}
	if kind != nil {
		opts = append(opts, kind)
	}
	v, err := validator.NewNumber(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, path, err)
	}
	return []Spec{Pred(v)}, nil
}

func (e fieldEntry) listAlternatives(path string) ([]Spec, error) {
	opts := []validator.IterableOption{validator.SequencesOnly()}
	if e.AllowEmpty != nil {
		opts = append(opts, validator.AllowEmpty(*e.AllowEmpty))
	}
	if e.MinItems != nil {
		opts = append(opts, validator.MinItems(*e.MinItems))
	}
	if e.MaxItems != nil {
		opts = append(opts, validator.MaxItems(*e.MaxItems))
	}
	if e.Min != nil {
		opts = append(opts, validator.ElementMin(*e.Min))
	}
	if e.Max != nil {
		opts = append(opts, validator.ElementMax(*e.Max))
	}

	v, err := validator.NewIterable(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, path, err)
	}
	return []Spec{Pred(v)}, nil
}

func isStringMap(value any) bool {
	return mappingGuard.Allow(value)
}
