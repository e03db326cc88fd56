package guard

// Source records where a bound value came from.
type Source int

const (
	// Unbound marks an optional slot with no value; it is not validated.
	Unbound Source = iota
	// FromPositional marks a value taken from the positional sequence.
	FromPositional
	// FromNamed marks a value taken from the named arguments.
	FromNamed
	// FromDefault marks a declared default; it is not validated.
	FromDefault
)

func (s Source) String() string {
	switch s {
	case FromPositional:
		return "positional"
	case FromNamed:
		return "named"
	case FromDefault:
		return "default"
	default:
		return "unbound"
	}
}

// Supplied reports whether the caller provided the value.
func (s Source) Supplied() bool {
	return s == FromPositional || s == FromNamed
}

// Binding is the resolution of one ParameterSpec for a single call.
type Binding struct {
	Name    string
	Value   any
	Source  Source
	Ordinal int
}

// BindingResult holds one Binding per spec, in spec order. It is built per
// call and not retained.
type BindingResult struct {
	bindings []Binding
}

// Bindings returns the bindings in spec order.
func (r BindingResult) Bindings() []Binding {
	return r.bindings
}

// Lookup returns the binding for name.
func (r BindingResult) Lookup(name string) (Binding, bool) {
	for _, b := range r.bindings {
		if b.Name == name {
			return b, true
		}
	}
	return Binding{}, false
}

// Values returns supplied and defaulted values by name. Unbound slots are
// left out.
func (r BindingResult) Values() map[string]any {
	out := make(map[string]any, len(r.bindings))
	for _, b := range r.bindings {
		if b.Source != Unbound {
			out[b.Name] = b.Value
		}
	}
	return out
}

// Bind resolves every spec against the call's arguments. For each spec, in
// order: a positional argument at the spec's position wins, then a named
// argument with the spec's name, then the declared default; an optional
// spec without a default is left unbound. Anything else is a missing
// argument and yields *ArgumentCountError.
//
// Keyword-only specs never bind positionally. Bind does not modify specs.
func Bind(function string, specs []ParameterSpec, args []any, named map[string]any) (BindingResult, error) {
	result := BindingResult{bindings: make([]Binding, 0, len(specs))}

	for i, ps := range specs {
		b := Binding{Name: ps.Name, Ordinal: ps.ordinal(i)}

		switch v, ok := named[ps.Name]; {
		case !ps.KeywordOnly && ps.Position >= 0 && ps.Position < len(args):
			b.Value, b.Source = args[ps.Position], FromPositional
		case ok:
			b.Value, b.Source = v, FromNamed
		case ps.HasDefault:
			b.Value, b.Source = ps.Default, FromDefault
		case ps.Optional:
			b.Source = Unbound
		default:
			return BindingResult{}, &ArgumentCountError{
				Function:  function,
				Parameter: ps.Name,
				Ordinal:   b.Ordinal,
			}
		}

		result.bindings = append(result.bindings, b)
	}

	return result, nil
}
