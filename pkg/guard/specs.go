package guard

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/contractkit/pkg/spec"
)

// ArgSpec declares the accepted alternatives for one parameter, either by
// position (Arg) or by name (Kwarg).
type ArgSpec struct {
	name string
	alts []spec.Spec
}

// Arg declares the alternatives for the next positional parameter.
func Arg(alts ...spec.Spec) ArgSpec {
	return ArgSpec{alts: alts}
}

// Kwarg declares the alternatives for the parameter called name. A name the
// function does not declare is a keyword-only slot: it is checked when
// supplied and skipped otherwise.
func Kwarg(name string, alts ...spec.Spec) ArgSpec {
	return ArgSpec{name: name, alts: alts}
}

// ParameterSpec is the resolved declaration for one parameter, built once
// when a guard is attached and never changed afterwards.
type ParameterSpec struct {
	Name         string
	Position     int // index in the positional sequence, -1 for keyword-only
	Alternatives []spec.Spec
	Optional     bool
	KeywordOnly  bool
	Default      any
	HasDefault   bool
}

// ordinal returns the 1-based position used in error messages. Keyword-only
// specs fall back to their index in the resolved spec list.
func (p ParameterSpec) ordinal(index int) int {
	if p.Position >= 0 {
		return p.Position + 1
	}
	return index + 1
}

// BuildSpecs resolves the declarations against fn's parameters. Positional
// declarations map to parameters in order and, past the declared
// parameters, to the variadic tail. A parameter with a default is optional
// and its default is added to a non-empty alternatives list, so relying on
// the default always validates.
//
// The result lists positional specs in position order followed by
// keyword-only specs in declaration order.
func BuildSpecs(fn Function, decls ...ArgSpec) ([]ParameterSpec, error) {
	var (
		positional []ParameterSpec
		keywords   []ParameterSpec
		byPosition = make(map[int]string)
		byName     = make(map[string]struct{})
	)

	pos := 0
	for _, d := range decls {
		if err := spec.Verify(d.alts...); err != nil {
			return nil, fmt.Errorf("%w: %s(): %w", ErrInvalidDeclaration, fn.Name, err)
		}

		if d.name == "" {
			if name, taken := byPosition[pos]; taken {
				return nil, fmt.Errorf("%w: %s(): parameter %q declared twice", ErrInvalidDeclaration, fn.Name, name)
			}
			ps, err := positionalSpec(fn, pos, d.alts)
			if err != nil {
				return nil, err
			}
			byPosition[pos] = ps.Name
			byName[ps.Name] = struct{}{}
			positional = append(positional, ps)
			pos++
			continue
		}

		if _, dup := byName[d.name]; dup {
			return nil, fmt.Errorf("%w: %s(): parameter %q declared twice", ErrInvalidDeclaration, fn.Name, d.name)
		}
		byName[d.name] = struct{}{}

		idx := fn.paramIndex(d.name)
		if idx < 0 {
			keywords = append(keywords, ParameterSpec{
				Name:         d.name,
				Position:     -1,
				Alternatives: slices.Clone(d.alts),
				Optional:     true,
				KeywordOnly:  true,
			})
			continue
		}
		if name, taken := byPosition[idx]; taken {
			return nil, fmt.Errorf("%w: %s(): parameter %q declared twice", ErrInvalidDeclaration, fn.Name, name)
		}
		byPosition[idx] = d.name
		positional = append(positional, paramSpec(fn.Params[idx], idx, d.alts))
	}

	slices.SortStableFunc(positional, func(a, b ParameterSpec) int { return a.Position - b.Position })
	return append(positional, keywords...), nil
}

func positionalSpec(fn Function, pos int, alts []spec.Spec) (ParameterSpec, error) {
	if pos < len(fn.Params) {
		return paramSpec(fn.Params[pos], pos, alts), nil
	}
	if !fn.Variadic {
		return ParameterSpec{}, fmt.Errorf("%w: %s(): %d positional specs for %d parameters",
			ErrInvalidDeclaration, fn.Name, pos+1, len(fn.Params))
	}
	return ParameterSpec{
		Name:         fmt.Sprintf("args[%d]", pos-len(fn.Params)),
		Position:     pos,
		Alternatives: slices.Clone(alts),
		Optional:     true,
	}, nil
}

func paramSpec(p Param, pos int, alts []spec.Spec) ParameterSpec {
	ps := ParameterSpec{
		Name:         p.Name,
		Position:     pos,
		Alternatives: slices.Clone(alts),
	}
	if p.HasDefault {
		ps.Optional = true
		ps.Default = p.Default
		ps.HasDefault = true
		if len(ps.Alternatives) > 0 {
			ps.Alternatives = append(ps.Alternatives, spec.Literal(p.Default))
		}
	}
	return ps
}
