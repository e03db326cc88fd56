package spec

import (
	"github.com/dmitrymomot/contractkit/pkg/validator"
)

// Match reports whether value satisfies at least one of alts. Alternatives
// are tried in order and the outcome of the first match is returned as is,
// warnings included. An empty list accepts everything.
//
// A hard error from a predicate or a nested schema does not stop matching:
// later alternatives are still tried, and the first hard error is returned
// only when none of them matches.
func Match(value any, alts ...Spec) (validator.Outcome, error) {
	if len(alts) == 0 {
		return validator.Pass(), nil
	}

	var hard error
	for _, alt := range alts {
		out, err := matchOne(value, alt)
		if err != nil {
			if hard == nil {
				hard = err
			}
			continue
		}
		if out.Status {
			return out, nil
		}
	}
	if hard != nil {
		return validator.Outcome{}, hard
	}

	return validator.Fail("value %v of type %T matches none of %s", value, value, Describe(alts...)), nil
}

func matchOne(value any, alt Spec) (validator.Outcome, error) {
	switch a := alt.(type) {
	case TypeSpec:
		if validator.InstanceOf(value, a.Types...) {
			return validator.Pass(), nil
		}
		return validator.Fail("expected %s, got %T", a, value), nil
	case LiteralSpec:
		if validator.Equal(value, a.Value) {
			return validator.Pass(), nil
		}
		return validator.Fail("expected %s, got %v", a, value), nil
	case PredicateSpec:
		if a.Predicate == nil {
			return validator.Fail("nil predicate"), nil
		}
		return a.Predicate.Validate(value)
	case SchemaSpec:
		if a.Schema == nil {
			return validator.Fail("nil schema"), nil
		}
		return a.Schema.Validate(value)
	case OneOfSpec:
		return Match(value, a.Alternatives...)
	}
	return validator.Fail("unsupported alternative %T", alt), nil
}
