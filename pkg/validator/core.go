package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// Outcome is the verdict of a single validation attempt.
// A warning is a pass (Status is true) that should still be reported.
type Outcome struct {
	Status  bool
	Warning bool
	Message string
}

// Pass returns a successful outcome.
func Pass() Outcome {
	return Outcome{Status: true}
}

// Fail returns a failed outcome with a formatted message.
func Fail(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...)}
}

// Warn returns a successful outcome flagged for external reporting.
func Warn(format string, args ...any) Outcome {
	return Outcome{Status: true, Warning: true, Message: fmt.Sprintf(format, args...)}
}

// Predicate maps a value to an Outcome.
// A non-nil error is a hard failure that aborts the whole validation pass,
// while a soft failure is reported through Outcome.Status.
type Predicate interface {
	Validate(value any) (Outcome, error)
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc func(value any) Outcome

func (f PredicateFunc) Validate(value any) (Outcome, error) {
	return f(value), nil
}

// Check adapts a boolean test to the Predicate interface.
func Check(name string, fn func(value any) bool) Predicate {
	return namedPredicate{
		name: name,
		fn: func(value any) Outcome {
			if fn(value) {
				return Pass()
			}
			return Fail("%s: rejected %v", name, value)
		},
	}
}

type namedPredicate struct {
	name string
	fn   PredicateFunc
}

func (p namedPredicate) Validate(value any) (Outcome, error) { return p.fn(value), nil }
func (p namedPredicate) String() string                      { return p.name }

// CheckFunc is a single facet of a composite predicate.
// It receives the value under validation followed by the arguments bound
// to the facet at construction.
type CheckFunc func(value any, args ...any) (Outcome, error)

// Checker binds a CheckFunc to its configuration arguments.
type Checker struct {
	Name  string
	Check CheckFunc
	Args  []any
}

type unset struct{}

func (unset) String() string { return "<unset>" }

// Unset marks a facet argument that was not configured.
// A Checker whose first argument is Unset (or nil) never runs.
var Unset any = unset{}

func (c Checker) active() bool {
	if c.Check == nil || len(c.Args) == 0 {
		return false
	}
	return c.Args[0] != nil && c.Args[0] != Unset
}

// TypeGuard is the coarse type constraint checked before any facet runs.
type TypeGuard struct {
	Name  string
	Allow func(value any) bool
}

// Kinds builds a TypeGuard that accepts values of the given reflect kinds.
func Kinds(name string, kinds ...reflect.Kind) *TypeGuard {
	return &TypeGuard{
		Name: name,
		Allow: func(value any) bool {
			if value == nil {
				return false
			}
			k := reflect.TypeOf(value).Kind()
			for _, allowed := range kinds {
				if k == allowed {
					return true
				}
			}
			return false
		},
	}
}

// Composite evaluates a fixed list of facets with AND semantics.
// It is immutable once built and safe for concurrent use.
type Composite struct {
	name     string
	guard    *TypeGuard
	checkers []Checker
}

// NewComposite builds a composite predicate. Checkers without a configured
// primary argument are dropped here and never evaluated.
func NewComposite(name string, guard *TypeGuard, checkers ...Checker) *Composite {
	active := make([]Checker, 0, len(checkers))
	for _, c := range checkers {
		if c.active() {
			active = append(active, c)
		}
	}
	return &Composite{name: name, guard: guard, checkers: active}
}

func (c *Composite) String() string {
	if len(c.checkers) == 0 {
		return c.name
	}
	return fmt.Sprintf("%s(%s)", c.name, strings.Join(c.Facets(), ", "))
}

// Facets returns the names of the active checkers in registration order.
func (c *Composite) Facets() []string {
	names := make([]string, len(c.checkers))
	for i, chk := range c.checkers {
		names[i] = chk.Name
	}
	return names
}

// Validate runs the type guard and then every active facet in registration
// order, stopping at the first failure. Warning messages are joined and
// returned when nothing fails afterwards.
func (c *Composite) Validate(value any) (Outcome, error) {
	if c.guard != nil && !c.guard.Allow(value) {
		return Fail("%s: expected %s, got %T", c.name, c.guard.Name, value), nil
	}

	var (
		warned   bool
		warnings []string
	)
	for _, chk := range c.checkers {
		out, err := chk.Check(value, chk.Args...)
		if err != nil {
			return Outcome{}, err
		}
		if !out.Status {
			if out.Message == "" {
				out.Message = fmt.Sprintf("%s: %s check failed", c.name, chk.Name)
			}
			return out, nil
		}
		if out.Warning {
			warned = true
			if out.Message != "" {
				warnings = append(warnings, out.Message)
			}
		}
	}

	if warned {
		return Outcome{Status: true, Warning: true, Message: strings.Join(warnings, "; ")}, nil
	}
	return Pass(), nil
}
