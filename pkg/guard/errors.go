package guard

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/contractkit/pkg/spec"
)

var (
	ErrArgumentCount      = errors.New("invalid number or position of arguments")
	ErrArgumentValidation = errors.New("argument validation failed")
	ErrInvalidReturnType  = errors.New("invalid return type")
	ErrInvalidDeclaration = errors.New("invalid contract declaration")
	ErrNilFunction        = errors.New("function has no implementation")
)

// ArgumentCountError is returned when a required parameter received no
// value by position, by name or through a default.
type ArgumentCountError struct {
	Function  string
	Parameter string
	Ordinal   int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("invalid number or position of arguments for %s(): missing %s argument %q",
		e.Function, Ordinal(e.Ordinal), e.Parameter)
}

func (e *ArgumentCountError) Unwrap() error {
	return ErrArgumentCount
}

// ArgumentValidationError is returned when a supplied argument matches none
// of its accepted alternatives. Err is set when matching itself failed, for
// example on a schema key mismatch.
type ArgumentValidationError struct {
	Function     string
	Parameter    string
	Ordinal      int
	Value        any
	Alternatives []spec.Spec
	Reason       string
	Err          error
}

func (e *ArgumentValidationError) Error() string {
	msg := fmt.Sprintf("the %s argument of %s() is not in %s",
		Ordinal(e.Ordinal), e.Function, spec.Describe(e.Alternatives...))
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ArgumentValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrArgumentValidation, e.Err}
	}
	return []error{ErrArgumentValidation}
}

// InvalidReturnTypeError is returned when a function's result matches none
// of its accepted alternatives.
type InvalidReturnTypeError struct {
	Function     string
	Value        any
	Alternatives []spec.Spec
	Reason       string
	Err          error
}

func (e *InvalidReturnTypeError) Error() string {
	msg := fmt.Sprintf("invalid return type %T for %s(): expected %s",
		e.Value, e.Function, spec.Describe(e.Alternatives...))
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidReturnTypeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidReturnType, e.Err}
	}
	return []error{ErrInvalidReturnType}
}
