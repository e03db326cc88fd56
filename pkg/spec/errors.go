package spec

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaKeyMismatch = errors.New("schema key mismatch")
	ErrInvalidSchema     = errors.New("invalid schema")
	ErrInvalidSpec       = errors.New("invalid accepted alternative")
)

// SchemaKeyMismatchError is returned when a map's key set differs from the
// keys declared by a schema. Missing lists required keys that were absent;
// Unexpected lists keys the schema does not declare.
type SchemaKeyMismatchError struct {
	Expected   []string
	Actual     []string
	Missing    []string
	Unexpected []string
}

func (e *SchemaKeyMismatchError) Error() string {
	msg := fmt.Sprintf("%s: expected keys %v, got %v", ErrSchemaKeyMismatch, e.Expected, e.Actual)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(", missing %v", e.Missing)
	}
	if len(e.Unexpected) > 0 {
		msg += fmt.Sprintf(", unexpected %v", e.Unexpected)
	}
	return msg
}

func (e *SchemaKeyMismatchError) Unwrap() error {
	return ErrSchemaKeyMismatch
}
