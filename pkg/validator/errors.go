package validator

import (
	"errors"
	"fmt"
)

// ErrConstruction is returned when a validator is configured inconsistently.
var ErrConstruction = errors.New("invalid validator configuration")

// ConstructionError describes a configuration problem detected while a
// validator is being built. It never surfaces at validation time.
type ConstructionError struct {
	Validator string
	Reason    string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConstruction, e.Validator, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return ErrConstruction
}

func constructionError(validator, format string, args ...any) error {
	return &ConstructionError{Validator: validator, Reason: fmt.Sprintf(format, args...)}
}

// IsConstructionError reports whether err was raised while building a validator.
func IsConstructionError(err error) bool {
	return errors.Is(err, ErrConstruction)
}
