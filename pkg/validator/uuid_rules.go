package validator

import (
	"github.com/google/uuid"
)

// validUUID accepts only the canonical 36 character form. Length and hyphen
// positions are checked before parsing.
func validUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func checkUUID(value any, _ ...any) (Outcome, error) {
	s, _ := asString(value)
	if !validUUID(s) {
		return Fail("must be a valid UUID, got %q", s), nil
	}
	return Pass(), nil
}
