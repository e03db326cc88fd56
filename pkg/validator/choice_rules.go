package validator

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
)

func checkAmong(value any, args ...any) (Outcome, error) {
	allowed, _ := args[0].([]any)
	if !containsValue(allowed, value) {
		return Fail("must be one of: %v, got %v", allowed, value), nil
	}
	return Pass(), nil
}

func checkExclude(value any, args ...any) (Outcome, error) {
	forbidden, _ := args[0].([]any)
	if containsValue(forbidden, value) {
		return Fail("must not be one of: %v, got %v", forbidden, value), nil
	}
	return Pass(), nil
}

// foldSet holds case-folded strings for case-insensitive membership.
type foldSet struct {
	original []string
	folded   []string
}

// folder is stateless and safe for concurrent use.
var folder = cases.Fold()

func newFoldSet(values []string) foldSet {
	folded := make([]string, len(values))
	for i, v := range values {
		folded[i] = folder.String(v)
	}
	return foldSet{original: slices.Clone(values), folded: folded}
}

func (s foldSet) contains(value string) bool {
	return slices.Contains(s.folded, folder.String(value))
}

func (s foldSet) String() string {
	return fmt.Sprint(s.original)
}

func checkAmongFold(value any, args ...any) (Outcome, error) {
	set, _ := args[0].(foldSet)
	s, _ := asString(value)
	if !set.contains(s) {
		return Fail("must be one of (case-insensitive): %v, got %q", set, s), nil
	}
	return Pass(), nil
}
