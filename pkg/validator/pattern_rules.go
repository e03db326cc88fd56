package validator

import (
	"regexp"
)

// compilePattern anchors expr at the start of the input only; trailing
// text is allowed unless the expression ends with $.
func compilePattern(expr string, foldCase bool) (*regexp.Regexp, error) {
	prefix := "^(?:"
	if foldCase {
		prefix = "(?i)" + prefix
	}
	return regexp.Compile(prefix + expr + ")")
}

func checkPattern(value any, args ...any) (Outcome, error) {
	re := args[0].(*regexp.Regexp)
	s, _ := asString(value)
	if !re.MatchString(s) {
		return Fail("must match pattern %s, got %q", re, s), nil
	}
	return Pass(), nil
}
