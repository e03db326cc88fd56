package validator

import (
	"reflect"
	"unicode/utf8"
)

var stringGuard = Kinds("string", reflect.String)

type stringConfig struct {
	minLen    any
	maxLen    any
	among     any
	exclude   any
	amongFold any
	pattern   string
	foldCase  bool
	uuid      any
	email     any
	url       any
}

// StringOption configures a string validator.
type StringOption func(*stringConfig)

// MinLength requires at least n characters (runes).
func MinLength(n int) StringOption {
	return func(c *stringConfig) { c.minLen = n }
}

// MaxLength allows at most n characters (runes).
func MaxLength(n int) StringOption {
	return func(c *stringConfig) { c.maxLen = n }
}

// AmongStrings requires the value to be one of values.
func AmongStrings(values ...string) StringOption {
	return func(c *stringConfig) { c.among = toAnySlice(values) }
}

// ExcludeStrings rejects any of values.
func ExcludeStrings(values ...string) StringOption {
	return func(c *stringConfig) { c.exclude = toAnySlice(values) }
}

// AmongStringsFold is AmongStrings with Unicode case folding.
func AmongStringsFold(values ...string) StringOption {
	return func(c *stringConfig) { c.amongFold = newFoldSet(values) }
}

// MatchPattern requires the value to match expr starting at its first character.
func MatchPattern(expr string) StringOption {
	return func(c *stringConfig) { c.pattern = expr }
}

// FoldCase makes MatchPattern case-insensitive.
func FoldCase() StringOption {
	return func(c *stringConfig) { c.foldCase = true }
}

// UUID requires a canonical textual UUID.
func UUID() StringOption {
	return func(c *stringConfig) { c.uuid = true }
}

// Email requires an RFC 5322 address with a dotted domain.
func Email() StringOption {
	return func(c *stringConfig) { c.email = true }
}

// URL requires an absolute URL with scheme and host.
func URL() StringOption {
	return func(c *stringConfig) { c.url = true }
}

// NewString builds a validator for Go strings and named string types.
// Facets run in the order min_length, max_length, among, exclude,
// among_fold, pattern, uuid, email, url.
func NewString(opts ...StringOption) (*Composite, error) {
	cfg := stringConfig{
		minLen:    Unset,
		maxLen:    Unset,
		among:     Unset,
		exclude:   Unset,
		amongFold: Unset,
		uuid:      Unset,
		email:     Unset,
		url:       Unset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if minLen, ok := cfg.minLen.(int); ok {
		if minLen < 0 {
			return nil, constructionError("string", "min length %d can't be negative", minLen)
		}
		if maxLen, ok := cfg.maxLen.(int); ok && minLen > maxLen {
			return nil, constructionError("string", "min length %d can't be greater than max length %d", minLen, maxLen)
		}
	}

	pattern := Unset
	if cfg.pattern != "" {
		re, err := compilePattern(cfg.pattern, cfg.foldCase)
		if err != nil {
			return nil, constructionError("string", "invalid pattern %q: %v", cfg.pattern, err)
		}
		pattern = re
	}

	return NewComposite("string", stringGuard,
		Checker{Name: "min_length", Check: checkMinLength, Args: []any{cfg.minLen}},
		Checker{Name: "max_length", Check: checkMaxLength, Args: []any{cfg.maxLen}},
		Checker{Name: "among", Check: checkAmongString, Args: []any{cfg.among}},
		Checker{Name: "exclude", Check: checkExcludeString, Args: []any{cfg.exclude}},
		Checker{Name: "among_fold", Check: checkAmongFold, Args: []any{cfg.amongFold}},
		Checker{Name: "pattern", Check: checkPattern, Args: []any{pattern}},
		Checker{Name: "uuid", Check: checkUUID, Args: []any{cfg.uuid}},
		Checker{Name: "email", Check: checkEmail, Args: []any{cfg.email}},
		Checker{Name: "url", Check: checkURL, Args: []any{cfg.url}},
	), nil
}

// MustString is like NewString but panics on a configuration error.
func MustString(opts ...StringOption) *Composite {
	v, err := NewString(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func checkMinLength(value any, args ...any) (Outcome, error) {
	s, _ := asString(value)
	min := args[0].(int)
	if utf8.RuneCountInString(s) < min {
		return Fail("must be at least %d characters long, got %q", min, s), nil
	}
	return Pass(), nil
}

func checkMaxLength(value any, args ...any) (Outcome, error) {
	s, _ := asString(value)
	max := args[0].(int)
	if utf8.RuneCountInString(s) > max {
		return Fail("must be at most %d characters long, got %d", max, utf8.RuneCountInString(s)), nil
	}
	return Pass(), nil
}

// Named string types are compared through their underlying string.
func checkAmongString(value any, args ...any) (Outcome, error) {
	s, _ := asString(value)
	return checkAmong(s, args...)
}

func checkExcludeString(value any, args ...any) (Outcome, error) {
	s, _ := asString(value)
	return checkExclude(s, args...)
}
