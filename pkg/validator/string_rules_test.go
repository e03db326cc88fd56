package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contractkit/pkg/validator"
)

type language string

var implementations = []string{"gc", "gccgo", "TinyGo", "GopherJS", "Yaegi"}

func TestNewString(t *testing.T) {
	t.Parallel()

	t.Run("min length", func(t *testing.T) {
		v := validator.MustString(validator.MinLength(2))
		assert.True(t, validates(t, v, "Golang"))
		assert.True(t, validates(t, v, "Go"))
		assert.False(t, validates(t, v, "G"))
		assert.False(t, validates(t, v, nil))
	})

	t.Run("max length", func(t *testing.T) {
		v := validator.MustString(validator.MaxLength(6))
		assert.True(t, validates(t, v, ""))
		assert.True(t, validates(t, v, "Golang"))
		assert.False(t, validates(t, v, "Golang1"))
		assert.False(t, validates(t, v, nil))
	})

	t.Run("length counts characters, not bytes", func(t *testing.T) {
		v := validator.MustString(validator.MaxLength(5))
		assert.True(t, validates(t, v, "héllo"))
		assert.True(t, validates(t, v, "日本語"))
	})

	t.Run("among strings", func(t *testing.T) {
		v := validator.MustString(validator.AmongStrings(implementations...))
		assert.True(t, validates(t, v, "gccgo"))
		assert.True(t, validates(t, v, "Yaegi"))
		assert.False(t, validates(t, v, "Ruby"))
		assert.False(t, validates(t, v, "tinygo"))
		assert.False(t, validates(t, v, nil))
	})

	t.Run("exclude strings", func(t *testing.T) {
		v := validator.MustString(validator.ExcludeStrings(implementations...))
		assert.True(t, validates(t, v, "Ruby"))
		assert.True(t, validates(t, v, "Java"))
		assert.False(t, validates(t, v, "TinyGo"))
		assert.False(t, validates(t, v, nil))
	})

	t.Run("among strings with case folding", func(t *testing.T) {
		v := validator.MustString(validator.AmongStringsFold("TinyGo", "Yaegi"))
		assert.True(t, validates(t, v, "tinygo"))
		assert.True(t, validates(t, v, "YAEGI"))
		assert.False(t, validates(t, v, "Ruby"))
	})

	t.Run("named string types", func(t *testing.T) {
		v := validator.MustString(validator.AmongStrings("go"), validator.MaxLength(2))
		assert.True(t, validates(t, v, language("go")))
		assert.False(t, validates(t, v, language("rust")))
	})

	t.Run("mixed facets", func(t *testing.T) {
		v := validator.MustString(
			validator.MinLength(6),
			validator.MaxLength(64),
			validator.ExcludeStrings("password", "qwerty", "123456789", "sunshine"),
		)
		assert.True(t, validates(t, v, "Super_Mega_Strong_Password_2000"))
		assert.True(t, validates(t, v, strings.Repeat("_", 6)))
		assert.False(t, validates(t, v, strings.Repeat("_", 3)))
		assert.False(t, validates(t, v, strings.Repeat("_", 128)))
		assert.False(t, validates(t, v, "sunshine"))
		assert.False(t, validates(t, v, nil))
	})

	t.Run("facet order is fixed", func(t *testing.T) {
		v := validator.MustString(
			validator.URL(),
			validator.MatchPattern("a"),
			validator.MinLength(1),
		)
		assert.Equal(t, []string{"min_length", "pattern", "url"}, v.Facets())
	})

	t.Run("first failing facet reports", func(t *testing.T) {
		v := validator.MustString(validator.MinLength(3), validator.AmongStrings("abc"))
		out, err := v.Validate("x")
		require.NoError(t, err)
		assert.False(t, out.Status)
		assert.Equal(t, `must be at least 3 characters long, got "x"`, out.Message)
	})
}

func TestNewString_Pattern(t *testing.T) {
	t.Parallel()

	t.Run("letters and digits", func(t *testing.T) {
		v := validator.MustString(validator.MatchPattern(`^[a-zA-Z0-9]+$`))
		assert.True(t, validates(t, v, "contractkit"))
		assert.True(t, validates(t, v, "42"))
		assert.False(t, validates(t, v, "__contractkit__"))
	})

	t.Run("anchored at the start only", func(t *testing.T) {
		v := validator.MustString(validator.MatchPattern(`co`))
		assert.True(t, validates(t, v, "contractkit"))
		assert.False(t, validates(t, v, "deco"))
	})

	t.Run("alternation stays anchored", func(t *testing.T) {
		v := validator.MustString(validator.MatchPattern(`foo|bar`))
		assert.True(t, validates(t, v, "barista"))
		assert.False(t, validates(t, v, "xbar"))
	})

	t.Run("case folding", func(t *testing.T) {
		v := validator.MustString(validator.MatchPattern(`^contractkit$`), validator.FoldCase())
		assert.True(t, validates(t, v, "contractkit"))
		assert.True(t, validates(t, v, "ContractKit"))
		assert.False(t, validates(t, v, "42"))
		assert.False(t, validates(t, v, nil))
	})

	t.Run("broken expression is a construction error", func(t *testing.T) {
		_, err := validator.NewString(validator.MatchPattern(":)"))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrConstruction)
	})
}

func TestNewString_ConstructionErrors(t *testing.T) {
	t.Parallel()

	_, err := validator.NewString(validator.MinLength(10), validator.MaxLength(5))
	assert.ErrorIs(t, err, validator.ErrConstruction)

	_, err = validator.NewString(validator.MinLength(-1))
	assert.ErrorIs(t, err, validator.ErrConstruction)

	assert.Panics(t, func() { validator.MustString(validator.MinLength(10), validator.MaxLength(5)) })

	_, err = validator.NewString(validator.MinLength(5), validator.MaxLength(5))
	assert.NoError(t, err)
}

func TestNewString_UUID(t *testing.T) {
	t.Parallel()

	v := validator.MustString(validator.UUID())

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "canonical v4", value: "f47ac10b-58cc-4372-a567-0e02b2c3d479", want: true},
		{name: "uppercase", value: "F47AC10B-58CC-4372-A567-0E02B2C3D479", want: true},
		{name: "nil uuid", value: "00000000-0000-0000-0000-000000000000", want: true},
		{name: "empty", value: "", want: false},
		{name: "no hyphens", value: "f47ac10b58cc4372a5670e02b2c3d479", want: false},
		{name: "braced", value: "{f47ac10b-58cc-4372-a567-0e02b2c3d479}", want: false},
		{name: "urn prefix", value: "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479", want: false},
		{name: "bad hex", value: "g47ac10b-58cc-4372-a567-0e02b2c3d479", want: false},
		{name: "misplaced hyphen", value: "f47ac10b5-8cc-4372-a567-0e02b2c3d479", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validates(t, v, tt.value))
		})
	}
}

func TestNewString_Formats(t *testing.T) {
	t.Parallel()

	t.Run("email", func(t *testing.T) {
		v := validator.MustString(validator.Email())
		assert.True(t, validates(t, v, "user@example.com"))
		assert.True(t, validates(t, v, "first.last+tag@sub.example.org"))
		assert.False(t, validates(t, v, ""))
		assert.False(t, validates(t, v, "user@localhost"))
		assert.False(t, validates(t, v, "user@.example.com"))
		assert.False(t, validates(t, v, "user@example..com"))
		assert.False(t, validates(t, v, "not-an-email"))
		assert.False(t, validates(t, v, "John <john@example.com>"))
		assert.False(t, validates(t, v, "<john@example.com>"))
	})

	t.Run("url", func(t *testing.T) {
		v := validator.MustString(validator.URL())
		assert.True(t, validates(t, v, "https://example.com/path?q=1"))
		assert.True(t, validates(t, v, "ftp://files.example.com"))
		assert.False(t, validates(t, v, ""))
		assert.False(t, validates(t, v, "/relative/path"))
		assert.False(t, validates(t, v, "example.com"))
	})
}
