package spec_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contractkit/pkg/spec"
	"github.com/dmitrymomot/contractkit/pkg/validator"
)

func matches(t *testing.T, value any, alts ...spec.Spec) bool {
	t.Helper()
	out, err := spec.Match(value, alts...)
	require.NoError(t, err)
	return out.Status
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("type literal and nil alternatives", func(t *testing.T) {
		alts := []spec.Spec{spec.Integer, spec.Literal("literal"), spec.Nil}
		assert.True(t, matches(t, 5, alts...))
		assert.True(t, matches(t, "literal", alts...))
		assert.True(t, matches(t, nil, alts...))
		assert.False(t, matches(t, 5.0, alts...))
		assert.False(t, matches(t, "other", alts...))
	})

	t.Run("empty list accepts everything", func(t *testing.T) {
		assert.True(t, matches(t, nil))
		assert.True(t, matches(t, struct{}{}))
	})

	t.Run("exact types", func(t *testing.T) {
		assert.True(t, matches(t, 3, spec.Int))
		assert.False(t, matches(t, int64(3), spec.Int))
		assert.True(t, matches(t, int64(3), spec.Integer))
		assert.True(t, matches(t, float32(1.5), spec.Number))
		assert.False(t, matches(t, "3", spec.Number))
		assert.True(t, matches(t, map[string]any{}, spec.Map))
		assert.True(t, matches(t, []any{1}, spec.Slice))
	})

	t.Run("interface types", func(t *testing.T) {
		assert.True(t, matches(t, errors.New("boom"), spec.Error))
		assert.False(t, matches(t, "boom", spec.Error))
		assert.True(t, matches(t, 1, spec.Any))
		assert.False(t, matches(t, nil, spec.Any))
	})

	t.Run("literals compare numbers by value", func(t *testing.T) {
		assert.True(t, matches(t, int64(8), spec.Literal(8)))
		assert.True(t, matches(t, 8.0, spec.Literal(8)))
		assert.False(t, matches(t, 8.5, spec.Literal(8)))
		assert.True(t, matches(t, []string{"a"}, spec.Literal([]string{"a"})))
	})

	t.Run("predicate outcome is forwarded verbatim", func(t *testing.T) {
		warn := spec.Pred(validator.PredicateFunc(func(any) validator.Outcome {
			return validator.Warn("deprecated value")
		}))
		out, err := spec.Match("x", warn)
		require.NoError(t, err)
		assert.Equal(t, validator.Warn("deprecated value"), out)
	})

	t.Run("only the first matching alternative is surfaced", func(t *testing.T) {
		calls := 0
		warn := spec.Pred(validator.PredicateFunc(func(any) validator.Outcome {
			calls++
			return validator.Warn("deprecated value")
		}))

		out, err := spec.Match("x", spec.String, warn)
		require.NoError(t, err)
		assert.Equal(t, validator.Pass(), out)
		assert.Zero(t, calls)

		out, err = spec.Match("x", warn, spec.String)
		require.NoError(t, err)
		assert.True(t, out.Warning)
		assert.Equal(t, 1, calls)
	})

	t.Run("function predicates", func(t *testing.T) {
		even := spec.Func("even", func(v any) bool {
			n, ok := v.(int)
			return ok && n%2 == 0
		})
		assert.True(t, matches(t, 4, even))
		assert.False(t, matches(t, 3, even))
		assert.Equal(t, "even", even.String())
	})

	t.Run("one of", func(t *testing.T) {
		alts := []spec.Spec{spec.OneOf(spec.Literal("a"), spec.Literal("b")), spec.Bool}
		assert.True(t, matches(t, "b", alts...))
		assert.True(t, matches(t, false, alts...))
		assert.False(t, matches(t, "c", alts...))
		assert.True(t, matches(t, "anything", spec.OneOf()))
	})

	t.Run("failure message carries value type and alternatives", func(t *testing.T) {
		out, err := spec.Match(5.0, spec.Integer, spec.Literal("literal"), spec.Nil)
		require.NoError(t, err)
		assert.False(t, out.Status)
		assert.Equal(t, `value 5 of type float64 matches none of [integer, "literal", nil]`, out.Message)
	})

	t.Run("hard error surfaces only when nothing matches", func(t *testing.T) {
		s := spec.MustSchema(spec.Key("id", spec.Int))
		_, err := spec.Match(map[string]any{"other": 1}, spec.Nested(s), spec.Integer)
		require.Error(t, err)
		assert.ErrorIs(t, err, spec.ErrSchemaKeyMismatch)

		out, err := spec.Match(map[string]any{"other": 1}, spec.Nested(s), spec.Map)
		require.NoError(t, err)
		assert.True(t, out.Status)
	})

	t.Run("later schema matches after an earlier key mismatch", func(t *testing.T) {
		a := spec.MustSchema(spec.Key("kind", spec.Literal("a")), spec.Key("x", spec.Int))
		b := spec.MustSchema(spec.Key("kind", spec.Literal("b")), spec.Key("y", spec.String))

		out, err := spec.Match(map[string]any{"kind": "b", "y": "hi"}, spec.Nested(a), spec.Nested(b))
		require.NoError(t, err)
		assert.True(t, out.Status)

		_, err = spec.Match(map[string]any{"kind": "c", "z": 1}, spec.Nested(a), spec.Nested(b))
		var mismatch *spec.SchemaKeyMismatchError
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, []string{"kind", "x"}, mismatch.Expected)
	})
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	s := spec.MustSchema(spec.Key("a"), spec.Key("b"))
	got := spec.Describe(
		spec.String,
		spec.Literal(3),
		spec.Literal("auto"),
		spec.Nil,
		spec.Nested(s),
		spec.OneOf(spec.Bool, spec.Float),
		spec.Pred(validator.MustNumber(validator.MinValue(0))),
	)
	assert.Equal(t, `[string, 3, "auto", nil, schema{a, b}, one of [bool, float64], number(min_value)]`, got)

	assert.Equal(t, "[]", spec.Describe())
	assert.Equal(t, "[]int", fmt.Sprint(spec.Type[[]int]()))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	assert.NoError(t, spec.Verify(spec.String, spec.OneOf(spec.Nil)))
	assert.ErrorIs(t, spec.Verify(spec.String, nil), spec.ErrInvalidSpec)
	assert.ErrorIs(t, spec.Verify(spec.Pred(nil)), spec.ErrInvalidSpec)
	assert.ErrorIs(t, spec.Verify(spec.Nested(nil)), spec.ErrInvalidSpec)
	assert.ErrorIs(t, spec.Verify(spec.OneOf(spec.TypeOf("nothing"))), spec.ErrInvalidSpec)
}
