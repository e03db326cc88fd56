package validator_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contractkit/pkg/validator"
)

func TestNewIterable(t *testing.T) {
	t.Parallel()

	t.Run("empty not allowed", func(t *testing.T) {
		v := validator.MustIterable(validator.AllowEmpty(false))
		assert.True(t, validates(t, v, []int{1, 3, 25, 14}))
		assert.False(t, validates(t, v, []int{}))
		assert.False(t, validates(t, v, map[string]int{}))
	})

	t.Run("empty allowed passes with a warning", func(t *testing.T) {
		v := validator.MustIterable(validator.AllowEmpty(true))

		out, err := v.Validate([]int{1, 3, 25, 14})
		require.NoError(t, err)
		assert.True(t, out.Status)
		assert.False(t, out.Warning)

		out, err = v.Validate([]int{})
		require.NoError(t, err)
		assert.True(t, out.Status)
		assert.True(t, out.Warning)
		assert.Equal(t, "collection is empty", out.Message)
	})

	t.Run("element types", func(t *testing.T) {
		ints := validator.MustIterable(validator.ElementsOf[int]())
		assert.True(t, validates(t, ints, []any{1, 3, 25, 14}))
		assert.False(t, validates(t, ints, []any{3.56, 6.4532, 65.57, 5.546}))
		assert.False(t, validates(t, ints, []any{"gc", "gccgo", "TinyGo", "Yaegi"}))

		floats := validator.MustIterable(validator.ElementsOf[float64]())
		assert.False(t, validates(t, floats, []any{1, 3, 25, 14}))
		assert.True(t, validates(t, floats, []float64{3.56, 6.4532, 65.57, 5.546}))

		strs := validator.MustIterable(validator.ElementsOf[string]())
		assert.False(t, validates(t, strs, []int{1, 3, 25, 14}))
		assert.True(t, validates(t, strs, [4]string{"gc", "gccgo", "TinyGo", "Yaegi"}))
	})

	t.Run("several element types", func(t *testing.T) {
		v := validator.MustIterable(validator.ElementTypes(reflect.TypeFor[int](), reflect.TypeFor[string]()))
		assert.True(t, validates(t, v, []any{1, "two", 3}))
		assert.False(t, validates(t, v, []any{1, "two", 3.0}))
		assert.False(t, validates(t, v, []any{nil}))
	})

	t.Run("element min", func(t *testing.T) {
		v := validator.MustIterable(validator.ElementMin(0))
		assert.True(t, validates(t, v, []int{1, 3, 25, 14}))
		assert.False(t, validates(t, v, []int{-1, -3, -25, -14}))

		v = validator.MustIterable(validator.ElementMin(-50.3))
		assert.True(t, validates(t, v, []float64{-1.6, 3.56, 25.53, -14.4}))
		assert.False(t, validates(t, v, []float64{-72.67, 3.56, 25.53, -14.4}))
	})

	t.Run("element max", func(t *testing.T) {
		v := validator.MustIterable(validator.ElementMax(100))
		assert.True(t, validates(t, v, []int{12, 96, 24, 100}))
		assert.False(t, validates(t, v, []int{104, 205, 835, 143}))

		v = validator.MustIterable(validator.ElementMax(150.25))
		assert.True(t, validates(t, v, []float64{-154.6, 45.56, 125.53, -12.4}))
		assert.False(t, validates(t, v, []float64{164.67, 33.56, 110.53, -140.4}))
	})

	t.Run("element range", func(t *testing.T) {
		v := validator.MustIterable(validator.ElementMin(50), validator.ElementMax(100))
		assert.True(t, validates(t, v, []int{60, 80, 100}))
		assert.True(t, validates(t, v, []int{70, 60, 50}))
		assert.True(t, validates(t, v, []int{}))
		assert.False(t, validates(t, v, []int{101, 10, 10, 10}))
		assert.False(t, validates(t, v, []int{-50, -25, 0}))
	})

	t.Run("non-numeric elements fail numeric bounds", func(t *testing.T) {
		v := validator.MustIterable(validator.ElementMin(0))
		assert.False(t, validates(t, v, []any{1, "2"}))
	})

	t.Run("item counts", func(t *testing.T) {
		v := validator.MustIterable(validator.MinItems(2), validator.MaxItems(3))
		assert.False(t, validates(t, v, []int{1}))
		assert.True(t, validates(t, v, []int{1, 2}))
		assert.True(t, validates(t, v, map[int]bool{1: true, 2: true, 3: true}))
		assert.False(t, validates(t, v, []int{1, 2, 3, 4}))
	})

	t.Run("sequences only", func(t *testing.T) {
		v := validator.MustIterable(validator.SequencesOnly())
		assert.True(t, validates(t, v, []string{"a"}))
		assert.True(t, validates(t, v, [0]int{}))
		assert.False(t, validates(t, v, map[string]int{"a": 1}))
		assert.Equal(t, []string{"sequence"}, v.Facets())
	})

	t.Run("mixed collections", func(t *testing.T) {
		v := validator.MustIterable(
			validator.AllowEmpty(false),
			validator.ElementsOf[int](),
			validator.ElementMin(-128),
			validator.ElementMax(128),
		)
		assert.True(t, validates(t, v, []int{1, 3, 25, 120}))
		assert.True(t, validates(t, v, [4]int{1, 3, 25, 3}))
		assert.True(t, validates(t, v, map[int]string{1: "gc", 2: "gccgo"}))
		assert.True(t, validates(t, v, map[int]struct{}{1: {}, 3: {}, 25: {}}))
		assert.False(t, validates(t, v, 8))
		assert.False(t, validates(t, v, "not a collection"))
	})
}

func TestNewIterable_ConstructionErrors(t *testing.T) {
	t.Parallel()

	_, err := validator.NewIterable(validator.ElementMin(100), validator.ElementMax(50))
	assert.ErrorIs(t, err, validator.ErrConstruction)

	_, err = validator.NewIterable(validator.MinItems(5), validator.MaxItems(1))
	assert.ErrorIs(t, err, validator.ErrConstruction)

	assert.Panics(t, func() { validator.MustIterable(validator.ElementMin(1), validator.ElementMax(0)) })

	v, err := validator.NewIterable(validator.ElementTypes())
	require.NoError(t, err)
	assert.Empty(t, v.Facets())
}
