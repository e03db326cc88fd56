package validator

import (
	"math"
	"reflect"
)

var tensorGuard = Kinds("tensor", reflect.Slice, reflect.Array)

type tensorConfig struct {
	elem       any
	dims       any
	allowEmpty any
	allowNaN   any
}

// TensorOption configures a tensor validator.
type TensorOption func(*tensorConfig)

// TensorOf requires the innermost element type to be T.
func TensorOf[T Numeric]() TensorOption {
	return func(c *tensorConfig) { c.elem = reflect.TypeFor[T]() }
}

// TensorDims requires exactly n levels of slice or array nesting.
func TensorDims(n int) TensorOption {
	return func(c *tensorConfig) { c.dims = n }
}

// TensorAllowEmpty controls tensors without elements: false rejects them,
// true accepts them with a warning.
func TensorAllowEmpty(allowed bool) TensorOption {
	return func(c *tensorConfig) { c.allowEmpty = allowed }
}

// TensorAllowNaN controls NaN elements: false rejects them, true accepts
// them with a warning.
func TensorAllowNaN(allowed bool) TensorOption {
	return func(c *tensorConfig) { c.allowNaN = allowed }
}

// NewTensor builds a validator for nested numeric slices and arrays such
// as [][]float64. Facets run in the order element_type, dims, allow_empty,
// allow_nan.
func NewTensor(opts ...TensorOption) (*Composite, error) {
	cfg := tensorConfig{elem: Unset, dims: Unset, allowEmpty: Unset, allowNaN: Unset}
	for _, opt := range opts {
		opt(&cfg)
	}

	if dims, ok := cfg.dims.(int); ok && dims < 1 {
		return nil, constructionError("tensor", "dimension %d must be positive", dims)
	}

	return NewComposite("tensor", tensorGuard,
		Checker{Name: "element_type", Check: checkTensorElem, Args: []any{cfg.elem}},
		Checker{Name: "dims", Check: checkTensorDims, Args: []any{cfg.dims}},
		Checker{Name: "allow_empty", Check: checkTensorEmpty, Args: []any{cfg.allowEmpty}},
		Checker{Name: "allow_nan", Check: checkTensorNaN, Args: []any{cfg.allowNaN}},
	), nil
}

// MustTensor is like NewTensor but panics on a configuration error.
func MustTensor(opts ...TensorOption) *Composite {
	v, err := NewTensor(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// tensorShape follows the static element type down to the first
// non-container type.
func tensorShape(value any) (dims int, elem reflect.Type) {
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		dims++
		t = t.Elem()
	}
	return dims, t
}

// leaves flattens a tensor into its innermost values.
func leaves(rv reflect.Value, out []reflect.Value) []reflect.Value {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return append(out, rv)
	}
	for i := 0; i < rv.Len(); i++ {
		out = leaves(rv.Index(i), out)
	}
	return out
}

func checkTensorElem(value any, args ...any) (Outcome, error) {
	want := args[0].(reflect.Type)
	if _, elem := tensorShape(value); elem != want {
		return Fail("expected tensor of %s, got tensor of %s", want, elem), nil
	}
	return Pass(), nil
}

func checkTensorDims(value any, args ...any) (Outcome, error) {
	want := args[0].(int)
	if dims, _ := tensorShape(value); dims != want {
		return Fail("expected tensor of dimension %d, got %d", want, dims), nil
	}
	return Pass(), nil
}

func checkTensorEmpty(value any, args ...any) (Outcome, error) {
	if len(leaves(reflect.ValueOf(value), nil)) != 0 {
		return Pass(), nil
	}
	if allowed, _ := args[0].(bool); allowed {
		return Warn("tensor is empty"), nil
	}
	return Fail("expected non-empty tensor"), nil
}

func checkTensorNaN(value any, args ...any) (Outcome, error) {
	nans := 0
	for _, leaf := range leaves(reflect.ValueOf(value), nil) {
		if (leaf.Kind() == reflect.Float32 || leaf.Kind() == reflect.Float64) && math.IsNaN(leaf.Float()) {
			nans++
		}
	}
	if nans == 0 {
		return Pass(), nil
	}
	if allowed, _ := args[0].(bool); allowed {
		return Warn("tensor contains %d NaN values", nans), nil
	}
	return Fail("expected NaN free tensor, found %d NaN values", nans), nil
}
