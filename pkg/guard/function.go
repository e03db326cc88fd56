package guard

import (
	"context"
)

// Func is the calling convention shared by every guarded function: an
// ordered positional sequence plus named arguments.
type Func func(ctx context.Context, args []any, named map[string]any) (any, error)

// Param is one declared parameter of a Function.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Required declares a parameter without a default value.
func Required(name string) Param {
	return Param{Name: name}
}

// Default declares a parameter that falls back to value when not supplied.
func Default(name string, value any) Param {
	return Param{Name: name, Default: value, HasDefault: true}
}

// Function describes a callable together with the metadata the guard needs:
// its name and doc for diagnostics, its parameters in positional order and
// whether extra positional arguments are collected into a variadic tail.
type Function struct {
	Name     string
	Doc      string
	Params   []Param
	Variadic bool
	Call     Func
}

// Invoke calls the function with positional arguments only.
func (f Function) Invoke(ctx context.Context, args ...any) (any, error) {
	return f.InvokeNamed(ctx, nil, args...)
}

// InvokeNamed calls the function with named and positional arguments.
func (f Function) InvokeNamed(ctx context.Context, named map[string]any, args ...any) (any, error) {
	if f.Call == nil {
		return nil, ErrNilFunction
	}
	return f.Call(ctx, args, named)
}

// Arity returns the number of parameters without a default value.
func (f Function) Arity() int {
	n := 0
	for _, p := range f.Params {
		if !p.HasDefault {
			n++
		}
	}
	return n
}

func (f Function) paramIndex(name string) int {
	for i, p := range f.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}
