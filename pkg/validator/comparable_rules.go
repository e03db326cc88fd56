package validator

import (
	"cmp"
	"math"
	"reflect"
)

// Numeric is the set of Go number types accepted by numeric facets.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Equal reports whether two values are equal. Numbers of different Go types
// are compared by value, so Equal(8, 8.0) is true. Everything else uses deep
// equality; nil matches nil and nil pointers, maps, slices and funcs.
func Equal(a, b any) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if IsNumber(a) && IsNumber(b) {
		c, ok := compareNumbers(a, b)
		return ok && c == 0
	}
	return reflect.DeepEqual(a, b)
}

// InstanceOf reports whether value's dynamic type is one of types, or
// implements one of them when the declared type is an interface.
func InstanceOf(value any, types ...reflect.Type) bool {
	if value == nil {
		return false
	}
	vt := reflect.TypeOf(value)
	for _, t := range types {
		if t == nil {
			continue
		}
		if vt == t {
			return true
		}
		if t.Kind() == reflect.Interface && vt.Implements(t) {
			return true
		}
	}
	return false
}

// IsNumber reports whether value is an integer or floating point number.
func IsNumber(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isInteger(value any) bool {
	return isSigned(value) || isUnsigned(value)
}

func isSigned(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func toFloat(value any) (float64, bool) {
	if !IsNumber(value) {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch {
	case isSigned(value):
		return float64(rv.Int()), true
	case isUnsigned(value):
		return float64(rv.Uint()), true
	default:
		return rv.Float(), true
	}
}

// compareNumbers orders two numbers. Integers of the same signedness are
// compared exactly; anything else goes through float64. NaN is unordered.
func compareNumbers(a, b any) (int, bool) {
	switch {
	case isSigned(a) && isSigned(b):
		return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int()), true
	case isUnsigned(a) && isUnsigned(b):
		return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint()), true
	}
	fa, ok := toFloat(a)
	if !ok {
		return 0, false
	}
	fb, ok := toFloat(b)
	if !ok {
		return 0, false
	}
	if math.IsNaN(fa) || math.IsNaN(fb) {
		return 0, false
	}
	return cmp.Compare(fa, fb), true
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func asString(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	if value == nil {
		return "", false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func containsValue(values []any, value any) bool {
	for _, v := range values {
		if Equal(v, value) {
			return true
		}
	}
	return false
}
