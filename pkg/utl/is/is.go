package is

import (
	"math"
	"reflect"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/ib-77/utilitarian/pkg/utl"
)

var (
	timeType   = reflect.TypeOf(time.Time{})
	regexpType = reflect.TypeOf(regexp.Regexp{})
)

// indirect follows non-nil pointers and interfaces down to the concrete value.
func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func Number(v any) bool {
	switch indirect(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func Boolean(v any) bool {
	return indirect(v).Kind() == reflect.Bool
}

func String(v any) bool {
	return indirect(v).Kind() == reflect.String
}

// Array reports slices and arrays, including nil slices.
func Array(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		return true
	}
	k := indirect(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func RegExp(v any) bool {
	rv := indirect(v)
	return rv.IsValid() && rv.Type() == regexpType
}

func Function(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func Date(v any) bool {
	rv := indirect(v)
	return rv.IsValid() && rv.Type() == timeType
}

// Object reports maps and plain structs. time.Time and regexp.Regexp are not
// objects, mirroring Date and RegExp.
func Object(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return true
	}
	rv = indirect(v)
	switch rv.Kind() {
	case reflect.Map:
		return true
	case reflect.Struct:
		return rv.Type() != timeType && rv.Type() != regexpType
	}
	return false
}

func Objecty(v any) bool {
	return Object(v) || Array(v)
}

// Null reports nil, including typed nil pointers, maps, slices and funcs.
func Null(v any) bool {
	return v != nil && utl.IsNil(v)
}

// Undefined reports an untyped nil.
func Undefined(v any) bool {
	return v == nil
}

func NullOrUndefined(v any) bool {
	return utl.IsNil(v)
}

func AnyType(v any) bool {
	return Number(v) || String(v) || Array(v) || Boolean(v) ||
		Object(v) || Date(v) || Function(v) || RegExp(v)
}

// Empty is true for nil, "", zero-length slices and arrays, zero-entry maps and
// field-less structs. Numbers and booleans are never empty.
func Empty(v any) bool {
	if NullOrUndefined(v) {
		return true
	}
	rv := indirect(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Struct:
		return Object(v) && rv.NumField() == 0
	}
	return false
}

func NonEmptyStringOrNumber(v any) bool {
	return !Empty(v) && (String(v) || Number(v))
}

func StringNumberBoolOrDate(v any) bool {
	return String(v) || Number(v) || Date(v) || Boolean(v)
}

// Has reports whether a map holds key, or a struct has an exported field named key.
func Has(obj any, key string) bool {
	rv := indirect(obj)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false
		}
		return rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).IsValid()
	case reflect.Struct:
		if !Object(obj) {
			return false
		}
		f, ok := rv.Type().FieldByName(key)
		return ok && f.IsExported()
	}
	return false
}

// Size counts map entries, struct fields, slice elements and string characters.
// Anything else has size 0.
func Size(v any) int {
	rv := indirect(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len()
	case reflect.String:
		return utf8.RuneCountInString(rv.String())
	case reflect.Struct:
		if Object(v) {
			return rv.NumField()
		}
	}
	return 0
}

// Truthy reports whether every leaf of v is truthy. Slices and maps are
// expanded recursively, and a zero-argument func is called and its first
// result tested instead.
func Truthy(v any) bool {
	rv := indirect(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return DeeplyTruthy(elems(rv))
	case reflect.Map:
		return DeeplyTruthy(values(rv))
	case reflect.Func:
		if !rv.IsNil() && rv.Type().NumIn() == 0 && rv.Type().NumOut() > 0 {
			return Truthy(rv.Call(nil)[0].Interface())
		}
	}
	return leafTruthy(rv)
}

// DeeplyTruthy reports whether every element, and every nested element, is truthy.
// An empty collection is truthy.
func DeeplyTruthy(collection []any) bool {
	for _, expression := range collection {
		rv := indirect(expression)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			if !DeeplyTruthy(elems(rv)) {
				return false
			}
		case reflect.Map:
			if !DeeplyTruthy(values(rv)) {
				return false
			}
		default:
			if !leafTruthy(rv) {
				return false
			}
		}
	}
	return true
}

func leafTruthy(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

func elems(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = safeInterface(rv.Index(i))
	}
	return out
}

func values(rv reflect.Value) []any {
	out := make([]any, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out = append(out, safeInterface(iter.Value()))
	}
	return out
}

func safeInterface(rv reflect.Value) any {
	if !rv.CanInterface() {
		return nil
	}
	return rv.Interface()
}
