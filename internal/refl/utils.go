package refl

import (
	"iter"
	"reflect"
)

func IterFields(ty reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for idx := range ty.NumField() {
			if !yield(ty.Field(idx)) {
				return
			}
		}
	}
}

// HasPointers reports whether a value of the given type contains
// anything the garbage collector needs to trace, e.g. a pointer, a string,
// a slice, a map or an interface value.
func HasPointers(ty reflect.Type) bool {
	switch ty.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false

	case reflect.Array:
		return ty.Len() > 0 && HasPointers(ty.Elem())

	case reflect.Struct:
		for field := range IterFields(ty) {
			if HasPointers(field.Type) {
				return true
			}
		}

		return false

	default:
		// pointers, unsafe pointers, strings, slices, maps,
		// channels, functions and interfaces
		return true
	}
}
