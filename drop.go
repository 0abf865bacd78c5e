package boxany

import "unsafe"

// dropFuncOf selects the function that releases a value of type T.
// It is called once per type when the type is registered.
func dropFuncOf[T any](info *typeInfo) func(unsafe.Pointer) {
	switch {
	case info.Dropper:
		return dropDropper[T]

	case info.HasPointers:
		return dropZero[T]

	default:
		return dropNothing
	}
}

func dropDropper[T any](ptr unsafe.Pointer) {
	value := (*T)(ptr)
	any(value).(Dropper).Drop()

	// release everything the value references
	var zero T
	*value = zero
}

func dropZero[T any](ptr unsafe.Pointer) {
	// clear the value, so memory it references can be collected
	// even if someone still holds a pointer to it.
	var zero T
	*(*T)(ptr) = zero
}

// dropNothing is used for values without pointers. The memory
// is reclaimed by the garbage collector once the box releases it.
func dropNothing(unsafe.Pointer) {}
