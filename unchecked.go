package boxany

// The functions in this file skip the type check. They exist for call sites
// that already know the type of a box, e.g. after checking a whole collection
// of boxes up front.
//
// Calling any of them with a T that does not match the TypeId of the box
// is undefined behaviour: the memory of the value is re-interpreted as a T.

// DowncastRefUnchecked returns a pointer to the value as a T without checking the type.
// Returns nil if the box is empty.
func DowncastRefUnchecked[T any](b *Box) *T {
	return (*T)(b.ptr)
}

// DowncastMutUnchecked returns a pointer to the value as a T without checking the type.
// Returns nil if the box is empty.
func DowncastMutUnchecked[T any](b *Box) *T {
	return (*T)(b.ptr)
}

// IntoInnerUnchecked moves the value out of the box as a T without checking the type.
func IntoInnerUnchecked[T any](b *Box) *T {
	value := (*T)(b.ptr)
	b.ptr = nil
	return value
}
