package boxany

import (
	"fmt"
	"unsafe"

	"github.com/uccidibuti/box-any/internal/assert"
)

// Dropper can be implemented by values stored in a Box. Drop is invoked
// exactly once when the owning Box is dropped. It is not invoked if the value
// was moved out of the Box using IntoInner.
//
// Only the method set of *T is checked, where T is the type the Box was
// created with. Payloads of interface type (From[Dropper](d)) or pointer type
// (From(&value)) are released without calling Drop.
type Dropper interface {
	Drop()
}

// Box owns a single heap allocated value of any type. In contrast to an
// interface value it does not carry a method table: it stores the address of
// the value, a TypeId and one function to release the value.
//
// A Box must not be copied after construction, as each copy would claim
// ownership of the same value. Pass a *Box instead.
type Box struct {
	noCopy noCopy

	ptr  unsafe.Pointer
	tag  TypeId
	drop func(unsafe.Pointer)
}

// New takes ownership of value and erases its type. The caller must not
// use value after calling New, the returned Box is its only owner.
func New[T any](value *T) Box {
	assert.NotNil(value)

	return Box{
		ptr:  unsafe.Pointer(value),
		tag:  TypeIdOf[T](),
		drop: typeInfoOf[T]().Drop,
	}
}

// From moves value into a new heap allocation owned by the returned Box.
func From[T any](value T) Box {
	return New(&value)
}

// TypeId returns the id of the type that was erased.
func (b *Box) TypeId() TypeId {
	return b.tag
}

// IsEmpty reports whether the value was either dropped or moved out of the box.
func (b *Box) IsEmpty() bool {
	return b.ptr == nil
}

// Drop releases the value owned by the box. Dropping an empty box does nothing.
func (b *Box) Drop() {
	if b.ptr == nil {
		return
	}

	ptr := b.ptr
	b.ptr = nil

	b.drop(ptr)
}

func (b *Box) String() string {
	if b.ptr == nil {
		return fmt.Sprintf("Box[%s](empty)", b.tag)
	}

	return fmt.Sprintf("Box[%s]", b.tag)
}

// Is reports whether the box was created from a value of type T.
func Is[T any](b *Box) bool {
	return b.tag == TypeIdOf[T]()
}

// DowncastRef returns a pointer to the value if the box holds a T.
// The pointer is only valid as long as the box owns the value and
// must not be used to modify the value.
func DowncastRef[T any](b *Box) (*T, bool) {
	if b.ptr == nil || !Is[T](b) {
		return nil, false
	}

	return DowncastRefUnchecked[T](b), true
}

// DowncastMut returns a pointer to the value if the box holds a T. The caller
// has exclusive access to the value as long as it holds on to the pointer.
func DowncastMut[T any](b *Box) (*T, bool) {
	if b.ptr == nil || !Is[T](b) {
		return nil, false
	}

	return DowncastMutUnchecked[T](b), true
}

// IntoInner moves the value out of the box if it holds a T. The box is empty
// afterwards and dropping it does not release the value anymore.
// If the box does not hold a T, it is left untouched.
func IntoInner[T any](b *Box) (*T, bool) {
	if b.ptr == nil || !Is[T](b) {
		return nil, false
	}

	return IntoInnerUnchecked[T](b), true
}

// DropAll drops every box in the slice.
func DropAll(boxes []Box) {
	for idx := range boxes {
		boxes[idx].Drop()
	}
}
