// Package bench contains the workloads used to compare boxes against
// interface values holding the same slices.
package bench

import boxany "github.com/uccidibuti/box-any"

// Array is implemented by slices and allows access to the concrete
// slice through an interface value, the way a fat pointer would.
type Array interface {
	AsAny() any
}

type Slice[T any] []T

func (s *Slice[T]) AsAny() any {
	return s
}

func NewBoxContainers(n int) []boxany.Box {
	return []boxany.Box{
		boxany.From(make([]uint8, 0, n)),
		boxany.From(make([]uint16, 0, n)),
		boxany.From(make([]uint32, 0, n)),
		boxany.From(make([]uint64, 0, n)),
	}
}

func ClearBoxContainers(containers []boxany.Box) {
	clearSlice(mustDowncast[[]uint8](&containers[0]))
	clearSlice(mustDowncast[[]uint16](&containers[1]))
	clearSlice(mustDowncast[[]uint32](&containers[2]))
	clearSlice(mustDowncast[[]uint64](&containers[3]))
}

// FillBoxContainers pushes n values into the containers created by NewBoxContainers.
func FillBoxContainers(containers []boxany.Box, n int, checked bool) {
	if checked {
		for idx := range n {
			pushIntoBoxes(containers, idx)
		}
	} else {
		for idx := range n {
			pushIntoBoxesUnchecked(containers, idx)
		}
	}
}

func pushIntoBoxes(containers []boxany.Box, idx int) {
	push(mustDowncast[[]uint8](&containers[0]), uint8(idx&0xff))
	push(mustDowncast[[]uint16](&containers[1]), uint16(idx&0xffff))
	push(mustDowncast[[]uint32](&containers[2]), uint32(idx))
	push(mustDowncast[[]uint64](&containers[3]), uint64(idx))
}

func pushIntoBoxesUnchecked(containers []boxany.Box, idx int) {
	push(boxany.DowncastMutUnchecked[[]uint8](&containers[0]), uint8(idx&0xff))
	push(boxany.DowncastMutUnchecked[[]uint16](&containers[1]), uint16(idx&0xffff))
	push(boxany.DowncastMutUnchecked[[]uint32](&containers[2]), uint32(idx))
	push(boxany.DowncastMutUnchecked[[]uint64](&containers[3]), uint64(idx))
}

func NewDynContainers(n int) []Array {
	return []Array{
		newDynSlice[uint8](n),
		newDynSlice[uint16](n),
		newDynSlice[uint32](n),
		newDynSlice[uint64](n),
	}
}

func ClearDynContainers(containers []Array) {
	clearSlice(containers[0].AsAny().(*Slice[uint8]))
	clearSlice(containers[1].AsAny().(*Slice[uint16]))
	clearSlice(containers[2].AsAny().(*Slice[uint32]))
	clearSlice(containers[3].AsAny().(*Slice[uint64]))
}

func FillDynContainers(containers []Array, n int) {
	for idx := range n {
		push(containers[0].AsAny().(*Slice[uint8]), uint8(idx&0xff))
		push(containers[1].AsAny().(*Slice[uint16]), uint16(idx&0xffff))
		push(containers[2].AsAny().(*Slice[uint32]), uint32(idx))
		push(containers[3].AsAny().(*Slice[uint64]), uint64(idx))
	}
}

func newDynSlice[T any](n int) Array {
	slice := make(Slice[T], 0, n)
	return &slice
}

func mustDowncast[T any](b *boxany.Box) *T {
	value, ok := boxany.DowncastMut[T](b)
	if !ok {
		panic("unexpected type in " + b.String())
	}

	return value
}

func push[S ~[]E, E any](slice *S, value E) {
	*slice = append(*slice, value)
}

func clearSlice[S ~[]E, E any](slice *S) {
	*slice = (*slice)[:0]
}
