package refl

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestHasPointers(t *testing.T) {
	type Flat struct {
		X, Y float64
		Id   uint32
		Tags [4]byte
	}

	type Nested struct {
		Flat
		Name string
	}

	type WithEmptyArray struct {
		Values [0]*int
	}

	require.False(t, HasPointers(reflect.TypeFor[uint8]()))
	require.False(t, HasPointers(reflect.TypeFor[Flat]()))
	require.False(t, HasPointers(reflect.TypeFor[WithEmptyArray]()))
	require.False(t, HasPointers(reflect.TypeFor[[8]complex128]()))

	require.True(t, HasPointers(reflect.TypeFor[Nested]()))
	require.True(t, HasPointers(reflect.TypeFor[string]()))
	require.True(t, HasPointers(reflect.TypeFor[[]uint8]()))
	require.True(t, HasPointers(reflect.TypeFor[map[int]int]()))
	require.True(t, HasPointers(reflect.TypeFor[*int]()))
	require.True(t, HasPointers(reflect.TypeFor[unsafe.Pointer]()))
	require.True(t, HasPointers(reflect.TypeFor[func()]()))
	require.True(t, HasPointers(reflect.TypeFor[any]()))
	require.True(t, HasPointers(reflect.TypeFor[[2]string]()))
}

func TestIterFields(t *testing.T) {
	type Point struct {
		X, Y int
		name string
	}

	var names []string
	for field := range IterFields(reflect.TypeFor[Point]()) {
		names = append(names, field.Name)
	}

	require.Equal(t, []string{"X", "Y", "name"}, names)
}
