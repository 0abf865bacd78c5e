package boxany

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/uccidibuti/box-any/internal/refl"
)

// TypeId identifies a concrete go type at runtime. Two TypeId values
// are equal if and only if they were created for the same type.
// A TypeId is a single machine word.
type TypeId struct {
	ptr unsafe.Pointer
}

// TypeIdOf returns the TypeId of T. It does not allocate.
func TypeIdOf[T any]() TypeId {
	return TypeId{ptr: abiTypePointerTo(reflect.TypeFor[T]())}
}

// Type returns the reflect.Type for this id. The type is only known if a value
// of that type was erased into a Box before.
func (t TypeId) Type() (reflect.Type, bool) {
	info, ok := (*typeInfos.Load())[t.ptr]
	if !ok {
		return nil, false
	}

	return info.Type, true
}

func (t TypeId) String() string {
	if ty, ok := t.Type(); ok {
		return ty.String()
	}

	return fmt.Sprintf("TypeId(%p)", t.ptr)
}

type typeInfo struct {
	Name string
	Type reflect.Type

	// HasPointers indicates that a value of the type contains pointers, e.g.
	// by having a field of type *T, a string, a slice or a map value.
	HasPointers bool

	// Dropper is set if *T implements the Dropper interface
	Dropper bool

	// Drop releases a value of this type, see dropFuncOf
	Drop func(unsafe.Pointer)
}

var typeInfos atomic.Pointer[map[unsafe.Pointer]*typeInfo]

func init() {
	// initialize the lookup table
	typeInfos.Store(&map[unsafe.Pointer]*typeInfo{})
}

func typeInfoOf[T any]() *typeInfo {
	reflectType := reflect.TypeFor[T]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := (*typeInfos.Load())[ptrToType]; ok {
		return cached
	}

	for {
		previousInfos := typeInfos.Load()
		if cached, ok := (*previousInfos)[ptrToType]; ok {
			return cached
		}

		newInfo := &typeInfo{
			Name:        reflectType.String(),
			Type:        reflectType,
			HasPointers: refl.HasPointers(reflectType),
			Dropper:     reflect.PointerTo(reflectType).Implements(reflect.TypeFor[Dropper]()),
		}

		newInfo.Drop = dropFuncOf[T](newInfo)

		newInfos := maps.Clone(*previousInfos)
		newInfos[ptrToType] = newInfo

		if typeInfos.CompareAndSwap(previousInfos, &newInfos) {
			slog.Debug(
				"New box type registered",
				slog.String("name", newInfo.Name),
				slog.Bool("hasPointers", newInfo.HasPointers),
				slog.Bool("dropper", newInfo.Dropper),
			)

			return newInfo
		}
	}
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}
