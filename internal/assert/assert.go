package assert

import (
	"fmt"
	"reflect"
)

// NotNil panics if ptr is a nil pointer.
func NotNil[T any](ptr *T) {
	if ptr == nil {
		panic(fmt.Sprintf("expected non nil pointer to %s", reflect.TypeFor[T]()))
	}
}
