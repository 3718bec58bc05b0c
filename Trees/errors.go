package Trees

import (
	"fmt"
	"reflect"
)

// InvalidElementError is the panic value used when an element that can't be
// ordered is given to a tree. The tree is left untouched when it's raised.
type InvalidElementError struct {
	V any
}

func (e InvalidElementError) Error() string {
	return fmt.Sprintf("Trees: element %#v can't be ordered", e.V)
}

// validate panics with InvalidElementError if v is a nil pointer, map, slice,
// func, chan or interface.
func validate[T any](v T) {
	switch rv := reflect.ValueOf(&v).Elem(); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			panic(InvalidElementError{v})
		}
	}
}
