package node

import (
	"reflect"

	"fixture-generator/primitive"
)

// Dispatch classifies t by the shape a value of it is built with.
// Primitives win over their underlying kind, so time.Time is a primitive
// and not a struct. The empty interface is a primitive too: it receives the
// catch-all canned value.
func Dispatch(t reflect.Type) DispatcherEnum {
	if t == nil {
		return DispatcherUnknown
	}

	if primitive.FromReflectType(t) != 0 {
		return DispatcherPrimitive
	}

	switch t.Kind() {
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return DispatcherPrimitive
		}
		return DispatcherInterface
	case reflect.Ptr:
		return DispatcherPointer
	case reflect.Slice:
		return DispatcherSlice
	case reflect.Array:
		return DispatcherArray
	case reflect.Map:
		return DispatcherMap
	case reflect.Struct:
		return DispatcherStruct
	default:
		return DispatcherUnknown
	}
}

// Base strips every pointer level from t.
func Base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
