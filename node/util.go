package node

import (
	"reflect"
	"strconv"
)

// TypeStr renders t with full package paths for named types. Named types
// are never expanded, so types holding themselves render too.
func TypeStr(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeStr(t.Elem())
	case reflect.Slice:
		return "[]" + TypeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeStr(t.Elem())
	case reflect.Map:
		return "map[" + TypeStr(t.Key()) + "]" + TypeStr(t.Elem())
	default:
		return t.String()
	}
}

var typeError = reflect.TypeFor[error]()

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(typeError)
}
