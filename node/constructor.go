package node

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"fixture-generator/utils"
)

var (
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrDoublePointer             = errors.New("constructor function does not support double pointers")
	ErrVariadic                  = errors.New("constructor function must not be variadic")
	ErrConstructorPanic          = errors.New("constructor panicked")
	ErrWrongResult               = errors.New("constructor result does not fit")
)

// Constructor describes a function able to produce values of a type.
type Constructor struct {
	Fn           reflect.Value
	Out          reflect.Type   // declared result type, T or *T
	Params       []reflect.Type // parameter types in declaration order
	PackageAlias string
	Name         string
	HasErr       bool
}

// ParseConstructor inspects the provided function and returns a Constructor
// if it has one of the supported shapes:
//   - func(args...) T
//   - func(args...) *T
//   - func(args...) (T, error)
//   - func(args...) (*T, error)
func ParseConstructor(fn any) (Constructor, error) {
	if fn == nil {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	if fnVal.IsNil() {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	if fnType.IsVariadic() {
		return Constructor{}, ErrVariadic
	}

	if fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return Constructor{}, ErrIsNotAConstructor
	}

	out := fnType.Out(0)
	if out.Kind() == reflect.Ptr && out.Elem().Kind() == reflect.Ptr {
		return Constructor{}, ErrDoublePointer
	}

	if out == typeError {
		return Constructor{}, ErrIsNotAConstructor
	}

	ctor := Constructor{
		Fn:  fnVal,
		Out: out,
	}

	for i := range fnType.NumIn() {
		ctor.Params = append(ctor.Params, fnType.In(i))
	}

	if fnType.NumOut() == 2 {
		if !isError(fnType.Out(1)) {
			return Constructor{}, ErrIsNotAConstructor
		}
		ctor.HasErr = true
	}

	// Get the function object from the pointer
	if fnPC := runtime.FuncForPC(fnVal.Pointer()); fnPC != nil {
		pkgPath, name := splitFuncName(fnPC.Name())
		ctor.Name = name
		ctor.PackageAlias = utils.Second(path.Split(pkgPath))
	}

	return ctor, nil
}

// splitFuncName splits a runtime function name such as
// "github.com/acme/shop.NewOrder" or "example/shop.(*Cart).New.func1" into
// the package path and the name within the package. Package paths may hold
// dots, names after the last slash may not.
func splitFuncName(full string) (pkgPath, name string) {
	slash := strings.LastIndex(full, "/") + 1
	dot := strings.Index(full[slash:], ".")
	if dot < 0 {
		return "", full
	}

	return full[:slash+dot], full[slash+dot+1:]
}

// Produces reports whether the constructor yields values assignable to t,
// either directly or after dereferencing its pointer result.
func (c Constructor) Produces(t reflect.Type) bool {
	if c.Out.AssignableTo(t) {
		return true
	}

	return c.Out.Kind() == reflect.Ptr && c.Out.Elem().AssignableTo(t)
}

// Arity is the number of parameters.
func (c Constructor) Arity() int {
	return len(c.Params)
}

// String names the constructor for logs and errors.
func (c Constructor) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}

// Call invokes the constructor and converts its result to t. A returned
// error, a nil pointer result for a value type and a panic are all reported
// as errors. The function is not invoked when it cannot produce t.
func (c Constructor) Call(t reflect.Type, args []reflect.Value) (v reflect.Value, err error) {
	if !c.Produces(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s produces %s, not %s", ErrWrongResult, c, c.Out, t)
	}

	defer func() {
		if rec := recover(); rec != nil {
			v = reflect.Value{}
			err = fmt.Errorf("%w: %s: %v", ErrConstructorPanic, c, rec)
		}
	}()

	results := c.Fn.Call(args)
	if c.HasErr {
		if errVal := results[1]; !errVal.IsNil() {
			return reflect.Value{}, errVal.Interface().(error)
		}
	}

	out := results[0]
	if !out.Type().AssignableTo(t) {
		// a *T result for t
		if out.IsNil() {
			return reflect.Value{}, fmt.Errorf("%s returned a nil %s", c, out.Type())
		}
		out = out.Elem()
	}

	res := reflect.New(t).Elem()
	res.Set(out)

	return res, nil
}
