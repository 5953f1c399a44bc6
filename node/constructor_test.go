package node_test

import (
	"errors"
	"fixture-generator/node"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

func newPoint(x, y int) *point { return &point{X: x, Y: y} }
func pointValue() point { return point{X: 1} }
func failing(int) (*point, error) { return nil, errors.New("boom") }
func panicking() point { panic("not implemented") }
func nilPoint() *point { return nil }
func onlyError() error { panic("not implemented") }
func variadic(...int) point { panic("not implemented") }
func tooMany() (point, bool, error) { panic("not implemented") }
func notAnError() (point, bool) { panic("not implemented") }
func doublePointer() **point { panic("not implemented") }

func ExampleParseConstructor() {
	desc, err := node.ParseConstructor(newPoint)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Arity(), desc.Out.Kind(), desc.HasErr)

	desc, err = node.ParseConstructor(strconv.Atoi)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Arity(), desc.Out.Kind(), desc.HasErr)

	_, err = node.ParseConstructor(onlyError)
	fmt.Println(err)

	_, err = node.ParseConstructor(variadic)
	fmt.Println(err)

	_, err = node.ParseConstructor(42)
	fmt.Println(err)

	_, err = node.ParseConstructor(doublePointer)
	fmt.Println(err)

	// Output:
	// <nil> node_test newPoint 2 ptr false
	// <nil> strconv Atoi 1 int true
	// provided function is not a recognizable constructor
	// constructor function must not be variadic
	// provided constructor is not a function
	// constructor function does not support double pointers
}

func TestParseConstructorDottedModulePath(t *testing.T) {
	t.Parallel()

	ctor, err := node.ParseConstructor(uuid.New)
	require.NoError(t, err)
	assert.Equal(t, "uuid", ctor.PackageAlias)
	assert.Equal(t, "New", ctor.Name)
	assert.Equal(t, "uuid.New", ctor.String())
}

func TestParseConstructorRejects(t *testing.T) {
	t.Parallel()

	for _, fn := range []any{tooMany, notAnError, nil, (func() point)(nil)} {
		_, err := node.ParseConstructor(fn)
		assert.Error(t, err)
	}
}

func TestConstructorProduces(t *testing.T) {
	t.Parallel()

	ctor, err := node.ParseConstructor(newPoint)
	require.NoError(t, err)

	assert.True(t, ctor.Produces(reflect.TypeFor[point]()))
	assert.True(t, ctor.Produces(reflect.TypeFor[*point]()))
	assert.True(t, ctor.Produces(reflect.TypeFor[any]()))
	assert.False(t, ctor.Produces(reflect.TypeFor[int]()))
}

func TestConstructorCall(t *testing.T) {
	t.Parallel()

	t.Run("dereferences pointer results", func(t *testing.T) {
		t.Parallel()

		ctor, err := node.ParseConstructor(newPoint)
		require.NoError(t, err)

		v, err := ctor.Call(reflect.TypeFor[point](), []reflect.Value{reflect.ValueOf(3), reflect.ValueOf(4)})
		require.NoError(t, err)
		assert.Equal(t, point{X: 3, Y: 4}, v.Interface())
	})

	t.Run("value result", func(t *testing.T) {
		t.Parallel()

		ctor, err := node.ParseConstructor(pointValue)
		require.NoError(t, err)

		v, err := ctor.Call(reflect.TypeFor[point](), nil)
		require.NoError(t, err)
		assert.Equal(t, point{X: 1}, v.Interface())
	})

	t.Run("returned error", func(t *testing.T) {
		t.Parallel()

		ctor, err := node.ParseConstructor(failing)
		require.NoError(t, err)

		_, err = ctor.Call(reflect.TypeFor[point](), []reflect.Value{reflect.ValueOf(1)})
		assert.EqualError(t, err, "boom")
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		ctor, err := node.ParseConstructor(panicking)
		require.NoError(t, err)

		_, err = ctor.Call(reflect.TypeFor[point](), nil)
		assert.ErrorIs(t, err, node.ErrConstructorPanic)
	})

	t.Run("result does not fit", func(t *testing.T) {
		t.Parallel()

		calls := 0
		ctor, err := node.ParseConstructor(func() point { calls++; return point{} })
		require.NoError(t, err)

		_, err = ctor.Call(reflect.TypeFor[int](), nil)
		assert.ErrorIs(t, err, node.ErrWrongResult)
		assert.Zero(t, calls)
	})

	t.Run("nil pointer for a value type", func(t *testing.T) {
		t.Parallel()

		ctor, err := node.ParseConstructor(nilPoint)
		require.NoError(t, err)

		_, err = ctor.Call(reflect.TypeFor[point](), nil)
		assert.Error(t, err)
	})
}
