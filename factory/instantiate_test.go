package factory_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/factory"
	"fixture-generator/node"
)

var errBoom = errors.New("boom")

type point struct {
	X, Y, Z int
	Via     string
}

func newPoint(x int) point {
	return point{X: x, Via: "one"}
}

func newPoint3(x, y, z int) *point {
	return &point{X: x, Y: y, Z: z, Via: "three"}
}

func newPointFailing(x, y, z int) (point, error) {
	return point{}, errBoom
}

func newPointPanicking(x, y int) point {
	panic("no points today")
}

type greeter interface {
	Greet() string
}

type english struct {
	Name string
}

func (e english) Greet() string {
	return "hello " + e.Name
}

func TestConstructorSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []factory.Option
		want point
	}{
		{
			name: "most parameters first",
			opts: []factory.Option{
				factory.WithConstructor(newPoint),
				factory.WithConstructor(newPoint3, "num=1", "num=2", "num=3"),
			},
			want: point{X: 1, Y: 2, Z: 3, Via: "three"},
		},
		{
			name: "registration order does not matter",
			opts: []factory.Option{
				factory.WithConstructor(newPoint3),
				factory.WithConstructor(newPoint),
			},
			want: point{X: 42, Y: 42, Z: 42, Via: "three"},
		},
		{
			name: "ties keep registration order",
			opts: []factory.Option{
				factory.WithConstructor(func(x int) point { return point{Via: "first"} }),
				factory.WithConstructor(func(x int) point { return point{Via: "second"} }),
			},
			want: point{Via: "first"},
		},
		{
			name: "failure moves on",
			opts: []factory.Option{
				factory.WithConstructor(newPoint),
				factory.WithConstructor(newPointFailing),
			},
			want: point{X: 42, Via: "one"},
		},
		{
			name: "panic moves on",
			opts: []factory.Option{
				factory.WithConstructor(newPointPanicking),
				factory.WithConstructor(newPoint, "num=9"),
			},
			want: point{X: 9, Via: "one"},
		},
		{
			name: "all failing falls back to the zero value",
			opts: []factory.Option{
				factory.WithConstructor(newPointFailing),
				factory.WithConstructor(newPointPanicking),
			},
			want: point{X: 42, Y: 42, Z: 42, Via: "abcdefghij"},
		},
		{
			name: "designated wins",
			opts: []factory.Option{
				factory.WithConstructor(newPoint3),
				factory.WithDesignatedConstructor(newPoint),
			},
			want: point{X: 42, Via: "one"},
		},
		{
			name: "no constructor",
			want: point{X: 42, Y: 42, Z: 42, Via: "abcdefghij"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := factory.New(tt.opts...)
			require.NoError(t, m.Err())

			got, err := factory.Manufacture[point](m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConstructorErrors(t *testing.T) {
	t.Parallel()

	t.Run("designated failure is final", func(t *testing.T) {
		t.Parallel()

		m := factory.New(
			factory.WithDesignatedConstructor(newPointFailing),
			factory.WithConstructor(newPoint),
		)

		_, err := factory.Manufacture[point](m)
		require.ErrorIs(t, err, factory.ErrUnsupportedType)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("designated twice", func(t *testing.T) {
		t.Parallel()

		m := factory.New(
			factory.WithDesignatedConstructor(newPoint),
			factory.WithDesignatedConstructor(newPoint3),
		)
		require.ErrorIs(t, m.Err(), factory.ErrDesignatedTwice)

		_, err := factory.Manufacture[point](m)
		assert.ErrorIs(t, err, factory.ErrDesignatedTwice)
	})

	t.Run("strategy failure is not recovered", func(t *testing.T) {
		t.Parallel()

		m := factory.New(
			factory.WithConstructor(newPoint3, "strategy=missing"),
			factory.WithConstructor(newPoint),
		)

		_, err := factory.Manufacture[point](m)
		assert.ErrorIs(t, err, factory.ErrStrategyInvocation)
	})

	t.Run("metadata failure is not recovered", func(t *testing.T) {
		t.Parallel()

		m := factory.New(
			factory.WithConstructor(newPoint3, "num=1", "num=abc"),
			factory.WithConstructor(newPoint),
		)

		_, err := factory.Manufacture[point](m)
		require.ErrorIs(t, err, factory.ErrMetadataFormat)

		var metadata *factory.MetadataFormatError
		require.ErrorAs(t, err, &metadata)
		assert.Equal(t, "point.newPoint3(1)", metadata.Path)
	})

	t.Run("invalid registrations", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, factory.New(factory.WithConstructor(42)).Err(), node.ErrConstructorIsNotAFunction)
		assert.ErrorIs(t, factory.New(factory.WithConstructor(func(...int) point { return point{} })).Err(), node.ErrVariadic)
		assert.Error(t, factory.New(factory.WithConstructor(newPoint, "num=1", "num=2")).Err())
		assert.Error(t, factory.New(factory.WithConstructor(newPoint, "size=x")).Err())
	})
}

func TestInterfaces(t *testing.T) {
	t.Parallel()

	t.Run("without constructor", func(t *testing.T) {
		t.Parallel()

		got, err := factory.Manufacture[greeter](factory.New())
		require.ErrorIs(t, err, factory.ErrUnsupportedType)
		assert.Nil(t, got)
	})

	t.Run("with constructor", func(t *testing.T) {
		t.Parallel()

		m := factory.New(factory.WithConstructor(func(name string) greeter { return english{Name: name} }, "str=Ann"))

		got, err := factory.Manufacture[greeter](m)
		require.NoError(t, err)
		assert.Equal(t, "hello Ann", got.Greet())
	})

	t.Run("constructor failing", func(t *testing.T) {
		t.Parallel()

		m := factory.New(factory.WithConstructor(func() (greeter, error) { return nil, errBoom }))

		_, err := factory.Manufacture[greeter](m)
		require.ErrorIs(t, err, factory.ErrUnsupportedType)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("as a field", func(t *testing.T) {
		t.Parallel()

		type party struct {
			Host   greeter
			Guests []greeter `fixture:"size=2"`
		}

		m := factory.New(factory.WithConstructor(func() greeter { return english{Name: "Bo"} }))

		got, err := factory.Manufacture[party](m)
		require.NoError(t, err)
		assert.Equal(t, english{Name: "Bo"}, got.Host)
		assert.Len(t, got.Guests, 2)
	})
}

type account struct {
	Email string `fixture:"strategy=email"`
	owner string
	Score int `fixture:"num=3"`
}

func (a *account) SetEmail(email string) {
	a.Email = strings.ToUpper(email)
}

func (a *account) SetOwner(owner string) {
	a.owner = "owner:" + owner
}

func (a account) Owner() string {
	return a.owner
}

type fragile struct {
	Name string
}

func (f *fragile) SetName(string) {
	panic("read only")
}

func TestSetters(t *testing.T) {
	t.Parallel()

	m := factory.New(factory.WithStrategyFunc("email", func() (string, error) { return "jane@example.com", nil }))

	got, err := factory.Manufacture[account](m)
	require.NoError(t, err)

	assert.Equal(t, "JANE@EXAMPLE.COM", got.Email)
	assert.Equal(t, "owner:abcdefghij", got.Owner())
	assert.Equal(t, 3, got.Score)

	_, err = factory.Manufacture[fragile](m)
	assert.ErrorIs(t, err, factory.ErrSetterPanic)
}
