package mapping

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  string
		want FieldOverride
	}{
		{"empty", "", FieldOverride{}},
		{"exclude dash", "-", FieldOverride{Exclude: true}},
		{"exclude word", "exclude,comment=legacy", FieldOverride{Exclude: true, Comment: "legacy"}},
		{"exact number", "num=42", FieldOverride{Num: ptr("42")}},
		{"range", "min=1, max=10", FieldOverride{Min: "1", Max: "10"}},
		{"exact number with range", "num=42,min=1,max=10", FieldOverride{Num: ptr("42"), Min: "1", Max: "10"}},
		{"exact string", "str=abc,len=5", FieldOverride{Str: ptr("abc"), Len: ptr(5)}},
		{"quoted string", "str='a, b'", FieldOverride{Str: ptr("a, b")}},
		{"escaped quote", "str='it''s'", FieldOverride{Str: ptr("it's")}},
		{"empty string", "str=''", FieldOverride{Str: ptr("")}},
		{"container", "size=2,elem=birthday", FieldOverride{Size: ptr(2), Elem: "birthday"}},
		{"map", "size=3,key=sku,value=price", FieldOverride{Size: ptr(3), Key: "sku", Value: "price"}},
		{"strategy", "strategy=postCode", FieldOverride{Strategy: "postCode"}},
		{"trailing comma", "len=4,", FieldOverride{Len: ptr(4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want error
	}{
		{"str='abc", ErrUnterminatedQuote},
		{"colour=red", ErrUnknownAttribute},
		{"num", ErrMissingValue},
		{"len=ten", ErrInvalidCount},
		{"size=-1", ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.tag)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.tag, syntaxErr.Tag)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{
		"num=42,min=1,max=10",
		"str='a, b',len=3",
		"size=2,elem=birthday,key=k,value=v",
		"-",
		"strategy=postCode,comment='for tests'",
		"str=''",
	} {
		o, err := Parse(tag)
		require.NoError(t, err)

		back, err := Parse(Format(o))
		require.NoError(t, err)
		assert.Equal(t, o, back, tag)
	}
}

func TestFromStructTag(t *testing.T) {
	t.Parallel()

	type sample struct {
		Plain  string
		Tagged string `json:"tagged" fixture:"len=3"`
	}

	typ := reflect.TypeFor[sample]()

	o, err := FromStructTag(typ.Field(0).Tag)
	require.NoError(t, err)
	assert.True(t, o.IsZero())

	o, err = FromStructTag(typ.Field(1).Tag)
	require.NoError(t, err)
	assert.Equal(t, ptr(3), o.Len)
}

func TestIsExcluded(t *testing.T) {
	t.Parallel()

	assert.True(t, IsExcluded("-"))
	assert.True(t, IsExcluded("comment=x, exclude"))
	assert.False(t, IsExcluded("str='-'"))
	assert.False(t, IsExcluded(""))
	assert.False(t, IsExcluded("str='broken"))
}
