package primitive_test

import (
	"fixture-generator/primitive"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uuid.UUID{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.BaseKind(reflect.TypeOf(StringEnum(""))))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindDuration
	// KindTime
	// KindUUID
	// KindEnum(0)
	// KindString
}

func TestKindType(t *testing.T) {
	t.Parallel()

	for k := primitive.KindInt; int(k) < primitive.KindTotal; k++ {
		if k == primitive.KindPrimitiveEnum {
			assert.Nil(t, k.Type())
			continue
		}
		assert.Equal(t, k, primitive.FromReflectType(k.Type()), k.String())
	}

	assert.Nil(t, primitive.KindEnum(0).Type())
}
