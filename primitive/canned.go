package primitive

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CannedInteger = 42
	CannedFloat   = 42.5

	// DefaultStringLength is the length of canned strings when nothing else is asked for.
	DefaultStringLength = 10

	alphabet = "abcdefghijklmnopqrstuvwxyz"
)

var (
	CannedTime     = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	CannedDuration = CannedInteger * time.Second
	CannedUUID     = uuid.NewSHA1(uuid.NameSpaceOID, []byte("fixture-generator"))
)

// CannedString returns the first length letters of the alphabet, wrapping
// around as needed: 10 gives "abcdefghij".
func CannedString(length int) string {
	if length <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(length)
	for i := range length {
		b.WriteByte(alphabet[i%len(alphabet)])
	}

	return b.String()
}

// Canned returns the representative value of rtype. The value depends on
// the type alone, so two calls always agree. The empty interface receives
// a canned string. ok is false for types which are not primitive.
func Canned(rtype reflect.Type, length int) (v reflect.Value, ok bool) {
	if rtype == nil {
		return reflect.Value{}, false
	}

	if rtype.Kind() == reflect.Interface {
		if rtype.NumMethod() != 0 {
			return reflect.Value{}, false
		}

		v = reflect.New(rtype).Elem()
		v.Set(reflect.ValueOf(CannedString(length)))
		return v, true
	}

	v = reflect.New(rtype).Elem()

	switch kind := BaseKind(rtype); {
	default:
		return reflect.Value{}, false
	case kind == KindTime:
		v.Set(reflect.ValueOf(CannedTime))
	case kind == KindUUID:
		v.Set(reflect.ValueOf(CannedUUID))
	case kind == KindDuration:
		v.SetInt(int64(CannedDuration))
	case kind.IsSigned():
		v.SetInt(CannedInteger)
	case kind.IsUnsigned():
		v.SetUint(CannedInteger)
	case kind.IsFloat():
		v.SetFloat(CannedFloat)
	case kind.IsComplex():
		v.SetComplex(complex(CannedInteger, 0))
	case kind == KindBool:
		v.SetBool(true)
	case kind == KindString:
		v.SetString(CannedString(length))
	}

	return v, true
}
