package primitive

import (
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindTime
	KindDuration
	KindUUID
	KindPrimitiveEnum // named type over any basic kind, e.g. type Status string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var (
	typeTime     = reflect.TypeFor[time.Time]()
	typeDuration = reflect.TypeFor[time.Duration]()
	typeUUID     = reflect.TypeFor[uuid.UUID]()
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64, KindComplex64, KindComplex128:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsComplex() bool {
	switch k {
	default:
		return false
	case KindComplex64, KindComplex128:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsText reports whether exact values for the kind are given with str.
// Durations are numbers: they take num and honor min and max.
func (k KindEnum) IsText() bool {
	switch k {
	default:
		return false
	case KindString, KindTime, KindUUID:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64, KindDuration:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64, KindComplex64:
		return 64
	case KindComplex128:
		return 128
	}
}

// Type returns the predeclared or well-known type of the kind, nil for
// KindPrimitiveEnum and the invalid kind.
func (k KindEnum) Type() reflect.Type {
	switch k {
	default:
		return nil
	case KindInt:
		return reflect.TypeFor[int]()
	case KindInt8:
		return reflect.TypeFor[int8]()
	case KindInt16:
		return reflect.TypeFor[int16]()
	case KindInt32:
		return reflect.TypeFor[int32]()
	case KindInt64:
		return reflect.TypeFor[int64]()
	case KindUint:
		return reflect.TypeFor[uint]()
	case KindUint8:
		return reflect.TypeFor[uint8]()
	case KindUint16:
		return reflect.TypeFor[uint16]()
	case KindUint32:
		return reflect.TypeFor[uint32]()
	case KindUint64:
		return reflect.TypeFor[uint64]()
	case KindFloat32:
		return reflect.TypeFor[float32]()
	case KindFloat64:
		return reflect.TypeFor[float64]()
	case KindComplex64:
		return reflect.TypeFor[complex64]()
	case KindComplex128:
		return reflect.TypeFor[complex128]()
	case KindBool:
		return reflect.TypeFor[bool]()
	case KindString:
		return reflect.TypeFor[string]()
	case KindTime:
		return typeTime
	case KindDuration:
		return typeDuration
	case KindUUID:
		return typeUUID
	}
}

// FromReflectType classifies rtype. Named types over a basic kind which are
// not one of the well-known types report KindPrimitiveEnum; BaseKind tells
// what they are made of. Everything else reports the invalid zero kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check well-known named types first
	switch rtype {
	case typeTime:
		return KindTime
	case typeDuration:
		return KindDuration
	case typeUUID:
		return KindUUID
	}

	kind := fromBasicKind(rtype.Kind())
	if kind == 0 {
		return 0
	}

	// check if it's a primitive enum type
	if rtype.PkgPath() != "" {
		return KindPrimitiveEnum
	}

	return kind
}

// BaseKind is FromReflectType with primitive enums resolved to the basic
// kind underneath them.
func BaseKind(rtype reflect.Type) KindEnum {
	kind := FromReflectType(rtype)
	if kind != KindPrimitiveEnum {
		return kind
	}

	return fromBasicKind(rtype.Kind())
}

func fromBasicKind(kind reflect.Kind) KindEnum {
	switch kind {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Complex64:
		return KindComplex64
	case reflect.Complex128:
		return KindComplex128
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}
