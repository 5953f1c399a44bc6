package primitive

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	"fixture-generator/utils"
)

var (
	ErrNotPrimitive = errors.New("type is not a primitive")
	ErrInvalidRange = errors.New("min value is greater than max value")
)

// ParseExact converts text into a value of rtype. Numbers are parsed with the
// bit size of the kind, so "300" does not fit an int8. Durations accept
// either integer nanoseconds or time.ParseDuration syntax, times RFC 3339.
func ParseExact(rtype reflect.Type, text string) (reflect.Value, error) {
	kind := BaseKind(rtype)
	if kind == 0 {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotPrimitive, rtype)
	}

	v := reflect.New(rtype).Elem()

	switch {
	case kind == KindDuration:
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			v.SetInt(n)
			return v, nil
		}

		d, err := time.ParseDuration(text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(int64(d))

	case kind == KindTime:
		t, err := time.Parse(time.RFC3339Nano, text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.Set(reflect.ValueOf(t))

	case kind == KindUUID:
		id, err := uuid.Parse(text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.Set(reflect.ValueOf(id))

	case kind.IsSigned():
		n, err := strconv.ParseInt(text, 10, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(n)

	case kind.IsUnsigned():
		n, err := strconv.ParseUint(text, 10, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetUint(n)

	case kind.IsFloat():
		f, err := strconv.ParseFloat(text, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetFloat(f)

	case kind.IsComplex():
		c, err := strconv.ParseComplex(text, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetComplex(c)

	case kind == KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)

	case kind == KindString:
		v.SetString(text)
	}

	return v, nil
}

// Clamp moves v into the inclusive range given by the textual bounds min and
// max; an empty bound is open. Only integer, float and duration kinds have a
// range, any other value is returned untouched.
func Clamp(v reflect.Value, min, max string) (reflect.Value, error) {
	kind := BaseKind(v.Type())
	if !kind.IsInteger() && !kind.IsFloat() && kind != KindDuration {
		return v, nil
	}
	if min == "" && max == "" {
		return v, nil
	}

	var lo, hi reflect.Value
	if min != "" {
		parsed, err := ParseExact(v.Type(), min)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("min: %w", err)
		}
		lo = parsed
	}
	if max != "" {
		parsed, err := ParseExact(v.Type(), max)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("max: %w", err)
		}
		hi = parsed
	}

	switch {
	case kind.IsUnsigned():
		return clampOrdered(v, lo, hi, reflect.Value.Uint)
	case kind.IsFloat():
		return clampOrdered(v, lo, hi, reflect.Value.Float)
	default:
		return clampOrdered(v, lo, hi, reflect.Value.Int)
	}
}

// clampOrdered treats an invalid lo or hi as an open bound.
func clampOrdered[T int64 | uint64 | float64](v, lo, hi reflect.Value, get func(reflect.Value) T) (reflect.Value, error) {
	x := get(v)
	lower, upper := x, x
	if lo.IsValid() {
		lower = get(lo)
	}
	if hi.IsValid() {
		upper = get(hi)
	}
	if lo.IsValid() && hi.IsValid() && lower > upper {
		return reflect.Value{}, ErrInvalidRange
	}
	if !hi.IsValid() {
		upper = max(x, lower)
	}
	if !lo.IsValid() {
		lower = min(x, upper)
	}

	switch {
	case utils.IsInRange(lower, x, upper):
		return v, nil
	case x < lower:
		return lo, nil
	default:
		return hi, nil
	}
}
