package mapping

import (
	"errors"
	"reflect"
	"strconv"

	"fixture-generator/primitive"
)

// Family groups field types by the attributes that apply to them.
type Family int

const (
	FamilyOther Family = iota
	FamilyNumber
	FamilyText
	FamilyBool
	FamilySequence // slices and arrays
	FamilyMapping
	FamilyRecord
)

// String returns a human-readable family name.
func (f Family) String() string {
	switch f {
	case FamilyNumber:
		return "number"
	case FamilyText:
		return "text"
	case FamilyBool:
		return "bool"
	case FamilySequence:
		return "sequence"
	case FamilyMapping:
		return "mapping"
	case FamilyRecord:
		return "record"
	default:
		return "other"
	}
}

// FamilyOf classifies a runtime type. Pointers are classified by what they
// point to.
func FamilyOf(t reflect.Type) Family {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return FamilyOther
	}

	switch kind := primitive.BaseKind(t); {
	case kind == primitive.KindBool:
		return FamilyBool
	case kind.IsNumber() || kind == primitive.KindDuration:
		return FamilyNumber
	case kind.IsText():
		return FamilyText
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return FamilySequence
	case reflect.Map:
		return FamilyMapping
	case reflect.Struct, reflect.Interface:
		return FamilyRecord
	default:
		return FamilyOther
	}
}

// Problem is a single finding about an override.
type Problem struct {
	Code    string
	Message string
	Fatal   bool
}

// Problems reports attributes that do not apply to a field of the given
// family, and statically detectable format errors. Attributes that do not
// apply are ignored when manufacturing, so they are reported as non-fatal.
//
// kind is what num, min and max are read as: the kind of the field, or of
// the elements of a container field. The invalid zero kind skips the format
// checks.
func (o FieldOverride) Problems(family Family, kind primitive.KindEnum) []Problem {
	var res []Problem

	ignored := func(attr string) {
		res = append(res, Problem{
			Code:    "ignored_attribute",
			Message: attr + " has no effect on a " + family.String() + " field",
		})
	}

	if o.Exclude {
		rest := o
		rest.Exclude = false
		if !rest.IsZero() {
			res = append(res, Problem{Code: "excluded_with_attributes", Message: "field is excluded, other attributes are ignored"})
		}
		return res
	}

	// A custom strategy takes over the whole field.
	if o.Strategy != "" {
		return res
	}

	if o.Num != nil {
		if family != FamilyNumber {
			ignored("num")
		} else if p, ok := parseProblem("num", *o.Num, kind); !ok {
			res = append(res, p)
		}
	}

	if o.HasRange() {
		switch {
		case family != FamilyNumber && family != FamilySequence && family != FamilyMapping:
			ignored("min/max")
		case family == FamilyNumber && kind.IsComplex():
			ignored("min/max")
		default:
			res = append(res, o.rangeProblems(kind)...)
		}
	}

	if o.Str != nil && family != FamilyText {
		ignored("str")
	}

	if o.Len != nil && family != FamilyText && family != FamilySequence && family != FamilyMapping {
		ignored("len")
	}

	if o.Size != nil && family != FamilySequence && family != FamilyMapping {
		ignored("size")
	}

	if o.Elem != "" && family != FamilySequence {
		ignored("elem")
	}

	if (o.Key != "" || o.Value != "") && family != FamilyMapping {
		ignored("key/value")
	}

	return res
}

// rangeProblems checks min and max against the kinds clamping applies to.
func (o FieldOverride) rangeProblems(kind primitive.KindEnum) []Problem {
	if !kind.IsInteger() && !kind.IsFloat() && kind != primitive.KindDuration {
		return nil
	}

	var res []Problem
	valid := true
	for _, bound := range []struct{ name, text string }{{"min", o.Min}, {"max", o.Max}} {
		if bound.text == "" {
			continue
		}
		if p, ok := parseProblem(bound.name, bound.text, kind); !ok {
			res = append(res, p)
			valid = false
		}
	}

	if valid {
		_, err := primitive.Clamp(reflect.Zero(kind.Type()), o.Min, o.Max)
		if errors.Is(err, primitive.ErrInvalidRange) {
			res = append(res, Problem{Code: "invalid_range", Message: "min is greater than max", Fatal: true})
		}
	}

	return res
}

// parseProblem parses text the way an exact value of kind is parsed.
func parseProblem(attr, text string, kind primitive.KindEnum) (Problem, bool) {
	typ := kind.Type()
	if typ == nil {
		return Problem{}, true
	}

	if _, err := primitive.ParseExact(typ, text); err != nil {
		return Problem{
			Code:    "invalid_number",
			Message: attr + " " + strconv.Quote(text) + " is not a valid " + typ.String(),
			Fatal:   true,
		}, false
	}

	return Problem{}, true
}
