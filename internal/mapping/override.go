package mapping

import "reflect"

// TagKey is the struct tag consulted for field metadata.
const TagKey = "fixture"

// FieldOverride is the parsed metadata of one field or parameter.
// Pointer attributes distinguish "unset" from an explicit zero: str='' asks
// for an empty string, while no str at all asks for a generated one.
type FieldOverride struct {
	Exclude bool

	Num *string // exact number, as text
	Min string  // empty means open
	Max string  // empty means open

	Str *string // exact text
	Len *int    // generated string length

	Size *int // container element count

	Strategy string // strategy for the whole value
	Elem     string // strategy for slice and array elements
	Key      string // strategy for map keys
	Value    string // strategy for map values

	Comment string
}

// FromStructTag parses the fixture tag of a struct field. A missing tag
// yields the zero override.
func FromStructTag(tag reflect.StructTag) (FieldOverride, error) {
	body, ok := tag.Lookup(TagKey)
	if !ok {
		return FieldOverride{}, nil
	}

	return Parse(body)
}

// IsZero reports whether the override changes nothing.
func (o FieldOverride) IsZero() bool {
	return !o.Exclude && o.Num == nil && o.Min == "" && o.Max == "" &&
		o.Str == nil && o.Len == nil && o.Size == nil &&
		o.Strategy == "" && o.Elem == "" && o.Key == "" && o.Value == ""
}

// HasRange reports whether a bound is present.
func (o FieldOverride) HasRange() bool {
	return o.Min != "" || o.Max != ""
}

// Merge layers other on top of o: every attribute set in other wins.
func (o FieldOverride) Merge(other FieldOverride) FieldOverride {
	res := o

	if other.Exclude {
		res.Exclude = true
	}
	if other.Num != nil {
		res.Num = other.Num
	}
	if other.Min != "" {
		res.Min = other.Min
	}
	if other.Max != "" {
		res.Max = other.Max
	}
	if other.Str != nil {
		res.Str = other.Str
	}
	if other.Len != nil {
		res.Len = other.Len
	}
	if other.Size != nil {
		res.Size = other.Size
	}
	if other.Strategy != "" {
		res.Strategy = other.Strategy
	}
	if other.Elem != "" {
		res.Elem = other.Elem
	}
	if other.Key != "" {
		res.Key = other.Key
	}
	if other.Value != "" {
		res.Value = other.Value
	}
	if other.Comment != "" {
		res.Comment = other.Comment
	}

	return res
}

// ForElem derives the override of a slice or array element. The element
// strategy becomes the slot strategy; string length and numeric bounds
// carry over, exact values do not.
func (o FieldOverride) ForElem() FieldOverride {
	return FieldOverride{
		Strategy: o.Elem,
		Len:      o.Len,
		Min:      o.Min,
		Max:      o.Max,
	}
}

// ForKey derives the override of a map key.
func (o FieldOverride) ForKey() FieldOverride {
	return FieldOverride{
		Strategy: o.Key,
		Len:      o.Len,
	}
}

// ForValue derives the override of a map value.
func (o FieldOverride) ForValue() FieldOverride {
	return FieldOverride{
		Strategy: o.Value,
		Len:      o.Len,
		Min:      o.Min,
		Max:      o.Max,
	}
}

// Strategies lists every strategy name the override refers to.
func (o FieldOverride) Strategies() []string {
	var names []string
	for _, name := range []string{o.Strategy, o.Elem, o.Key, o.Value} {
		if name != "" {
			names = append(names, name)
		}
	}

	return names
}
