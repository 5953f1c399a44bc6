package analyze

import (
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"fixture-generator/internal/mapping"
)

// Field is a relevant struct field: not blank and not excluded by its tag.
type Field struct {
	Name     string
	Index    []int // for reflect.Value.FieldByIndex
	Type     reflect.Type
	Tag      reflect.StructTag
	Exported bool
}

// Setter is a method SetX(v) populating the field named x.
type Setter struct {
	Name  string // method name
	Field string // populated field
	Param reflect.Type
}

// Descriptor is the analyzed shape of a record type.
type Descriptor struct {
	Type       reflect.Type
	FieldNames []string         // every relevant field, sorted
	Setters    []Setter         // sorted by method name
	Fields     map[string]Field // directly assignable fields only

	declared map[string]Field
}

var descriptors sync.Map // reflect.Type -> *Descriptor

// Describe returns the memoized descriptor of t. Pointer types are described
// through their element type, non-struct types have an empty descriptor.
// Concurrent first calls for the same type may both compute it; only one
// result is ever published.
func Describe(t reflect.Type) *Descriptor {
	t = deref(t)
	if t == nil {
		return Build(nil)
	}

	if d, ok := descriptors.Load(t); ok {
		return d.(*Descriptor)
	}

	d, _ := descriptors.LoadOrStore(t, Build(t))
	return d.(*Descriptor)
}

// Build computes the descriptor of t without consulting the cache.
func Build(t reflect.Type) *Descriptor {
	t = deref(t)

	d := &Descriptor{
		Type:     t,
		Fields:   make(map[string]Field),
		declared: make(map[string]Field),
	}
	if t == nil || t.Kind() != reflect.Struct {
		return d
	}

	d.walk(t)

	for name, f := range d.declared {
		d.FieldNames = append(d.FieldNames, name)
		if f.Exported {
			d.Fields[name] = f
		}
	}
	slices.Sort(d.FieldNames)

	d.Setters = setters(reflect.PointerTo(t), d.declared)

	return d
}

// walk collects the fields of t and then of its embedded structs, level by
// level. The first field seen under a name wins.
func (d *Descriptor) walk(t reflect.Type) {
	type level struct {
		typ   reflect.Type
		index []int
	}

	queue := []level{{typ: t}}
	seen := map[reflect.Type]bool{t: true}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for i := range cur.typ.NumField() {
			sf := cur.typ.Field(i)
			if sf.Name == "_" || mapping.IsExcluded(sf.Tag.Get(mapping.TagKey)) {
				continue
			}

			index := append(slices.Clone(cur.index), i)

			if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
				if !seen[sf.Type] {
					seen[sf.Type] = true
					queue = append(queue, level{typ: sf.Type, index: index})
				}
				continue
			}

			if _, ok := d.declared[sf.Name]; ok {
				continue
			}

			d.declared[sf.Name] = Field{
				Name:     sf.Name,
				Index:    index,
				Type:     sf.Type,
				Tag:      sf.Tag,
				Exported: sf.IsExported(),
			}
		}
	}
}

func setters(ptr reflect.Type, declared map[string]Field) []Setter {
	byLower := make(map[string]Field, len(declared))
	for _, f := range declared {
		key := lowerFirst(f.Name)
		if prev, ok := byLower[key]; !ok || f.Name < prev.Name {
			byLower[key] = f
		}
	}

	var res []Setter
	for i := range ptr.NumMethod() {
		m := ptr.Method(i)

		suffix, ok := strings.CutPrefix(m.Name, "Set")
		if !ok || suffix == "" {
			continue
		}
		// receiver plus exactly one argument, no results
		if m.Type.NumIn() != 2 || m.Type.NumOut() != 0 {
			continue
		}

		f, ok := byLower[lowerFirst(suffix)]
		if !ok {
			continue
		}

		param := m.Type.In(1)
		if !param.AssignableTo(f.Type) {
			continue
		}

		res = append(res, Setter{Name: m.Name, Field: f.Name, Param: param})
	}

	slices.SortFunc(res, func(a, b Setter) int { return strings.Compare(a.Name, b.Name) })

	return res
}

// Field looks up a relevant field, exported or not.
func (d *Descriptor) Field(name string) (Field, bool) {
	f, ok := d.declared[name]
	return f, ok
}

// HasSetter reports whether a setter populates the field.
func (d *Descriptor) HasSetter(field string) bool {
	return slices.ContainsFunc(d.Setters, func(s Setter) bool { return s.Field == field })
}

// Assignable lists the directly assignable fields without a setter, sorted by
// name.
func (d *Descriptor) Assignable() []Field {
	var res []Field
	for _, name := range d.FieldNames {
		f, ok := d.Fields[name]
		if ok && !d.HasSetter(name) {
			res = append(res, f)
		}
	}

	return res
}

// Equal reports value equality of two descriptors.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}

	if d.Type != other.Type ||
		!slices.Equal(d.FieldNames, other.FieldNames) ||
		!slices.Equal(d.Setters, other.Setters) ||
		len(d.declared) != len(other.declared) {
		return false
	}

	for name, f := range d.declared {
		g, ok := other.declared[name]
		if !ok || !f.equal(g) {
			return false
		}
	}

	for name := range d.Fields {
		if _, ok := other.Fields[name]; !ok {
			return false
		}
	}

	return len(d.Fields) == len(other.Fields)
}

func (f Field) equal(g Field) bool {
	return f.Name == g.Name &&
		slices.Equal(f.Index, g.Index) &&
		f.Type == g.Type &&
		f.Tag == g.Tag &&
		f.Exported == g.Exported
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
