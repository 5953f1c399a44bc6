package analyze

import (
	"go/types"
	"reflect"
	"slices"

	"fixture-generator/internal/common"
	"fixture-generator/internal/mapping"
	"fixture-generator/primitive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "fixture-generator/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map with key and element types
	TypeKindInterface          // interface type
	TypeKindAlias              // named type wrapping another
	TypeKindExternal           // well-known opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	KeyType    *TypeInfo   // For maps, the key type
	ElemType   *TypeInfo   // For pointers, slices, arrays and maps, the element type
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// ValueKind is the primitive kind num, min and max of a field of this type
// are read as: its own kind, or the kind of its elements for containers.
// It returns the invalid zero kind when neither is a primitive.
func (t *TypeInfo) ValueKind() primitive.KindEnum {
	t = derefInfo(t)
	if k := t.primitiveKind(); k != 0 {
		return k
	}

	if t != nil && t.Kind == TypeKindAlias {
		t = t.Underlying
	}
	if t == nil {
		return 0
	}

	switch t.Kind {
	case TypeKindSlice, TypeKindArray, TypeKindMap:
		return derefInfo(t.ElemType).primitiveKind()
	default:
		return 0
	}
}

func (t *TypeInfo) primitiveKind() primitive.KindEnum {
	if t == nil {
		return 0
	}

	switch t.Kind {
	case TypeKindBasic:
		basic, ok := t.GoType.Underlying().(*types.Basic)
		if !ok {
			return 0
		}
		return basicKinds[basic.Kind()]
	case TypeKindAlias:
		if t.Underlying != nil && t.Underlying.Kind == TypeKindBasic {
			return t.Underlying.primitiveKind()
		}
		return 0
	case TypeKindExternal:
		switch t.ID {
		case timeID:
			return primitive.KindTime
		case durationID:
			return primitive.KindDuration
		case uuidID:
			return primitive.KindUUID
		}
	}

	return 0
}

func derefInfo(t *TypeInfo) *TypeInfo {
	for t != nil && t.Kind == TypeKindPointer {
		t = t.ElemType
	}

	return t
}

var basicKinds = map[types.BasicKind]primitive.KindEnum{
	types.Int:        primitive.KindInt,
	types.Int8:       primitive.KindInt8,
	types.Int16:      primitive.KindInt16,
	types.Int32:      primitive.KindInt32,
	types.Int64:      primitive.KindInt64,
	types.Uint:       primitive.KindUint,
	types.Uint8:      primitive.KindUint8,
	types.Uint16:     primitive.KindUint16,
	types.Uint32:     primitive.KindUint32,
	types.Uint64:     primitive.KindUint64,
	types.Float32:    primitive.KindFloat32,
	types.Float64:    primitive.KindFloat64,
	types.Complex64:  primitive.KindComplex64,
	types.Complex128: primitive.KindComplex128,
	types.Bool:       primitive.KindBool,
	types.String:     primitive.KindString,
}

// Family classifies the type by the fixture attributes that apply to it.
func (t *TypeInfo) Family() mapping.Family {
	if t == nil {
		return mapping.FamilyOther
	}

	switch t.Kind {
	case TypeKindBasic:
		basic, ok := t.GoType.Underlying().(*types.Basic)
		if !ok {
			return mapping.FamilyOther
		}
		switch info := basic.Info(); {
		case info&types.IsBoolean != 0:
			return mapping.FamilyBool
		case info&types.IsNumeric != 0:
			return mapping.FamilyNumber
		case info&types.IsString != 0:
			return mapping.FamilyText
		}
		return mapping.FamilyOther

	case TypeKindAlias:
		if t.ID == durationID {
			return mapping.FamilyNumber
		}
		return t.Underlying.Family()

	case TypeKindExternal:
		if t.ID == durationID {
			return mapping.FamilyNumber
		}
		return mapping.FamilyText

	case TypeKindPointer:
		return t.ElemType.Family()

	case TypeKindSlice, TypeKindArray:
		return mapping.FamilySequence

	case TypeKindMap:
		return mapping.FamilyMapping

	case TypeKindStruct, TypeKindInterface:
		return mapping.FamilyRecord

	default:
		return mapping.FamilyOther
	}
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// FixtureTag returns the body of the fixture tag and whether it is present.
func (f *FieldInfo) FixtureTag() (string, bool) {
	return f.Tag.Lookup(mapping.TagKey)
}

// Override parses the fixture tag of the field.
func (f *FieldInfo) Override() (mapping.FieldOverride, error) {
	return mapping.FromStructTag(f.Tag)
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Lookup finds a named type by "alias.Name", the package alias being the last
// element of the import path.
func (g *TypeGraph) Lookup(qualified string) (*TypeInfo, bool) {
	for id, info := range g.Types {
		if common.PkgAlias(id.PkgPath)+"."+id.Name == qualified || id.String() == qualified {
			return info, true
		}
	}

	return nil, false
}

// Names lists every named type as "alias.Name".
func (g *TypeGraph) Names() []string {
	res := make([]string, 0, len(g.Types))
	for id := range g.Types {
		res = append(res, common.PkgAlias(id.PkgPath)+"."+id.Name)
	}
	slices.Sort(res)

	return res
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
