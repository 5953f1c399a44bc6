package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/mapping"
	"fixture-generator/primitive"
)

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages("fixture-generator/store")
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func field(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}
	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)

	assert.Contains(t, graph.Packages, "fixture-generator/store")
	assert.Contains(t, graph.Types, TypeID{PkgPath: "fixture-generator/store", Name: "Order"})
	assert.Equal(t, []string{
		"store.Customer",
		"store.Order",
		"store.OrderItem",
		"store.OrderStatus",
		"store.Product",
	}, graph.Names())
}

func TestAnalyzer_StoreOrderFields(t *testing.T) {
	graph := loadStore(t)

	order, ok := graph.Lookup("store.Order")
	require.True(t, ok)
	assert.Equal(t, TypeKindStruct, order.Kind)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"ID", "Customer", "Status", "TotalCents", "Items", "Notes", "OrderedAt"}, names)

	items := field(t, order, "Items")
	assert.Equal(t, TypeKindSlice, items.Type.Kind)
	assert.Equal(t, TypeKindStruct, items.Type.ElemType.Kind)
	assert.Equal(t, mapping.FamilySequence, items.Type.Family())

	customer := field(t, order, "Customer")
	assert.Equal(t, TypeKindPointer, customer.Type.Kind)
	assert.Equal(t, mapping.FamilyRecord, customer.Type.Family())

	orderedAt := field(t, order, "OrderedAt")
	assert.Equal(t, TypeKindExternal, orderedAt.Type.Kind)
	assert.Equal(t, mapping.FamilyText, orderedAt.Type.Family())
}

func TestAnalyzer_FieldTags(t *testing.T) {
	graph := loadStore(t)

	product, err := NewAnalyzer().GetStruct("fixture-generator/store", "Product")
	assert.Error(t, err, "a fresh analyzer has loaded nothing")
	assert.Nil(t, product)

	product, ok := graph.Lookup("fixture-generator/store.Product")
	require.True(t, ok)

	sku := field(t, product, "SKU")
	body, ok := sku.FixtureTag()
	assert.True(t, ok)
	assert.Equal(t, "str=SKU-0001", body)
	assert.True(t, sku.HasTag("json"))
	assert.Equal(t, "sku", sku.GetTag("json"))

	ov, err := field(t, product, "PriceCents").Override()
	require.NoError(t, err)
	assert.Equal(t, "100", ov.Min)
	assert.Equal(t, "99999", ov.Max)

	_, ok = field(t, product, "ID").FixtureTag()
	assert.False(t, ok)

	labels := field(t, product, "Labels")
	assert.Equal(t, TypeKindMap, labels.Type.Kind)
	assert.Equal(t, TypeKindBasic, labels.Type.KeyType.Kind)
	assert.Equal(t, mapping.FamilyMapping, labels.Type.Family())
}

func TestAnalyzer_PointerField(t *testing.T) {
	graph := loadStore(t)

	customer, ok := graph.Lookup("store.Customer")
	require.True(t, ok)

	address := field(t, customer, "Address")
	assert.Equal(t, TypeKindPointer, address.Type.Kind)
	assert.Equal(t, TypeKindBasic, address.Type.ElemType.Kind)
	assert.Equal(t, mapping.FamilyText, address.Type.Family())

	id := field(t, customer, "ID")
	assert.Equal(t, TypeKindExternal, id.Type.Kind)
	assert.Equal(t, mapping.FamilyText, id.Type.Family())
}

func TestAnalyzer_TypeAlias(t *testing.T) {
	graph := loadStore(t)

	status, ok := graph.Lookup("store.OrderStatus")
	require.True(t, ok)
	assert.Equal(t, TypeKindAlias, status.Kind)
	assert.Equal(t, mapping.FamilyText, status.Family())

	_, ok = graph.Lookup("store.Missing")
	assert.False(t, ok)
}

func TestAnalyzer_ValueKind(t *testing.T) {
	graph := loadStore(t)

	order, ok := graph.Lookup("store.Order")
	require.True(t, ok)
	customer, ok := graph.Lookup("store.Customer")
	require.True(t, ok)
	product, ok := graph.Lookup("store.Product")
	require.True(t, ok)

	tests := []struct {
		info  *TypeInfo
		field string
		want  primitive.KindEnum
	}{
		{order, "TotalCents", primitive.KindInt64},
		{order, "Status", primitive.KindString},
		{order, "Notes", primitive.KindString},
		{order, "OrderedAt", primitive.KindTime},
		{order, "Items", 0},
		{order, "Customer", 0},
		{customer, "ID", primitive.KindUUID},
		{customer, "Address", primitive.KindString},
		{customer, "IsActive", primitive.KindBool},
		{product, "Labels", primitive.KindString},
		{product, "Inventory", primitive.KindInt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, field(t, tt.info, tt.field).Type.ValueKind(), tt.field)
	}

	var missing *TypeInfo
	assert.Zero(t, missing.ValueKind())
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: "fixture-generator/store", Name: "Order"}
	assert.Equal(t, "fixture-generator/store.Order", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "map", TypeKindMap.String())
	assert.Equal(t, "interface", TypeKindInterface.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}
