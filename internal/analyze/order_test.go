package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencyOrder_Store(t *testing.T) {
	graph := loadStore(t)

	order, cyclic := DependencyOrder(graph)

	assert.Equal(t, []TypeID{
		{PkgPath: "fixture-generator/store", Name: "OrderItem"},
		{PkgPath: "fixture-generator/store", Name: "Product"},
	}, order)
	assert.Equal(t, []TypeID{
		{PkgPath: "fixture-generator/store", Name: "Customer"},
		{PkgPath: "fixture-generator/store", Name: "Order"},
	}, cyclic)
}

func TestDependencyOrder(t *testing.T) {
	named := func(name string, fields ...*TypeInfo) *TypeInfo {
		info := &TypeInfo{ID: TypeID{PkgPath: "p", Name: name}, Kind: TypeKindStruct}
		for i, f := range fields {
			info.Fields = append(info.Fields, FieldInfo{Name: "F" + string(rune('A'+i)), Type: f})
		}
		return info
	}
	ptr := func(elem *TypeInfo) *TypeInfo { return &TypeInfo{Kind: TypeKindPointer, ElemType: elem} }
	slice := func(elem *TypeInfo) *TypeInfo { return &TypeInfo{Kind: TypeKindSlice, ElemType: elem} }
	mapOf := func(key, elem *TypeInfo) *TypeInfo { return &TypeInfo{Kind: TypeKindMap, KeyType: key, ElemType: elem} }
	basic := &TypeInfo{Kind: TypeKindBasic}

	leaf := named("Leaf", basic)
	branch := named("Branch", slice(leaf), mapOf(basic, ptr(leaf)))
	tree := named("Tree", ptr(branch), leaf)
	self := named("Self", basic)
	self.Fields = append(self.Fields, FieldInfo{Name: "Next", Type: ptr(self)})
	user := named("User", slice(self))
	nest := &TypeInfo{ID: TypeID{PkgPath: "p", Name: "Nest"}, Kind: TypeKindAlias}
	nest.Underlying = mapOf(leaf, nest)
	forest := named("Forest", nest)

	graph := NewTypeGraph()
	for _, info := range []*TypeInfo{tree, branch, leaf, self, user, nest, forest} {
		graph.Types[info.ID] = info
	}
	graph.Types[TypeID{PkgPath: "p", Name: "Name"}] = &TypeInfo{Kind: TypeKindAlias, Underlying: basic}

	order, cyclic := DependencyOrder(graph)

	assert.Equal(t, []TypeID{leaf.ID, branch.ID, forest.ID, tree.ID}, order)
	assert.Equal(t, []TypeID{self.ID, user.ID}, cyclic)
}
