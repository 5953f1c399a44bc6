package analyze

import (
	"cmp"
	"slices"
)

// DependencyOrder sorts the struct types of the graph so that every type
// comes after the struct types its fields hold, directly or through
// pointers and containers. Types taking part in a cycle, or holding a type
// that does, cannot be ordered and are returned in cyclic instead: building
// them relies on the recursion guard.
//
// The result is deterministic: among the types ready at a step the one with
// the smallest ID comes first.
func DependencyOrder(g *TypeGraph) (order, cyclic []TypeID) {
	var ids []TypeID
	for id, info := range g.Types {
		if info.Kind == TypeKindStruct {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, compareIDs)

	indeg := make(map[TypeID]int, len(ids))
	dependents := make(map[TypeID][]TypeID, len(ids))

	for _, id := range ids {
		for _, dep := range structDeps(g.Types[id]) {
			if _, ok := g.Types[dep]; !ok {
				continue
			}
			indeg[id]++
			dependents[dep] = append(dependents[dep], id)
		}
	}

	var ready []TypeID
	for _, id := range ids {
		if indeg[id] == 0 {
			ready = append(ready, id)
		}
	}

	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, next := range dependents[id] {
			indeg[next]--
			if indeg[next] == 0 {
				// keep ready sorted
				k, _ := slices.BinarySearchFunc(ready, next, compareIDs)
				ready = slices.Insert(ready, k, next)
			}
		}
	}

	for _, id := range ids {
		if indeg[id] > 0 {
			cyclic = append(cyclic, id)
		}
	}

	return order, cyclic
}

// structDeps lists the distinct named structs the fields of t hold, t
// itself included when it is recursive.
func structDeps(t *TypeInfo) []TypeID {
	var deps []TypeID
	for _, f := range t.Fields {
		for _, id := range heldStructs(f.Type, nil, nil) {
			if !slices.Contains(deps, id) {
				deps = append(deps, id)
			}
		}
	}

	return deps
}

// heldStructs follows pointers and containers down to named structs. seen
// holds the named non-struct types already followed, as in type Tree []Tree.
func heldStructs(t *TypeInfo, acc []TypeID, seen map[TypeID]bool) []TypeID {
	if t == nil {
		return acc
	}

	switch t.Kind {
	case TypeKindStruct:
		if t.IsNamed() {
			return append(acc, t.ID)
		}
		for _, f := range t.Fields {
			acc = heldStructs(f.Type, acc, seen)
		}
		return acc
	case TypeKindAlias:
		if t.IsNamed() {
			if seen[t.ID] {
				return acc
			}
			if seen == nil {
				seen = make(map[TypeID]bool)
			}
			seen[t.ID] = true
		}
		return heldStructs(t.Underlying, acc, seen)
	case TypeKindPointer, TypeKindSlice, TypeKindArray:
		return heldStructs(t.ElemType, acc, seen)
	case TypeKindMap:
		return heldStructs(t.ElemType, heldStructs(t.KeyType, acc, seen), seen)
	default:
		return acc
	}
}

func compareIDs(a, b TypeID) int {
	return cmp.Compare(a.String(), b.String())
}
