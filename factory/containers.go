package factory

import (
	"reflect"

	"fixture-generator/internal/analyze"
	"fixture-generator/internal/mapping"
)

// size is the element count of a container: the size attribute, or the
// configured default.
func (r *run) size(ov mapping.FieldOverride) int {
	if ov.Size != nil {
		return *ov.Size
	}

	return r.m.cfg.CollectionSize
}

// buildSequence builds a slice of exactly size elements, each resolved with the
// element override.
func (r *run) buildSequence(t reflect.Type, ov mapping.FieldOverride, path *analyze.TypePath) (reflect.Value, error) {
	n := r.size(ov)
	elemOv := ov.ForElem()
	elemPath := path.Slice()

	res := reflect.MakeSlice(t, 0, n)
	for range n {
		v, err := r.resolve(t.Elem(), elemOv, elemPath)
		if err != nil {
			return reflect.Value{}, err
		}
		res = reflect.Append(res, v)
	}

	return res, nil
}

// buildArray fills every position of a fixed array; its length is part of the
// type, so size does not apply.
func (r *run) buildArray(t reflect.Type, ov mapping.FieldOverride, path *analyze.TypePath) (reflect.Value, error) {
	elemOv := ov.ForElem()
	elemPath := path.Slice()

	res := reflect.New(t).Elem()
	for i := range t.Len() {
		v, err := r.resolve(t.Elem(), elemOv, elemPath)
		if err != nil {
			return reflect.Value{}, err
		}
		res.Index(i).Set(v)
	}

	return res, nil
}

// buildMapping builds a map from size independently resolved entries. Entries
// whose keys collide overwrite each other, so the map may end up smaller.
func (r *run) buildMapping(t reflect.Type, ov mapping.FieldOverride, path *analyze.TypePath) (reflect.Value, error) {
	n := r.size(ov)
	keyOv, valueOv := ov.ForKey(), ov.ForValue()
	entryPath := path.Map()

	res := reflect.MakeMapWithSize(t, n)
	for range n {
		k, err := r.resolve(t.Key(), keyOv, entryPath)
		if err != nil {
			return reflect.Value{}, err
		}

		v, err := r.resolve(t.Elem(), valueOv, entryPath)
		if err != nil {
			return reflect.Value{}, err
		}

		res.SetMapIndex(k, v)
	}

	return res, nil
}
