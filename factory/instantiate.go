package factory

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"fixture-generator/internal/analyze"
	"fixture-generator/internal/mapping"
	"fixture-generator/internal/match"
)

var errNoConstructor = errors.New("no constructor registered and no zero value to start from")

// instantiate builds a record. The designated constructor is used if there
// is one. Otherwise the registered constructors are tried, most parameters
// first, and the zero value is populated when none succeeds.
func (r *run) instantiate(t reflect.Type, path *analyze.TypePath) (reflect.Value, error) {
	if reg, ok := r.m.designated[t]; ok {
		v, err := r.construct(t, reg, path)
		if err != nil && !fatal(err) {
			err = &UnsupportedTypeError{Type: t, Path: path.String(), Cause: err}
		}
		return v, err
	}

	var cause error
	for _, reg := range r.m.constructors[t] {
		v, err := r.construct(t, reg, path)
		if err == nil {
			return v, nil
		}
		if fatal(err) {
			return reflect.Value{}, err
		}

		r.log.Debug("constructor failed",
			zap.Stringer("constructor", reg.ctor),
			zap.String("path", path.String()),
			zap.Error(err),
		)
		cause = err
	}

	if t.Kind() != reflect.Struct {
		if cause == nil {
			cause = errNoConstructor
		}
		return reflect.Value{}, &UnsupportedTypeError{Type: t, Path: path.String(), Cause: cause}
	}

	if cause != nil {
		r.log.Debug("falling back to the zero value", zap.String("type", t.String()))
	}

	v := reflect.New(t).Elem()
	if err := r.populate(v, path); err != nil {
		return reflect.Value{}, err
	}

	return v, nil
}

// construct resolves the parameters of a constructor and calls it.
func (r *run) construct(t reflect.Type, reg registered, path *analyze.TypePath) (reflect.Value, error) {
	args := make([]reflect.Value, reg.ctor.Arity())
	for i, param := range reg.ctor.Params {
		v, err := r.resolve(param, reg.params[i], path.Param(reg.ctor.Name, i))
		if err != nil {
			return reflect.Value{}, err
		}
		args[i] = v
	}

	v, err := reg.ctor.Call(t, args)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%s: %w", reg.ctor, err)
	}

	return v, nil
}

// populate invokes every setter of the struct v and then assigns every
// exported field no setter covers. v must be addressable.
func (r *run) populate(v reflect.Value, path *analyze.TypePath) error {
	t := v.Type()
	d := r.m.describe(t)
	overrides := r.m.fieldOverrides(t)
	r.checkOverrides(t, d, overrides)

	for _, s := range d.Setters {
		f, _ := d.Field(s.Field)
		ov, err := r.fieldOverride(t, f, overrides, path)
		if err != nil {
			return err
		}
		if ov.Exclude {
			continue
		}

		arg, err := r.resolve(s.Param, ov, path.Field(f.Name))
		if err != nil {
			return err
		}

		if err := callSetter(v.Addr().MethodByName(s.Name), arg); err != nil {
			return fmt.Errorf("%s.%s: %w", path, s.Name, err)
		}
	}

	for _, f := range d.Assignable() {
		ov, err := r.fieldOverride(t, f, overrides, path)
		if err != nil {
			return err
		}
		if ov.Exclude {
			continue
		}

		val, err := r.resolve(f.Type, ov, path.Field(f.Name))
		if err != nil {
			return err
		}
		v.FieldByIndex(f.Index).Set(val)
	}

	return nil
}

// fieldOverride merges the configured override of a field over its tag.
func (r *run) fieldOverride(
	t reflect.Type,
	f analyze.Field,
	overrides map[string]mapping.FieldOverride,
	path *analyze.TypePath,
) (mapping.FieldOverride, error) {
	ov, err := mapping.FromStructTag(f.Tag)
	if err != nil {
		return mapping.FieldOverride{}, &MetadataFormatError{
			Type:  t,
			Path:  path.Field(f.Name).String(),
			Value: f.Tag.Get(mapping.TagKey),
			Err:   err,
		}
	}

	return ov.Merge(overrides[f.Name]), nil
}

// checkOverrides reports configured overrides naming no relevant field,
// once per type and call.
func (r *run) checkOverrides(t reflect.Type, d *analyze.Descriptor, overrides map[string]mapping.FieldOverride) {
	if r.checked[t] {
		return
	}
	r.checked[t] = true

	for name := range overrides {
		if _, ok := d.Field(name); ok {
			continue
		}

		fields := []zap.Field{zap.String("type", typeKey(t)), zap.String("field", name)}
		if closest, ok := match.Closest(name, d.FieldNames); ok {
			fields = append(fields, zap.String("suggestion", closest))
		}
		r.log.Warn("override names an unknown field", fields...)
	}
}

func callSetter(method reflect.Value, arg reflect.Value) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrSetterPanic, rec)
		}
	}()

	method.Call([]reflect.Value{arg})

	return nil
}
