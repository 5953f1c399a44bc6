package factory

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"fixture-generator/internal/analyze"
	"fixture-generator/internal/mapping"
	"fixture-generator/internal/match"
	"fixture-generator/internal/plan"
	"fixture-generator/primitive"
	"fixture-generator/strategy"
)

// resolve produces one value of type t under the override ov.
func (r *run) resolve(t reflect.Type, ov mapping.FieldOverride, path *analyze.TypePath) (reflect.Value, error) {
	decision := plan.Determine(t, ov)

	if selfReferable(t, decision.Strategy) {
		release, ok := r.guard.Enter(t)
		if !ok {
			r.denied(t, path)
			return reflect.Zero(t), nil
		}
		defer release()
	}

	switch decision.Strategy {
	case plan.StrategyExact:
		return r.exact(t, plan.ExactText(ov, decision), path)
	case plan.StrategyCustom:
		return r.custom(t, ov.Strategy, path)
	case plan.StrategyPrimitive:
		return r.canned(t, ov, path)
	case plan.StrategySequence:
		return r.buildSequence(t, ov, path)
	case plan.StrategyArray:
		return r.buildArray(t, ov, path)
	case plan.StrategyMapping:
		return r.buildMapping(t, ov, path)
	case plan.StrategyPointer:
		return r.pointer(t, ov, path)
	case plan.StrategyRecord:
		v, _, err := r.record(t, path)
		return v, err
	case plan.StrategyZero:
		return reflect.Zero(t), nil
	default:
		return reflect.Value{}, &UnsupportedTypeError{Type: t, Path: path.String(), Cause: errors.New(decision.Explanation)}
	}
}

// selfReferable reports whether a value built with strategy s may hold
// another t without passing through a record, as in type Tree []Tree.
// Only named types can refer to themselves.
func selfReferable(t reflect.Type, s plan.Strategy) bool {
	switch s {
	case plan.StrategySequence, plan.StrategyArray, plan.StrategyMapping, plan.StrategyPointer:
		return t.Name() != ""
	default:
		return false
	}
}

func (r *run) exact(t reflect.Type, text string, path *analyze.TypePath) (reflect.Value, error) {
	v, err := primitive.ParseExact(t, text)
	if err != nil {
		return reflect.Value{}, &MetadataFormatError{Type: t, Path: path.String(), Value: text, Err: err}
	}

	return v, nil
}

func (r *run) canned(t reflect.Type, ov mapping.FieldOverride, path *analyze.TypePath) (reflect.Value, error) {
	length := r.m.cfg.StringLength
	if ov.Len != nil {
		length = *ov.Len
	}

	v, ok := primitive.Canned(t, length)
	if !ok {
		return reflect.Value{}, &UnsupportedTypeError{Type: t, Path: path.String()}
	}

	if !ov.HasRange() {
		return v, nil
	}

	clamped, err := primitive.Clamp(v, ov.Min, ov.Max)
	if err != nil {
		return reflect.Value{}, &MetadataFormatError{Type: t, Path: path.String(), Value: "min=" + ov.Min + ",max=" + ov.Max, Err: err}
	}

	return clamped, nil
}

// custom invokes the strategy registered under name. A nil result stands
// for the zero value. Results of a defined type are converted when the kinds
// match, so a strategy producing string serves a type Status string field.
func (r *run) custom(t reflect.Type, name string, path *analyze.TypePath) (reflect.Value, error) {
	fail := func(err error) (reflect.Value, error) {
		return reflect.Value{}, &StrategyInvocationError{Type: t, Path: path.String(), Strategy: name, Err: err}
	}

	s, err := r.m.strategies.Lookup(name)
	if err != nil {
		if closest, ok := match.Closest(name, r.m.strategies.Names()); ok {
			err = fmt.Errorf("%w, did you mean %q?", err, closest)
		}
		return fail(err)
	}

	out, err := strategy.Invoke(s)
	if err != nil {
		return fail(err)
	}

	res := reflect.New(t).Elem()
	if out == nil {
		return res, nil
	}

	v := reflect.ValueOf(out)
	switch {
	case v.Type().AssignableTo(t):
		res.Set(v)
	case v.Kind() == t.Kind() && v.Type().ConvertibleTo(t):
		res.Set(v.Convert(t))
	case t.Kind() == reflect.Pointer && v.Type().AssignableTo(t.Elem()):
		p := reflect.New(t.Elem())
		p.Elem().Set(v)
		res.Set(p)
	default:
		return fail(fmt.Errorf("%w: produced %s", ErrWrongType, v.Type()))
	}

	return res, nil
}

// pointer allocates the element and fills it. A record element denied by
// the recursion guard leaves the pointer nil.
func (r *run) pointer(t reflect.Type, ov mapping.FieldOverride, path *analyze.TypePath) (reflect.Value, error) {
	elem := t.Elem()

	var (
		v   reflect.Value
		err error
	)
	if plan.Determine(elem, ov).Strategy == plan.StrategyRecord {
		var built bool
		v, built, err = r.record(elem, path)
		if err != nil || !built {
			return reflect.Zero(t), err
		}
	} else {
		v, err = r.resolve(elem, ov, path)
		if err != nil {
			return reflect.Value{}, err
		}
	}

	p := reflect.New(elem)
	p.Elem().Set(v)

	return p, nil
}

// record instantiates a struct or an interface under the recursion guard.
// built is false when the guard denied the type and the zero value stands
// in for it.
func (r *run) record(t reflect.Type, path *analyze.TypePath) (v reflect.Value, built bool, err error) {
	release, ok := r.guard.Enter(t)
	if !ok {
		r.denied(t, path)
		return reflect.Zero(t), false, nil
	}
	defer release()

	v, err = r.instantiate(t, path)
	if err != nil {
		return reflect.Value{}, true, err
	}

	return v, true, nil
}

func (r *run) denied(t reflect.Type, path *analyze.TypePath) {
	r.log.Debug("recursion denied",
		zap.String("type", t.String()),
		zap.String("path", path.String()),
		zap.Int("depth", r.guard.Depth(t)),
	)
}
