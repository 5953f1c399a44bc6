package factory

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"fixture-generator/internal/analyze"
	"fixture-generator/internal/common"
	"fixture-generator/internal/mapping"
	"fixture-generator/node"
	"fixture-generator/options"
	"fixture-generator/strategy"
)

// Manufacturer builds values. Create one with New.
type Manufacturer struct {
	cfg       options.Config
	overrides map[string]map[string]mapping.FieldOverride // by "alias.Name", then field

	strategies   *strategy.Registry
	constructors map[reflect.Type][]registered // heaviest first after New
	designated   map[reflect.Type]registered

	logger *zap.Logger
	errs   []error
}

// registered is a constructor with the metadata of its parameters.
type registered struct {
	ctor   node.Constructor
	params []mapping.FieldOverride
	target reflect.Type
}

// New creates a Manufacturer. Invalid options do not make New fail: the
// problems are reported by every Manufacture call instead.
func New(opts ...Option) *Manufacturer {
	m := &Manufacturer{
		cfg:          options.Default(),
		strategies:   &strategy.Registry{},
		constructors: make(map[reflect.Type][]registered),
		designated:   make(map[reflect.Type]registered),
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := options.Validate(m.cfg); err != nil {
		m.fail(err)
	}
	m.overrides = m.cfg.FieldOverrides()

	for t, ctors := range m.constructors {
		// stable: registration order breaks ties
		slices.SortStableFunc(ctors, func(a, b registered) int { return b.ctor.Arity() - a.ctor.Arity() })
		m.constructors[t] = ctors
	}

	return m
}

func (m *Manufacturer) fail(err error) {
	m.errs = append(m.errs, err)
}

// Err reports the configuration problems found by New.
func (m *Manufacturer) Err() error {
	return errors.Join(m.errs...)
}

// Config returns the effective configuration.
func (m *Manufacturer) Config() options.Config {
	return m.cfg
}

// Strategies lists the registered strategy names.
func (m *Manufacturer) Strategies() []string {
	return m.strategies.Names()
}

// Manufacture builds a value of type t. On error the zero value of t is
// returned: values are never partially populated.
func (m *Manufacturer) Manufacture(t reflect.Type) (reflect.Value, error) {
	if err := m.Err(); err != nil {
		return zero(t), err
	}
	if t == nil {
		return reflect.Value{}, &UnsupportedTypeError{Cause: errors.New("nil type")}
	}

	r := m.newRun(t)
	v, err := r.resolve(t, mapping.FieldOverride{}, r.root)
	if err != nil {
		m.logger.Debug("manufacture failed", zap.String("type", node.TypeStr(t)), zap.Error(err))
		return zero(t), err
	}

	if ce := m.logger.Check(zap.DebugLevel, "manufactured"); ce != nil {
		ce.Write(zap.String("type", node.TypeStr(t)), zap.String("value", Dump(v.Interface())))
	}

	return v, nil
}

// Fill populates the struct ptr points to, the way the zero value of its
// type would be populated: setters first, then exported fields without a
// setter. On error *ptr is left untouched.
func (m *Manufacturer) Fill(ptr any) error {
	if err := m.Err(); err != nil {
		return err
	}

	pv := reflect.ValueOf(ptr)
	if !pv.IsValid() || pv.Kind() != reflect.Pointer || pv.IsNil() || pv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("fill %T: %w", ptr, ErrNotAPointer)
	}

	t := pv.Elem().Type()
	r := m.newRun(t)

	release, _ := r.guard.Enter(t)
	defer release()

	tmp := reflect.New(t).Elem()
	tmp.Set(pv.Elem())
	if err := r.populate(tmp, r.root); err != nil {
		return err
	}
	pv.Elem().Set(tmp)

	return nil
}

// Manufacture builds a value of type T.
func Manufacture[T any](m *Manufacturer) (T, error) {
	v, err := m.Manufacture(reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}

	res, _ := v.Interface().(T)
	return res, nil
}

// MustManufacture is like Manufacture but panics on error.
func MustManufacture[T any](m *Manufacturer) T {
	v, err := Manufacture[T](m)
	if err != nil {
		panic(err)
	}

	return v
}

// fieldOverrides returns the configured overrides for the fields of t.
func (m *Manufacturer) fieldOverrides(t reflect.Type) map[string]mapping.FieldOverride {
	if t.Name() == "" {
		return nil
	}

	return m.overrides[typeKey(t)]
}

// typeKey names t the way configuration files do, e.g. "store.Order".
func typeKey(t reflect.Type) string {
	return common.PkgAlias(t.PkgPath()) + "." + t.Name()
}

func rootName(t reflect.Type) string {
	t = node.Base(t)
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}

func zero(t reflect.Type) reflect.Value {
	if t == nil {
		return reflect.Value{}
	}

	return reflect.Zero(t)
}

// describe is analyze.Describe with a debug event.
func (m *Manufacturer) describe(t reflect.Type) *analyze.Descriptor {
	d := analyze.Describe(t)
	m.logger.Debug("described",
		zap.String("type", node.TypeStr(t)),
		zap.Int("fields", len(d.FieldNames)),
		zap.Int("setters", len(d.Setters)),
	)

	return d
}
