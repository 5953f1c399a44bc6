package factory

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"fixture-generator/internal/mapping"
	"fixture-generator/node"
	"fixture-generator/options"
	"fixture-generator/strategy"
)

// Option configures a Manufacturer. Options apply in order, later ones win.
type Option func(*Manufacturer)

// WithConfig replaces the whole configuration, overrides included.
func WithConfig(cfg options.Config) Option {
	return func(m *Manufacturer) {
		m.cfg = cfg
	}
}

// WithMaxDepth sets how many times a type may nest itself.
func WithMaxDepth(depth int) Option {
	return func(m *Manufacturer) {
		m.cfg.MaxDepth = depth
	}
}

// WithCollectionSize sets the default number of container elements.
func WithCollectionSize(size int) Option {
	return func(m *Manufacturer) {
		m.cfg.CollectionSize = size
	}
}

// WithStringLength sets the default length of generated strings.
func WithStringLength(length int) Option {
	return func(m *Manufacturer) {
		m.cfg.StringLength = length
	}
}

// WithLogger sets the logger receiving debug events.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manufacturer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStrategy registers s under name, replacing an earlier registration.
func WithStrategy(name string, s strategy.Strategy) Option {
	return func(m *Manufacturer) {
		m.strategies.Register(name, s)
	}
}

// WithStrategies replaces the strategies registered so far with a copy of
// r. Later registrations on r do not reach the Manufacturer.
func WithStrategies(r *strategy.Registry) Option {
	return func(m *Manufacturer) {
		if r != nil {
			m.strategies = r.Clone()
		}
	}
}

// WithStrategyFunc registers a func() T or func() (T, error) under name.
func WithStrategyFunc(name string, fn any) Option {
	return func(m *Manufacturer) {
		s, err := strategy.FromFunc(fn)
		if err != nil {
			m.fail(fmt.Errorf("strategy %s: %w", name, err))
			return
		}
		m.strategies.Register(name, s)
	}
}

// WithConstructor registers a constructor for the type it returns. The
// optional paramTags hold fixture tag bodies for the parameters, in order.
func WithConstructor(fn any, paramTags ...string) Option {
	return func(m *Manufacturer) {
		c, ok := m.parseConstructor(fn, paramTags)
		if !ok {
			return
		}
		m.constructors[c.target] = append(m.constructors[c.target], c)
	}
}

// WithDesignatedConstructor registers the constructor which is always used
// for the type it returns. Its failure is not recovered by trying others.
func WithDesignatedConstructor(fn any, paramTags ...string) Option {
	return func(m *Manufacturer) {
		c, ok := m.parseConstructor(fn, paramTags)
		if !ok {
			return
		}
		if _, dup := m.designated[c.target]; dup {
			m.fail(fmt.Errorf("%w: %s", ErrDesignatedTwice, node.TypeStr(c.target)))
			return
		}
		m.designated[c.target] = c
	}
}

func (m *Manufacturer) parseConstructor(fn any, paramTags []string) (registered, bool) {
	ctor, err := node.ParseConstructor(fn)
	if err != nil {
		m.fail(fmt.Errorf("constructor %T: %w", fn, err))
		return registered{}, false
	}

	if len(paramTags) > ctor.Arity() {
		m.fail(fmt.Errorf("constructor %s: %d parameter tags for %d parameters", ctor, len(paramTags), ctor.Arity()))
		return registered{}, false
	}

	params := make([]mapping.FieldOverride, ctor.Arity())
	for i, tag := range paramTags {
		ov, err := mapping.Parse(tag)
		if err != nil {
			m.fail(fmt.Errorf("constructor %s parameter %d: %w", ctor, i, err))
			return registered{}, false
		}
		params[i] = ov
	}

	target := ctor.Out
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}

	return registered{ctor: ctor, params: params, target: target}, true
}
