// Package strategy defines pluggable value producers.
//
// A Strategy is registered under a name and referenced from field metadata
// with strategy=, elem=, key= or value=. It is invoked once per produced
// value and must return a value assignable to the requested type, or nil
// for the zero value.
package strategy

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

var (
	ErrNotAStrategy = errors.New("provided function is not a recognizable strategy")
	ErrUnknown      = errors.New("unknown strategy")
	ErrPanic        = errors.New("strategy panicked")
)

var typeError = reflect.TypeFor[error]()

// Strategy produces values.
type Strategy interface {
	Value() (any, error)
}

// Func adapts a function to Strategy.
type Func func() (any, error)

// Value calls f.
func (f Func) Value() (any, error) {
	return f()
}

// Const always produces v.
func Const(v any) Strategy {
	return Func(func() (any, error) { return v, nil })
}

// Sequence produces the values in turn and starts over after the last one.
func Sequence(values ...any) Strategy {
	var (
		mu   sync.Mutex
		next int
	)

	return Func(func() (any, error) {
		if len(values) == 0 {
			return nil, nil
		}

		mu.Lock()
		defer mu.Unlock()

		v := values[next%len(values)]
		next++

		return v, nil
	})
}

// FromFunc adapts a function of the shape func() T or func() (T, error).
func FromFunc(fn any) (Strategy, error) {
	if s, ok := fn.(Strategy); ok {
		return s, nil
	}

	fnVal := reflect.ValueOf(fn)
	if fn == nil || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return nil, ErrNotAStrategy
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 0 || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return nil, fmt.Errorf("%w: %s", ErrNotAStrategy, fnType)
	}
	if fnType.NumOut() == 2 && fnType.Out(1) != typeError {
		return nil, fmt.Errorf("%w: %s", ErrNotAStrategy, fnType)
	}

	return Func(func() (any, error) {
		out := fnVal.Call(nil)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}

		return out[0].Interface(), nil
	}), nil
}

// Invoke calls s.Value, converting a panic into an error.
func Invoke(s Strategy) (v any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			v, err = nil, fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	return s.Value()
}

// Registry maps names to strategies. The zero value is ready to use and
// safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// Register adds s under name, replacing any strategy registered before.
func (r *Registry) Register(name string, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.strategies == nil {
		r.strategies = make(map[string]Strategy)
	}
	r.strategies[name] = s
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}

	return s, nil
}

// Names lists the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{strategies: make(map[string]Strategy, len(r.strategies))}
	for name, s := range r.strategies {
		c.strategies[name] = s
	}

	return c
}
