package factory

import (
	"reflect"

	"go.uber.org/zap"

	"fixture-generator/internal/analyze"
	"fixture-generator/node"
)

// run is the state of one top-level Manufacture call.
type run struct {
	m     *Manufacturer
	guard *node.Guard
	root  *analyze.TypePath
	log   *zap.Logger

	checked map[reflect.Type]bool // types whose overrides were checked
}

func (m *Manufacturer) newRun(t reflect.Type) *run {
	name := rootName(t)

	return &run{
		m:     m,
		guard: node.NewGuard(m.cfg.MaxDepth),
		root:  analyze.NewTypePath(name),
		log:   m.logger.With(zap.String("root", name)),

		checked: make(map[reflect.Type]bool),
	}
}
