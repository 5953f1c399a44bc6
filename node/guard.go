package node

import "reflect"

// DefaultMaxDepth lets a type contain itself once.
const DefaultMaxDepth = 1

// Guard counts how many times each type is currently being built along one
// manufacturing call stack. A type is admitted while its count does not
// exceed the maximum depth, so with depth 1 a Node may hold a Node, but that
// inner Node may not hold a third one.
//
// A Guard belongs to a single top-level call and is not safe for concurrent use.
type Guard struct {
	maxDepth int
	active   map[reflect.Type]int
}

// NewGuard creates a guard. Negative depths are treated as zero.
func NewGuard(maxDepth int) *Guard {
	return &Guard{
		maxDepth: max(maxDepth, 0),
		active:   make(map[reflect.Type]int),
	}
}

// Enter admits t if the limit allows it. On success the caller must invoke
// release exactly once, typically with defer, on every return path. A denied
// entry leaves the counter untouched and returns a no-op release.
func (g *Guard) Enter(t reflect.Type) (release func(), ok bool) {
	if g.active[t] > g.maxDepth {
		return func() {}, false
	}

	g.active[t]++

	return func() { g.Exit(t) }, true
}

// Exit undoes one successful Enter of t.
func (g *Guard) Exit(t reflect.Type) {
	switch n := g.active[t]; {
	case n <= 1:
		delete(g.active, t)
	default:
		g.active[t] = n - 1
	}
}

// Depth returns the number of active entries for t.
func (g *Guard) Depth(t reflect.Type) int {
	return g.active[t]
}

// MaxDepth returns the configured limit.
func (g *Guard) MaxDepth() int {
	return g.maxDepth
}
