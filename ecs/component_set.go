package ecs

import "sync"

// ComponentSet is a typed component bag for one component kind T, keyed by
// Entity. O(1) presence test and insert/remove, per spec §4.5's contract.
// Every component kind declared in components.go gets its own
// ComponentSet[T] inside a Bundle rather than one reflection-keyed map, so
// presence tests stay allocation-free and every access is type-safe.
type ComponentSet[T any] struct {
	mu   sync.RWMutex
	data map[Entity]T
}

func NewComponentSet[T any]() *ComponentSet[T] {
	return &ComponentSet[T]{data: make(map[Entity]T)}
}

// Insert sets (or replaces) e's component value. Intended to be called
// either directly for single-writer contexts, or wrapped in a
// CommandBuffer.Enqueue closure when called from inside a query iteration.
func (c *ComponentSet[T]) Insert(e Entity, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[e] = v
}

// Remove deletes e's component value, if any.
func (c *ComponentSet[T]) Remove(e Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, e)
}

// Get returns e's component value and whether it was present.
func (c *ComponentSet[T]) Get(e Entity) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[e]
	return v, ok
}

// Has is a presence-only test, avoiding the value copy Get incurs for
// larger component types.
func (c *ComponentSet[T]) Has(e Entity) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.data[e]
	return ok
}

// Mutate looks up e's current value, passes it to fn for in-place editing,
// and writes the result back. Returns false if e had no component to
// mutate. This is the common path for relative-entity updates (§4.5):
// callers wrap the Mutate call in the idempotence dedupe key described in
// RelativeUpdateGuard before invoking it.
func (c *ComponentSet[T]) Mutate(e Entity, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[e]
	if !ok {
		return false
	}
	fn(&v)
	c.data[e] = v
	return true
}

// All returns a snapshot slice of every (Entity, value) pair currently
// present. Insertion-agnostic order, per §4.5's query contract — callers
// must not assume any particular ordering.
func (c *ComponentSet[T]) All() []EntityValue[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]EntityValue[T], 0, len(c.data))
	for e, v := range c.data {
		out = append(out, EntityValue[T]{Entity: e, Value: v})
	}
	return out
}

// Len returns the number of entities currently carrying this component.
func (c *ComponentSet[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// EntityValue pairs an Entity with a snapshotted component value, returned
// by ComponentSet.All and the Query helpers.
type EntityValue[T any] struct {
	Entity Entity
	Value  T
}
