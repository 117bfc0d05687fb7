package taxi

import "slices"

// Pool is a growable collection of entities owned by the game for its lifetime.
type Pool[T any] struct {
	items []*T
}

// Add appends an entity.
func (p *Pool[T]) Add(item *T) {
	p.items = append(p.items, item)
}

// Items returns the live slice. Callers must not hold it across a Prune.
func (p *Pool[T]) Items() []*T {
	return p.items
}

// Len returns the number of entities in the pool.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Prune drops every entity for which keep returns false.
func (p *Pool[T]) Prune(keep func(*T) bool) {
	p.items = slices.DeleteFunc(p.items, func(item *T) bool {
		return !keep(item)
	})
}

// Clear empties the pool.
func (p *Pool[T]) Clear() {
	p.items = p.items[:0]
}
