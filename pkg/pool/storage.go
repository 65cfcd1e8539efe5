package pool

import (
	"github.com/poolforge/reuse/pkg/errors"
)

// storage is the free-list behind one pool: a LIFO stack of instances
// that have already had the pool's put hook applied. It never shrinks.
type storage[T any] struct {
	items []T
}

// push appends item to the free-list. Running the put hook is the
// pool's responsibility, exactly once per Put, before insertion.
func (s *storage[T]) push(item T) {
	s.items = append(s.items, item)
}

// pop removes and returns the most recently pushed item. Popping an
// empty free-list is a registry bug, never a caller-visible condition;
// Pool.Get checks the length before calling pop.
func (s *storage[T]) pop() (T, error) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, errors.New(errors.ErrorTypeEmptyPool, "pop from empty free-list")
	}
	item := s.items[n-1]
	var zero T
	s.items[n-1] = zero // drop the reference so the free-list doesn't pin it
	s.items = s.items[:n-1]
	return item, nil
}

// len reports the number of resident instances in O(1).
func (s *storage[T]) len() int {
	return len(s.items)
}
