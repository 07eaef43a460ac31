package datastruct

import "github.com/enumkit/enumkit/pkg/compare"

// Set is a HashSet of comparable elements, with the method names of a JavaScript Set.
type Set[T comparable] struct {
	HashSet[T]
}

func NewSet[T comparable](vs ...T) *Set[T] {
	return &Set[T]{HashSet: *NewHashSet(
		WithComparer(compare.Comparable[T]()),
		WithValues(vs...),
	)}
}

func (s *Set[T]) Has(v T) bool {
	return s.Contains(v)
}

func (s *Set[T]) Delete(v T) bool {
	return s.Remove(v)
}
