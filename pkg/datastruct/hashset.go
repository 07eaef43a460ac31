package datastruct

import (
	"iter"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/hashtable"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/ds"
	"github.com/enumkit/enumkit/port/option"
)

// HashSet is a set of distinct elements backed by a hash table.
// Element equality comes from its comparer, and the enumeration follows the insertion order.
type HashSet[T any] struct {
	table *hashtable.Table[T, struct{}]
}

var _ ds.Collection[any] = (*HashSet[any])(nil)

func NewHashSet[T any](opts ...Option[T]) *HashSet[T] {
	c := option.ToConfig(opts)
	s := &HashSet[T]{table: hashtable.New[T, struct{}](
		hashtable.WithComparer(c.Comparer),
		hashtable.WithCapacity[T](c.Capacity),
	)}
	for v := range c.seed() {
		s.Add(v)
	}
	return s
}

func (s *HashSet[T]) tbl() *hashtable.Table[T, struct{}] {
	if s.table == nil {
		s.table = hashtable.New[T, struct{}]()
	}
	return s.table
}

// Comparer returns the equality strategy of the set.
func (s *HashSet[T]) Comparer() compare.Comparer[T] {
	return s.tbl().Comparer()
}

func (s *HashSet[T]) Len() int {
	if s == nil || s.table == nil {
		return 0
	}
	return s.table.Len()
}

// Add inserts the element and reports whether it was not yet present.
func (s *HashSet[T]) Add(v T) bool {
	return s.tbl().Add(v, struct{}{})
}

func (s *HashSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.Add(v)
	}
}

func (s *HashSet[T]) Remove(v T) bool {
	return s.tbl().Remove(v)
}

func (s *HashSet[T]) Contains(v T) bool {
	return s.tbl().Contains(v)
}

func (s *HashSet[T]) Clear() {
	s.tbl().Clear()
}

func (s *HashSet[T]) Values() iter.Seq[T] {
	return s.tbl().Keys()
}

func (s *HashSet[T]) Cursor() iterkit.Cursor[T] {
	c := s.tbl().Cursor()
	return iterkit.CursorFunc[T](func() (T, bool) {
		kv, ok := c.Next()
		return kv.K, ok
	})
}

func (s *HashSet[T]) ToSlice() []T {
	vs := make([]T, 0, s.Len())
	for v := range s.Values() {
		vs = append(vs, v)
	}
	return vs
}

func (s *HashSet[T]) CopyTo(dst []T, index int) error {
	return copyTo(dst, index, s.Len(), s.Values())
}

// UnionWith adds every element of other.
func (s *HashSet[T]) UnionWith(other iterkit.Iterable[T]) {
	for v := range iterkit.ToSeq(other) {
		s.Add(v)
	}
}

// IntersectWith keeps only the elements which are also in other.
func (s *HashSet[T]) IntersectWith(other iterkit.Iterable[T]) {
	o := s.peer(other)
	for _, v := range s.ToSlice() {
		if !o.Contains(v) {
			s.Remove(v)
		}
	}
}

// ExceptWith removes every element of other.
func (s *HashSet[T]) ExceptWith(other iterkit.Iterable[T]) {
	for v := range iterkit.ToSeq(other) {
		s.Remove(v)
	}
}

// SymmetricExceptWith keeps the elements which are in exactly one of the two sets.
func (s *HashSet[T]) SymmetricExceptWith(other iterkit.Iterable[T]) {
	for v := range s.peer(other).Values() {
		if !s.Remove(v) {
			s.Add(v)
		}
	}
}

// IsSubsetOf reports whether every element of the set is in other.
func (s *HashSet[T]) IsSubsetOf(other iterkit.Iterable[T]) bool {
	o := s.peer(other)
	if o.Len() < s.Len() {
		return false
	}
	return s.within(o)
}

// IsSupersetOf reports whether every element of other is in the set.
func (s *HashSet[T]) IsSupersetOf(other iterkit.Iterable[T]) bool {
	for v := range iterkit.ToSeq(other) {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Overlaps reports whether the set and other share an element.
func (s *HashSet[T]) Overlaps(other iterkit.Iterable[T]) bool {
	if s.Len() == 0 {
		return false
	}
	for v := range iterkit.ToSeq(other) {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

// SetEquals reports whether the set and the distinct elements of other are the same.
func (s *HashSet[T]) SetEquals(other iterkit.Iterable[T]) bool {
	o := s.peer(other)
	return o.Len() == s.Len() && s.within(o)
}

func (s *HashSet[T]) within(o *HashSet[T]) bool {
	for v := range s.Values() {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// peer returns the distinct elements of other as a set with the same comparer.
func (s *HashSet[T]) peer(other iterkit.Iterable[T]) *HashSet[T] {
	if o, ok := other.(*HashSet[T]); ok && o == s {
		return o
	}
	return NewHashSet(WithComparer(s.Comparer()), WithSource(other))
}
