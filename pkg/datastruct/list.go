package datastruct

import (
	"iter"
	"slices"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/ds"
	"github.com/enumkit/enumkit/port/option"
)

// List is a collection backed by a dynamic array.
// It is array-like, so enumerating operators can index into it without a cursor.
type List[T any] struct {
	vs       []T
	comparer compare.Comparer[T]
}

var _ ds.List[any] = (*List[any])(nil)

func NewList[T any](opts ...Option[T]) *List[T] {
	c := option.ToConfig(opts)
	l := &List[T]{
		vs:       make([]T, 0, c.Capacity),
		comparer: c.Comparer,
	}
	for v := range c.seed() {
		l.vs = append(l.vs, v)
	}
	return l
}

func (l *List[T]) cmp() compare.Comparer[T] {
	if l.comparer == nil {
		l.comparer = compare.Default[T]()
	}
	return l.comparer
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.vs)
}

// At returns the element at the index.
// Like slice indexing, it panics when the index is out of range.
func (l *List[T]) At(index int) T {
	return l.vs[index]
}

func (l *List[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(l.vs) <= index {
		var zero T
		return zero, false
	}
	return l.vs[index], true
}

func (l *List[T]) Append(vs ...T) {
	l.vs = append(l.vs, vs...)
}

func (l *List[T]) Set(index int, v T) bool {
	if index < 0 || len(l.vs) <= index {
		return false
	}
	l.vs[index] = v
	return true
}

// Insert puts the values before the element at index.
// Inserting at Len() appends.
func (l *List[T]) Insert(index int, vs ...T) bool {
	if index < 0 || len(l.vs) < index {
		return false
	}
	l.vs = slices.Insert(l.vs, index, vs...)
	return true
}

func (l *List[T]) Delete(index int) bool {
	if index < 0 || len(l.vs) <= index {
		return false
	}
	l.vs = slices.Delete(l.vs, index, index+1)
	return true
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	cmp := l.cmp()
	return slices.IndexFunc(l.vs, func(e T) bool { return cmp.Equal(e, v) })
}

func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) != -1
}

// Remove deletes the first element equal to v.
func (l *List[T]) Remove(v T) bool {
	return l.Delete(l.IndexOf(v))
}

func (l *List[T]) Clear() {
	clear(l.vs)
	l.vs = l.vs[:0]
}

// Sort sorts the list in place, keeping the order of equal elements.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	slices.SortStableFunc(l.vs, cmp)
}

func (l *List[T]) ToSlice() []T {
	return slices.Clone(l.vs)
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.vs {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *List[T]) Cursor() iterkit.Cursor[T] {
	return iterkit.IndexCursor[T](l)
}

func (l *List[T]) CopyTo(dst []T, index int) error {
	return copyTo(dst, index, l.Len(), l.Values())
}

// AsReadOnly returns a read-only view which reflects later changes of the list.
func (l *List[T]) AsReadOnly() *ReadOnlyCollection[T] {
	return NewReadOnlyCollection[T](l)
}
