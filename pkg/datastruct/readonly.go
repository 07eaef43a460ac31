package datastruct

import (
	"iter"

	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/ds"
)

// ReadOnlyCollection is a view over another collection which exposes only its read side.
// It holds no elements of its own.
type ReadOnlyCollection[T any] struct {
	src ds.ReadOnlyCollection[T]
}

var _ ds.ReadOnlyCollection[any] = (*ReadOnlyCollection[any])(nil)

func NewReadOnlyCollection[T any](src ds.ReadOnlyCollection[T]) *ReadOnlyCollection[T] {
	return &ReadOnlyCollection[T]{src: src}
}

func (r *ReadOnlyCollection[T]) Len() int                  { return r.src.Len() }
func (r *ReadOnlyCollection[T]) Contains(v T) bool         { return r.src.Contains(v) }
func (r *ReadOnlyCollection[T]) Values() iter.Seq[T]       { return r.src.Values() }
func (r *ReadOnlyCollection[T]) ToSlice() []T              { return r.src.ToSlice() }
func (r *ReadOnlyCollection[T]) Cursor() iterkit.Cursor[T] { return r.src.Cursor() }

func (r *ReadOnlyCollection[T]) CopyTo(dst []T, index int) error {
	return r.src.CopyTo(dst, index)
}
