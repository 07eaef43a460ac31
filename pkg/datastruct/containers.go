package datastruct

import (
	"iter"
	"slices"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/ds"
	"github.com/enumkit/enumkit/port/option"
)

// Stack is a last in, first out collection.
// Push and Pop work on the top, while enumeration runs from the bottom to the top,
// so the most recently pushed element comes last.
type Stack[T any] struct {
	vs       []T
	comparer compare.Comparer[T]
}

var _ ds.Collection[any] = (*Stack[any])(nil)

func NewStack[T any](opts ...Option[T]) *Stack[T] {
	c := option.ToConfig(opts)
	s := &Stack[T]{
		vs:       make([]T, 0, c.Capacity),
		comparer: c.Comparer,
	}
	for v := range c.seed() {
		s.Push(v)
	}
	return s
}

func (s *Stack[T]) cmp() compare.Comparer[T] {
	if s.comparer == nil {
		s.comparer = compare.Default[T]()
	}
	return s.comparer
}

// IsEmpty check if stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vs)
}

// Push a new value onto the stack
func (s *Stack[T]) Push(v T) {
	s.vs = append(s.vs, v)
}

// Append pushes the values in order, leaving the last one on top.
func (s *Stack[T]) Append(vs ...T) {
	s.vs = append(s.vs, vs...)
}

// Pop remove and return top element of stack. Return false if stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.IsEmpty() {
		return zero, false
	}
	index := len(s.vs) - 1
	element := s.vs[index]
	s.vs[index] = zero
	s.vs = s.vs[:index]
	return element, true
}

// Last returns the top element without removing it.
func (s *Stack[T]) Last() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.vs[len(s.vs)-1], true
}

// Peek is like Last, but reports an empty stack with errorkit.ErrEmptyCollection.
func (s *Stack[T]) Peek() (T, error) {
	v, ok := s.Last()
	if !ok {
		return v, errorkit.ErrEmptyCollection
	}
	return v, nil
}

func (s *Stack[T]) Contains(v T) bool {
	cmp := s.cmp()
	return slices.ContainsFunc(s.vs, func(e T) bool { return cmp.Equal(e, v) })
}

func (s *Stack[T]) Clear() {
	clear(s.vs)
	s.vs = s.vs[:0]
}

func (s *Stack[T]) Values() iter.Seq[T] {
	return slices.Values(s.vs)
}

// At indexes the stack from its bottom.
func (s *Stack[T]) At(index int) T {
	return s.vs[index]
}

func (s *Stack[T]) Cursor() iterkit.Cursor[T] {
	return iterkit.IndexCursor[T](s)
}

func (s *Stack[T]) ToSlice() []T {
	return append(make([]T, 0, len(s.vs)), s.vs...)
}

func (s *Stack[T]) CopyTo(dst []T, index int) error {
	return copyTo(dst, index, s.Len(), s.Values())
}

// Queue is a first in, first out collection backed by a LinkedList.
type Queue[T any] struct {
	list LinkedList[T]
}

var _ ds.Collection[any] = (*Queue[any])(nil)

func NewQueue[T any](opts ...Option[T]) *Queue[T] {
	c := option.ToConfig(opts)
	q := &Queue[T]{list: LinkedList[T]{comparer: c.Comparer}}
	for v := range c.seed() {
		q.Enqueue(v)
	}
	return q
}

func (q *Queue[T]) Len() int { return q.list.Len() }

func (q *Queue[T]) Enqueue(v T) {
	q.list.AddLast(v)
}

func (q *Queue[T]) Append(vs ...T) {
	q.list.Append(vs...)
}

// Dequeue removes and returns the oldest element.
// It fails with errorkit.ErrEmptyCollection when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	return q.list.RemoveFirst()
}

// Peek returns the oldest element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if n := q.list.First(); n != nil {
		return n.Value, nil
	}
	var zero T
	return zero, errorkit.ErrEmptyCollection
}

func (q *Queue[T]) Contains(v T) bool         { return q.list.Contains(v) }
func (q *Queue[T]) Clear()                    { q.list.Clear() }
func (q *Queue[T]) Values() iter.Seq[T]       { return q.list.Values() }
func (q *Queue[T]) Cursor() iterkit.Cursor[T] { return q.list.Cursor() }
func (q *Queue[T]) ToSlice() []T              { return q.list.ToSlice() }

func (q *Queue[T]) CopyTo(dst []T, index int) error {
	return q.list.CopyTo(dst, index)
}
