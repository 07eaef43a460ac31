package linq

import (
	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/datastruct"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
)

// Any reports whether the sequence has an element, or an element satisfying the predicate.
// It stops at the first element that settles the answer.
func (e Enumerable[T]) Any(pred ...Predicate[T]) bool {
	p := optionalPredicate(pred)
	if p == nil {
		if l, ok := e.src.(interface{ Len() int }); ok {
			return 0 < l.Len()
		}
		_, ok := iterkit.First[T](e)
		return ok
	}
	for v := range e.Values() {
		if p(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies the predicate.
// It is true for an empty sequence.
func (e Enumerable[T]) All(pred Predicate[T]) bool {
	requirePredicate(pred)
	for v := range e.Values() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Count returns the number of elements, or of the elements satisfying the predicate.
// Without a predicate, sources that know their length, like collections and slices, are not iterated.
func (e Enumerable[T]) Count(pred ...Predicate[T]) int {
	p := optionalPredicate(pred)
	if p == nil {
		return iterkit.Count(e.src)
	}
	var n int
	for v := range e.Values() {
		if p(v) {
			n++
		}
	}
	return n
}

// Contains reports whether an element equals v.
// Without a comparer, sources with their own Contains method, like a HashSet, answer directly.
func (e Enumerable[T]) Contains(v T, cmp ...compare.Comparer[T]) bool {
	if len(cmp) == 0 {
		if c, ok := e.src.(interface{ Contains(T) bool }); ok {
			return c.Contains(v)
		}
	}
	c := comparerOf(cmp)
	for x := range e.Values() {
		if c.Equal(x, v) {
			return true
		}
	}
	return false
}

// First returns the first element, or the first one satisfying the predicate.
// The second return value is false when there is none.
func (e Enumerable[T]) First(pred ...Predicate[T]) (T, bool) {
	p := optionalPredicate(pred)
	for v := range e.Values() {
		if p == nil || p(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FirstOrDefault is like First, but returns def when there is no such element.
func (e Enumerable[T]) FirstOrDefault(def T, pred ...Predicate[T]) T {
	if v, ok := e.First(pred...); ok {
		return v
	}
	return def
}

// Last returns the final element, or the final one satisfying the predicate.
// The second return value is false when there is none.
//
// With a predicate the whole sequence is scanned.
// Without one, array-like sources are indexed directly.
func (e Enumerable[T]) Last(pred ...Predicate[T]) (T, bool) {
	p := optionalPredicate(pred)
	if p == nil {
		return iterkit.Last(e.Iterable())
	}
	var (
		last  T
		found bool
	)
	for v := range e.Values() {
		if p(v) {
			last, found = v, true
		}
	}
	return last, found
}

// LastOrDefault is like Last, but returns def when there is no such element.
func (e Enumerable[T]) LastOrDefault(def T, pred ...Predicate[T]) T {
	if v, ok := e.Last(pred...); ok {
		return v
	}
	return def
}

// ElementAt returns the element at the zero based index.
// The second return value is false when the index is out of range.
func (e Enumerable[T]) ElementAt(index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	if ix, ok := e.src.(iterkit.Indexer[T]); ok {
		if ix.Len() <= index {
			return zero, false
		}
		return ix.At(index), true
	}
	var i int
	for v := range e.Values() {
		if i == index {
			return v, true
		}
		i++
	}
	return zero, false
}

// ElementAtOrDefault is like ElementAt, but returns def when the index is out of range.
func (e Enumerable[T]) ElementAtOrDefault(index int, def T) T {
	if v, ok := e.ElementAt(index); ok {
		return v
	}
	return def
}

// Single returns the only element, or the only element satisfying the predicate.
// It fails with errorkit.ErrEmptyCollection when there is none,
// and with errorkit.ErrInvalidArgument when there is more than one.
func (e Enumerable[T]) Single(pred ...Predicate[T]) (T, error) {
	p := optionalPredicate(pred)
	var (
		single T
		found  bool
	)
	for v := range e.Values() {
		if p != nil && !p(v) {
			continue
		}
		if found {
			var zero T
			return zero, errorkit.ErrInvalidArgument.F("sequence contains more than one matching element")
		}
		single, found = v, true
	}
	if !found {
		return single, errorkit.ErrEmptyCollection
	}
	return single, nil
}

// SequenceEqual reports whether both sequences have equal elements in the same order.
func (e Enumerable[T]) SequenceEqual(other Enumerable[T], cmp ...compare.Comparer[T]) bool {
	c := comparerOf(cmp)
	if a, ok := e.src.(interface{ Len() int }); ok {
		if b, ok := other.src.(interface{ Len() int }); ok && a.Len() != b.Len() {
			return false
		}
	}
	ac, bc := e.Cursor(), other.Cursor()
	defer iterkit.Stop(ac)
	defer iterkit.Stop(bc)
	for {
		a, aok := ac.Next()
		b, bok := bc.Next()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		if !c.Equal(a, b) {
			return false
		}
	}
}

// ForEach calls fn with every element, stopping at the first error, which it returns.
func (e Enumerable[T]) ForEach(fn func(T) error) error {
	if fn == nil {
		panic(errorkit.ErrInvalidArgument.F("nil function"))
	}
	for v := range e.Values() {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// ToSlice buffers the sequence into a new slice.
// Array-like sources are copied without a cursor, and the result never shares storage with the source.
func (e Enumerable[T]) ToSlice() []T {
	return iterkit.Buffer(e.Iterable())
}

func (e Enumerable[T]) ToList() *datastruct.List[T] {
	return datastruct.NewList(
		datastruct.WithCapacity[T](e.capacityHint()),
		datastruct.WithSource(e.Iterable()),
	)
}

func (e Enumerable[T]) ToLinkedList() *datastruct.LinkedList[T] {
	return datastruct.NewLinkedList(datastruct.WithSource(e.Iterable()))
}

// ToHashSet collects the distinct elements, using the optional comparer for equality.
func (e Enumerable[T]) ToHashSet(cmp ...compare.Comparer[T]) *datastruct.HashSet[T] {
	return datastruct.NewHashSet(
		datastruct.WithComparer(comparerOf(cmp)),
		datastruct.WithCapacity[T](e.capacityHint()),
		datastruct.WithSource(e.Iterable()),
	)
}

func (e Enumerable[T]) capacityHint() int {
	if l, ok := e.src.(interface{ Len() int }); ok {
		return l.Len()
	}
	return 0
}
