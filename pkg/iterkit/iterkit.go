// Package iterkit provides the pull based iteration protocol of enumkit.
//
// # Summary
//
// An Iterable hands out Cursors, and a Cursor is pulled one element at a time until it reports exhaustion.
// The protocol decouples the origin of a sequence from its consumer:
// slices, strings, generator functions, iter.Seq values, collections and Go maps
// can all be consumed the same way.
//
// Operators in this package are lazy.
// Nothing is read from a source until the first call to Next,
// and only as much is read as the consumer asks for.
//
// Cursors which hold a coroutine, or wrap one, implement Stopper.
// Consumers that abandon a cursor early should call Stop on it.
// ToSeq, Collect and the other draining helpers always do.
package iterkit

import (
	"iter"
)

// Slice returns an array-like Iterable over the slice.
// The slice is not copied, later modifications to its elements are visible to new cursors.
func Slice[T any](vs []T) Iterable[T] {
	return sliceIterable[T](vs)
}

type sliceIterable[T any] []T

func (s sliceIterable[T]) Len() int          { return len(s) }
func (s sliceIterable[T]) At(index int) T    { return s[index] }
func (s sliceIterable[T]) Cursor() Cursor[T] { return IndexCursor[T](s) }
func (s sliceIterable[T]) ToSlice() []T      { return append(make([]T, 0, len(s)), s...) }

// String returns an array-like Iterable over the runes of the string.
func String(s string) Iterable[rune] {
	return sliceIterable[rune]([]rune(s))
}

// Empty iterable is used to represent no result with the Null object pattern.
func Empty[T any]() Iterable[T] {
	return sliceIterable[T](nil)
}

// Single returns an Iterable with exactly one element.
func Single[T any](v T) Iterable[T] {
	return sliceIterable[T]{v}
}

// IntRange returns an array-like Iterable between begin and end, both inclusive.
func IntRange(begin, end int) Iterable[int] {
	return intRange{begin: begin, end: end}
}

type intRange struct{ begin, end int }

func (r intRange) Len() int            { return max(0, r.end-r.begin+1) }
func (r intRange) At(index int) int    { return r.begin + index }
func (r intRange) Cursor() Cursor[int] { return IndexCursor[int](r) }

// IndexCursor walks an Indexer from its first to its last index.
// The length is checked on every step.
func IndexCursor[T any](src Indexer[T]) Cursor[T] {
	return &indexCursor[T]{src: src}
}

type indexCursor[T any] struct {
	src   Indexer[T]
	index int
	done  bool
}

func (c *indexCursor[T]) Next() (T, bool) {
	if c.done || c.src.Len() <= c.index {
		c.done = true
		var zero T
		return zero, false
	}
	v := c.src.At(c.index)
	c.index++
	return v, true
}

// FromPull creates a Cursor out of a next function.
// The stop functions are called once, either when next reports exhaustion or when the cursor is stopped.
func FromPull[T any](next func() (T, bool), stops ...func()) Cursor[T] {
	return &pullCursor[T]{next: next, stops: stops}
}

type pullCursor[T any] struct {
	next  func() (T, bool)
	stops []func()
	done  bool
}

func (c *pullCursor[T]) Next() (T, bool) {
	if c.done {
		var zero T
		return zero, false
	}
	v, ok := c.next()
	if !ok {
		c.Stop()
		var zero T
		return zero, false
	}
	return v, true
}

func (c *pullCursor[T]) Stop() {
	if c.done {
		return
	}
	c.done = true
	for _, stop := range c.stops {
		stop()
	}
}

// FromSeq turns an iter.Seq into a restartable Iterable.
// Every cursor pulls its own run of the sequence through iter.Pull,
// and must be drained or stopped to release the coroutine.
func FromSeq[T any](seq iter.Seq[T]) Iterable[T] {
	if seq == nil {
		return Empty[T]()
	}
	return IterableFunc[T](func() Cursor[T] {
		next, stop := iter.Pull(seq)
		return FromPull(next, stop)
	})
}

// FromSeq2 turns an iter.Seq2 into a restartable Iterable of KV pairs.
func FromSeq2[K, V any](seq iter.Seq2[K, V]) Iterable[KV[K, V]] {
	if seq == nil {
		return Empty[KV[K, V]]()
	}
	return FromSeq[KV[K, V]](func(yield func(KV[K, V]) bool) {
		for k, v := range seq {
			if !yield(KV[K, V]{K: k, V: v}) {
				return
			}
		}
	})
}

// ToSeq makes an Iterable usable with range.
// The cursor is always stopped, even when the loop breaks early.
func ToSeq[T any](src Iterable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if src == nil {
			return
		}
		c := src.Cursor()
		defer Stop(c)
		for {
			v, ok := c.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromCursor wraps a single cursor as a single use Iterable.
// Every call to Cursor returns the same cursor.
func FromCursor[T any](c Cursor[T]) Iterable[T] {
	if c == nil {
		return Empty[T]()
	}
	return &onceIterable[T]{cursor: c}
}

// Once makes an Iterable single use.
// The first cursor is created lazily, and every later call returns that same cursor,
// so once it is drained the Iterable stays empty.
func Once[T any](src Iterable[T]) Iterable[T] {
	return &onceIterable[T]{src: src}
}

type onceIterable[T any] struct {
	src    Iterable[T]
	cursor Cursor[T]
}

func (o *onceIterable[T]) Cursor() Cursor[T] {
	if o.cursor == nil {
		if o.src == nil {
			o.cursor = Empty[T]().Cursor()
		} else {
			o.cursor = o.src.Cursor()
		}
	}
	return o.cursor
}

// Collect drains the Iterable into a slice.
func Collect[T any](src Iterable[T]) []T {
	if src == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range ToSeq(src) {
		vs = append(vs, v)
	}
	return vs
}

// Count returns the number of elements.
// Sources with a known length are not iterated.
func Count[T any](src Iterable[T]) int {
	if src == nil {
		return 0
	}
	if l, ok := src.(interface{ Len() int }); ok {
		return l.Len()
	}
	var total int
	for range ToSeq(src) {
		total++
	}
	return total
}

// First returns the first element and stops the cursor.
func First[T any](src Iterable[T]) (T, bool) {
	for v := range ToSeq(src) {
		return v, true
	}
	var zero T
	return zero, false
}

// Last drains the source and returns its final element.
func Last[T any](src Iterable[T]) (T, bool) {
	if ix, ok := src.(Indexer[T]); ok {
		if n := ix.Len(); 0 < n {
			return ix.At(n - 1), true
		}
		var zero T
		return zero, false
	}
	var (
		last T
		ok   bool
	)
	for v := range ToSeq(src) {
		last = v
		ok = true
	}
	return last, ok
}

// Filter lazily keeps the elements which satisfy the filter.
func Filter[T any](src Iterable[T], filter func(T) bool) Iterable[T] {
	return IterableFunc[T](func() Cursor[T] {
		c := src.Cursor()
		return FromPull(func() (T, bool) {
			for {
				v, ok := c.Next()
				if !ok {
					return v, false
				}
				if filter(v) {
					return v, true
				}
			}
		}, func() { Stop(c) })
	})
}

// Map lazily transforms every element.
// Array-like sources stay array-like.
func Map[To, From any](src Iterable[From], transform func(From) To) Iterable[To] {
	if ix, ok := src.(Indexer[From]); ok {
		return mapView[To, From]{src: ix, transform: transform}
	}
	return IterableFunc[To](func() Cursor[To] {
		c := src.Cursor()
		return FromPull(func() (To, bool) {
			v, ok := c.Next()
			if !ok {
				var zero To
				return zero, false
			}
			return transform(v), true
		}, func() { Stop(c) })
	})
}

type mapView[To, From any] struct {
	src       Indexer[From]
	transform func(From) To
}

func (v mapView[To, From]) Len() int           { return v.src.Len() }
func (v mapView[To, From]) At(index int) To    { return v.transform(v.src.At(index)) }
func (v mapView[To, From]) Cursor() Cursor[To] { return IndexCursor[To](v) }
