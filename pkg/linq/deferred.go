package linq

import (
	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/hashtable"
	"github.com/enumkit/enumkit/pkg/iterkit"
)

// Skip bypasses the first n elements and yields the rest.
//
// A negative n is treated as zero, and skipping past the end gives an empty sequence.
// Array-like sources are not iterated:
// the result indexes into the source with an offset, so ToSlice copies only the remaining tail.
// Other sources advance their cursor n times on the first pull.
func (e Enumerable[T]) Skip(n int) Enumerable[T] {
	if n <= 0 {
		return e
	}
	return derive(iterkit.Offset(e.Iterable(), n))
}

// Take yields at most the first n elements.
// A negative n is treated as zero.
func (e Enumerable[T]) Take(n int) Enumerable[T] {
	return derive(iterkit.Head(e.Iterable(), n))
}

// Where yields the elements which satisfy the predicate.
func (e Enumerable[T]) Where(pred Predicate[T]) Enumerable[T] {
	requirePredicate(pred)
	return derive(iterkit.Filter(e.Iterable(), pred))
}

// SkipWhile bypasses elements as long as the predicate holds, then yields the rest.
func (e Enumerable[T]) SkipWhile(pred Predicate[T]) Enumerable[T] {
	requirePredicate(pred)
	src := e.Iterable()
	return deferred(func() iterkit.Cursor[T] {
		var (
			c        = src.Cursor()
			skipping = true
		)
		return iterkit.FromPull(func() (T, bool) {
			for {
				v, ok := c.Next()
				if !ok || !skipping || !pred(v) {
					skipping = false
					return v, ok
				}
			}
		}, func() { iterkit.Stop(c) })
	})
}

// TakeWhile yields elements as long as the predicate holds.
// The upstream cursor is stopped at the first element which fails it.
func (e Enumerable[T]) TakeWhile(pred Predicate[T]) Enumerable[T] {
	requirePredicate(pred)
	src := e.Iterable()
	return deferred(func() iterkit.Cursor[T] {
		c := src.Cursor()
		return iterkit.FromPull(func() (T, bool) {
			v, ok := c.Next()
			if !ok || !pred(v) {
				var zero T
				return zero, false
			}
			return v, true
		}, func() { iterkit.Stop(c) })
	})
}

// Concat yields the elements of e followed by the elements of other.
func (e Enumerable[T]) Concat(other Enumerable[T]) Enumerable[T] {
	return derive(concat(e.Iterable(), other.Iterable()))
}

// Append yields the elements of e followed by vs.
func (e Enumerable[T]) Append(vs ...T) Enumerable[T] {
	return derive(concat(e.Iterable(), iterkit.Slice(vs)))
}

// Prepend yields vs followed by the elements of e.
func (e Enumerable[T]) Prepend(vs ...T) Enumerable[T] {
	return derive(concat(iterkit.Slice(vs), e.Iterable()))
}

// Union yields the distinct elements of e and then of other.
//
// Every enumeration uses its own hash table as a membership filter:
// an element is yielded only when it is not equal to an already yielded one,
// so the first occurrence wins and the order of both sources is kept.
// Equality follows the optional comparer, compare.Default otherwise.
//
// Union panics with errorkit.ErrNullSource when either side is the null source.
func (e Enumerable[T]) Union(other Enumerable[T], cmp ...compare.Comparer[T]) Enumerable[T] {
	if e.IsNull() {
		panic(errorkit.ErrNullSource.F("union: first sequence"))
	}
	if other.IsNull() {
		panic(errorkit.ErrNullSource.F("union: second sequence"))
	}
	return distinct(concat(e.src, other.src), comparerOf(cmp))
}

// Distinct yields every element once, keeping the first occurrence.
func (e Enumerable[T]) Distinct(cmp ...compare.Comparer[T]) Enumerable[T] {
	return distinct(e.Iterable(), comparerOf(cmp))
}

func distinct[T any](src iterkit.Iterable[T], c compare.Comparer[T]) Enumerable[T] {
	return deferred(func() iterkit.Cursor[T] {
		seen := hashtable.New[T, struct{}](hashtable.WithComparer(c))
		return iterkit.Filter(src, func(v T) bool {
			return seen.Add(v, struct{}{})
		}).Cursor()
	})
}

// Intersect yields the distinct elements of e which are also in other.
// other is read into a set when the enumeration starts.
func (e Enumerable[T]) Intersect(other Enumerable[T], cmp ...compare.Comparer[T]) Enumerable[T] {
	c := comparerOf(cmp)
	src, oth := e.Iterable(), other.Iterable()
	return deferred(func() iterkit.Cursor[T] {
		set := toTable(oth, c)
		return iterkit.Filter(src, func(v T) bool {
			return set.Remove(v)
		}).Cursor()
	})
}

// Except yields the distinct elements of e which are not in other.
// other is read into a set when the enumeration starts.
func (e Enumerable[T]) Except(other Enumerable[T], cmp ...compare.Comparer[T]) Enumerable[T] {
	c := comparerOf(cmp)
	src, oth := e.Iterable(), other.Iterable()
	return deferred(func() iterkit.Cursor[T] {
		set := toTable(oth, c)
		return iterkit.Filter(src, func(v T) bool {
			return set.Add(v, struct{}{})
		}).Cursor()
	})
}

func toTable[T any](src iterkit.Iterable[T], c compare.Comparer[T]) *hashtable.Table[T, struct{}] {
	t := hashtable.New[T, struct{}](hashtable.WithComparer(c))
	for v := range iterkit.ToSeq(src) {
		t.Add(v, struct{}{})
	}
	return t
}

// Reverse yields the elements in the opposite order.
// Array-like sources are indexed from the end,
// anything else is buffered when the enumeration starts.
func (e Enumerable[T]) Reverse() Enumerable[T] {
	src := e.Iterable()
	if ix, ok := src.(iterkit.Indexer[T]); ok {
		return derive[T](reverseView[T]{src: ix})
	}
	return deferred(func() iterkit.Cursor[T] {
		return reverseView[T]{src: buffered[T](iterkit.Buffer(src))}.Cursor()
	})
}

type buffered[T any] []T

func (b buffered[T]) Len() int       { return len(b) }
func (b buffered[T]) At(index int) T { return b[index] }

type reverseView[T any] struct {
	src iterkit.Indexer[T]
}

func (v reverseView[T]) Len() int                  { return v.src.Len() }
func (v reverseView[T]) At(index int) T            { return v.src.At(v.src.Len() - 1 - index) }
func (v reverseView[T]) Cursor() iterkit.Cursor[T] { return iterkit.IndexCursor[T](v) }

// DefaultIfEmpty yields def alone when the sequence is empty, otherwise the sequence itself.
func (e Enumerable[T]) DefaultIfEmpty(def T) Enumerable[T] {
	src := e.Iterable()
	return deferred(func() iterkit.Cursor[T] {
		var (
			c     = src.Cursor()
			empty = true
			done  bool
		)
		return iterkit.FromPull(func() (T, bool) {
			if done {
				var zero T
				return zero, false
			}
			v, ok := c.Next()
			if ok {
				empty = false
				return v, true
			}
			done = true
			if empty {
				return def, true
			}
			return v, false
		}, func() { iterkit.Stop(c) })
	})
}

// concat chains the sources one after the other.
func concat[T any](srcs ...iterkit.Iterable[T]) iterkit.Iterable[T] {
	return iterkit.IterableFunc[T](func() iterkit.Cursor[T] {
		return &concatCursor[T]{srcs: srcs}
	})
}

type concatCursor[T any] struct {
	srcs  []iterkit.Iterable[T]
	index int
	cur   iterkit.Cursor[T]
	done  bool
}

func (c *concatCursor[T]) Next() (T, bool) {
	for !c.done {
		if c.cur == nil {
			if len(c.srcs) <= c.index {
				c.done = true
				break
			}
			c.cur = c.srcs[c.index].Cursor()
			c.index++
		}
		if v, ok := c.cur.Next(); ok {
			return v, true
		}
		iterkit.Stop(c.cur)
		c.cur = nil
	}
	var zero T
	return zero, false
}

func (c *concatCursor[T]) Stop() {
	if c.cur != nil {
		iterkit.Stop(c.cur)
		c.cur = nil
	}
	c.done = true
}
