package iterkit

// Offset lazily skips the first n elements of the source.
//
// Array-like sources are not iterated at all:
// the result is an index view shifted by n, so buffering it copies only the tail.
// Other sources get a cursor that discards n elements on its first pull.
// A negative n is treated as zero.
func Offset[T any](src Iterable[T], n int) Iterable[T] {
	if n <= 0 {
		return src
	}
	if ix, ok := src.(Indexer[T]); ok {
		return offsetView[T]{src: ix, offset: n}
	}
	return IterableFunc[T](func() Cursor[T] {
		var (
			c       = src.Cursor()
			skipped bool
		)
		return FromPull(func() (T, bool) {
			if !skipped {
				skipped = true
				for i := 0; i < n; i++ {
					if v, ok := c.Next(); !ok {
						return v, false
					}
				}
			}
			return c.Next()
		}, func() { Stop(c) })
	})
}

type offsetView[T any] struct {
	src    Indexer[T]
	offset int
}

func (v offsetView[T]) Len() int          { return max(0, v.src.Len()-v.offset) }
func (v offsetView[T]) At(index int) T    { return v.src.At(v.offset + index) }
func (v offsetView[T]) Cursor() Cursor[T] { return IndexCursor[T](v) }

// Head takes the first n element, similarly how the coreutils "head" app works.
// The upstream cursor is stopped as soon as the n-th element is taken.
func Head[T any](src Iterable[T], n int) Iterable[T] {
	if n <= 0 {
		return Empty[T]()
	}
	if ix, ok := src.(Indexer[T]); ok {
		return headView[T]{src: ix, limit: n}
	}
	return IterableFunc[T](func() Cursor[T] {
		var (
			c     = src.Cursor()
			taken int
		)
		return FromPull(func() (T, bool) {
			if n <= taken {
				var zero T
				return zero, false
			}
			v, ok := c.Next()
			if ok {
				taken++
			}
			return v, ok
		}, func() { Stop(c) })
	})
}

type headView[T any] struct {
	src   Indexer[T]
	limit int
}

func (v headView[T]) Len() int          { return min(v.limit, v.src.Len()) }
func (v headView[T]) At(index int) T    { return v.src.At(index) }
func (v headView[T]) Cursor() Cursor[T] { return IndexCursor[T](v) }
