package iterkit

// Cursor is a stateful, single pass reader over a sequence.
//
// Next returns the next element and true,
// or the zero value and false once the sequence is exhausted.
// After the first false, every following call must return false as well.
type Cursor[T any] interface {
	Next() (T, bool)
}

// Iterable is anything that can hand out cursors.
//
// Restartable sources return an independent cursor on every call,
// single use sources return the same cursor, which stays exhausted once drained.
type Iterable[T any] interface {
	Cursor() Cursor[T]
}

// Stopper is implemented by cursors that hold resources,
// like the coroutine behind an iter.Pull.
// Stop releases them, after which Next returns false.
type Stopper interface {
	Stop()
}

// Stop releases the cursor's resources when it holds any.
// It is safe to call with any cursor, and to call it more than once.
func Stop[T any](c Cursor[T]) {
	if s, ok := c.(Stopper); ok {
		s.Stop()
	}
}

// Indexer is the array-like shape: a known length with random access.
type Indexer[T any] interface {
	Len() int
	At(index int) T
}

// CursorFunc turns a next function into a Cursor.
// The function itself is responsible to keep returning false once it is done.
type CursorFunc[T any] func() (T, bool)

func (fn CursorFunc[T]) Next() (T, bool) { return fn() }

// IterableFunc turns a cursor factory into an Iterable.
type IterableFunc[T any] func() Cursor[T]

func (fn IterableFunc[T]) Cursor() Cursor[T] { return fn() }

// KV is the element type of keyed sources.
type KV[K, V any] struct {
	K K
	V V
}
