// Package linq is a lazy, composable query pipeline over the iterkit protocol.
//
// # Summary
//
// An Enumerable wraps a source and offers the query operators as methods.
// Operators are either deferred or eager:
//
//   - deferred operators (Skip, Where, Union, ...) return a new Enumerable and read nothing from the source
//     until the result is enumerated
//   - eager operators (Any, Count, LastOrDefault, ...) consume the source right away,
//     stopping as early as the answer is known
//
// Operators which change the element type, like Select or GroupBy, are package level functions,
// because Go methods can't introduce type parameters.
//
// # Sources
//
// From accepts any value and classifies it once with iterkit.Classify:
// slices and strings are array-like, values with a Cursor method and iter.Seq functions follow the protocol,
// argument-less functions returning one of those are generators, maps and structs are keyed,
// and everything else is a single element scalar.
// The typed entry points (Of, FromSlice, FromSeq, ...) skip the dynamic classification.
//
// # Errors
//
// A bad argument, like a nil predicate, is a programming error:
// the operator receiving it panics with an errorkit.Error value before anything is enumerated.
// The zero Enumerable is a null source.
// Union refuses it with errorkit.ErrNullSource, every other operator treats it as empty.
package linq

import (
	"cmp"
	"iter"
	"slices"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
)

// Predicate tests an element.
type Predicate[T any] func(T) bool

// Enumerable is a lazily evaluated sequence.
// It is a small value, copying it doesn't copy the elements.
type Enumerable[T any] struct {
	src  iterkit.Iterable[T]
	kind iterkit.SourceKind
}

var _ iterkit.Iterable[any] = Enumerable[any]{}

// From normalizes an arbitrary value into an Enumerable of dynamic elements.
// A nil value gives an empty sequence.
func From(src any) Enumerable[any] {
	it, kind := iterkit.Normalize(src)
	return Enumerable[any]{src: it, kind: kind}
}

// Of is an array-like Enumerable of the given values.
func Of[T any](vs ...T) Enumerable[T] {
	return FromSlice(vs)
}

// FromSlice is an array-like Enumerable over the slice.
// The slice is not copied.
func FromSlice[T any](vs []T) Enumerable[T] {
	return Enumerable[T]{src: iterkit.Slice(vs), kind: iterkit.KindArrayLike}
}

// FromString enumerates the runes of s.
func FromString(s string) Enumerable[rune] {
	return Enumerable[rune]{src: iterkit.String(s), kind: iterkit.KindArrayLike}
}

// FromIterable wraps an Iterable, like a collection of the datastruct package.
// A nil Iterable gives the null source.
func FromIterable[T any](src iterkit.Iterable[T]) Enumerable[T] {
	if src == nil {
		return Enumerable[T]{}
	}
	if e, ok := src.(Enumerable[T]); ok {
		return e
	}
	return derive(src)
}

// FromSeq wraps an iter.Seq.
// The sequence is restartable when seq can be ranged over more than once.
func FromSeq[T any](seq iter.Seq[T]) Enumerable[T] {
	return Enumerable[T]{src: iterkit.FromSeq(seq), kind: iterkit.KindProtocol}
}

// FromSeq2 wraps an iter.Seq2 as a sequence of KV pairs.
func FromSeq2[K, V any](seq iter.Seq2[K, V]) Enumerable[iterkit.KV[K, V]] {
	return Enumerable[iterkit.KV[K, V]]{src: iterkit.FromSeq2(seq), kind: iterkit.KindProtocol}
}

// FromCursor wraps a single cursor.
// The result is single use: enumerating it a second time yields nothing.
func FromCursor[T any](c iterkit.Cursor[T]) Enumerable[T] {
	return Enumerable[T]{src: iterkit.FromCursor(c), kind: iterkit.KindProtocol}
}

// FromFunc uses a generator function as the source.
// Every enumeration calls fn for a fresh cursor.
// It panics with errorkit.ErrInvalidArgument when fn is nil.
func FromFunc[T any](fn func() iterkit.Cursor[T]) Enumerable[T] {
	if fn == nil {
		panic(errorkit.ErrInvalidArgument.F("nil generator function"))
	}
	return Enumerable[T]{
		src: iterkit.IterableFunc[T](func() iterkit.Cursor[T] {
			if c := fn(); c != nil {
				return c
			}
			return iterkit.Empty[T]().Cursor()
		}),
		kind: iterkit.KindGeneratorFunc,
	}
}

// FromMap enumerates the entries of a map in ascending key order.
// The keys are snapshotted on each enumeration.
func FromMap[K cmp.Ordered, V any](m map[K]V) Enumerable[iterkit.KV[K, V]] {
	return Enumerable[iterkit.KV[K, V]]{
		src: iterkit.IterableFunc[iterkit.KV[K, V]](func() iterkit.Cursor[iterkit.KV[K, V]] {
			kvs := make([]iterkit.KV[K, V], 0, len(m))
			for k, v := range m {
				kvs = append(kvs, iterkit.KV[K, V]{K: k, V: v})
			}
			slices.SortFunc(kvs, func(a, b iterkit.KV[K, V]) int { return cmp.Compare(a.K, b.K) })
			return iterkit.Slice(kvs).Cursor()
		}),
		kind: iterkit.KindKeyedObject,
	}
}

// Scalar is a sequence of the single value.
func Scalar[T any](v T) Enumerable[T] {
	return Enumerable[T]{src: iterkit.Single(v), kind: iterkit.KindScalar}
}

// Empty is a sequence without elements.
// Unlike the zero Enumerable, it is not a null source.
func Empty[T any]() Enumerable[T] {
	return Enumerable[T]{src: iterkit.Empty[T](), kind: iterkit.KindEmpty}
}

// Range is the sequence of count consecutive integers starting at start.
// It panics with errorkit.ErrInvalidArgument when count is negative.
func Range(start, count int) Enumerable[int] {
	if count < 0 {
		panic(errorkit.ErrInvalidArgument.F("negative count: %d", count))
	}
	return Enumerable[int]{src: iterkit.IntRange(start, start+count-1), kind: iterkit.KindArrayLike}
}

// Repeat is the sequence of v repeated count times.
// It panics with errorkit.ErrInvalidArgument when count is negative.
func Repeat[T any](v T, count int) Enumerable[T] {
	if count < 0 {
		panic(errorkit.ErrInvalidArgument.F("negative count: %d", count))
	}
	return Enumerable[T]{src: repeatView[T]{v: v, n: count}, kind: iterkit.KindArrayLike}
}

type repeatView[T any] struct {
	v T
	n int
}

func (r repeatView[T]) Len() int                  { return r.n }
func (r repeatView[T]) At(int) T                  { return r.v }
func (r repeatView[T]) Cursor() iterkit.Cursor[T] { return iterkit.IndexCursor[T](r) }

// Kind tells how the underlying source was classified.
// Sequences produced by operators report iterkit.KindProtocol, or iterkit.KindArrayLike when they can be indexed.
func (e Enumerable[T]) Kind() iterkit.SourceKind {
	return e.kind
}

// IsNull reports whether e is the zero Enumerable.
func (e Enumerable[T]) IsNull() bool {
	return e.src == nil
}

// String is the tag of the source kind, like "[Array Iterable]".
func (e Enumerable[T]) String() string {
	return e.kind.Tag()
}

// Cursor starts a new enumeration.
func (e Enumerable[T]) Cursor() iterkit.Cursor[T] {
	if e.src == nil {
		return iterkit.Empty[T]().Cursor()
	}
	return e.src.Cursor()
}

// Values makes the sequence usable with range.
// The cursor is released even when the loop breaks early.
func (e Enumerable[T]) Values() iter.Seq[T] {
	return iterkit.ToSeq[T](e)
}

// Iterable exposes the underlying source, which for array-like sequences is an iterkit.Indexer.
func (e Enumerable[T]) Iterable() iterkit.Iterable[T] {
	if e.src == nil {
		return iterkit.Empty[T]()
	}
	return e.src
}

// derive wraps an operator result, keeping track of whether it is still array-like.
func derive[T any](src iterkit.Iterable[T]) Enumerable[T] {
	kind := iterkit.KindProtocol
	if _, ok := src.(iterkit.Indexer[T]); ok {
		kind = iterkit.KindArrayLike
	}
	return Enumerable[T]{src: src, kind: kind}
}

// deferred builds an operator whose cursor is produced by fn for every enumeration.
func deferred[T any](fn func() iterkit.Cursor[T]) Enumerable[T] {
	return Enumerable[T]{src: iterkit.IterableFunc[T](fn), kind: iterkit.KindProtocol}
}

// optionalPredicate returns the single predicate, or nil when none was given.
func optionalPredicate[T any](preds []Predicate[T]) Predicate[T] {
	switch len(preds) {
	case 0:
		return nil
	case 1:
		if preds[0] == nil {
			panic(errorkit.ErrInvalidArgument.F("nil predicate"))
		}
		return preds[0]
	default:
		panic(errorkit.ErrInvalidArgument.F("expected at most one predicate, got %d", len(preds)))
	}
}

func requirePredicate[T any](pred Predicate[T]) Predicate[T] {
	if pred == nil {
		panic(errorkit.ErrInvalidArgument.F("nil predicate"))
	}
	return pred
}

// comparerOf returns the optional comparer, or compare.Default.
func comparerOf[T any](cmps []compare.Comparer[T]) compare.Comparer[T] {
	switch len(cmps) {
	case 0:
		return compare.Default[T]()
	case 1:
		if cmps[0] == nil {
			return compare.Default[T]()
		}
		return cmps[0]
	default:
		panic(errorkit.ErrInvalidArgument.F("expected at most one comparer, got %d", len(cmps)))
	}
}
