// Package ds contains the capability interfaces that enumkit collections compose.
//
// A collection implements each capability on its own.
// Consumers should depend on the narrowest interface that serves them.
package ds

import (
	"iter"

	"github.com/enumkit/enumkit/pkg/iterkit"
)

type Len interface {
	Len() int
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Containable[T any] interface {
	Contains(element T) bool
}

type Values[T any] interface {
	Values() iter.Seq[T]
}

type Keys[K any] interface {
	Keys() iter.Seq[K]
}

type All[K, V any] interface {
	All() iter.Seq2[K, V]
}

type SliceConvertible[T any] interface {
	ToSlice() []T
}

// Copyable collections copy their elements into dst starting at index.
// It fails with errorkit.ErrInvalidArgument when index is out of range or dst is too small.
type Copyable[T any] interface {
	CopyTo(dst []T, index int) error
}

type Clearable interface {
	Clear()
}

// ReadOnlyCollection is the read side every enumkit collection offers.
type ReadOnlyCollection[T any] interface {
	iterkit.Iterable[T]
	Len
	Containable[T]
	Values[T]
	SliceConvertible[T]
	Copyable[T]
}

type Collection[T any] interface {
	ReadOnlyCollection[T]
	Clearable
}

type ReadOnlyList[T any] interface {
	ReadOnlyCollection[T]
	iterkit.Indexer[T]
	Lookup(index int) (T, bool)
	IndexOf(v T) int
}

type List[T any] interface {
	ReadOnlyList[T]
	Collection[T]
	Appendable[T]
	Set(index int, val T) bool
	Insert(index int, vs ...T) bool
	Delete(index int) bool
}

// ReadOnlyMap is the read side of keyed collections.
// Enumerating it yields KV pairs, while Values yields only the values.
type ReadOnlyMap[K, V any] interface {
	iterkit.Iterable[iterkit.KV[K, V]]
	Len
	SliceConvertible[iterkit.KV[K, V]]
	Copyable[iterkit.KV[K, V]]
	Lookup(key K) (V, bool)
	Get(key K) V
	ContainsKey(key K) bool
	Keys[K]
	Values[V]
	All[K, V]
}

type Map[K, V any] interface {
	ReadOnlyMap[K, V]
	Clearable
	Set(key K, val V)
	Delete(key K) bool
}
