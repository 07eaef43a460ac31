// Package datastruct implements the enumkit collection family.
//
// Every collection composes the port/ds capability interfaces on its own,
// there is no shared base type.
// All of them are Iterables, so they plug into iterkit and linq directly.
//
// Collections are not safe for concurrent mutation.
// Mutating a collection while one of its cursors is open gives unspecified element order,
// but never corrupts its size or its links.
package datastruct

import (
	"iter"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/option"
)

// Option configures the construction of a collection.
type Option[T any] = option.Option[Config[T]]

type Config[T any] struct {
	// Values seed the collection, in order.
	Values []T
	// Source seeds the collection after Values.
	Source iterkit.Iterable[T]
	// Comparer is the equality strategy of the elements.
	Comparer compare.Comparer[T]
	// Capacity preallocates room for elements.
	Capacity int

	keyComparer any
}

func (c *Config[T]) Init() {
	c.Comparer = compare.Default[T]()
}

func (c Config[T]) seed() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.Values {
			if !yield(v) {
				return
			}
		}
		if c.Source == nil {
			return
		}
		for v := range iterkit.ToSeq(c.Source) {
			if !yield(v) {
				return
			}
		}
	}
}

func keyComparerOf[K, T any](c Config[T]) compare.Comparer[K] {
	if kc, ok := c.keyComparer.(compare.Comparer[K]); ok {
		return kc
	}
	return compare.Default[K]()
}

// WithValues seeds the collection with the given elements.
func WithValues[T any](vs ...T) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		c.Values = append(c.Values, vs...)
	})
}

// WithSource seeds the collection with the elements of an Iterable.
// The source is read once, during construction.
func WithSource[T any](src iterkit.Iterable[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		c.Source = src
	})
}

// WithComparer sets how elements are compared.
// A nil comparer keeps the default.
func WithComparer[T any](cmp compare.Comparer[T]) Option[T] {
	return option.Func[Config[T]](func(c *Config[T]) {
		if cmp != nil {
			c.Comparer = cmp
		}
	})
}

// WithKeyComparer sets how the keys of a keyed collection are compared.
func WithKeyComparer[K, V any](cmp compare.Comparer[K]) Option[iterkit.KV[K, V]] {
	return option.Func[Config[iterkit.KV[K, V]]](func(c *Config[iterkit.KV[K, V]]) {
		if cmp != nil {
			c.keyComparer = cmp
		}
	})
}

// WithCapacity preallocates room for n elements.
// It panics with errorkit.ErrInvalidArgument when n is negative.
func WithCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic(errorkit.ErrInvalidArgument.F("negative capacity: %d", n))
	}
	return option.Func[Config[T]](func(c *Config[T]) {
		c.Capacity = n
	})
}

func copyTo[T any](dst []T, index, length int, src iter.Seq[T]) error {
	if index < 0 || len(dst) < index {
		return errorkit.ErrInvalidArgument.F("index %d is out of range [0, %d]", index, len(dst))
	}
	if len(dst)-index < length {
		return errorkit.ErrInvalidArgument.F("destination has room for %d elements, %d are required", len(dst)-index, length)
	}
	i := index
	for v := range src {
		dst[i] = v
		i++
	}
	return nil
}
