package datastruct

import (
	"iter"
	"slices"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/hashtable"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/option"
)

// Grouping is the elements of a source which share a key.
// It is array-like and read-only.
type Grouping[K, T any] struct {
	key      K
	elements []T
}

func (g *Grouping[K, T]) Key() K { return g.key }

func (g *Grouping[K, T]) Len() int {
	if g == nil {
		return 0
	}
	return len(g.elements)
}

func (g *Grouping[K, T]) At(index int) T { return g.elements[index] }

func (g *Grouping[K, T]) Cursor() iterkit.Cursor[T] { return iterkit.IndexCursor[T](g) }

func (g *Grouping[K, T]) Values() iter.Seq[T] { return slices.Values(g.elements) }

func (g *Grouping[K, T]) ToSlice() []T { return slices.Clone(g.elements) }

// Lookup groups the elements of a source by a key.
// Groups enumerate in the order their keys were first seen,
// and elements keep their source order within a group.
type Lookup[K, T any] struct {
	groups *hashtable.Table[K, *Grouping[K, T]]
}

// NewLookup buffers the source into groups.
// The options configure the key comparison, WithComparer being the relevant one.
// It panics with errorkit.ErrInvalidArgument when key is nil.
func NewLookup[K, T any](src iterkit.Iterable[T], key func(T) K, opts ...Option[K]) *Lookup[K, T] {
	if key == nil {
		panic(errorkit.ErrInvalidArgument.F("nil key selector"))
	}
	c := option.ToConfig(opts)
	l := &Lookup[K, T]{groups: hashtable.New[K, *Grouping[K, T]](hashtable.WithComparer(c.Comparer))}
	for v := range iterkit.ToSeq(src) {
		k := key(v)
		g, ok := l.groups.Lookup(k)
		if !ok {
			g = &Grouping[K, T]{key: k}
			l.groups.Add(k, g)
		}
		g.elements = append(g.elements, v)
	}
	return l
}

// Len returns the number of groups.
func (l *Lookup[K, T]) Len() int {
	if l == nil || l.groups == nil {
		return 0
	}
	return l.groups.Len()
}

// Get returns the group of the key.
// A missing key gives an empty grouping.
func (l *Lookup[K, T]) Get(key K) *Grouping[K, T] {
	if g, ok := l.Lookup(key); ok {
		return g
	}
	return &Grouping[K, T]{key: key}
}

func (l *Lookup[K, T]) Lookup(key K) (*Grouping[K, T], bool) {
	if l.Len() == 0 {
		return nil, false
	}
	return l.groups.Lookup(key)
}

func (l *Lookup[K, T]) ContainsKey(key K) bool {
	_, ok := l.Lookup(key)
	return ok
}

func (l *Lookup[K, T]) KeyComparer() compare.Comparer[K] {
	if l.groups == nil {
		return compare.Default[K]()
	}
	return l.groups.Comparer()
}

func (l *Lookup[K, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		if l.groups == nil {
			return
		}
		for k := range l.groups.Keys() {
			if !yield(k) {
				return
			}
		}
	}
}

func (l *Lookup[K, T]) Values() iter.Seq[*Grouping[K, T]] {
	return func(yield func(*Grouping[K, T]) bool) {
		if l.groups == nil {
			return
		}
		for g := range l.groups.Values() {
			if !yield(g) {
				return
			}
		}
	}
}

func (l *Lookup[K, T]) Cursor() iterkit.Cursor[*Grouping[K, T]] {
	if l.groups == nil {
		return iterkit.Empty[*Grouping[K, T]]().Cursor()
	}
	c := l.groups.Cursor()
	return iterkit.CursorFunc[*Grouping[K, T]](func() (*Grouping[K, T], bool) {
		kv, ok := c.Next()
		return kv.V, ok
	})
}

func (l *Lookup[K, T]) ToSlice() []*Grouping[K, T] {
	gs := make([]*Grouping[K, T], 0, l.Len())
	for g := range l.Values() {
		gs = append(gs, g)
	}
	return gs
}
