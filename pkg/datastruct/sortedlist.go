package datastruct

import (
	"cmp"
	"iter"
	"slices"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/ds"
	"github.com/enumkit/enumkit/port/option"
)

// SortedList keeps its entries ordered by key.
// Keys and values live in parallel slices, and key lookup is a binary search.
// Create it with NewSortedList or NewSortedListFunc, the zero value has no ordering.
type SortedList[K, V any] struct {
	keys    []K
	values  []V
	compare func(a, b K) int
}

var _ ds.Map[any, any] = (*SortedList[any, any])(nil)

// NewSortedList creates a SortedList in the natural order of its keys.
func NewSortedList[K cmp.Ordered, V any](opts ...Option[iterkit.KV[K, V]]) *SortedList[K, V] {
	return NewSortedListFunc[K, V](compare.Ordered[K], opts...)
}

// NewSortedListFunc creates a SortedList ordered by the compare function.
// Keys comparing to zero are the same key.
// Seed pairs with an already present key overwrite the earlier value.
func NewSortedListFunc[K, V any](order compare.OrderFunc[K], opts ...Option[iterkit.KV[K, V]]) *SortedList[K, V] {
	if order == nil {
		panic(errorkit.ErrInvalidArgument.F("nil compare function"))
	}
	c := option.ToConfig(opts)
	sl := &SortedList[K, V]{
		keys:    make([]K, 0, c.Capacity),
		values:  make([]V, 0, c.Capacity),
		compare: order,
	}
	for kv := range c.seed() {
		sl.Set(kv.K, kv.V)
	}
	return sl
}

func (sl *SortedList[K, V]) search(key K) (int, bool) {
	return slices.BinarySearchFunc(sl.keys, key, sl.compare)
}

func (sl *SortedList[K, V]) Len() int {
	if sl == nil {
		return 0
	}
	return len(sl.keys)
}

// Add inserts a new entry at its ordered position.
// It fails with errorkit.ErrInvalidArgument when the key is already present.
func (sl *SortedList[K, V]) Add(key K, val V) error {
	i, found := sl.search(key)
	if found {
		return errorkit.ErrInvalidArgument.F("an entry with the same key already exists: %v", key)
	}
	sl.insert(i, key, val)
	return nil
}

// Set inserts or overwrites the value of the key.
func (sl *SortedList[K, V]) Set(key K, val V) {
	i, found := sl.search(key)
	if found {
		sl.values[i] = val
		return
	}
	sl.insert(i, key, val)
}

func (sl *SortedList[K, V]) insert(i int, key K, val V) {
	sl.keys = slices.Insert(sl.keys, i, key)
	sl.values = slices.Insert(sl.values, i, val)
}

func (sl *SortedList[K, V]) Lookup(key K) (V, bool) {
	if i, found := sl.search(key); found {
		return sl.values[i], true
	}
	var zero V
	return zero, false
}

func (sl *SortedList[K, V]) Get(key K) V {
	v, _ := sl.Lookup(key)
	return v
}

func (sl *SortedList[K, V]) ContainsKey(key K) bool {
	_, found := sl.search(key)
	return found
}

// IndexOfKey returns the position of the key, or -1.
func (sl *SortedList[K, V]) IndexOfKey(key K) int {
	if i, found := sl.search(key); found {
		return i
	}
	return -1
}

func (sl *SortedList[K, V]) KeyAt(index int) (K, bool) {
	if index < 0 || len(sl.keys) <= index {
		var zero K
		return zero, false
	}
	return sl.keys[index], true
}

func (sl *SortedList[K, V]) ValueAt(index int) (V, bool) {
	if index < 0 || len(sl.values) <= index {
		var zero V
		return zero, false
	}
	return sl.values[index], true
}

func (sl *SortedList[K, V]) RemoveAt(index int) bool {
	if index < 0 || len(sl.keys) <= index {
		return false
	}
	sl.keys = slices.Delete(sl.keys, index, index+1)
	sl.values = slices.Delete(sl.values, index, index+1)
	return true
}

// Remove deletes the entry of the key.
func (sl *SortedList[K, V]) Remove(key K) bool {
	return sl.RemoveAt(sl.IndexOfKey(key))
}

func (sl *SortedList[K, V]) Delete(key K) bool {
	return sl.Remove(key)
}

func (sl *SortedList[K, V]) Clear() {
	clear(sl.keys)
	clear(sl.values)
	sl.keys = sl.keys[:0]
	sl.values = sl.values[:0]
}

func (sl *SortedList[K, V]) Keys() iter.Seq[K] {
	return slices.Values(sl.keys)
}

func (sl *SortedList[K, V]) Values() iter.Seq[V] {
	return slices.Values(sl.values)
}

func (sl *SortedList[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range sl.keys {
			if !yield(k, sl.values[i]) {
				return
			}
		}
	}
}

// At returns the entry at the index, which makes the list array-like.
func (sl *SortedList[K, V]) At(index int) iterkit.KV[K, V] {
	return iterkit.KV[K, V]{K: sl.keys[index], V: sl.values[index]}
}

func (sl *SortedList[K, V]) Cursor() iterkit.Cursor[iterkit.KV[K, V]] {
	return iterkit.IndexCursor[iterkit.KV[K, V]](sl)
}

func (sl *SortedList[K, V]) ToSlice() []iterkit.KV[K, V] {
	kvs := make([]iterkit.KV[K, V], len(sl.keys))
	for i := range kvs {
		kvs[i] = sl.At(i)
	}
	return kvs
}

func (sl *SortedList[K, V]) CopyTo(dst []iterkit.KV[K, V], index int) error {
	return copyTo(dst, index, sl.Len(), iterkit.ToSeq[iterkit.KV[K, V]](sl))
}
