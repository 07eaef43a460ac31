package datastruct

import (
	"iter"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/hashtable"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/ds"
	"github.com/enumkit/enumkit/port/option"
)

// Dictionary maps keys to values through a hash table.
// Key equality comes from the key comparer, set with WithKeyComparer.
// Entries enumerate as KV pairs in insertion order.
type Dictionary[K, V any] struct {
	table *hashtable.Table[K, V]
}

var _ ds.Map[any, any] = (*Dictionary[any, any])(nil)

// NewDictionary creates a Dictionary.
// Seed pairs with an already present key overwrite the earlier value.
func NewDictionary[K, V any](opts ...Option[iterkit.KV[K, V]]) *Dictionary[K, V] {
	c := option.ToConfig(opts)
	d := &Dictionary[K, V]{table: hashtable.New[K, V](
		hashtable.WithComparer(keyComparerOf[K](c)),
		hashtable.WithCapacity[K](c.Capacity),
		hashtable.WithPolicy[K](hashtable.OverwriteDuplicates),
	)}
	for kv := range c.seed() {
		d.Set(kv.K, kv.V)
	}
	return d
}

func (d *Dictionary[K, V]) tbl() *hashtable.Table[K, V] {
	if d.table == nil {
		d.table = hashtable.New[K, V](hashtable.WithPolicy[K](hashtable.OverwriteDuplicates))
	}
	return d.table
}

// KeyComparer returns the equality strategy of the keys.
func (d *Dictionary[K, V]) KeyComparer() compare.Comparer[K] {
	return d.tbl().Comparer()
}

func (d *Dictionary[K, V]) Len() int {
	if d == nil || d.table == nil {
		return 0
	}
	return d.table.Len()
}

// Add inserts a new entry.
// It fails with errorkit.ErrInvalidArgument when the key is already present.
func (d *Dictionary[K, V]) Add(key K, val V) error {
	if !d.TryAdd(key, val) {
		return errorkit.ErrInvalidArgument.F("an entry with the same key already exists: %v", key)
	}
	return nil
}

// TryAdd inserts a new entry unless the key is already present.
func (d *Dictionary[K, V]) TryAdd(key K, val V) bool {
	t := d.tbl()
	if t.Contains(key) {
		return false
	}
	return t.Set(key, val)
}

// Set inserts or overwrites the value of the key.
func (d *Dictionary[K, V]) Set(key K, val V) {
	d.tbl().Set(key, val)
}

func (d *Dictionary[K, V]) Lookup(key K) (V, bool) {
	return d.tbl().Lookup(key)
}

// Get returns the value of the key, or the zero value when it is absent.
func (d *Dictionary[K, V]) Get(key K) V {
	return d.tbl().Get(key)
}

func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	return d.tbl().Contains(key)
}

// ContainsValue scans the values for one equal to val.
// The comparison uses compare.Default unless a comparer is given.
func (d *Dictionary[K, V]) ContainsValue(val V, cmp ...compare.Comparer[V]) bool {
	c := compare.Default[V]()
	if 0 < len(cmp) && cmp[0] != nil {
		c = cmp[0]
	}
	for v := range d.Values() {
		if c.Equal(v, val) {
			return true
		}
	}
	return false
}

func (d *Dictionary[K, V]) Delete(key K) bool {
	return d.tbl().Remove(key)
}

func (d *Dictionary[K, V]) Clear() {
	d.tbl().Clear()
}

func (d *Dictionary[K, V]) Keys() iter.Seq[K] {
	return d.tbl().Keys()
}

func (d *Dictionary[K, V]) Values() iter.Seq[V] {
	return d.tbl().Values()
}

func (d *Dictionary[K, V]) All() iter.Seq2[K, V] {
	return d.tbl().All()
}

func (d *Dictionary[K, V]) Cursor() iterkit.Cursor[iterkit.KV[K, V]] {
	return d.tbl().Cursor()
}

func (d *Dictionary[K, V]) ToSlice() []iterkit.KV[K, V] {
	kvs := make([]iterkit.KV[K, V], 0, d.Len())
	for k, v := range d.All() {
		kvs = append(kvs, iterkit.KV[K, V]{K: k, V: v})
	}
	return kvs
}

func (d *Dictionary[K, V]) CopyTo(dst []iterkit.KV[K, V], index int) error {
	return copyTo(dst, index, d.Len(), iterkit.ToSeq[iterkit.KV[K, V]](d))
}
