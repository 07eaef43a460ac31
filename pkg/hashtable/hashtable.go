// Package hashtable implements a bucketed hash table with pluggable equality.
//
// Unlike the built-in map, the table does not require comparable keys:
// equality and hashing are supplied by a compare.Comparer, which makes it usable for
// case-insensitive strings, projected keys, byte slices by content, or identity of non-comparable values.
//
// # Layout
//
// Collisions are resolved by chaining within a bucket.
// The bucket count is always a power of two, starting at 8,
// and it doubles whenever the number of entries exceeds three quarters of the bucket count.
// Hash codes are passed through a 64 bit finalizer before they are masked into a bucket index,
// so comparers with weak low bits still spread well.
//
// Every entry is also linked into an insertion ordered list,
// which gives a stable iteration order that does not depend on the bucket layout.
package hashtable

import (
	"iter"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/option"
)

const (
	minBuckets = 8
	// loadFactorNum / loadFactorDen is the fill ratio above which the table grows.
	loadFactorNum = 3
	loadFactorDen = 4
)

// Policy tells what Add should do when an equal key is already present.
type Policy int

const (
	// RejectDuplicates keeps the existing entry and reports that nothing was inserted.
	// This is the set semantic.
	RejectDuplicates Policy = iota
	// OverwriteDuplicates replaces the value of the existing entry.
	// This is the map semantic.
	OverwriteDuplicates
)

type Table[K, V any] struct {
	comparer compare.Comparer[K]
	policy   Policy
	buckets  []*entry[K, V]
	head     *entry[K, V]
	tail     *entry[K, V]
	length   int
	capacity int
}

type entry[K, V any] struct {
	hash   uint64
	key    K
	value  V
	chain  *entry[K, V]
	before *entry[K, V]
	after  *entry[K, V]
	// removed marks an entry unlinked from the table,
	// so an ongoing iteration can detect it and skip forward.
	removed bool
}

// New creates a Table.
// Without options it uses compare.Default and the RejectDuplicates policy.
func New[K, V any](opts ...Option[K]) *Table[K, V] {
	c := option.ToConfig(opts)
	return &Table[K, V]{
		comparer: c.Comparer,
		policy:   c.Policy,
		capacity: c.Capacity,
	}
}

func (t *Table[K, V]) init() {
	if t.comparer == nil {
		t.comparer = compare.Default[K]()
	}
	if t.buckets == nil {
		t.buckets = make([]*entry[K, V], bucketsFor(t.capacity))
	}
}

// Comparer returns the equality strategy of the table.
func (t *Table[K, V]) Comparer() compare.Comparer[K] {
	if t.comparer == nil {
		return compare.Default[K]()
	}
	return t.comparer
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Add inserts the key with its value.
//
// When an equal key is already present, the outcome depends on the policy:
// with RejectDuplicates nothing changes and Add returns false,
// with OverwriteDuplicates the value is replaced and Add returns true.
func (t *Table[K, V]) Add(key K, val V) bool {
	t.init()
	hash := t.hash(key)
	if e := t.find(hash, key); e != nil {
		if t.policy == OverwriteDuplicates {
			e.value = val
			return true
		}
		return false
	}
	t.insert(hash, key, val)
	return true
}

// Set inserts or overwrites the value of a key, regardless of the policy.
// It reports whether a new entry was created.
func (t *Table[K, V]) Set(key K, val V) bool {
	t.init()
	hash := t.hash(key)
	if e := t.find(hash, key); e != nil {
		e.value = val
		return false
	}
	t.insert(hash, key, val)
	return true
}

// Lookup returns the value stored under an equal key.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	if e := t.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// LookupKey returns the stored key which is equal to the given one, together with its value.
// The stored key is not necessarily identical to the argument, only equal under the comparer.
func (t *Table[K, V]) LookupKey(key K) (K, V, bool) {
	if e := t.lookup(key); e != nil {
		return e.key, e.value, true
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

// Get returns the value of the key, or the zero value when the key is absent.
func (t *Table[K, V]) Get(key K) V {
	v, _ := t.Lookup(key)
	return v
}

func (t *Table[K, V]) Contains(key K) bool {
	return t.lookup(key) != nil
}

// Remove deletes the entry of an equal key and reports whether there was one.
func (t *Table[K, V]) Remove(key K) bool {
	if t == nil || t.length == 0 {
		return false
	}
	hash := t.hash(key)
	index := t.index(hash)
	var prev *entry[K, V]
	for e := t.buckets[index]; e != nil; prev, e = e, e.chain {
		if e.hash != hash || !t.comparer.Equal(e.key, key) {
			continue
		}
		if prev == nil {
			t.buckets[index] = e.chain
		} else {
			prev.chain = e.chain
		}
		t.unlink(e)
		t.length--
		return true
	}
	return false
}

// Clear removes every entry but keeps the comparer and the policy.
func (t *Table[K, V]) Clear() {
	for e := t.head; e != nil; {
		next := e.after
		e.removed = true
		e.chain, e.before = nil, nil
		e = next
	}
	t.buckets = nil
	t.head, t.tail = nil, nil
	t.length = 0
}

// All iterates over the entries in insertion order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		for e := t.head; e != nil; e = e.next() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys iterates over the keys in insertion order.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates over the values in insertion order.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (t *Table[K, V]) hash(key K) uint64 {
	return mix(t.comparer.Hash(key))
}

func (t *Table[K, V]) index(hash uint64) int {
	return int(hash & uint64(len(t.buckets)-1))
}

func (t *Table[K, V]) lookup(key K) *entry[K, V] {
	if t == nil || t.length == 0 {
		return nil
	}
	return t.find(t.hash(key), key)
}

func (t *Table[K, V]) find(hash uint64, key K) *entry[K, V] {
	for e := t.buckets[t.index(hash)]; e != nil; e = e.chain {
		if e.hash == hash && t.comparer.Equal(e.key, key) {
			return e
		}
	}
	return nil
}

func (t *Table[K, V]) insert(hash uint64, key K, val V) {
	if loadFactorDen*(t.length+1) > loadFactorNum*len(t.buckets) {
		t.grow()
	}
	e := &entry[K, V]{hash: hash, key: key, value: val}
	index := t.index(hash)
	e.chain = t.buckets[index]
	t.buckets[index] = e

	if t.tail == nil {
		t.head = e
	} else {
		t.tail.after = e
		e.before = t.tail
	}
	t.tail = e
	t.length++
}

func (t *Table[K, V]) unlink(e *entry[K, V]) {
	if e.before == nil {
		t.head = e.after
	} else {
		e.before.after = e.after
	}
	if e.after == nil {
		t.tail = e.before
	} else {
		e.after.before = e.before
	}
	// e.after is kept, so an iteration which currently stands on e can still move forward.
	e.removed = true
	e.chain, e.before = nil, nil
}

func (t *Table[K, V]) grow() {
	buckets := make([]*entry[K, V], len(t.buckets)*2)
	mask := uint64(len(buckets) - 1)
	for e := t.head; e != nil; e = e.after {
		index := e.hash & mask
		e.chain = buckets[index]
		buckets[index] = e
	}
	t.buckets = buckets
}

// next returns the following live entry in insertion order.
func (e *entry[K, V]) next() *entry[K, V] {
	n := e.after
	for n != nil && n.removed {
		n = n.after
	}
	return n
}

func bucketsFor(capacity int) int {
	n := minBuckets
	for loadFactorNum*n < loadFactorDen*capacity {
		n *= 2
	}
	return n
}

// mix is the murmur3 64 bit finalizer.
func mix(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// Cursor returns a cursor over the entries in insertion order.
// Entries removed while the cursor is open are skipped.
func (t *Table[K, V]) Cursor() iterkit.Cursor[iterkit.KV[K, V]] {
	var (
		current *entry[K, V]
		started bool
	)
	return iterkit.CursorFunc[iterkit.KV[K, V]](func() (iterkit.KV[K, V], bool) {
		if t == nil {
			return iterkit.KV[K, V]{}, false
		}
		if !started {
			started = true
			current = t.head
		} else if current != nil {
			current = current.next()
		}
		if current == nil {
			return iterkit.KV[K, V]{}, false
		}
		return iterkit.KV[K, V]{K: current.key, V: current.value}, true
	})
}
