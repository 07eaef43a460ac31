package compare

import (
	"bytes"
	"hash/maphash"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/enumkit/enumkit/pkg/errorkit"
)

// Comparer is a pluggable equality strategy.
// It defines when two values are considered the same, and a hash code that is consistent with it:
//
//	Equal(a, b) ⇒ Hash(a) == Hash(b)
//
// Hash tables, sets, dictionaries and the deduplicating query operators all consult a Comparer,
// so a custom implementation changes what counts as a duplicate for all of them.
type Comparer[T any] interface {
	Equal(a, b T) bool
	Hash(v T) uint64
}

var seed = maphash.MakeSeed()

// Default returns the host-natural equality for T.
//
// Comparable values are compared with ==, which means value equality for numbers, strings and booleans,
// and identity for pointers.
// Slices, maps, functions and channels are compared by identity.
// Values that are neither comparable nor reference-like, such as structs holding a slice,
// fall back to reflect.DeepEqual.
func Default[T any]() Comparer[T] { return defaultComparer[T]{} }

type defaultComparer[T any] struct{}

func (defaultComparer[T]) Equal(a, b T) bool { return equalAny(any(a), any(b)) }

func (defaultComparer[T]) Hash(v T) uint64 { return hashAny(any(v)) }

// Comparable is the fast path of Default for comparable types.
func Comparable[T comparable]() Comparer[T] { return comparableComparer[T]{} }

type comparableComparer[T comparable] struct{}

func (comparableComparer[T]) Equal(a, b T) bool { return a == b }

func (comparableComparer[T]) Hash(v T) uint64 { return maphash.Comparable(seed, v) }

// String compares strings byte-wise and hashes them with xxhash.
func String() Comparer[string] { return stringComparer{} }

type stringComparer struct{}

func (stringComparer) Equal(a, b string) bool { return a == b }

func (stringComparer) Hash(v string) uint64 { return xxhash.Sum64String(v) }

// Bytes compares byte slices by content, unlike Default which compares them by identity.
func Bytes() Comparer[[]byte] { return bytesComparer{} }

type bytesComparer struct{}

func (bytesComparer) Equal(a, b []byte) bool { return bytes.Equal(a, b) }

func (bytesComparer) Hash(v []byte) uint64 { return xxhash.Sum64(v) }

// Func builds a Comparer from an equality and a hash function.
// The caller is responsible for keeping the two consistent.
func Func[T any](equal func(a, b T) bool, hash func(v T) uint64) Comparer[T] {
	if equal == nil || hash == nil {
		panic(errorkit.ErrInvalidArgument.F("compare.Func requires both an equality and a hash function"))
	}
	return funcComparer[T]{equal: equal, hash: hash}
}

type funcComparer[T any] struct {
	equal func(a, b T) bool
	hash  func(v T) uint64
}

func (c funcComparer[T]) Equal(a, b T) bool { return c.equal(a, b) }

func (c funcComparer[T]) Hash(v T) uint64 { return c.hash(v) }

// By compares values through a projected comparable key.
//
//	byID := compare.By(func(u User) int { return u.ID })
func By[T any, K comparable](key func(T) K) Comparer[T] {
	if key == nil {
		panic(errorkit.ErrInvalidArgument.F("compare.By requires a key selector"))
	}
	return byComparer[T, K]{key: key}
}

type byComparer[T any, K comparable] struct {
	key func(T) K
}

func (c byComparer[T, K]) Equal(a, b T) bool { return c.key(a) == c.key(b) }

func (c byComparer[T, K]) Hash(v T) uint64 { return hashAny(any(c.key(v))) }

func equalAny(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		if eq, ok := safeEqual(a, b); ok {
			return eq
		}
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	default:
		return reflect.DeepEqual(a, b)
	}
}

// safeEqual guards against comparable static types holding a non-comparable dynamic value,
// like a struct with an interface field that contains a slice.
func safeEqual(a, b any) (eq bool, ok bool) {
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return a == b, true
}

func hashAny(v any) uint64 {
	switch v := v.(type) {
	case nil:
		return 0
	case string:
		return xxhash.Sum64String(v)
	case int:
		return mix(uint64(v))
	case int64:
		return mix(uint64(v))
	case uint64:
		return mix(v)
	case bool:
		if v {
			return mix(1)
		}
		return mix(0)
	case float64:
		if v == 0 { // +0 == -0
			return mix(0)
		}
		return mix(math.Float64bits(v))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return mix(uint64(rv.Pointer())) ^ uint64(rv.Kind())
	}
	if rv.Type().Comparable() {
		if h, ok := safeHash(v); ok {
			return h
		}
	}
	// DeepEqual fallback: the type is the only thing all deeply equal values are guaranteed to share.
	return xxhash.Sum64String(rv.Type().String())
}

func safeHash(v any) (h uint64, ok bool) {
	defer func() {
		if recover() != nil {
			h, ok = 0, false
		}
	}()
	return maphash.Comparable(seed, v), true
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
