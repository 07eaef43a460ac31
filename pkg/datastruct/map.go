package datastruct

import (
	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/iterkit"
)

// Map is a Dictionary of comparable keys, with the method names of a JavaScript Map.
type Map[K comparable, V any] struct {
	Dictionary[K, V]
}

func NewMap[K comparable, V any](kvs ...iterkit.KV[K, V]) *Map[K, V] {
	return &Map[K, V]{Dictionary: *NewDictionary(
		WithKeyComparer[K, V](compare.Comparable[K]()),
		WithValues(kvs...),
	)}
}

func (m *Map[K, V]) Has(key K) bool {
	return m.ContainsKey(key)
}
