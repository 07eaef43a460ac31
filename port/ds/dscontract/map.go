package dscontract

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/pkg/iterkit/iterkitcontract"
	"github.com/enumkit/enumkit/port/contract"
	"github.com/enumkit/enumkit/port/ds"
	"github.com/enumkit/enumkit/port/option"
)

type MapOption[K, V any] = option.Option[MapConfig[K, V]]

type MapConfig[K, V any] struct {
	// MakeK must return a key distinct from the previously made ones.
	MakeK func(testing.TB) K
	MakeV func(testing.TB) V
}

func (c MapConfig[K, V]) Configure(o *MapConfig[K, V]) {
	if c.MakeK != nil {
		o.MakeK = c.MakeK
	}
	if c.MakeV != nil {
		o.MakeV = c.MakeV
	}
}

func (c MapConfig[K, V]) makeK(tb testing.TB) K {
	if c.MakeK != nil {
		return c.MakeK(tb)
	}
	return testcase.ToT(&tb).Random.Make(reflect.TypeFor[K]()).(K)
}

func (c MapConfig[K, V]) makeV(tb testing.TB) V {
	if c.MakeV != nil {
		return c.MakeV(tb)
	}
	return testcase.ToT(&tb).Random.Make(reflect.TypeFor[V]()).(V)
}

// Map checks the ds.Map capabilities of a keyed collection.
func Map[K, V any](mk contract.Make[ds.Map[K, V]], opts ...MapOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	populate := func(t *testcase.T, m ds.Map[K, V]) []iterkit.KV[K, V] {
		kvs := random.Slice(t.Random.IntBetween(3, 7), func() iterkit.KV[K, V] {
			return iterkit.KV[K, V]{K: c.makeK(t), V: c.makeV(t)}
		})
		for _, kv := range kvs {
			m.Set(kv.K, kv.V)
		}
		return kvs
	}

	s.Test("smoke", func(t *testcase.T) {
		m := mk(t)
		expected := random.Slice(t.Random.IntBetween(3, 7), func() iterkit.KV[K, V] {
			return iterkit.KV[K, V]{K: c.makeK(t), V: c.makeV(t)}
		})

		var expLen int
		for _, kv := range expected {
			assert.Equal(t, expLen, m.Len())
			assert.Empty(t, m.Get(kv.K), "zero value was expected for getting a non stored value")
			_, ok := m.Lookup(kv.K)
			assert.False(t, ok, assert.MessageF("%#v key was not expected to be found", kv.K))
			assert.False(t, m.ContainsKey(kv.K))

			m.Set(kv.K, kv.V)
			expLen++
			assert.Equal(t, expLen, m.Len())
			got, ok := m.Lookup(kv.K)
			assert.True(t, ok)
			assert.Equal(t, kv.V, got)
			assert.Equal(t, kv.V, m.Get(kv.K))
			assert.True(t, m.ContainsKey(kv.K))
		}

		kNoise, vNoise := c.makeK(t), c.makeV(t)
		m.Set(kNoise, vNoise)
		assert.Equal(t, expLen+1, m.Len())
		assert.True(t, m.Delete(kNoise))
		assert.False(t, m.Delete(kNoise))
		assert.Equal(t, expLen, m.Len())
		_, ok := m.Lookup(kNoise)
		assert.False(t, ok)

		assert.ContainsExactly(t, expected, iterkit.Collect[iterkit.KV[K, V]](m))
		assert.ContainsExactly(t, expected, m.ToSlice())
	})

	s.Test("keys are unique in the map", func(t *testcase.T) {
		m := mk(t)
		k := c.makeK(t)
		t.Random.Repeat(3, 7, func() {
			m.Set(k, c.makeV(t))
		})
		assert.Equal(t, 1, m.Len())
		exp := c.makeV(t)
		m.Set(k, exp)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, exp, m.Get(k))
		assert.True(t, m.Delete(k))
		assert.Equal(t, 0, m.Len())
	})

	s.Test("the enumeration forms agree", func(t *testcase.T) {
		m := mk(t)
		populate(t, m)
		kvs := iterkit.Collect[iterkit.KV[K, V]](m)

		var keys []K
		for k := range m.Keys() {
			keys = append(keys, k)
		}
		var values []V
		for v := range m.Values() {
			values = append(values, v)
		}
		var pairs []iterkit.KV[K, V]
		for k, v := range m.All() {
			pairs = append(pairs, iterkit.KV[K, V]{K: k, V: v})
		}

		assert.Equal(t, kvs, pairs)
		assert.Equal(t, len(kvs), len(keys))
		assert.Equal(t, len(kvs), len(values))
		for i, kv := range kvs {
			assert.Equal(t, kv.K, keys[i])
			assert.Equal(t, kv.V, values[i])
		}
	})

	s.Test("copy to a slice", func(t *testcase.T) {
		m := mk(t)
		populate(t, m)
		dst := make([]iterkit.KV[K, V], m.Len()+1)
		assert.NoError(t, m.CopyTo(dst, 1))
		assert.Equal(t, m.ToSlice(), dst[1:])
		assert.True(t, errors.Is(m.CopyTo(dst, 2), errorkit.ErrInvalidArgument))
	})

	s.Test("clear", func(t *testcase.T) {
		m := mk(t)
		kvs := populate(t, m)
		m.Clear()
		assert.Equal(t, 0, m.Len())
		for _, kv := range kvs {
			assert.False(t, m.ContainsKey(kv.K))
		}
	})

	s.Context("implements Iterable", iterkitcontract.Iterable[iterkit.KV[K, V]](func(tb testing.TB) iterkit.Iterable[iterkit.KV[K, V]] {
		m := mk(tb)
		populate(testcase.ToT(&tb), m)
		return m
	}).Spec)

	kName := reflect.TypeFor[K]().String()
	vName := reflect.TypeFor[V]().String()
	return s.AsSuite(fmt.Sprintf("Map[%s, %s]", kName, vName))
}
