// Package dscontract holds the behavioural contracts of the port/ds capability interfaces.
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

type Subject[T any] interface {
	ds.Collection[T]
	ds.Appendable[T]
}

type Option[T any] = option.Option[Config[T]]

type Config[T any] struct {
	// MakeElem creates an element for the subject.
	// Contracts expect every call to return a value distinct from the previous ones.
	MakeElem func(testing.TB) T
	// Ordered tells that the subject enumerates in insertion order.
	Ordered bool
}

func (c Config[T]) Configure(o *Config[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
	o.Ordered = o.Ordered || c.Ordered
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflect.TypeFor[T]()).(T)
}

// Collection checks the ds.Collection capabilities of an appendable collection.
func Collection[T any, S Subject[T]](mk contract.Make[S], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	var (
		subject = testcase.Let(s, func(t *testcase.T) S {
			return mk(t)
		})
		values = testcase.Let(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeElem(t) })
		})
	)
	populated := func(t *testcase.T) S {
		subj := subject.Get(t)
		subj.Append(values.Get(t)...)
		return subj
	}

	s.Test("append affects length", func(t *testcase.T) {
		subj := subject.Get(t)
		assert.Equal(t, 0, subj.Len())

		var exp int
		for _, v := range values.Get(t) {
			subj.Append(v)
			exp++
			assert.Equal(t, exp, subj.Len())
		}
	})

	s.Test("appended elements are contained", func(t *testcase.T) {
		subj := populated(t)
		for _, v := range values.Get(t) {
			assert.True(t, subj.Contains(v))
		}
		assert.False(t, subj.Contains(c.makeElem(t)))
	})

	s.Test("the enumeration forms agree", func(t *testcase.T) {
		subj := populated(t)
		vs := iterkit.Collect[T](subj)
		assert.ContainsExactly(t, values.Get(t), vs)
		assert.Equal(t, vs, subj.ToSlice())

		var ranged []T
		for v := range subj.Values() {
			ranged = append(ranged, v)
		}
		assert.Equal(t, vs, ranged)
		assert.Equal(t, len(vs), iterkit.Count[T](subj))
	})

	if c.Ordered {
		s.Test("enumeration follows the insertion order", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), populated(t).ToSlice())
		})
	}

	s.Test("snapshot does not alias the collection", func(t *testcase.T) {
		subj := populated(t)
		vs := subj.ToSlice()
		vs[0] = c.makeElem(t)
		assert.NotEqual(t, vs, subj.ToSlice())
	})

	s.Describe("#CopyTo", func(s *testcase.Spec) {
		s.Test("copies at the given index", func(t *testcase.T) {
			subj := populated(t)
			offset := t.Random.IntBetween(0, 3)
			dst := make([]T, offset+subj.Len()+t.Random.IntBetween(0, 3))
			assert.NoError(t, subj.CopyTo(dst, offset))
			assert.Equal(t, subj.ToSlice(), dst[offset:offset+subj.Len()])
		})

		s.Test("a too small destination is rejected", func(t *testcase.T) {
			subj := populated(t)
			dst := make([]T, subj.Len())
			err := subj.CopyTo(dst, 1)
			assert.True(t, errors.Is(err, errorkit.ErrInvalidArgument))
		})

		s.Test("a negative index is rejected", func(t *testcase.T) {
			subj := populated(t)
			dst := make([]T, subj.Len()+1)
			err := subj.CopyTo(dst, -1)
			assert.True(t, errors.Is(err, errorkit.ErrInvalidArgument))
		})
	})

	s.Test("clear empties the collection", func(t *testcase.T) {
		subj := populated(t)
		subj.Clear()
		assert.Equal(t, 0, subj.Len())
		assert.Empty(t, iterkit.Collect[T](subj))
		for _, v := range values.Get(t) {
			assert.False(t, subj.Contains(v))
		}
	})

	s.Context("implements Iterable", iterkitcontract.Iterable[T](func(tb testing.TB) iterkit.Iterable[T] {
		t := testcase.ToT(&tb)
		subj := mk(tb)
		subj.Append(random.Slice(t.Random.IntBetween(1, 7), func() T { return c.makeElem(t) })...)
		return subj
	}).Spec)

	return s.AsSuite(fmt.Sprintf("Collection[%s]", reflect.TypeFor[T]().String()))
}
