package iterkitcontract

import (
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/port/contract"
)

// Iterable checks the cursor protocol on a non-empty, restartable Iterable.
func Iterable[T any](mk contract.Make[iterkit.Iterable[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterkit.Iterable[T] {
		return mk(t)
	})

	s.Then("values can be collected from the iterable", func(t *testcase.T) {
		var vs []T
		for v := range iterkit.ToSeq(subject.Get(t)) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("an exhausted cursor keeps reporting exhaustion", func(t *testcase.T) {
		c := subject.Get(t).Cursor()
		defer iterkit.Stop(c)
		for {
			if _, ok := c.Next(); !ok {
				break
			}
		}
		for range t.Random.IntBetween(1, 5) {
			_, ok := c.Next()
			assert.False(t, ok)
		}
	})

	s.Then("every cursor enumerates the same elements", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.Equal(t, iterkit.Collect(itr), iterkit.Collect(itr))
	})

	s.Then("buffering yields the enumeration order", func(t *testcase.T) {
		itr := subject.Get(t)
		assert.Equal(t, iterkit.Collect(itr), iterkit.Buffer(itr))
	})

	s.Then("an abandoned cursor can be stopped repeatedly", func(t *testcase.T) {
		c := subject.Get(t).Cursor()
		_, ok := c.Next()
		assert.True(t, ok)
		assert.NotPanic(t, func() {
			iterkit.Stop(c)
			iterkit.Stop(c)
		})
	})

	return s.AsSuite("iterable")
}
