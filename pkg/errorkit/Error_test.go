package errorkit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/enumkit/enumkit/pkg/errorkit"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleError_Error() {
	const ErrSomething errorkit.Error = "something is an error"

	_ = ErrSomething
}

func ExampleError_F() {
	err := errorkit.ErrInvalidArgument.F("skip count: %d", -1)
	_ = errors.Is(err, errorkit.ErrInvalidArgument) // true
}

func TestError_Error_smoke(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	assert.Equal(t, ErrExample.Error(), string(ErrExample))
}

type ErrAsStub struct {
	V string
}

func (err ErrAsStub) Error() string {
	return fmt.Sprintf("ErrAsStub: %s", err.V)
}

func TestError_Wrap(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	t.Run("happy", func(t *testing.T) {
		exp := rnd.Error()
		got := ErrExample.Wrap(exp)
		assert.ErrorIs(t, got, exp)
		assert.ErrorIs(t, got, ErrExample)
		assert.Equal(t, fmt.Sprintf("%s: %s", ErrExample, exp.Error()), got.Error())
		assert.Nil(t, errors.Unwrap(got))
	})
	t.Run("As", func(t *testing.T) {
		exp := ErrAsStub{V: rnd.String()}
		got := ErrExample.Wrap(exp)

		var expected ErrAsStub
		assert.True(t, errors.As(got, &expected))
		assert.Equal(t, exp, expected)
	})
	t.Run("nil", func(t *testing.T) {
		got := ErrExample.Wrap(nil)
		assert.ErrorIs(t, got, ErrExample)
		assert.Equal[error](t, got, ErrExample)
	})
}

func TestError_F(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"

	got := ErrExample.F("foo %s", "bar")
	assert.ErrorIs(t, got, ErrExample)
	assert.Equal(t, "ErrExample: foo bar", got.Error())
}

func TestError_Wrap_chain(t *testing.T) {
	const ErrOuter errorkit.Error = "ErrOuter"
	cause := errorkit.ErrEmptyCollection.F("queue")
	got := ErrOuter.Wrap(cause)

	assert.ErrorIs(t, got, ErrOuter)
	assert.ErrorIs(t, got, errorkit.ErrEmptyCollection)
	assert.False(t, errors.Is(got, errorkit.ErrNullSource))
	assert.Equal(t, "ErrOuter: collection is empty: queue", got.Error())

	var kind errorkit.Error
	assert.True(t, errors.As(got, &kind))
	assert.Equal(t, ErrOuter, kind)
}

func TestTaxonomy(t *testing.T) {
	taxonomy := []errorkit.Error{
		errorkit.ErrInvalidArgument,
		errorkit.ErrNullSource,
		errorkit.ErrInvalidNodeOwnership,
		errorkit.ErrEmptyCollection,
	}
	for i, a := range taxonomy {
		assert.NotEmpty(t, a.Error())
		for j, b := range taxonomy {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "taxonomy members must be distinguishable")
			assert.False(t, errors.Is(a.F("context"), b))
		}
	}
}
