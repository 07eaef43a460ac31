package doubles

import "github.com/enumkit/enumkit/pkg/compare"

// StubComparer wraps a Comparer and lets a test override or observe its methods.
type StubComparer[T any] struct {
	compare.Comparer[T]
	EqualFunc func(a, b T) bool
	HashFunc  func(v T) uint64

	EqualCalls int
	HashCalls  int
}

func (spy *StubComparer[T]) Equal(a, b T) bool {
	spy.EqualCalls++
	if spy.EqualFunc != nil {
		return spy.EqualFunc(a, b)
	}
	return spy.Comparer.Equal(a, b)
}

func (spy *StubComparer[T]) Hash(v T) uint64 {
	spy.HashCalls++
	if spy.HashFunc != nil {
		return spy.HashFunc(v)
	}
	return spy.Comparer.Hash(v)
}
