package linq

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/datastruct"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
)

// Number is the element constraint of Sum and Average.
type Number interface {
	constraints.Integer | constraints.Float
}

// Select lazily projects every element.
// An array-like source stays array-like, and the projection runs on access.
func Select[T, R any](e Enumerable[T], fn func(T) R) Enumerable[R] {
	if fn == nil {
		panic(errorkit.ErrInvalidArgument.F("nil selector"))
	}
	return derive(iterkit.Map(e.Iterable(), fn))
}

// SelectMany projects every element to a sequence and flattens the results.
func SelectMany[T, R any](e Enumerable[T], fn func(T) iterkit.Iterable[R]) Enumerable[R] {
	if fn == nil {
		panic(errorkit.ErrInvalidArgument.F("nil selector"))
	}
	src := e.Iterable()
	return deferred(func() iterkit.Cursor[R] {
		var (
			outer = src.Cursor()
			inner iterkit.Cursor[R]
		)
		return iterkit.FromPull(func() (R, bool) {
			for {
				if inner != nil {
					if v, ok := inner.Next(); ok {
						return v, true
					}
					iterkit.Stop(inner)
					inner = nil
				}
				v, ok := outer.Next()
				if !ok {
					var zero R
					return zero, false
				}
				if it := fn(v); it != nil {
					inner = it.Cursor()
				}
			}
		}, func() {
			if inner != nil {
				iterkit.Stop(inner)
			}
			iterkit.Stop(outer)
		})
	})
}

// Zip combines the elements of two sequences pairwise.
// It ends with the shorter sequence.
func Zip[A, B, R any](a Enumerable[A], b Enumerable[B], fn func(A, B) R) Enumerable[R] {
	if fn == nil {
		panic(errorkit.ErrInvalidArgument.F("nil result selector"))
	}
	as, bs := a.Iterable(), b.Iterable()
	return deferred(func() iterkit.Cursor[R] {
		ac, bc := as.Cursor(), bs.Cursor()
		return iterkit.FromPull(func() (R, bool) {
			av, ok := ac.Next()
			if !ok {
				var zero R
				return zero, false
			}
			bv, ok := bc.Next()
			if !ok {
				var zero R
				return zero, false
			}
			return fn(av, bv), true
		}, func() {
			iterkit.Stop(ac)
			iterkit.Stop(bc)
		})
	})
}

// Cast converts dynamic elements to T.
// Enumerating an element which is not a T panics with errorkit.ErrInvalidArgument.
func Cast[T any](e Enumerable[any]) Enumerable[T] {
	return derive(iterkit.Map(e.Iterable(), func(v any) T {
		t, ok := v.(T)
		if !ok {
			var zero T
			panic(errorkit.ErrInvalidArgument.F("cannot cast %T to %T", v, zero))
		}
		return t
	}))
}

// OfType keeps the dynamic elements which are a T.
func OfType[T any](e Enumerable[any]) Enumerable[T] {
	return Cast[T](e.Where(func(v any) bool {
		_, ok := v.(T)
		return ok
	}))
}

// GroupBy lazily groups the elements by key.
// Groups come in the order their keys first appear, elements keep their order within a group.
// Options configure the key comparison, see datastruct.WithComparer.
func GroupBy[T, K any](e Enumerable[T], key func(T) K, opts ...datastruct.Option[K]) Enumerable[*datastruct.Grouping[K, T]] {
	if key == nil {
		panic(errorkit.ErrInvalidArgument.F("nil key selector"))
	}
	src := e.Iterable()
	return deferred(func() iterkit.Cursor[*datastruct.Grouping[K, T]] {
		return datastruct.NewLookup(src, key, opts...).Cursor()
	})
}

// OrderBy lazily sorts the elements by ascending key.
// The sort is stable, and it happens when the enumeration starts.
func OrderBy[T any, K cmp.Ordered](e Enumerable[T], key func(T) K) Enumerable[T] {
	if key == nil {
		panic(errorkit.ErrInvalidArgument.F("nil key selector"))
	}
	return OrderByFunc(e, func(a, b T) int { return compare.Ordered(key(a), key(b)) })
}

// OrderByDescending is OrderBy with the opposite order.
func OrderByDescending[T any, K cmp.Ordered](e Enumerable[T], key func(T) K) Enumerable[T] {
	if key == nil {
		panic(errorkit.ErrInvalidArgument.F("nil key selector"))
	}
	return OrderByFunc(e, compare.Reverse[T](func(a, b T) int { return compare.Ordered(key(a), key(b)) }))
}

// OrderByFunc lazily sorts the elements with the compare function.
func OrderByFunc[T any](e Enumerable[T], order compare.OrderFunc[T]) Enumerable[T] {
	if order == nil {
		panic(errorkit.ErrInvalidArgument.F("nil compare function"))
	}
	src := e.Iterable()
	return deferred(func() iterkit.Cursor[T] {
		vs := iterkit.Buffer(src)
		slices.SortStableFunc(vs, order)
		return iterkit.Slice(vs).Cursor()
	})
}

// Aggregate folds the sequence into a single value, starting from seed.
func Aggregate[T, R any](e Enumerable[T], seed R, fn func(R, T) R) R {
	if fn == nil {
		panic(errorkit.ErrInvalidArgument.F("nil accumulator"))
	}
	acc := seed
	for v := range e.Values() {
		acc = fn(acc, v)
	}
	return acc
}

// Sum adds up the elements. The sum of an empty sequence is zero.
func Sum[T Number](e Enumerable[T]) T {
	var sum T
	for v := range e.Values() {
		sum += v
	}
	return sum
}

// Average is the arithmetic mean of the elements.
// The second return value is false for an empty sequence.
func Average[T Number](e Enumerable[T]) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for v := range e.Values() {
		sum += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Min returns the smallest element.
// The second return value is false for an empty sequence.
func Min[T cmp.Ordered](e Enumerable[T]) (T, bool) {
	return extreme(e, func(a, b T) bool { return compare.IsLess(compare.Ordered(a, b)) })
}

// Max returns the largest element.
// The second return value is false for an empty sequence.
func Max[T cmp.Ordered](e Enumerable[T]) (T, bool) {
	return extreme(e, func(a, b T) bool { return compare.IsMore(compare.Ordered(a, b)) })
}

func extreme[T any](e Enumerable[T], better func(a, b T) bool) (T, bool) {
	var (
		best  T
		found bool
	)
	for v := range e.Values() {
		if !found || better(v, best) {
			best, found = v, true
		}
	}
	return best, found
}

// ToDictionary collects the elements into a Dictionary with the selected keys and values.
// It fails with errorkit.ErrInvalidArgument on the first duplicate key.
func ToDictionary[T, K, V any](e Enumerable[T], key func(T) K, val func(T) V, opts ...datastruct.Option[iterkit.KV[K, V]]) (*datastruct.Dictionary[K, V], error) {
	if key == nil || val == nil {
		panic(errorkit.ErrInvalidArgument.F("nil selector"))
	}
	d := datastruct.NewDictionary[K, V](opts...)
	for v := range e.Values() {
		if err := d.Add(key(v), val(v)); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ToLookup eagerly groups the elements by key.
func ToLookup[T, K any](e Enumerable[T], key func(T) K, opts ...datastruct.Option[K]) *datastruct.Lookup[K, T] {
	return datastruct.NewLookup(e.Iterable(), key, opts...)
}
