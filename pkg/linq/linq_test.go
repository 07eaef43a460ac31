package linq_test

import (
	"errors"
	"fmt"
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/enumkit/enumkit/pkg/datastruct"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/pkg/iterkit/iterkitcontract"
	"github.com/enumkit/enumkit/pkg/linq"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleFrom() {
	n := linq.From([]any{1, 2, 3, 4, 5}).
		Skip(1).
		Count(func(v any) bool { return v.(int)%2 == 0 })
	fmt.Println(n)
	// Output: 2
}

func ExampleEnumerable_Union() {
	vs := linq.Of(1, 2, 3).Union(linq.Of(3, 4, 5)).ToSlice()
	fmt.Println(vs)
	// Output: [1 2 3 4 5]
}

// pulls counts how many elements were read from a streamed source.
type pulls struct {
	n int
}

func (p *pulls) source(vs ...int) linq.Enumerable[int] {
	return linq.FromFunc(func() iterkit.Cursor[int] {
		var i int
		return iterkit.CursorFunc[int](func() (int, bool) {
			if len(vs) <= i {
				return 0, false
			}
			p.n++
			i++
			return vs[i-1], true
		})
	})
}

func recoverError(tb testing.TB, fn func()) error {
	tb.Helper()
	out := assert.Panic(tb, fn)
	err, ok := out.(error)
	assert.True(tb, ok, "expected the panic value to be an error")
	return err
}

func TestScenarios(t *testing.T) {
	t.Run("any", func(t *testing.T) {
		src := linq.Of(1, 2, 3, 4, 5)
		assert.True(t, src.Any(func(x int) bool { return x < 10 }))
		assert.False(t, src.Any(func(x int) bool { return x > 10 }))
	})

	t.Run("count", func(t *testing.T) {
		assert.Equal(t, 0, linq.Of[int]().Count())
		assert.Equal(t, 3, linq.Of(1, 2, 3).Count())
	})

	t.Run("lastOrDefault", func(t *testing.T) {
		_, ok := linq.Of[int]().Last()
		assert.False(t, ok)
		assert.Equal(t, 0, linq.Of[int]().LastOrDefault(0, func(x int) bool { return x > 100 }))
		assert.Equal(t, 5, linq.Of(1, 2, 3, 4, 5).LastOrDefault(0))
	})

	t.Run("skip", func(t *testing.T) {
		assert.Equal(t, []int{3, 4, 5}, linq.Of(1, 2, 3, 4, 5).Skip(2).ToSlice())
		assert.Equal(t, []int{}, linq.Of(1, 2, 3).Skip(10).ToSlice())
	})

	t.Run("union", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, linq.Of(1, 2, 3).Union(linq.Of(3, 4, 5)).ToSlice())
	})

	t.Run("linked list", func(t *testing.T) {
		ll := linq.Of(1, 2, 3).ToLinkedList()
		_, err := ll.RemoveFirst()
		assert.NoError(t, err)
		assert.Equal(t, []int{2, 3}, linq.FromIterable[int](ll).ToSlice())
		assert.Equal(t, 2, linq.FromIterable[int](ll).Count())
	})
}

func TestFrom(t *testing.T) {
	t.Run("kinds and tags", func(t *testing.T) {
		for _, tc := range []struct {
			src  any
			kind iterkit.SourceKind
			tag  string
		}{
			{src: nil, kind: iterkit.KindEmpty, tag: "[Empty Iterable]"},
			{src: []int{1}, kind: iterkit.KindArrayLike, tag: "[Array Iterable]"},
			{src: "abc", kind: iterkit.KindArrayLike, tag: "[Array Iterable]"},
			{src: map[string]int{"a": 1}, kind: iterkit.KindKeyedObject, tag: "[Object Iterable]"},
			{src: 42, kind: iterkit.KindScalar, tag: "[Array Iterable]"},
			{src: iterkit.IterableFunc[int](func() iterkit.Cursor[int] { return iterkit.Empty[int]().Cursor() }), kind: iterkit.KindProtocol, tag: "[Iterable]"},
		} {
			e := linq.From(tc.src)
			assert.Equal(t, tc.kind, e.Kind())
			assert.Equal(t, tc.tag, e.String())
			assert.False(t, e.IsNull())
		}
	})

	t.Run("elements are normalized", func(t *testing.T) {
		assert.Equal(t, []any{'a', 'b'}, linq.From("ab").ToSlice())
		assert.Equal(t, []any{42}, linq.From(42).ToSlice())
		assert.Equal(t, []any{
			iterkit.KV[any, any]{K: "a", V: 1},
			iterkit.KV[any, any]{K: "b", V: 2},
		}, linq.From(map[string]int{"b": 2, "a": 1}).ToSlice())
	})

	t.Run("generator functions are called per enumeration", func(t *testing.T) {
		var calls int
		gen := func() iterkit.Cursor[int] {
			calls++
			return iterkit.Slice([]int{1, 2}).Cursor()
		}
		e := linq.From(gen)
		assert.Equal(t, iterkit.KindGeneratorFunc, e.Kind())
		assert.Equal(t, 0, calls)
		assert.Equal(t, []any{1, 2}, e.ToSlice())
		assert.Equal(t, []any{1, 2}, e.ToSlice())
		assert.Equal(t, 2, calls)
	})
}

func TestEntryPoints(t *testing.T) {
	assert.Equal(t, []rune("hey"), linq.FromString("hey").ToSlice())
	assert.Equal(t, []int{5, 6, 7}, linq.Range(5, 3).ToSlice())
	assert.Equal(t, 0, linq.Range(5, 0).Count())
	assert.Equal(t, []string{"x", "x"}, linq.Repeat("x", 2).ToSlice())
	assert.Equal(t, []int{7}, linq.Scalar(7).ToSlice())
	assert.Equal(t, 0, linq.Empty[int]().Count())
	assert.False(t, linq.Empty[int]().IsNull())

	var seq iter.Seq[int] = func(yield func(int) bool) {
		for i := range 3 {
			if !yield(i) {
				return
			}
		}
	}
	assert.Equal(t, []int{0, 1, 2}, linq.FromSeq(seq).ToSlice())
	assert.Equal(t, []int{0, 1, 2}, linq.FromSeq(seq).ToSlice())

	kvs := linq.FromMap(map[int]string{2: "b", 1: "a"}).ToSlice()
	assert.Equal(t, []iterkit.KV[int, string]{{K: 1, V: "a"}, {K: 2, V: "b"}}, kvs)

	once := linq.FromCursor(iterkit.Slice([]int{1, 2}).Cursor())
	assert.Equal(t, []int{1, 2}, once.ToSlice())
	assert.Equal(t, []int{}, once.ToSlice())

	set := datastruct.NewHashSet(datastruct.WithValues(1, 2, 3))
	assert.Equal(t, 3, linq.FromIterable[int](set).Count())
	assert.True(t, linq.FromIterable[int](nil).IsNull())

	err := recoverError(t, func() { linq.Range(0, -1) })
	assert.True(t, errors.Is(err, errorkit.ErrInvalidArgument))
	err = recoverError(t, func() { linq.FromFunc[int](nil) })
	assert.True(t, errors.Is(err, errorkit.ErrInvalidArgument))
}

func TestEnumerable_implementsIterable(t *testing.T) {
	iterkitcontract.Iterable[int](func(tb testing.TB) iterkit.Iterable[int] {
		t := testcase.ToT(&tb)
		vs := random.Slice(t.Random.IntBetween(1, 10), t.Random.Int)
		return linq.FromSlice(vs).Where(func(int) bool { return true }).Skip(t.Random.IntBetween(0, 1))
	}).Test(t)
}

func TestNullSource(t *testing.T) {
	var null linq.Enumerable[int]
	assert.True(t, null.IsNull())
	assert.Equal(t, 0, null.Count())
	assert.False(t, null.Any())
	assert.Equal(t, []int{}, null.ToSlice())
	assert.Equal(t, []int{}, null.Skip(1).ToSlice())
	assert.Equal(t, 9, null.LastOrDefault(9))

	err := recoverError(t, func() { null.Union(linq.Of(1)) })
	assert.True(t, errors.Is(err, errorkit.ErrNullSource))
	err = recoverError(t, func() { linq.Of(1).Union(null) })
	assert.True(t, errors.Is(err, errorkit.ErrNullSource))
}

func TestPredicateArguments(t *testing.T) {
	src := linq.Of(1, 2, 3)
	p := func(int) bool { return true }

	for name, call := range map[string]func(){
		"Any nil":           func() { src.Any(nil) },
		"Any two":           func() { src.Any(p, p) },
		"Count nil":         func() { src.Count(nil) },
		"Last nil":          func() { src.Last(nil) },
		"LastOrDefault nil": func() { src.LastOrDefault(0, nil) },
		"LastOrDefault two": func() { src.LastOrDefault(0, p, p) },
		"Where nil":         func() { src.Where(nil) },
		"All nil":           func() { src.All(nil) },
		"TakeWhile nil":     func() { src.TakeWhile(nil) },
	} {
		t.Run(name, func(t *testing.T) {
			err := recoverError(t, call)
			assert.True(t, errors.Is(err, errorkit.ErrInvalidArgument))
		})
	}
}

func TestLaziness(t *testing.T) {
	var p pulls
	src := p.source(1, 2, 3, 4, 5)

	q := src.Skip(1).Where(func(x int) bool { return x%2 == 0 }).Union(linq.Of(9)).Take(2)
	assert.Equal(t, 0, p.n, "deferred operators must not read the source")

	assert.Equal(t, []int{2, 4}, q.ToSlice())
	assert.Equal(t, 4, p.n)

	p.n = 0
	assert.True(t, src.Any())
	assert.Equal(t, 1, p.n, "Any short-circuits")

	p.n = 0
	assert.True(t, src.Any(func(x int) bool { return x == 2 }))
	assert.Equal(t, 2, p.n)

	p.n = 0
	assert.Equal(t, 4, src.LastOrDefault(0, func(x int) bool { return x < 5 }))
	assert.Equal(t, 5, p.n, "last needs the whole sequence")
}

func TestSkip(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		vs = testcase.Let(s, func(t *testcase.T) []int {
			return random.Slice(t.Random.IntBetween(0, 12), t.Random.Int)
		})
		n        = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(-3, 15) })
		streamed = testcase.LetValue(s, false)
	)
	subject := func(t *testcase.T) linq.Enumerable[int] {
		src := linq.FromSlice(vs.Get(t))
		if streamed.Get(t) {
			src = linq.FromSeq(src.Values())
		}
		return src.Skip(n.Get(t))
	}

	then := func(s *testcase.Spec) {
		s.Then("the first min(n, len) elements are removed", func(t *testcase.T) {
			k := min(max(n.Get(t), 0), len(vs.Get(t)))
			assert.Equal(t, append([]int{}, vs.Get(t)[k:]...), subject(t).ToSlice())
		})
	}

	s.When("the source is array-like", func(s *testcase.Spec) {
		then(s)

		s.Then("the result stays array-like", func(t *testcase.T) {
			n.Set(t, 1)
			assert.Equal(t, iterkit.KindArrayLike, subject(t).Kind())
		})

		s.Then("the result doesn't alias the source", func(t *testcase.T) {
			vs.Set(t, []int{1, 2, 3})
			n.Set(t, 1)
			out := subject(t).ToSlice()
			out[0] = 42
			assert.Equal(t, []int{1, 2, 3}, vs.Get(t))
		})
	})

	s.When("the source is streamed", func(s *testcase.Spec) {
		streamed.LetValue(s, true)
		then(s)
	})
}

func TestEnumerable_Union(t *testing.T) {
	t.Run("duplicates within a side are removed as well", func(t *testing.T) {
		got := linq.Of(1, 1, 2).Union(linq.Of(2, 3, 3)).ToSlice()
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("each enumeration starts with a fresh table", func(t *testing.T) {
		u := linq.Of("a").Union(linq.Of("b"))
		assert.Equal(t, []string{"a", "b"}, u.ToSlice())
		assert.Equal(t, []string{"a", "b"}, u.ToSlice())
	})

	t.Run("comparer", func(t *testing.T) {
		got := linq.Of("Go", "Rust").Union(linq.Of("go", "ZIG"), foldCase).ToSlice()
		assert.Equal(t, []string{"Go", "Rust", "ZIG"}, got)
	})
}

func TestDeferredOperators(t *testing.T) {
	src := linq.Of(5, 3, 8, 1, 3, 9)

	assert.Equal(t, []int{5, 3}, src.Take(2).ToSlice())
	assert.Equal(t, []int{}, src.Take(-1).ToSlice())
	assert.Equal(t, []int{8, 1, 3, 9}, src.SkipWhile(func(x int) bool { return x < 8 && x != 1 }).ToSlice())
	assert.Equal(t, []int{5, 3}, src.TakeWhile(func(x int) bool { return x < 8 }).ToSlice())
	assert.Equal(t, []int{5, 3, 8, 1, 9}, src.Distinct().ToSlice())
	assert.Equal(t, []int{3, 1}, src.Intersect(linq.Of(1, 3, 7)).ToSlice())
	assert.Equal(t, []int{5, 8, 9}, src.Except(linq.Of(1, 3, 7)).ToSlice())
	assert.Equal(t, []int{9, 3, 1, 8, 3, 5}, src.Reverse().ToSlice())
	assert.Equal(t, []int{2, 1}, linq.FromSeq(linq.Of(1, 2).Values()).Reverse().ToSlice())
	streamed := linq.Of(1, 2, 2).Union(linq.Of(3)).Reverse()
	assert.Equal(t, []int{3, 2, 1}, streamed.ToSlice())
	assert.Equal(t, []int{3, 2, 1}, streamed.ToSlice(), "a buffered reverse restarts")
	last, ok := streamed.Last()
	assert.True(t, ok)
	assert.Equal(t, 1, last)
	assert.Equal(t, []int{0, 5}, src.Take(1).Prepend(0).ToSlice())
	assert.Equal(t, []int{5, 6, 7}, src.Take(1).Append(6, 7).ToSlice())
	assert.Equal(t, []int{5, 3, 8, 1}, src.Take(2).Concat(src.Skip(2).Take(2)).ToSlice())
	assert.Equal(t, []int{-1}, linq.Empty[int]().DefaultIfEmpty(-1).ToSlice())
	assert.Equal(t, []int{5}, src.Take(1).DefaultIfEmpty(-1).ToSlice())
}

func TestEagerOperators(t *testing.T) {
	src := linq.Of(4, 8, 15, 16, 23, 42)
	even := func(x int) bool { return x%2 == 0 }

	assert.True(t, src.All(func(x int) bool { return 0 < x }))
	assert.False(t, src.All(even))
	assert.True(t, linq.Empty[int]().All(even))
	assert.True(t, src.Contains(15))
	assert.False(t, src.Contains(99))

	first, ok := src.First(func(x int) bool { return 10 < x })
	assert.True(t, ok)
	assert.Equal(t, 15, first)
	assert.Equal(t, -1, src.FirstOrDefault(-1, func(x int) bool { return 100 < x }))

	last, ok := src.Last(func(x int) bool { return x%2 == 1 })
	assert.True(t, ok)
	assert.Equal(t, 23, last)

	v, ok := src.ElementAt(2)
	assert.True(t, ok)
	assert.Equal(t, 15, v)
	_, ok = src.ElementAt(-1)
	assert.False(t, ok)
	assert.Equal(t, 23, linq.FromSeq(src.Values()).ElementAtOrDefault(4, 0))
	assert.Equal(t, 0, src.ElementAtOrDefault(6, 0))

	single, err := src.Single(func(x int) bool { return x == 42 })
	assert.NoError(t, err)
	assert.Equal(t, 42, single)
	_, err = src.Single(even)
	assert.ErrorIs(t, errorkit.ErrInvalidArgument, err)
	_, err = linq.Empty[int]().Single()
	assert.ErrorIs(t, errorkit.ErrEmptyCollection, err)

	assert.True(t, src.SequenceEqual(linq.FromSeq(src.Values())))
	assert.False(t, src.SequenceEqual(src.Take(5)))
	assert.False(t, src.SequenceEqual(src.Reverse()))

	var sum int
	assert.NoError(t, src.ForEach(func(x int) error { sum += x; return nil }))
	assert.Equal(t, 108, sum)
	errStop := errors.New("stop")
	assert.ErrorIs(t, errStop, src.ForEach(func(int) error { return errStop }))
}

func TestCollectors(t *testing.T) {
	src := linq.Of("a", "B", "b", "A")

	l := src.ToList()
	assert.Equal(t, []string{"a", "B", "b", "A"}, l.ToSlice())
	l.Append("c")
	assert.Equal(t, 4, src.Count())

	assert.Equal(t, 4, src.ToHashSet().Len())
	assert.Equal(t, []string{"a", "B"}, src.ToHashSet(foldCase).ToSlice())
	assert.True(t, linq.FromIterable[string](src.ToHashSet(foldCase)).Contains("b"))
}
