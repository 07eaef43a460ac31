package linq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/datastruct"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/pkg/linq"
)

var foldCase = compare.FoldString()

type person struct {
	Name string
	Age  int
}

var people = []person{
	{Name: "Ada", Age: 36},
	{Name: "Linus", Age: 21},
	{Name: "Grace", Age: 36},
	{Name: "Ken", Age: 21},
	{Name: "Barbara", Age: 45},
}

func TestSelect(t *testing.T) {
	t.Parallel()

	names := linq.Select(linq.FromSlice(people), func(p person) string { return p.Name })
	assert.Equal(t, iterkit.KindArrayLike, names.Kind())
	assert.Equal(t, []string{"Ada", "Linus", "Grace", "Ken", "Barbara"}, names.ToSlice())

	last, ok := names.Last()
	require.True(t, ok)
	assert.Equal(t, "Barbara", last)

	assert.Panics(t, func() { linq.Select[int, int](linq.Of(1), nil) })
}

func TestSelectMany(t *testing.T) {
	t.Parallel()

	words := linq.Of("ab", "", "cde")
	chars := linq.SelectMany(words, func(s string) iterkit.Iterable[rune] { return iterkit.String(s) })
	assert.Equal(t, []rune("abcde"), chars.ToSlice())
	assert.Equal(t, 'c', chars.ElementAtOrDefault(2, 0))
}

func TestZip(t *testing.T) {
	t.Parallel()

	zipped := linq.Zip(linq.Of(1, 2, 3), linq.Of("a", "b"), func(n int, s string) string {
		return strings.Repeat(s, n)
	})
	assert.Equal(t, []string{"a", "bb"}, zipped.ToSlice())
}

func TestCastAndOfType(t *testing.T) {
	t.Parallel()

	mixed := linq.From([]any{1, "two", 3, 4.0})
	assert.Equal(t, []int{1, 3}, linq.OfType[int](mixed).ToSlice())
	assert.Equal(t, []int{1, 2}, linq.Cast[int](linq.From([]any{1, 2})).ToSlice())

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, errorkit.ErrInvalidArgument)
	}()
	linq.Cast[int](mixed).ToSlice()
}

func TestGroupBy(t *testing.T) {
	t.Parallel()

	groups := linq.GroupBy(linq.FromSlice(people), func(p person) int { return p.Age })
	gs := groups.ToSlice()
	require.Len(t, gs, 3)
	assert.Equal(t, 36, gs[0].Key())
	assert.Equal(t, []person{people[0], people[2]}, gs[0].ToSlice())
	assert.Equal(t, 21, gs[1].Key())
	assert.Equal(t, 45, gs[2].Key())

	byInitial := linq.GroupBy(linq.Of("apple", "Avocado", "berry"),
		func(s string) string { return s[:1] },
		datastruct.WithComparer(foldCase))
	assert.Equal(t, 2, byInitial.Count())
}

func TestOrderBy(t *testing.T) {
	t.Parallel()

	byAge := linq.OrderBy(linq.FromSlice(people), func(p person) int { return p.Age })
	assert.Equal(t, []string{"Linus", "Ken", "Ada", "Grace", "Barbara"},
		linq.Select(byAge, func(p person) string { return p.Name }).ToSlice())

	desc := linq.OrderByDescending(linq.FromSlice(people), func(p person) string { return p.Name })
	first, ok := desc.First()
	require.True(t, ok)
	assert.Equal(t, "Linus", first.Name)

	byLen := linq.OrderByFunc(linq.Of("ccc", "a", "bb"), func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, []string{"a", "bb", "ccc"}, byLen.ToSlice())
}

func TestAggregates(t *testing.T) {
	t.Parallel()

	src := linq.Of(3, 1, 4, 1, 5)
	assert.Equal(t, 14, linq.Sum(src))
	assert.Equal(t, "31415", linq.Aggregate(src, "", func(acc string, v int) string {
		return acc + string(rune('0'+v))
	}))

	avg, ok := linq.Average(src)
	require.True(t, ok)
	assert.InDelta(t, 2.8, avg, 1e-9)
	_, ok = linq.Average(linq.Empty[float64]())
	assert.False(t, ok)

	lo, ok := linq.Min(src)
	require.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := linq.Max(src)
	require.True(t, ok)
	assert.Equal(t, 5, hi)
	_, ok = linq.Max(linq.Empty[string]())
	assert.False(t, ok)

	assert.Equal(t, 0.0, linq.Sum(linq.Empty[float64]()))
}

func TestToDictionary(t *testing.T) {
	t.Parallel()

	d, err := linq.ToDictionary(linq.FromSlice(people),
		func(p person) string { return p.Name },
		func(p person) int { return p.Age })
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 36, d.Get("Grace"))

	_, err = linq.ToDictionary(linq.FromSlice(people),
		func(p person) int { return p.Age },
		func(p person) string { return p.Name })
	assert.ErrorIs(t, err, errorkit.ErrInvalidArgument)

	folded, err := linq.ToDictionary(linq.Of("Go", "Rust"),
		func(s string) string { return s },
		func(s string) int { return len(s) },
		datastruct.WithKeyComparer[string, int](foldCase))
	require.NoError(t, err)
	assert.Equal(t, 4, folded.Get("RUST"))
}

func TestToLookup(t *testing.T) {
	t.Parallel()

	l := linq.ToLookup(linq.FromSlice(people), func(p person) int { return p.Age })
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.Get(21).Len())
	assert.Equal(t, 0, l.Get(99).Len())
}
