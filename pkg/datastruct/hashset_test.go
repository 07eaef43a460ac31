package datastruct_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/datastruct"
	"github.com/enumkit/enumkit/pkg/iterkit"
)

func TestHashSet(t *testing.T) {
	s := testcase.NewSpec(t)

	set := let.Var(s, func(t *testcase.T) *datastruct.HashSet[int] {
		return datastruct.NewHashSet(datastruct.WithValues(1, 2, 3, 4))
	})
	other := let.Var(s, func(t *testcase.T) iterkit.Iterable[int] {
		return iterkit.Slice([]int{3, 4, 4, 5, 6})
	})

	s.Test("Add reports whether the value was new", func(t *testcase.T) {
		assert.False(t, set.Get(t).Add(1))
		assert.True(t, set.Get(t).Add(5))
		assert.Equal(t, 5, set.Get(t).Len())
	})

	s.Test("elements keep their insertion order", func(t *testcase.T) {
		set.Get(t).Remove(2)
		set.Get(t).Add(2)
		assert.Equal(t, []int{1, 3, 4, 2}, set.Get(t).ToSlice())
	})

	s.Describe("#UnionWith", func(s *testcase.Spec) {
		s.Then("new elements are appended", func(t *testcase.T) {
			set.Get(t).UnionWith(other.Get(t))
			assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, set.Get(t).ToSlice())
		})
	})

	s.Describe("#IntersectWith", func(s *testcase.Spec) {
		s.Then("only the shared elements stay", func(t *testcase.T) {
			set.Get(t).IntersectWith(other.Get(t))
			assert.Equal(t, []int{3, 4}, set.Get(t).ToSlice())
		})

		s.Then("intersecting with itself is a no-op", func(t *testcase.T) {
			set.Get(t).IntersectWith(set.Get(t))
			assert.Equal(t, []int{1, 2, 3, 4}, set.Get(t).ToSlice())
		})
	})

	s.Describe("#ExceptWith", func(s *testcase.Spec) {
		s.Then("the elements of other are removed", func(t *testcase.T) {
			set.Get(t).ExceptWith(other.Get(t))
			assert.Equal(t, []int{1, 2}, set.Get(t).ToSlice())
		})
	})

	s.Describe("#SymmetricExceptWith", func(s *testcase.Spec) {
		s.Then("only elements present in exactly one side stay", func(t *testcase.T) {
			set.Get(t).SymmetricExceptWith(other.Get(t))
			assert.ContainsExactly(t, []int{1, 2, 5, 6}, set.Get(t).ToSlice())
		})

		s.Then("with itself it empties the set", func(t *testcase.T) {
			set.Get(t).SymmetricExceptWith(set.Get(t))
			assert.Equal(t, 0, set.Get(t).Len())
		})
	})

	s.Describe("relations", func(s *testcase.Spec) {
		s.Then("subset and superset", func(t *testcase.T) {
			assert.True(t, set.Get(t).IsSubsetOf(iterkit.IntRange(0, 10)))
			assert.False(t, set.Get(t).IsSubsetOf(other.Get(t)))
			assert.True(t, set.Get(t).IsSupersetOf(iterkit.Slice([]int{2, 2, 3})))
			assert.False(t, set.Get(t).IsSupersetOf(other.Get(t)))
			assert.True(t, set.Get(t).IsSupersetOf(iterkit.Empty[int]()))
		})

		s.Then("overlap", func(t *testcase.T) {
			assert.True(t, set.Get(t).Overlaps(other.Get(t)))
			assert.False(t, set.Get(t).Overlaps(iterkit.Slice([]int{7, 8})))
			assert.False(t, datastruct.NewHashSet[int]().Overlaps(other.Get(t)))
		})

		s.Then("equality ignores order and duplicates", func(t *testcase.T) {
			assert.True(t, set.Get(t).SetEquals(iterkit.Slice([]int{4, 3, 2, 1, 1})))
			assert.False(t, set.Get(t).SetEquals(iterkit.Slice([]int{1, 2, 3})))
			assert.False(t, set.Get(t).SetEquals(iterkit.Slice([]int{1, 2, 3, 5})))
		})
	})

	s.Test("comparer drives membership", func(t *testcase.T) {
		words := datastruct.NewHashSet(
			datastruct.WithComparer(compare.FoldString()),
			datastruct.WithValues("Go", "GO", "go", "Rust"),
		)
		assert.Equal(t, []string{"Go", "Rust"}, words.ToSlice())
		assert.True(t, words.Contains("rust"))
		assert.True(t, words.SetEquals(iterkit.Slice([]string{"RUST", "gO"})))
	})
}

func TestSet(t *testing.T) {
	s := datastruct.NewSet("a", "b", "a")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	assert.True(t, s.Delete("a"))
	assert.False(t, s.Has("a"))
	assert.False(t, s.Delete("a"))
	s.UnionWith(iterkit.Slice([]string{"c"}))
	assert.Equal(t, []string{"b", "c"}, s.ToSlice())
}
