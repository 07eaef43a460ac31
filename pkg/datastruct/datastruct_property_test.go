package datastruct_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/enumkit/enumkit/pkg/datastruct"
	"github.com/enumkit/enumkit/pkg/iterkit"
)

func TestLinkedListProperties(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("walking forward and backward visits every node", prop.ForAll(
		func(vs []int) bool {
			var ll datastruct.LinkedList[int]
			ll.Append(vs...)
			if len(vs) == 0 {
				return ll.First() == nil && ll.Last() == nil
			}

			var fwd, bwd []int
			for n, i := ll.First(), 0; i < ll.Len(); n, i = n.Next(), i+1 {
				fwd = append(fwd, n.Value)
			}
			for n, i := ll.Last(), 0; i < ll.Len(); n, i = n.Prev(), i+1 {
				bwd = append(bwd, n.Value)
			}
			slices.Reverse(bwd)
			return slices.Equal(vs, fwd) &&
				slices.Equal(vs, bwd) &&
				ll.Last().Next() == ll.First()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("removing nodes keeps the remaining order", prop.ForAll(
		func(vs []int, drop []bool) bool {
			var ll datastruct.LinkedList[int]
			var nodes []*datastruct.Node[int]
			for _, v := range vs {
				nodes = append(nodes, ll.AddLast(v))
			}

			var want []int
			for i, n := range nodes {
				if i < len(drop) && drop[i] {
					if ll.Remove(n) != nil || !n.Detached() {
						return false
					}
					continue
				}
				want = append(want, n.Value)
			}
			got := ll.ToSlice()
			return ll.Len() == len(want) && slices.Equal(want, got)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("Lookup agrees with ToSlice", prop.ForAll(
		func(vs []string) bool {
			ll := datastruct.NewLinkedList(datastruct.WithValues(vs...))
			for i, v := range ll.ToSlice() {
				got, ok := ll.Lookup(i)
				if !ok || got != v {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

func TestHashSetProperties(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(8642)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a set holds the distinct values in first-seen order", prop.ForAll(
		func(vs []int) bool {
			set := datastruct.NewHashSet(datastruct.WithValues(vs...))

			var want []int
			for _, v := range vs {
				if !slices.Contains(want, v) {
					want = append(want, v)
				}
			}
			return slices.Equal(want, set.ToSlice())
		},
		gen.SliceOf(gen.IntRange(0, 20)),
	))

	properties.Property("union and intersection bound each other", prop.ForAll(
		func(a, b []int) bool {
			union := datastruct.NewHashSet(datastruct.WithValues(a...))
			union.UnionWith(iterkit.Slice(b))
			inter := datastruct.NewHashSet(datastruct.WithValues(a...))
			inter.IntersectWith(iterkit.Slice(b))

			return inter.IsSubsetOf(union) &&
				union.IsSupersetOf(iterkit.Slice(a)) &&
				union.IsSupersetOf(iterkit.Slice(b)) &&
				(0 < inter.Len()) == union.Overlaps(inter)
		},
		gen.SliceOf(gen.IntRange(0, 30)),
		gen.SliceOf(gen.IntRange(0, 30)),
	))

	properties.TestingRun(t)
}

func TestSortedListProperties(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(9753)

	properties := gopter.NewProperties(parameters)

	properties.Property("keys are always sorted and unique", prop.ForAll(
		func(keys []int) bool {
			sl := datastruct.NewSortedList[int, int]()
			for i, k := range keys {
				sl.Set(k, i)
			}
			got := iterkit.Collect(iterkit.FromSeq(sl.Keys()))
			return slices.IsSorted(got) && len(slices.Compact(slices.Clone(got))) == len(got)
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}
