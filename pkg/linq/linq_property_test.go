package linq_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/enumkit/enumkit/pkg/iterkit"
	"github.com/enumkit/enumkit/pkg/linq"
)

// streamed hides the array-like shape of a slice.
func streamed(vs []int) linq.Enumerable[int] {
	return linq.FromSeq(slices.Values(vs))
}

func TestPipelineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(4711)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("buffer copies array-like sources", prop.ForAll(
		func(vs []int) bool {
			out := iterkit.Buffer(iterkit.Slice(vs))
			if !slices.Equal(vs, out) {
				return false
			}
			if 0 < len(out) {
				out[0]++
				return out[0] != vs[0]
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("count equals the buffered length", prop.ForAll(
		func(vs []int) bool {
			return linq.FromSlice(vs).Count() == len(linq.FromSlice(vs).ToSlice()) &&
				streamed(vs).Count() == len(vs)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("count with a predicate tallies the matches", prop.ForAll(
		func(vs []int, mod int) bool {
			p := func(x int) bool { return x%mod == 0 }
			var want int
			for _, v := range vs {
				if p(v) {
					want++
				}
			}
			return linq.FromSlice(vs).Count(p) == want && streamed(vs).Count(p) == want
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
		gen.IntRange(1, 5),
	))

	properties.Property("skip drops the first min(n, len) elements", prop.ForAll(
		func(vs []int, n int) bool {
			k := min(max(n, 0), len(vs))
			want := vs[k:]
			return slices.Equal(want, linq.FromSlice(vs).Skip(n).ToSlice()) &&
				slices.Equal(want, streamed(vs).Skip(n).ToSlice())
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(-5, 40),
	))

	properties.Property("union is the ordered set union", prop.ForAll(
		func(a, b []int) bool {
			got := linq.FromSlice(a).Union(streamed(b)).ToSlice()

			var want []int
			for _, v := range slices.Concat(a, b) {
				if !slices.Contains(want, v) {
					want = append(want, v)
				}
			}
			return slices.Equal(want, got)
		},
		gen.SliceOf(gen.IntRange(0, 15)),
		gen.SliceOf(gen.IntRange(0, 15)),
	))

	properties.Property("any agrees with a linear scan", prop.ForAll(
		func(vs []int, target int) bool {
			p := func(x int) bool { return x == target }
			return linq.FromSlice(vs).Any() == (0 < len(vs)) &&
				streamed(vs).Any(p) == slices.Contains(vs, target)
		},
		gen.SliceOf(gen.IntRange(0, 10)),
		gen.IntRange(0, 10),
	))

	properties.Property("lastOrDefault finds the last match", prop.ForAll(
		func(vs []int, bound int) bool {
			want := -1
			for _, v := range vs {
				if v < bound {
					want = v
				}
			}
			return streamed(vs).LastOrDefault(-1, func(x int) bool { return x < bound }) == want
		},
		gen.SliceOf(gen.IntRange(0, 50)),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
