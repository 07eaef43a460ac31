package iterkit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/enumkit/enumkit/pkg/iterkit"
)

type snapshotter struct {
	iterkit.Iterable[int]
	vs []int
}

func (s snapshotter) ToSlice() []int { return s.vs }

func TestBuffer(t *testing.T) {
	t.Run("array-like sources are copied", func(t *testing.T) {
		vs := random.Slice(rnd.IntBetween(1, 10), rnd.Int)
		out := iterkit.Buffer(iterkit.Slice(vs))
		assert.Equal(t, vs, out)

		out[0]++
		assert.NotEqual(t, vs[0], out[0], "buffer must not alias the source")
	})

	t.Run("slice convertible sources are snapshotted", func(t *testing.T) {
		src := snapshotter{Iterable: iterkit.Empty[int](), vs: []int{1, 2, 3}}
		out := iterkit.Buffer[int](src)
		assert.Equal(t, []int{1, 2, 3}, out)

		out[0] = 42
		assert.Equal(t, 1, src.vs[0])
	})

	t.Run("forced iteration uses the cursor", func(t *testing.T) {
		src := snapshotter{Iterable: iterkit.Slice([]int{7}), vs: []int{1, 2, 3}}
		assert.Equal(t, []int{7}, iterkit.Buffer[int](src, true))
	})

	t.Run("single use sources are exhausted", func(t *testing.T) {
		src := iterkit.FromCursor(iterkit.Slice([]int{1, 2}).Cursor())
		assert.Equal(t, []int{1, 2}, iterkit.Buffer(src))
		assert.Empty(t, iterkit.Buffer(src))
	})

	t.Run("nil", func(t *testing.T) {
		out := iterkit.Buffer[int](nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
