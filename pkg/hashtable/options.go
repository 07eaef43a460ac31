package hashtable

import (
	"github.com/enumkit/enumkit/pkg/compare"
	"github.com/enumkit/enumkit/pkg/errorkit"
	"github.com/enumkit/enumkit/port/option"
)

type Option[K any] = option.Option[Config[K]]

type Config[K any] struct {
	Comparer compare.Comparer[K]
	Policy   Policy
	Capacity int
}

func (c *Config[K]) Init() {
	c.Comparer = compare.Default[K]()
	c.Policy = RejectDuplicates
}

// WithComparer sets the equality strategy of the keys.
// A nil comparer keeps the default one.
func WithComparer[K any](c compare.Comparer[K]) Option[K] {
	return option.Func[Config[K]](func(cfg *Config[K]) {
		if c != nil {
			cfg.Comparer = c
		}
	})
}

// WithCapacity preallocates enough buckets to hold n entries without growing.
func WithCapacity[K any](n int) Option[K] {
	if n < 0 {
		panic(errorkit.ErrInvalidArgument.F("negative capacity: %d", n))
	}
	return option.Func[Config[K]](func(c *Config[K]) { c.Capacity = n })
}

// WithPolicy sets what Add does with a duplicate key.
func WithPolicy[K any](p Policy) Option[K] {
	return option.Func[Config[K]](func(c *Config[K]) { c.Policy = p })
}
