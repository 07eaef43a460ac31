// Package option holds the functional options behind the enumkit constructors,
// like datastruct.WithComparer or hashtable.WithCapacity.
package option

// Option sets one field, or a few related ones, of a constructor configuration.
type Option[Config any] interface {
	Configure(*Config)
}

// Func is an Option written as a closure over the configuration.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) { fn(c) }

// ToConfig builds the configuration a constructor runs with.
// A *Config with an Init method gets its defaults first,
// then the options are applied from left to right, so a later option wins.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var c Config
	if d, ok := any(&c).(interface{ Init() }); ok {
		d.Init()
	}
	for _, o := range opts {
		o.Configure(&c)
	}
	return c
}
