package fxmap

type options struct {
	capacity int
	seed     uint
	hasSeed  bool
}

// Option configures container construction.
type Option func(*options)

// WithCapacity pre-sizes a container for at least n entries, so that
// inserting n keys triggers no growth. Values below the minimum table size
// are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithSeed starts every hasher the container builds from the given seed
// instead of zero. Two containers with the same feed and seed hash keys
// identically; Sharded uses a random seed per instance unless one is set.
func WithSeed(seed uint) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
