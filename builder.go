package fxhash

// Builder is a zero-sized hasher factory. Containers that need a fresh
// hasher per operation hold a Builder and call New on it; every Hasher it
// produces is seeded to zero.
type Builder struct{}

// New returns a fresh zero-seeded Hasher.
func (Builder) New() *Hasher {
	return New()
}
