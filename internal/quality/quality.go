// Package quality measures the output distribution of a hash function.
//
// It backs the statistical tests of this module: collision counting over
// large key sets and bucket-balance checks that would catch a broken mixing
// constant or a lost input word. It is not part of the public API.
package quality

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Collector accumulates hash outputs for one experiment.
// Thread-safety: NOT thread-safe. Use one collector per experiment.
type Collector struct {
	seen    *roaring64.Bitmap
	buckets []uint64
	count   uint64
}

// NewCollector returns a collector that additionally bins observations into
// the given number of buckets by hash modulo.
func NewCollector(buckets int) *Collector {
	if buckets < 1 {
		buckets = 1
	}
	return &Collector{
		seen:    roaring64.New(),
		buckets: make([]uint64, buckets),
	}
}

// Observe records one hash output. Callers feed one observation per distinct
// input; duplicate inputs would be reported as collisions.
func (c *Collector) Observe(h uint64) {
	c.seen.Add(h)
	c.buckets[h%uint64(len(c.buckets))]++
	c.count++
}

// Count returns the number of observations.
func (c *Collector) Count() uint64 {
	return c.count
}

// Distinct returns the number of distinct hash values observed.
func (c *Collector) Distinct() uint64 {
	return c.seen.GetCardinality()
}

// Collisions returns the number of observations that repeated an earlier
// hash value.
func (c *Collector) Collisions() uint64 {
	return c.count - c.seen.GetCardinality()
}

// BucketRatio returns the ratio of the fullest bucket to the mean bucket
// occupancy. A well-mixed hash over many observations keeps this close to 1;
// a degenerate one concentrates mass and drives it toward the bucket count.
func (c *Collector) BucketRatio() float64 {
	if c.count == 0 {
		return 0
	}
	var maxOcc uint64
	for _, occ := range c.buckets {
		if occ > maxOcc {
			maxOcc = occ
		}
	}
	mean := float64(c.count) / float64(len(c.buckets))
	return float64(maxOcc) / mean
}
