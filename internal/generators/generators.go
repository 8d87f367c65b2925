// Package generators holds the per-kind uniform draw primitives. Every
// function takes an explicit *rand.Rand so callers control seeding.
package generators

import (
	"math"
	"math/rand"
)

// Int63Range returns a uniform integer in [min, max] inclusive. Ranges
// wider than int63, including the full int64 domain, are drawn from the
// unsigned space and shifted into place.
func Int63Range(rng *rand.Rand, min, max int64) int64 {
	if min == max {
		return min
	}
	span := uint64(max) - uint64(min) // inclusive width minus one
	if span < 1<<63-1 {
		return min + rng.Int63n(int64(span)+1)
	}
	if span == math.MaxUint64 {
		return int64(rng.Uint64())
	}
	// Rejection sampling: discard the low remainder band so v%n stays
	// uniform over [0, span].
	n := span + 1
	thresh := -n % n
	for {
		if v := rng.Uint64(); v >= thresh {
			return min + int64(v%n)
		}
	}
}

// Float64Range returns a uniform float in the half-open interval
// [min, max). With min == max it returns min.
func Float64Range(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// Choice returns one of values with equal probability. values must be
// non-empty; the builder guarantees that at declaration time.
func Choice(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}
