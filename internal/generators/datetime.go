package generators

import (
	"math/rand"
	"time"
)

// TimeRange returns a uniform instant in [min, max] inclusive at second
// resolution: the inclusive range in whole seconds is computed and a
// uniform offset within it is added to min. Results are in UTC.
func TimeRange(rng *rand.Rand, min, max time.Time) time.Time {
	lo := min.Unix()
	hi := max.Unix()
	if hi <= lo {
		return time.Unix(lo, 0).UTC()
	}
	return time.Unix(lo+rng.Int63n(hi-lo+1), 0).UTC()
}
