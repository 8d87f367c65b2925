package tabgen

import (
	"time"

	"github.com/mmrzaf/tabgen/internal/hashing"
)

// Fingerprint returns a stable hex SHA-256 digest of the declared
// schema. Two builders fingerprint identically exactly when they hold
// the same columns, in the same order, with the same constraints.
// Seeds are not part of the fingerprint.
func (b *Builder) Fingerprint() (string, error) {
	cols := make([]map[string]any, len(b.cols))
	for i, c := range b.cols {
		m := map[string]any{
			"name": c.Name,
			"kind": c.Kind.String(),
		}
		if c.AllowNull {
			m["null_pct"] = c.NullPct
		}
		switch c.Kind {
		case KindInt:
			m["min"] = c.MinInt
			m["max"] = c.MaxInt
		case KindFloat:
			m["min"] = c.MinFloat
			m["max"] = c.MaxFloat
		case KindCategorical:
			m["categories"] = c.Categories
		case KindDatetime:
			m["min"] = c.MinTime.UTC().Format(time.RFC3339)
			m["max"] = c.MaxTime.UTC().Format(time.RFC3339)
		}
		cols[i] = m
	}
	return hashing.Sum(map[string]any{"columns": cols})
}
