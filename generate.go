package tabgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mmrzaf/tabgen/frame"
	"github.com/mmrzaf/tabgen/internal/generators"
)

// Generate materializes rows rows according to the declared schema and
// returns them as a fresh frame. Columns appear in declaration order;
// every cell is drawn independently. Zero rows is legal and yields an
// empty frame with the correct headers and kinds.
//
// The schema is read-only during generation and stays reusable: calling
// Generate again produces a new, independent frame.
func (b *Builder) Generate(rows int) (*frame.Frame, error) {
	if len(b.cols) == 0 {
		return nil, ErrNoColumns
	}
	if rows < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeRows, rows)
	}

	rng := b.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cols := make([]*frame.Column, len(b.cols))
	for i, spec := range b.cols {
		cols[i] = generateColumn(rng, spec, rows)
	}
	return frame.New(cols...)
}

// generateColumn draws one full column. The null draw happens before the
// value draw, so a missing cell consumes exactly one uniform integer.
func generateColumn(rng *rand.Rand, spec ColumnSpec, rows int) *frame.Column {
	switch spec.Kind {
	case KindInt:
		cb := frame.NewIntBuilder(spec.Name, rows)
		for i := 0; i < rows; i++ {
			if missing(rng, spec) {
				cb.AppendNull()
			} else {
				cb.Append(generators.Int63Range(rng, spec.MinInt, spec.MaxInt))
			}
		}
		return cb.Column()
	case KindFloat:
		cb := frame.NewFloatBuilder(spec.Name, rows)
		for i := 0; i < rows; i++ {
			if missing(rng, spec) {
				cb.AppendNull()
			} else {
				cb.Append(generators.Float64Range(rng, spec.MinFloat, spec.MaxFloat))
			}
		}
		return cb.Column()
	case KindCategorical:
		cb := frame.NewStringBuilder(spec.Name, rows)
		for i := 0; i < rows; i++ {
			if missing(rng, spec) {
				cb.AppendNull()
			} else {
				cb.Append(generators.Choice(rng, spec.Categories))
			}
		}
		return cb.Column()
	case KindDatetime:
		cb := frame.NewTimeBuilder(spec.Name, rows)
		for i := 0; i < rows; i++ {
			if missing(rng, spec) {
				cb.AppendNull()
			} else {
				cb.Append(generators.TimeRange(rng, spec.MinTime, spec.MaxTime))
			}
		}
		return cb.Column()
	default:
		panic(fmt.Sprintf("tabgen: unknown column kind %v", spec.Kind))
	}
}

// missing reports whether null injection fires for one cell: a uniform
// draw in [0, 100) strictly below the configured percent.
func missing(rng *rand.Rand, spec ColumnSpec) bool {
	return spec.AllowNull && rng.Intn(100) < spec.NullPct
}
