package tabgen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mmrzaf/tabgen/internal/timeutil"
)

// Kind discriminates the closed set of column variants.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindCategorical
	KindDatetime
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindCategorical:
		return "categorical"
	case KindDatetime:
		return "datetime"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ColumnSpec describes one output column: its variant, the bounds or
// category set for that variant, and the null-injection settings.
// Only the fields belonging to Kind are meaningful.
type ColumnSpec struct {
	Name      string
	Kind      Kind
	AllowNull bool
	NullPct   int // percent 0-100, honored only when AllowNull

	MinInt, MaxInt     int64
	MinFloat, MaxFloat float64
	Categories         []string
	MinTime, MaxTime   time.Time
}

// ColOption adjusts optional per-column behavior at declaration time.
type ColOption func(*ColumnSpec)

// Nullable enables null injection for the column: each generated cell is
// independently replaced with a missing marker with pct percent
// probability. pct must lie in [0, 100].
func Nullable(pct int) ColOption {
	return func(c *ColumnSpec) {
		c.AllowNull = true
		c.NullPct = pct
	}
}

// Builder accumulates column specifications in declaration order and
// generates frames from them. The zero value is not usable; call New.
//
// A Builder is not safe for concurrent use: it owns a single random
// source shared by all Generate calls.
type Builder struct {
	cols  []ColumnSpec
	names map[string]struct{}
	rng   *rand.Rand
}

// New returns an empty schema builder.
func New() *Builder {
	return &Builder{names: make(map[string]struct{})}
}

// Seed pins the builder's random source, making subsequent Generate
// calls deterministic. Two builders with identical schemas and seeds
// produce identical frames. Returns the builder for chaining.
func (b *Builder) Seed(seed int64) *Builder {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// Len reports the number of declared columns.
func (b *Builder) Len() int { return len(b.cols) }

// Columns returns the declared specs in declaration order. The slice is
// a copy; mutating it does not affect the builder.
func (b *Builder) Columns() []ColumnSpec {
	out := make([]ColumnSpec, len(b.cols))
	copy(out, b.cols)
	return out
}

// AddIntCol declares an integer column with inclusive bounds [min, max].
func (b *Builder) AddIntCol(name string, min, max int64, opts ...ColOption) error {
	spec := ColumnSpec{Name: name, Kind: KindInt, MinInt: min, MaxInt: max}
	for _, opt := range opts {
		opt(&spec)
	}
	return b.add(spec)
}

// AddFloatCol declares a float column with bounds [min, max].
func (b *Builder) AddFloatCol(name string, min, max float64, opts ...ColOption) error {
	spec := ColumnSpec{Name: name, Kind: KindFloat, MinFloat: min, MaxFloat: max}
	for _, opt := range opts {
		opt(&spec)
	}
	return b.add(spec)
}

// AddCatCol declares a categorical column drawing uniformly from the
// given non-empty category set. The set is copied.
func (b *Builder) AddCatCol(name string, categories []string, opts ...ColOption) error {
	spec := ColumnSpec{
		Name:       name,
		Kind:       KindCategorical,
		Categories: append([]string(nil), categories...),
	}
	for _, opt := range opts {
		opt(&spec)
	}
	return b.add(spec)
}

// AddDatetimeCol declares a datetime column drawing uniform instants in
// [min, max] inclusive. Bounds are truncated to second resolution, the
// resolution generation works at.
func (b *Builder) AddDatetimeCol(name string, min, max time.Time, opts ...ColOption) error {
	spec := ColumnSpec{
		Name:    name,
		Kind:    KindDatetime,
		MinTime: min.Truncate(time.Second),
		MaxTime: max.Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(&spec)
	}
	return b.add(spec)
}

// AddDateCol is AddDatetimeCol with ISO-8601 date strings (YYYY-MM-DD;
// RFC3339 timestamps also accepted). A plain max date bounds generation
// at its midnight instant; to cover the whole end day, pass the next
// day or an RFC3339 timestamp.
func (b *Builder) AddDateCol(name, min, max string, opts ...ColOption) error {
	minT, err := timeutil.ParseDate(min)
	if err != nil {
		return validationErr(name, fmt.Errorf("%w: %q", ErrBadDate, min))
	}
	maxT, err := timeutil.ParseDate(max)
	if err != nil {
		return validationErr(name, fmt.Errorf("%w: %q", ErrBadDate, max))
	}
	return b.AddDatetimeCol(name, minT, maxT, opts...)
}

// add validates eagerly and appends on success. Validation failures
// never touch builder state.
func (b *Builder) add(spec ColumnSpec) error {
	if spec.Name == "" {
		return validationErr(spec.Name, ErrEmptyName)
	}
	if _, dup := b.names[spec.Name]; dup {
		return validationErr(spec.Name, ErrDuplicateColumn)
	}
	if spec.NullPct < 0 || spec.NullPct > 100 {
		return validationErr(spec.Name, fmt.Errorf("%w: got %d", ErrNullProbability, spec.NullPct))
	}
	switch spec.Kind {
	case KindInt:
		if spec.MinInt > spec.MaxInt {
			return validationErr(spec.Name, fmt.Errorf("%w: %d > %d", ErrInvalidBounds, spec.MinInt, spec.MaxInt))
		}
	case KindFloat:
		if spec.MinFloat > spec.MaxFloat {
			return validationErr(spec.Name, fmt.Errorf("%w: %v > %v", ErrInvalidBounds, spec.MinFloat, spec.MaxFloat))
		}
	case KindCategorical:
		if len(spec.Categories) == 0 {
			return validationErr(spec.Name, ErrNoCategories)
		}
	case KindDatetime:
		if spec.MaxTime.Before(spec.MinTime) {
			return validationErr(spec.Name, fmt.Errorf("%w: %s > %s",
				ErrInvalidBounds, spec.MinTime.Format(time.RFC3339), spec.MaxTime.Format(time.RFC3339)))
		}
	}
	b.names[spec.Name] = struct{}{}
	b.cols = append(b.cols, spec)
	return nil
}
