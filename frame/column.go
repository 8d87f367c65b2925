package frame

import "time"

// Kind identifies a column's storage type.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Column is one named, typed value sequence with per-cell validity.
// Exactly one of the value slices is populated, matching the kind.
type Column struct {
	name string
	kind Kind

	ints   []int64
	floats []float64
	strs   []string
	times  []time.Time
	valid  []bool
}

// Name returns the column header.
func (c *Column) Name() string { return c.name }

// Kind returns the storage type.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells, missing ones included.
func (c *Column) Len() int { return len(c.valid) }

// IsNull reports whether cell i holds the missing marker.
func (c *Column) IsNull(i int) bool { return !c.valid[i] }

// NullCount returns the number of missing cells.
func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.valid {
		if !v {
			n++
		}
	}
	return n
}

// Int returns cell i of an int column. The result is meaningful only
// when the kind is KindInt and the cell is not null.
func (c *Column) Int(i int) int64 { return c.ints[i] }

// Float returns cell i of a float column.
func (c *Column) Float(i int) float64 { return c.floats[i] }

// Str returns cell i of a string column.
func (c *Column) Str(i int) string { return c.strs[i] }

// Time returns cell i of a time column.
func (c *Column) Time(i int) time.Time { return c.times[i] }

// Value returns cell i boxed as any, or nil when the cell is missing.
func (c *Column) Value(i int) any {
	if !c.valid[i] {
		return nil
	}
	switch c.kind {
	case KindInt:
		return c.ints[i]
	case KindFloat:
		return c.floats[i]
	case KindString:
		return c.strs[i]
	case KindTime:
		return c.times[i]
	default:
		return nil
	}
}

// IntBuilder accumulates an int column cell by cell.
type IntBuilder struct{ col Column }

// NewIntBuilder starts an int column sized for capacity cells.
func NewIntBuilder(name string, capacity int) *IntBuilder {
	return &IntBuilder{col: Column{
		name:  name,
		kind:  KindInt,
		ints:  make([]int64, 0, capacity),
		valid: make([]bool, 0, capacity),
	}}
}

func (b *IntBuilder) Append(v int64) {
	b.col.ints = append(b.col.ints, v)
	b.col.valid = append(b.col.valid, true)
}

func (b *IntBuilder) AppendNull() {
	b.col.ints = append(b.col.ints, 0)
	b.col.valid = append(b.col.valid, false)
}

// Column finalizes the builder. The builder must not be reused.
func (b *IntBuilder) Column() *Column { return &b.col }

// FloatBuilder accumulates a float column cell by cell.
type FloatBuilder struct{ col Column }

func NewFloatBuilder(name string, capacity int) *FloatBuilder {
	return &FloatBuilder{col: Column{
		name:   name,
		kind:   KindFloat,
		floats: make([]float64, 0, capacity),
		valid:  make([]bool, 0, capacity),
	}}
}

func (b *FloatBuilder) Append(v float64) {
	b.col.floats = append(b.col.floats, v)
	b.col.valid = append(b.col.valid, true)
}

func (b *FloatBuilder) AppendNull() {
	b.col.floats = append(b.col.floats, 0)
	b.col.valid = append(b.col.valid, false)
}

func (b *FloatBuilder) Column() *Column { return &b.col }

// StringBuilder accumulates a string column cell by cell.
type StringBuilder struct{ col Column }

func NewStringBuilder(name string, capacity int) *StringBuilder {
	return &StringBuilder{col: Column{
		name:  name,
		kind:  KindString,
		strs:  make([]string, 0, capacity),
		valid: make([]bool, 0, capacity),
	}}
}

func (b *StringBuilder) Append(v string) {
	b.col.strs = append(b.col.strs, v)
	b.col.valid = append(b.col.valid, true)
}

func (b *StringBuilder) AppendNull() {
	b.col.strs = append(b.col.strs, "")
	b.col.valid = append(b.col.valid, false)
}

func (b *StringBuilder) Column() *Column { return &b.col }

// TimeBuilder accumulates a time column cell by cell.
type TimeBuilder struct{ col Column }

func NewTimeBuilder(name string, capacity int) *TimeBuilder {
	return &TimeBuilder{col: Column{
		name:  name,
		kind:  KindTime,
		times: make([]time.Time, 0, capacity),
		valid: make([]bool, 0, capacity),
	}}
}

func (b *TimeBuilder) Append(v time.Time) {
	b.col.times = append(b.col.times, v)
	b.col.valid = append(b.col.valid, true)
}

func (b *TimeBuilder) AppendNull() {
	b.col.times = append(b.col.times, time.Time{})
	b.col.valid = append(b.col.valid, false)
}

func (b *TimeBuilder) Column() *Column { return &b.col }
