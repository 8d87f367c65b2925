// Package frame holds the column-major table produced by generation.
//
// A Frame is an ordered set of equally sized columns. Each column is
// backed by one typed slice plus a validity slice, so a missing cell is
// a typed absence, never a sentinel value of the column's type.
// Frames are immutable once assembled.
package frame

import "errors"

var (
	// ErrNoColumns indicates an attempt to assemble a frame without columns.
	ErrNoColumns = errors.New("frame: at least one column required")
	// ErrDuplicateName indicates two columns share a name.
	ErrDuplicateName = errors.New("frame: duplicate column name")
	// ErrRaggedColumns indicates columns of differing lengths.
	ErrRaggedColumns = errors.New("frame: columns must share one length")
)

// Frame is an immutable column-major table.
type Frame struct {
	cols   []*Column
	byName map[string]int
	rows   int
}

// New assembles columns into a frame. All columns must be non-nil,
// uniquely named and of equal length.
func New(cols ...*Column) (*Frame, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	f := &Frame{
		cols:   cols,
		byName: make(map[string]int, len(cols)),
		rows:   cols[0].Len(),
	}
	for i, c := range cols {
		if c.Len() != f.rows {
			return nil, ErrRaggedColumns
		}
		if _, dup := f.byName[c.Name()]; dup {
			return nil, ErrDuplicateName
		}
		f.byName[c.Name()] = i
	}
	return f, nil
}

// NumRows reports the row count.
func (f *Frame) NumRows() int { return f.rows }

// NumCols reports the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column headers in declaration order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name()
	}
	return names
}

// Columns returns the backing columns in declaration order. Callers
// must not mutate them.
func (f *Frame) Columns() []*Column { return f.cols }

// Column returns the i-th column.
func (f *Frame) Column(i int) *Column { return f.cols[i] }

// ColumnByName looks a column up by header.
func (f *Frame) ColumnByName(name string) (*Column, bool) {
	i, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Row returns the values of one row in column order, nil for missing
// cells. The slice is freshly allocated per call.
func (f *Frame) Row(i int) []any {
	row := make([]any, len(f.cols))
	for j, c := range f.cols {
		row[j] = c.Value(i)
	}
	return row
}
