// Package arrowconv converts generated frames into Apache Arrow
// records, the interchange point for downstream table libraries.
// Missing cells map to Arrow nulls in the validity bitmap.
package arrowconv

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/mmrzaf/tabgen/frame"
)

// Schema maps a frame's columns to an Arrow schema: int64, float64,
// utf8 and timestamp[s, UTC] respectively. Every field is nullable.
func Schema(f *frame.Frame) (*arrow.Schema, error) {
	fields := make([]arrow.Field, f.NumCols())
	for i, c := range f.Columns() {
		dt, err := dataType(c.Kind())
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name(), err)
		}
		fields[i] = arrow.Field{Name: c.Name(), Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil), nil
}

func dataType(k frame.Kind) (arrow.DataType, error) {
	switch k {
	case frame.KindInt:
		return arrow.PrimitiveTypes.Int64, nil
	case frame.KindFloat:
		return arrow.PrimitiveTypes.Float64, nil
	case frame.KindString:
		return arrow.BinaryTypes.String, nil
	case frame.KindTime:
		return &arrow.TimestampType{Unit: arrow.Second, TimeZone: "UTC"}, nil
	default:
		return nil, fmt.Errorf("unsupported column kind %v", k)
	}
}

// Record converts f into an Arrow record batch. The caller owns the
// record and must Release it. A nil allocator defaults to the Go
// allocator.
func Record(f *frame.Frame, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	schema, err := Schema(f)
	if err != nil {
		return nil, err
	}

	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()

	for j, c := range f.Columns() {
		switch c.Kind() {
		case frame.KindInt:
			b := rb.Field(j).(*array.Int64Builder)
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					b.AppendNull()
				} else {
					b.Append(c.Int(i))
				}
			}
		case frame.KindFloat:
			b := rb.Field(j).(*array.Float64Builder)
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					b.AppendNull()
				} else {
					b.Append(c.Float(i))
				}
			}
		case frame.KindString:
			b := rb.Field(j).(*array.StringBuilder)
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					b.AppendNull()
				} else {
					b.Append(c.Str(i))
				}
			}
		case frame.KindTime:
			b := rb.Field(j).(*array.TimestampBuilder)
			for i := 0; i < c.Len(); i++ {
				if c.IsNull(i) {
					b.AppendNull()
				} else {
					b.Append(arrow.Timestamp(c.Time(i).Unix()))
				}
			}
		}
	}

	return rb.NewRecord(), nil
}
