package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const timeLayout = "2006-01-02 15:04:05"

// cellString formats one cell for text output. Missing cells render as
// the given marker.
func cellString(c *Column, i int, nullMarker string) string {
	if c.IsNull(i) {
		return nullMarker
	}
	switch c.Kind() {
	case KindInt:
		return strconv.FormatInt(c.Int(i), 10)
	case KindFloat:
		return strconv.FormatFloat(c.Float(i), 'g', -1, 64)
	case KindString:
		return c.Str(i)
	case KindTime:
		return c.Time(i).Format(timeLayout)
	default:
		return fmt.Sprintf("%v", c.Value(i))
	}
}

// WriteMarkdown renders the frame as a GitHub-style markdown table.
// Missing cells render as "<NA>".
func (f *Frame) WriteMarkdown(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("|")
	for _, name := range f.Names() {
		sb.WriteString(" ")
		sb.WriteString(name)
		sb.WriteString(" |")
	}
	sb.WriteString("\n|")
	for range f.cols {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for i := 0; i < f.rows; i++ {
		sb.WriteString("|")
		for _, c := range f.cols {
			sb.WriteString(" ")
			sb.WriteString(cellString(c, i, "<NA>"))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteCSV renders the frame as CSV with a header row. Missing cells
// become empty fields.
func (f *Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Names()); err != nil {
		return err
	}
	record := make([]string, len(f.cols))
	for i := 0; i < f.rows; i++ {
		for j, c := range f.cols {
			record[j] = cellString(c, i, "")
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// String renders the frame as markdown for quick inspection.
func (f *Frame) String() string {
	var sb strings.Builder
	if err := f.WriteMarkdown(&sb); err != nil {
		return fmt.Sprintf("frame<%d cols, %d rows>", len(f.cols), f.rows)
	}
	return sb.String()
}
