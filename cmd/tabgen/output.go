package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/mmrzaf/tabgen/arrowconv"
	"github.com/mmrzaf/tabgen/frame"
	"github.com/mmrzaf/tabgen/internal/logging"
	"github.com/mmrzaf/tabgen/sink"
	"github.com/mmrzaf/tabgen/sink/postgres"
	"github.com/mmrzaf/tabgen/sink/sqlite"
)

func writeOutput(f *frame.Frame, format, path string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	switch format {
	case "table":
		return writeTable(f, w)
	case "markdown":
		return f.WriteMarkdown(w)
	case "csv":
		return f.WriteCSV(w)
	case "parquet":
		if path == "" {
			return fmt.Errorf("parquet output requires --output")
		}
		return writeParquet(f, w)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// writeTable prints the frame as an aligned text table.
func writeTable(f *frame.Frame, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, name := range f.Names() {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, name)
	}
	fmt.Fprintln(tw)
	for i := 0; i < f.NumRows(); i++ {
		for j, v := range f.Row(i) {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			if v == nil {
				fmt.Fprint(tw, "<NA>")
			} else {
				fmt.Fprintf(tw, "%v", v)
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func writeParquet(f *frame.Frame, w io.Writer) error {
	mem := memory.NewGoAllocator()
	rec, err := arrowconv.Record(f, mem)
	if err != nil {
		return err
	}
	defer rec.Release()

	writer, err := pqarrow.NewFileWriter(rec.Schema(), w, nil,
		pqarrow.NewArrowWriterProperties(pqarrow.WithAllocator(mem)))
	if err != nil {
		return err
	}
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

func writeSQLite(logger *logging.Logger, runID, path, table string, f *frame.Frame) error {
	return writeSink(logger, runID, sqlite.New(path), table, f)
}

func writePostgres(logger *logging.Logger, runID, dsn, schema, table string, f *frame.Frame) error {
	return writeSink(logger, runID, postgres.New(dsn, schema), table, f)
}

func writeSink(logger *logging.Logger, runID string, s sink.Sink, table string, f *frame.Frame) error {
	if err := s.Connect(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer s.Close()

	if err := s.EnsureTable(table, f); err != nil {
		return fmt.Errorf("ensure table %q: %w", table, err)
	}
	if err := s.InsertFrame(table, f); err != nil {
		return fmt.Errorf("insert into %q: %w", table, err)
	}
	logger.Infow("sink.inserted", map[string]any{
		"run_id": runID, "table": table, "rows": f.NumRows(),
	})
	return nil
}
