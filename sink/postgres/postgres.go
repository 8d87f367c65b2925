// Package postgres inserts generated frames into a PostgreSQL
// database via lib/pq.
package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/mmrzaf/tabgen/frame"
	"github.com/mmrzaf/tabgen/sink"
)

type Sink struct {
	dsn    string
	schema string
	db     *sql.DB
}

// New returns a sink for the given DSN. An empty schema defaults to
// "public".
func New(dsn, schema string) *Sink {
	if schema == "" {
		schema = "public"
	}
	return &Sink{dsn: dsn, schema: schema}
}

func (s *Sink) Connect() error {
	db, err := sql.Open("postgres", s.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	s.db = db
	return nil
}

func (s *Sink) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Sink) EnsureTable(table string, f *frame.Frame) error {
	if err := s.checkIdentifiers(table, f); err != nil {
		return err
	}

	var exists bool
	query := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = $2
	)`
	if err := s.db.QueryRow(query, s.schema, table).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	cols := f.Columns()
	columnDefs := make([]string, len(cols))
	for i, c := range cols {
		columnDefs[i] = fmt.Sprintf("%s %s", c.Name(), columnType(c.Kind()))
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s.%s (%s)",
		s.schema, table, strings.Join(columnDefs, ", "))
	_, err := s.db.Exec(createSQL)
	return err
}

func columnType(k frame.Kind) string {
	switch k {
	case frame.KindInt:
		return "BIGINT"
	case frame.KindFloat:
		return "DOUBLE PRECISION"
	case frame.KindString:
		return "TEXT"
	case frame.KindTime:
		return "TIMESTAMPTZ"
	default:
		return "TEXT"
	}
}

// InsertFrame appends every row of f to the table using multi-row
// VALUES statements of at most sink.BatchSize rows. Missing cells
// become NULL.
func (s *Sink) InsertFrame(table string, f *frame.Frame) error {
	if err := s.checkIdentifiers(table, f); err != nil {
		return err
	}
	if f.NumRows() == 0 {
		return nil
	}

	for start := 0; start < f.NumRows(); start += sink.BatchSize {
		end := start + sink.BatchSize
		if end > f.NumRows() {
			end = f.NumRows()
		}
		if err := s.insertBatch(table, f, start, end); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sink) insertBatch(table string, f *frame.Frame, start, end int) error {
	names := f.Names()
	nCols := len(names)

	placeholders := make([]string, 0, end-start)
	args := make([]any, 0, (end-start)*nCols)
	for i := start; i < end; i++ {
		rowPlaceholders := make([]string, nCols)
		for j, v := range f.Row(i) {
			rowPlaceholders[j] = fmt.Sprintf("$%d", len(args)+1)
			args = append(args, v)
		}
		placeholders = append(placeholders, "("+strings.Join(rowPlaceholders, ", ")+")")
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
		s.schema, table, strings.Join(names, ", "), strings.Join(placeholders, ", "))
	_, err := s.db.Exec(insertSQL, args...)
	return err
}

func (s *Sink) checkIdentifiers(table string, f *frame.Frame) error {
	if !sink.IsValidIdentifier(s.schema) {
		return fmt.Errorf("sink: invalid schema identifier: %q", s.schema)
	}
	return sink.CheckIdentifiers(table, f)
}
