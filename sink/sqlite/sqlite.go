// Package sqlite inserts generated frames into a SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mmrzaf/tabgen/frame"
	"github.com/mmrzaf/tabgen/sink"
)

type Sink struct {
	path string
	db   *sql.DB
}

// New returns a sink writing to the SQLite database at path. Use
// ":memory:" for an in-memory database.
func New(path string) *Sink {
	return &Sink{path: path}
}

func (s *Sink) Connect() error {
	db, err := sql.Open("sqlite3", s.path)
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

// EnsureTable creates the table matching f's columns when it does not
// exist yet. All columns are nullable since any column may carry
// injected nulls.
func (s *Sink) EnsureTable(table string, f *frame.Frame) error {
	if err := sink.CheckIdentifiers(table, f); err != nil {
		return err
	}

	var name string
	err := s.db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return err
	}

	cols := f.Columns()
	columnDefs := make([]string, len(cols))
	for i, c := range cols {
		columnDefs[i] = fmt.Sprintf("%s %s", c.Name(), columnType(c.Kind()))
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(columnDefs, ", "))
	_, err = s.db.Exec(createSQL)
	return err
}

func columnType(k frame.Kind) string {
	switch k {
	case frame.KindInt:
		return "INTEGER"
	case frame.KindFloat:
		return "REAL"
	case frame.KindString:
		return "TEXT"
	case frame.KindTime:
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}

// InsertFrame appends every row of f to the table, batched in
// transactions of sink.BatchSize rows. Missing cells become NULL.
func (s *Sink) InsertFrame(table string, f *frame.Frame) error {
	if err := sink.CheckIdentifiers(table, f); err != nil {
		return err
	}
	if f.NumRows() == 0 {
		return nil
	}

	names := f.Names()
	placeholders := make([]string, len(names))
	for i := range names {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(names, ", "), strings.Join(placeholders, ", "))

	for start := 0; start < f.NumRows(); start += sink.BatchSize {
		end := start + sink.BatchSize
		if end > f.NumRows() {
			end = f.NumRows()
		}
		if err := s.insertBatch(insertSQL, f, start, end); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sink) insertBatch(insertSQL string, f *frame.Frame, start, end int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := start; i < end; i++ {
		if _, err := stmt.Exec(f.Row(i)...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return tx.Commit()
}
