// Package sink delivers generated frames into downstream stores. Each
// backend lives in its own subpackage and implements Sink.
package sink

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mmrzaf/tabgen/frame"
)

// Sink receives generated frames. EnsureTable is idempotent; a frame
// defines both the table shape and the inserted data, and missing cells
// become SQL NULL.
type Sink interface {
	Connect() error
	Close() error
	EnsureTable(table string, f *frame.Frame) error
	InsertFrame(table string, f *frame.Frame) error
}

// BatchSize is the number of rows inserted per statement/transaction.
const BatchSize = 1000

// identifier validation: allow simple SQL identifiers only (prevents
// injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reservedWords = map[string]struct{}{
		"all": {}, "alter": {}, "and": {}, "as": {}, "by": {}, "case": {},
		"create": {}, "delete": {}, "distinct": {}, "drop": {}, "else": {},
		"end": {}, "exists": {}, "false": {}, "from": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "insert": {}, "into": {},
		"is": {}, "join": {}, "key": {}, "like": {}, "limit": {},
		"not": {}, "null": {}, "offset": {}, "on": {}, "or": {},
		"order": {}, "primary": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "true": {}, "truncate": {}, "union": {}, "update": {},
		"user": {}, "values": {}, "when": {}, "where": {},
	}
)

// IsValidIdentifier reports whether s is safe to splice into DDL/DML.
func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !identRe.MatchString(s) {
		return false
	}
	if _, ok := reservedWords[strings.ToLower(s)]; ok {
		return false
	}
	return true
}

// CheckIdentifiers validates the table name and every column header of
// f before any SQL is built from them.
func CheckIdentifiers(table string, f *frame.Frame) error {
	if !IsValidIdentifier(table) {
		return fmt.Errorf("sink: invalid table identifier: %q", table)
	}
	for _, name := range f.Names() {
		if !IsValidIdentifier(name) {
			return fmt.Errorf("sink: invalid column identifier: %q", name)
		}
	}
	return nil
}
