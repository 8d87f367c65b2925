package sink

import (
	"testing"

	"github.com/mmrzaf/tabgen/frame"
)

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"age", "favorite_number", "_x", "Col2", "t"}
	for _, s := range valid {
		if !IsValidIdentifier(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	invalid := []string{"", " ", "2col", "a-b", "a b", "x;drop", `a"b`, "select", "TABLE", "drop"}
	for _, s := range invalid {
		if IsValidIdentifier(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestCheckIdentifiers(t *testing.T) {
	good := frame.NewIntBuilder("age", 1)
	good.Append(1)
	f, err := frame.New(good.Column())
	if err != nil {
		t.Fatal(err)
	}

	if err := CheckIdentifiers("people", f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckIdentifiers("people;--", f); err == nil {
		t.Fatal("expected bad table name to be rejected")
	}

	bad := frame.NewIntBuilder("age;drop", 1)
	bad.Append(1)
	f2, err := frame.New(bad.Column())
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckIdentifiers("people", f2); err == nil {
		t.Fatal("expected bad column name to be rejected")
	}
}
