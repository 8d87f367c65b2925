package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2023-02-01")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got, err = ParseDate("2023-02-01T15:04:05Z")
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 15 {
		t.Fatalf("RFC3339 parse lost the time: %v", got)
	}

	for _, bad := range []string{"", "not-a-date", "01-02-2023", "2023/02/01"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"90s", 90 * time.Second},
		{"2h", 2 * time.Hour},
		{"3d", 72 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "d", "xd", "5y"} {
		if _, err := ParseDuration(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseRelative(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

	got, err := ParseRelative("now", now)
	if err != nil || !got.Equal(now) {
		t.Fatalf("now: got %v, %v", got, err)
	}

	got, err = ParseRelative("-30d", now)
	if err != nil {
		t.Fatal(err)
	}
	if want := now.Add(-30 * 24 * time.Hour); !got.Equal(want) {
		t.Fatalf("-30d: got %v, want %v", got, want)
	}

	got, err = ParseRelative("+2w", now)
	if err != nil {
		t.Fatal(err)
	}
	if want := now.Add(14 * 24 * time.Hour); !got.Equal(want) {
		t.Fatalf("+2w: got %v, want %v", got, want)
	}

	got, err = ParseRelative("2020-01-01", now)
	if err != nil {
		t.Fatal(err)
	}
	if got.Year() != 2020 {
		t.Fatalf("absolute date: got %v", got)
	}

	if _, err := ParseRelative("30d", now); err == nil {
		t.Fatal("unsigned offset should be rejected")
	}
}
