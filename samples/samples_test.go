package samples

import "testing"

func TestCities(t *testing.T) {
	got := Cities(3)
	if len(got) != 3 {
		t.Fatalf("expected 3 cities, got %d", len(got))
	}

	all := Cities(1000)
	if len(all) != len(cityPool) {
		t.Fatalf("oversized request should cap at the pool, got %d", len(all))
	}
	seen := make(map[string]bool)
	for _, c := range all {
		if seen[c] {
			t.Fatalf("duplicate city %q", c)
		}
		seen[c] = true
	}
}

func TestCities_NegativeCount(t *testing.T) {
	if got := Cities(-1); len(got) != 0 {
		t.Fatalf("negative request should yield no cities, got %d", len(got))
	}
}

func TestCities_ReturnsCopy(t *testing.T) {
	a := Cities(2)
	a[0] = "mutated"
	if Cities(2)[0] == "mutated" {
		t.Fatal("callers must not be able to mutate the pool")
	}
}

func TestNames(t *testing.T) {
	got := Names(10)
	if len(got) != 10 {
		t.Fatalf("expected 10 names, got %d", len(got))
	}
	seen := make(map[string]bool)
	for _, n := range got {
		if n == "" {
			t.Fatal("empty name")
		}
		if seen[n] {
			t.Fatalf("duplicate name %q", n)
		}
		seen[n] = true
	}
}

func TestWords(t *testing.T) {
	got := Words(5)
	if len(got) != 5 {
		t.Fatalf("expected 5 words, got %d", len(got))
	}
	for _, w := range got {
		if w == "" {
			t.Fatal("empty word")
		}
	}
}
