package hashing

import "testing"

func TestSum_Stable(t *testing.T) {
	payload := map[string]any{
		"columns": []map[string]any{
			{"name": "age", "kind": "int", "min": 0, "max": 99},
		},
	}
	a, err := Sum(payload)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sum(payload)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same payload hashed differently: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected hex sha256, got %q", a)
	}
}

func TestSum_KeyOrderIndependent(t *testing.T) {
	a, err := Sum(map[string]any{"min": 0, "max": 99, "name": "age"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sum(map[string]any{"name": "age", "max": 99, "min": 0})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("map key order must not affect the digest")
	}
}

func TestSum_Sensitivity(t *testing.T) {
	a, _ := Sum(map[string]any{"name": "age", "max": 99})
	b, _ := Sum(map[string]any{"name": "age", "max": 98})
	if a == b {
		t.Fatal("different payloads collided")
	}
}
