package ids

import "testing"

func TestNewRunIDIsUniqueAndNonEmpty(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	if a == "" || b == "" {
		t.Fatalf("expected non-empty run IDs")
	}
	if a == b {
		t.Fatalf("expected two calls to NewRunID to differ, got %q twice", a)
	}
}
