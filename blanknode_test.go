package rdfxml

import "testing"

func TestBnodeMinterDistinct(t *testing.T) {
	var m bnodeMinter
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		b := m.mint()
		if seen[b.Value] {
			t.Fatalf("mint() produced duplicate value %q", b.Value)
		}
		seen[b.Value] = true
	}
}

func TestNamed(t *testing.T) {
	b := named("foo")
	if b.Value != "_:foo" {
		t.Errorf("named(%q) = %q, want _:foo", "foo", b.Value)
	}
}
