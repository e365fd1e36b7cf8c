package rdfxml

import "testing"

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		ref      string
		expected string
	}{
		{"empty ref strips fragment", "http://example.org/dir/file#x", "", "http://example.org/dir/file"},
		{"absolute ref wins", "http://example.org/dir/file", "http://other.org/y", "http://other.org/y"},
		{"fragment only", "http://example.org/dir/file", "#frag", "http://example.org/dir/file#frag"},
		{"fragment only strips old fragment", "http://example.org/dir/file#old", "#new", "http://example.org/dir/file#new"},
		{"network-path reference", "http://example.org/dir/file", "//other.org/y", "http://other.org/y"},
		{"absolute-path reference", "http://example.org/dir/file", "/y", "http://example.org/y"},
		{"relative merge", "http://example.org/dir/file", "x", "http://example.org/dir/x"},
		{"relative merge no trailing file", "http://example.org/dir/", "x", "http://example.org/dir/x"},
		{"dot-dot segment", "http://example.org/a/b/c", "../x", "http://example.org/a/x"},
		{"dot segment", "http://example.org/a/b/c", "./x", "http://example.org/a/b/x"},
		{"base with no path", "http://example.org", "x", "http://example.org/x"},
		{"base with userinfo and port", "http://user@example.org:8080/a/b", "../x", "http://user@example.org:8080/x"},
		{"multiple dot-dot", "http://example.org/a/b/c/d", "../../x", "http://example.org/a/x"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := resolve(c.base, c.ref)
			if got != c.expected {
				t.Errorf("resolve(%q, %q) = %q, want %q", c.base, c.ref, got, c.expected)
			}
		})
	}
}
