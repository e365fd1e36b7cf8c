package rdfxml

import "testing"

func TestBuildTreeBasic(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="` + rdfNS + `"><rdf:Description rdf:about="x">hi</rdf:Description></rdf:RDF>`
	root, err := buildTree([]byte(doc))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	if root.Local != elRDF || root.NS != rdfNS {
		t.Fatalf("root = %+v", root)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}
	child := root.Children[0]
	if child.Text != "hi" {
		t.Errorf("child.Text = %q, want %q", child.Text, "hi")
	}
}

func TestBuildTreeInnerXML(t *testing.T) {
	doc := `<rdf:RDF xmlns:rdf="` + rdfNS + `"><eg:body xmlns:eg="http://example.org/"><p>hi</p></eg:body></rdf:RDF>`
	root, err := buildTree([]byte(doc))
	if err != nil {
		t.Fatalf("buildTree: %v", err)
	}
	body := root.Children[0]
	if body.InnerXML != "<p>hi</p>" {
		t.Errorf("InnerXML = %q, want %q", body.InnerXML, "<p>hi</p>")
	}
}

func TestBuildTreeMalformed(t *testing.T) {
	_, err := buildTree([]byte(`<rdf:RDF><unclosed>`))
	if err == nil {
		t.Fatal("expected error for malformed XML")
	}
}
