package rdfxml

import "strings"

// Metadata carries auxiliary information about a completed parse.
type Metadata struct {
	// TripleCount is populated when Graph is a *MemoryGraph; zero for a
	// caller-supplied Graph this package cannot introspect.
	TripleCount int
}

// Parsed is the result of a successful Parse call, per §6.
type Parsed struct {
	Graph      Graph
	Format     string
	RawContent []byte
	Metadata   Metadata
}

// Parse implements §4.10's top-level handler. If graph is nil, a fresh
// *MemoryGraph is used. Every failure path is surfaced as the outer
// ParseError described in §7 ("every inner error is re-thrown ... wrapped
// in an outer ParseError"), including the sniff and XML well-formedness
// failures of steps 1–3, not only the Parse Driver failures of step 4 —
// the uniform wrap is what makes every returned error, regardless of
// which stage produced it, walkable the same way via errors.As.
func Parse(data []byte, graph Graph) (*Parsed, error) {
	if graph == nil {
		graph = NewMemoryGraph()
	}

	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if !strings.HasPrefix(trimmed, "<") || !CanHandle(data) {
		return nil, wrapTopLevel(newParseError(NotRdfXml, "Content does not appear to be valid RDF/XML"))
	}
	if looksLikeHTML(data) {
		return nil, wrapTopLevel(newParseError(NotRdfXml, "Content does not appear to be valid RDF/XML"))
	}

	root, err := buildTree(data)
	if err != nil {
		return nil, wrapTopLevel(newParseError(InvalidXml, "Invalid RDF/XML content: %s", err.Error()))
	}

	if err := driveDocument(root, graph); err != nil {
		return nil, wrapTopLevel(err)
	}

	meta := Metadata{}
	if mg, ok := graph.(*MemoryGraph); ok {
		meta.TripleCount = len(mg.Triples)
	}

	return &Parsed{
		Graph:      graph,
		Format:     FormatName(),
		RawContent: data,
		Metadata:   meta,
	}, nil
}
