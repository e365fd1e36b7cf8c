package rdfxml

import "strconv"

// bnodeMinter mints document-scoped blank node identifiers, matching §4.3:
// generated identifiers never collide with an rdf:nodeID-named blank node
// because the "genid" prefix is reserved for the minter alone.
//
// Grounded on the teacher's rdfXMLDecoder.bnodeN counter field in rdfxml.go,
// which is likewise incremented once per call and never reset mid-document.
type bnodeMinter struct {
	n int
}

// mint returns a fresh BNode, distinct from every previously minted one in
// the lifetime of this minter.
func (m *bnodeMinter) mint() BNode {
	m.n++
	return BNode{Value: "_:genid" + strconv.Itoa(m.n)}
}

// named returns the BNode for an explicit rdf:nodeID value. Uniqueness
// across the document comes from the NCName itself, not the minter.
func named(ncname string) BNode {
	return BNode{Value: "_:" + ncname}
}
