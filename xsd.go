package rdfxml

// Well-known datatype and RDF vocabulary IRIs used by the parse driver.
//
// Adapted from the teacher's xsd package (github.com/knakk/rdf/xsd), which
// exported these as a separate package of rdf.IRI values; here they are
// unexported Iri package variables local to the driver, since this parser only
// needs the handful the RDF/XML grammar itself references (plain literals,
// XML literals, and the RDF collection/reification vocabulary) rather than
// the full XML Schema datatype catalogue.
var (
	xsdString = Iri{Value: "http://www.w3.org/2001/XMLSchema#string"}

	rdfLangString = Iri{Value: rdfNS + "langString"}
	rdfXMLLiteral = Iri{Value: rdfNS + "XMLLiteral"}

	rdfType      = Iri{Value: rdfNS + "type"}
	rdfFirst     = Iri{Value: rdfNS + "first"}
	rdfRest      = Iri{Value: rdfNS + "rest"}
	rdfNil       = Iri{Value: rdfNS + "nil"}
	rdfSubject   = Iri{Value: rdfNS + "subject"}
	rdfPredicate = Iri{Value: rdfNS + "predicate"}
	rdfObject    = Iri{Value: rdfNS + "object"}
	rdfStatement = Iri{Value: rdfNS + "Statement"}
)
