package rdfxml

// Namespace URIs and element/attribute local names fixed by the RDF/XML
// grammar. Adapted from the constant block at the top of the teacher's
// rdfxml.go (rdfNS, xmlNS and the elXxx/attrXxx identifiers).
const (
	rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xmlNS = "http://www.w3.org/XML/1998/namespace"
)

// Core syntax element local names, within rdfNS.
const (
	elRDF         = "RDF"
	elDescription = "Description"
	elLi          = "li"
	elBag         = "Bag"
	elSeq         = "Seq"
	elAlt         = "Alt"
	elStatement   = "Statement"
	elProperty    = "Property"
	elList        = "List"
	elXMLLiteral  = "XMLLiteral"

	// Forbidden in this syntax entirely (§4.5).
	elAboutEach       = "aboutEach"
	elAboutEachPrefix = "aboutEachPrefix"
)

// Core syntax attribute local names, within rdfNS.
const (
	attrAbout     = "about"
	attrID        = "ID"
	attrNodeID    = "nodeID"
	attrResource  = "resource"
	attrDatatype  = "datatype"
	attrParseType = "parseType"
	attrLi        = "li"
	attrBagID     = "bagID" // deprecated (§4.5)
)

// xml: attribute local names.
const (
	xmlBase = "base"
	xmlLang = "lang"
)
