package rdfxml

// Syntactic validation, per §4.5. Validator actions run before any triple
// is emitted for the element they check, matching the teacher's
// reifyCheck/attrRDF-driven checks in rdfxml.go, which likewise fail fast
// before any triple for the offending element reaches d.triples.

// forbiddenNodeElements are RDF-namespaced local names that may never
// appear in node-element position.
var forbiddenNodeElements = map[string]bool{
	elRDF: true, attrID: true, attrAbout: true, attrBagID: true,
	attrParseType: true, attrResource: true, attrNodeID: true, attrDatatype: true,
	elLi: true, elAboutEach: true, elAboutEachPrefix: true,
}

// forbiddenPropertyElements are RDF-namespaced local names that may never
// appear in property-element position.
var forbiddenPropertyElements = map[string]bool{
	elDescription: true, elRDF: true, attrID: true, attrAbout: true, attrBagID: true,
	attrParseType: true, attrResource: true, attrNodeID: true, attrDatatype: true,
	elAboutEach: true, elAboutEachPrefix: true,
}

func checkDeprecatedAndLi(attrs classifiedAttrs) error {
	for _, name := range []string{elAboutEach, elAboutEachPrefix, attrBagID} {
		if _, ok := attrs.rdf[name]; ok {
			return newParseError(DeprecatedAttribute, "rdf:%s is not permitted by this syntax", name)
		}
	}
	if _, ok := attrs.rdf[elLi]; ok {
		return newParseError(IllegalLiAttribute, "rdf:li may not appear as an attribute")
	}
	return nil
}

// validateNodeElement enforces §4.5's node-position rules: forbidden
// element names, the deprecated/li checks shared with property elements,
// the {about, ID, nodeID} mutual exclusion, and NCName validation of a
// present rdf:ID or rdf:nodeID.
func validateNodeElement(el *xmlElement, attrs classifiedAttrs) error {
	if el.NS == rdfNS && forbiddenNodeElements[el.Local] {
		return newParseError(ForbiddenElement, "rdf:%s is not allowed as a node element", el.Local)
	}
	if err := checkDeprecatedAndLi(attrs); err != nil {
		return err
	}

	count := 0
	if _, ok := attrs.rdf[attrAbout]; ok {
		count++
	}
	if _, ok := attrs.rdf[attrID]; ok {
		count++
	}
	if _, ok := attrs.rdf[attrNodeID]; ok {
		count++
	}
	if count > 1 {
		return newParseError(ConflictingAttributes, "a node element may carry at most one of rdf:about, rdf:ID, rdf:nodeID")
	}

	if id, ok := attrs.rdf[attrID]; ok {
		if err := validateNCName(attrID, id); err != nil {
			return err
		}
	}
	if nodeID, ok := attrs.rdf[attrNodeID]; ok {
		if err := validateNCName(attrNodeID, nodeID); err != nil {
			return err
		}
	}
	return nil
}

// validatePropertyElement enforces §4.5's property-position rules:
// forbidden element names, the deprecated/li checks, the
// {resource, nodeID} / parseType mutual exclusion, and NCName validation
// of a present rdf:ID or rdf:nodeID.
func validatePropertyElement(el *xmlElement, attrs classifiedAttrs) error {
	if el.NS == rdfNS && forbiddenPropertyElements[el.Local] {
		return newParseError(ForbiddenElement, "rdf:%s is not allowed as a property element", el.Local)
	}
	if err := checkDeprecatedAndLi(attrs); err != nil {
		return err
	}

	_, hasResource := attrs.rdf[attrResource]
	_, hasNodeID := attrs.rdf[attrNodeID]
	_, hasParseType := attrs.rdf[attrParseType]
	if hasResource && hasNodeID {
		return newParseError(ConflictingAttributes, "a property element may not carry both rdf:resource and rdf:nodeID")
	}
	if hasParseType && (hasResource || hasNodeID) {
		return newParseError(ConflictingAttributes, "rdf:parseType may not be combined with rdf:resource or rdf:nodeID")
	}

	if id, ok := attrs.rdf[attrID]; ok {
		if err := validateNCName(attrID, id); err != nil {
			return err
		}
	}
	if nodeID, ok := attrs.rdf[attrNodeID]; ok {
		if err := validateNCName(attrNodeID, nodeID); err != nil {
			return err
		}
	}
	return nil
}

// registerRdfID records a resolved rdf:ID IRI in the document-scoped
// used_rdf_ids set (§3), failing with DuplicateRdfId if it is already
// present.
func registerRdfID(used map[string]bool, resolvedIRI string) error {
	if used[resolvedIRI] {
		return newParseError(DuplicateRdfId, "duplicate rdf:ID resolves to already-used IRI %q", resolvedIRI)
	}
	used[resolvedIRI] = true
	return nil
}
