package rdfxml

// Attribute classification, per §4.4: partitions an element's attributes
// into RDF core attributes, xml:* attributes, and property attributes.
//
// Grounded on the teacher's attrRDF/attrXMLNS/attrXML/attrRest helpers in
// rdfxml.go, which perform the same three-way split by inspecting each
// attribute's namespace and local name; here the split is a single pass
// producing named results instead of several single-purpose predicates.

// rdfCoreAttrNames is the set of unqualified local names the RDF/XML
// grammar still recognizes as RDF-core attributes even without an explicit
// rdf: prefix (§4.4(b)).
var rdfCoreAttrNames = map[string]bool{
	attrAbout:         true,
	attrResource:      true,
	attrID:            true,
	attrNodeID:        true,
	attrParseType:     true,
	attrDatatype:      true,
	attrBagID:         true,
	elAboutEach:       true,
	elAboutEachPrefix: true,
}

// propAttr is a single property attribute: an expanded-name predicate and
// its string value, in document order.
type propAttr struct {
	NS, Local, Value string
}

// classifiedAttrs is the result of classifying one element's attributes.
type classifiedAttrs struct {
	rdf  map[string]string // local name -> value
	xml  map[string]string // local name -> value
	prop []propAttr
}

// classifyAttrs partitions el's attributes per §4.4. xmlns declarations
// (Name.Space == "xmlns", or an unqualified "xmlns" attribute) are not
// RDF, xml:, or property attributes and are skipped entirely.
func classifyAttrs(el *xmlElement) classifiedAttrs {
	out := classifiedAttrs{
		rdf: make(map[string]string),
		xml: make(map[string]string),
	}

	for _, a := range el.Attrs {
		switch {
		case a.NS == "xmlns" || (a.NS == "" && a.Local == "xmlns"):
			continue
		case a.NS == rdfNS:
			out.rdf[a.Local] = a.Value
		case a.NS == xmlNS:
			out.xml[a.Local] = a.Value
		case a.NS == "" && rdfCoreAttrNames[a.Local]:
			if _, exists := out.rdf[a.Local]; !exists {
				out.rdf[a.Local] = a.Value
			}
		case a.NS == "":
			// Unqualified, not an RDF-core name: not a meaningful property
			// attribute per §4.4 (property attributes require a non-empty
			// namespace), so it is dropped.
		default:
			out.prop = append(out.prop, propAttr{NS: a.NS, Local: a.Local, Value: a.Value})
		}
	}
	return out
}
