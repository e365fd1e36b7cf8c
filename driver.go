package rdfxml

import "strconv"

// MaxElementDepth bounds node/property element nesting, per §9's recursion
// guard ("cap nesting, e.g. at a configurable 1000, to prevent stack
// exhaustion on hostile input"). The teacher's rdfXMLDecoder has no such
// guard, since its state machine is iterative rather than recursive; this
// walker is a genuine tree recursion, so the bound is new.
const MaxElementDepth = 1000

// parseState holds everything created at the start of one parse and
// discarded when it returns (§3's "Parse-scoped state" / "Lifecycle").
type parseState struct {
	graph      Graph
	bnodes     bnodeMinter
	usedRdfIds map[string]bool
}

// driveDocument walks the XML tree rooted at root per §4.6, emitting
// triples into graph. If root is not an {rdf-ns}RDF element, it produces
// an empty graph rather than an error, per the root-handling rule.
func driveDocument(root *xmlElement, graph Graph) error {
	st := &parseState{graph: graph, usedRdfIds: make(map[string]bool)}

	if root.NS != rdfNS || root.Local != elRDF {
		return nil
	}

	parentBase := ""
	rootAttrs := classifyAttrs(root)
	if b, ok := rootAttrs.xml[xmlBase]; ok {
		parentBase = b
	}

	for _, child := range root.Children {
		if _, err := st.processNode(child, parentBase, 0); err != nil {
			return err
		}
	}
	return nil
}

// resolveElementBase implements §4.6's base thread: xml:base on the
// element, if present, resolved against the inherited base; otherwise the
// inherited base unchanged.
func resolveElementBase(attrs classifiedAttrs, parentBase string) string {
	if b, ok := attrs.xml[xmlBase]; ok {
		return resolve(parentBase, b)
	}
	return parentBase
}

// processNode implements §4.6's process_node, returning the element's
// subject term.
func (st *parseState) processNode(el *xmlElement, parentBase string, depth int) (Subject, error) {
	if depth > MaxElementDepth {
		return nil, newParseError(RecursionLimitExceeded, "element nesting exceeds %d", MaxElementDepth)
	}

	attrs := classifyAttrs(el)
	if err := validateNodeElement(el, attrs); err != nil {
		return nil, err
	}

	elementBase := resolveElementBase(attrs, parentBase)

	if id, ok := attrs.rdf[attrID]; ok {
		resolved := resolve(elementBase, "#"+id)
		if err := registerRdfID(st.usedRdfIds, resolved); err != nil {
			return nil, err
		}
	}

	var subject Subject
	switch {
	case hasKey(attrs.rdf, attrAbout):
		subject = Iri{Value: resolve(elementBase, attrs.rdf[attrAbout])}
	case hasKey(attrs.rdf, attrID):
		subject = Iri{Value: resolve(elementBase, "#"+attrs.rdf[attrID])}
	case hasKey(attrs.rdf, attrNodeID):
		subject = named(attrs.rdf[attrNodeID])
	default:
		subject = st.bnodes.mint()
	}

	if el.NS != rdfNS || el.Local != elDescription {
		typeIri := Iri{Value: el.NS + el.Local}
		if err := st.graph.AddResource(subject, rdfType, typeIri); err != nil {
			return nil, err
		}
	}

	for _, pa := range attrs.prop {
		pred := Iri{Value: pa.NS + pa.Local}
		if err := st.graph.AddLiteral(subject, pred, Literal{Lexical: pa.Value}); err != nil {
			return nil, err
		}
	}

	liCounter := 1
	for _, child := range el.Children {
		if err := st.processProperty(child, subject, elementBase, &liCounter, depth+1); err != nil {
			return nil, err
		}
	}
	return subject, nil
}

// hasKey reports whether m contains key, distinguishing "absent" from
// "present with empty value" (rdf:about="" is meaningful, per §8's
// boundary case).
func hasKey(m map[string]string, key string) bool {
	_, ok := m[key]
	return ok
}

// processProperty implements §4.6's process_property, given the parent
// subject S, the inherited base B, and a shared li_counter.
func (st *parseState) processProperty(el *xmlElement, subject Subject, base string, liCounter *int, depth int) error {
	if depth > MaxElementDepth {
		return newParseError(RecursionLimitExceeded, "element nesting exceeds %d", MaxElementDepth)
	}

	attrs := classifyAttrs(el)
	if err := validatePropertyElement(el, attrs); err != nil {
		return err
	}

	propBase := resolveElementBase(attrs, base)

	pred := Iri{Value: el.NS + el.Local}
	if el.NS == rdfNS && el.Local == elLi {
		pred = Iri{Value: rdfNS + "_" + strconv.Itoa(*liCounter)}
		*liCounter++
	}

	var reifySubj Iri
	hasReify := false
	if id, ok := attrs.rdf[attrID]; ok {
		resolved := resolve(propBase, "#"+id)
		if err := registerRdfID(st.usedRdfIds, resolved); err != nil {
			return err
		}
		reifySubj = Iri{Value: resolved}
		hasReify = true
	}

	parseTypeVal, hasParseType := attrs.rdf[attrParseType]
	resourceVal, hasResource := attrs.rdf[attrResource]
	nodeIDVal, hasNodeIDAttr := attrs.rdf[attrNodeID]
	datatypeVal, hasDatatype := attrs.rdf[attrDatatype]
	langVal, hasLang := attrs.xml[xmlLang]

	var objTerm Term
	var err error

	switch {
	case hasParseType:
		objTerm, err = st.processParseType(el, subject, pred, propBase, parseTypeVal, depth)
		if err != nil {
			return err
		}
	case hasResource:
		obj := Iri{Value: resolve(propBase, resourceVal)}
		if err := st.graph.AddResource(subject, pred, obj); err != nil {
			return err
		}
		objTerm = obj
	case hasNodeIDAttr:
		obj := named(nodeIDVal)
		if err := st.graph.AddResource(subject, pred, obj); err != nil {
			return err
		}
		objTerm = obj
	case len(el.Children) > 0:
		childSubj, err := st.processNode(el.Children[0], propBase, depth+1)
		if err != nil {
			return err
		}
		if err := st.graph.AddResource(subject, pred, childSubj); err != nil {
			return err
		}
		objTerm = childSubj
	default:
		lit := Literal{Lexical: el.Text}
		switch {
		case hasLang && langVal != "":
			lit.Lang = langVal
		case hasDatatype:
			lit.Datatype = Iri{Value: resolve(propBase, datatypeVal)}
		}
		if err := st.graph.AddLiteral(subject, pred, lit); err != nil {
			return err
		}
		objTerm = lit
	}

	if hasReify {
		if err := st.emitReification(reifySubj, subject, pred, objTerm); err != nil {
			return err
		}
	}
	return nil
}

// emitReification implements §4.8: four triples describing the statement
// (subject, predicate, object) as a resource of type rdf:Statement.
func (st *parseState) emitReification(stmt Iri, subject Subject, pred Iri, obj Term) error {
	if err := st.graph.AddResource(stmt, rdfType, rdfStatement); err != nil {
		return err
	}
	if err := st.graph.AddResource(stmt, rdfSubject, subject); err != nil {
		return err
	}
	if err := st.graph.AddResource(stmt, rdfPredicate, pred); err != nil {
		return err
	}
	switch o := obj.(type) {
	case Literal:
		return st.graph.AddLiteral(stmt, rdfObject, o)
	case Subject:
		return st.graph.AddResource(stmt, rdfObject, o)
	}
	return nil
}

// processParseType implements §4.7: the Resource/Collection/Literal
// variants of rdf:parseType. Any value other than "Resource" or
// "Collection" is treated as "Literal", per the spec's "any unknown value
// is treated as Literal" rule.
func (st *parseState) processParseType(el *xmlElement, subject Subject, pred Iri, base, parseType string, depth int) (Term, error) {
	switch parseType {
	case "Resource":
		b := st.bnodes.mint()
		if err := st.graph.AddResource(subject, pred, b); err != nil {
			return nil, err
		}
		liCounter := 1
		for _, child := range el.Children {
			if err := st.processProperty(child, b, base, &liCounter, depth+1); err != nil {
				return nil, err
			}
		}
		return b, nil

	case "Collection":
		children := el.Children
		if len(children) == 0 {
			if err := st.graph.AddResource(subject, pred, rdfNil); err != nil {
				return nil, err
			}
			return rdfNil, nil
		}

		head := st.bnodes.mint()
		if err := st.graph.AddResource(subject, pred, head); err != nil {
			return nil, err
		}
		cur := Subject(head)
		for i, c := range children {
			nodeI, err := st.processNode(c, base, depth+1)
			if err != nil {
				return nil, err
			}
			if err := st.graph.AddResource(cur, rdfFirst, nodeI); err != nil {
				return nil, err
			}
			if i < len(children)-1 {
				next := st.bnodes.mint()
				if err := st.graph.AddResource(cur, rdfRest, next); err != nil {
					return nil, err
				}
				cur = next
			} else {
				if err := st.graph.AddResource(cur, rdfRest, rdfNil); err != nil {
					return nil, err
				}
			}
		}
		return head, nil

	default:
		lit := Literal{Lexical: el.InnerXML, Datatype: rdfXMLLiteral}
		if err := st.graph.AddLiteral(subject, pred, lit); err != nil {
			return nil, err
		}
		return lit, nil
	}
}
