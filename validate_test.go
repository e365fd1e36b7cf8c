package rdfxml

import "testing"

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	return pe.Kind
}

func TestValidateNodeElementForbidden(t *testing.T) {
	el := &xmlElement{NS: rdfNS, Local: elLi}
	err := validateNodeElement(el, classifyAttrs(el))
	if err == nil || kindOf(t, err) != ForbiddenElement {
		t.Fatalf("expected ForbiddenElement, got %v", err)
	}
}

func TestValidatePropertyElementForbidden(t *testing.T) {
	el := &xmlElement{NS: rdfNS, Local: elDescription}
	err := validatePropertyElement(el, classifyAttrs(el))
	if err == nil || kindOf(t, err) != ForbiddenElement {
		t.Fatalf("expected ForbiddenElement, got %v", err)
	}
}

func TestValidateNodeElementConflictingAbout(t *testing.T) {
	el := &xmlElement{
		Attrs: []xmlAttr{
			{NS: rdfNS, Local: attrAbout, Value: "http://example.org/x"},
			{NS: rdfNS, Local: attrID, Value: "frag"},
		},
	}
	err := validateNodeElement(el, classifyAttrs(el))
	if err == nil || kindOf(t, err) != ConflictingAttributes {
		t.Fatalf("expected ConflictingAttributes, got %v", err)
	}
}

func TestValidatePropertyElementConflictingResourceNodeID(t *testing.T) {
	el := &xmlElement{
		Attrs: []xmlAttr{
			{NS: rdfNS, Local: attrResource, Value: "http://example.org/x"},
			{NS: rdfNS, Local: attrNodeID, Value: "n1"},
		},
	}
	err := validatePropertyElement(el, classifyAttrs(el))
	if err == nil || kindOf(t, err) != ConflictingAttributes {
		t.Fatalf("expected ConflictingAttributes, got %v", err)
	}
}

func TestValidatePropertyElementParseTypeConflict(t *testing.T) {
	el := &xmlElement{
		Attrs: []xmlAttr{
			{NS: rdfNS, Local: attrParseType, Value: "Resource"},
			{NS: rdfNS, Local: attrResource, Value: "http://example.org/x"},
		},
	}
	err := validatePropertyElement(el, classifyAttrs(el))
	if err == nil || kindOf(t, err) != ConflictingAttributes {
		t.Fatalf("expected ConflictingAttributes, got %v", err)
	}
}

func TestValidateDeprecatedAttribute(t *testing.T) {
	el := &xmlElement{
		Attrs: []xmlAttr{{NS: rdfNS, Local: attrBagID, Value: "x"}},
	}
	err := validateNodeElement(el, classifyAttrs(el))
	if err == nil || kindOf(t, err) != DeprecatedAttribute {
		t.Fatalf("expected DeprecatedAttribute, got %v", err)
	}
}

func TestValidateIllegalLiAttribute(t *testing.T) {
	el := &xmlElement{
		Attrs: []xmlAttr{{NS: rdfNS, Local: elLi, Value: "x"}},
	}
	err := validateNodeElement(el, classifyAttrs(el))
	if err == nil || kindOf(t, err) != IllegalLiAttribute {
		t.Fatalf("expected IllegalLiAttribute, got %v", err)
	}
}

func TestRegisterRdfIDDuplicate(t *testing.T) {
	used := make(map[string]bool)
	if err := registerRdfID(used, "http://example.org/x#a"); err != nil {
		t.Fatalf("unexpected error on first registration: %v", err)
	}
	err := registerRdfID(used, "http://example.org/x#a")
	if err == nil || kindOf(t, err) != DuplicateRdfId {
		t.Fatalf("expected DuplicateRdfId, got %v", err)
	}
}
