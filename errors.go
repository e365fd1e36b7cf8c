package rdfxml

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a parse failure. See §7 of the specification.
type ErrorKind int

// Error kinds.
const (
	// NotRdfXml means the pre-parse sniff rejected the input.
	NotRdfXml ErrorKind = iota
	// InvalidXml means the injected XML parser reported a well-formedness
	// failure.
	InvalidXml
	// InvalidNCName means a rdf:ID or rdf:nodeID value is not a valid
	// XML Namespaces NCName.
	InvalidNCName
	// DuplicateRdfId means a resolved rdf:ID IRI was already introduced
	// earlier in the same document.
	DuplicateRdfId
	// ForbiddenElement means a RDF core element name appeared in a
	// position the grammar disallows.
	ForbiddenElement
	// DeprecatedAttribute means rdf:aboutEach, rdf:aboutEachPrefix or
	// rdf:bagID was used.
	DeprecatedAttribute
	// ConflictingAttributes means a disallowed attribute combination was
	// found on a node or property element.
	ConflictingAttributes
	// IllegalLiAttribute means rdf:li appeared as an attribute rather
	// than an element.
	IllegalLiAttribute
	// RecursionLimitExceeded means element nesting exceeded
	// MaxElementDepth (§9's recursion bound).
	RecursionLimitExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case NotRdfXml:
		return "NotRdfXml"
	case InvalidXml:
		return "InvalidXml"
	case InvalidNCName:
		return "InvalidNCName"
	case DuplicateRdfId:
		return "DuplicateRdfId"
	case ForbiddenElement:
		return "ForbiddenElement"
	case DeprecatedAttribute:
		return "DeprecatedAttribute"
	case ConflictingAttributes:
		return "ConflictingAttributes"
	case IllegalLiAttribute:
		return "IllegalLiAttribute"
	case RecursionLimitExceeded:
		return "RecursionLimitExceeded"
	default:
		return "Unknown"
	}
}

// ParseError is the error type returned by every failed parse. Internal
// component errors (validator, resolver, driver) are all surfaced as a
// ParseError with a Kind; the top-level Parse call wraps the first one
// encountered in an outer ParseError per §7, preserving the chain via
// Unwrap. ParseError has no Cause method, so github.com/pkg/errors' Cause
// returns the outer error itself rather than the inner one.
type ParseError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *ParseError) Error() string { return e.Message }

// Unwrap lets errors.Is/errors.As/errors.Unwrap from the standard library
// walk the chain.
func (e *ParseError) Unwrap() error { return e.cause }

// newParseError constructs a leaf ParseError (no cause).
func newParseError(kind ErrorKind, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapTopLevel builds the outer error required by §7 / §4.10 step 4: the
// message, built with github.com/pkg/errors' Wrap, is prefixed
// "RDF/XML parsing failed: ", and the inner error is kept as the cause
// returned by Unwrap. The outer error carries the inner ParseError's Kind
// (InvalidXml for any other inner error).
func wrapTopLevel(inner error) error {
	wrapped := errors.Wrap(inner, "RDF/XML parsing failed")
	if pe, ok := inner.(*ParseError); ok {
		return &ParseError{Kind: pe.Kind, Message: wrapped.Error(), cause: inner}
	}
	return &ParseError{Kind: InvalidXml, Message: wrapped.Error(), cause: inner}
}
