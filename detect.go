package rdfxml

import "strings"

// CanHandle implements §4.9's format detector: a cheap, intentionally
// loose pre-filter. False positives are resolved by Parse itself.
func CanHandle(data []byte) bool {
	s := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(s, "<?xml") {
		return true
	}
	if strings.Contains(s, "<rdf:RDF") {
		return true
	}
	if strings.Contains(s, "<RDF") && strings.Contains(s, rdfNS) {
		return true
	}
	return false
}

// FormatName reports the format this package parses.
func FormatName() string {
	return "rdf/xml"
}

// looksLikeHTML implements §4.10 step 2: a cheap rejection of HTML
// documents that would otherwise pass the loose §4.9 sniff.
func looksLikeHTML(data []byte) bool {
	n := len(data)
	if n > 1024 {
		n = 1024
	}
	s := strings.ToLower(string(data[:n]))
	return strings.Contains(s, "<!doctype html") || strings.Contains(s, "<html")
}
