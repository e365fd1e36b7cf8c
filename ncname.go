package rdfxml

// NCName validation, per the XML Namespaces "NCName ::= NameStartChar
// (NameChar)*" production (with the colon excluded from both alphabets).
//
// The range-table-plus-check technique below is adapted from the teacher's
// rune.go, which uses identically-shaped range tables (pnTab/plTab, checked
// with a check(r, tab) helper) to classify Turtle PN_CHARS. Here the tables
// hold the XML Names NameStartChar/NameChar code point ranges instead.

// nameStartCharTab holds NameStartChar ranges (pairs of low, high,
// inclusive), per the XML Namespaces recommendation, colon excluded.
var nameStartCharTab = []rune{
	'A', 'Z',
	'_', '_',
	'a', 'z',
	0x00C0, 0x00D6,
	0x00D8, 0x00F6,
	0x00F8, 0x02FF,
	0x0370, 0x037D,
	0x037F, 0x1FFF,
	0x200C, 0x200D,
	0x2070, 0x218F,
	0x2C00, 0x2FEF,
	0x3001, 0xD7FF,
	0xF900, 0xFDCF,
	0xFDF0, 0xFFFD,
	0x10000, 0xEFFFF,
}

// nameCharTab holds the additional NameChar ranges that may follow the
// first character (on top of everything in nameStartCharTab).
var nameCharTab = []rune{
	'-', '-',
	'.', '.',
	'0', '9',
	0x00B7, 0x00B7,
	0x0300, 0x036F,
	0x203F, 0x2040,
}

func inRanges(r rune, tab []rune) bool {
	for i := 0; i < len(tab); i += 2 {
		if r >= tab[i] && r <= tab[i+1] {
			return true
		}
	}
	return false
}

func isNameStartChar(r rune) bool {
	return inRanges(r, nameStartCharTab)
}

func isNameChar(r rune) bool {
	return inRanges(r, nameStartCharTab) || inRanges(r, nameCharTab)
}

// isNCName reports whether s is a non-empty NCName: NameStartChar followed
// by zero or more NameChar, with no colon anywhere (the colon is excluded
// from both alphabets above, so a colon simply fails isNameChar).
func isNCName(s string) bool {
	if s == "" {
		return false
	}
	first := true
	for _, r := range s {
		if first {
			if !isNameStartChar(r) {
				return false
			}
			first = false
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// validateNCName returns an InvalidNCName ParseError when value is not a
// valid NCName; attrName is the rdf:ID / rdf:nodeID attribute local name,
// used only for the error message.
func validateNCName(attrName, value string) error {
	if !isNCName(value) {
		return newParseError(InvalidNCName, "rdf:%s is not a valid NCName: %q", attrName, value)
	}
	return nil
}
