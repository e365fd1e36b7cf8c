package rdfxml

import "strings"

// resolve implements RFC 3986 §5 reference resolution against a base, per
// §4.1 of the specification. It is a pure function: given the same base and
// reference it always returns the same result, and it never fails, matching
// the teacher's rdfXMLDecoder.resolve, which is likewise panic-free on
// malformed input. The base is never rejected as malformed: a base without a
// "scheme://" prefix, including the empty base, is merged as a plain path
// (resolve("", "x") is "/x"), so a relative reference is not returned
// unchanged because of its base.
func resolve(base, ref string) string {
	if ref == "" {
		return stripFragment(base)
	}

	if hasScheme(ref) {
		return ref
	}

	if strings.HasPrefix(ref, "#") {
		return stripFragment(base) + ref
	}

	if strings.HasPrefix(ref, "//") {
		return schemeOf(base) + ":" + ref
	}

	if strings.HasPrefix(ref, "/") {
		return schemeOf(base) + "://" + authorityOf(base) + ref
	}

	// Merge: base path up to and including its last '/' (or "/" if base has
	// no path), then the reference, then dot-segment removal.
	merged := mergePath(base, ref)
	return removeDotSegments(merged)
}

// hasScheme reports whether ref contains a scheme, per the spec's
// intentionally loose "contains ://" rule (§4.1).
func hasScheme(ref string) bool {
	return strings.Contains(ref, "://")
}

// stripFragment removes a trailing "#fragment" from an IRI, if present.
func stripFragment(iri string) string {
	if i := strings.IndexByte(iri, '#'); i >= 0 {
		return iri[:i]
	}
	return iri
}

// schemeOf returns the scheme component of an absolute IRI (without the
// trailing colon), e.g. "http" for "http://example.org/x".
func schemeOf(iri string) string {
	if i := strings.Index(iri, "://"); i >= 0 {
		return iri[:i]
	}
	if i := strings.IndexByte(iri, ':'); i >= 0 {
		return iri[:i]
	}
	return ""
}

// authorityOf returns the authority component (optional "user@" and
// ":port" included) of an absolute IRI, e.g. "user@example.org:8080".
func authorityOf(iri string) string {
	i := strings.Index(iri, "://")
	if i < 0 {
		return ""
	}
	rest := iri[i+3:]
	end := len(rest)
	for j, r := range rest {
		if r == '/' || r == '?' || r == '#' {
			end = j
			break
		}
	}
	return rest[:end]
}

// mergePath implements RFC 3986 §5.2.2's path merge step: take the path of
// base up to and including its last '/' (or "/" if base has no path), and
// append ref.
func mergePath(base, ref string) string {
	authEnd := strings.Index(base, "://")
	pathStart := 0
	if authEnd >= 0 {
		pathStart = authEnd + 3
		if slash := strings.IndexByte(base[pathStart:], '/'); slash >= 0 {
			pathStart += slash
		} else {
			// Base has a scheme and authority but no path at all.
			return base + "/" + ref
		}
	}
	basePath := base[pathStart:]
	if last := strings.LastIndexByte(basePath, '/'); last >= 0 {
		return base[:pathStart] + basePath[:last+1] + ref
	}
	return base[:pathStart] + "/" + ref
}

// removeDotSegments implements the RFC 3986 §5.2.4 algorithm over an
// input/output buffer, consuming "../", "./", "/./", "/../" and a final
// "." or "..".
func removeDotSegments(input string) string {
	in := input
	var out strings.Builder

	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			removeLastSegment(&out)
		case in == "/..":
			in = "/"
			removeLastSegment(&out)
		case in == ".", in == "..":
			in = ""
		default:
			seg, rest := firstSegment(in)
			out.WriteString(seg)
			in = rest
		}
	}
	return out.String()
}

// firstSegment splits off the first path segment of in: either a leading
// "/" plus the following non-"/" run, or (when in doesn't start with "/")
// just the leading non-"/" run.
func firstSegment(in string) (seg, rest string) {
	i := 0
	if in[0] == '/' {
		i = 1
	}
	for i < len(in) && in[i] != '/' {
		i++
	}
	return in[:i], in[i:]
}

// removeLastSegment strips the last "/segment" (or remaining content) from
// the output buffer, as required when consuming a "/../" segment.
func removeLastSegment(out *strings.Builder) {
	s := out.String()
	last := strings.LastIndexByte(s, '/')
	if last < 0 {
		out.Reset()
		return
	}
	out.Reset()
	out.WriteString(s[:last])
}
