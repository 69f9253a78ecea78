package jsonls

import (
	"net/url"
	"regexp"
)

// colorHexPattern and emailPattern are the two fixed format regexes
// this service honors without delegating to a parser.
var (
	colorHexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3,4}|([0-9A-Fa-f]{2}){3,4})$`)

	// emailPattern is the ECMA-derived pattern: a dot-separated local
	// part or a quoted local part, an '@', and either a dotted-quad
	// literal or a DNS-style hostname.
	emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
)

// isURIFormat parses s with the standard library's URI parser, which
// this component consumes opaquely rather than reimplementing. An
// empty string always fails; "uri" additionally requires a non-empty
// scheme, while "uri-reference" accepts a schemeless (relative)
// reference.
func isURIFormat(s string, requireScheme bool) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if requireScheme && u.Scheme == "" {
		return false
	}
	return true
}
