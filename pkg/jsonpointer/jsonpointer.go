// Package jsonpointer renders AST paths as RFC 6901 JSON Pointer
// strings, the format the CLI's "parse --tree" path listing uses.
//
// Adapted from the token-list JsonPointer design in
// itayankri-go-json-schema/jsonpointer: that implementation tokenizes a
// pointer string and walks decoded JSON data one token at a time; this
// version runs the other direction, rendering a jsonls.GetPath result
// (already-typed path segments) into the same tokenized string shape,
// and tokenizing a pointer string back into unescaped segments for the
// reverse direction.
package jsonpointer

import (
	"strconv"
	"strings"

	"github.com/jsonls-io/jsonls"
)

// SyntaxError reports a pointer string that does not start with '/'.
type SyntaxError struct {
	Pointer string
}

func (e *SyntaxError) Error() string {
	return "json pointer must start with '/': " + e.Pointer
}

// FromPath renders a document path, as returned by jsonls.GetPath, as
// an RFC 6901 pointer string such as "/a/0/b". The root path (no
// segments) renders as "".
func FromPath(path []jsonls.Location) string {
	if len(path) == 0 {
		return ""
	}
	var b strings.Builder
	for _, loc := range path {
		b.WriteByte('/')
		if loc.IsIndex {
			b.WriteString(strconv.Itoa(loc.Index))
			continue
		}
		b.WriteString(escape(loc.PropertyName))
	}
	return b.String()
}

// Parse splits an RFC 6901 pointer string into its unescaped tokens.
// An empty string or a bare "/" both denote the root and return no
// tokens.
func Parse(pointer string) ([]string, error) {
	if pointer == "" || pointer == "/" {
		return nil, nil
	}
	if pointer[0] != '/' {
		return nil, &SyntaxError{Pointer: pointer}
	}
	parts := strings.Split(pointer, "/")[1:]
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = unescape(p)
	}
	return tokens, nil
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, "~1", "/")
	s = strings.ReplaceAll(s, "~0", "~")
	return s
}
