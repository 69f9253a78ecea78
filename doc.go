// Package jsonls implements the core of a JSON document service for
// editor tooling: a recovering parser that turns JSON/JSONC source text
// into a position-annotated syntax tree, and a draft-07 subset schema
// validator that walks that tree against a JSON Schema, producing
// diagnostics and a record of which schemas applied to which nodes.
//
// The scanner, JSON-Schema $ref resolution, and localization of
// messages are treated as external concerns and are either consumed
// through a narrow interface (Scanner) or left to the caller.
package jsonls
