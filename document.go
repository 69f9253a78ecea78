package jsonls

// Validate runs the validator over d's root against schema with a
// no-op collector, returning only the accumulated diagnostics. A nil
// root (empty document) or nil schema yields no diagnostics.
func (d *Document) Validate(schema *Schema) []Problem {
	if d.Root == nil || schema == nil {
		return nil
	}
	result := NewValidationResult()
	Validate(d.Root, normalizeSchemaRef(schema), result, NoopCollector{})
	return result.Problems
}

// GetMatchingSchemas runs the validator with a collector focused on
// focusOffset, returning every (node, schema) association recorded
// along the way. A negative focusOffset disables pruning, so every
// node in the tree qualifies; exclude, if non-nil, omits one node from
// consideration (used by completion to skip the node under the cursor
// while it is being typed).
func (d *Document) GetMatchingSchemas(schema *Schema, focusOffset int, exclude *Node) []SchemaMatch {
	if d.Root == nil || schema == nil {
		return nil
	}
	collector := NewFocusedCollector(focusOffset, exclude)
	result := NewValidationResult()
	Validate(d.Root, normalizeSchemaRef(schema), result, collector)
	return collector.Matches
}
