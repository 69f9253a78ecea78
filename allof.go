package jsonls

// evaluateAllOf validates node against every subschema in schema.AllOf,
// directly into the caller's result and collector. Unlike anyOf/oneOf,
// every branch here is meant to hold, so there is nothing to score or
// discard: each branch's diagnostics and schema associations are all
// equally relevant to the caller.
func evaluateAllOf(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	for _, sub := range schema.AllOf {
		Validate(node, normalizeSchemaRef(sub), result, collector)
	}
}
