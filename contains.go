package jsonls

// evaluateContains succeeds if any item validates cleanly against
// schema.Contains. Probing items uses a no-op collector, matching
// propertyNames, since the elements tried and rejected along the way
// are not themselves a user-facing association.
func evaluateContains(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	if schema.Contains == nil {
		return
	}
	containsSchema := normalizeSchemaRef(schema.Contains)

	for _, item := range node.Items {
		sub := NewValidationResult()
		Validate(item, containsSchema, sub, NoopCollector{})
		if !sub.HasProblems() {
			return
		}
	}
	result.AddProblem(newSchemaProblem(node.Range(), schema, "Array does not contain a matching item."))
}
