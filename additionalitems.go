package jsonls

// evaluateAdditionalItems governs array elements beyond the tuple
// prefix described by a positional "items" list: a schema validates
// them, false flags the array as having too many items, and an absent
// additionalItems permits them.
func evaluateAdditionalItems(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector, prefixLen int) {
	if schema.AdditionalItems == nil {
		return
	}
	extra := normalizeSchemaRef(schema.AdditionalItems)

	if extra.IsFalse() {
		if len(node.Items) > prefixLen {
			result.AddProblem(newSchemaProblem(node.Range(), schema, "Array has too many items."))
		}
		return
	}

	for i := prefixLen; i < len(node.Items); i++ {
		Validate(node.Items[i], extra, result, collector)
	}
}
