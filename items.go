package jsonls

// evaluateItems handles both shapes of "items": a single schema applied
// to every element, or the draft-07 positional (tuple) form where
// ItemsList[i] governs element i and additionalItems governs the rest.
func evaluateItems(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	switch {
	case len(schema.ItemsList) > 0:
		prefixLen := len(schema.ItemsList)
		for i, item := range node.Items {
			if i >= prefixLen {
				break
			}
			Validate(item, normalizeSchemaRef(schema.ItemsList[i]), result, collector)
		}
		evaluateAdditionalItems(node, schema, result, collector, prefixLen)
	case schema.Items != nil:
		itemSchema := normalizeSchemaRef(schema.Items)
		for _, item := range node.Items {
			Validate(item, itemSchema, result, collector)
		}
	}
}
