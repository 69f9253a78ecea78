package jsonls

// evaluatePropertyNames validates every key's string node against
// schema.PropertyNames using a no-op collector — key validation is a
// probe against the object's shape, not a user-facing association a
// hover/completion feature would want surfaced.
func evaluatePropertyNames(node *Node, schema *Schema, result *ValidationResult) {
	if schema.PropertyNames == nil {
		return
	}
	sub := normalizeSchemaRef(schema.PropertyNames)
	for _, prop := range node.Properties {
		if prop.PropertyKey == nil {
			continue
		}
		keyResult := NewValidationResult()
		Validate(prop.PropertyKey, sub, keyResult, NoopCollector{})
		result.Merge(keyResult)
	}
}
