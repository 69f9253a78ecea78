package jsonls

// evaluateAdditionalProperties handles every property name left
// unprocessed by properties/patternProperties. A schema validates each
// remaining entry; false flags each remaining key as not allowed;
// absent (nil) permits extras outright.
func evaluateAdditionalProperties(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector, processed map[string]bool) {
	if schema.AdditionalProperties == nil {
		return
	}
	addlSchema := normalizeSchemaRef(schema.AdditionalProperties)

	for _, prop := range node.Properties {
		if prop.PropertyKey == nil || processed[prop.PropertyKey.StrValue] {
			continue
		}
		validatePropertyAgainst(prop, addlSchema, result, collector)
	}
}
