package jsonls

// evaluateProperties validates each named property's value against its
// subschema. Every name in schema.Properties is marked processed
// whether or not the property is actually present on node, so a later
// patternProperties or additionalProperties pass never re-validates it.
func evaluateProperties(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector, processed map[string]bool) {
	if schema.Properties == nil {
		return
	}
	for name, propSchema := range *schema.Properties {
		processed[name] = true
		prop := findProperty(node, name)
		if prop == nil {
			continue
		}
		validatePropertyAgainst(prop, normalizeSchemaRef(propSchema), result, collector)
	}
}
