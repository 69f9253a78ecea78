package jsonls

// evaluateObjectCardinality checks minProperties/maxProperties against
// the object's direct property count.
func evaluateObjectCardinality(node *Node, schema *Schema, result *ValidationResult) {
	count := len(node.Properties)
	if schema.MinProperties != nil && count < int(*schema.MinProperties) {
		result.AddProblem(newSchemaProblem(node.Range(), schema, "Object has fewer properties than the required minimum."))
	}
	if schema.MaxProperties != nil && count > int(*schema.MaxProperties) {
		result.AddProblem(newSchemaProblem(node.Range(), schema, "Object has more properties than the allowed maximum."))
	}
}
