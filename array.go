package jsonls

// evaluateArray runs every array-kind keyword family against node.
func evaluateArray(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	evaluateItems(node, schema, result, collector)
	evaluateContains(node, schema, result, collector)
	evaluateArrayCardinality(node, schema, result)
	evaluateUniqueItems(node, schema, result)
}
