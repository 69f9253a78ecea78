package jsonls

import "strconv"

// evaluateArrayCardinality checks minItems/maxItems against the
// array's element count.
func evaluateArrayCardinality(node *Node, schema *Schema, result *ValidationResult) {
	count := len(node.Items)
	if schema.MinItems != nil && count < int(*schema.MinItems) {
		result.AddProblem(newSchemaProblem(node.Range(), schema,
			"Array has too few items. Expected at least "+strconv.Itoa(int(*schema.MinItems))+" items."))
	}
	if schema.MaxItems != nil && count > int(*schema.MaxItems) {
		result.AddProblem(newSchemaProblem(node.Range(), schema,
			"Array has too many items. Expected at most "+strconv.Itoa(int(*schema.MaxItems))+" items."))
	}
}
