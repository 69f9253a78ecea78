package jsonls

// evaluateUniqueItems compares items pairwise by their projected
// value. The O(n^2) pairwise form keeps the comparison independent of
// key ordering within object-valued items; arrays under uniqueItems
// are expected small in editor-sized documents.
func evaluateUniqueItems(node *Node, schema *Schema, result *ValidationResult) {
	if schema.UniqueItems == nil || !*schema.UniqueItems {
		return
	}
	values := make([]any, len(node.Items))
	for i, item := range node.Items {
		values[i] = GetValue(item)
	}
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if deepEqual(values[i], values[j]) {
				result.AddProblem(newSchemaProblem(node.Range(), schema, "Array has duplicate items."))
				return
			}
		}
	}
}
