package jsonls

// evaluateNot checks that node fails to validate against schema.Not.
// The inner validation runs with its own result and a no-op collector:
// a schema that is the target of "not" is a probe, not a user-facing
// surface, so its nested diagnostics and associations never leak into
// the caller. The negated schema itself is still recorded on the
// caller's collector, marked inverted, so hover/completion can still
// tell the user what was excluded.
func evaluateNot(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	if schema.Not == nil {
		return
	}
	notSchema := normalizeSchemaRef(schema.Not)

	sub := NewValidationResult()
	Validate(node, notSchema, sub, NoopCollector{})

	if !sub.HasProblems() {
		result.AddProblem(newSchemaProblem(node.Range(), schema, "Matches a schema that is not allowed."))
	}
	collector.Add(node, notSchema, true)
}
