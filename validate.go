package jsonls

// Validate walks node against schema, accumulating diagnostics into
// result and (node, schema) associations into collector. It is the
// validator's single entry point and is re-entrant: neither the AST
// nor the schema are mutated by the walk. The properties,
// patternProperties and dependencies keywords are walked in Go map
// iteration order, so two calls over the same node/schema can list
// their diagnostics in a different order, and when two
// patternProperties patterns match the same name, which one validates
// it can differ between calls.
//
// A schema reference is either a boolean shorthand or a schema object.
// Callers hand Validate an already-normalized *Schema (see
// Schema.IsTrue/IsFalse); the boolean forms are handled here so every
// call site gets the same treatment.
func Validate(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	if node == nil || schema == nil {
		return
	}
	if !collector.Include(node) {
		return
	}

	if schema.IsTrue() {
		collector.Add(node, schema, false)
		return
	}
	if schema.IsFalse() {
		result.AddProblem(newSchemaProblem(node.Range(), schema, "Matches a schema that is always false"))
		collector.Add(node, schema, false)
		return
	}

	evaluateType(node, schema, result)
	evaluateAllOf(node, schema, result, collector)
	evaluateNot(node, schema, result, collector)
	evaluateAnyOf(node, schema, result, collector)
	evaluateOneOf(node, schema, result, collector)
	evaluateEnumConst(node, schema, result)

	switch node.Kind {
	case KindArray:
		evaluateArray(node, schema, result, collector)
	case KindObject:
		evaluateObject(node, schema, result, collector)
	case KindString:
		evaluateString(node, schema, result)
	case KindNumber:
		evaluateNumber(node, schema, result)
	}

	if schema.DeprecationMessage != nil && node.Parent != nil {
		result.AddProblem(Problem{
			Location: node.Parent.Range(),
			Severity: SeverityWarning,
			Message:  *schema.DeprecationMessage,
		})
	}

	collector.Add(node, schema, false)
}

// newSchemaProblem builds a warning-severity diagnostic, honoring a
// schema's errorMessage override when present.
func newSchemaProblem(r Range, schema *Schema, defaultMsg string) Problem {
	msg := defaultMsg
	if schema != nil && schema.ErrorMessage != nil {
		msg = *schema.ErrorMessage
	}
	return Problem{Location: r, Severity: SeverityWarning, Message: msg}
}

// newPatternProblem is like newSchemaProblem but prefers
// patternErrorMessage, falling back to errorMessage, then defaultMsg.
func newPatternProblem(r Range, schema *Schema, defaultMsg string) Problem {
	if schema != nil && schema.PatternErrorMessage != nil {
		return Problem{Location: r, Severity: SeverityWarning, Message: *schema.PatternErrorMessage}
	}
	return newSchemaProblem(r, schema, defaultMsg)
}

// normalizeSchemaRef turns the raw decoded shape of a schema reference
// (nil, bool, or *Schema) into a non-nil *Schema: an absent reference
// normalizes to the accept-all schema. Most call sites already hold a
// *Schema with Boolean set; this helper exists for the few places a
// schema reference arrives as a looser shape (e.g. additionalItems,
// additionalProperties default to permissive when absent, which callers
// encode as a nil *Schema rather than calling this).
func normalizeSchemaRef(s *Schema) *Schema {
	if s == nil {
		return &Schema{Boolean: boolPtr(true)}
	}
	return s
}

func boolPtr(b bool) *bool { return &b }
