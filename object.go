package jsonls

// evaluateObject runs every object-kind keyword family against node:
// required first (it only needs presence, not validation order), then
// the three property-matching passes in order (properties,
// patternProperties, additionalProperties share one "processed" set so
// none double-count a name), then the remaining object-shaped
// assertions.
func evaluateObject(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	evaluateRequired(node, schema, result)

	processed := make(map[string]bool, len(node.Properties))
	evaluateProperties(node, schema, result, collector, processed)
	evaluatePatternProperties(node, schema, result, collector, processed)
	evaluateAdditionalProperties(node, schema, result, collector, processed)

	evaluateObjectCardinality(node, schema, result)
	evaluateDependencies(node, schema, result, collector)
	evaluatePropertyNames(node, schema, result)
}

func quote(s string) string { return "\"" + s + "\"" }

// findProperty returns the first property node under node whose key
// matches name, or nil. Duplicate keys are flagged at parse time; here
// the first occurrence is treated as authoritative for schema matching.
func findProperty(node *Node, name string) *Node {
	for _, p := range node.Properties {
		if p.PropertyKey != nil && p.PropertyKey.StrValue == name {
			return p
		}
	}
	return nil
}

// validatePropertyAgainst is the "not allowed" / normal-validate split
// shared by properties, patternProperties, and additionalProperties: a
// false subschema flags the key itself as disallowed; anything else
// validates the value and folds the outcome into the parent's property
// counters via mergePropertyMatch.
func validatePropertyAgainst(prop *Node, propSchema *Schema, result *ValidationResult, collector SchemaCollector) {
	if propSchema.IsFalse() {
		result.AddProblem(newSchemaProblem(prop.PropertyKey.Range(), propSchema, "Property "+quote(prop.PropertyKey.StrValue)+" is not allowed."))
		result.PropertiesMatches++
		return
	}
	if prop.PropertyValue == nil {
		return
	}
	sub := NewValidationResult()
	Validate(prop.PropertyValue, propSchema, sub, collector)
	mergePropertyMatch(result, sub)
}
