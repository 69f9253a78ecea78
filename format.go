package jsonls

// evaluateFormat dispatches on schema.Format to one of the four format
// checks this service honors. An unrecognized format name is silently
// ignored rather than asserted — "date-time" and friends are real
// draft-07 vocabulary this service simply does not implement (see the
// DESIGN.md note on why the keyword list stops at four formats).
func evaluateFormat(node *Node, schema *Schema, result *ValidationResult) {
	if schema.Format == nil {
		return
	}

	var ok bool
	switch *schema.Format {
	case "uri":
		ok = isURIFormat(node.StrValue, true)
	case "uri-reference":
		ok = isURIFormat(node.StrValue, false)
	case "email":
		ok = emailPattern.MatchString(node.StrValue)
	case "color-hex":
		ok = colorHexPattern.MatchString(node.StrValue)
	default:
		return
	}

	if !ok {
		result.AddProblem(newPatternProblem(node.Range(), schema,
			"String "+quote(node.StrValue)+" does not match format "+quote(*schema.Format)+"."))
	}
}
