package jsonls

import "strings"

// evaluateEnumConst handles both "enum" and "const" in one pass, since
// const behaves exactly like a singleton enum. The accepted value set
// is always recorded on result (even on a match) so that an enclosing
// anyOf/oneOf can union sibling branches' accepted values into one
// "valid values: A, B, C" message when every branch rejects the
// subject.
func evaluateEnumConst(node *Node, schema *Schema, result *ValidationResult) {
	var candidates []any
	switch {
	case schema.Const != nil && schema.Const.IsSet:
		candidates = []any{schema.Const.Value}
	case len(schema.Enum) > 0:
		candidates = schema.Enum
	default:
		return
	}

	value := GetValue(node)
	match := false
	for _, c := range candidates {
		if deepEqual(value, c) {
			match = true
			break
		}
	}

	result.EnumValueMatch = result.EnumValueMatch || match
	result.EnumValues = append(result.EnumValues, candidates...)

	if !match {
		result.AddProblem(Problem{
			Location: node.Range(),
			Severity: SeverityWarning,
			Code:     EnumValueMismatch,
			Message:  enumMismatchMessage(candidates),
		})
	}
}

func enumMismatchMessage(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, formatScalar(v))
	}
	return "Value is not accepted. Valid values: " + strings.Join(parts, ", ") + "."
}

func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return "\"" + t + "\""
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return formatAny(v)
	}
}
