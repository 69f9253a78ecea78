package jsonls

// nodeTypeName returns the type name a node's kind maps to for "type"
// assertions. A number's IsInteger flag is threaded in separately by
// evaluateType rather than stored on the node itself, so "integer" is
// never returned here and the node never has to be relabeled during a
// check.
func nodeTypeName(n *Node) string {
	switch n.Kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return ""
	}
}

// evaluateType checks schema.Type against node, treating "integer" as a
// virtual subtype of "number" that additionally requires IsInteger.
func evaluateType(node *Node, schema *Schema, result *ValidationResult) {
	if len(schema.Type) == 0 {
		return
	}

	actual := nodeTypeName(node)
	for _, want := range schema.Type {
		if want == "integer" {
			if node.Kind == KindNumber && node.IsInteger {
				return
			}
			continue
		}
		if want == actual {
			return
		}
	}

	result.AddProblem(newSchemaProblem(node.Range(), schema, typeMismatchMessage(schema.Type)))
}

func typeMismatchMessage(want []string) string {
	if len(want) == 1 {
		return "Incorrect type. Expected \"" + want[0] + "\"."
	}
	return "Incorrect type. Expected one of \"" + joinStrings(want, ", ") + "\"."
}
