package jsonls

// evaluateRequired flags each name in schema.Required that has no
// matching property. Per the object-details recovery rule, the
// diagnostic is pinned to the enclosing property's key when this
// object is itself a property value (so the squiggle lands on, e.g.,
// "address" rather than the whole nested object), or to the object's
// opening brace when it has no enclosing property (the document root,
// or an array element).
func evaluateRequired(node *Node, schema *Schema, result *ValidationResult) {
	if len(schema.Required) == 0 {
		return
	}
	target := missingRequiredRange(node)
	for _, name := range schema.Required {
		if findProperty(node, name) != nil {
			continue
		}
		result.AddProblem(newSchemaProblem(target, schema, "Missing property "+quote(name)+"."))
	}
}

func missingRequiredRange(node *Node) Range {
	if node.Parent != nil && node.Parent.Kind == KindProperty && node.Parent.PropertyKey != nil {
		return node.Parent.PropertyKey.Range()
	}
	return Range{node.Start, minInt(node.Start+1, node.End)}
}
