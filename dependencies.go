package jsonls

import json "github.com/goccy/go-json"

// evaluateDependencies implements the draft-07 "dependencies" keyword:
// for each key present on node, a list value requires every named
// sibling to also be present, and a schema value re-validates the
// whole object against that schema.
func evaluateDependencies(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	if len(schema.Dependencies) == 0 {
		return
	}
	for key, dep := range schema.Dependencies {
		if findProperty(node, key) == nil {
			continue
		}

		if siblings, ok := dep.([]any); ok {
			for _, siblingAny := range siblings {
				sibling, ok := siblingAny.(string)
				if !ok {
					continue
				}
				if findProperty(node, sibling) == nil {
					result.AddProblem(newSchemaProblem(missingRequiredRange(node), schema,
						"Property "+quote(key)+" requires property "+quote(sibling)+"."))
				}
			}
			continue
		}

		depSchema := coerceSchema(dep)
		if depSchema == nil {
			continue
		}
		sub := NewValidationResult()
		Validate(node, depSchema, sub, collector)
		result.Merge(sub)
	}
}

// coerceSchema round-trips a raw decoded `dependencies` value (a bool
// or a map[string]any, since Go's JSON decoder has no static type to
// target here) through Schema's own UnmarshalJSON.
func coerceSchema(v any) *Schema {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := &Schema{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil
	}
	return s
}
