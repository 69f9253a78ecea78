package jsonls

import "math"

// evaluateNumber runs multipleOf and the minimum/maximum family against
// a number node.
func evaluateNumber(node *Node, schema *Schema, result *ValidationResult) {
	value := node.NumValue

	if schema.MultipleOf != nil {
		evaluateMultipleOf(node, schema, result, value)
	}

	minSuppressed := false
	if b := schema.ExclusiveMinimum; b != nil && b.IsSet {
		if b.IsBool {
			if b.BoolValue {
				minSuppressed = true
				if schema.Minimum != nil && value <= *schema.Minimum {
					result.AddProblem(newSchemaProblem(node.Range(), schema,
						"Value is below the exclusive minimum of "+formatAny(*schema.Minimum)+"."))
				}
			}
		} else if value <= b.NumValue {
			result.AddProblem(newSchemaProblem(node.Range(), schema,
				"Value is below the exclusive minimum of "+formatAny(b.NumValue)+"."))
		}
	}
	if !minSuppressed && schema.Minimum != nil && value < *schema.Minimum {
		result.AddProblem(newSchemaProblem(node.Range(), schema,
			"Value is below the minimum of "+formatAny(*schema.Minimum)+"."))
	}

	maxSuppressed := false
	if b := schema.ExclusiveMaximum; b != nil && b.IsSet {
		if b.IsBool {
			if b.BoolValue {
				maxSuppressed = true
				if schema.Maximum != nil && value >= *schema.Maximum {
					result.AddProblem(newSchemaProblem(node.Range(), schema,
						"Value is above the exclusive maximum of "+formatAny(*schema.Maximum)+"."))
				}
			}
		} else if value >= b.NumValue {
			result.AddProblem(newSchemaProblem(node.Range(), schema,
				"Value is above the exclusive maximum of "+formatAny(b.NumValue)+"."))
		}
	}
	if !maxSuppressed && schema.Maximum != nil && value > *schema.Maximum {
		result.AddProblem(newSchemaProblem(node.Range(), schema,
			"Value is above the maximum of "+formatAny(*schema.Maximum)+"."))
	}
}

// evaluateMultipleOf uses double-precision modulo: results for
// non-representable divisors (e.g. 0.1) are best-effort, tolerating a
// small epsilon either side of zero.
func evaluateMultipleOf(node *Node, schema *Schema, result *ValidationResult, value float64) {
	m := *schema.MultipleOf
	if m == 0 {
		return
	}
	remainder := math.Mod(value, m)
	const epsilon = 1e-9
	if math.Abs(remainder) > epsilon && math.Abs(remainder-m) > epsilon && math.Abs(remainder+m) > epsilon {
		result.AddProblem(newSchemaProblem(node.Range(), schema,
			"Value is not a multiple of "+formatAny(m)+"."))
	}
}
