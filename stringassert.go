package jsonls

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

// evaluateString runs minLength/maxLength, pattern, and format against
// a string node.
func evaluateString(node *Node, schema *Schema, result *ValidationResult) {
	length := utf8.RuneCountInString(node.StrValue)

	if schema.MinLength != nil && length < int(*schema.MinLength) {
		result.AddProblem(newSchemaProblem(node.Range(), schema,
			"String is shorter than the minimum length of "+strconv.Itoa(int(*schema.MinLength))+"."))
	}
	if schema.MaxLength != nil && length > int(*schema.MaxLength) {
		result.AddProblem(newSchemaProblem(node.Range(), schema,
			"String is longer than the maximum length of "+strconv.Itoa(int(*schema.MaxLength))+"."))
	}

	if schema.Pattern != nil {
		evaluatePattern(node, schema, result)
	}

	evaluateFormat(node, schema, result)
}

// evaluatePattern applies schema.Pattern under Go's RE2 engine; see the
// dialect note in patternproperties.go. An unparsable pattern is
// treated as an author error that validation silently ignores rather
// than aborting on.
func evaluatePattern(node *Node, schema *Schema, result *ValidationResult) {
	re, err := regexp.Compile(*schema.Pattern)
	if err != nil {
		return
	}
	if !re.MatchString(node.StrValue) {
		result.AddProblem(newPatternProblem(node.Range(), schema,
			"String does not match the pattern "+quote(*schema.Pattern)+"."))
	}
}
