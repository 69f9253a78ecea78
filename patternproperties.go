package jsonls

import "regexp"

// evaluatePatternProperties matches each patternProperties regex
// against a snapshot of names not yet processed — taken fresh before
// each pattern's pass — so an explicit properties entry or an earlier
// pattern in this same object never gets double-validated by a later
// pattern that also happens to match its name.
//
// Patterns use Go's RE2 engine (package regexp): RE2 covers the
// character-class and anchor syntax realistic patternProperties keys
// use, but not lookaround or backreferences (see DESIGN.md on the
// dialect restriction). A pattern that fails to compile under RE2 is
// treated as matching nothing rather than aborting validation.
func evaluatePatternProperties(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector, processed map[string]bool) {
	if schema.PatternProperties == nil {
		return
	}
	for pattern, propSchema := range *schema.PatternProperties {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}

		var names []string
		for _, p := range node.Properties {
			if p.PropertyKey == nil || processed[p.PropertyKey.StrValue] {
				continue
			}
			names = append(names, p.PropertyKey.StrValue)
		}

		for _, name := range names {
			if !re.MatchString(name) {
				continue
			}
			processed[name] = true
			prop := findProperty(node, name)
			if prop == nil {
				continue
			}
			validatePropertyAgainst(prop, normalizeSchemaRef(propSchema), result, collector)
		}
	}
}
