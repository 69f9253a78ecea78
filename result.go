package jsonls

// ValidationResult accumulates the outcome of validating one subtree
// against one schema. A fresh ValidationResult is created per branch of
// a combinator (allOf/anyOf/oneOf) so branches can be scored and merged
// independently.
type ValidationResult struct {
	Problems []Problem

	// PropertiesMatches counts object properties evaluated against a
	// schema (via properties/patternProperties/additionalProperties).
	PropertiesMatches int

	// PropertiesValueMatches counts properties whose value validated
	// with no problems (or matched a nested enum/const exactly).
	PropertiesValueMatches int

	// PrimaryValueMatches counts properties whose value matched a
	// schema with a singleton enum/const — the scorer's discriminator
	// signal for tagged-union-shaped schemas.
	PrimaryValueMatches int

	// EnumValueMatch is true iff the subject satisfied an active
	// enum/const constraint on this node.
	EnumValueMatch bool

	// EnumValues holds the accepted values of an active enum/const, so
	// sibling branches can merge their rejection messages.
	EnumValues []any
}

// NewValidationResult returns an empty, successful result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{}
}

// HasProblems reports whether any diagnostic was recorded.
func (r *ValidationResult) HasProblems() bool {
	return len(r.Problems) > 0
}

// AddProblem appends a diagnostic to the result.
func (r *ValidationResult) AddProblem(p Problem) {
	r.Problems = append(r.Problems, p)
}

// Merge folds other's problems and counters into r. Used when a
// combinator keyword commits to a winning branch, or when anyOf ties
// clean branches and unions their outcomes.
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	r.Problems = append(r.Problems, other.Problems...)
	r.PropertiesMatches += other.PropertiesMatches
	r.PropertiesValueMatches += other.PropertiesValueMatches
	r.PrimaryValueMatches += other.PrimaryValueMatches
	if other.EnumValueMatch {
		r.EnumValueMatch = true
	}
	r.EnumValues = append(r.EnumValues, other.EnumValues...)
}

// mergePropertyMatch folds a single evaluated-property's sub-result
// into the parent result's property counters: every evaluated property
// bumps PropertiesMatches; a clean
// sub-result (or one that matched any enum/const) additionally bumps
// PropertiesValueMatches, and a singleton enum/const match bumps
// PrimaryValueMatches too.
func mergePropertyMatch(parent *ValidationResult, sub *ValidationResult) {
	parent.PropertiesMatches++
	if !sub.HasProblems() || sub.EnumValueMatch {
		parent.PropertiesValueMatches++
	}
	if sub.EnumValueMatch && len(sub.EnumValues) == 1 {
		parent.PrimaryValueMatches++
	}
	parent.Problems = append(parent.Problems, sub.Problems...)
}
