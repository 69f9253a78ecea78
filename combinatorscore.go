package jsonls

// branchOutcome is one anyOf/oneOf alternative's isolated validation: a
// sub-result and sub-collector that are discarded unless this branch
// turns out to be the winner (or ties another winner).
type branchOutcome struct {
	result    *ValidationResult
	collector SchemaCollector
}

// runBranches validates node against every alternative in schemas, each
// into its own ValidationResult and sub-collector so a losing branch's
// diagnostics never leak into the caller.
func runBranches(node *Node, schemas []*Schema, collector SchemaCollector) []branchOutcome {
	out := make([]branchOutcome, len(schemas))
	for i, sub := range schemas {
		subResult := NewValidationResult()
		subCollector := collector.NewSub()
		Validate(node, normalizeSchemaRef(sub), subResult, subCollector)
		out[i] = branchOutcome{result: subResult, collector: subCollector}
	}
	return out
}

// compareBranches orders two branch results by the scorer in the
// combinator design: a clean result beats a dirty one; among two dirty
// (or two clean) results, an enum/const match wins; then higher
// PrimaryValueMatches, then PropertiesValueMatches, then
// PropertiesMatches. Returns 1 if a is better, -1 if b is better, 0 if
// tied on every criterion.
func compareBranches(a, b *ValidationResult) int {
	if a.HasProblems() != b.HasProblems() {
		if !a.HasProblems() {
			return 1
		}
		return -1
	}
	if a.EnumValueMatch != b.EnumValueMatch {
		if a.EnumValueMatch {
			return 1
		}
		return -1
	}
	if a.PrimaryValueMatches != b.PrimaryValueMatches {
		if a.PrimaryValueMatches > b.PrimaryValueMatches {
			return 1
		}
		return -1
	}
	if a.PropertiesValueMatches != b.PropertiesValueMatches {
		if a.PropertiesValueMatches > b.PropertiesValueMatches {
			return 1
		}
		return -1
	}
	if a.PropertiesMatches != b.PropertiesMatches {
		if a.PropertiesMatches > b.PropertiesMatches {
			return 1
		}
		return -1
	}
	return 0
}

// bestBranchIndex returns the index of the highest-scoring branch per
// compareBranches, breaking ties by preferring the earliest branch.
func bestBranchIndex(branches []branchOutcome) int {
	best := 0
	for i := 1; i < len(branches); i++ {
		if compareBranches(branches[i].result, branches[best].result) > 0 {
			best = i
		}
	}
	return best
}

// mergeBestBranch folds the losing-but-best branch's diagnostics and
// counters into parent. When that branch's retained diagnostics include
// an EnumValueMismatch and more than one branch carried enum/const
// values, the message is rewritten to the union of every branch's
// accepted values — so the user sees "valid values: A, B, C" rather
// than just the winning branch's partial list.
func mergeBestBranch(parent *ValidationResult, branches []branchOutcome, best int) {
	br := branches[best]

	var union []any
	enumBranches := 0
	for _, b := range branches {
		if len(b.result.EnumValues) > 0 {
			enumBranches++
			union = append(union, b.result.EnumValues...)
		}
	}
	rewriteEnum := enumBranches > 1

	for _, p := range br.result.Problems {
		if rewriteEnum && p.Code == EnumValueMismatch {
			p.Message = enumMismatchMessage(union)
		}
		parent.AddProblem(p)
	}
	parent.PropertiesMatches += br.result.PropertiesMatches
	parent.PropertiesValueMatches += br.result.PropertiesValueMatches
	parent.PrimaryValueMatches += br.result.PrimaryValueMatches
	if br.result.EnumValueMatch {
		parent.EnumValueMatch = true
	}
	parent.EnumValues = append(parent.EnumValues, br.result.EnumValues...)
}
