package jsonls

// evaluateOneOf validates node against every alternative in
// schema.OneOf. It differs from anyOf only in arity: matching exactly
// one branch is success, matching two or more is flagged as ambiguous
// (rather than being silently accepted like anyOf's tie case), and
// matching none falls back to the same best-branch scorer anyOf uses.
func evaluateOneOf(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	if len(schema.OneOf) == 0 {
		return
	}
	branches := runBranches(node, schema.OneOf, collector)

	var valid []int
	for i, b := range branches {
		if !b.result.HasProblems() {
			valid = append(valid, i)
		}
	}

	switch len(valid) {
	case 0:
		best := bestBranchIndex(branches)
		mergeBestBranch(result, branches, best)
		collector.Merge(branches[best].collector)
	case 1:
		result.Merge(branches[valid[0]].result)
		collector.Merge(branches[valid[0]].collector)
	default:
		for _, i := range valid {
			result.Merge(branches[i].result)
			collector.Merge(branches[i].collector)
		}
		result.AddProblem(Problem{
			Location: node.Range(),
			Severity: SeverityWarning,
			Message:  "Matches multiple schemas when only one must validate.",
		})
	}
}
