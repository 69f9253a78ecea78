package jsonls

// evaluateAnyOf validates node against every alternative in
// schema.AnyOf, each in isolation, then commits the best outcome into
// the caller's result and collector.
//
// A clean branch (no diagnostics) always beats a dirty one. When one or
// more branches are clean, every clean branch's sub-collector is merged
// in — not just the first — so that hover/completion see every
// equally-applicable schema rather than an arbitrary pick among ties.
// Only when every branch is dirty does the lexicographic scorer in
// compareBranches choose a single best branch to surface.
func evaluateAnyOf(node *Node, schema *Schema, result *ValidationResult, collector SchemaCollector) {
	if len(schema.AnyOf) == 0 {
		return
	}
	branches := runBranches(node, schema.AnyOf, collector)

	var clean []int
	for i, b := range branches {
		if !b.result.HasProblems() {
			clean = append(clean, i)
		}
	}

	if len(clean) > 0 {
		for _, i := range clean {
			result.Merge(branches[i].result)
			collector.Merge(branches[i].collector)
		}
		return
	}

	best := bestBranchIndex(branches)
	mergeBestBranch(result, branches, best)
	collector.Merge(branches[best].collector)
}
