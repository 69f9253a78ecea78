package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopCollectorAlwaysIncludesAndDiscards(t *testing.T) {
	c := NoopCollector{}
	n := &Node{Kind: KindNumber}
	assert.True(t, c.Include(n))
	assert.True(t, c.Include(nil))

	sub := c.NewSub()
	assert.IsType(t, NoopCollector{}, sub)

	// Add/Merge are no-ops; nothing to observe but that they don't panic.
	c.Add(n, &Schema{}, false)
	c.Merge(sub)
}

func TestFocusedCollectorNegativeFocusIncludesEverything(t *testing.T) {
	c := NewFocusedCollector(-1, nil)
	n := &Node{Kind: KindNumber, Start: 100, End: 200}
	assert.True(t, c.Include(n))
}

func TestFocusedCollectorPrunesByRange(t *testing.T) {
	c := NewFocusedCollector(5, nil)
	inside := &Node{Kind: KindNumber, Start: 0, End: 10}
	outside := &Node{Kind: KindNumber, Start: 20, End: 30}
	assert.True(t, c.Include(inside))
	assert.False(t, c.Include(outside))
}

func TestFocusedCollectorExcludesNode(t *testing.T) {
	excluded := &Node{Kind: KindString, Start: 0, End: 10}
	c := NewFocusedCollector(-1, excluded)
	assert.False(t, c.Include(excluded))

	other := &Node{Kind: KindString, Start: 0, End: 10}
	assert.True(t, c.Include(other))
	assert.False(t, c.Include(nil))
}

func TestFocusedCollectorAddAndMerge(t *testing.T) {
	parent := NewFocusedCollector(-1, nil)
	schema := &Schema{Boolean: boolPtr(true)}
	n1 := &Node{Kind: KindNumber}
	parent.Add(n1, schema, false)

	sub := parent.NewSub().(*FocusedCollector)
	n2 := &Node{Kind: KindString}
	sub.Add(n2, schema, true)

	parent.Merge(sub)

	if assert.Len(t, parent.Matches, 2) {
		assert.Equal(t, n1, parent.Matches[0].Node)
		assert.Equal(t, n2, parent.Matches[1].Node)
		assert.True(t, parent.Matches[1].Inverted)
	}
}

func TestFocusedCollectorMergeIgnoresForeignCollector(t *testing.T) {
	parent := NewFocusedCollector(-1, nil)
	parent.Merge(NoopCollector{})
	assert.Empty(t, parent.Matches)
}
