package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathNested(t *testing.T) {
	doc := Parse(`{"a": [1, {"b": 2}]}`, ParseOptions{})
	require.NotNil(t, doc.Root)

	arr := doc.Root.Properties[0].PropertyValue
	require.Equal(t, KindArray, arr.Kind)
	inner := arr.Items[1].Properties[0].PropertyValue

	path := GetPath(inner)
	require.Len(t, path, 3)
	assert.Equal(t, "a", path[0].PropertyName)
	assert.False(t, path[0].IsIndex)
	assert.Equal(t, 1, path[1].Index)
	assert.True(t, path[1].IsIndex)
	assert.Equal(t, "b", path[2].PropertyName)
}

func TestGetPathRootIsEmpty(t *testing.T) {
	doc := Parse(`42`, ParseOptions{})
	require.NotNil(t, doc.Root)
	assert.Empty(t, GetPath(doc.Root))
}

func TestGetNodeFromOffset(t *testing.T) {
	text := `{"a": 1, "b": 2}`
	doc := Parse(text, ParseOptions{})
	require.NotNil(t, doc.Root)

	// Offset inside the "b" value (the literal 2).
	offset := len(`{"a": 1, "b": `)
	n := GetNodeFromOffset(doc.Root, offset, false)
	require.NotNil(t, n)
	assert.Equal(t, KindNumber, n.Kind)
	assert.Equal(t, 2.0, n.NumValue)
}

func TestGetNodeFromOffsetEndInclusive(t *testing.T) {
	text := `{"a": 1}`
	doc := Parse(text, ParseOptions{})
	require.NotNil(t, doc.Root)

	n := GetNodeFromOffset(doc.Root, doc.Root.End, false)
	assert.Nil(t, n, "exclusive end does not match a cursor sitting at the close brace")

	n = GetNodeFromOffset(doc.Root, doc.Root.End, true)
	require.NotNil(t, n)
	assert.Equal(t, KindObject, n.Kind)
}

func TestGetNodeFromOffsetOutOfRange(t *testing.T) {
	doc := Parse(`{"a": 1}`, ParseOptions{})
	assert.Nil(t, GetNodeFromOffset(doc.Root, 1000, true))
	assert.Nil(t, GetNodeFromOffset(nil, 0, true))
}

func TestVisitPreOrderAndPruning(t *testing.T) {
	doc := Parse(`{"a": 1, "b": {"c": 2}}`, ParseOptions{})
	require.NotNil(t, doc.Root)

	var kinds []NodeKind
	Visit(doc.Root, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})
	assert.Equal(t, KindObject, kinds[0])

	var sawC bool
	Visit(doc.Root, func(n *Node) bool {
		if n.Kind == KindString && n.StrValue == "c" {
			sawC = true
		}
		// Stop descending into the nested object "b", pruning its property "c".
		return !(n.Kind == KindObject && n != doc.Root)
	})
	assert.False(t, sawC, "pruned subtree must not be visited")
}

func TestVisitPruneContinuesWithSiblings(t *testing.T) {
	doc := Parse(`[[1], [2], [3]]`, ParseOptions{})
	require.NotNil(t, doc.Root)

	var numbers []float64
	complete := Visit(doc.Root, func(n *Node) bool {
		if n.Kind == KindNumber {
			numbers = append(numbers, n.NumValue)
		}
		// Prune the middle inner array; its element 2 is skipped, but
		// the traversal continues into the third inner array.
		return !(n.Kind == KindArray && n.HasLocation() && n.Location.Index == 1)
	})
	assert.False(t, complete)
	assert.Equal(t, []float64{1, 3}, numbers)
}

func TestGetValueScalars(t *testing.T) {
	doc := Parse(`null`, ParseOptions{})
	assert.Nil(t, GetValue(doc.Root))

	doc = Parse(`true`, ParseOptions{})
	assert.Equal(t, true, GetValue(doc.Root))

	doc = Parse(`"hi"`, ParseOptions{})
	assert.Equal(t, "hi", GetValue(doc.Root))
}

func TestGetValueObjectOmitsMissingPropertyValue(t *testing.T) {
	doc := Parse(`{"a": , "b": 2}`, ParseOptions{})
	require.NotNil(t, doc.Root)

	got := GetValue(doc.Root)
	want := map[string]any{"b": 2.0}
	assert.Equal(t, want, got)
}

func TestGetValueNilNode(t *testing.T) {
	assert.Nil(t, GetValue(nil))
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: 2, End: 5}
	assert.False(t, r.Contains(1, false))
	assert.True(t, r.Contains(2, false))
	assert.True(t, r.Contains(4, false))
	assert.False(t, r.Contains(5, false))
	assert.True(t, r.Contains(5, true))
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "property", KindProperty.String())
	assert.Equal(t, "unknown", NodeKind(99).String())
}
