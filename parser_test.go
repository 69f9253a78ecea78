package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyDocument(t *testing.T) {
	doc := Parse("", ParseOptions{})
	assert.Nil(t, doc.Root)
	assert.Empty(t, doc.SyntaxErrors)
}

func TestParseSimpleObject(t *testing.T) {
	doc := Parse(`{"a": 1, "b": "two"}`, ParseOptions{})
	require.NotNil(t, doc.Root)
	assert.Empty(t, doc.SyntaxErrors)
	assert.Equal(t, KindObject, doc.Root.Kind)
	require.Len(t, doc.Root.Properties, 2)

	a := doc.Root.Properties[0]
	assert.Equal(t, "a", a.PropertyKey.StrValue)
	require.NotNil(t, a.PropertyValue)
	assert.Equal(t, KindNumber, a.PropertyValue.Kind)
	assert.InDelta(t, 1.0, a.PropertyValue.NumValue, 0)
	assert.True(t, a.PropertyValue.IsInteger)
	assert.True(t, a.HasLocation())
	assert.Equal(t, "a", a.Location.PropertyName)
	assert.Equal(t, a.PropertyValue.End, a.End)
}

// A trailing comma in an object is reported once, at the comma's
// offset, and the root is still a well-formed object with one
// property.
func TestTrailingComma(t *testing.T) {
	text := `{"a": 1,}`
	doc := Parse(text, ParseOptions{})
	require.Len(t, doc.SyntaxErrors, 1)
	assert.Equal(t, TrailingComma, doc.SyntaxErrors[0].Code)
	assert.Equal(t, 7, doc.SyntaxErrors[0].Location.Start)

	require.NotNil(t, doc.Root)
	assert.Equal(t, KindObject, doc.Root.Kind)
	require.Len(t, doc.Root.Properties, 1)
}

// A missing comma between two properties is reported once, and the
// root is still a well-formed object with both properties.
func TestMissingComma(t *testing.T) {
	text := `{"a":1 "b":2}`
	doc := Parse(text, ParseOptions{})
	require.Len(t, doc.SyntaxErrors, 1)
	assert.Equal(t, CommaExpected, doc.SyntaxErrors[0].Code)

	require.NotNil(t, doc.Root)
	require.Len(t, doc.Root.Properties, 2)
	assert.Equal(t, "a", doc.Root.Properties[0].PropertyKey.StrValue)
	assert.Equal(t, "b", doc.Root.Properties[1].PropertyKey.StrValue)
}

func TestDuplicateKeyFlaggedOnBothFirstOccurrences(t *testing.T) {
	text := `{"a":1, "a":2, "a":3}`
	doc := Parse(text, ParseOptions{})

	var dupes int
	for _, p := range doc.SyntaxErrors {
		if p.Message == "Duplicate object key" {
			dupes++
		}
	}
	// Only the first two occurrences are flagged; a third repeat of the
	// same key does not re-flag.
	assert.Equal(t, 2, dupes)
}

func TestMissingValueAfterColonSkipsToCloseOrComma(t *testing.T) {
	text := `{"a": , "b": 2}`
	doc := Parse(text, ParseOptions{})
	require.NotNil(t, doc.Root)
	require.Len(t, doc.Root.Properties, 2)
	assert.Nil(t, doc.Root.Properties[0].PropertyValue)
	require.NotNil(t, doc.Root.Properties[1].PropertyValue)
	assert.Equal(t, 2.0, doc.Root.Properties[1].PropertyValue.NumValue)
}

func TestUnquotedKeyRecovery(t *testing.T) {
	text := `{a: 1}`
	doc := Parse(text, ParseOptions{})
	require.Len(t, doc.SyntaxErrors, 1)
	assert.Equal(t, DoubleQuotesExpected, doc.SyntaxErrors[0].Code)
	require.NotNil(t, doc.Root)
	require.Len(t, doc.Root.Properties, 1)
	assert.Equal(t, "a", doc.Root.Properties[0].PropertyKey.StrValue)
}

func TestArrayTrailingCommaAndGetValue(t *testing.T) {
	doc := Parse(`[1, 2, 3,]`, ParseOptions{})
	require.Len(t, doc.SyntaxErrors, 1)
	assert.Equal(t, TrailingComma, doc.SyntaxErrors[0].Code)
	require.NotNil(t, doc.Root)

	value := GetValue(doc.Root)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, value)
}

func TestGetValueRoundTrip(t *testing.T) {
	text := `{"a": 1, "b": [true, false, null], "c": {"d": "e"}}`
	doc := Parse(text, ParseOptions{})
	require.NotNil(t, doc.Root)

	got := GetValue(doc.Root)
	want := map[string]any{
		"a": 1.0,
		"b": []any{true, false, nil},
		"c": map[string]any{"d": "e"},
	}
	assert.Equal(t, want, got)
}

func TestNumberIsIntegerInvariant(t *testing.T) {
	doc := Parse(`[1, 1.5, 1e10, 1.0e10]`, ParseOptions{})
	require.NotNil(t, doc.Root)
	require.Len(t, doc.Root.Items, 4)
	assert.True(t, doc.Root.Items[0].IsInteger)
	assert.False(t, doc.Root.Items[1].IsInteger)
	assert.True(t, doc.Root.Items[2].IsInteger, "integer mantissa with exponent is still integer")
	assert.False(t, doc.Root.Items[3].IsInteger)
}

func TestCommentsCollectedWhenRequested(t *testing.T) {
	text := "// leading\n{\"a\": 1 /* trailing */}"
	doc := Parse(text, ParseOptions{CollectComments: true})
	require.NotNil(t, doc.Root)
	assert.Len(t, doc.Comments, 2)

	docNoComments := Parse(text, ParseOptions{})
	assert.Empty(t, docNoComments.Comments)
}

func TestRecoverySoundnessOnGarbageInput(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"[",
		"}",
		`{"a"}`,
		`{"a":}`,
		`[,]`,
		`{,}`,
		"null null",
		`{"a": {"b": [1, {"c": 2]}}`,
	}
	for _, text := range inputs {
		doc := Parse(text, ParseOptions{})
		assertWellFormed(t, doc.Root)
	}
}

// assertWellFormed checks the structural invariants that must hold for
// any tree the parser returns, no matter how malformed the input was:
// ordered ranges, children contained in their parent, and siblings
// disjoint in source order.
func assertWellFormed(t *testing.T, n *Node) {
	t.Helper()
	if n == nil {
		return
	}
	assert.LessOrEqual(t, n.Start, n.End)
	if n.Parent != nil {
		assert.LessOrEqual(t, n.Parent.Start, n.Start)
		assert.LessOrEqual(t, n.End, n.Parent.End)
	}
	var prevEnd int
	first := true
	for _, child := range n.Children() {
		if child == nil {
			continue
		}
		if !first {
			assert.LessOrEqual(t, prevEnd, child.Start)
		}
		first = false
		prevEnd = child.End
		assertWellFormed(t, child)
	}
}
