package jsonls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Node {
	t.Helper()
	doc := Parse(text, ParseOptions{})
	require.NotNil(t, doc.Root)
	return doc.Root
}

func mustSchema(t *testing.T, data string) *Schema {
	t.Helper()
	s, err := ParseSchema([]byte(data))
	require.NoError(t, err)
	return s
}

func validateAll(t *testing.T, text, schemaJSON string) []Problem {
	t.Helper()
	node := mustParse(t, text)
	schema := mustSchema(t, schemaJSON)
	result := NewValidationResult()
	Validate(node, normalizeSchemaRef(schema), result, NoopCollector{})
	return result.Problems
}

// A schema with a named property subschema validates cleanly against a
// matching object, and GetMatchingSchemas restricted to the property
// value's offset records that subschema (and nothing outside it).
func TestObjectPropertiesAndFocusedMatch(t *testing.T) {
	text := `{"name": "ok"}`
	schemaJSON := `{
		"type": "object",
		"properties": {"name": {"type": "string", "minLength": 1}}
	}`

	problems := validateAll(t, text, schemaJSON)
	assert.Empty(t, problems)

	doc := Parse(text, ParseOptions{})
	schema := mustSchema(t, schemaJSON)
	valueOffset := len(`{"name": "`)
	matches := doc.GetMatchingSchemas(schema, valueOffset, nil)
	require.NotEmpty(t, matches)

	var sawNameSchema bool
	for _, m := range matches {
		if m.Schema.MinLength != nil {
			sawNameSchema = true
			assert.Equal(t, KindString, m.Node.Kind)
			assert.Equal(t, "ok", m.Node.StrValue)
		}
	}
	assert.True(t, sawNameSchema)
}

// An array that both exceeds maxItems and contains a duplicate
// produces exactly two warnings.
func TestArrayUniqueItemsAndMaxItems(t *testing.T) {
	problems := validateAll(t, `[1, 2, 2]`, `{"type": "array", "maxItems": 2, "uniqueItems": true}`)
	require.Len(t, problems, 2)
	for _, p := range problems {
		assert.Equal(t, SeverityWarning, p.Severity)
	}
	assert.Equal(t, "Array has too many items. Expected at most 2 items.", problems[0].Message)
	assert.Equal(t, "Array has duplicate items.", problems[1].Message)
}

func TestEmailFormatMismatch(t *testing.T) {
	problems := validateAll(t, `"not-an-email"`, `{"type": "string", "format": "email"}`)
	require.Len(t, problems, 1)
	assert.Equal(t, `String "not-an-email" does not match format "email".`, problems[0].Message)
}

func TestEmailFormatMatch(t *testing.T) {
	problems := validateAll(t, `"user@example.com"`, `{"type": "string", "format": "email"}`)
	assert.Empty(t, problems)
}

// A oneOf with two object-shaped alternatives, each carrying a
// distinguishing singleton const on a "kind" property: the branch
// whose discriminator matches is the only one that validates cleanly
// (the other fails its "kind" const and its required "side"), so oneOf
// accepts the instance with no diagnostics.
func TestOneOfDiscriminatorWin(t *testing.T) {
	schemaJSON := `{
		"oneOf": [
			{
				"type": "object",
				"properties": {"kind": {"const": "circle"}, "radius": {"type": "number"}},
				"required": ["kind", "radius"]
			},
			{
				"type": "object",
				"properties": {"kind": {"const": "square"}, "side": {"type": "number"}},
				"required": ["kind", "side"]
			}
		]
	}`
	problems := validateAll(t, `{"kind": "circle", "radius": 4}`, schemaJSON)
	assert.Empty(t, problems)
}

// When one anyOf alternative is the boolean schema true, every
// instance satisfies anyOf with zero diagnostics.
func TestAnyOfTrueBranchIsClean(t *testing.T) {
	problems := validateAll(t, `{"anything": 1}`, `{"anyOf": [true, {"type": "string"}]}`)
	assert.Empty(t, problems)
}

// When an instance cleanly satisfies two oneOf alternatives, exactly
// one ambiguity warning is raised (not one per branch).
func TestOneOfTwoValidBranchesIsAmbiguous(t *testing.T) {
	schemaJSON := `{"oneOf": [{"type": "number"}, {"minimum": 0}]}`
	problems := validateAll(t, `5`, schemaJSON)
	require.Len(t, problems, 1)
	assert.Equal(t, "Matches multiple schemas when only one must validate.", problems[0].Message)
}

// When every anyOf branch fails on an enum/const mismatch, the
// surfaced message lists the union of every branch's accepted values,
// not just the best-scoring branch's own list.
func TestAnyOfAllBranchesEnumMismatchUnionsValues(t *testing.T) {
	schemaJSON := `{"anyOf": [{"const": "a"}, {"const": "b"}]}`
	problems := validateAll(t, `"z"`, schemaJSON)
	require.Len(t, problems, 1)
	assert.Equal(t, EnumValueMismatch, problems[0].Code)
	assert.Equal(t, `Value is not accepted. Valid values: "a", "b".`, problems[0].Message)
}

func TestTypeMismatchSingle(t *testing.T) {
	problems := validateAll(t, `"text"`, `{"type": "number"}`)
	require.Len(t, problems, 1)
	assert.Equal(t, `Incorrect type. Expected "number".`, problems[0].Message)
}

func TestTypeMismatchMultiple(t *testing.T) {
	problems := validateAll(t, `true`, `{"type": ["number", "string"]}`)
	require.Len(t, problems, 1)
	assert.Equal(t, `Incorrect type. Expected one of "number, string".`, problems[0].Message)
}

func TestRequiredPropertyMissingPinnedToPropertyKey(t *testing.T) {
	text := `{"address": {"city": "x"}}`
	schemaJSON := `{
		"type": "object",
		"properties": {
			"address": {
				"type": "object",
				"required": ["city", "zip"]
			}
		}
	}`
	node := mustParse(t, text)
	schema := mustSchema(t, schemaJSON)
	result := NewValidationResult()
	Validate(node, normalizeSchemaRef(schema), result, NoopCollector{})
	require.Len(t, result.Problems, 1)
	assert.Equal(t, `Missing property "zip".`, result.Problems[0].Message)

	addressKey := node.Properties[0].PropertyKey
	assert.Equal(t, addressKey.Range(), result.Problems[0].Location)
}

func TestAdditionalPropertiesFalseFlagsExtraKey(t *testing.T) {
	schemaJSON := `{
		"type": "object",
		"properties": {"a": {"type": "number"}},
		"additionalProperties": false
	}`
	problems := validateAll(t, `{"a": 1, "b": 2}`, schemaJSON)
	require.Len(t, problems, 1)
	assert.Equal(t, `Property "b" is not allowed.`, problems[0].Message)
}

func TestErrorMessageOverride(t *testing.T) {
	schemaJSON := `{"type": "number", "errorMessage": "must be numeric"}`
	problems := validateAll(t, `"nope"`, schemaJSON)
	require.Len(t, problems, 1)
	assert.Equal(t, "must be numeric", problems[0].Message)
}

func TestBooleanSchemaFalseRejectsEverything(t *testing.T) {
	problems := validateAll(t, `1`, `false`)
	require.Len(t, problems, 1)
	assert.Equal(t, "Matches a schema that is always false", problems[0].Message)
}

func TestBooleanSchemaTrueAcceptsEverything(t *testing.T) {
	problems := validateAll(t, `{"anything": [1, 2, {"x": null}]}`, `true`)
	assert.Empty(t, problems)
}

func TestExclusiveMinimumDraft07NumberForm(t *testing.T) {
	problems := validateAll(t, `5`, `{"exclusiveMinimum": 5}`)
	require.Len(t, problems, 1)

	problems = validateAll(t, `6`, `{"exclusiveMinimum": 5}`)
	assert.Empty(t, problems)
}

func TestExclusiveMinimumDraft04BooleanForm(t *testing.T) {
	problems := validateAll(t, `5`, `{"minimum": 5, "exclusiveMinimum": true}`)
	require.Len(t, problems, 1)

	problems = validateAll(t, `5`, `{"minimum": 5, "exclusiveMinimum": false}`)
	assert.Empty(t, problems)
}

// TestOneOfSingleValidBranchPropagatesCounters guards against a
// regression where a oneOf with exactly one matching branch discarded
// that branch's ValidationResult counters (PropertiesMatches,
// PrimaryValueMatches, EnumValueMatch) instead of folding them into the
// caller's result. An enclosing combinator's scorer needs those
// counters to compare this branch against a sibling.
func TestOneOfSingleValidBranchPropagatesCounters(t *testing.T) {
	node := mustParse(t, `{"kind": "A"}`)
	schema := mustSchema(t, `{
		"oneOf": [
			{"properties": {"kind": {"const": "A"}}, "required": ["kind"]}
		]
	}`)
	result := NewValidationResult()
	Validate(node, normalizeSchemaRef(schema), result, NoopCollector{})

	assert.Empty(t, result.Problems)
	assert.Equal(t, 1, result.PropertiesMatches)
	assert.Equal(t, 1, result.PropertiesValueMatches)
	assert.Equal(t, 1, result.PrimaryValueMatches)
}

// TestOneOfAmbiguousBranchesPropagateCounters covers the same
// regression for the "two or more valid branches" case: both winning
// branches' counters should still reach the caller even though an
// ambiguity warning is also raised.
func TestOneOfAmbiguousBranchesPropagateCounters(t *testing.T) {
	node := mustParse(t, `{"kind": "A"}`)
	schema := mustSchema(t, `{
		"oneOf": [
			{"properties": {"kind": {"const": "A"}}},
			{"properties": {"kind": {"type": "string"}}}
		]
	}`)
	result := NewValidationResult()
	Validate(node, normalizeSchemaRef(schema), result, NoopCollector{})

	require.Len(t, result.Problems, 1)
	assert.Equal(t, "Matches multiple schemas when only one must validate.", result.Problems[0].Message)
	assert.Equal(t, 2, result.PropertiesMatches)
	assert.Equal(t, 2, result.PropertiesValueMatches)
	assert.Equal(t, 1, result.PrimaryValueMatches)
}
