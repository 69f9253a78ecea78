package jsonls

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Schema is a draft-07-subset JSON Schema, walked directly against an AST
// node rather than compiled. Unlike a resolving validator, it carries no
// $ref/$id/$defs machinery: schemas in this service are always already
// dereferenced by the caller, since the consumer is an editor extension
// that associates a whole schema document with a JSON document.
type Schema struct {
	// Boolean holds the value of a boolean schema shorthand ("true"
	// always passes, "false" never does). Nil when the schema was a
	// JSON object instead.
	Boolean *bool `json:"-"`

	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	Default            any     `json:"default,omitempty"`
	Deprecated         *bool   `json:"deprecated,omitempty"`
	DeprecationMessage *string `json:"deprecationMessage,omitempty"`

	// ErrorMessage, if set, replaces the message (not the severity) of
	// the problems this schema's own keyword checks raise. Enum/const
	// mismatches and problems raised by nested subschemas keep their
	// own messages.
	ErrorMessage *string `json:"errorMessage,omitempty"`
	// PatternErrorMessage overrides only the message used when pattern
	// or format fails to match, since "doesn't match /.../ " is rarely
	// useful to a human on its own.
	PatternErrorMessage *string `json:"patternErrorMessage,omitempty"`

	Type  SchemaType  `json:"type,omitempty"`
	Enum  []any       `json:"enum,omitempty"`
	Const *ConstValue `json:"const,omitempty"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	Properties           *SchemaMap      `json:"properties,omitempty"`
	PatternProperties    *SchemaMap      `json:"patternProperties,omitempty"`
	AdditionalProperties *Schema         `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema         `json:"propertyNames,omitempty"`
	Required             []string        `json:"required,omitempty"`
	MinProperties        *float64        `json:"minProperties,omitempty"`
	MaxProperties        *float64        `json:"maxProperties,omitempty"`
	Dependencies         map[string]any  `json:"dependencies,omitempty"` // value is a []any of names or a raw decoded schema

	Items           *Schema   `json:"items,omitempty"`
	ItemsList       []*Schema `json:"-"` // draft-07 tuple form of "items"
	AdditionalItems *Schema   `json:"additionalItems,omitempty"`
	Contains        *Schema   `json:"contains,omitempty"`
	MinItems        *float64  `json:"minItems,omitempty"`
	MaxItems        *float64  `json:"maxItems,omitempty"`
	UniqueItems     *bool     `json:"uniqueItems,omitempty"`

	MultipleOf       *float64 `json:"multipleOf,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty"`
	ExclusiveMinimum *Bound   `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *Bound   `json:"exclusiveMaximum,omitempty"`

	MinLength *float64 `json:"minLength,omitempty"`
	MaxLength *float64 `json:"maxLength,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`
	Format    *string  `json:"format,omitempty"`

	// Extra holds fields not recognized above, preserved on marshal so a
	// round-tripped schema doesn't silently drop author content.
	Extra map[string]any `json:"-"`
}

// ParseSchema decodes a JSON Schema document, normalizing the boolean
// schema shorthand and the draft-07 tuple form of "items".
func ParseSchema(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// knownSchemaKeys lists every field UnmarshalJSON consumes by name, so
// whatever is left over can be preserved in Extra.
var knownSchemaKeys = map[string]struct{}{
	"title": {}, "description": {}, "default": {}, "deprecated": {},
	"deprecationMessage": {}, "errorMessage": {}, "patternErrorMessage": {},
	"type": {}, "enum": {}, "const": {},
	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {},
	"properties": {}, "patternProperties": {}, "additionalProperties": {},
	"propertyNames": {}, "required": {}, "minProperties": {}, "maxProperties": {},
	"dependencies": {},
	"items": {}, "additionalItems": {}, "contains": {},
	"minItems": {}, "maxItems": {}, "uniqueItems": {},
	"multipleOf": {}, "minimum": {}, "maximum": {},
	"exclusiveMinimum": {}, "exclusiveMaximum": {},
	"minLength": {}, "maxLength": {}, "pattern": {}, "format": {},
}

// UnmarshalJSON accepts either a boolean schema or a schema object,
// remapping the draft-07 array form of "items" (tuple validation) onto
// ItemsList so the rest of the validator can tell the two shapes apart.
func (s *Schema) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == 't' || trimmed[0] == 'f') {
		var b bool
		if err := json.Unmarshal(data, &b); err == nil {
			s.Boolean = &b
			return nil
		}
	}

	type Alias Schema
	aux := &struct {
		Items any `json:"items,omitempty"`
		*Alias
	}{Alias: (*Alias)(s)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if aux.Items != nil {
		if list, ok := aux.Items.([]any); ok {
			itemsData, err := json.Marshal(list)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(itemsData, &s.ItemsList); err != nil {
				return err
			}
		} else {
			itemData, err := json.Marshal(aux.Items)
			if err != nil {
				return err
			}
			s.Items = &Schema{}
			if err := json.Unmarshal(itemData, s.Items); err != nil {
				return err
			}
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	extra := make(map[string]any)
	for key, val := range raw {
		if _, known := knownSchemaKeys[key]; known {
			continue
		}
		var v any
		if err := json.Unmarshal(val, &v); err != nil {
			return err
		}
		extra[key] = v
	}
	if len(extra) > 0 {
		s.Extra = extra
	}
	return nil
}

// MarshalJSON re-emits the boolean shorthand when present, otherwise
// marshals the object form plus any preserved Extra fields.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Boolean != nil {
		return json.Marshal(*s.Boolean)
	}

	type Alias Schema
	data, err := json.Marshal((*Alias)(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 && len(s.ItemsList) == 0 {
		return data, nil
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if len(s.ItemsList) > 0 {
		m["items"] = s.ItemsList
	}
	for k, v := range s.Extra {
		m[k] = v
	}
	return json.Marshal(m)
}

// IsFalse reports whether s is the boolean schema "false", the one
// shape that rejects every instance unconditionally.
func (s *Schema) IsFalse() bool {
	return s != nil && s.Boolean != nil && !*s.Boolean
}

// IsTrue reports whether s is the boolean schema "true", which accepts
// every instance unconditionally.
func (s *Schema) IsTrue() bool {
	return s != nil && s.Boolean != nil && *s.Boolean
}

// SchemaMap is a map of property/pattern name to subschema.
type SchemaMap map[string]*Schema

// SchemaType holds the "type" keyword, which may be a single string or
// an array of strings in the underlying JSON.
type SchemaType []string

func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*st = SchemaType{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return err
	}
	*st = SchemaType(multi)
	return nil
}

func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}

// Has reports whether t names kind among the schema's accepted types.
func (st SchemaType) Has(kind string) bool {
	for _, t := range st {
		if t == kind {
			return true
		}
	}
	return false
}

// Bound represents exclusiveMinimum/exclusiveMaximum, whose JSON shape
// changed between drafts: draft-04 used a boolean that modifies
// minimum/maximum into an exclusive bound, draft-06+ uses a standalone
// number. Both are accepted here and resolved at evaluation time.
type Bound struct {
	BoolValue bool
	NumValue  float64
	IsBool    bool
	IsSet     bool
}

func (b *Bound) UnmarshalJSON(data []byte) error {
	b.IsSet = true
	var bv bool
	if err := json.Unmarshal(data, &bv); err == nil {
		b.IsBool = true
		b.BoolValue = bv
		return nil
	}
	var nv float64
	if err := json.Unmarshal(data, &nv); err != nil {
		return err
	}
	b.NumValue = nv
	return nil
}

func (b Bound) MarshalJSON() ([]byte, error) {
	if !b.IsSet {
		return []byte("null"), nil
	}
	if b.IsBool {
		return json.Marshal(b.BoolValue)
	}
	return json.Marshal(b.NumValue)
}

// ConstValue distinguishes an absent "const" keyword from a present
// one whose value happens to be JSON null.
type ConstValue struct {
	Value any
	IsSet bool
}

func (cv *ConstValue) UnmarshalJSON(data []byte) error {
	cv.IsSet = true
	if string(data) == "null" {
		cv.Value = nil
		return nil
	}
	return json.Unmarshal(data, &cv.Value)
}

func (cv ConstValue) MarshalJSON() ([]byte, error) {
	if !cv.IsSet || cv.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(cv.Value)
}
