// Package schema defines the two fixed validation profiles for launch
// parameters and a small JSON-Schema-like rule engine over them. The rule
// sets are statically defined; no schema documents are parsed at runtime.
package schema

// Value types used in schemas.
const (
	String = "string"
	Object = "object"
)

// Formats checked against string-typed values. Parameter values are always
// strings on the wire, so format constraints describe what the string must
// parse as.
const (
	FormatInteger = "integer"
	FormatNumber  = "number"
	FormatBoolean = "boolean"
)

// Schema describes the structure of a JSON object.
type Schema struct {
	Type                 string               `json:"type"`
	Properties           map[string]*Property `json:"properties,omitempty"`
	PatternProperties    map[string]*Property `json:"patternProperties,omitempty"`
	Required             []string             `json:"required,omitempty"`
	AdditionalProperties *bool                `json:"additionalProperties,omitempty"`
}

// Property of a schema. An empty Type places no constraint on the value.
type Property struct {
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Description string `json:"description,omitempty"`
}
