package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// It covers the string-valued fields this module describes.
type Schema struct {
	Schema      string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Core
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`

	// String
	Pattern   string `json:"pattern,omitempty"`
	MinLength *int   `json:"minLength,omitempty"`

	Examples []any `json:"examples,omitempty"`
}

// Draft is the JSON Schema dialect emitted by this module.
const Draft = "https://json-schema.org/draft/2020-12/schema"
