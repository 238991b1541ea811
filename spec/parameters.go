package spec

// Parameter locations as defined by OAS 2.0.
const (
	InPath  = "path"
	InQuery = "query"
	InBody  = "body"
)

// Parameter describes a single operation parameter
// Reference: https://spec.openapis.org/oas/v2.0.html#parameter-object
type Parameter struct {
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // "path", "query", "body"
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`

	// Schema is set for body parameters only.
	Schema *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`

	// Non-body fields.
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	Format  string `yaml:"format,omitempty" json:"format,omitempty"`
	Items   *Items `yaml:"items,omitempty" json:"items,omitempty"`
	Default any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example any    `yaml:"x-example,omitempty" json:"x-example,omitempty"`
}

// Items represents the items object for array parameters (OAS 2.0)
type Items struct {
	Type   string `yaml:"type" json:"type"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Items  *Items `yaml:"items,omitempty" json:"items,omitempty"`
}
