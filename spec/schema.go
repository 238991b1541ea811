package spec

// Primitive schema types from the OAS 2.0 vocabulary.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// DefinitionsRefPrefix is the JSON reference prefix for named schemas in an
// OAS 2.0 document.
const DefinitionsRefPrefix = "#/definitions/"

// Schema represents a JSON Schema as used by OAS 2.0 documents.
// Only the subset the assembler emits is modeled.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	Items                *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *Schema            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
}

// Ref returns a schema holding only a $ref to the named definition.
func Ref(name string) *Schema {
	return &Schema{Ref: DefinitionsRefPrefix + name}
}

// Clone returns a shallow copy of the schema. Property and item maps are
// shared; callers that mutate nested schemas must copy deeper themselves.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	dup := *s
	return &dup
}

// IsObject reports whether the schema describes an object shape (as opposed
// to a primitive, an array, or a reference).
func (s *Schema) IsObject() bool {
	return s != nil && s.Ref == "" && s.Type == TypeObject
}
