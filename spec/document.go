package spec

// SwaggerVersion is the only specification version the assembler produces.
const SwaggerVersion = "2.0"

// MediaTypeJSON is the single media type the described services negotiate.
const MediaTypeJSON = "application/json"

// Document represents a Swagger 2.0 (OAS2) document
// Reference: https://spec.openapis.org/oas/v2.0.html
type Document struct {
	Swagger     string             `yaml:"swagger" json:"swagger"` // Required: "2.0"
	Info        *Info              `yaml:"info" json:"info"`       // Required
	Host        string             `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath    string             `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Schemes     []string           `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Consumes    []string           `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces    []string           `yaml:"produces,omitempty" json:"produces,omitempty"`
	Paths       Paths              `yaml:"paths" json:"paths"` // Required
	Definitions map[string]*Schema `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	Tags        []*Tag             `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// New returns an empty document with the fixed specification version set.
func New() *Document {
	return &Document{
		Swagger: SwaggerVersion,
		Paths:   make(Paths),
	}
}

// Path records a path item under the given path string, replacing any
// previous item for the same path.
func (d *Document) Path(path string, item *PathItem) {
	if d.Paths == nil {
		d.Paths = make(Paths)
	}
	d.Paths[path] = item
}

// AddTag appends a tag to the document's tag list.
func (d *Document) AddTag(t *Tag) {
	d.Tags = append(d.Tags, t)
}
