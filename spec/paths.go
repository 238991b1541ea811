package spec

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path
type PathItem struct {
	Get        *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put        *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post       *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete     *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options    *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Patch      *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Operations returns the non-nil operations of the item keyed by lower-case
// HTTP method name.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation, 6)
	if p.Get != nil {
		ops["get"] = p.Get
	}
	if p.Put != nil {
		ops["put"] = p.Put
	}
	if p.Post != nil {
		ops["post"] = p.Post
	}
	if p.Delete != nil {
		ops["delete"] = p.Delete
	}
	if p.Options != nil {
		ops["options"] = p.Options
	}
	if p.Patch != nil {
		ops["patch"] = p.Patch
	}
	return ops
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags        []string             `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Consumes    []string             `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces    []string             `yaml:"produces,omitempty" json:"produces,omitempty"`
	Parameters  []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses   map[string]*Response `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
}

// Response describes a single response from an API operation
type Response struct {
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
}
