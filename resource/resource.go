package resource

import (
	"fmt"
	"strings"
)

// Action is a declared HTTP action on a route. The set is closed: the route
// merger matches exhaustively and fails the whole assembly on anything else.
type Action string

// The supported route actions.
const (
	GET     Action = "GET"
	PUT     Action = "PUT"
	POST    Action = "POST"
	PATCH   Action = "PATCH"
	DELETE  Action = "DELETE"
	OPTIONS Action = "OPTIONS"
)

// ParamRole classifies a declared route parameter.
type ParamRole string

// The supported parameter roles.
const (
	RolePath     ParamRole = "PATH"
	RoleQuery    ParamRole = "QUERY"
	RoleBody     ParamRole = "BODY"
	RoleResponse ParamRole = "RESPONSE"
	RoleConsumes ParamRole = "CONSUMES"
	RoleProduces ParamRole = "PRODUCES"
)

// SupportLevel is the ordered documentation tier of a route. Routes that
// declare a tier below a configured threshold are excluded from the
// assembled document; routes that declare none are always documented.
type SupportLevel int

// Support tiers, in ascending order. Unset is the zero value, a route that
// never declared a tier.
const (
	Unset SupportLevel = iota
	NotSupported
	Deprecated
	Supported
)

var supportLevelNames = map[SupportLevel]string{
	NotSupported: "NOTSUPPORTED",
	Deprecated:   "DEPRECATED",
	Supported:    "SUPPORTED",
}

// String returns the canonical upper-case name of the level.
func (l SupportLevel) String() string {
	if l == Unset {
		return "UNSET"
	}
	if name, ok := supportLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("SupportLevel(%d)", int(l))
}

// ParseSupportLevel converts a level name to a SupportLevel.
// Matching is case-insensitive.
func ParseSupportLevel(s string) (SupportLevel, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for level, name := range supportLevelNames {
		if name == upper {
			return level, nil
		}
	}
	return Unset, fmt.Errorf("resource: unknown support level %q", s)
}

// MarshalText implements encoding.TextMarshaler so levels round-trip through
// both JSON and YAML batch files.
func (l SupportLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *SupportLevel) UnmarshalText(text []byte) error {
	level, err := ParseSupportLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// RouteParameter is one declared parameter of a route.
type RouteParameter struct {
	Name        string    `yaml:"name" json:"name"`
	Role        ParamRole `yaml:"role" json:"role"`
	Type        string    `yaml:"type,omitempty" json:"type,omitempty"`
	Required    bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Value       string    `yaml:"value,omitempty" json:"value,omitempty"` // default value
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
}

// Route is a declared mapping from (path suffix, HTTP action) to parameter
// and response metadata. An empty Path means the resource's own path.
type Route struct {
	Path         string           `yaml:"path,omitempty" json:"path,omitempty"`
	Action       Action           `yaml:"action" json:"action"`
	SupportLevel SupportLevel     `yaml:"supportLevel,omitempty" json:"supportLevel,omitempty"`
	Description  string           `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters   []RouteParameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestKind  string           `yaml:"requestKind,omitempty" json:"requestKind,omitempty"`
	ResponseKind string           `yaml:"responseKind,omitempty" json:"responseKind,omitempty"`
}

// DocumentDescription is the declared self-description of a resource.
type DocumentDescription struct {
	// Kind is the stable type identifier of the resource's backing document,
	// empty when the resource is not document-bearing.
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
	// Name overrides the resource's tag name when non-blank.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Description overrides the resource's tag description when non-blank.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ResourceMetadata is everything the gather step retrieved for one resource.
// It is constructed once per resource, consumed during a single assembly
// pass, and discarded afterwards.
type ResourceMetadata struct {
	// Path is the resource's normalized path, unique per resource.
	Path string `yaml:"path" json:"path"`
	// Description carries the declared display name, description, and
	// document kind, when the service reports one.
	Description *DocumentDescription `yaml:"description,omitempty" json:"description,omitempty"`
	// HasInstances is true when at least one document instance was retrieved
	// under Path; such resources are documented as factories.
	HasInstances bool `yaml:"hasInstances,omitempty" json:"hasInstances,omitempty"`
	// Routes is the declared route table, possibly empty.
	Routes []Route `yaml:"routes,omitempty" json:"routes,omitempty"`
}

// Kind returns the document kind, or "" when none was declared.
func (m *ResourceMetadata) Kind() string {
	if m == nil || m.Description == nil {
		return ""
	}
	return m.Description.Kind
}
