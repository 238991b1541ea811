package assembler

import (
	"errors"
	"sort"
	"strings"

	"github.com/introspec-io/introspec/describe"
	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/spec"
	"github.com/introspec-io/introspec/specerrors"
)

const (
	paramNameBody = "body"
	paramNameID   = "id"
	asSeparator   = "_as_"

	descriptionSuccess = "Success"
	descriptionError   = "Error"
)

// classifier converts declared route parameters and type tokens into
// document parameters, responses, and schemas. One classifier serves one
// assembly run; resourcePath tracks the resource currently being assembled
// for diagnostics.
type classifier struct {
	registry     *SchemaRegistry
	provider     describe.Provider
	logger       spec.Logger
	resourcePath string
}

// paramPath converts a PATH-role parameter.
func (c *classifier) paramPath(p resource.RouteParameter) *spec.Parameter {
	return &spec.Parameter{
		Name:        p.Name,
		In:          spec.InPath,
		Description: p.Description,
		Required:    p.Required,
		Type:        strings.ToLower(p.Type),
		Default:     defaultValue(p.Value),
	}
}

// paramQuery converts a QUERY-role parameter. A blank parameter description
// falls back to the owning route's description.
func (c *classifier) paramQuery(p resource.RouteParameter, route resource.Route) *spec.Parameter {
	desc := p.Description
	if desc == "" {
		desc = route.Description
	}
	return &spec.Parameter{
		Name:        p.Name,
		In:          spec.InQuery,
		Description: desc,
		Required:    p.Required,
		Type:        strings.ToLower(p.Type),
		Default:     defaultValue(p.Value),
	}
}

// paramBody builds the single body parameter for a route that declares a
// request type. An unresolvable type yields a schema-less body.
func (c *classifier) paramBody(token string) *spec.Parameter {
	return &spec.Parameter{
		Name:   paramNameBody,
		In:     spec.InBody,
		Schema: c.resolveSchema(token),
	}
}

// paramNamedBody builds a body parameter named after the short form of its
// type, for paths that accept several alternative payload shapes.
func (c *classifier) paramNamedBody(token string) *spec.Parameter {
	p := c.paramBody(token)
	p.Name = paramNameBody + asSeparator + resource.ShortKind(token)
	return p
}

// paramMultiBody collapses several BODY-role parameters into one body with a
// synthetic object schema. The target format cannot express alternative
// request payloads on a single operation, so the shapes are flattened into
// one property per declared parameter.
func (c *classifier) paramMultiBody(params []resource.RouteParameter, route resource.Route) *spec.Parameter {
	properties := make(map[string]*spec.Schema, len(params))
	var required []string
	for _, p := range params {
		desc := p.Description
		if desc == "" {
			desc = route.Description
		}
		properties[p.Name] = &spec.Schema{
			Type:        spec.TypeString,
			Description: desc,
			Default:     defaultValue(p.Value),
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	sort.Strings(required)
	return &spec.Parameter{
		Name: paramNameBody,
		In:   spec.InBody,
		Schema: &spec.Schema{
			Type:       spec.TypeObject,
			Properties: properties,
			Required:   required,
		},
	}
}

// paramResponse converts a RESPONSE-role parameter into a response entry.
func (c *classifier) paramResponse(p resource.RouteParameter) *spec.Response {
	res := &spec.Response{Description: p.Description}
	if p.Type != "" {
		res.Schema = c.resolveSchema(p.Type)
	}
	return res
}

// paramID is the required string path parameter of by-id paths.
func (c *classifier) paramID() *spec.Parameter {
	return &spec.Parameter{
		Name:     paramNameID,
		In:       spec.InPath,
		Required: true,
		Type:     spec.TypeString,
	}
}

// responseOK builds a 200 response, optionally carrying a schema for the
// given type token.
func (c *classifier) responseOK(token string) *spec.Response {
	res := &spec.Response{Description: descriptionSuccess}
	if token != "" {
		res.Schema = c.resolveSchema(token)
	}
	return res
}

// responseError builds a 404 response referencing the generic error schema.
func (c *classifier) responseError() *spec.Response {
	return &spec.Response{
		Description: descriptionError,
		Schema:      c.resolveSchema(resource.Kind(resource.ErrorResponse{})),
	}
}

// resolveSchema converts a declared type token into a schema. The primitive
// and marker tokens match case-sensitively; everything else, including
// capitalized class-like tokens, is resolved through the provider and, when
// it describes an object, registered as a named definition and returned as a
// reference. Unresolvable tokens degrade to a nil schema with a log entry,
// they never abort assembly.
func (c *classifier) resolveSchema(token string) *spec.Schema {
	switch token {
	case "", "void":
		return nil
	case "int", "integer", "long", "short", "byte", "double", "float", "number":
		return &spec.Schema{Type: spec.TypeNumber, Format: "double"}
	case "char", "string":
		return &spec.Schema{Type: spec.TypeString}
	case "bool", "boolean":
		return &spec.Schema{Type: spec.TypeBoolean}
	case "object", "map", "any":
		return &spec.Schema{Type: spec.TypeObject}
	}

	desc, err := c.provider.Describe(token)
	if err != nil {
		var resolveErr *specerrors.ResolveError
		if errors.As(err, &resolveErr) && resolveErr.Resource == "" {
			resolveErr.Resource = c.resourcePath
		}
		c.logger.Warn("cannot resolve type token",
			"token", token, "resource", c.resourcePath, "error", err)
		return nil
	}
	if desc.IsPrimitive() {
		return desc.Schema.Clone()
	}
	return spec.Ref(c.registry.Register(desc))
}

// defaultValue keeps empty declared defaults out of the document.
func defaultValue(v string) any {
	if v == "" {
		return nil
	}
	return v
}
