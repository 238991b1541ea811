package describe

import (
	"github.com/introspec-io/introspec/spec"
)

// Description is the resolved shape of one document type: its identifiers
// plus a self-contained schema with all nested types inlined.
type Description struct {
	// Kind is the full type identifier the description was resolved from.
	Kind string
	// Name is the short type name, used as the default definition name.
	Name string
	// Description is optional human-readable documentation for the type.
	Description string
	// Schema is the derived schema. Never nil for a successful resolution.
	Schema *spec.Schema
}

// IsPrimitive reports whether the described type maps to a scalar schema.
// Primitive descriptions are inlined at their point of use instead of being
// registered as named definitions.
func (d *Description) IsPrimitive() bool {
	if d == nil || d.Schema == nil {
		return false
	}
	switch d.Schema.Type {
	case spec.TypeString, spec.TypeNumber, spec.TypeInteger, spec.TypeBoolean:
		return true
	}
	return false
}

// Provider resolves a declared type token to a Description.
type Provider interface {
	// Describe resolves token. Unknown tokens return a *specerrors.ResolveError.
	Describe(token string) (*Description, error)
}
