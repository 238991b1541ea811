package assembler

import (
	"sort"
	"strings"

	"github.com/introspec-io/introspec/describe"
	"github.com/introspec-io/introspec/spec"
)

// SchemaRegistry deduplicates named schema definitions for one assembly run.
// A kind is registered at most once; later registrations of the same kind
// return the original name without re-deriving the definition. Registries
// must not be shared across concurrent runs.
type SchemaRegistry struct {
	logger spec.Logger

	// stripPrefixes, longest first, are removed from kind identifiers when
	// deriving definition names.
	stripPrefixes []string

	nameByKind map[string]string
	defs       map[string]*spec.Schema
	order      []string
}

// NewSchemaRegistry returns an empty registry. A nil logger disables logging.
func NewSchemaRegistry(stripPrefixes []string, logger spec.Logger) *SchemaRegistry {
	if logger == nil {
		logger = spec.NopLogger{}
	}
	sorted := make([]string, len(stripPrefixes))
	copy(sorted, stripPrefixes)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return &SchemaRegistry{
		logger:        logger,
		stripPrefixes: sorted,
		nameByKind:    make(map[string]string),
		defs:          make(map[string]*spec.Schema),
	}
}

// Register records the description's schema under a derived name and returns
// that name. Registering the same kind again returns the original name.
//
// When two different kinds strip to the same name, the later registration
// takes over the name slot. The earlier kind keeps resolving to the shared
// name, so its references point at the newer definition.
func (r *SchemaRegistry) Register(d *describe.Description) string {
	if name, ok := r.nameByKind[d.Kind]; ok {
		return name
	}

	name := r.displayName(d.Kind)
	schema := d.Schema.Clone()
	if schema == nil {
		schema = &spec.Schema{Type: spec.TypeObject}
	}
	if schema.Title == "" && d.Name != "" {
		schema.Title = humanizeTitle(d.Name)
	}

	if _, taken := r.defs[name]; taken {
		r.logger.Warn("schema name collision, later kind replaces the definition",
			"name", name, "kind", d.Kind)
	} else {
		r.order = append(r.order, name)
	}
	r.nameByKind[d.Kind] = name
	r.defs[name] = schema
	return name
}

// Definitions returns a snapshot of the registered definitions keyed by name.
func (r *SchemaRegistry) Definitions() map[string]*spec.Schema {
	if len(r.defs) == 0 {
		return nil
	}
	snapshot := make(map[string]*spec.Schema, len(r.defs))
	for _, name := range r.order {
		snapshot[name] = r.defs[name]
	}
	return snapshot
}

// displayName derives a definition name from a kind identifier: the first
// matching strip prefix is removed along with its trailing separator,
// otherwise everything up to the final path separator is dropped.
func (r *SchemaRegistry) displayName(kind string) string {
	for _, prefix := range r.stripPrefixes {
		if strings.HasPrefix(kind, prefix) {
			name := strings.TrimLeft(strings.TrimPrefix(kind, prefix), "./")
			if name != "" {
				return name
			}
		}
	}
	if idx := strings.LastIndex(kind, "/"); idx != -1 {
		return kind[idx+1:]
	}
	return kind
}
