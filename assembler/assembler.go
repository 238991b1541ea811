package assembler

import (
	"sort"
	"strings"

	"github.com/introspec-io/introspec/describe"
	"github.com/introspec-io/introspec/gather"
	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/spec"
)

// Internal paths never documented regardless of configuration.
var alwaysExcludedPrefixes = []string{
	"/core/node-selectors",
	"/core/ui",
	"/user-interface",
}

// Assembler holds the configuration of document assembly. Configure it with
// the fluent setters, then call Assemble; each call produces an independent
// document and schema registry, so one Assembler may serve concurrent calls.
type Assembler struct {
	info             *spec.Info
	host             string
	basePath         string
	selfPath         string
	stripPrefixes    []string
	excludedPrefixes []string
	supportLevel     resource.SupportLevel
	excludeUtilities bool
	provider         describe.Provider
	logger           spec.Logger
}

// New returns an Assembler with the default configuration: deprecated
// routes and above are documented, utilities are included, and schemas
// resolve through a reflection provider pre-loaded with the standard
// utility document types.
func New() *Assembler {
	return &Assembler{
		basePath:     "/",
		supportLevel: resource.Deprecated,
		provider:     describe.NewReflector(),
		logger:       spec.NopLogger{},
	}
}

// Clone returns a copy of the assembler, so callers can vary per-request
// settings such as the host without touching the shared configuration.
func (a *Assembler) Clone() *Assembler {
	dup := *a
	dup.stripPrefixes = append([]string(nil), a.stripPrefixes...)
	dup.excludedPrefixes = append([]string(nil), a.excludedPrefixes...)
	return &dup
}

// Host returns the configured host field.
func (a *Assembler) Host() string {
	return a.host
}

// SetInfo sets the document's info block.
func (a *Assembler) SetInfo(info *spec.Info) *Assembler {
	a.info = info
	return a
}

// SetHost sets the document's host field, typically the Host header of the
// request that triggered assembly.
func (a *Assembler) SetHost(host string) *Assembler {
	a.host = host
	return a
}

// SetBasePath sets the document's base path. Defaults to "/".
func (a *Assembler) SetBasePath(basePath string) *Assembler {
	a.basePath = basePath
	return a
}

// SetSelfPath excludes the descriptor service's own path from the document.
func (a *Assembler) SetSelfPath(selfPath string) *Assembler {
	a.selfPath = selfPath
	return a
}

// SetStripPrefixes configures kind prefixes removed when deriving schema
// definition names.
func (a *Assembler) SetStripPrefixes(prefixes ...string) *Assembler {
	a.stripPrefixes = prefixes
	return a
}

// SetExcludedPrefixes configures resource path prefixes excluded from the
// document.
func (a *Assembler) SetExcludedPrefixes(prefixes ...string) *Assembler {
	a.excludedPrefixes = prefixes
	return a
}

// SetSupportLevel sets the minimum support level a route must declare to be
// documented. Routes with no declared level are exempt from the threshold.
func (a *Assembler) SetSupportLevel(level resource.SupportLevel) *Assembler {
	a.supportLevel = level
	return a
}

// SetExcludeUtilities disables the synthesized utility sub-paths.
func (a *Assembler) SetExcludeUtilities(exclude bool) *Assembler {
	a.excludeUtilities = exclude
	return a
}

// SetProvider replaces the schema-description provider. Tokens the provider
// cannot resolve still fall back to the built-in utility document types.
func (a *Assembler) SetProvider(p describe.Provider) *Assembler {
	a.provider = p
	return a
}

// WithLogger sets the logger. A nil logger disables logging.
func (a *Assembler) WithLogger(logger spec.Logger) *Assembler {
	if logger == nil {
		logger = spec.NopLogger{}
	}
	a.logger = logger
	return a
}

// run carries the per-call state of one assembly: the document under
// construction, its schema registry, and the tag of the resource currently
// being processed.
type run struct {
	cfg      *Assembler
	doc      *spec.Document
	registry *SchemaRegistry
	classify *classifier
	tag      *spec.Tag
}

// Assemble builds a document from a gathered batch. Resources whose fetch
// failed are omitted silently; excluded paths are skipped; everything else
// is assembled in sorted path order. A route with an unknown HTTP action
// fails the whole run and no document is returned.
func (a *Assembler) Assemble(batch gather.Batch) (*spec.Document, error) {
	doc := spec.New()
	doc.Info = a.info
	doc.Host = a.host
	doc.BasePath = a.basePath
	doc.Consumes = []string{spec.MediaTypeJSON}
	doc.Produces = []string{spec.MediaTypeJSON}

	registry := NewSchemaRegistry(a.stripPrefixes, a.logger)
	provider := a.provider
	if provider == nil {
		provider = describe.NewReflector()
	}
	r := &run{
		cfg:      a,
		doc:      doc,
		registry: registry,
		classify: &classifier{
			registry: registry,
			provider: &fallbackProvider{primary: provider},
			logger:   a.logger,
		},
	}

	for _, path := range a.sortedResourcePaths(batch) {
		meta := batch[path].Meta
		if err := r.addResource(path, meta); err != nil {
			return nil, &AssemblyError{Resource: path, Cause: err}
		}
	}

	// definitions are attached once, after every resource contributed
	doc.Definitions = registry.Definitions()
	return doc, nil
}

// sortedResourcePaths filters the batch down to assemblable resources and
// orders them deterministically.
func (a *Assembler) sortedResourcePaths(batch gather.Batch) []string {
	paths := make([]string, 0, len(batch))
	for path, result := range batch {
		if result.Err != nil || result.Meta == nil {
			a.logger.Debug("skipping failed resource", "resource", path, "error", result.Err)
			continue
		}
		if a.excluded(path) {
			a.logger.Debug("skipping excluded resource", "resource", path)
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (a *Assembler) excluded(path string) bool {
	if a.selfPath != "" && path == a.selfPath {
		return true
	}
	for _, prefix := range alwaysExcludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	for _, prefix := range a.excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// fallbackProvider resolves through the configured provider first and falls
// back to the built-in utility document types, so utility paths keep their
// schemas under custom providers.
type fallbackProvider struct {
	primary  describe.Provider
	builtins *describe.Reflector
}

func (f *fallbackProvider) Describe(token string) (*describe.Description, error) {
	desc, err := f.primary.Describe(token)
	if err == nil {
		return desc, nil
	}
	if f.builtins == nil {
		f.builtins = describe.NewReflector()
	}
	if desc, builtinErr := f.builtins.Describe(token); builtinErr == nil {
		return desc, nil
	}
	return nil, err
}
