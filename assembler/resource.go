package assembler

import (
	"sort"

	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/spec"
)

// Utility sub-paths synthesized under every documented resource.
const (
	suffixID            = "/{id}"
	suffixStats         = "/stats"
	suffixConfig        = "/config"
	suffixSubscriptions = "/subscriptions"
	suffixTemplate      = "/template"
	suffixAvailable     = "/available"
)

var genericDocumentKind = resource.Kind(resource.ServiceDocument{})

// addResource emits all paths for one resource. A resource with document
// instances becomes a factory with CRUD and by-id paths; a resource with
// only a route table becomes a singleton documented straight from its
// routes. Resources with neither are skipped without a tag.
func (a *run) addResource(uri string, meta *resource.ResourceMetadata) error {
	a.classify.resourcePath = uri

	// the resource path tags every operation unless the document
	// description carries an explicit name
	a.tag = &spec.Tag{Name: uri}
	if d := meta.Description; d != nil {
		if d.Name != "" {
			a.tag.Name = d.Name
		}
		if d.Description != "" {
			a.tag.Description = d.Description
		}
	}

	switch {
	case meta.HasInstances:
		if err := a.addFactory(uri, meta); err != nil {
			return err
		}
	case len(meta.Routes) > 0:
		merged, err := a.pathsByRoutes(meta.Routes)
		if err != nil {
			return err
		}
		for _, suffix := range sortedKeys(merged) {
			a.doc.Path(uri+suffix, merged[suffix])
		}
	default:
		a.cfg.logger.Debug("skipping resource without instances or routes", "resource", uri)
		return nil
	}

	a.doc.AddTag(a.tag)
	return nil
}

// addFactory emits the collection paths, the by-id instance path, and the
// utility sub-paths of a factory resource.
func (a *run) addFactory(uri string, meta *resource.ResourceMetadata) error {
	kind := meta.Kind()
	if kind == "" {
		kind = genericDocumentKind
	}

	a.doc.Path(uri, a.factoryItem(kind))

	if !a.cfg.excludeUtilities {
		a.addUtilities(uri, false)
	}

	instance, err := a.instanceItem(kind, meta.Routes)
	if err != nil {
		return err
	}
	a.doc.Path(uri+suffixID, instance)

	if !a.cfg.excludeUtilities {
		a.addUtilities(uri+suffixID, true)
	}
	return nil
}

func (a *run) addUtilities(base string, withID bool) {
	a.doc.Path(base+suffixStats, a.utilStats(withID))
	a.doc.Path(base+suffixConfig, a.utilConfig(withID))
	a.doc.Path(base+suffixSubscriptions, a.utilSubscriptions(withID))
	a.doc.Path(base+suffixTemplate, a.utilTemplate(withID))
	a.doc.Path(base+suffixAvailable, a.utilAvailable(withID))
}

// factoryItem builds the collection root: POST creates an instance, GET
// queries existing instances with the standard odata-style parameters.
func (a *run) factoryItem(kind string) *spec.PathItem {
	post := &spec.Operation{
		Tags:        []string{a.tag.Name},
		Description: "Create service instance",
		Parameters:  []*spec.Parameter{a.classify.paramBody(kind)},
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(kind),
		},
	}

	get := &spec.Operation{
		Tags:        []string{a.tag.Name},
		Description: "Query service instances",
		Parameters:  factoryQueryParams(),
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(resource.Kind(resource.DocumentPage{})),
		},
	}

	return &spec.PathItem{Get: get, Post: post}
}

// factoryQueryParams returns fresh instances of the fixed listing
// parameters, so per-call mutation can never leak between resources.
func factoryQueryParams() []*spec.Parameter {
	return []*spec.Parameter{
		{Name: "$filter", In: spec.InQuery, Type: spec.TypeString,
			Description: "OData filter expression"},
		{Name: "$select", In: spec.InQuery, Type: spec.TypeString,
			Description: "Comma-separated list of fields to populate in query result"},
		{Name: "$limit", In: spec.InQuery, Type: spec.TypeInteger, Example: "10",
			Description: "Set maximum number of documents to return in this query"},
		{Name: "$tenantLinks", In: spec.InQuery, Type: spec.TypeString,
			Description: "Comma-separated list"},
	}
}

// instanceItem builds the by-id path. When the resource declares its own
// routes, the merged route operations replace the defaults wholesale; the
// first path-suffix group in sorted order is used when several exist.
func (a *run) instanceItem(kind string, routes []resource.Route) (*spec.PathItem, error) {
	item := &spec.PathItem{
		Parameters: []*spec.Parameter{a.classify.paramID()},
		Get:        a.opDefault(kind),
	}

	if len(routes) > 0 {
		merged, err := a.pathsByRoutes(routes)
		if err != nil {
			return nil, err
		}
		first := merged[sortedKeys(merged)[0]]
		item.Get = first.Get
		item.Post = first.Post
		item.Put = first.Put
		item.Patch = first.Patch
		item.Delete = first.Delete
		return item, nil
	}

	// the route table is empty, assume every mutating action accepts a
	// generic document body
	op := &spec.Operation{
		Tags:       []string{a.tag.Name},
		Parameters: []*spec.Parameter{a.classify.paramBody(genericDocumentKind)},
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(kind),
			"404": a.classify.responseError(),
		},
	}
	item.Post = op
	item.Put = op
	item.Patch = op
	item.Delete = op
	return item, nil
}

// opDefault is the stock GET operation: the resource's own schema or a
// generic error.
func (a *run) opDefault(kind string) *spec.Operation {
	return &spec.Operation{
		Tags: []string{a.tag.Name},
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(kind),
			"404": a.classify.responseError(),
		},
	}
}

func (a *run) utilStats(withID bool) *spec.PathItem {
	statsKind := resource.Kind(resource.ServiceStats{})
	statKind := resource.Kind(resource.ServiceStat{})

	item := &spec.PathItem{}
	if withID {
		item.Parameters = []*spec.Parameter{a.classify.paramID()}
	}

	item.Get = a.opDefault(statsKind)

	item.Put = &spec.Operation{
		Tags: []string{a.tag.Name},
		Parameters: []*spec.Parameter{
			a.classify.paramNamedBody(statsKind),
			a.classify.paramNamedBody(statKind),
		},
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(statsKind),
			"404": a.classify.responseError(),
		},
	}

	postOrPatch := &spec.Operation{
		Tags:       []string{a.tag.Name},
		Parameters: []*spec.Parameter{a.classify.paramBody(statKind)},
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(statsKind),
			"404": a.classify.responseError(),
		},
	}
	item.Post = postOrPatch
	item.Patch = postOrPatch
	return item
}

func (a *run) utilConfig(withID bool) *spec.PathItem {
	configKind := resource.Kind(resource.ServiceConfiguration{})

	item := &spec.PathItem{}
	if withID {
		item.Parameters = []*spec.Parameter{a.classify.paramID()}
	}

	item.Get = a.opDefault(configKind)
	item.Patch = &spec.Operation{
		Tags: []string{a.tag.Name},
		Parameters: []*spec.Parameter{
			a.classify.paramBody(resource.Kind(resource.ConfigUpdateRequest{})),
		},
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(configKind),
			"404": a.classify.responseError(),
		},
	}
	return item
}

func (a *run) utilSubscriptions(withID bool) *spec.PathItem {
	stateKind := resource.Kind(resource.SubscriptionState{})

	item := &spec.PathItem{}
	if withID {
		item.Parameters = []*spec.Parameter{a.classify.paramID()}
	}

	item.Get = a.opDefault(stateKind)

	deleteOrPost := &spec.Operation{
		Tags: []string{a.tag.Name},
		Parameters: []*spec.Parameter{
			a.classify.paramBody(resource.Kind(resource.Subscriber{})),
		},
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(stateKind),
		},
	}
	item.Delete = deleteOrPost
	item.Post = deleteOrPost
	return item
}

func (a *run) utilTemplate(withID bool) *spec.PathItem {
	item := &spec.PathItem{}
	if withID {
		item.Parameters = []*spec.Parameter{a.classify.paramID()}
		item.Get = a.opDefault(genericDocumentKind)
	} else {
		// no id means the factory's template, a paged listing shape
		item.Get = a.opDefault(resource.Kind(resource.DocumentPage{}))
	}
	return item
}

func (a *run) utilAvailable(withID bool) *spec.PathItem {
	statsKind := resource.Kind(resource.ServiceStats{})

	item := &spec.PathItem{}
	if withID {
		item.Parameters = []*spec.Parameter{a.classify.paramID()}
	}

	item.Get = &spec.Operation{
		Tags: []string{a.tag.Name},
		Responses: map[string]*spec.Response{
			"200": {Description: descriptionSuccess},
			"503": {Description: descriptionError},
			"404": a.classify.responseError(),
		},
	}

	putOrPatch := &spec.Operation{
		Tags: []string{a.tag.Name},
		Parameters: []*spec.Parameter{
			a.classify.paramBody(resource.Kind(resource.ServiceStat{})),
		},
		Responses: map[string]*spec.Response{
			"200": a.classify.responseOK(statsKind),
			"404": a.classify.responseError(),
		},
	}
	item.Put = putOrPatch
	item.Patch = putOrPatch
	return item
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
