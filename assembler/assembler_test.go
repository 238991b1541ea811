package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/introspec-io/introspec/describe"
	"github.com/introspec-io/introspec/gather"
	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/spec"
	"github.com/introspec-io/introspec/specerrors"
)

type testWidget struct {
	Name  string `json:"name,omitempty"`
	Count int64  `json:"count,omitempty"`
}

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	provider := describe.NewReflector()
	provider.Register(testWidget{})
	return New().
		SetInfo(&spec.Info{Title: "Test API", Version: "1.0"}).
		SetProvider(provider)
}

func factoryBatch() gather.Batch {
	batch := make(gather.Batch)
	batch.Add(&resource.ResourceMetadata{
		Path:         "/x",
		HasInstances: true,
		Description:  &resource.DocumentDescription{Kind: "assembler.testWidget"},
	})
	return batch
}

func TestAssembleFactoryResourcePaths(t *testing.T) {
	doc, err := newTestAssembler(t).Assemble(factoryBatch())
	require.NoError(t, err)

	want := []string{
		"/x", "/x/stats", "/x/config", "/x/subscriptions", "/x/template", "/x/available",
		"/x/{id}", "/x/{id}/stats", "/x/{id}/config", "/x/{id}/subscriptions",
		"/x/{id}/template", "/x/{id}/available",
	}
	require.Len(t, doc.Paths, len(want))
	for _, path := range want {
		assert.Contains(t, doc.Paths, path)
	}

	root := doc.Paths["/x"]
	assert.NotNil(t, root.Get)
	assert.NotNil(t, root.Post)
	assert.Nil(t, root.Put)
	assert.Equal(t, "Create service instance", root.Post.Description)
	assert.Equal(t, "Query service instances", root.Get.Description)
	require.Len(t, root.Get.Parameters, 4)
	assert.Equal(t, "$filter", root.Get.Parameters[0].Name)

	instance := doc.Paths["/x/{id}"]
	for method, op := range instance.Operations() {
		assert.NotNil(t, op, method)
	}
	assert.Len(t, instance.Operations(), 5)
	require.Len(t, instance.Parameters, 1)
	assert.Equal(t, "id", instance.Parameters[0].Name)
	assert.True(t, instance.Parameters[0].Required)

	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "/x", doc.Tags[0].Name)
}

func TestAssembleExcludeUtilities(t *testing.T) {
	doc, err := newTestAssembler(t).SetExcludeUtilities(true).Assemble(factoryBatch())
	require.NoError(t, err)

	require.Len(t, doc.Paths, 2)
	assert.Contains(t, doc.Paths, "/x")
	assert.Contains(t, doc.Paths, "/x/{id}")
}

func TestAssembleSeedsDocumentFields(t *testing.T) {
	doc, err := newTestAssembler(t).
		SetHost("api.example.com").
		SetBasePath("/v1").
		Assemble(factoryBatch())
	require.NoError(t, err)

	assert.Equal(t, spec.SwaggerVersion, doc.Swagger)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Equal(t, "api.example.com", doc.Host)
	assert.Equal(t, "/v1", doc.BasePath)
	assert.Equal(t, []string{spec.MediaTypeJSON}, doc.Consumes)
	assert.Equal(t, []string{spec.MediaTypeJSON}, doc.Produces)
}

func TestAssembleDefinitionsResolve(t *testing.T) {
	doc, err := newTestAssembler(t).Assemble(factoryBatch())
	require.NoError(t, err)
	require.NotEmpty(t, doc.Definitions)

	var walk func(s *spec.Schema)
	checkRef := func(ref string) {
		if ref == "" {
			return
		}
		name := ref[len(spec.DefinitionsRefPrefix):]
		assert.Contains(t, doc.Definitions, name, "unresolved reference %s", ref)
	}
	walk = func(s *spec.Schema) {
		if s == nil {
			return
		}
		checkRef(s.Ref)
		walk(s.Items)
		walk(s.AdditionalProperties)
		for _, prop := range s.Properties {
			walk(prop)
		}
	}

	for _, item := range doc.Paths {
		for _, op := range item.Operations() {
			for _, p := range op.Parameters {
				walk(p.Schema)
			}
			for _, res := range op.Responses {
				walk(res.Schema)
			}
		}
	}
}

func TestAssembleRouteWithoutSupportLevel(t *testing.T) {
	var meta resource.ResourceMetadata
	require.NoError(t, yaml.Unmarshal([]byte(`
path: /tasks
routes:
  - action: GET
    description: pending tasks
`), &meta))

	batch := make(gather.Batch)
	batch.Add(&meta)

	doc, err := New().Assemble(batch)
	require.NoError(t, err)

	item := doc.Paths["/tasks"]
	require.NotNil(t, item)
	require.NotNil(t, item.Get, "a route with no declared support level is documented at the default threshold")
	assert.Equal(t, "pending tasks", item.Get.Description)
	assert.False(t, item.Get.Deprecated)
}

func TestAssembleDeterministicAcrossOrderings(t *testing.T) {
	metas := []*resource.ResourceMetadata{
		{Path: "/x", HasInstances: true,
			Description: &resource.DocumentDescription{Kind: "assembler.testWidget"}},
		{Path: "/y", HasInstances: true},
		{Path: "/z", Routes: []resource.Route{
			{Action: resource.GET, SupportLevel: resource.Supported, Description: "status"},
		}},
	}

	forward := make(gather.Batch)
	for _, m := range metas {
		forward.Add(m)
	}
	reversed := make(gather.Batch)
	for i := len(metas) - 1; i >= 0; i-- {
		reversed.Add(metas[i])
	}

	docA, err := newTestAssembler(t).Assemble(forward)
	require.NoError(t, err)
	docB, err := newTestAssembler(t).Assemble(reversed)
	require.NoError(t, err)

	jsonA, err := spec.Encode(docA, spec.FormatJSON)
	require.NoError(t, err)
	jsonB, err := spec.Encode(docB, spec.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, string(jsonA), string(jsonB))

	yamlA, err := spec.Encode(docA, spec.FormatYAML)
	require.NoError(t, err)
	yamlB, err := spec.Encode(docB, spec.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, string(yamlA), string(yamlB))
}

func TestAssembleSkipsFailedAndExcludedResources(t *testing.T) {
	batch := factoryBatch()
	batch.AddError("/broken", assert.AnError)
	batch.Add(&resource.ResourceMetadata{Path: "/internal/hidden", HasInstances: true})
	batch.Add(&resource.ResourceMetadata{Path: "/core/node-selectors/default", HasInstances: true})
	batch.Add(&resource.ResourceMetadata{Path: "/core/ui/app", HasInstances: true})
	batch.Add(&resource.ResourceMetadata{Path: "/discovery", HasInstances: true})

	doc, err := newTestAssembler(t).
		SetExcludedPrefixes("/internal").
		SetSelfPath("/discovery").
		Assemble(batch)
	require.NoError(t, err)

	for path := range doc.Paths {
		assert.NotContains(t, path, "/broken")
		assert.NotContains(t, path, "/internal")
		assert.NotContains(t, path, "/core")
		assert.NotContains(t, path, "/discovery")
	}
	for _, tag := range doc.Tags {
		assert.Equal(t, "/x", tag.Name)
	}
}

func TestAssembleSkipsEmptyResources(t *testing.T) {
	batch := make(gather.Batch)
	batch.Add(&resource.ResourceMetadata{Path: "/empty"})

	doc, err := newTestAssembler(t).Assemble(batch)
	require.NoError(t, err)
	assert.Empty(t, doc.Paths)
	assert.Empty(t, doc.Tags)
}

func TestAssembleThresholdScenario(t *testing.T) {
	batch := make(gather.Batch)
	batch.Add(&resource.ResourceMetadata{
		Path: "/jobs",
		Routes: []resource.Route{
			{Action: resource.POST, SupportLevel: resource.Supported,
				Parameters: []resource.RouteParameter{{Name: "priority", Role: resource.RoleQuery, Type: "String"}}},
			{Action: resource.POST, SupportLevel: resource.Deprecated,
				Parameters: []resource.RouteParameter{{Name: "legacy", Role: resource.RoleQuery, Type: "String"}}},
		},
	})

	doc, err := newTestAssembler(t).
		SetSupportLevel(resource.Supported).
		Assemble(batch)
	require.NoError(t, err)

	post := doc.Paths["/jobs"].Post
	require.NotNil(t, post)
	require.Len(t, post.Parameters, 1)
	assert.Equal(t, "priority", post.Parameters[0].Name)
}

func TestAssembleRoutesOverrideInstanceOperations(t *testing.T) {
	batch := make(gather.Batch)
	batch.Add(&resource.ResourceMetadata{
		Path:         "/x",
		HasInstances: true,
		Description:  &resource.DocumentDescription{Kind: "assembler.testWidget"},
		Routes: []resource.Route{
			{Action: resource.PATCH, SupportLevel: resource.Supported, Description: "partial update"},
		},
	})

	doc, err := newTestAssembler(t).SetExcludeUtilities(true).Assemble(batch)
	require.NoError(t, err)

	instance := doc.Paths["/x/{id}"]
	require.NotNil(t, instance.Patch)
	assert.Equal(t, "partial update", instance.Patch.Description)
	assert.Nil(t, instance.Get, "declared routes replace the default operations wholesale")
	assert.Nil(t, instance.Post)
}

func TestAssembleTagOverrides(t *testing.T) {
	batch := make(gather.Batch)
	batch.Add(&resource.ResourceMetadata{
		Path:         "/x",
		HasInstances: true,
		Description: &resource.DocumentDescription{
			Kind:        "assembler.testWidget",
			Name:        "Widgets",
			Description: "Widget management",
		},
	})

	doc, err := newTestAssembler(t).SetExcludeUtilities(true).Assemble(batch)
	require.NoError(t, err)

	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "Widgets", doc.Tags[0].Name)
	assert.Equal(t, "Widget management", doc.Tags[0].Description)
	assert.Equal(t, []string{"Widgets"}, doc.Paths["/x"].Post.Tags)
}

func TestAssembleUnknownActionFailsRun(t *testing.T) {
	batch := make(gather.Batch)
	batch.Add(&resource.ResourceMetadata{
		Path: "/jobs",
		Routes: []resource.Route{
			{Action: "TRACE", SupportLevel: resource.Supported},
		},
	})

	doc, err := newTestAssembler(t).Assemble(batch)
	assert.Nil(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, specerrors.ErrAction)
	assert.ErrorIs(t, err, specerrors.ErrAssembly)
	assert.Contains(t, err.Error(), "/jobs")
}

func TestAssembleUtilityPathShapes(t *testing.T) {
	doc, err := newTestAssembler(t).Assemble(factoryBatch())
	require.NoError(t, err)

	stats := doc.Paths["/x/{id}/stats"]
	require.NotNil(t, stats)
	require.Len(t, stats.Parameters, 1)
	assert.Equal(t, "id", stats.Parameters[0].Name)
	require.NotNil(t, stats.Put)
	require.Len(t, stats.Put.Parameters, 2)
	assert.Equal(t, "body_as_ServiceStats", stats.Put.Parameters[0].Name)
	assert.Equal(t, "body_as_ServiceStat", stats.Put.Parameters[1].Name)
	assert.Equal(t, stats.Post, stats.Patch, "POST and PATCH share one stat-accepting operation")

	available := doc.Paths["/x/available"]
	require.NotNil(t, available)
	responses := available.Get.Responses
	require.Len(t, responses, 3)
	assert.Equal(t, descriptionSuccess, responses["200"].Description)
	assert.Nil(t, responses["200"].Schema)
	assert.Equal(t, descriptionError, responses["503"].Description)
	assert.Nil(t, responses["503"].Schema)
	require.NotNil(t, responses["404"].Schema)

	template := doc.Paths["/x/template"]
	require.NotNil(t, template.Get)
	assert.Equal(t, spec.DefinitionsRefPrefix+"resource.DocumentPage",
		template.Get.Responses["200"].Schema.Ref)
	idTemplate := doc.Paths["/x/{id}/template"]
	assert.Equal(t, spec.DefinitionsRefPrefix+"resource.ServiceDocument",
		idTemplate.Get.Responses["200"].Schema.Ref)

	subs := doc.Paths["/x/subscriptions"]
	require.NotNil(t, subs)
	assert.Equal(t, subs.Post, subs.Delete)
	require.Len(t, subs.Post.Responses, 1)
	assert.Contains(t, subs.Post.Responses, "200")

	config := doc.Paths["/x/config"]
	require.NotNil(t, config.Get)
	require.NotNil(t, config.Patch)
	assert.Equal(t, spec.DefinitionsRefPrefix+"resource.ConfigUpdateRequest",
		config.Patch.Parameters[0].Schema.Ref)
}

func TestAssembleStripPrefixes(t *testing.T) {
	doc, err := newTestAssembler(t).
		SetStripPrefixes("github.com/introspec-io/introspec/resource").
		SetExcludeUtilities(true).
		Assemble(factoryBatch())
	require.NoError(t, err)

	assert.Contains(t, doc.Definitions, "ServiceDocument")
	assert.NotContains(t, doc.Definitions, "resource.ServiceDocument")
}

func TestAssembleConcurrentRunsAreIndependent(t *testing.T) {
	a := newTestAssembler(t)
	batch := factoryBatch()

	done := make(chan *spec.Document, 2)
	for i := 0; i < 2; i++ {
		go func() {
			doc, err := a.Assemble(batch)
			assert.NoError(t, err)
			done <- doc
		}()
	}
	docA, docB := <-done, <-done

	jsonA, err := spec.Encode(docA, spec.FormatJSON)
	require.NoError(t, err)
	jsonB, err := spec.Encode(docB, spec.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, string(jsonA), string(jsonB))
	assert.NotSame(t, docA, docB)
}
