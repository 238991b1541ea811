package spec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func testDocument() *Document {
	doc := New()
	doc.Info = &Info{Title: "Fleet API", Version: "1.0.0"}
	doc.Host = "node-1:8000"
	doc.BasePath = "/"
	doc.Consumes = []string{MediaTypeJSON}
	doc.Produces = []string{MediaTypeJSON}
	doc.Path("/widgets", &PathItem{
		Get: &Operation{
			Tags:        []string{"/widgets"},
			Description: "Query service instances",
			Responses: map[string]*Response{
				"200": {Description: "Success", Schema: Ref("resource.DocumentPage")},
			},
		},
	})
	doc.Definitions = map[string]*Schema{
		"resource.DocumentPage": {
			Type: TypeObject,
			Properties: map[string]*Schema{
				"documentLinks": {Type: TypeArray, Items: &Schema{Type: TypeString}},
			},
		},
	}
	doc.AddTag(&Tag{Name: "/widgets"})
	return doc
}

func TestEncodeJSON(t *testing.T) {
	data, err := Encode(testDocument(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2.0", decoded["swagger"])

	paths, ok := decoded["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/widgets")
}

func TestEncodeYAML(t *testing.T) {
	data, err := Encode(testDocument(), FormatYAML)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "2.0", decoded["swagger"])
	assert.Contains(t, decoded, "definitions")
}

func TestNegotiateFormat(t *testing.T) {
	tests := []struct {
		accept string
		want   Format
	}{
		{"", FormatJSON},
		{"application/json", FormatJSON},
		{"text/x-yaml", FormatYAML},
		{"application/yaml", FormatYAML},
		{"text/yml", FormatYAML},
		{"*/*", FormatJSON},
	}
	for _, tt := range tests {
		t.Run("accept "+tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, NegotiateFormat(tt.accept))
		})
	}
}

func TestFormatMediaType(t *testing.T) {
	assert.Equal(t, "application/json", FormatJSON.MediaType())
	assert.Equal(t, "text/x-yaml", FormatYAML.MediaType())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestPathItemOperations(t *testing.T) {
	item := &PathItem{
		Get:  &Operation{Description: "get"},
		Post: &Operation{Description: "post"},
	}
	ops := item.Operations()
	assert.Len(t, ops, 2)
	assert.Contains(t, ops, "get")
	assert.Contains(t, ops, "post")
}

func TestSchemaHelpers(t *testing.T) {
	ref := Ref("resource.ServiceStats")
	assert.Equal(t, "#/definitions/resource.ServiceStats", ref.Ref)
	assert.False(t, ref.IsObject())

	obj := &Schema{Type: TypeObject}
	assert.True(t, obj.IsObject())

	dup := obj.Clone()
	dup.Type = TypeString
	assert.Equal(t, TypeObject, obj.Type, "clone must not alias the original")

	var nilSchema *Schema
	assert.Nil(t, nilSchema.Clone())
}
