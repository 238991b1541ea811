package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/introspec-io/introspec/spec"
)

const testBatch = `
resources:
  - path: /widgets
    hasInstances: true
    description:
      kind: model.Widget
      name: Widgets
  - path: /health
    routes:
      - action: GET
        supportLevel: SUPPORTED
        description: Health check
`

func writeTestBatch(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testBatch), 0o600))
	return path
}

func TestHandleAssemble(t *testing.T) {
	result, output, err := handleAssemble(context.Background(), nil, assembleInput{
		BatchPath: writeTestBatch(t),
		Title:     "Test API",
		Version:   "1.0",
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "json", output.Format)
	assert.Equal(t, 13, output.Paths, "12 factory paths plus the routes-only resource")
	assert.Equal(t, 2, output.Tags)
	assert.Positive(t, output.Definitions)

	var doc spec.Document
	require.NoError(t, json.Unmarshal([]byte(output.Document), &doc))
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/widgets")
	assert.Contains(t, doc.Paths, "/widgets/{id}")
	assert.Contains(t, doc.Paths, "/health")
}

func TestHandleAssembleYAML(t *testing.T) {
	result, output, err := handleAssemble(context.Background(), nil, assembleInput{
		BatchPath: writeTestBatch(t),
		Format:    "yaml",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "yaml", output.Format)
	assert.Contains(t, output.Document, "swagger: \"2.0\"")
}

func TestHandleAssembleExcludeUtilities(t *testing.T) {
	exclude := true
	result, output, err := handleAssemble(context.Background(), nil, assembleInput{
		BatchPath:        writeTestBatch(t),
		ExcludeUtilities: &exclude,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, 3, output.Paths)
}

func TestHandleAssembleBadBatchPath(t *testing.T) {
	result, _, err := handleAssemble(context.Background(), nil, assembleInput{
		BatchPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleAssembleBadSupportLevel(t *testing.T) {
	result, _, err := handleAssemble(context.Background(), nil, assembleInput{
		BatchPath:    writeTestBatch(t),
		SupportLevel: "SOMETIMES",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
