package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/introspec-io/introspec/resource"
)

func TestLoadConfigDefaults(t *testing.T) {
	loaded := loadConfig()
	assert.Equal(t, resource.Deprecated, loaded.SupportLevel)
	assert.False(t, loaded.ExcludeUtilities)
	assert.Equal(t, "/", loaded.BasePath)
	assert.Empty(t, loaded.Host)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("INTROSPEC_SUPPORT_LEVEL", "supported")
	t.Setenv("INTROSPEC_EXCLUDE_UTILITIES", "true")
	t.Setenv("INTROSPEC_BASE_PATH", "/v1")
	t.Setenv("INTROSPEC_HOST", "docs.internal")

	loaded := loadConfig()
	assert.Equal(t, resource.Supported, loaded.SupportLevel)
	assert.True(t, loaded.ExcludeUtilities)
	assert.Equal(t, "/v1", loaded.BasePath)
	assert.Equal(t, "docs.internal", loaded.Host)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("INTROSPEC_SUPPORT_LEVEL", "SOMETIMES")
	t.Setenv("INTROSPEC_EXCLUDE_UTILITIES", "yes please")

	loaded := loadConfig()
	assert.Equal(t, resource.Deprecated, loaded.SupportLevel)
	assert.False(t, loaded.ExcludeUtilities)
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
	assert.Equal(t, "open <path>: no such file",
		sanitizeError(assertableError("open /home/user/batch.yaml: no such file")))
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
