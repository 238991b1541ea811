package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/introspec-io/introspec/resource"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Assemble tool defaults.
	SupportLevel     resource.SupportLevel
	ExcludeUtilities bool
	BasePath         string
	Host             string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from INTROSPEC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		SupportLevel:     envSupportLevel("INTROSPEC_SUPPORT_LEVEL", resource.Deprecated),
		ExcludeUtilities: envBool("INTROSPEC_EXCLUDE_UTILITIES", false),
		BasePath:         envString("INTROSPEC_BASE_PATH", "/"),
		Host:             envString("INTROSPEC_HOST", ""),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envSupportLevel(key string, fallback resource.SupportLevel) resource.SupportLevel {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	level, err := resource.ParseSupportLevel(v)
	if err != nil {
		slog.Warn("invalid support level env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return level
}
