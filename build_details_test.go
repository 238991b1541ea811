package introspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev", Version(), "development builds report 'dev'")
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "introspec/dev", UserAgent())
}

func TestBuildDetails(t *testing.T) {
	// Test binaries rarely embed a VCS revision; either way the version
	// must lead the string.
	assert.Contains(t, BuildDetails(), "dev")
}
