package namabar

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	result := Version()
	assert.NotEmpty(t, result)
	assert.True(t,
		result == "dev" || strings.HasPrefix(result, "v"),
		"Version() should be 'dev' or start with 'v', got: %s", result)
}

func TestGoVersion(t *testing.T) {
	assert.Equal(t, runtime.Version(), GoVersion())
}

func TestUserAgent(t *testing.T) {
	userAgent := UserAgent()
	assert.Equal(t, "namabar-go/"+Version(), userAgent)
	assert.NotContains(t, userAgent, " ")
	assert.NotContains(t, userAgent, "\n")
}

func TestBuildInfo(t *testing.T) {
	result := BuildInfo()
	for _, label := range []string{"Version:", "Commit:", "Build Time:", "Go Version:"} {
		assert.Contains(t, result, label)
	}
	assert.Contains(t, result, Commit())
	assert.Contains(t, result, BuildTime())
	assert.Contains(t, result, GoVersion())
}
