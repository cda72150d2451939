package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearMCPEnv clears all NAMABAR_MCP_* env vars to isolate tests from the ambient environment.
func clearMCPEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NAMABAR_MCP_CACHE_ENABLED", "NAMABAR_MCP_CACHE_MAX_SIZE",
		"NAMABAR_MCP_CACHE_FILE_TTL", "NAMABAR_MCP_CACHE_URL_TTL",
		"NAMABAR_MCP_CACHE_CONTENT_TTL", "NAMABAR_MCP_CACHE_SWEEP_INTERVAL",
		"NAMABAR_MCP_MAX_INLINE_SIZE", "NAMABAR_MCP_FETCH_TIMEOUT",
		"NAMABAR_MCP_ALLOW_PRIVATE_IPS", "NAMABAR_MCP_GENERATE_STRICT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearMCPEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 30*time.Second, c.FetchTimeout)
	assert.False(t, c.AllowPrivateIPs)
	assert.False(t, c.GenerateStrict)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearMCPEnv(t)
	t.Setenv("NAMABAR_MCP_CACHE_ENABLED", "false")
	t.Setenv("NAMABAR_MCP_CACHE_MAX_SIZE", "50")
	t.Setenv("NAMABAR_MCP_CACHE_URL_TTL", "2m")
	t.Setenv("NAMABAR_MCP_MAX_INLINE_SIZE", "2048")
	t.Setenv("NAMABAR_MCP_FETCH_TIMEOUT", "5s")
	t.Setenv("NAMABAR_MCP_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("NAMABAR_MCP_GENERATE_STRICT", "1")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, int64(2048), c.MaxInlineSize)
	assert.Equal(t, 5*time.Second, c.FetchTimeout)
	assert.True(t, c.AllowPrivateIPs)
	assert.True(t, c.GenerateStrict)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, c *serverConfig)
	}{
		{"NAMABAR_MCP_CACHE_ENABLED", "maybe", func(t *testing.T, c *serverConfig) { assert.True(t, c.CacheEnabled) }},
		{"NAMABAR_MCP_CACHE_MAX_SIZE", "-3", func(t *testing.T, c *serverConfig) { assert.Equal(t, 10, c.CacheMaxSize) }},
		{"NAMABAR_MCP_CACHE_FILE_TTL", "soon", func(t *testing.T, c *serverConfig) { assert.Equal(t, 15*time.Minute, c.CacheFileTTL) }},
		{"NAMABAR_MCP_MAX_INLINE_SIZE", "big", func(t *testing.T, c *serverConfig) { assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize) }},
		{"NAMABAR_MCP_FETCH_TIMEOUT", "-1s", func(t *testing.T, c *serverConfig) { assert.Equal(t, 30*time.Second, c.FetchTimeout) }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearMCPEnv(t)
			t.Setenv(tt.key, tt.value)
			tt.check(t, loadConfig())
		})
	}
}
