package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namabar/namabar-go/internal/testutil"
)

func tinySpec(title string) string {
	return fmt.Sprintf(`openapi: "3.0.0"
info:
  title: %q
paths: {}
components: {}
`, title)
}

func TestSpecInput_ResolveSources(t *testing.T) {
	specCache.reset()

	path := testutil.WriteTempFile(t, "namabar.json", testutil.NamabarSpecJSON)
	result, err := specInput{File: path}.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.0.1", result.Version)
	assert.Equal(t, 6, result.Stats.OperationCount)

	result, err = specInput{Content: tinySpec("inline")}.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", result.Version)
}

func TestSpecInput_ResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		input specInput
		want  string
	}{
		{"none", specInput{}, "exactly one of file, url, or content must be provided (got 0)"},
		{"two", specInput{File: "a.json", Content: "{}"}, "exactly one of file, url, or content must be provided (got 2)"},
		{"file is a url", specInput{File: "https://api.namabar.krd/openapi/v1.json"}, "use the url field"},
		{"url without scheme", specInput{URL: "api.namabar.krd/openapi/v1.json"}, "must start with http"},
		{"missing file", specInput{File: filepath.Join(os.TempDir(), "namabar-missing", "spec.json")}, "fetch"},
		{"missing keys", specInput{Content: `{"openapi":"3.0.0"}`}, "missing required keys: paths, components"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specCache.reset()
			_, err := tt.input.resolve(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSpecInput_InlineSizeLimit(t *testing.T) {
	saved := cfg.MaxInlineSize
	t.Cleanup(func() { cfg.MaxInlineSize = saved })
	cfg.MaxInlineSize = 16

	_, err := specInput{Content: strings.Repeat(" ", 17)}.resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NAMABAR_MCP_MAX_INLINE_SIZE")
}

func TestSpecInput_ResolveURL(t *testing.T) {
	specCache.reset()
	srv := testutil.NewSpecServer(t, testutil.NamabarSpecJSON, nil)

	saved := cfg.AllowPrivateIPs
	t.Cleanup(func() { cfg.AllowPrivateIPs = saved })

	cfg.AllowPrivateIPs = false
	_, err := specInput{URL: srv.URL + "/openapi/v1.json"}.resolve(context.Background())
	require.Error(t, err, "loopback servers are blocked by default")

	cfg.AllowPrivateIPs = true
	result, err := specInput{URL: srv.URL + "/openapi/v1.json"}.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, result.Stats.PathCount)
}

func TestSpecCache_HitOnSameInput(t *testing.T) {
	specCache.reset()
	path := testutil.WriteTempFile(t, "namabar.json", testutil.NamabarSpecJSON)

	first, err := specInput{File: path}.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.size())

	second, err := specInput{File: path}.resolve(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	content := specInput{Content: tinySpec("hash")}
	a, err := content.resolve(context.Background())
	require.NoError(t, err)
	b, err := content.resolve(context.Background())
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestSpecCache_MissOnModifiedFile(t *testing.T) {
	specCache.reset()
	path := testutil.WriteTempFile(t, "spec.yaml", tinySpec("v1"))

	first, err := specInput{File: path}.resolve(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(tinySpec("v2")), 0o600))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := specInput{File: path}.resolve(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestSpecCache_Disabled(t *testing.T) {
	specCache.reset()
	saved := cfg.CacheEnabled
	t.Cleanup(func() { cfg.CacheEnabled = saved })
	cfg.CacheEnabled = false

	_, err := specInput{Content: tinySpec("nocache")}.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, specCache.size())
}

func TestSpecCache_LRUEviction(t *testing.T) {
	specCache.reset()

	var firstKey string
	for i := range specCache.maxSize + 1 {
		input := specInput{Content: tinySpec(fmt.Sprintf("spec %d", i))}
		if i == 0 {
			firstKey, _ = input.cacheKey()
		}
		_, err := input.resolve(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, specCache.maxSize, specCache.size())
	assert.Nil(t, specCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestSpecCache_ExpiryAndSweep(t *testing.T) {
	specCache.reset()
	specCache.put("expired", nil, -time.Second)
	specCache.put("live", nil, time.Hour)

	assert.Nil(t, specCache.get("expired"))
	specCache.put("expired-too", nil, -time.Second)
	specCache.sweep()
	assert.Equal(t, 1, specCache.size())
}

func TestSpecCache_Sweeper(t *testing.T) {
	specCache.reset()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	specCache.put("expired", nil, -time.Second)
	specCache.startSweeper(ctx, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return specCache.size() == 0 }, time.Second, 5*time.Millisecond)
}
