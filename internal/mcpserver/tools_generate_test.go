package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namabar/namabar-go/internal/testutil"
)

// duplicateIDSpec yields one warning: two operations share a Go name.
const duplicateIDSpec = `openapi: "3.0.0"
paths:
  /a:
    get: {operationId: list}
  /b:
    get: {operationId: list}
components: {}
`

func TestGenerateTool_WritesFiles(t *testing.T) {
	specCache.reset()
	dir := t.TempDir()

	input := generateInput{
		Spec:      specInput{Content: testutil.NamabarSpecJSON},
		OutputDir: dir,
	}
	result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.True(t, output.Success)
	assert.Equal(t, dir, output.OutputDir)
	assert.Equal(t, "namabar", output.PackageName)
	assert.Equal(t, 6, output.GeneratedOperations)
	require.Len(t, output.Files, 2)

	for _, f := range output.Files {
		assert.Empty(t, f.Content, "content is only returned on dry runs")
		info, statErr := os.Stat(filepath.Join(dir, f.Name))
		require.NoError(t, statErr)
		assert.Equal(t, int64(f.Size), info.Size())
	}
}

func TestGenerateTool_DryRun(t *testing.T) {
	specCache.reset()
	input := generateInput{
		Spec:          specInput{Content: testutil.NamabarSpecJSON},
		PackageName:   "sms",
		ReceiverType:  "API",
		InterfaceName: "Operations",
		DryRun:        true,
	}
	_, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Empty(t, output.OutputDir)
	require.Len(t, output.Files, 2)
	assert.Equal(t, "endpoints.go", output.Files[0].Name)
	assert.Contains(t, output.Files[0].Content, "package sms")
	assert.Contains(t, output.Files[0].Content, "func (c *API) SendMessage(")
	assert.Contains(t, output.Files[1].Content, "var _ Operations = (*API)(nil)")
}

func TestGenerateTool_Strict(t *testing.T) {
	saved := cfg.GenerateStrict
	t.Cleanup(func() { cfg.GenerateStrict = saved })

	strict := true
	lenient := false
	tests := []struct {
		name       string
		configured bool
		override   *bool
		wantError  bool
	}{
		{"default lenient", false, nil, false},
		{"configured strict", true, nil, true},
		{"input overrides config", true, &lenient, false},
		{"input enables strict", false, &strict, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specCache.reset()
			cfg.GenerateStrict = tt.configured
			input := generateInput{Spec: specInput{Content: duplicateIDSpec}, Strict: tt.override, DryRun: true}

			result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
			require.NoError(t, err)
			if tt.wantError {
				require.NotNil(t, result)
				assert.True(t, result.IsError)
				return
			}
			assert.Nil(t, result)
			assert.Equal(t, 1, output.WarningCount)
			require.Len(t, output.Issues, 1)
			assert.Equal(t, "warning", output.Issues[0].Severity)
		})
	}
}

func TestGenerateTool_Errors(t *testing.T) {
	specCache.reset()
	tests := []struct {
		name  string
		input generateInput
	}{
		{"missing output dir", generateInput{Spec: specInput{Content: testutil.NamabarSpecJSON}}},
		{"invalid spec", generateInput{Spec: specInput{Content: "not valid yaml: ["}, DryRun: true}},
		{"missing keys", generateInput{Spec: specInput{Content: `{"openapi":"3.0.0","paths":{}}`}, DryRun: true}},
		{"bad package", generateInput{Spec: specInput{Content: testutil.NamabarSpecJSON}, PackageName: "my-pkg", DryRun: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Empty(t, output.Files)
		})
	}
}

func TestGenerateTool_WriteFailure(t *testing.T) {
	specCache.reset()
	blocker := testutil.WriteTempFile(t, "not-a-dir", "x")

	input := generateInput{
		Spec:      specInput{Content: testutil.NamabarSpecJSON},
		OutputDir: filepath.Join(blocker, "out"),
	}
	result, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
