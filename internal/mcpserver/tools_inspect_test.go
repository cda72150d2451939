package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namabar/namabar-go/internal/testutil"
)

func TestInspectTool_Namabar(t *testing.T) {
	specCache.reset()
	input := inspectInput{Spec: specInput{Content: testutil.NamabarSpecJSON}}

	result, output, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, "3.0.1", output.Version)
	assert.Equal(t, "json", output.Format)
	assert.Equal(t, 6, output.PathCount)
	assert.Equal(t, 7, output.SchemaCount)
	require.Len(t, output.Operations, 6)
	assert.Empty(t, output.Issues)

	verify := output.Operations[1]
	assert.Equal(t, "verify_verification_code", verify.Name)
	assert.Equal(t, "POST", verify.Method)
	assert.Equal(t, "/verification-codes/{id}/verify", verify.Path)
	require.Len(t, verify.Params, 2)
	assert.Equal(t, paramSummary{
		Name: "id", SnakeName: "id", GoName: "id", In: "path", Type: "string", Required: true,
		Description: "The id of the verification code to verify.",
	}, verify.Params[0])
	assert.Equal(t, "body", verify.Params[1].In)
}

func TestInspectTool_ReportsIssues(t *testing.T) {
	specCache.reset()
	spec := `openapi: "3.0.0"
paths:
  /health:
    get: {}
components: {}
`
	input := inspectInput{Spec: specInput{Content: spec}, ReceiverType: "API"}
	_, output, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Operations, 1)
	assert.Equal(t, "get_health", output.Operations[0].Name)
	require.Len(t, output.Issues, 1)
	assert.Equal(t, "info", output.Issues[0].Severity)
}

func TestInspectTool_Errors(t *testing.T) {
	specCache.reset()
	tests := []struct {
		name  string
		input inspectInput
	}{
		{"no source", inspectInput{}},
		{"invalid spec", inspectInput{Spec: specInput{Content: "openapi: ["}}},
		{"bad receiver", inspectInput{Spec: specInput{Content: testutil.NamabarSpecJSON}, ReceiverType: "not valid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
