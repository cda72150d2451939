// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the namabar-gen generator as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	namabar "github.com/namabar/namabar-go"
	"github.com/namabar/namabar-go/parser"
)

const serverInstructions = `namabar-gen MCP server: inspects OpenAPI documents and generates Namabar client endpoint files.

Tools:
- inspect: list the methods that would be generated, with signatures and issues
- generate: render endpoints.go and endpoints_iface.go, written to output_dir or returned inline with dry_run

The Namabar API description lives at https://api.namabar.krd/openapi/v1.json.

Configuration: defaults are read once from NAMABAR_MCP_* environment variables set in your MCP client config.
- NAMABAR_MCP_CACHE_ENABLED (default: true) and NAMABAR_MCP_CACHE_*_TTL control parsed spec caching
- NAMABAR_MCP_MAX_INLINE_SIZE (default: 10MiB) limits inline content
- NAMABAR_MCP_FETCH_TIMEOUT (default: 30s) bounds URL fetches
- NAMABAR_MCP_ALLOW_PRIVATE_IPS (default: false) permits fetching from private networks
- NAMABAR_MCP_GENERATE_STRICT (default: false) makes generate fail on warnings`

// logger receives server diagnostics. Run replaces it with one bound to the
// caller's slog logger.
var logger parser.Logger = parser.NopLogger{}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled. A nil log uses slog.Default.
func Run(ctx context.Context, log *slog.Logger) error {
	logger = parser.NewSlogAdapter(log)
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "namabar-gen", Version: namabar.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	logger.Info("mcp server listening on stdio", "version", namabar.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect an OpenAPI document and list the Go methods namabar-gen would generate: name, HTTP method, path, signature and parameters in signature order (required first). Also reports generation issues such as missing operationIds or non-JSON request bodies. Nothing is written.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate the Namabar endpoint files (methods file and interface file) from an OpenAPI document. Requires output_dir unless dry_run=true, in which case the file contents are returned inline. Strict mode fails on any generation warning; its default is configurable via NAMABAR_MCP_GENERATE_STRICT.",
	}, handleGenerate)
}

// pathPattern matches absolute filesystem paths in error messages so they are
// not leaked to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	logger.Warn("tool call failed", "error", err)
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
