package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/namabar/namabar-go/generator"
)

type generateInput struct {
	Spec          specInput `json:"spec"                     jsonschema:"The OpenAPI document to generate code from"`
	PackageName   string    `json:"package_name,omitempty"   jsonschema:"Go package name for generated code (default: namabar)"`
	ReceiverType  string    `json:"receiver_type,omitempty"  jsonschema:"Client type the methods are declared on (default: Client)"`
	InterfaceName string    `json:"interface_name,omitempty" jsonschema:"Name of the generated interface (default: Endpoints)"`
	Strict        *bool     `json:"strict,omitempty"         jsonschema:"Fail on any generation warning (default from NAMABAR_MCP_GENERATE_STRICT)"`
	DryRun        bool      `json:"dry_run,omitempty"        jsonschema:"Return file contents inline instead of writing them"`
	OutputDir     string    `json:"output_dir,omitempty"     jsonschema:"Directory to write generated files to (required unless dry_run)"`
}

type generatedFileInfo struct {
	Name    string `json:"name"`
	Size    int    `json:"size"`
	Content string `json:"content,omitempty"`
}

type generateOutput struct {
	Success             bool                `json:"success"`
	OutputDir           string              `json:"output_dir,omitempty"`
	PackageName         string              `json:"package_name"`
	FileCount           int                 `json:"file_count"`
	Files               []generatedFileInfo `json:"files"`
	GeneratedOperations int                 `json:"generated_operations"`
	WarningCount        int                 `json:"warning_count"`
	CriticalCount       int                 `json:"critical_count"`
	Issues              []issueSummary      `json:"issues,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" && !input.DryRun {
		return errResult(fmt.Errorf("output_dir is required unless dry_run is set")), generateOutput{}, nil
	}

	parsed, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	strict := cfg.GenerateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	opts := []generator.Option{
		generator.WithParsed(*parsed),
		generator.WithStrictMode(strict),
		generator.WithLogger(logger),
	}
	if input.PackageName != "" {
		opts = append(opts, generator.WithPackageName(input.PackageName))
	}
	if input.ReceiverType != "" {
		opts = append(opts, generator.WithReceiverType(input.ReceiverType))
	}
	if input.InterfaceName != "" {
		opts = append(opts, generator.WithInterfaceName(input.InterfaceName))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if !input.DryRun {
		if err := result.WriteFiles(input.OutputDir); err != nil {
			return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
		}
	}

	output := generateOutput{
		Success:             result.Success,
		PackageName:         result.PackageName,
		FileCount:           len(result.Files),
		GeneratedOperations: result.GeneratedOperations,
		WarningCount:        result.WarningCount,
		CriticalCount:       result.CriticalCount,
		Issues:              summarize(result.Report()).Issues,
		Files:               make([]generatedFileInfo, 0, len(result.Files)),
	}
	if !input.DryRun {
		output.OutputDir = input.OutputDir
	}
	for _, f := range result.Files {
		info := generatedFileInfo{Name: f.Name, Size: len(f.Content)}
		if input.DryRun {
			info.Content = string(f.Content)
		}
		output.Files = append(output.Files, info)
	}
	return nil, output, nil
}
