package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/namabar/namabar-go/generator"
)

type inspectInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The OpenAPI document to inspect"`
	ReceiverType string    `json:"receiver_type,omitempty" jsonschema:"Client type the methods are declared on (default: Client)"`
}

type paramSummary struct {
	Name        string `json:"name"`
	SnakeName   string `json:"snake_name"`
	GoName      string `json:"go_name"`
	In          string `json:"in"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

type operationSummary struct {
	Name       string         `json:"name"`
	GoName     string         `json:"go_name"`
	Method     string         `json:"method"`
	Path       string         `json:"path"`
	Summary    string         `json:"summary,omitempty"`
	Deprecated bool           `json:"deprecated,omitempty"`
	Signature  string         `json:"signature"`
	Params     []paramSummary `json:"params,omitempty"`
}

type issueSummary struct {
	Severity  string `json:"severity"`
	Path      string `json:"path"`
	Operation string `json:"operation,omitempty"`
	Message   string `json:"message"`
}

type inspectOutput struct {
	Version        string             `json:"version"`
	Format         string             `json:"format"`
	PathCount      int                `json:"path_count"`
	OperationCount int                `json:"operation_count"`
	SchemaCount    int                `json:"schema_count"`
	Operations     []operationSummary `json:"operations"`
	Issues         []issueSummary     `json:"issues,omitempty"`
	WarningCount   int                `json:"warning_count"`
}

func handleInspect(ctx context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	parsed, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	opts := []generator.Option{generator.WithParsed(*parsed), generator.WithLogger(logger)}
	if input.ReceiverType != "" {
		opts = append(opts, generator.WithReceiverType(input.ReceiverType))
	}
	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	return nil, summarize(result.Report()), nil
}

// summarize flattens a report into the tool's output shape.
func summarize(rep generator.Report) inspectOutput {
	out := inspectOutput{
		Version:        rep.SourceVersion,
		Format:         string(rep.SourceFormat),
		PathCount:      rep.Stats.PathCount,
		OperationCount: rep.Stats.OperationCount,
		SchemaCount:    rep.Stats.SchemaCount,
		Operations:     make([]operationSummary, 0, len(rep.Operations)),
		WarningCount:   rep.WarningCount,
	}
	for _, op := range rep.Operations {
		s := operationSummary{
			Name:       op.Name,
			GoName:     op.GoName,
			Method:     op.Method,
			Path:       op.Path,
			Summary:    op.Summary,
			Deprecated: op.Deprecated,
			Signature:  op.Signature,
		}
		for _, p := range op.Params {
			s.Params = append(s.Params, paramSummary(p))
		}
		out.Operations = append(out.Operations, s)
	}
	for _, issue := range rep.Issues {
		out.Issues = append(out.Issues, issueSummary{
			Severity:  issue.Severity.String(),
			Path:      issue.Path,
			Operation: issue.Operation,
			Message:   issue.Message,
		})
	}
	return out
}
