package generator

import (
	"fmt"
	"strings"

	"github.com/namabar/namabar-go/parser"
)

// Report is a display-oriented summary of a GenerateResult. Types are rendered
// as they appear in method signatures.
type Report struct {
	SourceVersion string               `json:"source_version" yaml:"source_version"`
	SourceFormat  parser.SourceFormat  `json:"source_format,omitempty" yaml:"source_format,omitempty"`
	PackageName   string               `json:"package_name" yaml:"package_name"`
	Stats         parser.DocumentStats `json:"stats" yaml:"stats"`
	Operations    []OperationReport    `json:"operations" yaml:"operations"`
	Issues        []GenerateIssue      `json:"issues,omitempty" yaml:"issues,omitempty"`
	InfoCount     int                  `json:"info_count" yaml:"info_count"`
	WarningCount  int                  `json:"warning_count" yaml:"warning_count"`
	CriticalCount int                  `json:"critical_count" yaml:"critical_count"`
}

// OperationReport describes one generated method.
type OperationReport struct {
	Name       string        `json:"name" yaml:"name"`
	GoName     string        `json:"go_name" yaml:"go_name"`
	Method     string        `json:"method" yaml:"method"`
	Path       string        `json:"path" yaml:"path"`
	Summary    string        `json:"summary,omitempty" yaml:"summary,omitempty"`
	Deprecated bool          `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Signature  string        `json:"signature" yaml:"signature"`
	Params     []ParamReport `json:"params,omitempty" yaml:"params,omitempty"`
}

// ParamReport describes one parameter in signature order.
type ParamReport struct {
	Name        string `json:"name" yaml:"name"`
	SnakeName   string `json:"snake_name" yaml:"snake_name"`
	GoName      string `json:"go_name" yaml:"go_name"`
	In          string `json:"in" yaml:"in"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Report builds the display summary of r.
func (r *GenerateResult) Report() Report {
	rep := Report{
		SourceVersion: r.SourceVersion,
		SourceFormat:  r.SourceFormat,
		PackageName:   r.PackageName,
		Stats:         r.Stats,
		Issues:        r.Issues,
		InfoCount:     r.InfoCount,
		WarningCount:  r.WarningCount,
		CriticalCount: r.CriticalCount,
		Operations:    make([]OperationReport, 0, len(r.Operations)),
	}
	for _, op := range r.Operations {
		or := OperationReport{
			Name:       op.Name,
			GoName:     op.GoName,
			Method:     op.Method,
			Path:       op.Path,
			Summary:    cleanDescription(op.Summary),
			Deprecated: op.Deprecated,
			Signature:  op.GoName + "(" + signature(op) + ") (*Response, error)",
		}
		for _, p := range op.SignatureParams() {
			or.Params = append(or.Params, ParamReport{
				Name:        p.Name,
				SnakeName:   p.SnakeName,
				GoName:      p.GoName,
				In:          p.In,
				Type:        p.Type.String(),
				Required:    p.Required,
				Description: cleanDescription(p.Description),
			})
		}
		rep.Operations = append(rep.Operations, or)
	}
	return rep
}

// String renders the report as indented plain text.
func (rep Report) String() string {
	var b strings.Builder
	writef(&b, "OpenAPI %s, %d path(s), %d operation(s), %d schema(s)\n",
		rep.SourceVersion, rep.Stats.PathCount, rep.Stats.OperationCount, rep.Stats.SchemaCount)
	for _, op := range rep.Operations {
		writef(&b, "\n%s %s\n", op.Method, op.Path)
		writef(&b, "  %s\n", op.Signature)
		if op.Deprecated {
			b.WriteString("  deprecated\n")
		}
		for _, p := range op.Params {
			state := "optional"
			if p.Required {
				state = "required"
			}
			writef(&b, "    %-14s %-16s %-6s %s\n", p.GoName, p.Type, p.In, state)
		}
	}
	if len(rep.Issues) > 0 {
		b.WriteString("\nIssues:\n")
		for _, issue := range rep.Issues {
			writef(&b, "  %s\n", issue.String())
		}
	}
	return b.String()
}

func writef(b *strings.Builder, format string, args ...any) {
	_, _ = fmt.Fprintf(b, format, args...)
}
