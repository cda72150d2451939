package generator

import (
	"context"
	"fmt"
	"go/token"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/namabar/namabar-go/internal/issues"
	"github.com/namabar/namabar-go/internal/severity"
	"github.com/namabar/namabar-go/oaserrors"
	"github.com/namabar/namabar-go/parser"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates input that was generated with a compromise
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates input that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// Defaults used when an option is not set.
const (
	DefaultPackageName       = "namabar"
	DefaultReceiverType      = "Client"
	DefaultInterfaceName     = "Endpoints"
	DefaultMethodsFileName   = "endpoints.go"
	DefaultInterfaceFileName = "endpoints_iface.go"
	// DefaultSpecURL is where the Namabar API publishes its description
	DefaultSpecURL = "https://api.namabar.krd/openapi/v1.json"
)

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "endpoints.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating code from an OpenAPI specification
type GenerateResult struct {
	// Files holds the methods file followed by the interface file
	Files []GeneratedFile
	// Operations are the derived operations in document order
	Operations []*OperationInfo
	// SourceVersion is the declared openapi version
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// PackageName is the Go package name used in generation
	PackageName string
	// Issues contains all generation issues in the order they were found
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to derive operations and render files
	GenerateTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the source document
	Stats parser.DocumentStats
	// GeneratedOperations is the count of operations generated
	GeneratedOperations int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles code generation from OpenAPI specifications
type Generator struct {
	// PackageName is the Go package name for generated code.
	// Default: "namabar"
	PackageName string
	// ReceiverType is the client type the methods are declared on.
	// Default: "Client"
	ReceiverType string
	// InterfaceName is the name of the generated interface.
	// Default: "Endpoints"
	InterfaceName string
	// MethodsFileName is the name of the methods file.
	// Default: "endpoints.go"
	MethodsFileName string
	// InterfaceFileName is the name of the interface file.
	// Default: "endpoints_iface.go"
	InterfaceFileName string
	// StrictMode causes generation to fail on any warning
	StrictMode bool
	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string
	// HTTPClient is used when fetching URLs; nil means the parser default
	HTTPClient *http.Client
	// Logger receives progress messages; nil disables logging
	Logger parser.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		PackageName:       DefaultPackageName,
		ReceiverType:      DefaultReceiverType,
		InterfaceName:     DefaultInterfaceName,
		MethodsFileName:   DefaultMethodsFileName,
		InterfaceFileName: DefaultInterfaceFileName,
	}
}

func (g *Generator) log() parser.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return parser.NopLogger{}
}

// Generate parses specPath with default settings and generates code.
func Generate(specPath string) (*GenerateResult, error) {
	return New().Generate(specPath)
}

// Generate fetches and parses specPath (a URL or file path) and generates code.
func (g *Generator) Generate(specPath string) (*GenerateResult, error) {
	return g.GenerateContext(context.Background(), specPath)
}

// GenerateContext is Generate with a context governing the fetch.
func (g *Generator) GenerateContext(ctx context.Context, specPath string) (*GenerateResult, error) {
	p := parser.New()
	if g.UserAgent != "" {
		p.UserAgent = g.UserAgent
	}
	p.HTTPClient = g.HTTPClient
	p.Logger = g.Logger

	g.log().Info("fetching specification", "source", specPath)
	parsed, err := p.ParseContext(ctx, specPath)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to fetch or parse specification: %w", err)
	}
	return g.GenerateParsed(*parsed)
}

// GenerateParsed generates code from an already parsed document.
func (g *Generator) GenerateParsed(parsed parser.ParseResult) (*GenerateResult, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if parsed.Document == nil {
		return nil, fmt.Errorf("generator: parse result has no document")
	}
	start := time.Now()

	c := newCollector(parsed.Document)
	for _, w := range parsed.Warnings {
		c.addIssue(SeverityWarning, "$", "", "%s", w)
	}
	ops, err := c.collectOperations()
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	g.log().Debug("collected operations", "count", len(ops))

	result := &GenerateResult{
		Operations:          ops,
		SourceVersion:       parsed.Version,
		SourceFormat:        parsed.SourceFormat,
		PackageName:         g.PackageName,
		Issues:              c.issues,
		LoadTime:            parsed.LoadTime,
		SourceSize:          parsed.SourceSize,
		Stats:               parsed.Stats,
		GeneratedOperations: len(ops),
	}
	result.InfoCount, result.WarningCount, result.CriticalCount = issues.Count(result.Issues)
	result.Success = result.CriticalCount == 0

	for _, issue := range result.Issues {
		if issue.Severity >= SeverityWarning {
			g.log().Warn(issue.Message, "path", issue.Path, "operation", issue.Operation)
		}
	}
	if g.StrictMode && (result.WarningCount > 0 || result.CriticalCount > 0) {
		return result, fmt.Errorf("generator: strict mode: %d warning(s) and %d critical issue(s)",
			result.WarningCount, result.CriticalCount)
	}

	data := endpointsFileData{
		PackageName:   g.PackageName,
		ReceiverType:  g.ReceiverType,
		InterfaceName: g.InterfaceName,
		Operations:    ops,
	}
	// both files render before either is returned
	methods, err := executeTemplate("endpoints.go.tmpl", g.MethodsFileName, data)
	if err != nil {
		return nil, fmt.Errorf("generator: rendering %s: %w", g.MethodsFileName, err)
	}
	iface, err := executeTemplate("endpoints_iface.go.tmpl", g.InterfaceFileName, data)
	if err != nil {
		return nil, fmt.Errorf("generator: rendering %s: %w", g.InterfaceFileName, err)
	}
	result.Files = []GeneratedFile{
		{Name: g.MethodsFileName, Content: methods},
		{Name: g.InterfaceFileName, Content: iface},
	}
	result.GenerateTime = time.Since(start)

	g.log().Info("generated endpoints",
		"operations", result.GeneratedOperations,
		"warnings", result.WarningCount,
		"duration", result.GenerateTime.String(),
	)
	return result, nil
}

// validate checks the generator settings, filling empty ones with defaults.
func (g *Generator) validate() error {
	defaults := New()
	setDefault(&g.PackageName, defaults.PackageName)
	setDefault(&g.ReceiverType, defaults.ReceiverType)
	setDefault(&g.InterfaceName, defaults.InterfaceName)
	setDefault(&g.MethodsFileName, defaults.MethodsFileName)
	setDefault(&g.InterfaceFileName, defaults.InterfaceFileName)

	identifiers := []struct{ option, value string }{
		{"package name", g.PackageName},
		{"receiver type", g.ReceiverType},
		{"interface name", g.InterfaceName},
	}
	for _, id := range identifiers {
		if !token.IsIdentifier(id.value) {
			return &oaserrors.ConfigError{Option: id.option, Value: id.value, Message: "must be a valid Go identifier"}
		}
	}
	fileNames := []struct{ option, value string }{
		{"methods file name", g.MethodsFileName},
		{"interface file name", g.InterfaceFileName},
	}
	for _, f := range fileNames {
		if filepath.Base(f.value) != f.value || !strings.HasSuffix(f.value, ".go") {
			return &oaserrors.ConfigError{Option: f.option, Value: f.value, Message: "must be a bare .go file name"}
		}
	}
	if g.MethodsFileName == g.InterfaceFileName {
		return &oaserrors.ConfigError{Option: "interface file name", Value: g.InterfaceFileName, Message: "must differ from the methods file name"}
	}
	return nil
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
