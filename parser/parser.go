package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	namabar "github.com/namabar/namabar-go"
	"github.com/namabar/namabar-go/oaserrors"
)

// Parser loads OpenAPI descriptions from URLs, files and memory.
type Parser struct {
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to namabar.UserAgent() if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a client with a 30-second timeout is used.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		UserAgent: namabar.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed document and metadata about the load.
// Callers should treat it as read-only.
type ParseResult struct {
	// SourcePath is the URL or file path the document was read from.
	// For in-memory input it is "ParseBytes.json", "ParseReader.yaml" and so on.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared openapi version string
	Version string
	// Document is the typed document
	Document *Document
	// Warnings contains non-fatal issues, such as an unexpected version
	Warnings []string
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse loads a document from an http(s) URL or a file path.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	return p.ParseContext(context.Background(), specPath)
}

// ParseContext is Parse with a context governing the URL fetch.
func (p *Parser) ParseContext(ctx context.Context, specPath string) (*ParseResult, error) {
	start := time.Now()
	var (
		data   []byte
		format SourceFormat
	)

	if IsURL(specPath) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, specPath, nil)
		if err != nil {
			return nil, &oaserrors.FetchError{Source: specPath, Cause: err}
		}
		p.log().Debug("fetching specification", "url", specPath)
		var contentType string
		data, contentType, err = p.fetchURL(req)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		var err error
		data, err = os.ReadFile(specPath) //nolint:gosec // path is caller-provided input
		if err != nil {
			return nil, &oaserrors.FetchError{Source: specPath, Cause: err}
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(start)

	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	result, err := p.parse(data, specPath, format)
	if err != nil {
		return nil, err
	}
	result.LoadTime = loadTime
	return result, nil
}

// ParseReader parses a document read from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.FetchError{Source: "ParseReader", Cause: err}
	}
	format := detectFormatFromContent(data)
	result, err := p.parse(data, "ParseReader."+extension(format), format)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseBytes parses a document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	format := detectFormatFromContent(data)
	return p.parse(data, "ParseBytes."+extension(format), format)
}

func extension(format SourceFormat) string {
	if format == SourceFormatJSON {
		return "json"
	}
	return "yaml"
}

// parse decodes data, enforces the required top-level keys and builds the result.
func (p *Parser) parse(data []byte, source string, format SourceFormat) (*ParseResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Path: source, Message: "document is empty"}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "invalid JSON or YAML", Cause: err}
	}

	mapping := resolveAlias(&root)
	if mapping.Kind == yaml.DocumentNode && len(mapping.Content) > 0 {
		mapping = resolveAlias(mapping.Content[0])
	}
	if mapping.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Line:    mapping.Line,
			Message: "document root must be a mapping, got " + kindName(mapping.Kind),
		}
	}

	if missing := missingKeys(mapping); len(missing) > 0 {
		return nil, &oaserrors.ValidationError{
			Path:    "$",
			Value:   missing,
			Message: "missing required keys: " + strings.Join(missing, ", "),
		}
	}

	doc := &Document{}
	if err := mapping.Decode(doc); err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to decode document", Cause: err}
	}

	result := &ParseResult{
		SourcePath:   source,
		SourceFormat: format,
		Version:      doc.OpenAPI,
		Document:     doc,
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("unsupported openapi version %q: only 3.x documents are supported", doc.OpenAPI))
	}

	p.log().Debug("parsed specification",
		"source", source,
		"format", string(format),
		"version", doc.OpenAPI,
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"size", FormatBytes(result.SourceSize),
	)
	return result, nil
}

// missingKeys returns the required keys absent from the root mapping, in
// RequiredKeys order.
func missingKeys(mapping *yaml.Node) []string {
	present := make(map[string]bool, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		present[mapping.Content[i].Value] = true
	}
	var missing []string
	for _, key := range RequiredKeys {
		if !present[key] {
			missing = append(missing, key)
		}
	}
	return missing
}

// Parse loads a document with a default Parser.
func Parse(specPath string) (*ParseResult, error) {
	return New().Parse(specPath)
}

// ParseBytes parses in-memory data with a default Parser.
func ParseBytes(data []byte) (*ParseResult, error) {
	return New().ParseBytes(data)
}
