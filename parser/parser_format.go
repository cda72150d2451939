package parser

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	namabar "github.com/namabar/namabar-go"
	"github.com/namabar/namabar-go/oaserrors"
)

// defaultFetchTimeout bounds URL fetches when no HTTPClient is configured.
const defaultFetchTimeout = 30 * time.Second

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent guesses the format from the first non-space byte.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL tries the URL path extension, then the Content-Type header.
func detectFormatFromURL(urlStr string, contentType string) SourceFormat {
	if parsed, err := url.Parse(urlStr); err == nil && parsed.Path != "" {
		if format := detectFormatFromPath(parsed.Path); format != SourceFormatUnknown {
			return format
		}
	}

	contentType = strings.ToLower(contentType)
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	switch strings.TrimSpace(contentType) {
	case "application/json", "application/openapi+json", "application/vnd.oai.openapi+json":
		return SourceFormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml", "application/vnd.oai.openapi":
		return SourceFormatYAML
	}
	return SourceFormatUnknown
}

// IsURL reports if the given path is a URL (http:// or https://)
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func (p *Parser) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return &http.Client{Timeout: defaultFetchTimeout}
}

// fetchURL fetches content from a URL and returns the bytes and Content-Type header
func (p *Parser) fetchURL(req *http.Request) ([]byte, string, error) {
	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = namabar.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	source := req.URL.String()
	resp, err := p.httpClient().Do(req) //nolint:gosec // URL is caller-provided input
	if err != nil {
		return nil, "", &oaserrors.FetchError{Source: source, Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &oaserrors.FetchError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("unexpected status %q", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &oaserrors.FetchError{Source: source, Cause: fmt.Errorf("reading response body: %w", err)}
	}
	return data, resp.Header.Get("Content-Type"), nil
}
