package generator

import (
	"context"
	"fmt"
	"net/http"

	"github.com/namabar/namabar-go/parser"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	ctx               context.Context
	packageName       string
	receiverType      string
	interfaceName     string
	methodsFileName   string
	interfaceFileName string
	strictMode        bool
	userAgent         string
	httpClient        *http.Client
	logger            parser.Logger
}

// GenerateWithOptions generates code from an OpenAPI specification using functional options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.json"),
//	    generator.WithPackageName("namabar"),
//	    generator.WithStrictMode(true),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		PackageName:       cfg.packageName,
		ReceiverType:      cfg.receiverType,
		InterfaceName:     cfg.interfaceName,
		MethodsFileName:   cfg.methodsFileName,
		InterfaceFileName: cfg.interfaceFileName,
		StrictMode:        cfg.strictMode,
		UserAgent:         cfg.userAgent,
		HTTPClient:        cfg.httpClient,
		Logger:            cfg.logger,
	}

	if cfg.filePath != nil {
		return g.GenerateContext(cfg.ctx, *cfg.filePath)
	}
	return g.GenerateParsed(*cfg.parsed)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		ctx:               context.Background(),
		packageName:       DefaultPackageName,
		receiverType:      DefaultReceiverType,
		interfaceName:     DefaultInterfaceName,
		methodsFileName:   DefaultMethodsFileName,
		interfaceFileName: DefaultInterfaceFileName,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sourceCount := 0
	if cfg.filePath != nil {
		sourceCount++
	}
	if cfg.parsed != nil {
		sourceCount++
	}
	if sourceCount == 0 {
		return nil, fmt.Errorf("generator: must specify an input source (use WithFilePath or WithParsed)")
	}
	if sourceCount > 1 {
		return nil, fmt.Errorf("generator: must specify exactly one input source")
	}
	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies a parsed ParseResult as the input source
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *generateConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithContext sets the context used when fetching the specification
func WithContext(ctx context.Context) Option {
	return func(cfg *generateConfig) error {
		if ctx == nil {
			return fmt.Errorf("generator: context cannot be nil")
		}
		cfg.ctx = ctx
		return nil
	}
}

// WithPackageName specifies the Go package name for generated code
// Default: "namabar"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: package name cannot be empty")
		}
		cfg.packageName = name
		return nil
	}
}

// WithReceiverType sets the client type the methods are declared on
// Default: "Client"
func WithReceiverType(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: receiver type cannot be empty")
		}
		cfg.receiverType = name
		return nil
	}
}

// WithInterfaceName sets the name of the generated interface
// Default: "Endpoints"
func WithInterfaceName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: interface name cannot be empty")
		}
		cfg.interfaceName = name
		return nil
	}
}

// WithFileNames sets the names of the methods file and the interface file
// Default: "endpoints.go", "endpoints_iface.go"
func WithFileNames(methods, iface string) Option {
	return func(cfg *generateConfig) error {
		if methods == "" || iface == "" {
			return fmt.Errorf("generator: file names cannot be empty")
		}
		cfg.methodsFileName = methods
		cfg.interfaceFileName = iface
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any warning)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "" (uses parser default)
func WithUserAgent(ua string) Option {
	return func(cfg *generateConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets the HTTP client used to fetch the specification
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *generateConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithLogger sets the logger for progress output
func WithLogger(logger parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = logger
		return nil
	}
}
