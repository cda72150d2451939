package commands

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/namabar/namabar-go/generator"
)

// Environment variables that override the config file.
const (
	EnvSpecURL = "NAMABAR_GEN_SPEC_URL"
	EnvOutput  = "NAMABAR_GEN_OUTPUT"
)

// settings is the resolved generator configuration. Later sources override
// earlier ones: defaults, config file, environment, then explicit flags.
type settings struct {
	Spec          string `yaml:"spec"`
	Output        string `yaml:"output"`
	Package       string `yaml:"package"`
	Receiver      string `yaml:"receiver"`
	Interface     string `yaml:"interface"`
	MethodsFile   string `yaml:"methods_file"`
	InterfaceFile string `yaml:"interface_file"`
	Strict        bool   `yaml:"strict"`
	UserAgent     string `yaml:"user_agent"`
}

func defaultSettings() settings {
	return settings{
		Spec:          generator.DefaultSpecURL,
		Output:        ".",
		Package:       generator.DefaultPackageName,
		Receiver:      generator.DefaultReceiverType,
		Interface:     generator.DefaultInterfaceName,
		MethodsFile:   generator.DefaultMethodsFileName,
		InterfaceFile: generator.DefaultInterfaceFileName,
	}
}

// applyFile overlays the non-empty values of a YAML config file.
func (s *settings) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var file settings
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	overlay(&s.Spec, file.Spec)
	overlay(&s.Output, file.Output)
	overlay(&s.Package, file.Package)
	overlay(&s.Receiver, file.Receiver)
	overlay(&s.Interface, file.Interface)
	overlay(&s.MethodsFile, file.MethodsFile)
	overlay(&s.InterfaceFile, file.InterfaceFile)
	overlay(&s.UserAgent, file.UserAgent)
	s.Strict = s.Strict || file.Strict
	return nil
}

// applyEnv overlays the NAMABAR_GEN_* environment variables.
func (s *settings) applyEnv() {
	overlay(&s.Spec, strings.TrimSpace(os.Getenv(EnvSpecURL)))
	overlay(&s.Output, strings.TrimSpace(os.Getenv(EnvOutput)))
}

// options converts the settings into generator options.
func (s *settings) options() []generator.Option {
	opts := []generator.Option{
		generator.WithPackageName(s.Package),
		generator.WithReceiverType(s.Receiver),
		generator.WithInterfaceName(s.Interface),
		generator.WithFileNames(s.MethodsFile, s.InterfaceFile),
		generator.WithStrictMode(s.Strict),
	}
	if s.UserAgent != "" {
		opts = append(opts, generator.WithUserAgent(s.UserAgent))
	}
	return opts
}

func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
