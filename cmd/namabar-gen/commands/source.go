package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/namabar/namabar-go/generator"
	"github.com/namabar/namabar-go/parser"
)

// sourceFlags binds the flags shared by generate and inspect.
type sourceFlags struct {
	values     settings
	configPath string
}

func (f *sourceFlags) bind(cmd *cobra.Command) {
	d := defaultSettings()
	fs := cmd.Flags()
	fs.StringVarP(&f.values.Spec, "spec", "s", d.Spec, "OpenAPI document: URL, file path, or - for stdin (env "+EnvSpecURL+")")
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fs.StringVarP(&f.values.Package, "package", "p", d.Package, "Go package name of the generated files")
	fs.StringVar(&f.values.Receiver, "receiver", d.Receiver, "client type the methods are declared on")
	fs.StringVar(&f.values.Interface, "interface", d.Interface, "name of the generated interface")
	fs.BoolVar(&f.values.Strict, "strict", false, "fail on any generation warning")
	fs.StringVar(&f.values.UserAgent, "user-agent", "", "User-Agent for fetching the specification")
}

// resolve merges defaults, the config file, the environment and the flags the
// user set explicitly.
func (f *sourceFlags) resolve(cmd *cobra.Command) (settings, error) {
	s := defaultSettings()
	if f.configPath != "" {
		if err := s.applyFile(f.configPath); err != nil {
			return s, err
		}
	}
	s.applyEnv()

	flagged := []struct {
		name string
		dst  *string
		src  string
	}{
		{"spec", &s.Spec, f.values.Spec},
		{"output", &s.Output, f.values.Output},
		{"package", &s.Package, f.values.Package},
		{"receiver", &s.Receiver, f.values.Receiver},
		{"interface", &s.Interface, f.values.Interface},
		{"methods-file", &s.MethodsFile, f.values.MethodsFile},
		{"interface-file", &s.InterfaceFile, f.values.InterfaceFile},
		{"user-agent", &s.UserAgent, f.values.UserAgent},
	}
	for _, fl := range flagged {
		if cmd.Flags().Changed(fl.name) {
			*fl.dst = fl.src
		}
	}
	if cmd.Flags().Changed("strict") {
		s.Strict = f.values.Strict
	}
	return s, nil
}

// runGenerator parses the configured source and derives the endpoint files.
func runGenerator(cmd *cobra.Command, g *globalOptions, s settings) (*generator.GenerateResult, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	log := g.logger()
	opts := append(s.options(), generator.WithLogger(log), generator.WithContext(ctx))

	if s.Spec == StdinFilePath {
		p := parser.New()
		p.Logger = log
		parsed, err := p.ParseReader(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("generator: failed to fetch or parse specification: %w", err)
		}
		opts = append(opts, generator.WithParsed(*parsed))
	} else {
		opts = append(opts, generator.WithFilePath(s.Spec))
	}
	return generator.GenerateWithOptions(opts...)
}
