package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	namabar "github.com/namabar/namabar-go"
	"github.com/namabar/namabar-go/parser"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	logLevel string
	noColor  bool

	log zerolog.Logger
}

// logger adapts the command logger for the parser and generator packages.
func (g *globalOptions) logger() parser.Logger {
	return parser.NewZerologAdapter(g.log)
}

// NewRootCommand builds the namabar-gen command tree.
func NewRootCommand() *cobra.Command {
	g := &globalOptions{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "namabar-gen",
		Short: "Generate the Namabar Go SDK endpoints from the API's OpenAPI description",
		Long: `namabar-gen reads the Namabar OpenAPI description and renders two Go files:
a methods file with one method per API operation and an interface file
listing those methods with their documentation.`,
		Version:       namabar.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(strings.ToLower(g.logLevel))
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", g.logLevel, err)
			}
			out := zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: g.noColor, TimeFormat: "15:04:05"}
			g.log = zerolog.New(out).Level(level).With().Timestamp().Logger()
			return nil
		},
	}
	root.SetVersionTemplate("namabar-gen {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error or disabled")
	pf.BoolVar(&g.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(
		newGenerateCommand(g),
		newInspectCommand(g),
		newMCPCommand(g),
		newVersionCommand(),
	)
	return root
}
