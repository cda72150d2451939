package commands

import (
	"github.com/spf13/cobra"
)

func newInspectCommand(g *globalOptions) *cobra.Command {
	var (
		flags  sourceFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "inspect [spec]",
		Short: "List the methods that would be generated",
		Long: `Inspect derives the operations from the OpenAPI description and prints each
generated method with its signature, without writing files. The optional
argument overrides --spec.`,
		Example: `  namabar-gen inspect
  namabar-gen inspect openapi.yaml --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateOutputFormat(format); err != nil {
				return err
			}
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				s.Spec = args[0]
			}
			// inspection reports warnings instead of failing on them
			s.Strict = false

			result, err := runGenerator(cmd, g, s)
			if err != nil {
				return err
			}
			report := result.Report()
			if format == FormatText {
				Writef(cmd.OutOrStdout(), "%s", report.String())
				return nil
			}
			return OutputStructured(cmd.OutOrStdout(), report, format)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format: text, json or yaml")
	return cmd
}
