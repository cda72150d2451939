package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/namabar/namabar-go/generator"
	"github.com/namabar/namabar-go/parser"
)

func newGenerateCommand(g *globalOptions) *cobra.Command {
	var flags sourceFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the endpoint methods and interface files",
		Long: `Generate fetches the OpenAPI description and writes the methods file and the
interface file into the output directory. Nothing is written unless both
files render successfully.`,
		Example: `  namabar-gen generate
  namabar-gen generate --spec openapi.json -o ./namabar
  curl -s https://api.namabar.krd/openapi/v1.json | namabar-gen generate --spec - --strict
  namabar-gen generate --config namabar-gen.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			result, err := runGenerator(cmd, g, s)
			if err != nil {
				if result != nil {
					printIssues(cmd, result)
				}
				return err
			}
			if err := result.WriteFiles(s.Output); err != nil {
				return err
			}
			g.log.Debug().Str("dir", s.Output).Int("files", len(result.Files)).Msg("wrote generated files")

			out := cmd.OutOrStdout()
			Writef(out, "Generated %d operation(s) from %s (OpenAPI %s, %s) in %v\n",
				result.GeneratedOperations, s.Spec, result.SourceVersion,
				parser.FormatBytes(result.SourceSize), result.LoadTime+result.GenerateTime)
			for _, f := range result.Files {
				Writef(out, "  wrote %s (%s)\n", filepath.Join(s.Output, f.Name), parser.FormatBytes(int64(len(f.Content))))
			}
			printIssues(cmd, result)
			return nil
		},
	}
	flags.bind(cmd)

	d := defaultSettings()
	fs := cmd.Flags()
	fs.StringVarP(&flags.values.Output, "output", "o", d.Output, "output directory (env "+EnvOutput+")")
	fs.StringVar(&flags.values.MethodsFile, "methods-file", d.MethodsFile, "name of the methods file")
	fs.StringVar(&flags.values.InterfaceFile, "interface-file", d.InterfaceFile, "name of the interface file")
	return cmd
}

// printIssues lists generation issues and their totals.
func printIssues(cmd *cobra.Command, result *generator.GenerateResult) {
	if len(result.Issues) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	Writef(out, "\nIssues (%d info, %d warning, %d critical):\n",
		result.InfoCount, result.WarningCount, result.CriticalCount)
	for _, issue := range result.Issues {
		Writef(out, "  %s\n", issue.String())
	}
}
