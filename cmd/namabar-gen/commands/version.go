package commands

import (
	"github.com/spf13/cobra"

	namabar "github.com/namabar/namabar-go"
)

func newVersionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if short {
				Writef(cmd.OutOrStdout(), "%s\n", namabar.Version())
				return
			}
			Writef(cmd.OutOrStdout(), "namabar-gen\n%s\nUser Agent: %s\n", namabar.BuildInfo(), namabar.UserAgent())
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
