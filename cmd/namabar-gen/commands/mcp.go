package commands

import (
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/namabar/namabar-go/internal/mcpserver"
)

func newMCPCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the inspect and generate tools over MCP on stdio",
		Long: `mcp starts a Model Context Protocol server on stdin/stdout. Diagnostics go to
stderr. Server defaults are read from NAMABAR_MCP_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			switch l := g.log.GetLevel(); {
			case l <= zerolog.DebugLevel:
				level = slog.LevelDebug
			case l >= zerolog.ErrorLevel:
				level = slog.LevelError
			case l == zerolog.WarnLevel:
				level = slog.LevelWarn
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return mcpserver.Run(cmd.Context(), log)
		},
	}
}
