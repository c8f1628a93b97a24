package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cubedeck/cubedeck/pkg/buildinfo"
)

// Execute runs the cubedeck CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (generate,
// list, cache), configures logging based on the --verbose flag, and
// executes the command tree against ctx, so a SIGINT from the caller
// cancels running fetches.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cubedeck",
		Short:        "cubedeck generates printable cubing algorithm flashcards",
		Long:         `cubedeck turns speedcubing algorithm sets (PLL, OLL, big-cube parities, or your own deck files) into double-sided LaTeX flashcards with rendered case icons, plus an Anki import file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
