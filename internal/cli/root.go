package cli

import (
	"github.com/spf13/cobra"

	"github.com/Luka12-dev/Cyon-sub001/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cyonloop",
	Short: "Loop runtime toolkit for Cyon generated code",
	Long: `Cyonloop inspects and exercises the loop runtime the Cyon code
generator emits calls into. It reports unroll planning hints for known
iteration counts and measures per-shape driver overhead.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.LevelDebug)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("cyonloop version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
