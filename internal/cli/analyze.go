package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Luka12-dev/Cyon-sub001/internal/config"
	"github.com/Luka12-dev/Cyon-sub001/internal/loop"
)

var analyzeThreshold uint64

var analyzeCmd = &cobra.Command{
	Use:   "analyze <iterations>",
	Short: "Print the unroll planning hint for an iteration count",
	Long: `Analyze prints the planning hint the code generator uses to decide
whether a counted loop is worth fully unrolling. The hint is advisory
metadata only; the runtime drivers never consult it.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Uint64Var(&analyzeThreshold, "threshold", 0,
		"unroll threshold (defaults to the configured limit)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	iterations, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid iteration count %q: %w", args[0], err)
	}

	threshold := analyzeThreshold
	if !cmd.Flags().Changed("threshold") {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		cfg, err := config.LoadConfig(cwd)
		if err != nil {
			return err
		}
		threshold = cfg.Limits.UnrollThreshold
	}

	hint := loop.AnalyzeWithThreshold(iterations, threshold)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "iterations: %d\n", hint.IterationCount)
	fmt.Fprintf(out, "unroll:     %t\n", hint.EnableUnroll)
	fmt.Fprintf(out, "factor:     %d\n", hint.UnrollFactor)
	return nil
}
