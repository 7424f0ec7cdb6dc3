package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Luka12-dev/Cyon-sub001/internal/config"
	"github.com/Luka12-dev/Cyon-sub001/internal/loop"
	"github.com/Luka12-dev/Cyon-sub001/internal/stats"
)

var benchIterations int64

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure driver overhead for every loop shape",
	Long: `Bench runs each loop shape for a fixed number of steps with a trivial
body and reports the callback overhead per step. Useful for judging the
unroll threshold against real driver cost on the target machine.`,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().Int64VarP(&benchIterations, "iterations", "n", 100000,
		"steps to run per loop shape")
	rootCmd.AddCommand(benchCmd)
}

// benchShape pairs a loop shape name with a closure that drives it for
// benchIterations steps.
type benchShape struct {
	name string
	run  func() error
}

func benchShapes(rt *loop.Runtime, n int64) []benchShape {
	ints := make([]int64, n)
	strs := make([]string, n)

	// Factor n into a near-square grid for the nested shape.
	rows := int64(1)
	for rows*rows < n {
		rows++
	}
	cols := n / rows
	if cols < 1 {
		cols = 1
	}

	return []benchShape{
		{"for-range", func() error {
			return rt.ForRange(0, n, 1, func(int64) {})
		}},
		{"while", func() error {
			i := int64(0)
			return rt.While(func() bool { return i < n }, func() { i++ })
		}},
		{"do-while", func() error {
			i := int64(0)
			return rt.DoWhile(func() bool { return i < n-1 }, func() { i++ })
		}},
		{"foreach-int64", func() error {
			return rt.EachInt64(ints, func(int64) {})
		}},
		{"foreach-string", func() error {
			return rt.EachString(strs, func(string) {})
		}},
		{"nested-2d", func() error {
			return rt.Nested2D(rows, cols, func(int64, int64) {})
		}},
		{"forever", func() error {
			i := int64(0)
			return rt.Forever(func() {
				i++
				if i >= n {
					rt.Break()
				}
			})
		}},
		{"repeat", func() error {
			return rt.Repeat(n, func(int64) {})
		}},
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchIterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", benchIterations)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return err
	}

	rec := stats.NewRecorder()
	rt := loop.New(loop.Options{
		MaxDepth: cfg.Limits.MaxDepth,
		Stats:    rec,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s  %12s  %10s\n", "SHAPE", "TOTAL", "NS/STEP")

	for _, s := range benchShapes(rt, benchIterations) {
		start := time.Now()
		if err := s.run(); err != nil {
			return fmt.Errorf("%s failed: %w", s.name, err)
		}
		elapsed := time.Since(start)
		perStep := elapsed.Nanoseconds() / benchIterations
		fmt.Fprintf(out, "%-16s  %12s  %10d\n", s.name, elapsed.Round(time.Microsecond), perStep)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, colorize(rec.Snapshot().String()))
	return nil
}

// colorize bolds the statistics report when stdout is a terminal.
func colorize(report string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return report
	}
	return "\x1b[1m" + report + "\x1b[0m"
}
