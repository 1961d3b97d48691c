// Command solid is the workbench for solid numeric values: analyze a
// number through the GGGX pipeline, evaluate arithmetic over gapped
// values, or explore interactively in a REPL.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "solid",
		Short: "Analyze and combine precision-barrier numeric values",
		Long: `solid models numbers whose precision is limited by a computational
barrier: a prefix of known digits, a gap of unknown magnitude, and a
terminal describing the far tail. The GGGX pipeline derives that
representation from a raw number; the arithmetic algebra combines two
of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd(), newEvalCmd(), newReplCmd())

	if err := root.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
