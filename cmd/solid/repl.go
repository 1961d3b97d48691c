package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	solid "github.com/COMMENTERTHE9/Blaze-sub002"
)

const (
	historyFile = ".solid_history"
	promptMain  = "==> "
)

const replBanner = `solid REPL
Enter "<lhs> <op> <rhs>" to combine values, or:
  :analyze <number> [precision]   run the GGGX pipeline
  :quit                           exit (Ctrl+D also works)`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive solid-value workbench",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.OutOrStdout())
		},
	}
}

func runRepl(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer saveHistory(line, histPath)

	fmt.Fprintln(out, replBanner)
	az := solid.NewAnalyzer()

	for {
		input, err := line.Prompt(promptMain)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil { // io.EOF on Ctrl+D
			fmt.Fprintln(out)
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch {
		case input == ":quit" || input == ":q":
			return nil
		case strings.HasPrefix(input, ":analyze"):
			replAnalyze(out, az, strings.Fields(input)[1:])
		default:
			replEval(out, input)
		}
	}
}

func replAnalyze(out io.Writer, az *solid.Analyzer, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(out, styleDim.Render("usage: :analyze <number> [precision]"))
		return
	}
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintln(out, styleBarrier.Render("not a number: "+args[0]))
		return
	}
	precision := 15
	if len(args) > 1 {
		if p, err := strconv.Atoi(args[1]); err == nil {
			precision = p
		}
	}
	r := az.Analyze(value, precision)
	if r.Value != nil {
		fmt.Fprintln(out, styleValue.Render(r.Value.Display()))
	}
	fmt.Fprintln(out, styleDim.Render(r.Explanation))
}

func replEval(out io.Writer, input string) {
	fields := strings.Fields(input)
	if len(fields) != 3 {
		fmt.Fprintln(out, styleDim.Render(`expected "<lhs> <op> <rhs>"`))
		return
	}
	a, err := parseOperand(fields[0])
	if err != nil {
		fmt.Fprintln(out, styleBarrier.Render(err.Error()))
		return
	}
	b, err := parseOperand(fields[2])
	if err != nil {
		fmt.Fprintln(out, styleBarrier.Render(err.Error()))
		return
	}
	result, err := applyOp(a, fields[1], b)
	if err != nil {
		fmt.Fprintln(out, styleBarrier.Render(err.Error()))
		return
	}
	fmt.Fprintln(out, styleValue.Render(result.Display()))
	if result.IsUndefined() && result.Undef != nil {
		fmt.Fprintln(out, styleDim.Render("undefined: "+result.Undef.Reason.String()))
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func saveHistory(line *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		slog.Debug("cannot save history", "path", path, "error", err)
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
