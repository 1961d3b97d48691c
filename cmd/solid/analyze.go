package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	solid "github.com/COMMENTERTHE9/Blaze-sub002"
)

var (
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleBarrier = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newAnalyzeCmd() *cobra.Command {
	var (
		precision int
		output    string
		constants string
	)
	cmd := &cobra.Command{
		Use:   "analyze <number>",
		Short: "Run the GGGX pipeline on a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", args[0])
			}

			az := solid.NewAnalyzer()
			if constants != "" {
				extra, err := solid.LoadConstants(constants)
				if err != nil {
					return fmt.Errorf("loading constants: %w", err)
				}
				az.Constants = extra
				slog.Debug("extended constant table", "path", constants, "entries", len(extra))
			}

			r := az.Analyze(value, precision)
			slog.Debug("analysis finished", "id", r.ID, "barrier", r.Detection.KindName)
			rep := solid.NewReport(r)

			switch output {
			case "json":
				data, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "yaml":
				data, err := yaml.Marshal(rep)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
			case "text":
				printTextReport(cmd, rep)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&precision, "precision", "p", 15, "desired precision in digits")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().StringVar(&constants, "constants", "", "YAML file with extra named constants")
	return cmd
}

func printTextReport(cmd *cobra.Command, rep solid.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styleValue.Render(rep.Value))
	fmt.Fprintf(out, "barrier:    %s\n", styleBarrier.Render(rep.Barrier))
	fmt.Fprintf(out, "gap:        %s\n", rep.Gap)
	fmt.Fprintf(out, "confidence: %d/1000\n", rep.Confidence)
	if rep.Constant != "" {
		fmt.Fprintf(out, "constant:   %s\n", rep.Constant)
	}
	fmt.Fprintln(out, styleDim.Render(rep.Explanation))
	fmt.Fprintln(out, styleDim.Render("trace: "+rep.ID))
}
