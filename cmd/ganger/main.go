// Command ganger runs the print-shop ganging optimizer against a JSON
// request file and writes the ranked production plans to stdout or a file.
// Grounded on Devi-Muna-CloudSlash's cobra root command layout.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/ganger/internal/config"
	"github.com/piwi3910/ganger/internal/ganging"
	"github.com/piwi3910/ganger/internal/ioadapter"
	"github.com/piwi3910/ganger/internal/pipeline"
	"github.com/piwi3910/ganger/internal/xlsxreport"
)

var (
	inputPath  string
	outputPath string
	configPath string
	xlsxPath   string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ganger",
		Short: "Solve a print-shop ganging request",
		RunE:  runSolve,
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the JSON request file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the JSON response (default stdout)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML defaults file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "optional path to also write an XLSX production-plan report")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	in, err := ioadapter.ParseInput(data)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	defaults, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	in.Options = defaults.ApplyTo(in.Options)

	result, err := pipeline.Run(context.Background(), log, in)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	out, err := ioadapter.FormatOutput(result)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(out)
		if err != nil {
			return err
		}
		fmt.Println()
	} else if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if xlsxPath != "" {
		f, err := xlsxreport.Write(baselineAsPlan(result), result.Plans)
		if err != nil {
			return fmt.Errorf("building xlsx report: %w", err)
		}
		if err := f.SaveAs(xlsxPath); err != nil {
			return fmt.Errorf("writing xlsx report: %w", err)
		}
	}

	return nil
}

func baselineAsPlan(result pipeline.Result) ganging.Plan {
	plan := ganging.Plan{TotalCost: result.Baseline.TotalCost}
	ids := make([]string, 0, len(result.Baseline.Layouts))
	for id := range result.Baseline.Layouts {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	for _, id := range ids {
		plan.Layouts = append(plan.Layouts, result.Baseline.Layouts[id])
	}
	return plan
}
