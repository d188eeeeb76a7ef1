package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-audit/pkg/services/analysis"
	"github.com/de-tools/fleet-audit/pkg/services/report"
)

type AnalyzeCmd struct {
	inputPath  string
	outputPath string
	analyzer   analysis.Analyzer
	output     io.Writer
}

func NewAnalyzeCmd(analyzer analysis.Analyzer, output io.Writer) *cobra.Command {
	ac := &AnalyzeCmd{analyzer: analyzer, output: output}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a trip log and write the risk report CSV",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.inputPath, "input", "", "Path to the trip log CSV")
	cmd.Flags().StringVar(&ac.outputPath, "output", "", "Path for the report CSV (default stdout)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	input, err := os.Open(ac.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open trip log: %w", err)
	}
	defer input.Close()

	riskReport, err := ac.analyzer.Analyze(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to analyze trip log: %w", err)
	}

	out := ac.output
	if ac.outputPath != "" {
		f, err := os.Create(ac.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return report.NewCSVReporter(out).Handle(riskReport)
}
