package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-audit/pkg/runtime/terminal/export"
	"github.com/de-tools/fleet-audit/pkg/services/analysis"
)

type SummaryCmd struct {
	inputPath string
	analyzer  analysis.Analyzer
	reporter  *export.Reporter
}

func NewSummaryCmd(analyzer analysis.Analyzer, reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{analyzer: analyzer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Analyze a trip log and print the risk report to the console",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.inputPath, "input", "", "Path to the trip log CSV")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	input, err := os.Open(sc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to open trip log: %w", err)
	}
	defer input.Close()

	riskReport, err := sc.analyzer.Analyze(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to analyze trip log: %w", err)
	}

	return sc.reporter.Handle(riskReport)
}
