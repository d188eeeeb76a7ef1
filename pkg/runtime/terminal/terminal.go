package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-audit/pkg/runtime/terminal/commands"
	"github.com/de-tools/fleet-audit/pkg/runtime/terminal/export"
	"github.com/de-tools/fleet-audit/pkg/services/analysis"
)

// CLI represents the command-line interface
type CLI struct {
	analyzer analysis.Analyzer
	output   io.Writer
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Analyzer analysis.Analyzer
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Analyzer == nil {
		opts.Analyzer = analysis.NewAnalyzer()
	}

	cli := &CLI{
		analyzer: opts.Analyzer,
		output:   opts.Output,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet-audit",
		Short: "Vehicle trip risk audit tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.analyzer, cli.output))
	cmd.AddCommand(commands.NewSummaryCmd(cli.analyzer, cli.reporter))

	return cmd
}
