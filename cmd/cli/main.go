package main

import (
	"fmt"
	"os"

	"github.com/de-tools/fleet-audit/pkg/runtime/terminal"
	"github.com/de-tools/fleet-audit/pkg/services/analysis"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Analyzer: analysis.NewAnalyzer(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
