package main

import (
	"github.com/spf13/cobra"

	"github.com/smykla-labs/adapterqa/internal/results"
)

var reportCmd = &cobra.Command{
	Use:   "report [results.json]",
	Short: "Render a report from browser runner results",
	Long: `Read the merged browser runner results document and write the report.
Defaults to cypress/results/combined.json or report.results from config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	flags := reportCmd.Flags()
	flags.StringP("output", "o", "", "JSON report path")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := cfg.GetReport().GetResults()
	if len(args) == 1 {
		path = args[0]
	}

	outcomes, err := results.NewReader(log).ReadFile(path)
	if err != nil {
		return err
	}

	return emitReport(cmd.OutOrStdout(), cfg, outcomes)
}
