package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
	"github.com/smykla-labs/adapterqa/internal/report"
	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/internal/rules"
)

// scopeBrowser marks catalogue entries only the browser runner checks.
const scopeBrowser = "browser"

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalogue",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	implemented := map[string]rule.Rule{}
	for _, r := range rules.NewRegistry(log).Rules() {
		implemented[r.ID()] = r
	}

	color := colorEnabled(cfg)

	writer := table.NewWriter()
	writer.SetOutputMirror(cmd.OutOrStdout())
	writer.AppendHeader(table.Row{"ID", "Severity", "Scope", "Kind", "Title"})
	writer.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Title", WidthMax: 60},
	})

	for _, m := range catalogue.Default().All() {
		scope := scopeBrowser
		if r, ok := implemented[m.ID]; ok {
			scope = r.Scope().String()
		}

		kind := "blocking"

		switch {
		case cfg.GetRules().IsDisabled(m.ID):
			kind = "disabled"
		case m.Advisory:
			kind = "advisory"
		}

		severity := m.Severity.String()
		if color {
			severity = report.SeverityColors(m.Severity).Sprint(severity)
		}

		writer.AppendRow(table.Row{m.ID, severity, scope, kind, m.Title})
	}

	writer.Render()

	return nil
}
