package main

import (
	"io"
	"time"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
	"github.com/smykla-labs/adapterqa/internal/outcome"
	"github.com/smykla-labs/adapterqa/internal/report"
	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
)

// emitReport aggregates outcomes and writes the JSON report, the text report, and the optional metrics.
func emitReport(w io.Writer, cfg *pkgconfig.Config, outcomes []*outcome.Outcome) error {
	r := report.Build(outcomes, catalogue.Lookup, time.Now().UTC())
	rc := cfg.GetReport()

	if err := report.WriteJSONFile(rc.GetOutput(), r); err != nil {
		return err
	}

	if err := report.NewTextWriter(colorEnabled(cfg)).Write(w, r); err != nil {
		return err
	}

	if rc.MetricsFile != "" {
		if err := report.WriteMetrics(rc.MetricsFile, r); err != nil {
			return err
		}
	}

	log.Info("report written",
		"path", rc.GetOutput(),
		"total", r.Summary.Total,
		"failed", r.Summary.Failed,
	)

	return nil
}
