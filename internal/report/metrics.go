package report

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
)

const metricsNamespace = "adapterqa"

// WriteMetrics writes the summary gauges to path in the Prometheus textfile format,
// for node_exporter's textfile collector or trend tracking in CI.
func WriteMetrics(path string, r *Report) error {
	reg := prometheus.NewRegistry()

	checks := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "checks",
		Help:      "Number of executed checks by status.",
	}, []string{"status"})

	failures := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "failures",
		Help:      "Number of failed checks by severity.",
	}, []string{"severity"})

	generated := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "report_generated_timestamp_seconds",
		Help:      "Unix time the report was generated.",
	})

	reg.MustRegister(checks, failures, generated)

	checks.WithLabelValues(StatusPassed).Set(float64(r.Summary.Passed))
	checks.WithLabelValues(StatusFailed).Set(float64(r.Summary.Failed))

	for _, sev := range catalogue.Levels() {
		failures.WithLabelValues(sev.String()).Set(float64(r.Summary.BySeverity(sev)))
	}

	generated.Set(float64(r.Generated.Unix()))

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return errors.Wrapf(err, "write metrics %s", path)
	}

	return nil
}
