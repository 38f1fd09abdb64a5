package config

// ColorMode controls ANSI colour output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Valid reports whether the mode is known. The empty mode counts as auto.
func (m ColorMode) Valid() bool {
	switch m {
	case "", ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Enabled resolves the mode against whether the output is a terminal.
func (m ColorMode) Enabled(terminal bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
}

const (
	// DefaultOutput is where the JSON report is written.
	DefaultOutput = "qa-report.json"

	// DefaultResults is the browser runner results document.
	DefaultResults = "cypress/results/combined.json"
)

// ReportConfig controls the report artefacts.
type ReportConfig struct {
	// Output is the JSON report path.
	// Default: "qa-report.json"
	Output string `json:"output,omitempty" toml:"output"`

	// Results is the browser runner results document.
	// Default: "cypress/results/combined.json"
	Results string `json:"results,omitempty" toml:"results"`

	// MetricsFile, when set, receives a Prometheus textfile with the summary counts.
	MetricsFile string `json:"metrics_file,omitempty" toml:"metrics_file"`

	// Color is one of auto, always, never.
	// Default: "auto"
	Color ColorMode `json:"color,omitempty" toml:"color"`
}

// GetOutput returns the JSON report path.
func (r *ReportConfig) GetOutput() string {
	if r.Output == "" {
		return DefaultOutput
	}

	return r.Output
}

// GetResults returns the results document path.
func (r *ReportConfig) GetResults() string {
	if r.Results == "" {
		return DefaultResults
	}

	return r.Results
}

// GetColor returns the colour mode, defaulting to auto.
func (r *ReportConfig) GetColor() ColorMode {
	if r.Color == "" {
		return ColorAuto
	}

	return r.Color
}
