package catalogue

import "gopkg.in/yaml.v3"

//go:generate enumer -type=Severity -trimprefix=Severity -transform=lower -json -text -output=severity_enumer.go

// Severity ranks how urgently a failed check needs fixing.
type Severity int

const (
	// SeverityUnknown marks an outcome without rule metadata.
	SeverityUnknown Severity = iota
	SeverityCritical
	SeverityHigh
	SeverityMedium
	SeverityLow
)

// Rank orders severities for sorting: critical first, unknown last.
func (s Severity) Rank() int {
	if s == SeverityUnknown || !s.IsASeverity() {
		return int(SeverityLow) + 1
	}

	return int(s)
}

// Icon returns the report marker for the severity.
func (s Severity) Icon() string {
	switch s {
	case SeverityCritical:
		return "🔴"
	case SeverityHigh:
		return "🟠"
	case SeverityMedium:
		return "🟡"
	case SeverityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// Label returns the capitalised severity name used in headings.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	case SeverityLow:
		return "Low"
	default:
		return "Unclassified"
	}
}

// Levels returns the classified severities in rank order.
func Levels() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// UnmarshalYAML decodes a severity name from the catalogue document.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	return s.UnmarshalText([]byte(value.Value))
}
