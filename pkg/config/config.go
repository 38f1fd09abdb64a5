// Package config provides configuration schema types for adapterqa.
package config

// Config represents the root configuration for adapterqa.
type Config struct {
	// Source selects where adapter types are read from.
	Source *SourceConfig `json:"source,omitempty" toml:"source,omitempty"`

	// Report controls the report artefacts.
	Report *ReportConfig `json:"report,omitempty" toml:"report,omitempty"`

	// Adapters restricts which adapter types are checked.
	Adapters *AdaptersConfig `json:"adapters,omitempty" toml:"adapters,omitempty"`

	// Rules tunes rule evaluation.
	Rules *RulesConfig `json:"rules,omitempty" toml:"rules,omitempty"`
}

// GetSource returns the source config, creating it if it doesn't exist.
func (c *Config) GetSource() *SourceConfig {
	if c.Source == nil {
		c.Source = &SourceConfig{}
	}

	return c.Source
}

// GetReport returns the report config, creating it if it doesn't exist.
func (c *Config) GetReport() *ReportConfig {
	if c.Report == nil {
		c.Report = &ReportConfig{}
	}

	return c.Report
}

// GetAdapters returns the adapters config, creating it if it doesn't exist.
func (c *Config) GetAdapters() *AdaptersConfig {
	if c.Adapters == nil {
		c.Adapters = &AdaptersConfig{}
	}

	return c.Adapters
}

// GetRules returns the rules config, creating it if it doesn't exist.
func (c *Config) GetRules() *RulesConfig {
	if c.Rules == nil {
		c.Rules = &RulesConfig{}
	}

	return c.Rules
}
