package config

import "time"

// DefaultTimeout bounds the adapter types request.
const DefaultTimeout = 10 * time.Second

// SourceConfig selects the adapter types source. File wins over URL when both are set.
type SourceConfig struct {
	// URL is the base URL of the management API, e.g. "http://localhost:8080".
	URL string `json:"url,omitempty" toml:"url"`

	// File is a local adapter types document.
	File string `json:"file,omitempty" toml:"file"`

	// Timeout bounds the HTTP request.
	// Default: "10s"
	Timeout Duration `json:"timeout,omitempty" toml:"timeout"`
}

// GetTimeout returns the timeout, defaulting to DefaultTimeout.
func (s *SourceConfig) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout
	}

	return s.Timeout.ToDuration()
}

// UsesFile reports whether adapter types are read from disk.
func (s *SourceConfig) UsesFile() bool {
	return s.File != ""
}
