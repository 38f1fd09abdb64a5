package config

import "slices"

// DefaultParallelism is the number of adapters evaluated concurrently.
const DefaultParallelism = 4

// AdaptersConfig restricts which adapter types are checked.
type AdaptersConfig struct {
	// Include lists glob patterns matched against adapter ids. Empty means all.
	Include []string `json:"include,omitempty" toml:"include"`

	// Version is a semver constraint on the adapter version, e.g. ">= 1.0".
	Version string `json:"version,omitempty" toml:"version"`
}

// RulesConfig tunes rule evaluation.
type RulesConfig struct {
	// Disabled lists rule ids that are never run.
	Disabled []string `json:"disabled,omitempty" toml:"disabled"`

	// Parallelism bounds concurrent adapter evaluation.
	// Default: 4
	Parallelism int `json:"parallelism,omitempty" toml:"parallelism"`
}

// IsDisabled reports whether a rule id is disabled.
func (r *RulesConfig) IsDisabled(id string) bool {
	return slices.Contains(r.Disabled, id)
}

// GetParallelism returns the parallelism, defaulting to DefaultParallelism.
func (r *RulesConfig) GetParallelism() int {
	if r.Parallelism < 1 {
		return DefaultParallelism
	}

	return r.Parallelism
}
