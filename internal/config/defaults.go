// Package config loads and validates adapterqa configuration.
package config

import (
	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
)

// DefaultConfig returns the configuration used when no source sets a value.
func DefaultConfig() *pkgconfig.Config {
	return &pkgconfig.Config{
		Source: &pkgconfig.SourceConfig{
			Timeout: pkgconfig.Duration(pkgconfig.DefaultTimeout),
		},
		Report: &pkgconfig.ReportConfig{
			Output:  pkgconfig.DefaultOutput,
			Results: pkgconfig.DefaultResults,
			Color:   pkgconfig.ColorAuto,
		},
		Adapters: &pkgconfig.AdaptersConfig{
			Include: []string{},
		},
		Rules: &pkgconfig.RulesConfig{
			Disabled:    []string{},
			Parallelism: pkgconfig.DefaultParallelism,
		},
	}
}

// defaultMap is DefaultConfig flattened into koanf keys.
func defaultMap() map[string]any {
	return map[string]any{
		"source.url":          "",
		"source.file":         "",
		"source.timeout":      pkgconfig.Duration(pkgconfig.DefaultTimeout).String(),
		"report.output":       pkgconfig.DefaultOutput,
		"report.results":      pkgconfig.DefaultResults,
		"report.metrics_file": "",
		"report.color":        string(pkgconfig.ColorAuto),
		"adapters.include":    []string{},
		"adapters.version":    "",
		"rules.disabled":      []string{},
		"rules.parallelism":   pkgconfig.DefaultParallelism,
	}
}
