package main

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
	"github.com/smykla-labs/adapterqa/internal/config"
	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

var (
	debug    bool
	logLevel string
	noColor  bool

	log logger.Logger = logger.NewNoOpLogger()
)

// configFlags maps command flags onto koanf config keys.
var configFlags = map[string]string{
	"url":             "source.url",
	"file":            "source.file",
	"timeout":         "source.timeout",
	"output":          "report.output",
	"metrics-file":    "report.metrics_file",
	"adapter":         "adapters.include",
	"adapter-version": "adapters.version",
	"disable":         "rules.disabled",
	"parallelism":     "rules.parallelism",
}

var rootCmd = &cobra.Command{
	Use:   "adapterqa",
	Short: "Quality checks for protocol adapter configuration schemas",
	Long: `adapterqa runs structural and semantic checks against the configuration
and UI schemas of protocol adapters and renders a severity-ranked report.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return errors.WithHint(err, "Use one of: debug, info, warn, error")
	}

	if debug {
		level = slog.LevelDebug
	}

	log = logger.NewSlogLogger(os.Stderr, level)

	return nil
}

// loadConfig merges every config layer with the flags set on cmd and validates the result.
func loadConfig(cmd *cobra.Command) (*pkgconfig.Config, error) {
	loader, err := config.NewKoanfLoader()
	if err != nil {
		return nil, err
	}

	cfg, err := loader.Load(flagOverrides(cmd))
	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}

	if err := config.NewValidator(catalogue.Default()).Validate(cfg); err != nil {
		return nil, errors.WithHintf(err, "Check %s", loader.ProjectConfigPath())
	}

	log.Debug("configuration loaded",
		"source_url", cfg.GetSource().URL,
		"source_file", cfg.GetSource().File,
		"output", cfg.GetReport().GetOutput(),
	)

	return cfg, nil
}

func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}

	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := configFlags[f.Name]
		if !ok {
			return
		}

		if slice, ok := f.Value.(pflag.SliceValue); ok {
			overrides[key] = slice.GetSlice()
			return
		}

		overrides[key] = f.Value.String()
	})

	if noColor {
		overrides["report.color"] = string(pkgconfig.ColorNever)
	}

	return overrides
}

func colorEnabled(cfg *pkgconfig.Config) bool {
	return cfg.GetReport().GetColor().Enabled(term.IsTerminal(int(os.Stdout.Fd())))
}
