package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-labs/adapterqa/internal/config"
	"github.com/smykla-labs/adapterqa/internal/doctor"
	configchecker "github.com/smykla-labs/adapterqa/internal/doctor/checkers/config"
	"github.com/smykla-labs/adapterqa/internal/doctor/checkers/inputs"
	"github.com/smykla-labs/adapterqa/internal/doctor/reporters"
	"github.com/smykla-labs/adapterqa/internal/results"
	"github.com/smykla-labs/adapterqa/internal/source"
)

var doctorVerbose bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and inputs",
	Long: `Check the config files, the adapter source, and the browser runner results
document, and report what needs fixing before running check or report.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	flags := doctorCmd.Flags()
	flags.BoolVar(&doctorVerbose, "verbose", false, "Show details for every check")
	flags.String("url", "", "Management API base URL")
	flags.String("file", "", "Adapter types file")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	loader, err := config.NewKoanfLoader()
	if err != nil {
		return err
	}

	// a broken config is reported by the config checkers
	cfg, err := loader.Load(flagOverrides(cmd))
	if err != nil {
		log.Debug("falling back to default configuration", "error", err)

		cfg = config.DefaultConfig()
	}

	var (
		fetcher source.Fetcher
		origin  string
	)

	if sc := cfg.GetSource(); sc.UsesFile() || sc.URL != "" {
		fetcher, err = newFetcher(sc)
		if err != nil {
			return err
		}

		origin = sc.URL
		if sc.UsesFile() {
			origin = sc.File
		}
	}

	checks := doctor.Run(cmd.Context(),
		configchecker.NewGlobalChecker(loader),
		configchecker.NewProjectChecker(loader),
		configchecker.NewPermissionsChecker(loader),
		inputs.NewSourceChecker(fetcher, origin),
		inputs.NewResultsChecker(results.NewReader(log), cfg.GetReport().GetResults()),
	)

	reporters.NewSimpleReporter(cmd.OutOrStdout()).Report(checks, doctorVerbose)

	if n := doctor.CountErrors(checks); n > 0 {
		return errors.Newf("%d check(s) failed", n)
	}

	return nil
}
