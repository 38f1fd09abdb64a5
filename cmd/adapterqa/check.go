package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smykla-labs/adapterqa/internal/evaluator"
	"github.com/smykla-labs/adapterqa/internal/rules"
	"github.com/smykla-labs/adapterqa/internal/runner"
	"github.com/smykla-labs/adapterqa/internal/source"
	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
)

// ErrNoSource is returned when neither a URL nor a file is configured.
var ErrNoSource = errors.New("no adapter source configured")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check adapter schemas and write a report",
	Long: `Fetch adapter types from the management API (or a file), run the rule set
against each adapter's configuration and UI schema, and write the report.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	flags := checkCmd.Flags()
	flags.String("url", "", "Management API base URL")
	flags.String("file", "", "Read adapter types from a file instead of the API")
	flags.String("timeout", "", "HTTP timeout, e.g. 30s")
	flags.StringP("output", "o", "", "JSON report path")
	flags.String("metrics-file", "", "Write Prometheus metrics to this textfile")
	flags.StringSlice("adapter", nil, "Only check adapters whose id matches these globs")
	flags.String("adapter-version", "", "Only check adapters whose version satisfies this constraint")
	flags.StringSlice("disable", nil, "Rule ids to skip")
	flags.Int("parallelism", 0, "Concurrent evaluations")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(cfg.GetSource())
	if err != nil {
		return err
	}

	adapters := cfg.GetAdapters()

	filter, err := runner.NewFilter(adapters.Include, adapters.Version)
	if err != nil {
		return err
	}

	rc := cfg.GetRules()
	parallelism := rc.GetParallelism()

	eval := evaluator.NewEvaluator(
		rules.NewRegistry(log, rc.Disabled...),
		log,
		evaluator.WithParallelism(parallelism),
	)

	opts := []runner.Option{
		runner.WithFilter(filter),
		runner.WithParallelism(parallelism),
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		opts = append(opts, runner.WithProgress(newProgressBar))
	}

	outcomes, err := runner.New(fetcher, eval, log, opts...).Run(cmd.Context())
	if err != nil {
		return err
	}

	return emitReport(cmd.OutOrStdout(), cfg, outcomes)
}

func newFetcher(sc *pkgconfig.SourceConfig) (source.Fetcher, error) {
	switch {
	case sc.UsesFile():
		return source.NewFileFetcher(sc.File), nil
	case sc.URL != "":
		return source.NewHTTPFetcher(sc.URL, sc.GetTimeout(), log), nil
	default:
		return nil, errors.WithHint(ErrNoSource,
			"Pass --url or --file, or set [source] in .adapterqa/config.toml")
	}
}

func newProgressBar(total int) runner.Progress {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("checking adapters"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
