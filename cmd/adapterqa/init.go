package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
	"github.com/smykla-labs/adapterqa/internal/config"
	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
)

var (
	initGlobal bool
	initForce  bool
	initURL    string
	initFile   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write .adapterqa/config.toml in the current directory, or ~/.adapterqa/config.toml
with --global. Prompts for the main settings when run in a terminal.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	flags := initCmd.Flags()
	flags.BoolVar(&initGlobal, "global", false, "Write the global config instead of the project config")
	flags.BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	flags.StringVar(&initURL, "url", "", "Management API base URL")
	flags.StringVar(&initFile, "file", "", "Adapter types file")
}

func runInit(cmd *cobra.Command, _ []string) error {
	loader, err := config.NewKoanfLoader()
	if err != nil {
		return err
	}

	path := loader.ProjectConfigPath()
	if initGlobal {
		path = loader.GlobalConfigPath()
	}

	cfg := config.DefaultConfig()
	cfg.Source.URL = initURL
	cfg.Source.File = initFile

	if term.IsTerminal(int(os.Stdin.Fd())) {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.NewValidator(catalogue.Default()).Validate(cfg); err != nil {
		return err
	}

	if err := config.Write(path, cfg, initForce); err != nil {
		return err
	}

	log.Info("config written", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

	return nil
}

func promptConfig(cfg *pkgconfig.Config) error {
	color := string(cfg.Report.GetColor())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Management API URL").
				Placeholder("http://localhost:8080").
				Value(&cfg.Source.URL).
				Validate(validateURL),
			huh.NewInput().
				Title("Adapter types file").
				Description("Used instead of the API when set").
				Value(&cfg.Source.File),
			huh.NewInput().
				Title("JSON report path").
				Value(&cfg.Report.Output),
			huh.NewSelect[string]().
				Title("Colour output").
				Options(huh.NewOptions(
					string(pkgconfig.ColorAuto),
					string(pkgconfig.ColorAlways),
					string(pkgconfig.ColorNever),
				)...).
				Value(&color),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("init aborted")
		}

		return errors.Wrap(err, "prompt")
	}

	cfg.Report.Color = pkgconfig.ColorMode(color)

	return nil
}

func validateURL(value string) error {
	if value == "" {
		return nil
	}

	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return errors.New("enter an absolute http(s) URL")
	}

	return nil
}
