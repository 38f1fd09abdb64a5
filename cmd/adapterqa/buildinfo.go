package main

import (
	"fmt"
	"runtime"
	rtdebug "runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const revisionLength = 12

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), buildSummary())
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(buildSummary())
	rootCmd.AddCommand(versionCmd)
}

// buildSummary renders the release and toolchain details shown by --version and the version command.
func buildSummary() string {
	fields := [][2]string{
		{"commit", commit},
		{"built", date},
		{"rules", fmt.Sprint(catalogue.Default().Len())},
		{"go", runtime.Version()},
		{"os/arch", runtime.GOOS + "/" + runtime.GOARCH},
	}

	if info, ok := rtdebug.ReadBuildInfo(); ok {
		fields = append(fields, [2]string{"module", info.Main.Path})
		fields = append(fields, vcsFields(info.Settings)...)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "adapterqa %s\n", version)

	for _, f := range fields {
		fmt.Fprintf(&b, "  %-10s %s\n", f[0]+":", f[1])
	}

	return b.String()
}

func vcsFields(settings []rtdebug.BuildSetting) [][2]string {
	var out [][2]string

	for _, s := range settings {
		switch {
		case s.Key == "vcs.revision" && s.Value != "" && commit == "unknown":
			out = append(out, [2]string{"vcs.rev", s.Value[:min(revisionLength, len(s.Value))]})
		case s.Key == "vcs.modified" && s.Value == "true":
			out = append(out, [2]string{"modified", "true"})
		}
	}

	return out
}
