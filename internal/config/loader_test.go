package config_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/adapterqa/internal/config"
	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
)

const (
	globalTOML = `[source]
url = "http://global:8080"
timeout = "15s"

[rules]
disabled = ["1.3.3"]
`

	projectTOML = `[source]
url = "http://project:8080"

[adapters]
include = ["opc*"]
`
)

func writeFile(path, content string) {
	GinkgoHelper()

	Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
}

var _ = Describe("KoanfLoader", func() {
	var (
		homeDir    string
		projectDir string
		environ    []string
		loader     *config.KoanfLoader
	)

	BeforeEach(func() {
		tmp := GinkgoT().TempDir()
		homeDir = filepath.Join(tmp, "home")
		projectDir = filepath.Join(tmp, "project")
		environ = nil

		loader = config.NewKoanfLoaderWithDirs(homeDir, projectDir).
			WithEnviron(func() []string { return environ })
	})

	It("should resolve config paths", func() {
		Expect(loader.GlobalConfigPath()).To(Equal(filepath.Join(homeDir, ".adapterqa", "config.toml")))
		Expect(loader.ProjectConfigPath()).To(Equal(filepath.Join(projectDir, ".adapterqa", "config.toml")))
	})

	It("should return defaults when nothing is set", func() {
		cfg, err := loader.Load(nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.GetSource().URL).To(BeEmpty())
		Expect(cfg.GetSource().GetTimeout()).To(Equal(10 * time.Second))
		Expect(cfg.GetReport().GetOutput()).To(Equal("qa-report.json"))
		Expect(cfg.GetReport().GetResults()).To(Equal("cypress/results/combined.json"))
		Expect(cfg.GetReport().GetColor()).To(Equal(pkgconfig.ColorAuto))
		Expect(cfg.GetRules().GetParallelism()).To(Equal(4))
		Expect(cfg.GetRules().Disabled).To(BeEmpty())
	})

	DescribeTable("source precedence",
		func(global, project, env, flags bool, expected string) {
			if global {
				writeFile(loader.GlobalConfigPath(), globalTOML)
			}

			if project {
				writeFile(loader.ProjectConfigPath(), projectTOML)
			}

			if env {
				environ = []string{"ADAPTERQA_SOURCE_URL=http://env:8080"}
			}

			var flagValues map[string]any
			if flags {
				flagValues = map[string]any{"source.url": "http://flag:8080"}
			}

			cfg, err := loader.Load(flagValues)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.GetSource().URL).To(Equal(expected))
		},
		Entry("defaults_only", false, false, false, false, ""),
		Entry("global_only", true, false, false, false, "http://global:8080"),
		Entry("project_only", false, true, false, false, "http://project:8080"),
		Entry("env_only", false, false, true, false, "http://env:8080"),
		Entry("flags_only", false, false, false, true, "http://flag:8080"),
		Entry("global+project", true, true, false, false, "http://project:8080"),
		Entry("global+env", true, false, true, false, "http://env:8080"),
		Entry("project+flags", false, true, false, true, "http://flag:8080"),
		Entry("all_sources", true, true, true, true, "http://flag:8080"),
	)

	It("should merge keys from different layers", func() {
		writeFile(loader.GlobalConfigPath(), globalTOML)
		writeFile(loader.ProjectConfigPath(), projectTOML)

		cfg, err := loader.Load(nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.GetSource().GetTimeout()).To(Equal(15 * time.Second))
		Expect(cfg.GetRules().Disabled).To(Equal([]string{"1.3.3"}))
		Expect(cfg.GetAdapters().Include).To(Equal([]string{"opc*"}))
	})

	It("should decode typed values from the environment", func() {
		environ = []string{
			"ADAPTERQA_RULES_PARALLELISM=8",
			"ADAPTERQA_RULES_DISABLED=1.3.3,2.2.1",
			"ADAPTERQA_REPORT_METRICS_FILE=/tmp/adapterqa.prom",
			"ADAPTERQA_SOURCE_TIMEOUT=1m",
			"ADAPTERQA_UNSECTIONED=ignored",
			"OTHER_SOURCE_URL=http://ignored",
		}

		cfg, err := loader.Load(nil)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.GetRules().Parallelism).To(Equal(8))
		Expect(cfg.GetRules().Disabled).To(Equal([]string{"1.3.3", "2.2.1"}))
		Expect(cfg.GetReport().MetricsFile).To(Equal("/tmp/adapterqa.prom"))
		Expect(cfg.GetSource().GetTimeout()).To(Equal(time.Minute))
		Expect(cfg.GetSource().URL).To(BeEmpty())
	})

	It("should reject invalid TOML", func() {
		writeFile(loader.ProjectConfigPath(), "[source\nurl = ")

		_, err := loader.Load(nil)
		Expect(errors.Is(err, config.ErrInvalidTOML)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(loader.ProjectConfigPath()))
	})

	It("should reject world-writable files", func() {
		writeFile(loader.GlobalConfigPath(), globalTOML)
		Expect(os.Chmod(loader.GlobalConfigPath(), 0o666)).To(Succeed())

		_, err := loader.Load(nil)
		Expect(errors.Is(err, config.ErrInvalidPermissions)).To(BeTrue())
		Expect(errors.FlattenHints(err)).To(ContainSubstring("chmod o-w"))
	})

	It("should reject malformed durations", func() {
		environ = []string{"ADAPTERQA_SOURCE_TIMEOUT=soon"}

		_, err := loader.Load(nil)
		Expect(err).To(MatchError(ContainSubstring("decode configuration")))
	})
})
