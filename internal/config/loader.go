package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
)

const (
	// ConfigDir is the directory holding config.toml, under $HOME or the project root.
	ConfigDir = ".adapterqa"

	// ConfigFile is the config file name.
	ConfigFile = "config.toml"

	// EnvPrefix prefixes environment overrides, e.g. ADAPTERQA_SOURCE_URL.
	EnvPrefix = "ADAPTERQA_"

	worldWritable = 0o002
)

var (
	// ErrInvalidTOML is returned when a config file cannot be parsed.
	ErrInvalidTOML = errors.New("invalid TOML")

	// ErrInvalidPermissions is returned for world-writable config files.
	ErrInvalidPermissions = errors.New("config file is world-writable")
)

// KoanfLoader merges defaults, config files, environment, and flags, lowest precedence first.
type KoanfLoader struct {
	homeDir string
	workDir string
	environ func() []string
}

// NewKoanfLoader creates a loader rooted at the user's home and the current directory.
func NewKoanfLoader() (*KoanfLoader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "resolve home directory")
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "resolve working directory")
	}

	return NewKoanfLoaderWithDirs(home, wd), nil
}

// NewKoanfLoaderWithDirs creates a loader with explicit home and project directories.
func NewKoanfLoaderWithDirs(homeDir, workDir string) *KoanfLoader {
	return &KoanfLoader{
		homeDir: homeDir,
		workDir: workDir,
		environ: os.Environ,
	}
}

// WithEnviron replaces the environment source.
func (l *KoanfLoader) WithEnviron(environ func() []string) *KoanfLoader {
	l.environ = environ

	return l
}

// GlobalConfigPath returns ~/.adapterqa/config.toml.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, ConfigDir, ConfigFile)
}

// ProjectConfigPath returns .adapterqa/config.toml under the project directory.
func (l *KoanfLoader) ProjectConfigPath() string {
	return filepath.Join(l.workDir, ConfigDir, ConfigFile)
}

// HasGlobalConfig reports whether the global config file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

// HasProjectConfig reports whether the project config file exists.
func (l *KoanfLoader) HasProjectConfig() bool {
	return fileExists(l.ProjectConfigPath())
}

// Load builds the effective configuration. flags holds only the flags the user set,
// keyed by koanf path such as "source.url".
func (l *KoanfLoader) Load(flags map[string]any) (*pkgconfig.Config, error) {
	k, err := newWithDefaults()
	if err != nil {
		return nil, err
	}

	for _, path := range []string{l.GlobalConfigPath(), l.ProjectConfigPath()} {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
		EnvironFunc:   l.environ,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "load flags")
		}
	}

	return decode(k)
}

// LoadFile builds a configuration from the defaults and a single file, ignoring
// every other layer.
func (l *KoanfLoader) LoadFile(path string) (*pkgconfig.Config, error) {
	k, err := newWithDefaults()
	if err != nil {
		return nil, err
	}

	if err := loadFile(k, path); err != nil {
		return nil, err
	}

	return decode(k)
}

func newWithDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	return k, nil
}

func decode(k *koanf.Koanf) (*pkgconfig.Config, error) {
	cfg := &pkgconfig.Config{}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "toml",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}

	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}

// loadFile merges a TOML file if it exists.
func loadFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return errors.Wrapf(err, "stat %s", path)
	}

	if info.Mode().Perm()&worldWritable != 0 {
		return errors.WithHintf(
			errors.Wrapf(ErrInvalidPermissions, "%s (mode %s)", path, info.Mode().Perm()),
			"Run: chmod o-w %s", path,
		)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Mark(errors.Wrapf(err, "load %s", path), ErrInvalidTOML)
	}

	return nil
}

// envKey maps ADAPTERQA_REPORT_METRICS_FILE to report.metrics_file.
// Variables without a section are ignored.
func envKey(key, value string) (string, any) {
	name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	section, field, ok := strings.Cut(name, "_")
	if !ok || section == "" || field == "" {
		return "", nil
	}

	return section + "." + field, value
}
