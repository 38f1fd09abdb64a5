package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
)

// ErrConfigExists is returned when Write would overwrite a file without force.
var ErrConfigExists = errors.New("config file already exists")

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Write encodes cfg as TOML at path, creating parent directories.
func Write(path string, cfg *pkgconfig.Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(
				errors.Wrapf(ErrConfigExists, "%s", path),
				"Use --force to overwrite",
			)
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode configuration")
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}

	if err := os.WriteFile(path, data, fileMode); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	return nil
}
