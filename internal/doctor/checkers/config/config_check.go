// Package config provides checkers for configuration file validation.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
	"github.com/smykla-labs/adapterqa/internal/config"
	"github.com/smykla-labs/adapterqa/internal/doctor"
)

// GlobalChecker checks the validity of the global configuration.
type GlobalChecker struct {
	loader *config.KoanfLoader
}

// NewGlobalChecker creates a new global config checker.
func NewGlobalChecker(loader *config.KoanfLoader) *GlobalChecker {
	return &GlobalChecker{loader: loader}
}

// Name returns the name of the check.
func (*GlobalChecker) Name() string {
	return "Global config"
}

// Category returns the category of the check.
func (*GlobalChecker) Category() doctor.Category {
	return doctor.CategoryConfig
}

// Check performs the global config validity check.
func (c *GlobalChecker) Check(_ context.Context) doctor.CheckResult {
	if !c.loader.HasGlobalConfig() {
		return doctor.Skip(c.Name(), "Not found (optional)").
			WithDetails(
				"Expected at: "+c.loader.GlobalConfigPath(),
				"Create with: adapterqa init --global",
			)
	}

	return checkFile(c.Name(), c.loader, c.loader.GlobalConfigPath())
}

// ProjectChecker checks the validity of the project configuration.
type ProjectChecker struct {
	loader *config.KoanfLoader
}

// NewProjectChecker creates a new project config checker.
func NewProjectChecker(loader *config.KoanfLoader) *ProjectChecker {
	return &ProjectChecker{loader: loader}
}

// Name returns the name of the check.
func (*ProjectChecker) Name() string {
	return "Project config"
}

// Category returns the category of the check.
func (*ProjectChecker) Category() doctor.Category {
	return doctor.CategoryConfig
}

// Check performs the project config validity check.
func (c *ProjectChecker) Check(_ context.Context) doctor.CheckResult {
	if !c.loader.HasProjectConfig() {
		return doctor.FailWarning(c.Name(), "Not found").
			WithDetails(
				"Expected at: "+c.loader.ProjectConfigPath(),
				"Create with: adapterqa init",
			)
	}

	return checkFile(c.Name(), c.loader, c.loader.ProjectConfigPath())
}

// PermissionsChecker checks that no config file is world-writable.
type PermissionsChecker struct {
	loader *config.KoanfLoader
}

// NewPermissionsChecker creates a new permissions checker.
func NewPermissionsChecker(loader *config.KoanfLoader) *PermissionsChecker {
	return &PermissionsChecker{loader: loader}
}

// Name returns the name of the check.
func (*PermissionsChecker) Name() string {
	return "Config permissions"
}

// Category returns the category of the check.
func (*PermissionsChecker) Category() doctor.Category {
	return doctor.CategoryConfig
}

// Check performs the permissions check.
func (c *PermissionsChecker) Check(_ context.Context) doctor.CheckResult {
	var (
		found    int
		insecure []string
	)

	for _, path := range []string{c.loader.GlobalConfigPath(), c.loader.ProjectConfigPath()} {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		found++

		if info.Mode().Perm()&0o002 != 0 {
			insecure = append(insecure, fmt.Sprintf("%s (mode %s)", path, info.Mode().Perm()))
		}
	}

	if found == 0 {
		return doctor.Skip(c.Name(), "No config files found")
	}

	if len(insecure) > 0 {
		return doctor.FailError(c.Name(), "World-writable config files").
			WithDetails(insecure...).
			WithDetails("Fix with: chmod o-w <config-file>")
	}

	return doctor.Pass(c.Name(), "Files are secured")
}

func checkFile(name string, loader *config.KoanfLoader, path string) doctor.CheckResult {
	cfg, err := loader.LoadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrInvalidTOML):
			return doctor.FailError(name, "Invalid TOML syntax").
				WithDetails("File: "+path, fmt.Sprintf("Error: %v", err))
		case errors.Is(err, config.ErrInvalidPermissions):
			return doctor.FailError(name, "Insecure file permissions").
				WithDetails("File: "+path, "Fix with: chmod o-w "+path)
		default:
			return doctor.FailError(name, fmt.Sprintf("Failed to load: %v", err))
		}
	}

	if err := config.NewValidator(catalogue.Default()).Validate(cfg); err != nil {
		return doctor.FailError(name, "Validation failed").
			WithDetails("File: "+path, fmt.Sprintf("Error: %v", err))
	}

	return doctor.Pass(name, "Loaded and validated")
}
