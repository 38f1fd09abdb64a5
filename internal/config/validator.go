package config

import (
	"net/url"

	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
	pkgconfig "github.com/smykla-labs/adapterqa/pkg/config"
)

// ErrInvalidConfig marks semantic configuration errors.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validator checks the semantic constraints TOML decoding cannot express.
type Validator struct {
	catalogue *catalogue.Catalogue
}

// NewValidator creates a Validator that checks rule ids against cat.
func NewValidator(cat *catalogue.Catalogue) *Validator {
	return &Validator{catalogue: cat}
}

// Validate returns every problem found, joined.
func (v *Validator) Validate(cfg *pkgconfig.Config) error {
	var errs []error

	errs = append(errs, v.validateSource(cfg.GetSource())...)
	errs = append(errs, v.validateReport(cfg.GetReport())...)
	errs = append(errs, v.validateAdapters(cfg.GetAdapters())...)
	errs = append(errs, v.validateRules(cfg.GetRules())...)

	if len(errs) == 0 {
		return nil
	}

	return errors.Mark(errors.Join(errs...), ErrInvalidConfig)
}

func (*Validator) validateSource(s *pkgconfig.SourceConfig) []error {
	var errs []error

	if s.URL != "" {
		u, err := url.Parse(s.URL)

		switch {
		case err != nil:
			errs = append(errs, errors.Wrapf(err, "source.url %q", s.URL))
		case u.Scheme != "http" && u.Scheme != "https":
			errs = append(errs, errors.Newf("source.url %q: scheme must be http or https", s.URL))
		case u.Host == "":
			errs = append(errs, errors.Newf("source.url %q: missing host", s.URL))
		}
	}

	if s.Timeout < 0 {
		errs = append(errs, errors.Newf("source.timeout %s: must not be negative", s.Timeout))
	}

	return errs
}

func (*Validator) validateReport(r *pkgconfig.ReportConfig) []error {
	if r.Color.Valid() {
		return nil
	}

	return []error{errors.Newf("report.color %q: must be auto, always or never", r.Color)}
}

func (*Validator) validateAdapters(a *pkgconfig.AdaptersConfig) []error {
	var errs []error

	for _, pattern := range a.Include {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, errors.Newf("adapters.include %q: invalid glob", pattern))
		}
	}

	if a.Version != "" {
		if _, err := semver.NewConstraint(a.Version); err != nil {
			errs = append(errs, errors.Wrapf(err, "adapters.version %q", a.Version))
		}
	}

	return errs
}

func (v *Validator) validateRules(r *pkgconfig.RulesConfig) []error {
	var errs []error

	for _, id := range r.Disabled {
		if !v.catalogue.Has(id) {
			errs = append(errs, errors.Newf("rules.disabled %q: unknown rule id", id))
		}
	}

	if r.Parallelism < 0 {
		errs = append(errs, errors.Newf("rules.parallelism %d: must not be negative", r.Parallelism))
	}

	return errs
}
