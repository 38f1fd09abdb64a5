package runner

import (
	"github.com/Masterminds/semver/v3"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/adapterqa/pkg/schema"
)

// Filter selects adapters by id glob and version constraint.
type Filter struct {
	include    []string
	constraint *semver.Constraints
}

// NewFilter creates a Filter. Empty include matches every id; empty version matches every version.
func NewFilter(include []string, version string) (*Filter, error) {
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf("invalid adapter pattern %q", pattern)
		}
	}

	f := &Filter{include: include}

	if version != "" {
		c, err := semver.NewConstraint(version)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid version constraint %q", version)
		}

		f.constraint = c
	}

	return f, nil
}

// Match reports whether the adapter passes the filter. With a version constraint set,
// adapters without a parsable version are excluded.
func (f *Filter) Match(a *schema.AdapterType) bool {
	if f == nil {
		return true
	}

	if len(f.include) > 0 && !f.matchID(a.ID) {
		return false
	}

	if f.constraint == nil {
		return true
	}

	v, err := semver.NewVersion(a.Version)
	if err != nil {
		return false
	}

	return f.constraint.Check(v)
}

func (f *Filter) matchID(id string) bool {
	for _, pattern := range f.include {
		if ok, _ := doublestar.Match(pattern, id); ok {
			return true
		}
	}

	return false
}
