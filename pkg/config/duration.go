package config

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Duration is a time.Duration written as a Go duration string ("10s", "1m30s") in TOML.
type Duration time.Duration

// ToDuration converts to time.Duration.
func (d Duration) ToDuration() time.Duration {
	return time.Duration(d)
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}

	*d = Duration(parsed)

	return nil
}
