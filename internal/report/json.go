package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// DefaultJSONPath is the report location relative to the working directory.
const DefaultJSONPath = "qa-report.json"

// Marshal renders r with two-space indentation and a trailing newline.
func Marshal(r *Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal report")
	}

	return append(data, '\n'), nil
}

// EncodeJSON writes the JSON report to w.
func EncodeJSON(w io.Writer, r *Report) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return errors.Wrap(err, "write report")
}

// WriteJSONFile writes the JSON report to path through a temporary file in the same
// directory, so readers never observe a partial report.
func WriteJSONFile(path string, r *Report) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create report directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".qa-report-*.json")
	if err != nil {
		return errors.Wrapf(err, "create temp report in %s", dir)
	}

	tmpName := tmp.Name()

	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "write %s", tmpName)
	}

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "chmod %s", tmpName)
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "rename report to %s", path)
	}

	return nil
}
