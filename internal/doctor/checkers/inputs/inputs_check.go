// Package inputs provides checkers for the adapter source and the runner results document.
package inputs

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/adapterqa/internal/doctor"
	"github.com/smykla-labs/adapterqa/internal/results"
	"github.com/smykla-labs/adapterqa/internal/source"
)

// SourceChecker checks that the configured adapter source answers with a valid document.
type SourceChecker struct {
	fetcher source.Fetcher
	origin  string
}

// NewSourceChecker creates a source checker. A nil fetcher means no source is configured;
// origin names the URL or file in messages.
func NewSourceChecker(fetcher source.Fetcher, origin string) *SourceChecker {
	return &SourceChecker{fetcher: fetcher, origin: origin}
}

// Name returns the name of the check.
func (*SourceChecker) Name() string {
	return "Adapter types"
}

// Category returns the category of the check.
func (*SourceChecker) Category() doctor.Category {
	return doctor.CategorySource
}

// Check fetches the adapter types once.
func (c *SourceChecker) Check(ctx context.Context) doctor.CheckResult {
	if c.fetcher == nil {
		return doctor.FailWarning(c.Name(), "No source configured").
			WithDetails("Set [source] url or file, or pass --url/--file to check")
	}

	list, err := c.fetcher.Fetch(ctx)
	if err != nil {
		result := doctor.FailError(c.Name(), "Fetch failed").
			WithDetails("Source: "+c.origin, fmt.Sprintf("Error: %v", err))

		if hints := errors.FlattenHints(err); hints != "" {
			result = result.WithDetails(hints)
		}

		return result
	}

	if len(list.Items) == 0 {
		return doctor.FailWarning(c.Name(), "Source returned no adapter types").
			WithDetails("Source: " + c.origin)
	}

	return doctor.Pass(c.Name(), fmt.Sprintf("%d adapter type(s) from %s", len(list.Items), c.origin))
}

// ResultsChecker checks the browser runner results document.
type ResultsChecker struct {
	reader *results.Reader
	path   string
}

// NewResultsChecker creates a results checker for path.
func NewResultsChecker(reader *results.Reader, path string) *ResultsChecker {
	return &ResultsChecker{reader: reader, path: path}
}

// Name returns the name of the check.
func (*ResultsChecker) Name() string {
	return "Results document"
}

// Category returns the category of the check.
func (*ResultsChecker) Category() doctor.Category {
	return doctor.CategoryResults
}

// Check parses the results document.
func (c *ResultsChecker) Check(_ context.Context) doctor.CheckResult {
	outcomes, err := c.reader.ReadFile(c.path)

	switch {
	case errors.Is(err, results.ErrResultsNotFound):
		return doctor.FailWarning(c.Name(), "Not found (needed by adapterqa report)").
			WithDetails("Expected at: "+c.path, errors.FlattenHints(err))
	case err != nil:
		return doctor.FailError(c.Name(), "Unreadable").
			WithDetails("File: "+c.path, fmt.Sprintf("Error: %v", err))
	}

	return doctor.Pass(c.Name(), fmt.Sprintf("%d executed check(s) in %s", len(outcomes), c.path))
}
