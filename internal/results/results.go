// Package results reads the merged mochawesome document written by the browser test runner
// and turns each executed test into an outcome.
package results

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/smykla-labs/adapterqa/internal/outcome"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

// DefaultPath is where the runner's merge step writes the combined results.
const DefaultPath = "cypress/results/combined.json"

const (
	untitled = "(untitled)"

	statePassed  = "passed"
	stateFailed  = "failed"
	statePending = "pending"
	stateSkipped = "skipped"

	hintRunTests = "Run: npm run cypress:ci && npm run qa:merge"
)

var (
	// ErrResultsNotFound is returned when the results document does not exist.
	ErrResultsNotFound = errors.New("results file not found")

	// ErrResultsMalformed is returned when the results document cannot be parsed.
	ErrResultsMalformed = errors.New("results file malformed")
)

// Document is the merged runner output.
type Document struct {
	Stats   Stats   `json:"stats"`
	Results []Suite `json:"results"`
}

// Stats are the runner's own totals.
type Stats struct {
	Tests    int `json:"tests"`
	Passes   int `json:"passes"`
	Failures int `json:"failures"`
	Pending  int `json:"pending"`
	Skipped  int `json:"skipped"`
}

// Suite is a describe block. Root result entries use the same shape.
type Suite struct {
	Title  string  `json:"title"`
	Tests  []Test  `json:"tests"`
	Suites []Suite `json:"suites"`
}

// Test is one executed (or pending) test record.
type Test struct {
	Title     string     `json:"title"`
	FullTitle string     `json:"fullTitle"`
	State     string     `json:"state"`
	Pass      bool       `json:"pass"`
	Fail      bool       `json:"fail"`
	Pending   bool       `json:"pending"`
	Skipped   bool       `json:"skipped"`
	Err       *TestError `json:"err"`
}

// TestError carries the assertion message of a failed test.
type TestError struct {
	Message string `json:"message"`
}

// executed reports whether the runner actually ran the test.
func (t *Test) executed() bool {
	return !t.Pending && !t.Skipped && t.State != statePending && t.State != stateSkipped
}

func (t *Test) passed() bool {
	if t.Fail || t.State == stateFailed {
		return false
	}

	return t.Pass || t.State == statePassed
}

// Reader converts results documents into outcomes.
type Reader struct {
	logger logger.Logger
}

// NewReader creates a new Reader.
func NewReader(log logger.Logger) *Reader {
	return &Reader{logger: log}
}

// ReadFile loads and parses the results document at path.
func (r *Reader) ReadFile(path string) ([]*outcome.Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithHint(
				errors.Wrapf(ErrResultsNotFound, "%s", path),
				hintRunTests,
			)
		}

		return nil, errors.Wrapf(err, "read results %s", path)
	}

	return r.Parse(data, path)
}

// Parse converts a results document into outcomes in depth-first order. source names the
// document in errors.
func (r *Reader) Parse(data []byte, source string) ([]*outcome.Outcome, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(errors.Mark(err, ErrResultsMalformed), "%s", source),
			"The results file must be the merged mochawesome JSON document",
		)
	}

	if doc.Results == nil {
		return nil, errors.Wrapf(ErrResultsMalformed, "%s: missing results array", source)
	}

	var tests []Test

	for i := range doc.Results {
		collect(&doc.Results[i], &tests)
	}

	outcomes := make([]*outcome.Outcome, 0, len(tests))
	notRun := 0

	for i := range tests {
		t := &tests[i]
		if !t.executed() {
			notRun++
			continue
		}

		outcomes = append(outcomes, toOutcome(t))
	}

	r.checkStats(doc.Stats, outcomes, notRun)

	r.logger.Debug("results parsed",
		"source", source,
		"outcomes", len(outcomes),
		"not_run", notRun,
	)

	return outcomes, nil
}

// collect appends the tests of s and its nested suites, depth-first.
func collect(s *Suite, tests *[]Test) {
	*tests = append(*tests, s.Tests...)

	for i := range s.Suites {
		collect(&s.Suites[i], tests)
	}
}

func toOutcome(t *Test) *outcome.Outcome {
	o := &outcome.Outcome{Passed: t.passed()}

	switch {
	case t.FullTitle != "":
		o.Title = t.FullTitle
		o.RuleID = outcome.ExtractRuleID(t.FullTitle)
	case t.Title != "":
		o.Title = t.Title
	default:
		o.Title = untitled
	}

	if t.Err != nil {
		o.Error = t.Err.Message
	}

	return o
}

// checkStats logs a mismatch between the runner totals and what was collected.
func (r *Reader) checkStats(stats Stats, outcomes []*outcome.Outcome, notRun int) {
	passes := 0

	for _, o := range outcomes {
		if o.Passed {
			passes++
		}
	}

	failures := len(outcomes) - passes
	if stats.Passes == passes && stats.Failures == failures {
		return
	}

	r.logger.Warn("runner stats do not match collected tests",
		"stats_tests", stats.Tests,
		"stats_passes", stats.Passes,
		"stats_failures", stats.Failures,
		"collected_passes", passes,
		"collected_failures", failures,
		"not_run", notRun,
	)
}
