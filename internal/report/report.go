// Package report aggregates outcomes into a severity-ranked QA report.
package report

import (
	"slices"
	"time"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
	"github.com/smykla-labs/adapterqa/internal/outcome"
)

const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Lookup resolves rule metadata by id.
type Lookup func(id string) (catalogue.Metadata, bool)

// Summary holds the report totals. Severity counters cover failed outcomes with metadata only.
type Summary struct {
	Total    int `json:"total"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// BySeverity returns the failure counter for a severity.
func (s *Summary) BySeverity(sev catalogue.Severity) int {
	switch sev {
	case catalogue.SeverityCritical:
		return s.Critical
	case catalogue.SeverityHigh:
		return s.High
	case catalogue.SeverityMedium:
		return s.Medium
	case catalogue.SeverityLow:
		return s.Low
	default:
		return 0
	}
}

func (s *Summary) count(sev catalogue.Severity) {
	switch sev {
	case catalogue.SeverityCritical:
		s.Critical++
	case catalogue.SeverityHigh:
		s.High++
	case catalogue.SeverityMedium:
		s.Medium++
	case catalogue.SeverityLow:
		s.Low++
	}
}

// Item is one outcome enriched with rule metadata.
type Item struct {
	RuleID       string             `json:"ruleId"`
	Title        string             `json:"title"`
	Subject      string             `json:"subject,omitempty"`
	Status       string             `json:"status"`
	Severity     catalogue.Severity `json:"severity,omitempty"`
	Rationale    string             `json:"rationale,omitempty"`
	SuggestedFix string             `json:"suggestedFix,omitempty"`
	ChecklistRef string             `json:"checklistRef,omitempty"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
	Notes        []string           `json:"notes,omitempty"`
}

// Failed reports whether the item is a failure.
func (i *Item) Failed() bool {
	return i.Status == StatusFailed
}

// Report is the aggregated result of one run. It is never mutated after Build.
type Report struct {
	Generated time.Time `json:"generated"`
	Summary   Summary   `json:"summary"`
	Failed    []Item    `json:"failed"`
	Passed    []Item    `json:"passed"`
}

// Build aggregates outcomes. Failed items are stably sorted by severity, unclassified last;
// passed items keep input order.
func Build(outcomes []*outcome.Outcome, lookup Lookup, generated time.Time) *Report {
	r := &Report{
		Generated: generated.UTC(),
		Failed:    make([]Item, 0),
		Passed:    make([]Item, 0),
	}

	for _, o := range outcomes {
		item := newItem(o, lookup)

		r.Summary.Total++

		if o.Passed {
			r.Summary.Passed++
			r.Passed = append(r.Passed, item)

			continue
		}

		r.Summary.Failed++
		r.Summary.count(item.Severity)
		r.Failed = append(r.Failed, item)
	}

	slices.SortStableFunc(r.Failed, func(a, b Item) int {
		return a.Severity.Rank() - b.Severity.Rank()
	})

	return r
}

func newItem(o *outcome.Outcome, lookup Lookup) Item {
	item := Item{
		RuleID:       o.DisplayID(),
		Title:        o.Title,
		Subject:      o.Subject,
		Status:       StatusFailed,
		ErrorMessage: o.Error,
		Notes:        o.Notes,
	}

	if o.Passed {
		item.Status = StatusPassed
	}

	if o.RuleID == "" || lookup == nil {
		return item
	}

	meta, ok := lookup(o.RuleID)
	if !ok {
		return item
	}

	item.Severity = meta.Severity
	item.Rationale = meta.Rationale
	item.SuggestedFix = meta.SuggestedFix
	item.ChecklistRef = meta.ChecklistRef

	if item.Title == "" {
		item.Title = meta.Title
	}

	return item
}

// Noted returns the items carrying advisory notes, in report order.
func (r *Report) Noted() []Item {
	var out []Item

	for _, list := range [][]Item{r.Failed, r.Passed} {
		for _, item := range list {
			if len(item.Notes) > 0 {
				out = append(out, item)
			}
		}
	}

	return out
}
