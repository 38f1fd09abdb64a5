// Package outcome defines the record of one executed check, shared by the rule evaluator,
// the results reader, and the report aggregator.
package outcome

import (
	"regexp"
	"strings"
)

// Unattributed is the display identifier of an outcome without a rule id.
const Unattributed = "N/A"

// titleSeparator joins suite and test names in a runner's full title.
const titleSeparator = " > "

var ruleIDToken = regexp.MustCompile(`\[(\d+\.\d+\.\d+)\]`)

// Outcome is the result of executing one rule against one schema pair.
type Outcome struct {
	// RuleID is the catalogue identifier, empty when unattributed.
	RuleID string

	// Title is the human-readable check title.
	Title string

	// Subject names what was checked, typically an adapter id. Empty for runner outcomes.
	Subject string

	Passed bool

	// Error holds the raw failure text.
	Error string

	// Notes carries advisory findings that never fail the check.
	Notes []string
}

// DisplayID returns the rule id or Unattributed.
func (o *Outcome) DisplayID() string {
	if o.RuleID == "" {
		return Unattributed
	}

	return o.RuleID
}

// ShortTitle returns the test name without its suite path and rule id token.
func (o *Outcome) ShortTitle() string {
	title := o.Title
	if idx := strings.LastIndex(title, titleSeparator); idx >= 0 {
		title = title[idx+len(titleSeparator):]
	}

	loc := ruleIDToken.FindStringIndex(title)
	if loc == nil {
		return title
	}

	if rest := strings.TrimSpace(title[loc[1]:]); rest != "" {
		return rest
	}

	return title
}

// ExtractRuleID returns the first bracketed dotted triplet in title, or "".
func ExtractRuleID(title string) string {
	m := ruleIDToken.FindStringSubmatch(title)
	if m == nil {
		return ""
	}

	return m[1]
}
