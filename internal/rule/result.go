package rule

import (
	"strings"
)

// Finding is one violation reported by a rule.
type Finding struct {
	// Fields names the schema fields involved.
	Fields []string

	// Message describes the violation.
	Message string
}

// NewFinding creates a Finding for the given fields.
func NewFinding(message string, fields ...string) Finding {
	return Finding{Fields: fields, Message: message}
}

// Result is the outcome of evaluating a single rule.
type Result struct {
	// Passed is true when the rule found nothing.
	Passed bool

	// Skipped is true when the rule did not apply. Skipped results produce no outcome.
	Skipped bool

	// Reason explains a skip.
	Reason string

	// Findings lists every violation, never truncated at the first.
	Findings []Finding
}

// Pass creates a passing result.
func Pass() *Result {
	return &Result{Passed: true}
}

// Fail creates a failing result with the given findings.
func Fail(findings ...Finding) *Result {
	return &Result{Findings: findings}
}

// Skip creates a result for a rule that does not apply.
func Skip(reason string) *Result {
	return &Result{Skipped: true, Reason: reason}
}

// FromFindings passes when findings is empty and fails otherwise.
func FromFindings(findings []Finding) *Result {
	if len(findings) == 0 {
		return Pass()
	}

	return Fail(findings...)
}

// Message joins the finding messages, one per line.
func (r *Result) Message() string {
	if r == nil || len(r.Findings) == 0 {
		return ""
	}

	lines := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		lines = append(lines, f.Message)
	}

	return strings.Join(lines, "\n")
}

// Fields returns every field named by the findings, in order, without duplicates.
func (r *Result) Fields() []string {
	if r == nil {
		return nil
	}

	seen := make(map[string]bool)

	var out []string

	for _, f := range r.Findings {
		for _, name := range f.Fields {
			if seen[name] {
				continue
			}

			seen[name] = true
			out = append(out, name)
		}
	}

	return out
}
