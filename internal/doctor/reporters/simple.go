// Package reporters provides output formatting for doctor check results.
package reporters

import (
	"fmt"
	"io"

	"github.com/smykla-labs/adapterqa/internal/doctor"
)

// SimpleReporter provides simple checklist-style output.
type SimpleReporter struct {
	w io.Writer
}

// NewSimpleReporter creates a new SimpleReporter writing to w.
func NewSimpleReporter(w io.Writer) *SimpleReporter {
	return &SimpleReporter{w: w}
}

// Report outputs the results grouped by category, in first-seen category order.
func (r *SimpleReporter) Report(results []doctor.CheckResult, verbose bool) {
	fmt.Fprintln(r.w, "Checking adapterqa health...")
	fmt.Fprintln(r.w)

	order, groups := groupByCategory(results)

	for _, category := range order {
		fmt.Fprintf(r.w, "%s:\n", category)

		for _, result := range groups[category] {
			r.printResult(result, verbose)
		}

		fmt.Fprintln(r.w)
	}

	errorCount, warningCount, passedCount := countResults(results)

	fmt.Fprintf(r.w, "Summary: %d error(s), %d warning(s), %d passed\n",
		errorCount, warningCount, passedCount)
}

func groupByCategory(results []doctor.CheckResult) ([]doctor.Category, map[doctor.Category][]doctor.CheckResult) {
	var order []doctor.Category

	groups := make(map[doctor.Category][]doctor.CheckResult)

	for _, result := range results {
		if _, ok := groups[result.Category]; !ok {
			order = append(order, result.Category)
		}

		groups[result.Category] = append(groups[result.Category], result)
	}

	return order, groups
}

func (r *SimpleReporter) printResult(result doctor.CheckResult, verbose bool) {
	fmt.Fprintf(r.w, "  %s %s", statusIcon(result), result.Name)

	if result.Message != "" {
		fmt.Fprintf(r.w, " - %s", result.Message)
	}

	fmt.Fprintln(r.w)

	// failures always show details
	if verbose || result.Status == doctor.StatusFail {
		for _, detail := range result.Details {
			fmt.Fprintf(r.w, "     %s\n", detail)
		}
	}
}

func statusIcon(result doctor.CheckResult) string {
	switch result.Status {
	case doctor.StatusPass:
		return "✅"
	case doctor.StatusFail:
		switch result.Severity {
		case doctor.SeverityError:
			return "❌"
		case doctor.SeverityWarning:
			return "⚠️"
		default:
			return "ℹ️"
		}
	case doctor.StatusSkipped:
		return "⊘"
	default:
		return "?"
	}
}

func countResults(results []doctor.CheckResult) (errors, warnings, passed int) {
	for _, result := range results {
		switch {
		case result.IsPassed():
			passed++
		case result.IsError():
			errors++
		case result.IsWarning():
			warnings++
		}
	}

	return errors, warnings, passed
}
