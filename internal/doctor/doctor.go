// Package doctor runs environment health checks for adapterqa.
package doctor

import "context"

// Status is the outcome of a single check.
type Status int

const (
	StatusPass Status = iota
	StatusFail
	StatusSkipped
)

// Severity grades a failed check.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// Category groups checks in the report.
type Category string

const (
	CategoryConfig  Category = "Config"
	CategorySource  Category = "Adapter source"
	CategoryResults Category = "Runner results"
)

// CheckResult is the result of one check.
type CheckResult struct {
	Name     string
	Category Category
	Status   Status
	Severity Severity
	Message  string
	Details  []string
}

// Pass creates a passing result.
func Pass(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusPass, Message: message}
}

// FailError creates a failing result that makes the run unhealthy.
func FailError(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusFail, Severity: SeverityError, Message: message}
}

// FailWarning creates a failing result that only warns.
func FailWarning(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusFail, Severity: SeverityWarning, Message: message}
}

// Skip creates a skipped result.
func Skip(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusSkipped, Message: message}
}

// WithDetails appends detail lines shown in verbose mode.
func (r CheckResult) WithDetails(details ...string) CheckResult {
	r.Details = append(r.Details, details...)

	return r
}

// IsPassed reports whether the check passed.
func (r CheckResult) IsPassed() bool {
	return r.Status == StatusPass
}

// IsError reports whether the check failed with error severity.
func (r CheckResult) IsError() bool {
	return r.Status == StatusFail && r.Severity == SeverityError
}

// IsWarning reports whether the check failed with warning severity.
func (r CheckResult) IsWarning() bool {
	return r.Status == StatusFail && r.Severity == SeverityWarning
}

// Checker performs one health check.
type Checker interface {
	Name() string
	Category() Category
	Check(ctx context.Context) CheckResult
}

// Run executes checkers in order and stamps each result with its checker's category.
func Run(ctx context.Context, checkers ...Checker) []CheckResult {
	results := make([]CheckResult, 0, len(checkers))

	for _, c := range checkers {
		result := c.Check(ctx)
		result.Category = c.Category()
		results = append(results, result)
	}

	return results
}

// CountErrors returns the number of error-severity failures.
func CountErrors(results []CheckResult) int {
	n := 0

	for _, r := range results {
		if r.IsError() {
			n++
		}
	}

	return n
}
