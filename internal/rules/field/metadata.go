package field

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

// camelCasePattern matches a lowercase letter directly followed by an uppercase one.
var camelCasePattern = regexp.MustCompile(`[a-z][A-Z]`)

// TitleRule checks that every field has a title (1.1.1).
type TitleRule struct {
	*rule.BaseRule
}

// NewTitleRule creates a TitleRule.
func NewTitleRule(log logger.Logger) *TitleRule {
	return &TitleRule{BaseRule: rule.NewBaseRule("1.1.1", rule.ScopeConfig, log)}
}

// Evaluate collects every field without a title into one finding.
func (r *TitleRule) Evaluate(in *rule.Input) *rule.Result {
	var missing []string

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if strings.TrimSpace(f.Title) == "" {
			missing = append(missing, name)
		}
	}

	return collected("Fields without title", missing)
}

// DescriptionRule checks that every field has a description (1.1.2).
type DescriptionRule struct {
	*rule.BaseRule
}

// NewDescriptionRule creates a DescriptionRule.
func NewDescriptionRule(log logger.Logger) *DescriptionRule {
	return &DescriptionRule{BaseRule: rule.NewBaseRule("1.1.2", rule.ScopeConfig, log)}
}

// Evaluate collects every field without a description into one finding.
func (r *DescriptionRule) Evaluate(in *rule.Input) *rule.Result {
	var missing []string

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if strings.TrimSpace(f.Description) == "" {
			missing = append(missing, name)
		}
	}

	return collected("Fields without description", missing)
}

// TitleCaseRule rejects titles that look like identifiers (1.1.3).
type TitleCaseRule struct {
	*rule.BaseRule
}

// NewTitleCaseRule creates a TitleCaseRule.
func NewTitleCaseRule(log logger.Logger) *TitleCaseRule {
	return &TitleCaseRule{BaseRule: rule.NewBaseRule("1.1.3", rule.ScopeConfig, log)}
}

// Evaluate reports each field whose title contains a lowercase-uppercase pair.
func (r *TitleCaseRule) Evaluate(in *rule.Input) *rule.Result {
	var findings []rule.Finding

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if f.Title != "" && camelCasePattern.MatchString(f.Title) {
			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("Title in camelCase: %s: %q", name, f.Title),
				name,
			))
		}
	}

	return rule.FromFindings(findings)
}

// QuestionRule rejects descriptions phrased as questions (1.1.5).
type QuestionRule struct {
	*rule.BaseRule
}

// NewQuestionRule creates a QuestionRule.
func NewQuestionRule(log logger.Logger) *QuestionRule {
	return &QuestionRule{BaseRule: rule.NewBaseRule("1.1.5", rule.ScopeConfig, log)}
}

// Evaluate reports each field whose trimmed description ends with '?'.
func (r *QuestionRule) Evaluate(in *rule.Input) *rule.Result {
	var findings []rule.Finding

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if strings.HasSuffix(strings.TrimSpace(f.Description), "?") {
			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("Description ending with '?': %s: %q", name, f.Description),
				name,
			))
		}
	}

	return rule.FromFindings(findings)
}

// collected folds names into a single finding, or passes when there are none.
func collected(label string, names []string) *rule.Result {
	if len(names) == 0 {
		return rule.Pass()
	}

	return rule.Fail(rule.NewFinding(
		fmt.Sprintf("%s: %s", label, strings.Join(names, ", ")),
		names...,
	))
}
