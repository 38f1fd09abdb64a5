package field

import (
	"strings"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

// idField is the conventional adapter instance identifier.
const idField = "id"

// RequiredRule checks that every required name exists in properties (1.3.1).
type RequiredRule struct {
	*rule.BaseRule
}

// NewRequiredRule creates a RequiredRule.
func NewRequiredRule(log logger.Logger) *RequiredRule {
	return &RequiredRule{BaseRule: rule.NewBaseRule("1.3.1", rule.ScopeConfig, log)}
}

// Evaluate reports one finding per dangling required name.
func (r *RequiredRule) Evaluate(in *rule.Input) *rule.Result {
	if in.Config == nil {
		return rule.Pass()
	}

	var findings []rule.Finding

	for _, name := range in.Config.Required {
		if _, ok := in.Config.Field(name); ok {
			continue
		}

		findings = append(findings, rule.NewFinding(
			"Required field does not exist: "+name,
			name,
		))
	}

	return rule.FromFindings(findings)
}

// DefaultRule flags optional fields without a default value (1.3.3). It is advisory.
type DefaultRule struct {
	*rule.BaseRule
}

// NewDefaultRule creates a DefaultRule.
func NewDefaultRule(log logger.Logger) *DefaultRule {
	return &DefaultRule{BaseRule: rule.NewBaseRule("1.3.3", rule.ScopeConfig, log)}
}

// Evaluate collects optional fields other than id that declare no default.
func (r *DefaultRule) Evaluate(in *rule.Input) *rule.Result {
	var names []string

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if name == idField || in.Config.IsRequired(name) || f.HasDefault() {
			continue
		}

		names = append(names, name)
	}

	if len(names) == 0 {
		return rule.Pass()
	}

	return rule.Fail(rule.NewFinding(
		"Optional fields without defaults: "+strings.Join(names, ", "),
		names...,
	))
}
