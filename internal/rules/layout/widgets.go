package layout

import (
	"strings"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

const (
	widgetUpDown   = "updown"
	widgetPassword = "password"
)

// sensitiveMarkers classify a field name as holding a credential.
var sensitiveMarkers = []string{"password", "secret", "apikey", "api_key", "token"}

// PortWidgetRule flags port fields without the updown widget (2.2.1). It is advisory.
type PortWidgetRule struct {
	*rule.BaseRule
}

// NewPortWidgetRule creates a PortWidgetRule.
func NewPortWidgetRule(log logger.Logger) *PortWidgetRule {
	return &PortWidgetRule{BaseRule: rule.NewBaseRule("2.2.1", rule.ScopeUI, log)}
}

// Evaluate collects port-named fields whose widget is not updown.
func (r *PortWidgetRule) Evaluate(in *rule.Input) *rule.Result {
	var names []string

	for _, name := range in.Config.FieldNames() {
		if !strings.Contains(strings.ToLower(name), "port") {
			continue
		}

		if widgetOf(in.UI, name) != widgetUpDown {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return rule.Pass()
	}

	return rule.Fail(rule.NewFinding(
		"Port fields without updown widget: "+strings.Join(names, ", "),
		names...,
	))
}

// PasswordWidgetRule requires the password widget on sensitive fields (2.2.2).
type PasswordWidgetRule struct {
	*rule.BaseRule
}

// NewPasswordWidgetRule creates a PasswordWidgetRule.
func NewPasswordWidgetRule(log logger.Logger) *PasswordWidgetRule {
	return &PasswordWidgetRule{BaseRule: rule.NewBaseRule("2.2.2", rule.ScopeUI, log)}
}

// Evaluate reports one finding per sensitive field that does not mask its input.
func (r *PasswordWidgetRule) Evaluate(in *rule.Input) *rule.Result {
	var findings []rule.Finding

	for _, name := range in.Config.FieldNames() {
		if !IsSensitive(name) {
			continue
		}

		widget := widgetOf(in.UI, name)
		if widget == widgetPassword {
			continue
		}

		msg := "Password field without password widget: " + name
		if widget != "" {
			msg += " (widget " + widget + ")"
		}

		findings = append(findings, rule.NewFinding(msg, name))
	}

	return rule.FromFindings(findings)
}

// IsSensitive reports whether a field name contains a credential marker, case-insensitively.
func IsSensitive(name string) bool {
	lower := strings.ToLower(name)

	for _, marker := range sensitiveMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

func widgetOf(ui *schema.UISchema, name string) string {
	f := ui.Field(name)
	if f == nil {
		return ""
	}

	return f.Widget
}
