package layout

import (
	"strings"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

// IDDisabledRule rejects a hard-coded ui:disabled on the id field (2.3.1).
type IDDisabledRule struct {
	*rule.BaseRule
}

// NewIDDisabledRule creates an IDDisabledRule.
func NewIDDisabledRule(log logger.Logger) *IDDisabledRule {
	return &IDDisabledRule{BaseRule: rule.NewBaseRule("2.3.1", rule.ScopeUI, log)}
}

// Evaluate fails when the id UI entry sets ui:disabled to true.
func (r *IDDisabledRule) Evaluate(in *rule.Input) *rule.Result {
	if !in.UI.Field(idField).IsDisabled() {
		return rule.Pass()
	}

	return rule.Fail(rule.NewFinding(
		"Field 'id' has hardcoded ui:disabled. "+
			"This should be dynamic (disabled in edit mode, enabled in create mode).",
		idField,
	))
}

// CollapsibleTitleRule flags collapsible arrays without titleKey (2.4.3). It is advisory.
type CollapsibleTitleRule struct {
	*rule.BaseRule
}

// NewCollapsibleTitleRule creates a CollapsibleTitleRule.
func NewCollapsibleTitleRule(log logger.Logger) *CollapsibleTitleRule {
	return &CollapsibleTitleRule{BaseRule: rule.NewBaseRule("2.4.3", rule.ScopeUI, log)}
}

// Evaluate collects collapsible array fields whose UI entry has no titleKey.
func (r *CollapsibleTitleRule) Evaluate(in *rule.Input) *rule.Result {
	var names []string

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if f.Type != schema.TypeArray {
			continue
		}

		ui := in.UI.Field(name)
		if ui.IsCollapsible() && ui.TitleKey == "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return rule.Pass()
	}

	return rule.Fail(rule.NewFinding(
		"Collapsible arrays without titleKey: "+strings.Join(names, ", "),
		names...,
	))
}
