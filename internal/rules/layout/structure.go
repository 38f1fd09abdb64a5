package layout

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

const (
	idField = "id"

	// minTabTitleLength is the shortest tab title considered descriptive.
	minTabTitleLength = 3
)

// genericTabTitles are compared case-insensitively.
var genericTabTitles = []string{"tab 1", "tab 2", "tab 3", "tab", "section", "other"}

// PresenceRule notes adapters shipping no UI Schema (2.1.1). It is advisory and
// runs whether or not a UI Schema exists.
type PresenceRule struct {
	*rule.BaseRule
}

// NewPresenceRule creates a PresenceRule.
func NewPresenceRule(log logger.Logger) *PresenceRule {
	return &PresenceRule{BaseRule: rule.NewBaseRule("2.1.1", rule.ScopeConfig, log)}
}

// Evaluate fails when the input carries no UI Schema.
func (r *PresenceRule) Evaluate(in *rule.Input) *rule.Result {
	if in.UI != nil {
		return rule.Pass()
	}

	return rule.Fail(rule.NewFinding("No UI Schema defined - form will use default layout"))
}

// TabStructureRule checks that each tab has an id, a title, and members (2.1.2).
type TabStructureRule struct {
	*rule.BaseRule
}

// NewTabStructureRule creates a TabStructureRule.
func NewTabStructureRule(log logger.Logger) *TabStructureRule {
	return &TabStructureRule{BaseRule: rule.NewBaseRule("2.1.2", rule.ScopeUI, log)}
}

// Evaluate passes when ui:tabs is absent.
func (r *TabStructureRule) Evaluate(in *rule.Input) *rule.Result {
	if !in.UI.HasTabs() {
		r.Logger().Debug("no ui:tabs defined, single form layout")
		return rule.Pass()
	}

	if len(in.UI.Tabs) == 0 {
		return rule.Fail(rule.NewFinding("ui:tabs is empty, should have at least one tab"))
	}

	var findings []rule.Finding

	for i, tab := range in.UI.Tabs {
		var missing []string

		if strings.TrimSpace(tab.ID) == "" {
			missing = append(missing, "id")
		}

		if strings.TrimSpace(tab.Title) == "" {
			missing = append(missing, "title")
		}

		if len(tab.Properties) == 0 {
			missing = append(missing, "properties")
		}

		if len(missing) > 0 {
			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("Tab %d is missing %s", i, strings.Join(missing, ", ")),
				tab.Properties...,
			))
		}
	}

	return rule.FromFindings(findings)
}

// OrderRule checks the position of id and the wildcard in ui:order (2.1.3).
type OrderRule struct {
	*rule.BaseRule
}

// NewOrderRule creates an OrderRule.
func NewOrderRule(log logger.Logger) *OrderRule {
	return &OrderRule{BaseRule: rule.NewBaseRule("2.1.3", rule.ScopeUI, log)}
}

// Evaluate requires id first and "*" last when present.
func (r *OrderRule) Evaluate(in *rule.Input) *rule.Result {
	if !in.UI.HasOrder() {
		r.Logger().Debug("no ui:order defined, fields appear in schema order")
		return rule.Pass()
	}

	order := in.UI.Order

	var findings []rule.Finding

	if idx := slices.Index(order, idField); idx > 0 {
		findings = append(findings, rule.NewFinding(
			fmt.Sprintf("'id' field should be first in ui:order, found at position %d", idx),
			idField,
		))
	}

	if idx := slices.Index(order, schema.OrderWildcard); idx >= 0 && idx != len(order)-1 {
		findings = append(findings, rule.NewFinding(
			fmt.Sprintf("'*' wildcard should be last in ui:order, found at position %d of %d", idx, len(order)),
		))
	}

	return rule.FromFindings(findings)
}

// TabTitleRule rejects generic or very short tab titles (2.1.4).
type TabTitleRule struct {
	*rule.BaseRule
}

// NewTabTitleRule creates a TabTitleRule.
func NewTabTitleRule(log logger.Logger) *TabTitleRule {
	return &TabTitleRule{BaseRule: rule.NewBaseRule("2.1.4", rule.ScopeUI, log)}
}

// Evaluate reports each tab whose title is generic or shorter than three characters.
func (r *TabTitleRule) Evaluate(in *rule.Input) *rule.Result {
	if !in.UI.HasTabs() {
		return rule.Pass()
	}

	var findings []rule.Finding

	for _, tab := range in.UI.Tabs {
		if IsGenericTabTitle(tab.Title) {
			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("Generic tab name: %q", tab.Title),
				tab.Properties...,
			))
		}

		if utf8.RuneCountInString(tab.Title) < minTabTitleLength {
			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("%q (too short)", tab.Title),
				tab.Properties...,
			))
		}
	}

	return rule.FromFindings(findings)
}

// IsGenericTabTitle reports whether title is in the generic-name denylist.
func IsGenericTabTitle(title string) bool {
	return slices.Contains(genericTabTitles, strings.ToLower(title))
}

// TabMembersRule checks that tab members are schema properties (2.1.5).
type TabMembersRule struct {
	*rule.BaseRule
}

// NewTabMembersRule creates a TabMembersRule.
func NewTabMembersRule(log logger.Logger) *TabMembersRule {
	return &TabMembersRule{BaseRule: rule.NewBaseRule("2.1.5", rule.ScopeUI, log)}
}

// Evaluate reports one finding per unknown tab member.
func (r *TabMembersRule) Evaluate(in *rule.Input) *rule.Result {
	if !in.UI.HasTabs() {
		return rule.Pass()
	}

	var findings []rule.Finding

	for _, tab := range in.UI.Tabs {
		for _, member := range tab.Properties {
			if _, ok := in.Config.Field(member); ok {
				continue
			}

			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("Tab property not in schema: %s/%s", tab.Title, member),
				member,
			))
		}
	}

	return rule.FromFindings(findings)
}
