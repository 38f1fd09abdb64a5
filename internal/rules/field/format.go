package field

import (
	"fmt"
	"strings"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

const (
	formatIdentifier = "identifier"
	mqttFormatMarker = "mqtt"
)

// EnumRule checks that enum and enumNames line up (1.4.1).
type EnumRule struct {
	*rule.BaseRule
}

// NewEnumRule creates an EnumRule.
func NewEnumRule(log logger.Logger) *EnumRule {
	return &EnumRule{BaseRule: rule.NewBaseRule("1.4.1", rule.ScopeConfig, log)}
}

// Evaluate reports fields declaring both lists with different lengths.
func (r *EnumRule) Evaluate(in *rule.Input) *rule.Result {
	var findings []rule.Finding

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if f.Enum == nil || f.EnumNames == nil || len(f.Enum) == len(f.EnumNames) {
			continue
		}

		findings = append(findings, rule.NewFinding(
			fmt.Sprintf("%s: %d values vs %d display names", name, len(f.Enum), len(f.EnumNames)),
			name,
		))
	}

	return rule.FromFindings(findings)
}

// IdentifierFormatRule requires the id field to use the identifier format (1.5.3).
type IdentifierFormatRule struct {
	*rule.BaseRule
}

// NewIdentifierFormatRule creates an IdentifierFormatRule.
func NewIdentifierFormatRule(log logger.Logger) *IdentifierFormatRule {
	return &IdentifierFormatRule{BaseRule: rule.NewBaseRule("1.5.3", rule.ScopeConfig, log)}
}

// Evaluate passes when there is no id field.
func (r *IdentifierFormatRule) Evaluate(in *rule.Input) *rule.Result {
	f, ok := in.Config.Field(idField)
	if !ok || f.Format == formatIdentifier {
		return rule.Pass()
	}

	return rule.Fail(rule.NewFinding(
		fmt.Sprintf("Field 'id' should have format %q, got %q", formatIdentifier, f.Format),
		idField,
	))
}

// TopicFormatRule flags topic-like string fields without an MQTT format (1.5.4). It is advisory.
type TopicFormatRule struct {
	*rule.BaseRule
}

// NewTopicFormatRule creates a TopicFormatRule.
func NewTopicFormatRule(log logger.Logger) *TopicFormatRule {
	return &TopicFormatRule{BaseRule: rule.NewBaseRule("1.5.4", rule.ScopeConfig, log)}
}

// Evaluate collects topic-like string fields whose format does not mention mqtt.
func (r *TopicFormatRule) Evaluate(in *rule.Input) *rule.Result {
	var names []string

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if !IsTopicLike(name, f) || f.Type != schema.TypeString {
			continue
		}

		if !strings.Contains(f.Format, mqttFormatMarker) {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return rule.Pass()
	}

	return rule.Fail(rule.NewFinding(
		"Topic fields without mqtt format: "+strings.Join(names, ", "),
		names...,
	))
}

// IsTopicLike reports whether the field name or title contains "topic", case-insensitively.
func IsTopicLike(name string, f *schema.FieldSchema) bool {
	return containsFold(name, "topic") || (f != nil && containsFold(f.Title, "topic"))
}
