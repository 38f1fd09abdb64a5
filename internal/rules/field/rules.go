package field

import (
	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

// All returns every JSON Schema rule.
func All(log logger.Logger) []rule.Rule {
	return []rule.Rule{
		NewTitleRule(log),
		NewDescriptionRule(log),
		NewTitleCaseRule(log),
		NewQuestionRule(log),
		NewNumberConstraintRule(log),
		NewStringConstraintRule(log),
		NewPortRangeRule(log),
		NewPatternRule(log),
		NewRequiredRule(log),
		NewDefaultRule(log),
		NewEnumRule(log),
		NewIdentifierFormatRule(log),
		NewTopicFormatRule(log),
	}
}
