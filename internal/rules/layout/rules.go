package layout

import (
	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

// All returns every UI Schema rule.
func All(log logger.Logger) []rule.Rule {
	return []rule.Rule{
		NewPresenceRule(log),
		NewTabStructureRule(log),
		NewOrderRule(log),
		NewTabTitleRule(log),
		NewTabMembersRule(log),
		NewPortWidgetRule(log),
		NewPasswordWidgetRule(log),
		NewIDDisabledRule(log),
		NewCollapsibleTitleRule(log),
	}
}
