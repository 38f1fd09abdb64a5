// Package rules assembles the built-in rule set.
package rules

import (
	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/internal/rules/field"
	"github.com/smykla-labs/adapterqa/internal/rules/layout"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

// NewRegistry returns the built-in rules minus the disabled ids.
func NewRegistry(log logger.Logger, disabled ...string) *rule.Registry {
	reg := rule.NewRegistry()
	reg.Register(field.All(log)...)
	reg.Register(layout.All(log)...)

	return reg.Without(disabled...)
}
