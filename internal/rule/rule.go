// Package rule defines the contract shared by every schema QA rule.
package rule

import (
	"github.com/smykla-labs/adapterqa/internal/catalogue"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

//go:generate enumer -type=Scope -trimprefix=Scope -transform=lower -output=scope_enumer.go

// Scope tells the evaluator which schema a rule needs.
type Scope int

const (
	// ScopeConfig rules inspect the JSON Schema and always run.
	ScopeConfig Scope = iota

	// ScopeUI rules inspect the UI Schema and run only when one is present.
	ScopeUI
)

// Input is the schema pair of one adapter type.
type Input struct {
	// Adapter is the adapter type under test. May be nil in unit tests.
	Adapter *schema.AdapterType

	Config *schema.ConfigSchema

	// UI is nil when the adapter ships no UI Schema.
	UI *schema.UISchema
}

// NewInput builds an Input from an adapter type.
func NewInput(adapter *schema.AdapterType) *Input {
	in := &Input{Adapter: adapter}
	if adapter != nil {
		in.Config = adapter.ConfigSchema
		in.UI = adapter.UISchema
	}

	return in
}

// Subject returns the adapter id, or "" when the input has no adapter.
func (in *Input) Subject() string {
	if in.Adapter == nil {
		return ""
	}

	return in.Adapter.ID
}

// Rule checks one property of an adapter schema pair.
type Rule interface {
	// ID returns the catalogue identifier, e.g. "1.2.1".
	ID() string

	// Name returns the display title.
	Name() string

	Scope() Scope

	// Advisory rules report findings as notes and never fail.
	Advisory() bool

	// Evaluate runs the rule. It must not modify in.
	Evaluate(in *Input) *Result
}

// BaseRule carries the identity shared by all rules.
type BaseRule struct {
	id       string
	name     string
	scope    Scope
	advisory bool
	log      logger.Logger
}

// NewBaseRule creates a BaseRule. Name and advisory flag come from the rule catalogue.
func NewBaseRule(id string, scope Scope, log logger.Logger) *BaseRule {
	name := id

	meta, ok := catalogue.Lookup(id)
	if ok {
		name = meta.Title
	}

	return &BaseRule{
		id:       id,
		name:     name,
		scope:    scope,
		advisory: meta.Advisory,
		log:      log.With("rule", id),
	}
}

// ID returns the rule identifier.
func (b *BaseRule) ID() string {
	return b.id
}

// Name returns the rule title.
func (b *BaseRule) Name() string {
	return b.name
}

// Scope returns the rule scope.
func (b *BaseRule) Scope() Scope {
	return b.scope
}

// Advisory reports whether the rule is advisory.
func (b *BaseRule) Advisory() bool {
	return b.advisory
}

// Logger returns the rule logger.
func (b *BaseRule) Logger() logger.Logger {
	return b.log
}
