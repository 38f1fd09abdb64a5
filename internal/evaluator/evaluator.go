// Package evaluator runs the registered rules against adapter schemas.
package evaluator

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-labs/adapterqa/internal/outcome"
	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

// ErrNoRules is returned when every rule has been disabled.
var ErrNoRules = errors.New("no rules enabled")

// Evaluator runs rules for one adapter at a time.
type Evaluator struct {
	registry    *rule.Registry
	logger      logger.Logger
	parallelism int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithParallelism bounds the number of rules evaluated concurrently. Values below 1 mean sequential.
func WithParallelism(n int) Option {
	return func(e *Evaluator) {
		e.parallelism = n
	}
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(registry *rule.Registry, log logger.Logger, opts ...Option) *Evaluator {
	e := &Evaluator{
		registry:    registry,
		logger:      log,
		parallelism: 1,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.parallelism < 1 {
		e.parallelism = 1
	}

	return e
}

// Evaluate runs every applicable rule and returns outcomes in catalogue order.
// Skipped rules contribute no outcome.
func (e *Evaluator) Evaluate(ctx context.Context, in *rule.Input) ([]*outcome.Outcome, error) {
	rules := e.registry.Rules()
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	log := e.logger.With("adapter", in.Subject())
	log.Info("evaluating", "rules", len(rules), "ui_schema", in.UI != nil)

	if ignored := in.UI.IgnoredKeys(); len(ignored) > 0 {
		log.Warn("ui schema entries ignored", "keys", ignored)
	}

	slots := make([]*outcome.Outcome, len(rules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for i, r := range rules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			slots[i] = e.run(log, r, in)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "evaluate %s", in.Subject())
	}

	outcomes := make([]*outcome.Outcome, 0, len(slots))

	for _, o := range slots {
		if o != nil {
			outcomes = append(outcomes, o)
		}
	}

	return outcomes, nil
}

// run evaluates a single rule and converts its result. Returns nil when the rule is skipped.
func (e *Evaluator) run(log logger.Logger, r rule.Rule, in *rule.Input) *outcome.Outcome {
	if r.Scope() == rule.ScopeUI && in.UI == nil {
		log.Debug("rule skipped", "rule", r.ID(), "reason", "no ui schema")
		return nil
	}

	log.Debug("running rule", "rule", r.ID())

	result := r.Evaluate(in)

	if result.Skipped {
		log.Debug("rule skipped", "rule", r.ID(), "reason", result.Reason)
		return nil
	}

	o := &outcome.Outcome{
		RuleID:  r.ID(),
		Title:   r.Name(),
		Subject: in.Subject(),
		Passed:  result.Passed,
	}

	if result.Passed {
		log.Debug("rule passed", "rule", r.ID())
		return o
	}

	if r.Advisory() {
		log.Info("rule advised",
			"rule", r.ID(),
			"message", result.Message(),
		)

		o.Passed = true

		for _, f := range result.Findings {
			o.Notes = append(o.Notes, f.Message)
		}

		return o
	}

	log.Warn("rule failed",
		"rule", r.ID(),
		"fields", result.Fields(),
		"message", result.Message(),
	)

	o.Error = result.Message()

	return o
}

// Failed counts failed outcomes.
func Failed(outcomes []*outcome.Outcome) int {
	n := 0

	for _, o := range outcomes {
		if !o.Passed {
			n++
		}
	}

	return n
}
