// Package runner drives a schema check run: fetch adapter types, filter them, and
// evaluate each one.
package runner

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-labs/adapterqa/internal/evaluator"
	"github.com/smykla-labs/adapterqa/internal/outcome"
	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/internal/source"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

// ErrNoAdapters is returned when no adapter type is left to check.
var ErrNoAdapters = errors.New("no adapter types to check")

// Progress receives one tick per evaluated adapter.
type Progress interface {
	Add(n int) error
	Finish() error
}

// Runner evaluates every selected adapter type.
type Runner struct {
	fetcher     source.Fetcher
	evaluator   *evaluator.Evaluator
	filter      *Filter
	logger      logger.Logger
	parallelism int
	progress    func(total int) Progress
}

// Option configures a Runner.
type Option func(*Runner)

// WithFilter restricts the adapters checked.
func WithFilter(f *Filter) Option {
	return func(r *Runner) {
		r.filter = f
	}
}

// WithParallelism bounds the number of adapters evaluated concurrently.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		r.parallelism = n
	}
}

// WithProgress installs a progress factory, called once the adapter count is known.
func WithProgress(factory func(total int) Progress) Option {
	return func(r *Runner) {
		r.progress = factory
	}
}

// New creates a Runner.
func New(fetcher source.Fetcher, eval *evaluator.Evaluator, log logger.Logger, opts ...Option) *Runner {
	r := &Runner{
		fetcher:     fetcher,
		evaluator:   eval,
		logger:      log,
		parallelism: 1,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.parallelism < 1 {
		r.parallelism = 1
	}

	return r
}

// Run fetches, filters, and evaluates adapters. Outcomes are grouped by adapter in fetch order.
func (r *Runner) Run(ctx context.Context) ([]*outcome.Outcome, error) {
	list, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch adapter types")
	}

	adapters := r.selectAdapters(list)
	if len(adapters) == 0 {
		return nil, errors.WithHint(ErrNoAdapters, "Check the [adapters] include and version settings")
	}

	r.logger.Info("checking adapters", "count", len(adapters))

	var progress Progress
	if r.progress != nil {
		progress = r.progress(len(adapters))
	}

	perAdapter := make([][]*outcome.Outcome, len(adapters))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, a := range adapters {
		g.Go(func() error {
			outcomes, err := r.evaluator.Evaluate(gctx, rule.NewInput(a))
			if err != nil {
				return err
			}

			perAdapter[i] = outcomes

			if progress != nil {
				_ = progress.Add(1)
			}

			return nil
		})
	}

	err = g.Wait()

	if progress != nil {
		_ = progress.Finish()
	}

	if err != nil {
		return nil, err
	}

	var outcomes []*outcome.Outcome
	for _, o := range perAdapter {
		outcomes = append(outcomes, o...)
	}

	return outcomes, nil
}

func (r *Runner) selectAdapters(list *schema.AdapterTypeList) []*schema.AdapterType {
	if list == nil {
		return nil
	}

	selected := make([]*schema.AdapterType, 0, len(list.Items))

	for _, a := range list.Items {
		if a == nil {
			continue
		}

		if !r.filter.Match(a) {
			r.logger.Debug("adapter filtered out", "adapter", a.ID, "version", a.Version)
			continue
		}

		selected = append(selected, a)
	}

	return selected
}
