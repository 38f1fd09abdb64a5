package rule

import (
	"slices"

	"github.com/smykla-labs/adapterqa/internal/catalogue"
)

// Registry holds the enabled rules in catalogue order.
type Registry struct {
	rules []Rule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds rules. A rule whose id is already registered replaces the earlier one.
func (r *Registry) Register(rules ...Rule) {
	for _, rl := range rules {
		idx := slices.IndexFunc(r.rules, func(existing Rule) bool {
			return existing.ID() == rl.ID()
		})

		if idx >= 0 {
			r.rules[idx] = rl
			continue
		}

		r.rules = append(r.rules, rl)
	}

	slices.SortStableFunc(r.rules, func(a, b Rule) int {
		return catalogueIndex(a.ID()) - catalogueIndex(b.ID())
	})
}

// Without returns a Registry lacking the given rule ids.
func (r *Registry) Without(ids ...string) *Registry {
	out := &Registry{rules: make([]Rule, 0, len(r.rules))}

	for _, rl := range r.rules {
		if slices.Contains(ids, rl.ID()) {
			continue
		}

		out.rules = append(out.rules, rl)
	}

	return out
}

// Rules returns the registered rules in catalogue order.
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

func catalogueIndex(id string) int {
	return catalogue.Default().Position(id)
}
