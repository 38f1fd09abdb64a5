package rule_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

type stubRule struct {
	*rule.BaseRule
}

func (stubRule) Evaluate(*rule.Input) *rule.Result {
	return rule.Pass()
}

func newStub(id string, scope rule.Scope) rule.Rule {
	return stubRule{BaseRule: rule.NewBaseRule(id, scope, logger.NewNoOpLogger())}
}

var _ = Describe("BaseRule", func() {
	It("should take its name from the catalogue", func() {
		r := newStub("1.3.1", rule.ScopeConfig)
		Expect(r.ID()).To(Equal("1.3.1"))
		Expect(r.Name()).To(Equal("Required array contains existing properties"))
		Expect(r.Advisory()).To(BeFalse())
	})

	It("should take the advisory flag from the catalogue", func() {
		r := newStub("2.2.1", rule.ScopeUI)
		Expect(r.Advisory()).To(BeTrue())
		Expect(r.Scope()).To(Equal(rule.ScopeUI))
	})

	It("should fall back to the id for unknown rules", func() {
		r := newStub("9.9.9", rule.ScopeConfig)
		Expect(r.Name()).To(Equal("9.9.9"))
	})
})

var _ = Describe("Result", func() {
	It("should pass for no findings", func() {
		r := rule.FromFindings(nil)
		Expect(r.Passed).To(BeTrue())
		Expect(r.Message()).To(BeEmpty())
	})

	It("should fail and join messages for findings", func() {
		r := rule.FromFindings([]rule.Finding{
			rule.NewFinding("first", "a", "b"),
			rule.NewFinding("second", "b", "c"),
		})
		Expect(r.Passed).To(BeFalse())
		Expect(r.Message()).To(Equal("first\nsecond"))
		Expect(r.Fields()).To(Equal([]string{"a", "b", "c"}))
	})

	It("should mark skips", func() {
		r := rule.Skip("no ui schema")
		Expect(r.Skipped).To(BeTrue())
		Expect(r.Passed).To(BeFalse())
		Expect(r.Reason).To(Equal("no ui schema"))
	})
})

var _ = Describe("Input", func() {
	It("should split an adapter into its schemas", func() {
		adapter := &schema.AdapterType{
			ID:           "modbus",
			ConfigSchema: &schema.ConfigSchema{},
			UISchema:     &schema.UISchema{},
		}

		in := rule.NewInput(adapter)
		Expect(in.Subject()).To(Equal("modbus"))
		Expect(in.Config).To(BeIdenticalTo(adapter.ConfigSchema))
		Expect(in.UI).To(BeIdenticalTo(adapter.UISchema))
	})

	It("should have an empty subject without an adapter", func() {
		Expect((&rule.Input{}).Subject()).To(BeEmpty())
	})
})

var _ = Describe("Registry", func() {
	var reg *rule.Registry

	BeforeEach(func() {
		reg = rule.NewRegistry()
		reg.Register(
			newStub("2.2.2", rule.ScopeUI),
			newStub("1.1.1", rule.ScopeConfig),
			newStub("1.3.1", rule.ScopeConfig),
		)
	})

	ids := func(r *rule.Registry) []string {
		var out []string
		for _, rl := range r.Rules() {
			out = append(out, rl.ID())
		}

		return out
	}

	It("should keep rules in catalogue order", func() {
		Expect(ids(reg)).To(Equal([]string{"1.1.1", "1.3.1", "2.2.2"}))
	})

	It("should replace a rule registered twice", func() {
		reg.Register(newStub("1.1.1", rule.ScopeConfig))
		Expect(reg.Len()).To(Equal(3))
	})

	It("should drop disabled rules", func() {
		filtered := reg.Without("1.3.1", "9.9.9")
		Expect(ids(filtered)).To(Equal([]string{"1.1.1", "2.2.2"}))
		Expect(reg.Len()).To(Equal(3))
	})
})
