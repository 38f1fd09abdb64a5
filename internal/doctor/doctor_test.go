package doctor_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/adapterqa/internal/doctor"
)

type fixedChecker struct {
	name     string
	category doctor.Category
	result   doctor.CheckResult
}

func (f fixedChecker) Name() string { return f.name }
func (f fixedChecker) Category() doctor.Category { return f.category }
func (f fixedChecker) Check(context.Context) doctor.CheckResult { return f.result }

var _ = Describe("CheckResult", func() {
	It("should classify results", func() {
		Expect(doctor.Pass("a", "ok").IsPassed()).To(BeTrue())
		Expect(doctor.FailError("a", "bad").IsError()).To(BeTrue())
		Expect(doctor.FailWarning("a", "meh").IsWarning()).To(BeTrue())
		Expect(doctor.FailWarning("a", "meh").IsError()).To(BeFalse())

		skipped := doctor.Skip("a", "n/a")
		Expect(skipped.IsPassed()).To(BeFalse())
		Expect(skipped.IsError()).To(BeFalse())
		Expect(skipped.IsWarning()).To(BeFalse())
	})

	It("should append details without touching the original", func() {
		base := doctor.FailError("a", "bad").WithDetails("one")
		extended := base.WithDetails("two")

		Expect(extended.Details).To(Equal([]string{"one", "two"}))
		Expect(base.Details).To(Equal([]string{"one"}))
	})
})

var _ = Describe("Run", func() {
	It("should keep checker order and stamp categories", func() {
		results := doctor.Run(context.Background(),
			fixedChecker{name: "b", category: doctor.CategorySource, result: doctor.Pass("b", "")},
			fixedChecker{name: "a", category: doctor.CategoryConfig, result: doctor.FailError("a", "")},
		)

		Expect(results).To(HaveLen(2))
		Expect(results[0].Name).To(Equal("b"))
		Expect(results[0].Category).To(Equal(doctor.CategorySource))
		Expect(results[1].Category).To(Equal(doctor.CategoryConfig))
		Expect(doctor.CountErrors(results)).To(Equal(1))
	})
})
