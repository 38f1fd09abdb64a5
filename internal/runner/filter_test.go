package runner_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/adapterqa/internal/runner"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

var _ = Describe("Filter", func() {
	adapter := func(id, version string) *schema.AdapterType {
		return &schema.AdapterType{ID: id, Version: version}
	}

	It("should match everything when empty", func() {
		f, err := runner.NewFilter(nil, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Match(adapter("modbus", ""))).To(BeTrue())
	})

	It("should treat a nil filter as match-all", func() {
		var f *runner.Filter
		Expect(f.Match(adapter("modbus", ""))).To(BeTrue())
	})

	DescribeTable("id globs",
		func(include []string, id string, expected bool) {
			f, err := runner.NewFilter(include, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Match(adapter(id, ""))).To(Equal(expected))
		},
		Entry("exact", []string{"modbus"}, "modbus", true),
		Entry("prefix glob", []string{"opc*"}, "opcua", true),
		Entry("no match", []string{"opc*"}, "modbus", false),
		Entry("any of several", []string{"http", "mod*"}, "modbus", true),
	)

	DescribeTable("version constraints",
		func(constraint, version string, expected bool) {
			f, err := runner.NewFilter(nil, constraint)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Match(adapter("modbus", version))).To(Equal(expected))
		},
		Entry("satisfied", ">=1.0.0", "1.2.0", true),
		Entry("not satisfied", ">=2.0.0", "1.2.0", false),
		Entry("unparsable version", ">=1.0.0", "not-a-version", false),
		Entry("missing version", ">=1.0.0", "", false),
	)

	It("should reject an invalid glob", func() {
		_, err := runner.NewFilter([]string{"[a"}, "")
		Expect(err).To(MatchError(ContainSubstring("invalid adapter pattern")))
	})

	It("should reject an invalid constraint", func() {
		_, err := runner.NewFilter(nil, ">>1")
		Expect(err).To(MatchError(ContainSubstring("invalid version constraint")))
	})
})
