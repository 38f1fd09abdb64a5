package results_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/adapterqa/internal/outcome"
	"github.com/smykla-labs/adapterqa/internal/results"
	"github.com/smykla-labs/adapterqa/pkg/logger"
)

var _ = Describe("Reader", func() {
	var reader *results.Reader

	BeforeEach(func() {
		reader = results.NewReader(logger.NewNoOpLogger())
	})

	Describe("ReadFile", func() {
		It("should collect executed tests depth-first", func() {
			outcomes, err := reader.ReadFile(filepath.Join("testdata", "combined.json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(5))

			ids := make([]string, 0, len(outcomes))
			for _, o := range outcomes {
				ids = append(ids, o.DisplayID())
			}

			Expect(ids).To(Equal([]string{"N/A", "1.2.1", "1.2.3", "2.2.1", "N/A"}))
		})

		It("should keep pass state and error text", func() {
			outcomes, err := reader.ReadFile(filepath.Join("testdata", "combined.json"))
			Expect(err).NotTo(HaveOccurred())

			failed := outcomes[1]
			Expect(failed.Passed).To(BeFalse())
			Expect(failed.Error).To(HavePrefix("AssertionError: Invalid constraints"))

			Expect(outcomes[2].Passed).To(BeTrue())
			Expect(outcomes[2].Error).To(BeEmpty())
		})

		It("should fall back to title when fullTitle is missing", func() {
			outcomes, err := reader.ReadFile(filepath.Join("testdata", "combined.json"))
			Expect(err).NotTo(HaveOccurred())

			last := outcomes[4]
			Expect(last.RuleID).To(BeEmpty())
			Expect(last.Title).To(Equal("Tab properties should reference existing schema fields"))
		})

		It("should fail with a hint when the file is missing", func() {
			path := filepath.Join(GinkgoT().TempDir(), "missing.json")

			_, err := reader.ReadFile(path)
			Expect(errors.Is(err, results.ErrResultsNotFound)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(path))
			Expect(errors.FlattenHints(err)).To(ContainSubstring("npm run cypress:ci"))
		})

		It("should fail when the file is not JSON", func() {
			path := filepath.Join(GinkgoT().TempDir(), "combined.json")
			Expect(os.WriteFile(path, []byte("{not json"), 0o600)).To(Succeed())

			_, err := reader.ReadFile(path)
			Expect(errors.Is(err, results.ErrResultsMalformed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(path))
		})
	})

	Describe("Parse", func() {
		It("should reject a document without results", func() {
			_, err := reader.Parse([]byte(`{"stats": {"tests": 0}}`), "doc")
			Expect(errors.Is(err, results.ErrResultsMalformed)).To(BeTrue())
		})

		It("should accept an empty results array", func() {
			outcomes, err := reader.Parse([]byte(`{"stats": {}, "results": []}`), "doc")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(BeEmpty())
		})

		It("should mark records without any title as untitled", func() {
			doc := `{"results": [{"tests": [{"pass": true, "state": "passed"}]}]}`

			outcomes, err := reader.Parse([]byte(doc), "doc")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(1))
			Expect(outcomes[0].Title).To(Equal("(untitled)"))
			Expect(outcomes[0].DisplayID()).To(Equal(outcome.Unattributed))
		})

		It("should exclude skipped tests", func() {
			doc := `{"results": [{"suites": [{"tests": [
				{"fullTitle": "[6.1.1] renders", "skipped": true},
				{"fullTitle": "[6.1.2] fields", "state": "skipped"},
				{"fullTitle": "[6.2.1] required", "pass": true}
			]}]}]}`

			outcomes, err := reader.Parse([]byte(doc), "doc")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes).To(HaveLen(1))
			Expect(outcomes[0].RuleID).To(Equal("6.2.1"))
		})

		It("should take the first id token in the title", func() {
			doc := `{"results": [{"tests": [{"fullTitle": "Section [1.1.1] then [2.2.2]", "fail": true}]}]}`

			outcomes, err := reader.Parse([]byte(doc), "doc")
			Expect(err).NotTo(HaveOccurred())
			Expect(outcomes[0].RuleID).To(Equal("1.1.1"))
			Expect(outcomes[0].Passed).To(BeFalse())
		})
	})
})
