package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/adapterqa/internal/source"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

var fixture = filepath.Join("testdata", "adapter-types.json")

var _ = Describe("Decode", func() {
	It("should decode a valid document", func() {
		data, err := os.ReadFile(fixture)
		Expect(err).NotTo(HaveOccurred())

		list, err := source.Decode(data, fixture)
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Items).To(HaveLen(3))

		modbus := list.Items[0]
		Expect(modbus.ID).To(Equal("modbus"))
		Expect(modbus.ConfigSchema.Required).To(Equal([]string{"id", "host", "port"}))

		port, ok := modbus.ConfigSchema.Field("port")
		Expect(ok).To(BeTrue())
		Expect(port.Type).To(Equal(schema.TypeInteger))
		Expect(*port.Maximum).To(Equal(65535.0))
		Expect(port.HasDefault()).To(BeTrue())

		Expect(modbus.UISchema.Tabs).To(HaveLen(2))
		Expect(modbus.UISchema.Order).To(Equal([]string{"id", "*"}))
		Expect(modbus.UISchema.Field("port").Widget).To(Equal("updown"))

		Expect(list.Items[2].UISchema).To(BeNil())
	})

	DescribeTable("invalid envelopes",
		func(doc string) {
			_, err := source.Decode([]byte(doc), "doc")
			Expect(errors.Is(err, source.ErrInvalidEnvelope)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("doc"))
		},
		Entry("not JSON", `{"items": [`),
		Entry("missing items", `{}`),
		Entry("items not an array", `{"items": {}}`),
		Entry("adapter without id", `{"items": [{"configSchema": {}}]}`),
		Entry("adapter without config schema", `{"items": [{"id": "x"}]}`),
		Entry("required not a list", `{"items": [{"id": "x", "configSchema": {"required": "id"}}]}`),
	)

	It("should accept a type array on a field", func() {
		doc := `{"items": [{"id": "x", "configSchema": {"properties": {"a": {"type": ["null", "string"]}}}}]}`

		list, err := source.Decode([]byte(doc), "doc")
		Expect(err).NotTo(HaveOccurred())

		f, _ := list.Items[0].ConfigSchema.Field("a")
		Expect(f.Type).To(Equal(schema.TypeString))
	})

	It("should keep decoding when one ui entry has a wrongly typed key", func() {
		doc := `{"items": [
			{"id": "a", "configSchema": {}, "uiSchema": {"id": {"ui:disabled": "true", "ui:widget": "text"}}},
			{"id": "b", "configSchema": {}, "uiSchema": {"port": {"ui:widget": "updown"}}}
		]}`

		list, err := source.Decode([]byte(doc), "doc")
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Items).To(HaveLen(2))

		broken := list.Items[0].UISchema.Field("id")
		Expect(broken.Disabled).To(BeNil())
		Expect(broken.Widget).To(Equal("text"))
		Expect(list.Items[0].UISchema.IgnoredKeys()).To(Equal([]string{"id.ui:disabled"}))
		Expect(list.Items[1].UISchema.Field("port").Widget).To(Equal("updown"))
	})
})

var _ = Describe("FileFetcher", func() {
	It("should read the file", func() {
		list, err := source.NewFileFetcher(fixture).Fetch(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Items).To(HaveLen(3))
	})

	It("should name a missing file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "none.json")

		_, err := source.NewFileFetcher(path).Fetch(context.Background())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(path))
	})
})

var _ = Describe("HTTPFetcher", func() {
	var (
		server *httptest.Server
		body   []byte
		status int
		path   string
	)

	BeforeEach(func() {
		var err error
		body, err = os.ReadFile(fixture)
		Expect(err).NotTo(HaveOccurred())

		status = http.StatusOK
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.WriteHeader(status)
			_, _ = w.Write(body)
		}))
		DeferCleanup(server.Close)
	})

	It("should GET the adapter types endpoint", func() {
		f := source.NewHTTPFetcher(server.URL, 5*time.Second, logger.NewNoOpLogger())

		list, err := f.Fetch(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(source.TypesEndpoint))
		Expect(list.Items).To(HaveLen(3))
	})

	It("should fail on a non-2xx status", func() {
		status = http.StatusServiceUnavailable
		f := source.NewHTTPFetcher(server.URL, 5*time.Second, logger.NewNoOpLogger())

		_, err := f.Fetch(context.Background())
		Expect(errors.Is(err, source.ErrUnexpectedStatus)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("503"))
	})

	It("should validate the response body", func() {
		body = []byte(`{"adapters": []}`)
		f := source.NewHTTPFetcher(server.URL, 5*time.Second, logger.NewNoOpLogger())

		_, err := f.Fetch(context.Background())
		Expect(errors.Is(err, source.ErrInvalidEnvelope)).To(BeTrue())
	})

	It("should honor a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := source.NewHTTPFetcher(server.URL, 5*time.Second, logger.NewNoOpLogger())

		_, err := f.Fetch(ctx)
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})
})
