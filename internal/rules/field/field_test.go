package field_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/internal/rules/field"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

func ptr[T any](v T) *T {
	return &v
}

func input(props map[string]*schema.FieldSchema, required ...string) *rule.Input {
	return &rule.Input{Config: &schema.ConfigSchema{Properties: props, Required: required}}
}

func documented(title string) *schema.FieldSchema {
	return &schema.FieldSchema{Type: schema.TypeString, Title: title, Description: "Some description."}
}

var _ = Describe("Field rules", func() {
	var log logger.Logger

	BeforeEach(func() {
		log = logger.NewNoOpLogger()
	})

	Describe("TitleRule", func() {
		It("should pass when every field has a title", func() {
			r := field.NewTitleRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"host": documented("Host"),
			}))
			Expect(r.Passed).To(BeTrue())
		})

		It("should collect every missing title into one finding", func() {
			r := field.NewTitleRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"host":    {Type: schema.TypeString},
				"port":    {Type: schema.TypeInteger, Title: "   "},
				"timeout": documented("Timeout"),
			}))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Findings).To(HaveLen(1))
			Expect(r.Findings[0].Fields).To(Equal([]string{"host", "port"}))
			Expect(r.Message()).To(Equal("Fields without title: host, port"))
		})

		It("should pass when there are no properties", func() {
			Expect(field.NewTitleRule(log).Evaluate(&rule.Input{}).Passed).To(BeTrue())
		})
	})

	Describe("DescriptionRule", func() {
		It("should collect every missing description into one finding", func() {
			r := field.NewDescriptionRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"host": {Title: "Host"},
				"port": {Title: "Port"},
			}))
			Expect(r.Findings).To(HaveLen(1))
			Expect(r.Message()).To(ContainSubstring("host, port"))
		})
	})

	Describe("TitleCaseRule", func() {
		It("should fail for camelCase titles", func() {
			r := field.NewTitleCaseRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"timeout": documented("connectionTimeout"),
			}))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Fields()).To(Equal([]string{"timeout"}))
		})

		It("should fail when the pair appears mid-title", func() {
			r := field.NewTitleCaseRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"timeout": documented("Connection timeoutSeconds"),
			}))
			Expect(r.Passed).To(BeFalse())
		})

		It("should pass for Title Case and acronyms", func() {
			r := field.NewTitleCaseRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"timeout": documented("Connection Timeout"),
				"tls":     documented("TLS Enabled"),
			}))
			Expect(r.Passed).To(BeTrue())
		})
	})

	Describe("QuestionRule", func() {
		It("should fail for a trailing question mark after trimming", func() {
			f := documented("TLS")
			f.Description = "Enable TLS?  "

			r := field.NewQuestionRule(log).Evaluate(input(map[string]*schema.FieldSchema{"tls": f}))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Message()).To(ContainSubstring("tls"))
		})

		It("should pass for a question mark elsewhere", func() {
			f := documented("TLS")
			f.Description = "Is TLS on? Set to true to enable."

			r := field.NewQuestionRule(log).Evaluate(input(map[string]*schema.FieldSchema{"tls": f}))
			Expect(r.Passed).To(BeTrue())
		})
	})

	Describe("NumberConstraintRule", func() {
		It("should fail for string bounds on integers even with numeric bounds", func() {
			r := field.NewNumberConstraintRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"count": {Type: schema.TypeInteger, MinLength: ptr(1), Minimum: ptr(1.0), Maximum: ptr(10.0)},
			}))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Message()).To(Equal("count: has string constraints on number type"))
		})

		It("should fail for string bounds on numbers", func() {
			r := field.NewNumberConstraintRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"ratio": {Type: schema.TypeNumber, MaxLength: ptr(3)},
			}))
			Expect(r.Passed).To(BeFalse())
		})

		It("should ignore string fields", func() {
			r := field.NewNumberConstraintRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"host": {Type: schema.TypeString, MinLength: ptr(1)},
			}))
			Expect(r.Passed).To(BeTrue())
		})
	})

	Describe("StringConstraintRule", func() {
		It("should fail for numeric bounds on strings", func() {
			r := field.NewStringConstraintRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"host": {Type: schema.TypeString, Maximum: ptr(5.0)},
			}))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Message()).To(Equal("host: has number constraints on string type"))
		})
	})

	Describe("PortRangeRule", func() {
		It("should pass for a bounded port", func() {
			r := field.NewPortRangeRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"port": {Type: schema.TypeInteger, Minimum: ptr(1.0), Maximum: ptr(65535.0)},
			}))
			Expect(r.Passed).To(BeTrue())
		})

		It("should fail for missing or out-of-range bounds", func() {
			r := field.NewPortRangeRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"port":       {Type: schema.TypeInteger},
				"serverPort": {Type: schema.TypeInteger, Minimum: ptr(0.0), Maximum: ptr(70000.0)},
			}))
			Expect(r.Findings).To(HaveLen(2))
			Expect(r.Message()).To(ContainSubstring("port: min=unset, max=unset"))
			Expect(r.Message()).To(ContainSubstring("serverPort: min=0, max=70000"))
		})

		It("should detect port-like fields by title", func() {
			f := &schema.FieldSchema{Type: schema.TypeInteger, Title: "Listener Port"}

			r := field.NewPortRangeRule(log).Evaluate(input(map[string]*schema.FieldSchema{"listener": f}))
			Expect(r.Passed).To(BeFalse())
		})

		It("should skip non-numeric port-like fields", func() {
			r := field.NewPortRangeRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"portName": {Type: schema.TypeString},
			}))
			Expect(r.Passed).To(BeTrue())
		})

		It("should produce nothing for non-port fields regardless of bounds", func() {
			r := field.NewPortRangeRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"count": {Type: schema.TypeInteger},
			}))
			Expect(r.Passed).To(BeTrue())
			Expect(r.Findings).To(BeEmpty())
		})
	})

	Describe("PatternRule", func() {
		It("should pass for valid ECMAScript patterns", func() {
			r := field.NewPatternRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"id":   {Type: schema.TypeString, Pattern: `^[a-zA-Z0-9_-]+$`},
				"host": {Type: schema.TypeString, Pattern: `^(?=.{1,253}$)[a-z0-9.-]+$`},
			}))
			Expect(r.Passed).To(BeTrue())
		})

		It("should report every invalid pattern with its text", func() {
			r := field.NewPatternRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"a": {Type: schema.TypeString, Pattern: `([a-z`},
				"b": {Type: schema.TypeString, Pattern: `^ok$`},
				"c": {Type: schema.TypeString, Pattern: `(unclosed`},
			}))
			Expect(r.Findings).To(HaveLen(2))
			Expect(r.Fields()).To(Equal([]string{"a", "c"}))
			Expect(r.Message()).To(ContainSubstring(`a: "([a-z"`))
		})

		It("should reject inline flags that browsers do not support", func() {
			r := field.NewPatternRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"name": {Type: schema.TypeString, Pattern: `(?i)^[a-z]+$`},
				"body": {Type: schema.TypeString, Pattern: `(?s).*`},
			}))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Fields()).To(Equal([]string{"body", "name"}))
			Expect(r.Message()).To(ContainSubstring(`name: "(?i)^[a-z]+$"`))
		})

		It("should pass named groups and lookbehind", func() {
			r := field.NewPatternRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"topic": {Type: schema.TypeString, Pattern: `^(?<root>[a-z]+)/(?<!#)[a-z]+$`},
				"price": {Type: schema.TypeString, Pattern: `(?<=\$)\d+`},
			}))
			Expect(r.Passed).To(BeTrue())
		})
	})

	DescribeTable("UnsupportedGroup",
		func(pattern, group string, unsupported bool) {
			got, ok := field.UnsupportedGroup(pattern)
			Expect(ok).To(Equal(unsupported))
			Expect(got).To(Equal(group))
		},
		Entry("case-insensitive flag", `(?i)^[a-z]+$`, "(?i", true),
		Entry("dotall flag", `(?s).*`, "(?s", true),
		Entry("comment group", `a(?#note)b`, "(?#", true),
		Entry("atomic group", `(?>ab)c`, "(?>", true),
		Entry("non-capturing group", `(?:ab)+`, "", false),
		Entry("lookahead", `a(?=b)`, "", false),
		Entry("negative lookahead", `a(?!b)`, "", false),
		Entry("named group", `(?<year>\d{4})`, "", false),
		Entry("escaped paren", `\(?i\)`, "", false),
		Entry("inside character class", `[(?i)]+`, "", false),
		Entry("plain pattern", `^[a-z0-9-]+$`, "", false),
	)

	Describe("RequiredRule", func() {
		It("should fail with one finding naming the dangling field", func() {
			r := field.NewRequiredRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"host": documented("Host"),
			}, "host", "port"))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Findings).To(HaveLen(1))
			Expect(r.Findings[0].Fields).To(Equal([]string{"port"}))
		})

		It("should pass when every required field exists", func() {
			r := field.NewRequiredRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"host": documented("Host"),
			}, "host"))
			Expect(r.Passed).To(BeTrue())
		})
	})

	Describe("DefaultRule", func() {
		It("should list optional fields without defaults except id", func() {
			withDefault := documented("Timeout")
			withDefault.Default = json.RawMessage(`30`)

			r := field.NewDefaultRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"id":      documented("Identifier"),
				"host":    documented("Host"),
				"timeout": withDefault,
				"tag":     documented("Tag"),
			}, "host"))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Fields()).To(Equal([]string{"tag"}))
		})

		It("should be advisory", func() {
			Expect(field.NewDefaultRule(log).Advisory()).To(BeTrue())
		})
	})

	Describe("EnumRule", func() {
		It("should fail when counts differ", func() {
			r := field.NewEnumRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"mode": {Type: schema.TypeString, Enum: []any{"a", "b"}, EnumNames: []string{"A"}},
			}))
			Expect(r.Message()).To(Equal("mode: 2 values vs 1 display names"))
		})

		It("should pass when enumNames is absent", func() {
			r := field.NewEnumRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"mode": {Type: schema.TypeString, Enum: []any{"a", "b"}},
			}))
			Expect(r.Passed).To(BeTrue())
		})
	})

	Describe("IdentifierFormatRule", func() {
		It("should fail when id lacks the identifier format", func() {
			r := field.NewIdentifierFormatRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"id": {Type: schema.TypeString},
			}))
			Expect(r.Passed).To(BeFalse())
			Expect(r.Fields()).To(Equal([]string{"id"}))
		})

		It("should pass with the identifier format", func() {
			r := field.NewIdentifierFormatRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"id": {Type: schema.TypeString, Format: "identifier"},
			}))
			Expect(r.Passed).To(BeTrue())
		})

		It("should pass without an id field", func() {
			r := field.NewIdentifierFormatRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"adapterId": {Type: schema.TypeString},
			}))
			Expect(r.Passed).To(BeTrue())
		})
	})

	Describe("TopicFormatRule", func() {
		It("should flag topic strings without an mqtt format", func() {
			r := field.NewTopicFormatRule(log).Evaluate(input(map[string]*schema.FieldSchema{
				"topic":       {Type: schema.TypeString},
				"topicFilter": {Type: schema.TypeString, Format: "mqtt-topic-filter"},
				"topics":      {Type: schema.TypeArray},
			}))
			Expect(r.Fields()).To(Equal([]string{"topic"}))
		})
	})

	Describe("All", func() {
		It("should return rules with unique catalogue ids", func() {
			seen := map[string]bool{}
			for _, r := range field.All(log) {
				Expect(seen).NotTo(HaveKey(r.ID()))
				seen[r.ID()] = true
				Expect(r.Scope()).To(Equal(rule.ScopeConfig))
				Expect(r.Name()).NotTo(Equal(r.ID()))
			}

			Expect(seen).To(HaveLen(13))
		})
	})
})
