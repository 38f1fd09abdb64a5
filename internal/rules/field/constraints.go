package field

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/smykla-labs/adapterqa/internal/rule"
	"github.com/smykla-labs/adapterqa/pkg/logger"
	"github.com/smykla-labs/adapterqa/pkg/schema"
)

const (
	minPort = 1
	maxPort = 65535
)

// NumberConstraintRule rejects string-length bounds on numeric fields (1.2.1).
type NumberConstraintRule struct {
	*rule.BaseRule
}

// NewNumberConstraintRule creates a NumberConstraintRule.
func NewNumberConstraintRule(log logger.Logger) *NumberConstraintRule {
	return &NumberConstraintRule{BaseRule: rule.NewBaseRule("1.2.1", rule.ScopeConfig, log)}
}

// Evaluate reports integer and number fields declaring minLength or maxLength.
func (r *NumberConstraintRule) Evaluate(in *rule.Input) *rule.Result {
	var findings []rule.Finding

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if f.Type.IsNumeric() && f.HasLengthBounds() {
			findings = append(findings, rule.NewFinding(
				name+": has string constraints on number type",
				name,
			))
		}
	}

	return rule.FromFindings(findings)
}

// StringConstraintRule rejects numeric bounds on string fields (1.2.2).
type StringConstraintRule struct {
	*rule.BaseRule
}

// NewStringConstraintRule creates a StringConstraintRule.
func NewStringConstraintRule(log logger.Logger) *StringConstraintRule {
	return &StringConstraintRule{BaseRule: rule.NewBaseRule("1.2.2", rule.ScopeConfig, log)}
}

// Evaluate reports string fields declaring minimum or maximum.
func (r *StringConstraintRule) Evaluate(in *rule.Input) *rule.Result {
	var findings []rule.Finding

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if f.Type == schema.TypeString && f.HasNumericBounds() {
			findings = append(findings, rule.NewFinding(
				name+": has number constraints on string type",
				name,
			))
		}
	}

	return rule.FromFindings(findings)
}

// PortRangeRule checks the bounds of port-like numeric fields (1.2.3).
type PortRangeRule struct {
	*rule.BaseRule
}

// NewPortRangeRule creates a PortRangeRule.
func NewPortRangeRule(log logger.Logger) *PortRangeRule {
	return &PortRangeRule{BaseRule: rule.NewBaseRule("1.2.3", rule.ScopeConfig, log)}
}

// Evaluate requires minimum >= 1 and maximum <= 65535 on numeric port-like fields.
// Non-numeric port-like fields are skipped.
func (r *PortRangeRule) Evaluate(in *rule.Input) *rule.Result {
	var findings []rule.Finding

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if !IsPortLike(name, f) {
			continue
		}

		if !f.Type.IsNumeric() {
			r.Logger().Debug("skipping non-numeric port field", "field", name, "type", f.Type)
			continue
		}

		validMin := f.Minimum != nil && *f.Minimum >= minPort
		validMax := f.Maximum != nil && *f.Maximum <= maxPort

		if !validMin || !validMax {
			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("%s: min=%s, max=%s", name, formatBound(f.Minimum), formatBound(f.Maximum)),
				name,
			))
		}
	}

	return rule.FromFindings(findings)
}

// PatternRule checks that declared patterns compile as ECMAScript regular expressions (1.2.5).
type PatternRule struct {
	*rule.BaseRule
}

// NewPatternRule creates a PatternRule.
func NewPatternRule(log logger.Logger) *PatternRule {
	return &PatternRule{BaseRule: rule.NewBaseRule("1.2.5", rule.ScopeConfig, log)}
}

// Evaluate reports every field whose pattern fails to compile and keeps going.
func (r *PatternRule) Evaluate(in *rule.Input) *rule.Result {
	var findings []rule.Finding

	for _, name := range in.Config.FieldNames() {
		f, _ := in.Config.Field(name)
		if f.Pattern == "" {
			continue
		}

		if group, ok := UnsupportedGroup(f.Pattern); ok {
			r.Logger().Debug("pattern uses an unsupported group", "field", name, "group", group)

			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("%s: %q (unsupported group %q)", name, f.Pattern, group),
				name,
			))

			continue
		}

		if _, err := regexp2.Compile(f.Pattern, regexp2.ECMAScript); err != nil {
			r.Logger().Debug("pattern does not compile", "field", name, "error", err)

			findings = append(findings, rule.NewFinding(
				fmt.Sprintf("%s: %q", name, f.Pattern),
				name,
			))
		}
	}

	return rule.FromFindings(findings)
}

// UnsupportedGroup returns the opener of the first "(?" group a browser RegExp rejects, such as the
// inline flags "(?i" or the atomic group "(?>". regexp2 accepts these even in ECMAScript mode.
// Escapes and character classes are skipped.
func UnsupportedGroup(pattern string) (string, bool) {
	inClass := false

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '(' && strings.HasPrefix(pattern[i+1:], "?"):
			rest := pattern[i+2:]
			if !supportedGroup(rest) {
				return "(?" + rest[:min(1, len(rest))], true
			}
		}
	}

	return "", false
}

// supportedGroup reports whether the text after "(?" opens a group JavaScript understands:
// non-capturing, lookahead, lookbehind or named capture.
func supportedGroup(rest string) bool {
	if rest == "" {
		return false
	}

	switch rest[0] {
	case ':', '=', '!':
		return true
	case '<':
		if len(rest) < 2 {
			return false
		}

		next := rest[1]

		return next == '=' || next == '!' || next == '_' || next == '$' ||
			(next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z')
	default:
		return false
	}
}

// IsPortLike reports whether the field name or title contains "port", case-insensitively.
func IsPortLike(name string, f *schema.FieldSchema) bool {
	return containsFold(name, "port") || (f != nil && containsFold(f.Title, "port"))
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

func formatBound(v *float64) string {
	if v == nil {
		return "unset"
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
