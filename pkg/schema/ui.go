package schema

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// KeyTabs is the reserved UI Schema key holding tab definitions.
	KeyTabs = "ui:tabs"

	// KeyOrder is the reserved UI Schema key holding the field order.
	KeyOrder = "ui:order"

	// OrderWildcard stands for "all remaining fields" in ui:order.
	OrderWildcard = "*"

	uiPrefix = "ui:"
)

// TabSpec is one entry of ui:tabs.
type TabSpec struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Properties []string `json:"properties"`
}

// FieldUI holds the layout hints of a single field.
type FieldUI struct {
	Widget      string
	Disabled    *bool
	Collapsible *bool
	TitleKey    string

	// Ignored lists known keys whose values had the wrong JSON type.
	Ignored []string
}

// IsDisabled reports whether ui:disabled is hard-coded to true.
func (f *FieldUI) IsDisabled() bool {
	return f != nil && f.Disabled != nil && *f.Disabled
}

// IsCollapsible reports whether the field is marked collapsible.
func (f *FieldUI) IsCollapsible() bool {
	return f != nil && f.Collapsible != nil && *f.Collapsible
}

// UnmarshalJSON reads the known ui:* keys and ignores everything else. A known key holding the wrong
// type is recorded in Ignored instead of failing the whole document.
func (f *FieldUI) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var collapsable *bool

	decodeKey(raw, "ui:widget", &f.Widget, &f.Ignored)
	decodeKey(raw, "ui:disabled", &f.Disabled, &f.Ignored)
	decodeKey(raw, "ui:collapsible", &f.Collapsible, &f.Ignored)
	decodeKey(raw, "ui:collapsable", &collapsable, &f.Ignored)
	decodeKey(raw, "titleKey", &f.TitleKey, &f.Ignored)

	if f.Collapsible == nil {
		f.Collapsible = collapsable
	}

	return nil
}

// decodeKey stores raw[key] into dst, leaving dst untouched and recording the key when the type is wrong.
func decodeKey[T any](raw map[string]json.RawMessage, key string, dst *T, ignored *[]string) {
	value, ok := raw[key]
	if !ok {
		return
	}

	var v T
	if err := json.Unmarshal(value, &v); err != nil {
		*ignored = append(*ignored, key)
		return
	}

	*dst = v
}

// UISchema holds the layout hints of an adapter form.
type UISchema struct {
	// Tabs is nil when ui:tabs is absent.
	Tabs []TabSpec

	// Order is nil when ui:order is absent.
	Order []string

	// Fields maps field names to their UI entries.
	Fields map[string]*FieldUI
}

// Field returns the UI entry of a field, or nil.
func (u *UISchema) Field(name string) *FieldUI {
	if u == nil || u.Fields == nil {
		return nil
	}

	return u.Fields[name]
}

// IgnoredKeys returns "field.key" for every per-field entry dropped because of a type mismatch,
// sorted by field name.
func (u *UISchema) IgnoredKeys() []string {
	if u == nil {
		return nil
	}

	var out []string

	for name, f := range u.Fields {
		for _, key := range f.Ignored {
			out = append(out, name+"."+key)
		}
	}

	sort.Strings(out)

	return out
}

// HasTabs reports whether ui:tabs was declared.
func (u *UISchema) HasTabs() bool {
	return u != nil && u.Tabs != nil
}

// HasOrder reports whether ui:order was declared.
func (u *UISchema) HasOrder() bool {
	return u != nil && u.Order != nil
}

// UnmarshalJSON splits the flat UI Schema object into reserved keys and per-field entries.
func (u *UISchema) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "ui schema")
	}

	u.Fields = make(map[string]*FieldUI)

	for key, value := range raw {
		switch {
		case key == KeyTabs:
			tabs := []TabSpec{}
			if err := json.Unmarshal(value, &tabs); err != nil {
				return errors.Wrapf(err, "ui schema %s", KeyTabs)
			}

			u.Tabs = tabs
		case key == KeyOrder:
			order := []string{}
			if err := json.Unmarshal(value, &order); err != nil {
				return errors.Wrapf(err, "ui schema %s", KeyOrder)
			}

			u.Order = order
		case strings.HasPrefix(key, uiPrefix):
			// form-level options such as ui:submitButtonOptions
		default:
			if !isObject(value) {
				continue
			}

			entry := &FieldUI{}
			if err := json.Unmarshal(value, entry); err != nil {
				return errors.Wrapf(err, "ui schema %q", key)
			}

			u.Fields[key] = entry
		}
	}

	return nil
}

// MarshalJSON writes the UI Schema back in its flat form.
func (u *UISchema) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Fields)+2)

	if u.Tabs != nil {
		out[KeyTabs] = u.Tabs
	}

	if u.Order != nil {
		out[KeyOrder] = u.Order
	}

	for name, f := range u.Fields {
		entry := map[string]any{}

		if f.Widget != "" {
			entry["ui:widget"] = f.Widget
		}

		if f.Disabled != nil {
			entry["ui:disabled"] = *f.Disabled
		}

		if f.Collapsible != nil {
			entry["ui:collapsible"] = *f.Collapsible
		}

		if f.TitleKey != "" {
			entry["titleKey"] = f.TitleKey
		}

		out[name] = entry
	}

	return json.Marshal(out)
}

func isObject(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)

	return len(trimmed) > 0 && trimmed[0] == '{'
}
