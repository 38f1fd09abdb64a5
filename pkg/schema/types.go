// Package schema provides the adapter configuration schema types consumed by the rule evaluator.
package schema

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/cockroachdb/errors"
)

// FieldType is the primitive JSON Schema type tag of a field.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
)

// IsNumeric returns true for integer and number types.
func (t FieldType) IsNumeric() bool {
	return t == TypeInteger || t == TypeNumber
}

// UnmarshalJSON accepts either a single type name or a type array such as ["string", "null"].
// For arrays the first non-null member wins.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*t = ""
		return nil
	}

	if data[0] == '[' {
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return errors.Wrap(err, "field type")
		}

		*t = ""

		for _, name := range names {
			if name != "null" {
				*t = FieldType(name)
				break
			}
		}

		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "field type")
	}

	*t = FieldType(name)

	return nil
}

// FieldSchema is the per-field metadata of a ConfigSchema.
type FieldSchema struct {
	Type        FieldType       `json:"type,omitempty"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Default     json.RawMessage `json:"default,omitempty"`
	Minimum     *float64        `json:"minimum,omitempty"`
	Maximum     *float64        `json:"maximum,omitempty"`
	MinLength   *int            `json:"minLength,omitempty"`
	MaxLength   *int            `json:"maxLength,omitempty"`
	Pattern     string          `json:"pattern,omitempty"`
	Format      string          `json:"format,omitempty"`
	Enum        []any           `json:"enum,omitempty"`
	EnumNames   []string        `json:"enumNames,omitempty"`
}

// HasDefault reports whether the field declares a default value, including an explicit null.
func (f *FieldSchema) HasDefault() bool {
	return len(f.Default) > 0
}

// HasNumericBounds reports whether minimum or maximum is declared.
func (f *FieldSchema) HasNumericBounds() bool {
	return f.Minimum != nil || f.Maximum != nil
}

// HasLengthBounds reports whether minLength or maxLength is declared.
func (f *FieldSchema) HasLengthBounds() bool {
	return f.MinLength != nil || f.MaxLength != nil
}

// ConfigSchema describes the configurable fields of one adapter type.
type ConfigSchema struct {
	Type       string                  `json:"type,omitempty"`
	Properties map[string]*FieldSchema `json:"properties,omitempty"`
	Required   []string                `json:"required,omitempty"`
}

// Field returns the named field schema.
func (c *ConfigSchema) Field(name string) (*FieldSchema, bool) {
	if c == nil || c.Properties == nil {
		return nil, false
	}

	f, ok := c.Properties[name]

	return f, ok && f != nil
}

// FieldNames returns the property names in sorted order so rule output is deterministic.
func (c *ConfigSchema) FieldNames() []string {
	if c == nil {
		return nil
	}

	names := make([]string, 0, len(c.Properties))

	for name, f := range c.Properties {
		if f != nil {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// IsRequired reports whether name appears in the required list.
func (c *ConfigSchema) IsRequired(name string) bool {
	if c == nil {
		return false
	}

	for _, r := range c.Required {
		if r == name {
			return true
		}
	}

	return false
}

// AdapterType is one entry of the adapter types document.
type AdapterType struct {
	ID           string        `json:"id"`
	Protocol     string        `json:"protocol"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	Version      string        `json:"version,omitempty"`
	Author       string        `json:"author,omitempty"`
	Category     string        `json:"category,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Capabilities []string      `json:"capabilities,omitempty"`
	ConfigSchema *ConfigSchema `json:"configSchema"`
	UISchema     *UISchema     `json:"uiSchema,omitempty"`
}

// AdapterTypeList is the response envelope of the adapter types endpoint.
type AdapterTypeList struct {
	Items []*AdapterType `json:"items"`
}
