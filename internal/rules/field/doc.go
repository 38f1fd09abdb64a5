// Package field implements the JSON Schema rules: field metadata, type constraints,
// required-field integrity, enum alignment, and format tags.
package field
