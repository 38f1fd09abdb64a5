// Package layout implements the UI Schema rules: tab structure, field order, widgets,
// and per-field display flags. Except for the presence check, every rule here
// is scoped to adapters that ship a UI Schema.
package layout
