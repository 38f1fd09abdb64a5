// Package catalogue holds the static rule metadata table shared by the rule evaluator and the report
// aggregator. The table is parsed once from an embedded YAML document and never mutated afterwards.
package catalogue

import (
	_ "embed"
	"regexp"
	"sync"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// SchemaVersionV1 is the only supported catalogue document version.
const SchemaVersionV1 = "1.0"

var (
	// ErrUnsupportedVersion is returned for catalogue documents with an unknown schemaVersion.
	ErrUnsupportedVersion = errors.New("unsupported catalogue schema version")

	// ErrDuplicateRule is returned when two entries share an identifier.
	ErrDuplicateRule = errors.New("duplicate rule id")

	// ErrInvalidRuleID is returned when an identifier is not a dotted triplet.
	ErrInvalidRuleID = errors.New("invalid rule id")
)

//go:embed rules.yaml
var embedded []byte

var ruleIDPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Metadata describes one rule for reporting purposes.
type Metadata struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Rationale    string   `yaml:"rationale" json:"rationale"`
	SuggestedFix string   `yaml:"suggestedFix" json:"suggestedFix"`
	Severity     Severity `yaml:"severity" json:"severity"`
	ChecklistRef string   `yaml:"checklistRef" json:"checklistRef,omitempty"`

	// Advisory rules log their findings but never fail.
	Advisory bool `yaml:"advisory" json:"advisory,omitempty"`
}

type document struct {
	SchemaVersion string     `yaml:"schemaVersion"`
	Rules         []Metadata `yaml:"rules"`
}

// Catalogue is a read-only rule metadata table.
type Catalogue struct {
	entries []Metadata
	byID    map[string]int
}

// Parse builds a Catalogue from a YAML document.
func Parse(data []byte) (*Catalogue, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse rule catalogue")
	}

	if doc.SchemaVersion != SchemaVersionV1 {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "%q", doc.SchemaVersion)
	}

	c := &Catalogue{
		entries: make([]Metadata, 0, len(doc.Rules)),
		byID:    make(map[string]int, len(doc.Rules)),
	}

	for _, m := range doc.Rules {
		if !ruleIDPattern.MatchString(m.ID) {
			return nil, errors.Wrapf(ErrInvalidRuleID, "%q", m.ID)
		}

		if _, ok := c.byID[m.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateRule, "%s", m.ID)
		}

		c.byID[m.ID] = len(c.entries)
		c.entries = append(c.entries, m)
	}

	return c, nil
}

// Lookup returns the metadata for a rule id. Unknown ids report false.
func (c *Catalogue) Lookup(id string) (Metadata, bool) {
	if c == nil {
		return Metadata{}, false
	}

	idx, ok := c.byID[id]
	if !ok {
		return Metadata{}, false
	}

	return c.entries[idx], true
}

// Has reports whether the catalogue knows the rule id.
func (c *Catalogue) Has(id string) bool {
	_, ok := c.Lookup(id)

	return ok
}

// All returns a copy of every entry in document order.
func (c *Catalogue) All() []Metadata {
	out := make([]Metadata, len(c.entries))
	copy(out, c.entries)

	return out
}

// Len returns the number of entries.
func (c *Catalogue) Len() int {
	return len(c.entries)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the process-wide catalogue parsed from the embedded table.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(errors.Wrap(err, "embedded rule catalogue"))
		}

		defaultCat = c
	})

	return defaultCat
}

// Lookup is shorthand for Default().Lookup.
func Lookup(id string) (Metadata, bool) {
	return Default().Lookup(id)
}

// Position returns the document index of a rule id. Unknown ids report Len().
func (c *Catalogue) Position(id string) int {
	idx, ok := c.byID[id]
	if !ok {
		return len(c.entries)
	}

	return idx
}
