package catalog

import "strings"

// Kind identifies one of the three record collections.
type Kind string

const (
	KindTag      Kind = "tag"
	KindTool     Kind = "tool"
	KindMaterial Kind = "material"
)

// AllKinds returns every kind in display order.
func AllKinds() []Kind {
	return []Kind{KindTag, KindTool, KindMaterial}
}

// ParseKind converts user input to a Kind. Singular and plural forms are
// accepted case-insensitively ("tag", "Tags", "materials").
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tag", "tags":
		return KindTag, true
	case "tool", "tools":
		return KindTool, true
	case "material", "materials":
		return KindMaterial, true
	default:
		return "", false
	}
}

// Tag is a lightweight categorization label.
type Tag struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// UsedTool is a tool referenced by a project, with a link to its homepage.
type UsedTool struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

// UsedMaterial is a material referenced by a project, with a link to its source.
type UsedMaterial struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Entry is a kind-agnostic view of a record, used where callers handle all
// kinds uniformly (tables, JSON listings).
type Entry struct {
	Kind Kind   `json:"kind"`
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Record is the constraint satisfied by the three record types.
type Record interface {
	Tag | UsedTool | UsedMaterial

	// RecordID returns the identity key within the record's collection.
	RecordID() int
	// Validate reports the first field that violates the record invariants.
	Validate() error
	entry() Entry
}

func (t Tag) RecordID() int { return t.ID }

func (t Tag) Validate() error {
	return validateBase(t.ID, t.Name)
}

func (t Tag) entry() Entry {
	return Entry{Kind: KindTag, ID: t.ID, Name: t.Name}
}

func (t UsedTool) RecordID() int { return t.ID }

func (t UsedTool) Validate() error {
	if err := validateBase(t.ID, t.Name); err != nil {
		return err
	}
	return validateURL(t.URL)
}

func (t UsedTool) entry() Entry {
	return Entry{Kind: KindTool, ID: t.ID, Name: t.Name, URL: t.URL}
}

func (m UsedMaterial) RecordID() int { return m.ID }

func (m UsedMaterial) Validate() error {
	if err := validateBase(m.ID, m.Name); err != nil {
		return err
	}
	return validateURL(m.URL)
}

func (m UsedMaterial) entry() Entry {
	return Entry{Kind: KindMaterial, ID: m.ID, Name: m.Name, URL: m.URL}
}
