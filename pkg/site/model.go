package site

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Document is the renderer input: one Page per site route.
type Document struct {
	Pages []Page `json:"pages"`
}

// Page is a single route of the site.
type Page struct {
	Name   string `json:"page"`
	Slug   string `json:"slug"`
	Layout Layout `json:"layout"`
}

// Layout is the page body: a headline and ordered sections.
type Layout struct {
	H1       string    `json:"h1"`
	Sections []Section `json:"sections"`
}

// Section is one visually distinct block of a page.
type Section struct {
	ID    string      `json:"id"`
	Kind  SectionKind `json:"-"`
	Tag   string      `json:"type"` // canonicalized raw tag, kept for captions
	Label string      `json:"label"`
	H2    string      `json:"h2"`
	H3    StringList  `json:"h3"`

	Components []Component `json:"components"`
	Semantic   *Semantic   `json:"semantic,omitempty"`
}

// Component is the smallest content unit inside a section.
type Component struct {
	Kind        ComponentKind `json:"type"`
	Label       string        `json:"label"`
	Placeholder string        `json:"placeholder,omitempty"`
	Fields      StringList    `json:"fields,omitempty"`
	Items       StringList    `json:"items,omitempty"`
}

// Semantic is the optional descriptive overlay attached by enrichment.
type Semantic struct {
	Intent          string     `json:"intent"`
	NarrativeRole   string     `json:"narrative_role"`
	Tone            StringList `json:"tone"`
	SupportingFacts StringList `json:"supporting_facts"`
	SuccessSignal   string     `json:"success_signal"`
}

// Sitemap is the optional external navigation source.
type Sitemap struct {
	PrimaryNav StringList `json:"primary_nav"`
}

// NewSection builds a section with its kind and tag derived from tag.
func NewSection(id, tag string, components ...Component) Section {
	return Section{ID: id, Kind: ParseSectionKind(tag), Tag: Canonical(tag), Components: components}
}

// IsEmpty reports whether the overlay carries nothing worth showing: no
// facts and an intent that is blank or "unknown".
func (s *Semantic) IsEmpty() bool {
	if s == nil {
		return true
	}
	intent := strings.TrimSpace(s.Intent)
	return len(s.SupportingFacts) == 0 && (intent == "" || strings.EqualFold(intent, "unknown"))
}

// UnmarshalJSON accepts "name" as an alias for "page".
func (p *Page) UnmarshalJSON(data []byte) error {
	type plain Page
	var raw struct {
		plain
		Alt string `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Page(raw.plain)
	if strings.TrimSpace(p.Name) == "" {
		p.Name = raw.Alt
	}
	return nil
}

// UnmarshalJSON canonicalizes the section type. A missing or non-string
// type decodes as the generic kind.
func (s *Section) UnmarshalJSON(data []byte) error {
	type plain Section
	var raw struct {
		plain
		Type json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Section(raw.plain)
	tag, _ := scalarString(raw.Type)
	s.Tag = Canonical(tag)
	s.Kind = ParseSectionKind(tag)
	return nil
}

// UnmarshalJSON accepts camelCase aliases for the snake_case keys.
func (s *Semantic) UnmarshalJSON(data []byte) error {
	type plain Semantic
	var raw struct {
		plain
		NarrativeRoleAlt   string     `json:"narrativeRole"`
		SupportingFactsAlt StringList `json:"supportingFacts"`
		SuccessSignalAlt   string     `json:"successSignal"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Semantic(raw.plain)
	if s.NarrativeRole == "" {
		s.NarrativeRole = raw.NarrativeRoleAlt
	}
	if len(s.SupportingFacts) == 0 {
		s.SupportingFacts = raw.SupportingFactsAlt
	}
	if s.SuccessSignal == "" {
		s.SuccessSignal = raw.SuccessSignalAlt
	}
	return nil
}

// StringList is a list of display strings decoded leniently: a single
// string, or an array whose scalar entries are coerced to text. Blank
// entries are dropped.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = nil
	if len(data) == 0 {
		return nil
	}
	if data[0] != '[' {
		if s, ok := scalarString(data); ok && strings.TrimSpace(s) != "" {
			*l = StringList{s}
		}
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	out := make(StringList, 0, len(elems))
	for _, e := range elems {
		if s, ok := scalarString(e); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	*l = out
	return nil
}

// scalarString returns the textual form of a JSON scalar. Strings are
// unquoted; numbers and booleans keep their literal text. Null, objects and
// arrays report false.
func scalarString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[', 'n':
		return "", false
	default:
		return string(raw), true
	}
}
