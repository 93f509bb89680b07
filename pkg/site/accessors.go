package site

import (
	"slices"
	"strings"
)

// ComponentsOf returns, in original order, the components whose kind is one
// of kinds.
func (s Section) ComponentsOf(kinds ...ComponentKind) []Component {
	var out []Component
	for _, c := range s.Components {
		if slices.Contains(kinds, c.Kind) {
			out = append(out, c)
		}
	}
	return out
}

// FirstOf returns the first component of the given kind.
func (s Section) FirstOf(kind ComponentKind) (Component, bool) {
	for _, c := range s.Components {
		if c.Kind == kind {
			return c, true
		}
	}
	return Component{}, false
}

// Has reports whether the section holds a component of the given kind.
func (s Section) Has(kind ComponentKind) bool {
	_, ok := s.FirstOf(kind)
	return ok
}

// Fields returns the form-field-like components in order.
func (s Section) Fields() []Component {
	var out []Component
	for _, c := range s.Components {
		if c.Kind.IsField() {
			out = append(out, c)
		}
	}
	return out
}

// FirstItems returns the list content of the first component of the given
// kind, or nil when there is none.
func (s Section) FirstItems(kind ComponentKind) []string {
	if c, ok := s.FirstOf(kind); ok {
		return c.ListItems()
	}
	return nil
}

// Subtitle returns the first h3 entry, or "" when there is none.
func (s Section) Subtitle() string {
	if len(s.H3) == 0 {
		return ""
	}
	return s.H3[0]
}

// ListItems returns Items when non-empty, else Fields, else nil. Blank
// entries are dropped.
func (c Component) ListItems() []string {
	if items := nonBlank(c.Items); len(items) > 0 {
		return items
	}
	if fields := nonBlank(c.Fields); len(fields) > 0 {
		return fields
	}
	return nil
}

// DisplayText returns the trimmed placeholder, else the trimmed label, else
// fallback.
func (c Component) DisplayText(fallback string) string {
	if ph := strings.TrimSpace(c.Placeholder); ph != "" {
		return ph
	}
	if lab := strings.TrimSpace(c.Label); lab != "" {
		return lab
	}
	return fallback
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
