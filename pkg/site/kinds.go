package site

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Canonical normalizes a type tag: surrounding whitespace is trimmed, the
// tag is lowercased, and underscores and whitespace become hyphens.
func Canonical(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, s)
}

// SectionKind is the closed set of section layouts the renderer knows.
type SectionKind int

const (
	SectionGeneric SectionKind = iota
	SectionHero
	SectionContent
	SectionFeatures
	SectionSteps
	SectionProof
	SectionFAQ
	SectionCTA
	SectionFooterCTA
	SectionForm
	SectionGallery
)

var sectionKindNames = map[SectionKind]string{
	SectionGeneric:   "section",
	SectionHero:      "hero",
	SectionContent:   "content",
	SectionFeatures:  "features",
	SectionSteps:     "steps",
	SectionProof:     "proof",
	SectionFAQ:       "faq",
	SectionCTA:       "cta",
	SectionFooterCTA: "footer-cta",
	SectionForm:      "form",
	SectionGallery:   "gallery",
}

var sectionKindByTag = map[string]SectionKind{
	"section":               SectionGeneric,
	"hero":                  SectionHero,
	"content":               SectionContent,
	"features":              SectionFeatures,
	"steps":                 SectionSteps,
	"proof":                 SectionProof,
	"faq":                   SectionFAQ,
	"cta":                   SectionCTA,
	"call-to-action":        SectionCTA,
	"cta-section":           SectionCTA,
	"footer-cta":            SectionFooterCTA,
	"footer-call-to-action": SectionFooterCTA,
	"form":                  SectionForm,
	"gallery":               SectionGallery,
}

// ParseSectionKind maps a raw type tag to its kind. Unknown tags yield
// SectionGeneric.
func ParseSectionKind(tag string) SectionKind {
	if k, ok := sectionKindByTag[Canonical(tag)]; ok {
		return k
	}
	return SectionGeneric
}

// String returns the canonical tag for k.
func (k SectionKind) String() string {
	if s, ok := sectionKindNames[k]; ok {
		return s
	}
	return sectionKindNames[SectionGeneric]
}

// IsCTA reports whether k is one of the call-to-action variants.
func (k SectionKind) IsCTA() bool { return k == SectionCTA || k == SectionFooterCTA }

// MarshalJSON encodes k as its canonical tag.
func (k SectionKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON decodes a raw tag; unknown tags become SectionGeneric.
func (k *SectionKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*k = SectionGeneric
		return nil
	}
	*k = ParseSectionKind(s)
	return nil
}

// ComponentKind is the closed set of component types.
type ComponentKind int

const (
	ComponentGeneric ComponentKind = iota
	ComponentText
	ComponentImage
	ComponentButton
	ComponentNav
	ComponentCards
	ComponentList
	ComponentQuote
	ComponentStats
	ComponentForm
	ComponentAccordion
	ComponentDivider
	ComponentFormField
	ComponentField
	ComponentInput
	ComponentTextarea
	ComponentSelect
	ComponentCheckbox
	ComponentRadio
)

var componentKindNames = map[ComponentKind]string{
	ComponentGeneric:   "component",
	ComponentText:      "text",
	ComponentImage:     "image",
	ComponentButton:    "button",
	ComponentNav:       "nav",
	ComponentCards:     "cards",
	ComponentList:      "list",
	ComponentQuote:     "quote",
	ComponentStats:     "stats",
	ComponentForm:      "form",
	ComponentAccordion: "accordion",
	ComponentDivider:   "divider",
	ComponentFormField: "form-field",
	ComponentField:     "field",
	ComponentInput:     "input",
	ComponentTextarea:  "textarea",
	ComponentSelect:    "select",
	ComponentCheckbox:  "checkbox",
	ComponentRadio:     "radio",
}

var componentKindByTag = func() map[string]ComponentKind {
	m := make(map[string]ComponentKind, len(componentKindNames)+1)
	for k, name := range componentKindNames {
		if k != ComponentGeneric {
			m[name] = k
		}
	}
	m["formfield"] = ComponentFormField
	return m
}()

// ParseComponentKind maps a raw type tag to its kind. Unknown tags yield
// ComponentGeneric.
func ParseComponentKind(tag string) ComponentKind {
	if k, ok := componentKindByTag[Canonical(tag)]; ok {
		return k
	}
	return ComponentGeneric
}

// String returns the canonical tag for k.
func (k ComponentKind) String() string {
	if s, ok := componentKindNames[k]; ok {
		return s
	}
	return componentKindNames[ComponentGeneric]
}

// IsField reports whether k is a form-field-like kind.
func (k ComponentKind) IsField() bool {
	return k >= ComponentFormField && k <= ComponentRadio
}

// MarshalJSON encodes k as its canonical tag.
func (k ComponentKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON decodes a raw tag; unknown tags become ComponentGeneric.
func (k *ComponentKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*k = ComponentGeneric
		return nil
	}
	*k = ParseComponentKind(s)
	return nil
}
