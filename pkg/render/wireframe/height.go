package wireframe

import "github.com/matzehuels/wireframe/pkg/site"

const (
	headerBlock   = 72 // heading row above a section's content origin
	bottomPadding = 8

	rowH    = 34 // generic component row
	rowGap  = 10
	faqRowH = 44
	stepRow = 36

	heroBand     = 240
	featureCardH = 140

	contentDivider = 120 // divider offset below the content origin
	contentHeading = 48  // heading offset below the divider
	bulletOffset   = 32  // first bullet below the heading
	bulletRowH     = 22
	paragraphLead  = 96

	formHeader = 70
	formSubmit = 38

	ctaBody = 90 + 34
)

// SectionHeight returns the height of s under the default constants.
func SectionHeight(s site.Section) int {
	return DefaultConfig().SectionHeight(s)
}

// SectionHeight returns the total height of s: the content-driven height or
// the per-kind minimum, whichever is larger.
func (c Config) SectionHeight(s site.Section) int {
	return max(c.Minimum(s.Kind), headerBlock+c.innerBottom(s)+bottomPadding)
}

// innerBottom is the distance from the content origin to where the
// section's content ends.
func (c Config) innerBottom(s site.Section) int {
	if s.Kind.IsCTA() {
		return ctaBody + 18
	}
	switch s.Kind {
	case site.SectionHero:
		return heroBand + 14

	case site.SectionFeatures:
		return featureCardH + 14

	case site.SectionContent:
		rows := c.BulletRows.Min
		if items := s.FirstItems(site.ComponentList); len(items) > 0 {
			rows = c.BulletRows.Apply(len(items))
		}
		bullets := contentDivider + contentHeading + bulletOffset + rows*bulletRowH
		texts := len(s.ComponentsOf(site.ComponentText))
		paragraphs := paragraphLead + max(0, texts-1)*bulletRowH
		return max(bullets, paragraphs) + 18

	case site.SectionFAQ:
		return c.FAQRows.Apply(len(s.FirstItems(site.ComponentAccordion)))*faqRowH + 10

	case site.SectionProof:
		if s.Has(site.ComponentStats) {
			return 110 + 14
		}
		return 90 + 14

	case site.SectionSteps:
		return c.StepRows.Apply(len(s.FirstItems(site.ComponentList)))*stepRow + 18

	case site.SectionForm:
		return formHeader + c.FormRows.Apply(len(s.Fields()))*stepRow + formSubmit + 18

	default:
		return c.genericRows(s)*(rowH+rowGap) + 18
	}
}

func (c Config) genericRows(s site.Section) int {
	if len(s.Components) == 0 {
		return 3
	}
	return min(c.GenericRows, len(s.Components))
}
