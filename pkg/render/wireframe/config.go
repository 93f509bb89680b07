package wireframe

import (
	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/site"
)

// Clamp bounds a content-driven count.
type Clamp struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// Apply returns n limited to [Min, Max].
func (c Clamp) Apply(n int) int {
	return max(c.Min, min(c.Max, n))
}

// Config holds the layout constants. The zero value is not usable; start
// from DefaultConfig and override fields.
type Config struct {
	CanvasWidth  int `toml:"canvas_width"`
	CanvasHeight int `toml:"canvas_height"`
	Margin       int `toml:"margin"`
	Gutter       int `toml:"gutter"`

	HeaderHeight     int `toml:"header_height"`
	SectionGap       int `toml:"section_gap"`
	SectionPad       int `toml:"section_pad"`
	NewsletterHeight int `toml:"newsletter_height"`
	FooterHeight     int `toml:"footer_height"`

	// TwoColumnThreshold is the bullet count at which a content section
	// switches from list+image to two balanced columns.
	TwoColumnThreshold int `toml:"two_column_threshold"`
	// SingleColumnItems caps the bullets shown in list+image mode.
	SingleColumnItems int `toml:"single_column_items"`

	BulletRows  Clamp `toml:"bullet_rows"`
	FAQRows     Clamp `toml:"faq_rows"`
	StepRows    Clamp `toml:"step_rows"`
	FormRows    Clamp `toml:"form_rows"`
	GenericRows int   `toml:"generic_rows"`

	PxPerChar float64 `toml:"px_per_char"`

	// Minimums is the per-kind height floor, keyed by canonical kind name.
	// Kinds missing from the map use the generic floor.
	Minimums map[string]int `toml:"minimums"`
}

// DefaultConfig returns the stock layout constants.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:  1200,
		CanvasHeight: 1850,
		Margin:       36,
		Gutter:       18,

		HeaderHeight:     70,
		SectionGap:       18,
		SectionPad:       18,
		NewsletterHeight: 220,
		FooterHeight:     140,

		TwoColumnThreshold: 8,
		SingleColumnItems:  10,

		BulletRows:  Clamp{Min: 4, Max: 12},
		FAQRows:     Clamp{Min: 4, Max: 10},
		StepRows:    Clamp{Min: 3, Max: 8},
		FormRows:    Clamp{Min: 3, Max: 6},
		GenericRows: 6,

		PxPerChar: 7.0,

		Minimums: defaultMinimums(),
	}
}

func defaultMinimums() map[string]int {
	return map[string]int{
		site.SectionHero.String():      360,
		site.SectionFeatures.String():  260,
		site.SectionContent.String():   280,
		site.SectionProof.String():     210,
		site.SectionSteps.String():     240,
		site.SectionFAQ.String():       220,
		site.SectionCTA.String():       160,
		site.SectionFooterCTA.String(): 160,
		site.SectionForm.String():      240,
		site.SectionGallery.String():   240,
		site.SectionGeneric.String():   220,
	}
}

// Minimum returns the height floor for kind.
func (c Config) Minimum(kind site.SectionKind) int {
	if v, ok := c.Minimums[kind.String()]; ok {
		return v
	}
	if v, ok := c.Minimums[site.SectionGeneric.String()]; ok {
		return v
	}
	return defaultMinimums()[site.SectionGeneric.String()]
}

// Validate checks that the constants describe a drawable page: every
// dimension positive, clamps ordered, and room for at least the hero above
// the newsletter band.
func (c Config) Validate() error {
	positive := map[string]int{
		"canvas_width":         c.CanvasWidth,
		"canvas_height":        c.CanvasHeight,
		"header_height":        c.HeaderHeight,
		"newsletter_height":    c.NewsletterHeight,
		"footer_height":        c.FooterHeight,
		"two_column_threshold": c.TwoColumnThreshold,
		"single_column_items":  c.SingleColumnItems,
		"generic_rows":         c.GenericRows,
	}
	for name, v := range positive {
		if v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %d", name, v)
		}
	}
	if c.Margin < 0 || c.Gutter < 0 || c.SectionGap < 0 || c.SectionPad < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "margin, gutter, section_gap and section_pad must not be negative")
	}
	if c.PxPerChar <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "px_per_char must be positive, got %g", c.PxPerChar)
	}
	clamps := map[string]Clamp{
		"bullet_rows": c.BulletRows,
		"faq_rows":    c.FAQRows,
		"step_rows":   c.StepRows,
		"form_rows":   c.FormRows,
	}
	for name, cl := range clamps {
		if cl.Min < 1 || cl.Max < cl.Min {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must satisfy 1 <= min <= max, got [%d, %d]", name, cl.Min, cl.Max)
		}
	}
	if c.SingleColumnItems > c.BulletRows.Max {
		return errors.New(errors.ErrCodeInvalidConfig, "single_column_items (%d) must not exceed bullet_rows.max (%d)", c.SingleColumnItems, c.BulletRows.Max)
	}
	for name, v := range c.Minimums {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "minimum height for %q must not be negative", name)
		}
	}

	g := c.geometry()
	if g.contentW <= 2*c.SectionPad {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas width %d leaves no room for content", c.CanvasWidth)
	}
	if g.bodyTop+c.SectionHeight(heroPlaceholder("")) > g.limit {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas height %d leaves no room for the hero section", c.CanvasHeight)
	}
	return nil
}

// geometry holds the fixed page regions derived from a Config.
type geometry struct {
	frameX, frameY, frameW, frameH int
	headerX, headerY, headerW      int
	contentX, contentW             int
	bodyTop                        int
	bandY, footerY                 int
	limit                          int
}

func (c Config) geometry() geometry {
	var g geometry
	g.frameX = c.Margin
	g.frameY = c.Margin
	g.frameW = c.CanvasWidth - 2*c.Margin
	g.frameH = c.CanvasHeight - 2*c.Margin

	g.headerX = g.frameX + c.Gutter
	g.headerY = g.frameY + c.Gutter
	g.headerW = g.frameW - 2*c.Gutter

	g.contentX = g.headerX
	g.contentW = g.headerW
	g.bodyTop = g.headerY + c.HeaderHeight + 8

	g.footerY = g.frameY + g.frameH - c.FooterHeight - c.Gutter
	g.bandY = g.footerY - c.NewsletterHeight - c.Gutter
	g.limit = g.bandY - c.SectionGap
	return g
}
