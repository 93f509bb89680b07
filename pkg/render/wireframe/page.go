package wireframe

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/wireframe/pkg/render/styles"
	"github.com/matzehuels/wireframe/pkg/site"
)

const (
	logoW, logoH   = 120, 44
	headerCTAW     = 130
	headerCTAH     = 34
	navGap         = 22
	navRightGap    = 18
	footerLogoW    = 140
	footerLogoH    = 44
	inputW, inputH = 340, 38

	// OmittedCaption marks a page whose sections did not all fit.
	OmittedCaption = "… (more sections not shown)"

	// TimestampLayout formats the render timestamp caption.
	TimestampLayout = "2006-01-02 15:04"
)

var footerLinks = []string{"Home", "About", "News", "Read Me"}

// Option configures a page render.
type Option func(*renderer)

type renderer struct {
	cfg     Config
	nav     Nav
	style   styles.Style
	overlay bool
	now     func() time.Time
}

// WithNav sets the header navigation. Without it the built-in default is
// used.
func WithNav(n Nav) Option { return func(r *renderer) { r.nav = n } }

// WithStyle sets the stylesheet theme.
func WithStyle(s styles.Style) Option { return func(r *renderer) { r.style = s } }

// WithOverlay toggles the per-section semantic overlay line.
func WithOverlay(on bool) Option { return func(r *renderer) { r.overlay = on } }

// WithClock sets the time source for the render timestamp.
func WithClock(now func() time.Time) Option { return func(r *renderer) { r.now = now } }

// WithConfig replaces the layout constants.
func WithConfig(c Config) Option { return func(r *renderer) { r.cfg = c } }

func newRenderer(opts ...Option) renderer {
	r := renderer{
		cfg:     DefaultConfig(),
		nav:     DefaultNav(),
		style:   styles.Default,
		overlay: true,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Default
	}
	return r
}

// Placement is a section positioned on the page.
type Placement struct {
	Section site.Section
	// Index is the section's position in the page layout, or -1 for a
	// synthesized hero.
	Index  int
	Top    int
	Height int
}

// Bottom returns the y coordinate just below the section.
func (p Placement) Bottom() int { return p.Top + p.Height }

// PagePlan is the vertical layout of a page body.
type PagePlan struct {
	Placements []Placement
	// Omitted counts the trailing sections that did not fit.
	Omitted int
	// Cursor is where the next section would have started.
	Cursor int
	// Limit is the lowest y a section may reach.
	Limit int
}

// Plan computes section placements for p. The first slot always holds a
// hero: the page's own when its first section is one, otherwise one
// synthesized from the headline. Remaining sections follow in order, each
// one gap below the previous, until the first that would cross the limit
// above the newsletter band; it and everything after are omitted.
func Plan(p site.Page, cfg Config) PagePlan {
	g := cfg.geometry()
	plan := PagePlan{Cursor: g.bodyTop, Limit: g.limit}

	sections := p.Layout.Sections
	start := 0
	place := func(s site.Section, index int) {
		h := cfg.SectionHeight(s)
		plan.Placements = append(plan.Placements, Placement{Section: s, Index: index, Top: plan.Cursor, Height: h})
		plan.Cursor += h + cfg.SectionGap
	}

	if len(sections) > 0 && sections[0].Kind == site.SectionHero {
		place(sections[0], 0)
		start = 1
	} else {
		place(heroPlaceholder(headline(p)), -1)
	}

	for i := start; i < len(sections); i++ {
		if plan.Cursor+cfg.SectionHeight(sections[i]) > g.limit {
			plan.Omitted = len(sections) - i
			break
		}
		place(sections[i], i)
	}
	return plan
}

func headline(p site.Page) string {
	if h1 := strings.TrimSpace(p.Layout.H1); h1 != "" {
		return h1
	}
	return pageName(p)
}

func pageName(p site.Page) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return "Page"
}

func pageSlug(p site.Page) string {
	if slug := strings.TrimSpace(p.Slug); slug != "" {
		return slug
	}
	return "/"
}

func heroPlaceholder(h1 string) site.Section {
	s := site.NewSection("auto-hero", "hero")
	s.Label = "Hero"
	s.H2 = h1
	return s
}

// Render draws p as a complete SVG document.
func Render(p site.Page, opts ...Option) []byte {
	r := newRenderer(opts...)
	return r.render(p)
}

func (r *renderer) render(p site.Page) []byte {
	cfg := r.cfg
	g := cfg.geometry()
	cv := &canvas{}

	fmt.Fprintf(&cv.buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		cfg.CanvasWidth, cfg.CanvasHeight, cfg.CanvasWidth, cfg.CanvasHeight)
	r.style.RenderDefs(&cv.buf)
	cv.plainRect(0, 0, float64(cfg.CanvasWidth), float64(cfg.CanvasHeight), "page-bg")
	cv.plainRect(float64(g.frameX), float64(g.frameY), float64(g.frameW), float64(g.frameH), "page-frame")
	cv.text(float64(g.frameX), float64(g.frameY-10), fmt.Sprintf("%s (%s)", pageName(p), pageSlug(p)), "meta")

	r.header(cv, g)

	plan := Plan(p, cfg)
	for _, pl := range plan.Placements {
		index := pl.Index
		if index < 0 {
			index = 0
		}
		r.drawSection(cv, g.contentX, pl.Top, g.contentW, pl.Height, pl.Section, index)
	}
	if plan.Omitted > 0 {
		cv.text(float64(g.contentX), float64(plan.Cursor+18), OmittedCaption, "small")
	}

	r.newsletter(cv, g)
	r.footer(cv, g)

	ts := r.now().Format(TimestampLayout)
	cv.text(float64(g.frameX+g.frameW-260), float64(g.frameY+g.frameH+18), "Rendered: "+ts, "small")

	cv.buf.WriteString("</svg>\n")
	return cv.buf.Bytes()
}

func (r *renderer) header(cv *canvas, g geometry) {
	hx, hy := float64(g.headerX), float64(g.headerY)

	cv.rect(hx, hy, logoW, logoH, "sketch", 10)
	cv.cross(hx, hy, logoW, logoH, 8)
	cv.text(hx+18, hy+28, "Logo Here", "small")

	ctaX := g.headerX + g.headerW - headerCTAW
	cv.button(float64(ctaX), hy+6, headerCTAW, headerCTAH, "Take Action", false)

	navY := hy + 28
	for _, item := range PlaceNav(r.nav.labels, ctaX-navRightGap, g.headerX+logoW+navGap, r.cfg.PxPerChar) {
		cv.text(float64(item.X), navY, item.Label, "nav-link")
	}
}

func (r *renderer) newsletter(cv *canvas, g geometry) {
	cx, cw := float64(g.contentX), float64(g.contentW)
	band := float64(g.bandY)

	cv.rect(cx, band, cw, float64(r.cfg.NewsletterHeight), "panel-light", 14)
	cv.centeredText(cx+cw/2, band+70, "Newsletter Sign Up", "h1")
	cv.centeredText(cx+cw/2, band+98, loremLong, "small muted")

	ix := cx + cw/2 - inputW/2 - 80
	iy := band + 130
	cv.rect(ix, iy, inputW, inputH, "sketch", 8)
	cv.button(ix+inputW+18, iy, 150, inputH, "Action Button", true)
}

func (r *renderer) footer(cv *canvas, g geometry) {
	cx, cw := float64(g.contentX), float64(g.contentW)
	fy := float64(g.footerY)

	cv.rect(cx, fy, cw, float64(r.cfg.FooterHeight), "panel-dark", 14)

	lx := cx + cw/2 - footerLogoW/2
	cv.rect(lx, fy+18, footerLogoW, footerLogoH, "sketch", 10)
	cv.cross(lx, fy+18, footerLogoW, footerLogoH, 8)

	total := (len(footerLinks) - 1) * navGap
	for _, l := range footerLinks {
		total += styles.EstimateWidthPx(l, r.cfg.PxPerChar)
	}
	x := cx + cw/2 - float64(total)/2
	for _, l := range footerLinks {
		cv.text(x, fy+92, l, "footer-link")
		x += float64(styles.EstimateWidthPx(l, r.cfg.PxPerChar) + navGap)
	}
}
