package wireframe

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/wireframe/pkg/render/styles"
	"github.com/matzehuels/wireframe/pkg/site"
)

const (
	loremShort  = "Lorem ipsum dolor sit amet,"
	loremLine   = "Lorem ipsum dolor sit amet, consectetur"
	loremLong   = "Lorem ipsum dolor sit amet, consectetur adipiscing elit."
	bulletPad   = "Additional point..."
	heroImageH  = 280
	overlayRune = 60
)

// Bullets is the column split of a content section's bullet block. Every
// column holds exactly Rows entries.
type Bullets struct {
	Columns [][]string
	Rows    int
}

// TwoColumn reports whether the block uses two balanced list columns.
func (b Bullets) TwoColumn() bool { return len(b.Columns) == 2 }

// HasImage reports whether an image placeholder accompanies the list.
func (b Bullets) HasImage() bool { return len(b.Columns) == 1 }

// BulletLayout splits items into the bullet block layout. At or above the
// two-column threshold the first ceil(n/2) items go left and the rest
// right; otherwise a single column sits beside an image placeholder. Short
// columns are padded with filler so every column has the same row count.
func BulletLayout(items []string, cfg Config) Bullets {
	if len(items) >= cfg.TwoColumnThreshold {
		items = items[:min(len(items), cfg.BulletRows.Max)]
		leftN := (len(items) + 1) / 2
		rows := max(cfg.BulletRows.Min, leftN)
		return Bullets{
			Columns: [][]string{padTo(items[:leftN], rows), padTo(items[leftN:], rows)},
			Rows:    rows,
		}
	}
	items = items[:min(len(items), cfg.SingleColumnItems)]
	rows := max(cfg.BulletRows.Min, len(items))
	return Bullets{Columns: [][]string{padTo(items, rows)}, Rows: rows}
}

func padTo(items []string, n int) []string {
	out := slices.Clone(items)
	for len(out) < n {
		out = append(out, bulletPad)
	}
	return out
}

// block is one section being drawn: its frame and content box.
type block struct {
	cv  *canvas
	cfg Config
	sec site.Section

	x, y, w float64
	ix, iy  float64 // content origin
	iw      float64

	label   string
	heading string
}

// drawSection draws s into a frame of the given height. index is the
// section's position in the page and supplies the default id.
func (r *renderer) drawSection(cv *canvas, x, y, w, height int, s site.Section, index int) {
	id := strings.TrimSpace(s.ID)
	if id == "" {
		id = fmt.Sprintf("section-%d", index+1)
	}
	tag := s.Tag
	if tag == "" {
		tag = s.Kind.String()
	}
	label := strings.TrimSpace(s.Label)
	if label == "" {
		label = tag
	}
	label = styles.Truncate(label, 60)
	heading := styles.Truncate(s.H2, 80)
	if heading == "" {
		heading = label
	}

	pad := float64(r.cfg.SectionPad)
	b := &block{
		cv: cv, cfg: r.cfg, sec: s,
		x: float64(x), y: float64(y), w: float64(w),
		ix: float64(x) + pad, iy: float64(y + headerBlock), iw: float64(w) - 2*pad,
		label: label, heading: heading,
	}

	cv.openGroup(id, s.Kind.String())
	cv.rect(b.x, b.y, b.w, float64(height), "sketch", 14)
	cv.text(b.x+16, b.y+28, heading, "h2")
	if r.overlay {
		cv.text(b.x+16, b.y+44, overlayText(s.Semantic), "overlay")
	}
	cv.text(b.x+16, b.y+60, fmt.Sprintf("%s • id: %s", tag, id), "small muted")

	switch s.Kind {
	case site.SectionHero:
		b.hero()
	case site.SectionFeatures:
		b.features()
	case site.SectionContent:
		b.content()
	case site.SectionSteps:
		b.steps()
	case site.SectionProof:
		b.proof()
	case site.SectionFAQ:
		b.faq()
	case site.SectionForm:
		b.form()
	case site.SectionCTA, site.SectionFooterCTA:
		b.cta()
	default:
		b.generic()
	}
	cv.closeGroup()
}

// overlayText summarizes the semantic annotation. Sections without one get
// an empty line.
func overlayText(sem *site.Semantic) string {
	if sem.IsEmpty() {
		return ""
	}
	intent := strings.TrimSpace(sem.Intent)
	if utf8.RuneCountInString(intent) > overlayRune {
		intent = string([]rune(intent)[:overlayRune]) + "…"
	}
	return fmt.Sprintf("intent: %s • facts: %d", intent, len(sem.SupportingFacts))
}

// textOf returns the display text of the section's first component of
// kind, or fallback when there is none.
func (b *block) textOf(kind site.ComponentKind, fallback string) string {
	if c, ok := b.sec.FirstOf(kind); ok {
		return c.DisplayText(fallback)
	}
	return fallback
}

func (b *block) hero() {
	cv, ix, iy, iw := b.cv, b.ix, b.iy, b.iw
	cx := b.x + b.w/2

	cv.rect(ix, iy, iw, heroImageH, "imgph", 10)
	cv.cross(ix, iy, iw, heroImageH, 10)

	titleY := iy + 118
	cv.centeredText(cx, titleY, styles.Truncate(b.heading, 44), "h1")

	subtitle := styles.Truncate(styles.CollapseSpace(b.sec.Subtitle()), 78)
	subY := titleY + 28
	if subtitle != "" {
		cv.centeredText(cx, subY, subtitle, "small muted")
	}

	label := styles.Truncate(styles.CollapseSpace(b.textOf(site.ComponentButton, "Learn More")), 28)
	btnW := float64(max(120, min(300, 46+9*utf8.RuneCountInString(label))))
	btnY := titleY + 26
	if subtitle != "" {
		btnY = subY + 26
	}
	cv.button(cx-btnW/2, btnY, btnW, 34, label, false)

	caption := styles.Truncate(styles.CollapseSpace(b.textOf(site.ComponentText, "Caption size text here with a link")), 78)
	cv.centeredText(cx, btnY+34+18, caption, "small nav-link")
}

func (b *block) features() {
	cv, ix, iy, iw := b.cv, b.ix, b.iy, b.iw
	const gap, cardH = 16.0, 140.0
	cardW := (iw - 2*gap) / 3

	var titles []string
	if items := b.sec.FirstItems(site.ComponentCards); len(items) > 0 {
		titles = items[:min(3, len(items))]
	} else if len(b.sec.H3) > 0 {
		titles = b.sec.H3[:min(3, len(b.sec.H3))]
	}
	titles = slices.Clone(titles)
	for len(titles) < 3 {
		titles = append(titles, fmt.Sprintf("%s %d", b.label, len(titles)+1))
	}

	body := styles.Truncate(b.textOf(site.ComponentText, loremShort), 44)
	label := styles.Truncate(b.textOf(site.ComponentButton, "Learn More"), 18)

	for i, title := range titles {
		x := ix + float64(i)*(cardW+gap)
		cv.rect(x, iy, cardW, cardH, "sketch", 12)
		cv.text(x+12, iy+28, strings.ToUpper(styles.Truncate(title, 20)), "small")
		cv.text(x+12, iy+54, body, "small muted")
		cv.button(x+12, iy+92, 110, 30, label, false)
	}
}

func (b *block) content() {
	cv, ix, iy, iw := b.cv, b.ix, b.iy, b.iw
	leftW := float64(int(iw * 0.28))
	rx := ix + leftW + 18

	items := b.sec.FirstItems(site.ComponentList)
	left := items[:min(3, len(items))]
	if len(left) == 0 {
		left = []string{b.label + " item 1", b.label + " item 2", b.label + " item 3"}
	}
	for i, line := range left {
		cv.text(ix+6, iy+22+float64(i*18), styles.Truncate(line, 22), "small")
	}

	subtitle := b.sec.Subtitle()
	if subtitle == "" {
		subtitle = b.label
	}
	cv.text(rx, iy+24, strings.ToUpper(styles.Truncate(subtitle, 60)), "h2")

	var paragraphs []string
	for _, c := range b.sec.ComponentsOf(site.ComponentText) {
		if len(paragraphs) == 3 {
			break
		}
		paragraphs = append(paragraphs, styles.Truncate(c.DisplayText("Lorem ipsum dolor sit amet."), 52))
	}
	for len(paragraphs) < 3 {
		paragraphs = append(paragraphs, loremLine)
	}
	for i, p := range paragraphs {
		cv.text(rx, iy+52+float64(i*18), p, "small muted")
	}

	dividerY := iy + contentDivider
	cv.line(ix+10, dividerY, ix+iw-10, dividerY, "imgx")

	headingY := dividerY + contentHeading
	heading := strings.TrimSpace(b.sec.Label)
	if heading == "" {
		heading = "CONTENT"
	}
	cv.text(ix+6, headingY, styles.Truncate(strings.ToUpper(heading), 36), "h2")

	b.bullets(BulletLayout(items, b.cfg), headingY+bulletOffset)
}

func (b *block) bullets(bl Bullets, colY float64) {
	cv, ix, iw := b.cv, b.ix, b.iw
	const colGap = 26.0

	if bl.TwoColumn() {
		colW := (iw - colGap) / 2
		splitX := ix + colW + colGap/2
		cv.line(splitX, colY-6, splitX, colY+float64(bl.Rows*bulletRowH)+6, "vdiv")
		for col, entries := range bl.Columns {
			bx := ix + float64(col)*(colW+colGap)
			for i, entry := range entries {
				cv.text(bx+6, colY+float64(i*bulletRowH), "• "+styles.Truncate(entry, 34), "small")
			}
		}
		return
	}

	listW := float64(int(iw * 0.55))
	imgX := ix + listW + colGap
	imgW := iw - listW - colGap
	splitX := ix + listW + colGap/2
	contentH := float64(bl.Rows*bulletRowH + 18)
	cv.line(splitX, colY-6, splitX, colY+contentH+6, "vdiv")

	for i, entry := range bl.Columns[0] {
		cv.text(ix+6, colY+float64(i*bulletRowH), "• "+styles.Truncate(entry, 52), "small")
	}

	imgH := min(240, contentH)
	phW := float64(int(imgW * 0.86))
	phH := float64(int(imgH * 0.82))
	phX := imgX + (imgW-phW)/2
	phY := colY + (contentH-phH)/2
	cv.rect(phX, phY, phW, phH, "sketch-dash image-slot", 12)
	cv.cross(phX, phY, phW, phH, 10)
	cv.text(phX+14, phY+24, "IMAGE", "small muted")
}

func (b *block) steps() {
	cv, ix, iw := b.cv, b.ix, b.iw
	items := b.sec.FirstItems(site.ComponentList)
	if len(items) == 0 {
		items = []string{"Step 1", "Step 2", "Step 3"}
	}
	y := b.iy
	for i, item := range items[:min(len(items), b.cfg.StepRows.Max)] {
		cv.rect(ix, y, iw, 30, "sketch-dash", 10)
		cv.text(ix+14, y+20, fmt.Sprintf("%d. %s", i+1, styles.Truncate(item, 90)), "small")
		y += stepRow
	}
}

func (b *block) proof() {
	cv, ix, iy, iw := b.cv, b.ix, b.iy, b.iw
	if stats, ok := b.sec.FirstOf(site.ComponentStats); ok {
		cv.rect(ix, iy, iw, 90, "sketch-dash", 12)
		cv.text(ix+14, iy+24, "Impact Statistics", "small")
		cv.text(ix+14, iy+48, styles.Truncate(stats.DisplayText("[CONFIRM impact statistics]"), 90), "small muted")
		return
	}
	cv.rect(ix, iy, iw, 70, "sketch-dash", 12)
	if quote, ok := b.sec.FirstOf(site.ComponentQuote); ok {
		cv.text(ix+14, iy+28, styles.Truncate(quote.DisplayText("Expert quote or testimonial"), 90), "small")
		return
	}
	cv.text(ix+14, iy+28, "Proof / Testimonial / Stats", "small")
}

func (b *block) faq() {
	cv, ix, iw := b.cv, b.ix, b.iw
	items := b.sec.FirstItems(site.ComponentAccordion)
	if len(items) == 0 {
		items = []string{"FAQ item 1", "FAQ item 2", "FAQ item 3", "FAQ item 4"}
	}
	y := b.iy
	for _, item := range items[:min(len(items), b.cfg.FAQRows.Max)] {
		cv.rect(ix, y, iw, 34, "sketch-dash", 10)
		cv.text(ix+14, y+22, styles.Truncate(item, 100), "small")
		y += faqRowH
	}
}

func (b *block) form() {
	cv, ix, iy, iw := b.cv, b.ix, b.iy, b.iw

	var fields []string
	for _, c := range b.sec.Fields() {
		if len(fields) == b.cfg.FormRows.Max {
			break
		}
		fields = append(fields, styles.Truncate(c.DisplayText("Field"), 40))
	}
	if len(fields) == 0 {
		fields = []string{"Name", "Email", "Message"}
	}

	cv.centeredText(ix+iw/2, iy+26, styles.Truncate(b.heading, 48), "h2")
	sub := loremLong
	if h3 := b.sec.Subtitle(); h3 != "" {
		sub = styles.Truncate(h3, 80)
	}
	cv.centeredText(ix+iw/2, iy+50, sub, "small muted")

	y := iy + formHeader
	for _, f := range fields {
		cv.rect(ix, y, iw, 30, "sketch", 8)
		cv.text(ix+12, y+20, f, "small muted")
		y += stepRow
	}

	label := styles.Truncate(b.textOf(site.ComponentButton, "Send Message"), 20)
	cv.button(ix+iw-150, y+4, 150, 34, label, true)
}

func (b *block) cta() {
	cv, ix, iy, iw := b.cv, b.ix, b.iy, b.iw
	cv.centeredText(ix+iw/2, iy+34, styles.Truncate(b.heading, 50), "h2")
	sub := loremLong
	if h3 := b.sec.Subtitle(); h3 != "" {
		sub = styles.Truncate(h3, 90)
	}
	cv.centeredText(ix+iw/2, iy+60, sub, "small muted")

	label := styles.Truncate(b.textOf(site.ComponentButton, "Take Action"), 20)
	cv.button(ix+iw/2-70, iy+90, 140, 34, label, false)
}

func (b *block) generic() {
	cv, ix, iw := b.cv, b.ix, b.iw
	comps := b.sec.Components
	if len(comps) == 0 {
		placeholder := site.Component{Kind: site.ComponentText, Label: "Placeholder content"}
		comps = []site.Component{placeholder, placeholder, placeholder}
	}
	y := b.iy
	for _, c := range comps[:min(len(comps), b.cfg.GenericRows)] {
		cv.rect(ix, y, iw, rowH, "sketch-dash", 10)
		cv.text(ix+14, y+22, styles.Truncate(c.DisplayText("Component"), 95), "small")
		y += rowH + rowGap
	}
}
