package wireframe

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/matzehuels/wireframe/pkg/render/styles"
)

// canvas accumulates SVG elements. Coordinates are float64 so centered
// elements keep their half-pixel positions.
type canvas struct {
	buf bytes.Buffer
	ids map[string]bool // group ids already emitted
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *canvas) rect(x, y, w, h float64, class string, rx float64) {
	fmt.Fprintf(&c.buf, `<rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" class="%s" />`+"\n",
		num(x), num(y), num(w), num(h), num(rx), num(rx), class)
}

// plainRect draws a rect without corner radius attributes.
func (c *canvas) plainRect(x, y, w, h float64, class string) {
	fmt.Fprintf(&c.buf, `<rect x="%s" y="%s" width="%s" height="%s" class="%s" />`+"\n",
		num(x), num(y), num(w), num(h), class)
}

func (c *canvas) text(x, y float64, s, class string) {
	fmt.Fprintf(&c.buf, `<text x="%s" y="%s" class="text %s">%s</text>`+"\n",
		num(x), num(y), class, styles.EscapeXML(s))
}

func (c *canvas) centeredText(x, y float64, s, class string) {
	fmt.Fprintf(&c.buf, `<text x="%s" y="%s" class="text %s" text-anchor="middle">%s</text>`+"\n",
		num(x), num(y), class, styles.EscapeXML(s))
}

func (c *canvas) line(x1, y1, x2, y2 float64, class string) {
	fmt.Fprintf(&c.buf, `<line x1="%s" y1="%s" x2="%s" y2="%s" class="%s" />`+"\n",
		num(x1), num(y1), num(x2), num(y2), class)
}

// cross draws the two diagonals of a box, inset on every side.
func (c *canvas) cross(x, y, w, h, inset float64) {
	c.line(x+inset, y+inset, x+w-inset, y+h-inset, "imgx")
	c.line(x+w-inset, y+inset, x+inset, y+h-inset, "imgx")
}

func (c *canvas) button(x, y, w, h float64, label string, dark bool) {
	cls, tcls := "button", "button-text"
	if dark {
		cls, tcls = "button-dark", "button-text-inv"
	}
	c.rect(x, y, w, h, cls, 10)
	c.centeredText(x+w/2, y+h/2+4, label, tcls)
}

// openGroup starts a section group. Repeated ids get "-2", "-3", ...
// suffixes so every element id in the document is unique.
func (c *canvas) openGroup(id, kind string) {
	if c.ids == nil {
		c.ids = make(map[string]bool)
	}
	base := "section-" + id
	gid := base
	for n := 2; c.ids[gid]; n++ {
		gid = base + "-" + strconv.Itoa(n)
	}
	c.ids[gid] = true
	fmt.Fprintf(&c.buf, `<g id="%s" data-kind="%s">`+"\n", styles.EscapeXML(gid), kind)
}

func (c *canvas) closeGroup() {
	c.buf.WriteString("</g>\n")
}
