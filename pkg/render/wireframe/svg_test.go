package wireframe

import (
	"bytes"
	"encoding/xml"
	"io"
	"slices"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/wireframe/pkg/site"
)

// element is a flattened SVG node with the id of its enclosing section
// group.
type element struct {
	Name  string
	Attrs map[string]string
	Text  string
	Group string
}

func (e element) hasClass(cls string) bool {
	return slices.Contains(strings.Fields(e.Attrs["class"]), cls)
}

func (e element) num(attr string) float64 {
	v, _ := strconv.ParseFloat(e.Attrs[attr], 64)
	return v
}

type elements []element

func parseSVG(t *testing.T, data []byte) elements {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	var out elements
	group := ""
	textIdx := -1
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("invalid SVG: %v", err)
		}
		switch tk := tok.(type) {
		case xml.StartElement:
			attrs := make(map[string]string, len(tk.Attr))
			for _, a := range tk.Attr {
				attrs[a.Name.Local] = a.Value
			}
			if tk.Name.Local == "g" {
				group = strings.TrimPrefix(attrs["id"], "section-")
			}
			out = append(out, element{Name: tk.Name.Local, Attrs: attrs, Group: group})
			if tk.Name.Local == "text" {
				textIdx = len(out) - 1
			}
		case xml.CharData:
			if textIdx >= 0 {
				out[textIdx].Text += string(tk)
			}
		case xml.EndElement:
			switch tk.Name.Local {
			case "g":
				group = ""
			case "text":
				textIdx = -1
			}
		}
	}
	return out
}

func (es elements) in(group string) elements {
	var out elements
	for _, e := range es {
		if e.Group == group {
			out = append(out, e)
		}
	}
	return out
}

func (es elements) classed(cls string) elements {
	var out elements
	for _, e := range es {
		if e.hasClass(cls) {
			out = append(out, e)
		}
	}
	return out
}

func (es elements) named(name string) elements {
	var out elements
	for _, e := range es {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func (es elements) texts() []string {
	var out []string
	for _, e := range es.named("text") {
		out = append(out, e.Text)
	}
	return out
}

func (es elements) groups() []string {
	var out []string
	for _, e := range es.named("g") {
		out = append(out, strings.TrimPrefix(e.Attrs["id"], "section-"))
	}
	return out
}

var fixedClock = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC) }

func renderPage(t *testing.T, p site.Page, opts ...Option) elements {
	t.Helper()
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	return parseSVG(t, Render(p, opts...))
}

// pageWith builds a page whose first section is a hero followed by
// sections.
func pageWith(sections ...site.Section) site.Page {
	hero := site.NewSection("hero", "hero")
	hero.H2 = "Welcome"
	return site.Page{
		Name:   "Test",
		Slug:   "/test",
		Layout: site.Layout{H1: "Welcome", Sections: append([]site.Section{hero}, sections...)},
	}
}

func list(items ...string) site.Component {
	return site.Component{Kind: site.ComponentList, Items: items}
}

func numbered(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + " " + strconv.Itoa(i+1)
	}
	return out
}
