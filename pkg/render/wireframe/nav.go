package wireframe

import (
	"slices"
	"strings"

	"github.com/matzehuels/wireframe/pkg/render/styles"
	"github.com/matzehuels/wireframe/pkg/site"
)

// NavSource identifies which tier supplied the navigation labels.
type NavSource string

const (
	NavFromSitemap  NavSource = "sitemap"
	NavFromPages    NavSource = "pages"
	NavFromDefaults NavSource = "default"
)

var defaultNavLabels = []string{"Home", "About", "Objectives", "Resources", "Advocacy", "Contact"}

// Nav is an immutable list of header navigation labels. Resolve it once per
// batch and share it between concurrent renders.
type Nav struct {
	labels []string
	source NavSource
}

// NewNav returns a Nav holding the non-blank labels in order.
func NewNav(labels ...string) Nav {
	return Nav{labels: nonBlank(labels), source: NavFromDefaults}
}

// DefaultNav returns the built-in navigation.
func DefaultNav() Nav {
	return Nav{labels: slices.Clone(defaultNavLabels), source: NavFromDefaults}
}

// ResolveNav picks navigation labels from the first tier that yields any:
// the sitemap's primary navigation, the document's page names, then the
// built-in default. Either argument may be nil.
func ResolveNav(sm *site.Sitemap, doc *site.Document) Nav {
	if sm != nil {
		if labels := nonBlank(sm.PrimaryNav); len(labels) > 0 {
			return Nav{labels: labels, source: NavFromSitemap}
		}
	}
	if doc != nil {
		var names []string
		for _, p := range doc.Pages {
			names = append(names, p.Name)
		}
		if labels := nonBlank(names); len(labels) > 0 {
			return Nav{labels: labels, source: NavFromPages}
		}
	}
	return DefaultNav()
}

// Labels returns a copy of the labels.
func (n Nav) Labels() []string { return slices.Clone(n.labels) }

// Len returns the number of labels.
func (n Nav) Len() int { return len(n.labels) }

// Source reports the tier the labels came from.
func (n Nav) Source() NavSource {
	if n.source == "" {
		return NavFromDefaults
	}
	return n.source
}

// NavItem is a placed header label.
type NavItem struct {
	Label string
	X     int
}

// PlaceNav lays labels out right to left ending at right. Placement stops
// at the first label whose left edge would fall before minX; that label and
// every label before it are dropped. Items are returned left to right.
func PlaceNav(labels []string, right, minX int, pxPerChar float64) []NavItem {
	var placed []NavItem
	cursor := right
	for i := len(labels) - 1; i >= 0; i-- {
		x := cursor - styles.EstimateWidthPx(labels[i], pxPerChar)
		if x < minX {
			break
		}
		placed = append(placed, NavItem{Label: labels[i], X: x})
		cursor = x - navGap
	}
	slices.Reverse(placed)
	return placed
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
