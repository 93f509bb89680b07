// Package styles provides stylesheet themes and text helpers for wireframe
// SVG output.
//
// A [Style] writes the embedded <style> block that gives the fixed set of
// CSS classes used by the renderer ("sketch", "sketch-dash", "panel-light",
// "button", "h1", "small", ...) their appearance. Geometry never depends on
// the style; switching styles only changes colors, strokes and fonts.
//
// The text helpers ([Truncate], [EstimateWidth], [EscapeXML]) are the
// metrics every layout decision is based on.
package styles

import (
	"bytes"
	"fmt"
	"sort"
)

// Style defines the visual appearance of a rendered wireframe.
type Style interface {
	// Name is the identifier used in flags and config files.
	Name() string
	// RenderDefs writes the SVG <style> block.
	RenderDefs(buf *bytes.Buffer)
}

// Built-in style names.
const (
	NameSketch = "sketch"
	NameSimple = "simple"
)

// Default is the style used when none is configured.
var Default Style = Sketch{}

var registry = map[string]Style{
	NameSketch: Sketch{},
	NameSimple: Simple{},
}

// Lookup returns the style registered under name.
func Lookup(name string) (Style, error) {
	if s, ok := registry[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown style: %q (must be one of: %v)", name, Names())
}

// Names lists registered style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func writeStyle(buf *bytes.Buffer, css string) {
	buf.WriteString("  <style>")
	buf.WriteString(css)
	buf.WriteString("  </style>\n")
}
