package styles

import "bytes"

// Sketch is the default hand-drawn mockup look: rounded dark strokes,
// grey panels and a marker-style font stack.
type Sketch struct{}

func (Sketch) Name() string { return NameSketch }

func (Sketch) RenderDefs(buf *bytes.Buffer) { writeStyle(buf, sketchCSS) }

const sketchCSS = `
    .page-bg { fill: #f6f6f6; }
    .page-frame { fill: #ffffff; stroke: #2b2b2b; stroke-width: 2.2; rx: 16; ry: 16; }
    .sketch { stroke: #2b2b2b; stroke-width: 2.2; stroke-linecap: round; stroke-linejoin: round; fill: #ffffff; }
    .sketch-dash { stroke: #2b2b2b; stroke-width: 2.2; stroke-linecap: round; stroke-linejoin: round; fill: #ffffff; stroke-dasharray: 7 6; }
    .panel-light { fill: #e9e9e9; stroke: #2b2b2b; stroke-width: 2.2; stroke-linecap: round; stroke-linejoin: round; }
    .panel-dark { fill: #6f6f6f; stroke: #2b2b2b; stroke-width: 2.2; stroke-linecap: round; stroke-linejoin: round; }
    .text { font-family: "Balsamiq Sans", "Comic Sans MS", "Segoe UI", Arial, sans-serif; fill: #222; }
    .meta { font-size: 15px; font-weight: 700; }
    .small { font-size: 12px; font-weight: 400; opacity: 0.9; }
    .overlay { font-size: 11px; font-weight: 600; opacity: 0.75; }
    .nav-link { font-size: 13px; fill: #1a73e8; text-decoration: underline; font-weight: 600; }
    .footer-link { font-size: 13px; fill: #ffffff; text-decoration: underline; font-weight: 600; }
    .h1 { font-size: 34px; font-weight: 800; }
    .h2 { font-size: 18px; font-weight: 800; }
    .h3 { font-size: 13px; font-weight: 800; }
    .muted { opacity: 0.8; }
    .button { fill: #efefef; stroke: #2b2b2b; stroke-width: 2.2; stroke-linecap: round; stroke-linejoin: round; }
    .button-dark { fill: #3e3e3e; stroke: #2b2b2b; stroke-width: 2.2; stroke-linecap: round; stroke-linejoin: round; }
    .button-text { font-size: 12px; font-weight: 700; fill: #222; }
    .button-text-inv { font-size: 12px; font-weight: 700; fill: #ffffff; }
    .imgph { fill: #e9e9e9; stroke: #2b2b2b; stroke-width: 2.2; stroke-linecap: round; stroke-linejoin: round; }
    .imgx { stroke: #2b2b2b; stroke-width: 1.6; stroke-linecap: round; stroke-linejoin: round; opacity: 0.18; }
    .vdiv { stroke: #c9c9c9; stroke-width: 2.0; stroke-linecap: round; opacity: 0.9; }
`
