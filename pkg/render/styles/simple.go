package styles

import "bytes"

// Simple is a flat, thin-stroke look suited to printing and diffing.
type Simple struct{}

func (Simple) Name() string { return NameSimple }

func (Simple) RenderDefs(buf *bytes.Buffer) { writeStyle(buf, simpleCSS) }

const simpleCSS = `
    .page-bg { fill: #ffffff; }
    .page-frame { fill: #ffffff; stroke: #888888; stroke-width: 1; }
    .sketch { stroke: #555555; stroke-width: 1; fill: #ffffff; }
    .sketch-dash { stroke: #555555; stroke-width: 1; fill: #ffffff; stroke-dasharray: 4 3; }
    .panel-light { fill: #f0f0f0; stroke: #555555; stroke-width: 1; }
    .panel-dark { fill: #444444; stroke: #444444; stroke-width: 1; }
    .text { font-family: "Helvetica Neue", Arial, sans-serif; fill: #333; }
    .meta { font-size: 14px; font-weight: 700; }
    .small { font-size: 12px; }
    .overlay { font-size: 11px; font-style: italic; fill: #777; }
    .nav-link { font-size: 13px; fill: #0b57d0; }
    .footer-link { font-size: 13px; fill: #ffffff; }
    .h1 { font-size: 32px; font-weight: 700; }
    .h2 { font-size: 18px; font-weight: 700; }
    .h3 { font-size: 13px; font-weight: 700; }
    .muted { fill: #777; }
    .button { fill: #ffffff; stroke: #555555; stroke-width: 1; }
    .button-dark { fill: #333333; stroke: #333333; stroke-width: 1; }
    .button-text { font-size: 12px; font-weight: 600; fill: #333; }
    .button-text-inv { font-size: 12px; font-weight: 600; fill: #ffffff; }
    .imgph { fill: #f0f0f0; stroke: #555555; stroke-width: 1; }
    .imgx { stroke: #999999; stroke-width: 1; opacity: 0.4; }
    .vdiv { stroke: #dddddd; stroke-width: 1; }
`
