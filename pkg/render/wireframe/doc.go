// Package wireframe lays out and draws site pages as static SVG mockups.
//
// # Pipeline
//
// A page goes through three pure steps:
//
//  1. [Config.SectionHeight] sizes every section from its content, floored
//     by a per-kind minimum so sparse sections stay visually coherent.
//  2. [Plan] stacks sections top to bottom. The first slot is always a
//     hero (synthesized from the page headline when the page has none);
//     sections that would cross into the newsletter band are omitted
//     together with everything after them.
//  3. [Render] draws the header, the planned sections, the fixed
//     newsletter band and footer, and a timestamp.
//
// # Navigation
//
// Header links come from a [Nav], resolved once per batch by [ResolveNav]
// and passed to every render with [WithNav]. Nav is immutable, so a single
// value can be shared by concurrent renders.
//
// # Determinism
//
// Output depends only on the page, the options and the clock. Inject a
// fixed clock with [WithClock] to get byte-identical output.
package wireframe
