// Package site defines the page description consumed by the wireframe
// renderer.
//
// A [Document] holds one [Page] per site route. Each page carries a
// [Layout] made of ordered [Section] values, and each section holds the
// [Component] values that fill it. An optional [Semantic] overlay may be
// attached to a section by an upstream enrichment step.
//
// # Kinds
//
// Section and component type tags are free-form strings in the input. They
// are canonicalized once, while decoding, into the closed [SectionKind] and
// [ComponentKind] sets. Unrecognized tags map to [SectionGeneric] and
// [ComponentGeneric]; decoding never fails because of an unknown tag.
//
// # Defaults
//
// Rendering reads the model through accessor methods such as
// [Section.FirstOf], [Component.ListItems] and [Component.DisplayText], which
// always return usable values. Missing or blank fields are resolved there
// instead of at each call site.
//
// # Decoding
//
// Documents decode from JSON. List-like fields ("items", "fields", "h3",
// "tone", "supporting_facts") accept either a single string or an array of
// scalars; non-string scalars are coerced to their textual form and blank
// entries are dropped.
package site
