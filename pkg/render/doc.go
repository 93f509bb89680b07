// Package render groups the wireframe drawing packages.
//
// # Overview
//
// Rendering is split into geometry and appearance:
//
//   - [wireframe]: section sizing, page planning and SVG drawing
//   - [styles]: stylesheet themes ("sketch", "simple") and text metrics
//
// Geometry never depends on the style, so the same page planned with two
// styles has identical section positions and omissions:
//
//	svg := wireframe.Render(page,
//	    wireframe.WithNav(nav),
//	    wireframe.WithStyle(styles.Simple{}),
//	)
//
// Output is plain SVG 1.1 with an embedded stylesheet; no external fonts,
// images or tools are needed to view it.
//
// [wireframe]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render/wireframe
// [styles]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render/styles
package render
