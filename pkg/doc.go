// Package pkg provides the core libraries for wireframe, a renderer that
// turns structured site descriptions into static SVG page mockups.
//
// # Overview
//
// Each page of a site document becomes one wireframe: a header with the
// site navigation, a stack of content sections, a newsletter band and a
// footer. The pkg directory is organized into four areas:
//
//  1. [site] - Domain model (pages, sections, components) with lenient decoding
//  2. [render] - Layout and SVG drawing ([render/wireframe], [render/styles])
//  3. [pipeline] - Batch orchestration (import, render, cache) shared by
//     the CLI commands and the preview server
//  4. [cache], [observability], [errors], [io] - Supporting infrastructure
//
// # Architecture
//
// The data flow for one batch:
//
//	wireframes.enriched.json (+ sitemap.json)
//	         ↓
//	    [io] package (decode JSON or YAML, derive file names)
//	         ↓
//	    [render/wireframe] package (resolve nav, size, plan, draw)
//	         ↓
//	    [pipeline] package (parallel rendering, artifact cache, stats)
//	         ↓
//	    one SVG per page
//
// # Quick Start
//
//	doc, _ := io.ImportDocument("wireframes.enriched.json")
//	sm, _ := io.OptionalSitemap("sitemap.json")
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Sitemap: sm})
//	if err != nil {
//	    return err
//	}
//	io.WriteArtifacts("rendered_wireframes", result.Artifacts)
//
// Render a single page without the pipeline:
//
//	nav := wireframe.ResolveNav(sm, doc)
//	svg := wireframe.Render(doc.Pages[0], wireframe.WithNav(nav))
//
// # Testing
//
//	go test ./pkg/...                   # All tests
//	go test ./pkg/render/wireframe/...  # Specific package
//	go test -run Example ./pkg/...      # Examples only
//
// [site]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/site
// [render]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render
// [render/wireframe]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render/wireframe
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/wireframe/pkg/io
package pkg
