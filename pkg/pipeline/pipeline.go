// Package pipeline renders every page of a site document in one batch.
//
// A batch resolves the navigation labels once, then renders pages in
// parallel (bounded by [Options.Concurrency]) with the shared, read-only
// nav. Each page's SVG is looked up in the artifact cache first; keys cover
// the page content, nav labels, layout configuration, style and overlay
// flag, so any change to those re-renders the page.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Sitemap: sm})
//	if err != nil {
//	    return err
//	}
//	paths, err := io.WriteArtifacts(outDir, result.Artifacts)
//
// Rendering a page never fails; the only batch errors are invalid options,
// an empty document and cancellation. Cancellation is observed between
// pages, never in the middle of one.
package pipeline

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wireframe/pkg/errors"
	wfio "github.com/matzehuels/wireframe/pkg/io"
	"github.com/matzehuels/wireframe/pkg/render/styles"
	"github.com/matzehuels/wireframe/pkg/render/wireframe"
	"github.com/matzehuels/wireframe/pkg/site"
)

const (
	// DefaultConcurrency bounds parallel page renders.
	DefaultConcurrency = 4

	// MaxConcurrency caps user-supplied concurrency.
	MaxConcurrency = 64

	// DefaultStyle is the stylesheet used when none is named.
	DefaultStyle = styles.NameSketch
)

// Options configures a batch.
type Options struct {
	Config      wireframe.Config
	Style       string
	NoOverlay   bool
	Concurrency int

	// Refresh skips cache lookups; fresh renders are still stored.
	Refresh bool

	// Sitemap is the preferred nav source. nil falls back to page names.
	Sitemap *site.Sitemap

	// Runtime
	Now func() time.Time

	// Logger receives this batch's messages. nil uses the runner's logger.
	Logger *log.Logger

	style      styles.Style
	configHash string
	validated  bool
}

// ValidateAndSetDefaults fills zero values and checks the rest. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config.CanvasWidth == 0 && o.Config.CanvasHeight == 0 {
		o.Config = wireframe.DefaultConfig()
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	st, err := styles.Lookup(o.Style)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStyle, err, "resolve style")
	}
	o.style = st
	o.Style = st.Name()

	switch {
	case o.Concurrency == 0:
		o.Concurrency = DefaultConcurrency
	case o.Concurrency < 0 || o.Concurrency > MaxConcurrency:
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency must be between 1 and %d, got %d", MaxConcurrency, o.Concurrency)
	}

	if o.Now == nil {
		o.Now = time.Now
	}

	hash, err := configHash(o.Config)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "hash config")
	}
	o.configHash = hash
	o.validated = true
	return nil
}

// renderOptions are the engine options shared by every page of a batch.
func (o *Options) renderOptions(nav wireframe.Nav) []wireframe.Option {
	return []wireframe.Option{
		wireframe.WithConfig(o.Config),
		wireframe.WithNav(nav),
		wireframe.WithStyle(o.style),
		wireframe.WithOverlay(!o.NoOverlay),
		wireframe.WithClock(o.Now),
	}
}

// Result is the outcome of a batch. Artifacts and Pages follow document
// order.
type Result struct {
	RunID     string
	Nav       wireframe.Nav
	Artifacts []wfio.Artifact
	Pages     []PageStats
	Stats     Stats
}

// PageStats describes one page of a batch.
type PageStats struct {
	Name     string
	File     string
	Sections int // sections placed, including a synthesized hero
	Omitted  int
	CacheHit bool
	Duration time.Duration
}

// Stats summarizes a batch.
type Stats struct {
	Pages     int
	Rendered  int
	CacheHits int
	Omitted   int // pages with at least one omitted section
	Duration  time.Duration
}

// NewRunID returns a short random identifier for per-run output folders.
func NewRunID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// ValidateStyle reports whether name is a known stylesheet. Unknown names
// fail with ErrCodeInvalidStyle.
func ValidateStyle(name string) error {
	if _, err := styles.Lookup(name); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidStyle, err, "resolve style")
	}
	return nil
}
