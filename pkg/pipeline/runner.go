package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/errors"
	wfio "github.com/matzehuels/wireframe/pkg/io"
	"github.com/matzehuels/wireframe/pkg/observability"
	"github.com/matzehuels/wireframe/pkg/render/wireframe"
	"github.com/matzehuels/wireframe/pkg/site"
)

const keyTypeArtifact = "artifact"

// Runner executes batches against a cache. It holds no per-batch state and
// may be shared between goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching; a nil keyer uses
// cache.DefaultKeyer; a nil logger uses log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute renders every page of doc.
func (r *Runner) Execute(ctx context.Context, doc *site.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if doc == nil || len(doc.Pages) == 0 {
		return nil, errors.New(errors.ErrCodeNoPages, "document has no pages")
	}

	start := time.Now()
	pages := doc.Pages
	result := &Result{
		RunID:     NewRunID(),
		Nav:       wireframe.ResolveNav(opts.Sitemap, doc),
		Artifacts: make([]wfio.Artifact, len(pages)),
		Pages:     make([]PageStats, len(pages)),
	}
	names := wfio.OutputNames(pages)

	logger := r.logger(&opts).With("run", result.RunID)
	logger.Debug("resolved navigation", "source", result.Nav.Source(), "labels", result.Nav.Labels())
	observability.Pipeline().OnBatchStart(ctx, result.RunID, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i := range pages {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page := pages[i]
			t := time.Now()
			svg, hit := r.renderPage(gctx, page, result.Nav, &opts)
			plan := wireframe.Plan(page, opts.Config)

			stats := PageStats{
				Name:     page.Name,
				File:     names[i] + ".svg",
				Sections: len(plan.Placements),
				Omitted:  plan.Omitted,
				CacheHit: hit,
				Duration: time.Since(t),
			}
			result.Artifacts[i] = wfio.Artifact{Name: names[i], Page: page.Name, SVG: svg}
			result.Pages[i] = stats
			logger.Debug("page done", "page", page.Name, "file", stats.File, "cached", hit, "omitted", stats.Omitted)
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	result.Stats = summarize(result.Pages, time.Since(start))
	observability.Pipeline().OnBatchComplete(ctx, result.RunID, len(pages), result.Stats.Duration, err)

	if err != nil {
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Wrap(errors.ErrCodeCanceled, err, "render canceled")
		}
		return nil, err
	}
	return result, nil
}

// RenderPage renders a single page with nav through the cache. It reports
// whether the SVG came from the cache.
func (r *Runner) RenderPage(ctx context.Context, page site.Page, nav wireframe.Nav, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	svg, hit := r.renderPage(ctx, page, nav, &opts)
	return svg, hit, nil
}

// renderPage never fails: cache errors are logged and the page is rendered
// fresh. Only fresh renders are reported to the pipeline hooks.
func (r *Runner) renderPage(ctx context.Context, page site.Page, nav wireframe.Nav, opts *Options) ([]byte, bool) {
	logger := r.logger(opts)
	key, keyErr := r.artifactKey(page, nav, opts)
	if keyErr != nil {
		logger.Warn("cannot derive cache key", "page", page.Name, "err", keyErr)
	}

	if keyErr == nil && !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			observability.Cache().OnCacheError(ctx, keyTypeArtifact, err)
			logger.Warn("cache lookup failed", "page", page.Name, "err", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
			return data, true
		default:
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		}
	}

	start := time.Now()
	svg := wireframe.Render(page, opts.renderOptions(nav)...)
	plan := wireframe.Plan(page, opts.Config)
	observability.Pipeline().OnPageRendered(ctx, page.Name, len(plan.Placements), plan.Omitted, time.Since(start))

	if keyErr == nil {
		if err := r.Cache.Set(ctx, key, svg, cache.TTLArtifact); err != nil {
			observability.Cache().OnCacheError(ctx, keyTypeArtifact, err)
			logger.Warn("cache store failed", "page", page.Name, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(svg))
		}
	}
	return svg, false
}

func (r *Runner) logger(opts *Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func (r *Runner) artifactKey(page site.Page, nav wireframe.Nav, opts *Options) (string, error) {
	pageHash, err := cache.HashJSON(page)
	if err != nil {
		return "", err
	}
	return r.Keyer.ArtifactKey(pageHash, cache.ArtifactKeyOpts{
		Nav:        nav.Labels(),
		ConfigHash: opts.configHash,
		Style:      opts.Style,
		Overlay:    !opts.NoOverlay,
	}), nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func configHash(cfg wireframe.Config) (string, error) {
	return cache.HashJSON(cfg)
}

func summarize(pages []PageStats, d time.Duration) Stats {
	s := Stats{Pages: len(pages), Duration: d}
	for _, p := range pages {
		if p.File == "" {
			continue
		}
		if p.CacheHit {
			s.CacheHits++
		} else {
			s.Rendered++
		}
		if p.Omitted > 0 {
			s.Omitted++
		}
	}
	return s
}
