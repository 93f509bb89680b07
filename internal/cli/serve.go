package cli

import (
	"context"
	stderrors "errors"
	"html/template"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/buildinfo"
	wferrors "github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/io"
	"github.com/matzehuels/wireframe/pkg/observability"
	"github.com/matzehuels/wireframe/pkg/pipeline"
	"github.com/matzehuels/wireframe/pkg/render/wireframe"
	"github.com/matzehuels/wireframe/pkg/site"
)

const (
	defaultAddr     = "127.0.0.1:8080"
	shutdownTimeout = 5 * time.Second
)

type serveOpts struct {
	addr      string
	sitemap   string
	config    string
	style     string
	noOverlay bool
	cache     cacheOpts
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, sitemap: defaultSitemap}

	cmd := &cobra.Command{
		Use:   "serve [document]",
		Short: "Preview wireframes over HTTP",
		Long: `Serve loads a site document once and renders pages on request:

  GET /               index of pages
  GET /pages/{file}   one page as SVG (e.g. /pages/home.svg)
  GET /healthz        liveness
  GET /metrics        Prometheus metrics`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return c.runServe(cmd.Context(), cmd, input, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", opts.addr, "listen address")
	f.StringVar(&opts.sitemap, "sitemap", opts.sitemap, "sitemap file providing primary_nav (ignored when missing)")
	f.StringVarP(&opts.config, "config", "c", "", "TOML config file (default ./"+defaultConfigFile+" when present)")
	f.StringVar(&opts.style, "style", pipeline.DefaultStyle, "stylesheet: sketch, simple")
	f.BoolVar(&opts.noOverlay, "no-overlay", false, "hide semantic overlay text")
	addCacheFlags(cmd, &opts.cache)
	registerRenderCompletions(cmd)

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cmd *cobra.Command, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	fc, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if opts.cache.redis == "" && !cmd.Flags().Changed("redis") {
		opts.cache.redis = fc.Cache.Redis
	}
	doc, err := io.ImportDocument(input)
	if err != nil {
		return err
	}

	popts := pipelineOptions(cmd, fc, opts.style, opts.noOverlay, 1)
	popts.Logger = logger
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	nav := wireframe.ResolveNav(c.loadSitemap(ctx, opts.sitemap), doc)

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	newMetrics(reg).register()
	defer observability.Reset()

	preview := newPreviewServer(doc, nav, runner, popts, logger)
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           preview.routes(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	printSuccess("Serving %d pages", len(doc.Pages))
	printKeyValue("URL", StyleLink.Render("http://"+opts.addr+"/"))
	printKeyValue("Nav", string(nav.Source()))

	select {
	case err := <-errCh:
		if !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// previewServer renders pages of one document on demand.
type previewServer struct {
	doc    *site.Document
	nav    wireframe.Nav
	names  []string
	files  map[string]int
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
}

func newPreviewServer(doc *site.Document, nav wireframe.Nav, runner *pipeline.Runner, opts pipeline.Options, logger *log.Logger) *previewServer {
	names := io.OutputNames(doc.Pages)
	files := make(map[string]int, len(names))
	for i, n := range names {
		files[n] = i
	}
	return &previewServer{
		doc:    doc,
		nav:    nav,
		names:  names,
		files:  files,
		runner: runner,
		opts:   opts,
		logger: logger,
	}
}

// routes builds the router. metricsHandler may be nil.
func (s *previewServer) routes(metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.handleIndex)
	r.Get("/pages/{file}", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}
	return r
}

// instrument reports each request to the HTTP hooks by route pattern.
func (s *previewServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		observability.HTTP().OnRequest(r.Context(), r.Method, route, status, d)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", d,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Wireframes</title></head>
<body>
<h1>Wireframes</h1>
<p>Navigation ({{.NavSource}}): {{range $i, $l := .Nav}}{{if $i}} · {{end}}{{$l}}{{end}}</p>
<ul>
{{- range .Pages}}
<li><a href="/pages/{{.File}}">{{.Name}}</a> <code>{{.Slug}}</code></li>
{{- end}}
</ul>
<footer><small>wireframe {{.Version}}</small></footer>
</body>
</html>
`))

type indexPage struct {
	Name, Slug, File string
}

func (s *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	pages := make([]indexPage, len(s.doc.Pages))
	for i, p := range s.doc.Pages {
		pages[i] = indexPage{Name: p.Name, Slug: p.Slug, File: s.names[i] + ".svg"}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, map[string]any{
		"NavSource": s.nav.Source(),
		"Nav":       s.nav.Labels(),
		"Pages":     pages,
		"Version":   buildinfo.Short(),
	})
	if err != nil {
		s.logger.Warn("render index", "err", err)
	}
}

func (s *previewServer) handlePage(w http.ResponseWriter, r *http.Request) {
	i, err := s.lookup(chi.URLParam(r, "file"))
	if err != nil {
		http.Error(w, wferrors.UserMessage(err), httpStatus(err))
		return
	}

	svg, hit, err := s.runner.RenderPage(r.Context(), s.doc.Pages[i], s.nav, s.opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(svg)
}

// lookup maps a requested file name, with or without the .svg suffix, to
// the index of its page.
func (s *previewServer) lookup(file string) (int, error) {
	name := strings.TrimSuffix(file, ".svg")
	if err := wferrors.ValidateArtifactName(name + ".svg"); err != nil {
		return 0, err
	}
	i, ok := s.files[name]
	if !ok {
		return 0, wferrors.New(wferrors.ErrCodePageNotFound, "no page renders to %s.svg", name)
	}
	return i, nil
}

func httpStatus(err error) int {
	switch wferrors.GetCode(err) {
	case wferrors.ErrCodePageNotFound:
		return http.StatusNotFound
	case wferrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *previewServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
