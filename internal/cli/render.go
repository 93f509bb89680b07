package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	wferrors "github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/io"
	"github.com/matzehuels/wireframe/pkg/pipeline"
	"github.com/matzehuels/wireframe/pkg/site"
)

const (
	defaultInput   = "wireframes.enriched.json"
	defaultSitemap = "sitemap.json"
	defaultOutput  = "rendered_wireframes"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	sitemap     string
	output      string
	config      string
	style       string
	noOverlay   bool
	concurrency int
	runDir      bool
	refresh     bool
	cache       cacheOpts
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		sitemap: defaultSitemap,
		output:  defaultOutput,
	}

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Render every page of a site document to SVG",
		Long: `Render reads a site document (JSON or YAML) and writes one SVG wireframe per
page into the output directory. The root page becomes home.svg; other pages
are named after the page, with -2, -3 suffixes for duplicates.

Navigation labels come from the sitemap's primary_nav when available,
otherwise from the page names.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), cmd, input, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.sitemap, "sitemap", opts.sitemap, "sitemap file providing primary_nav (ignored when missing)")
	f.StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	f.StringVarP(&opts.config, "config", "c", "", "TOML config file (default ./"+defaultConfigFile+" when present)")
	f.StringVar(&opts.style, "style", pipeline.DefaultStyle, "stylesheet: sketch, simple")
	f.BoolVar(&opts.noOverlay, "no-overlay", false, "hide semantic overlay text")
	f.IntVar(&opts.concurrency, "concurrency", pipeline.DefaultConcurrency, "pages rendered in parallel")
	f.BoolVar(&opts.runDir, "run-dir", false, "write into a fresh <output>/<run-id> subdirectory")
	f.BoolVar(&opts.refresh, "refresh", false, "ignore cached pages and re-render")
	addCacheFlags(cmd, &opts.cache)
	registerRenderCompletions(cmd)

	return cmd
}

// addCacheFlags registers the cache backend flags.
func addCacheFlags(cmd *cobra.Command, opts *cacheOpts) {
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.redis, "redis", os.Getenv("WIREFRAME_REDIS"), "redis address or URL for a shared cache")
}

// pipelineOptions merges the config file with flags; flags the user set win.
func pipelineOptions(cmd *cobra.Command, fc fileConfig, style string, noOverlay bool, concurrency int) pipeline.Options {
	opts := pipeline.Options{
		Config:      fc.Layout,
		Style:       fc.Style,
		NoOverlay:   !fc.overlay(),
		Concurrency: fc.Concurrency,
	}
	flags := cmd.Flags()
	if flags.Changed("style") || opts.Style == "" {
		opts.Style = style
	}
	if flags.Changed("no-overlay") {
		opts.NoOverlay = noOverlay
	}
	if flags.Changed("concurrency") || opts.Concurrency == 0 {
		opts.Concurrency = concurrency
	}
	return opts
}

func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	fc, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "source", fc.describe())
	if opts.cache.redis == "" && !cmd.Flags().Changed("redis") {
		opts.cache.redis = fc.Cache.Redis
	}

	prog := newProgress(logger)
	doc, err := io.ImportDocument(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %d pages", input, len(doc.Pages))

	popts := pipelineOptions(cmd, fc, opts.style, opts.noOverlay, opts.concurrency)
	popts.Sitemap = c.loadSitemap(ctx, opts.sitemap)
	popts.Refresh = opts.refresh
	popts.Logger = logger

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d pages", len(doc.Pages)))
	if logger.GetLevel() > LogDebug {
		spin.Start()
	}
	result, err := runner.Execute(ctx, doc, popts)
	spin.Stop()
	if err != nil {
		return err
	}

	outDir := opts.output
	if opts.runDir {
		if err := wferrors.ValidateRunID(result.RunID); err != nil {
			return err
		}
		outDir = filepath.Join(outDir, result.RunID)
	}
	paths, err := io.WriteArtifacts(outDir, result.Artifacts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d pages", len(paths)))

	printRenderSummary(result, outDir)
	printNextStep("Preview", appName+" serve "+input)
	return nil
}

// loadSitemap reads the sitemap when present. A malformed sitemap is
// reported and skipped since navigation falls back to page names.
func (c *CLI) loadSitemap(ctx context.Context, path string) *site.Sitemap {
	sm, err := io.OptionalSitemap(path)
	if err != nil {
		loggerFromContext(ctx).Warn("ignoring sitemap", "path", path, "err", err)
		return nil
	}
	return sm
}

// printRenderSummary prints a table of rendered pages.
func printRenderSummary(res *pipeline.Result, outDir string) {
	rows := make([][]string, 0, len(res.Pages))
	for _, p := range res.Pages {
		status := iconFresh
		if p.CacheHit {
			status = iconCached
		}
		omitted := ""
		if p.Omitted > 0 {
			omitted = strconv.Itoa(p.Omitted)
		}
		rows = append(rows, []string{p.Name, p.File, strconv.Itoa(p.Sections), omitted, status})
	}
	fmt.Println(pageTable(rows))

	printSuccess("Wrote %d wireframes", res.Stats.Pages)
	printKeyValue("Output", outDir)
	printKeyValue("Run", res.RunID)
	printKeyValue("Nav", fmt.Sprintf("%s (%d labels)", res.Nav.Source(), res.Nav.Len()))
	printStats(res.Stats.Rendered, res.Stats.CacheHits)
	if res.Stats.Omitted > 0 {
		printWarning("%d pages were truncated to fit the canvas", res.Stats.Omitted)
	}
}

// pageTable renders the per-page summary rows.
func pageTable(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Page", "File", "Sections", "Omitted", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case col == 3 && rows[row][3] != "":
				return base.Foreground(colorYellow)
			case col == 4 && rows[row][4] == iconCached:
				return base.Inherit(styleCached)
			case col == 4:
				return base.Inherit(styleComputed)
			}
			return base
		}).
		Render()
}
