package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/buildinfo"
	"github.com/matzehuels/wireframe/pkg/cache"
	"github.com/matzehuels/wireframe/pkg/pipeline"
)

const (
	// appName is used for the cache directory and display.
	appName = "wireframe"

	// redisKeyPrefix namespaces keys in a shared Redis database.
	redisKeyPrefix = appName + ":"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Wireframe renders site descriptions as SVG page mockups",
		Long:          `Wireframe turns a structured description of a website's pages into static SVG wireframes: one fixed-size page per route with header, sized content sections, newsletter band and footer.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// cacheOpts selects the artifact cache backend.
type cacheOpts struct {
	noCache bool
	redis   string // address or redis:// URL; empty uses the file cache
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, opts cacheOpts) (*pipeline.Runner, error) {
	store, keyer, err := c.newCache(ctx, opts)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// newCache opens the requested backend. An unreachable Redis is fatal since
// the user asked for it explicitly; an unusable cache directory only
// disables caching.
func (c *CLI) newCache(ctx context.Context, opts cacheOpts) (cache.Cache, cache.Keyer, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil, nil
	case opts.redis != "":
		rc, err := cache.NewRedisCache(ctx, opts.redis)
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Debug("using redis cache", "addr", opts.redis)
		return rc, cache.NewScopedKeyer(nil, redisKeyPrefix), nil
	}

	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache(), nil, nil
	}
	return fc, nil, nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wireframe/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
