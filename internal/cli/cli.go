// Package cli implements the seedglyph command-line interface.
//
// Commands:
//   - render: draw a sketch for a seed token to SVG, PNG, PDF or JSON
//   - token: manufacture or inspect seed tokens
//   - sketches: list the available sketches
//   - settings: print the effective settings of a sketch for a token
//   - serve: run the HTTP rendering service
//   - cache: manage the artifact cache
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// also attached to the command context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seedglyph/pkg/buildinfo"
	"github.com/matzehuels/seedglyph/pkg/cache"
	"github.com/matzehuels/seedglyph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "seedglyph"

	// redisEnv names a Redis URL used as the artifact cache when --redis is
	// not given.
	redisEnv = "SEEDGLYPH_REDIS"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// verbose reports whether debug logging is on.
func (c *CLI) verbose() bool {
	return c.Logger.GetLevel() <= log.DebugLevel
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Seedglyph draws reproducible generative text art",
		Long:         `Seedglyph lays text out as fireworks, arcs and paths. Every picture is drawn from a short seed token, so the same token always gives the same picture.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.tokenCommand())
	root.AddCommand(c.sketchesCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags selects the artifact cache backend.
type cacheFlags struct {
	noCache bool
	redis   string
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&f.redis, "redis", "", "redis URL for a shared artifact cache (default $"+redisEnv+")")
}

func (f cacheFlags) redisURL() string {
	if f.redis != "" {
		return f.redis
	}
	return os.Getenv(redisEnv)
}

// newRunner creates a pipeline runner with the selected cache. Keys are
// scoped to the build version so a new renderer never serves stale artifacts.
func (c *CLI) newRunner(ctx context.Context, flags cacheFlags, logger *log.Logger) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, flags)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, buildinfo.Version+":"), logger), nil
}

func newCache(ctx context.Context, flags cacheFlags) (cache.Cache, error) {
	if flags.noCache {
		return cache.NewNullCache(), nil
	}
	if url := flags.redisURL(); url != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{URL: url})
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/seedglyph/).
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
