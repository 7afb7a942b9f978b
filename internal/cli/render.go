package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seedglyph/pkg/pipeline"
	"github.com/matzehuels/seedglyph/pkg/render"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	seed      string  // seed token; empty manufactures one
	settings  string  // TOML settings file, "-" for stdin
	output    string  // output file, directory or base path; "-" for stdout
	formats   string  // comma-separated output formats
	width     float64 // canvas width in pixels
	height    float64 // canvas height in pixels
	scale     float64 // PNG resolution multiplier
	embedFont bool    // embed the bundled font in SVG output
	refresh   bool    // ignore cached artifacts
	cache     cacheFlags
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [sketch]",
		Short: "Render a sketch for a seed token",
		Long: `Render a sketch for a seed token.

Without --seed a fresh token is manufactured and printed, so the result can
be reproduced later. Files are named <sketch>_<token>.<ext> unless --output
is given.`,
		Example: `  seedglyph render arc --seed 0xA1B2C3D4
  seedglyph render text-path --format svg,png --output art/
  seedglyph render firework --settings firework.toml --output - > out.svg`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: sketch.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return c.runRender(cmd.Context(), name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.seed, "seed", "s", "", "seed token (default: a fresh token)")
	cmd.Flags().StringVar(&opts.settings, "settings", "", "TOML settings file applied over the token's defaults (- for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, directory or base path (- for stdout)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the bundled font in SVG and PDF output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, name string, opts renderOpts) error {
	formats, err := render.ParseFormats(opts.formats)
	if err != nil {
		return err
	}
	if opts.output == "-" && len(formats) > 1 {
		return fmt.Errorf("--output - takes a single format, got %d", len(formats))
	}
	settings, err := readSettings(opts.settings)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.cache, c.pipelineLogger())
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Sketch:    name,
		Token:     opts.seed,
		Settings:  settings,
		Width:     opts.width,
		Height:    opts.height,
		Formats:   formats,
		Scale:     opts.scale,
		EmbedFont: opts.embedFont,
		Refresh:   opts.refresh,
	}

	var spinner *Spinner
	if !c.verbose() && opts.output != "-" {
		spinner = newSpinner(ctx, os.Stderr, "Rendering...")
		spinner.Start()
	}
	prog := newProgress(c.Logger)
	res, err := runner.Execute(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	kind := string(res.Frame.Kind)
	if opts.output == "-" {
		_, err := os.Stdout.Write(res.Artifacts[formats[0]])
		return err
	}

	for _, f := range formats {
		path := outputPath(opts.output, kind, res.Token.String(), f, len(formats))
		if err := writeFile(path, res.Artifacts[f]); err != nil {
			return err
		}
		printFile(path)
	}
	prog.done("rendered", "sketch", kind, "formats", len(formats))

	if res.Fresh {
		printKeyValue("seed", res.Token.String())
		printNextStep("Reproduce with", fmt.Sprintf("%s render %s --seed %s", appName, kind, res.Token))
	}
	printStats(res.Stats.Placements, res.Stats.Dropped, res.CacheInfo.RenderHit)
	if res.Frame.Degenerate {
		printWarning("path too short to carry text; rendered without glyphs")
	}
	return nil
}

// pipelineLogger hides per-stage pipeline logging unless --verbose is set;
// the command prints its own summary.
func (c *CLI) pipelineLogger() *log.Logger {
	if c.verbose() {
		return c.Logger
	}
	l := c.Logger.With()
	l.SetLevel(log.WarnLevel)
	return l
}

// readSettings loads a settings document; "" means none and "-" reads stdin.
func readSettings(path string) ([]byte, error) {
	switch path {
	case "":
		return nil, nil
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		return data, nil
	}
}

// outputPath decides where one format is written.
//
//   - no output: <sketch>_<token>.<ext> in the working directory
//   - an existing directory or a path ending in a separator: the default
//     name inside it
//   - a file path: used as is for a single format; with several formats its
//     known extension is replaced per format
func outputPath(output, kind, token string, f render.Format, nFormats int) string {
	name := render.Filename(kind, token, f)
	if output == "" {
		return name
	}
	if strings.HasSuffix(output, string(filepath.Separator)) || isDir(output) {
		return filepath.Join(output, name)
	}
	if nFormats == 1 {
		return output
	}
	return basePath(output) + "." + f.Ext()
}

// basePath strips a known format extension.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
