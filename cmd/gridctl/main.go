// Package main is the entry point for gridctl, a command line front end
// for the grid renderer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bonnth80/html-grid/internal/config"
	"github.com/bonnth80/html-grid/internal/grid"
	"github.com/bonnth80/html-grid/internal/surface"
	"github.com/bonnth80/html-grid/internal/surface/raster"
	"github.com/bonnth80/html-grid/internal/surface/svg"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// errUsage reports bad command line arguments; the message has been printed.
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage(os.Stderr)
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "render":
		err = runRender(rest)
	case "view":
		err = runView(rest)
	case "script":
		err = runScript(rest)
	case "settings":
		err = runSettings(rest)
	case "version", "-version", "--version", "-v":
		fmt.Printf("gridctl %s (grid %s)\n", version, grid.Version)
		fmt.Printf("Commit: %s\n", commit)
		return 0
	case "help", "-help", "--help", "-h":
		usage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmd)
		usage(os.Stderr)
		return 2
	}

	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "gridctl - draw configurable grids\n\n")
	fmt.Fprintf(w, "Usage: gridctl <command> [options]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  render     Render the configured grid to PNG or SVG\n")
	fmt.Fprintf(w, "  view       Show the grid in the terminal, reloading on config changes\n")
	fmt.Fprintf(w, "  script     Run a Lua script against the grid and render the result\n")
	fmt.Fprintf(w, "  settings   Print the effective settings as JSON\n")
	fmt.Fprintf(w, "  version    Show version information\n")
	fmt.Fprintf(w, "\nRun 'gridctl <command> -h' for command options.\n")
	fmt.Fprintf(w, "\nSettings are read from -config (TOML or YAML) and GRID_* environment variables.\n")
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configPath string
	logLevel   string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Path to settings file (.toml, .yaml)")
	fs.StringVar(&c.configPath, "c", "", "Path to settings file (shorthand)")
	fs.StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the settings file")
}

// parseFlags parses args, mapping every failure except -h to errUsage.
// The flag package has already printed the problem.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	return nil
}

// load reads settings and applies the -log-level override.
func (c *commonFlags) load() (*config.Settings, error) {
	if c.logLevel != "" {
		switch c.logLevel {
		case "debug", "info", "warn", "error":
			// Valid
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", c.logLevel)
			return nil, errUsage
		}
	}

	s, err := config.Load(config.Options{Path: c.configPath})
	if err != nil {
		return nil, err
	}
	if c.logLevel != "" {
		s.Logging.Level = c.logLevel
	}
	return s, nil
}

// newRenderer creates a renderer on dst configured from s.
func newRenderer(s *config.Settings, dst surface.Surface, logger *slog.Logger) (*grid.Renderer, error) {
	r := grid.New(dst, grid.WithLogger(logger))
	if err := s.Apply(r); err != nil {
		return nil, fmt.Errorf("applying settings: %w", err)
	}
	return r, nil
}

// target is an off-screen surface plus its encoder.
type target struct {
	surface surface.Surface
	encode  func(io.Writer) error
}

// newTarget creates an off-screen surface for format.
func newTarget(s *config.Settings, format string) (*target, error) {
	w, h := s.Surface.Width, s.Surface.Height
	switch format {
	case config.FormatPNG:
		rs := raster.New(w, h)
		return &target{surface: rs, encode: rs.EncodePNG}, nil
	case config.FormatSVG:
		ss := svg.New(w, h, nil, svg.WithTitle("grid"), svg.WithBackground(s.Colors.Background))
		return &target{surface: ss, encode: ss.Encode}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be png or svg)", format)
	}
}

// outputFormat picks the format from an explicit flag, then the output
// file extension, then the settings.
func outputFormat(flagFormat, outPath string, s *config.Settings) string {
	if flagFormat != "" {
		return strings.ToLower(flagFormat)
	}
	switch strings.ToLower(filepath.Ext(outPath)) {
	case ".png":
		return config.FormatPNG
	case ".svg":
		return config.FormatSVG
	}
	return s.Output.Format
}

// writeOutput encodes t to path, or to stdout when path is "-".
func writeOutput(t *target, path string) (err error) {
	if path == "-" {
		return t.encode(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return t.encode(f)
}
