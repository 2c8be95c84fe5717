package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bonnth80/html-grid/internal/grid"
	"github.com/bonnth80/html-grid/internal/surface"
)

// Output formats understood by the render command.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Settings is the decoded configuration.
type Settings struct {
	Surface SurfaceSettings `toml:"surface"`
	Grid    LineSettings    `toml:"grid"`
	Major   MajorSettings   `toml:"major"`
	Colors  ColorSettings   `toml:"colors"`
	Logging LoggingSettings `toml:"logging"`
	Output  OutputSettings  `toml:"output"`
}

// SurfaceSettings sizes surfaces the tools create themselves.
type SurfaceSettings struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// LineSettings holds the line counts.
type LineSettings struct {
	Vertical   int `toml:"vertical"`
	Horizontal int `toml:"horizontal"`
}

// MajorSettings controls the major line overlay.
type MajorSettings struct {
	Enabled  bool `toml:"enabled"`
	Interval int  `toml:"interval"`
}

// ColorSettings holds colour strings.
type ColorSettings struct {
	Major      string `toml:"major"`
	Minor      string `toml:"minor"`
	Background string `toml:"background"`
	Fill       string `toml:"fill"`
}

// LoggingSettings selects the log level.
type LoggingSettings struct {
	Level string `toml:"level"`
}

// OutputSettings selects the render output format.
type OutputSettings struct {
	Format string `toml:"format"`
}

// Defaults returns the built-in settings layer.
func Defaults() map[string]any {
	return map[string]any{
		"surface": map[string]any{
			"width":  400,
			"height": 400,
		},
		"grid": map[string]any{
			"vertical":   grid.DefaultLineCount,
			"horizontal": grid.DefaultLineCount,
		},
		"major": map[string]any{
			"enabled":  false,
			"interval": grid.DefaultMajorLineInterval,
		},
		"colors": map[string]any{
			"major":      grid.DefaultColorMajor,
			"minor":      grid.DefaultColorMinor,
			"background": grid.DefaultBackgroundColor,
			"fill":       grid.DefaultFillColor,
		},
		"logging": map[string]any{
			"level": "info",
		},
		"output": map[string]any{
			"format": FormatPNG,
		},
	}
}

// Options controls where Load reads from.
type Options struct {
	// Path is the settings file; empty means defaults and environment only.
	Path string
	// FS reads the settings file. Defaults to the OS file system.
	FS FileSystem
	// Env supplies the environment layer. Defaults to GRID_ variables.
	Env Loader
}

// Load merges defaults, the settings file and the environment, then
// decodes and validates the result.
func Load(opts Options) (*Settings, error) {
	if opts.FS == nil {
		opts.FS = DefaultFS()
	}
	if opts.Env == nil {
		opts.Env = NewEnvLoader(DefaultEnvPrefix)
	}

	merged := Defaults()

	if opts.Path != "" {
		loader, err := LoaderFor(opts.FS, opts.Path)
		if err != nil {
			return nil, err
		}
		fileLayer, err := loader.Load()
		if err != nil {
			return nil, err
		}
		merged = DeepMerge(merged, fileLayer)
	}

	envLayer, err := opts.Env.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	merged = DeepMerge(merged, envLayer)

	s, err := Decode(merged)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Decode converts a merged settings tree into Settings.
func Decode(tree map[string]any) (*Settings, error) {
	data, err := toml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, &ParseError{Path: "<merged>", Message: err.Error(), Err: err}
	}
	return &s, nil
}

// Validate reports every setting the renderer would reject.
func (s *Settings) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v < 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrValidationFailed, name, v))
		}
	}
	positive("surface.width", s.Surface.Width)
	positive("surface.height", s.Surface.Height)
	positive("grid.vertical", s.Grid.Vertical)
	positive("grid.horizontal", s.Grid.Horizontal)
	positive("major.interval", s.Major.Interval)
	if s.Grid.Vertical > s.Surface.Width && s.Surface.Width > 0 {
		errs = append(errs, fmt.Errorf("%w: grid.vertical %d exceeds surface.width %d", ErrValidationFailed, s.Grid.Vertical, s.Surface.Width))
	}
	if s.Grid.Horizontal > s.Surface.Height && s.Surface.Height > 0 {
		errs = append(errs, fmt.Errorf("%w: grid.horizontal %d exceeds surface.height %d", ErrValidationFailed, s.Grid.Horizontal, s.Surface.Height))
	}

	colors := []struct{ name, value string }{
		{"colors.major", s.Colors.Major},
		{"colors.minor", s.Colors.Minor},
		{"colors.background", s.Colors.Background},
		{"colors.fill", s.Colors.Fill},
	}
	for _, c := range colors {
		if !surface.ValidColor(c.value) {
			errs = append(errs, fmt.Errorf("%w: %s: invalid color %q", ErrValidationFailed, c.name, c.value))
		}
	}

	if _, err := s.Logging.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch s.Output.Format {
	case FormatPNG, FormatSVG:
	default:
		errs = append(errs, fmt.Errorf("%w: output.format must be png or svg, got %q", ErrValidationFailed, s.Output.Format))
	}

	return errors.Join(errs...)
}

// Apply pushes the grid settings through the renderer's setters.
// Every setter is attempted; the returned error joins all rejections.
func (s *Settings) Apply(r *grid.Renderer) error {
	errs := []error{
		r.SetLineCounts(s.Grid.Vertical, s.Grid.Horizontal),
		r.SetMajorLineInterval(s.Major.Interval),
		r.SetColorMajor(s.Colors.Major, false),
		r.SetColorMinor(s.Colors.Minor, false),
		r.SetBackgroundColor(s.Colors.Background, false),
		r.SetFillColor(s.Colors.Fill),
	}
	r.SetDrawMajorLines(s.Major.Enabled)
	return errors.Join(errs...)
}

// SlogLevel parses the level name: debug, info, warn or error.
func (l LoggingSettings) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: invalid log level %q (must be debug, info, warn, or error)", ErrValidationFailed, l.Level)
	}
}

// NewLogger builds a text logger on w at the configured level.
func (l LoggingSettings) NewLogger(w io.Writer) *slog.Logger {
	level, _ := l.SlogLevel()
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
