package grid

import (
	"github.com/google/uuid"

	"github.com/bonnth80/html-grid/internal/surface"
)

// Renderer draws a grid on one surface.
type Renderer struct {
	id      string
	surface surface.Surface
	logger  Logger
	cfg     Config
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger routes the renderer's notices to l.
func WithLogger(l Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithID overrides the generated instance id.
func WithID(id string) Option {
	return func(r *Renderer) {
		r.id = id
	}
}

// New creates a renderer with default settings bound to s.
// s must not be nil; the renderer never creates or resizes it.
func New(s surface.Surface, opts ...Option) *Renderer {
	r := &Renderer{
		id:      uuid.NewString(),
		surface: s,
		logger:  NopLogger,
		cfg:     DefaultConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}

	w, h := s.Size()
	r.logger.Info("grid initialized", "id", r.id, "width", w, "height", h)
	return r
}

// ID returns the renderer's instance id.
func (r *Renderer) ID() string {
	return r.id
}

// Surface returns the bound surface.
func (r *Renderer) Surface() surface.Surface {
	return r.surface
}

// Config returns a snapshot of the current settings with cell dimensions
// computed from the current surface size.
func (r *Renderer) Config() Config {
	cfg := r.cfg.clone()
	cfg.CellWidth = r.CellWidth()
	cfg.CellHeight = r.CellHeight()
	return cfg
}

// LineCounts returns the number of vertical and horizontal lines.
func (r *Renderer) LineCounts() (vertical, horizontal int) {
	return r.cfg.LineCountVertical, r.cfg.LineCountHorizontal
}

// SetLineCounts sets both line counts. Both must be positive; on error
// neither count changes.
func (r *Renderer) SetLineCounts(vertical, horizontal int) error {
	if err := r.checkPositive("lineCountVertical", vertical); err != nil {
		return err
	}
	if err := r.checkPositive("lineCountHorizontal", horizontal); err != nil {
		return err
	}
	r.cfg.LineCountVertical = vertical
	r.cfg.LineCountHorizontal = horizontal
	return nil
}

// SetVerticalLines sets the number of vertical lines (columns).
func (r *Renderer) SetVerticalLines(n int) error {
	return r.SetLineCounts(n, r.cfg.LineCountHorizontal)
}

// SetHorizontalLines sets the number of horizontal lines (rows).
func (r *Renderer) SetHorizontalLines(n int) error {
	return r.SetLineCounts(r.cfg.LineCountVertical, n)
}

// CellWidth returns the surface width divided by the vertical line count.
// It is computed on every call.
func (r *Renderer) CellWidth() float64 {
	w, _ := r.surface.Size()
	return float64(w) / float64(r.cfg.LineCountVertical)
}

// CellHeight returns the surface height divided by the horizontal line count.
// It is computed on every call.
func (r *Renderer) CellHeight() float64 {
	_, h := r.surface.Size()
	return float64(h) / float64(r.cfg.LineCountHorizontal)
}

// ColorMajor returns the major line colour.
func (r *Renderer) ColorMajor() string {
	return r.cfg.ColorMajor
}

// ColorMinor returns the minor line colour.
func (r *Renderer) ColorMinor() string {
	return r.cfg.ColorMinor
}

// BackgroundColor returns the colour ClearCell paints with.
func (r *Renderer) BackgroundColor() string {
	return r.cfg.BackgroundColor
}

// FillColor returns the default FillCell colour.
func (r *Renderer) FillColor() string {
	return r.cfg.FillColor
}

// SetColorMajor validates and stores the major line colour, redrawing the
// grid when redraw is set. An invalid colour leaves the current one in place
// and returns an error wrapping ErrInvalidColor.
func (r *Renderer) SetColorMajor(color string, redraw bool) error {
	return r.setColor("colorMajor", &r.cfg.ColorMajor, color, redraw)
}

// SetColorMinor is SetColorMajor for the minor line colour.
func (r *Renderer) SetColorMinor(color string, redraw bool) error {
	return r.setColor("colorMinor", &r.cfg.ColorMinor, color, redraw)
}

// SetBackgroundColor is SetColorMajor for the background colour.
func (r *Renderer) SetBackgroundColor(color string, redraw bool) error {
	return r.setColor("backgroundColor", &r.cfg.BackgroundColor, color, redraw)
}

// SetFillColor sets the default FillCell colour.
func (r *Renderer) SetFillColor(color string) error {
	return r.setColor("fillColor", &r.cfg.FillColor, color, false)
}

func (r *Renderer) setColor(field string, dst *string, color string, redraw bool) error {
	if !surface.ValidColor(color) {
		r.logger.Error("invalid color string", "id", r.id, "field", field, "value", color, "hint", surface.ColorHint)
		return &ValidationError{Field: field, Value: color, Err: ErrInvalidColor}
	}
	*dst = color
	if redraw {
		r.DrawGrid()
	}
	return nil
}

// DrawMajorLinesEnabled reports whether DrawGrid adds major lines.
func (r *Renderer) DrawMajorLinesEnabled() bool {
	return r.cfg.DrawMajorLines
}

// SetDrawMajorLines enables or disables the major line overlay.
func (r *Renderer) SetDrawMajorLines(enabled bool) {
	r.cfg.DrawMajorLines = enabled
}

// MajorLineInterval returns the number of cells between major lines.
func (r *Renderer) MajorLineInterval() int {
	return r.cfg.MajorLineInterval
}

// SetMajorLineInterval sets the number of cells between major lines; n must be at least 1.
func (r *Renderer) SetMajorLineInterval(n int) error {
	if err := r.checkPositive("majorLineInterval", n); err != nil {
		return err
	}
	r.cfg.MajorLineInterval = n
	return nil
}

func (r *Renderer) checkPositive(field string, n int) error {
	if n >= 1 {
		return nil
	}
	r.logger.Warn("rejected non-positive value", "id", r.id, "field", field, "value", n)
	return &ValidationError{Field: field, Value: n, Err: ErrInvalidArgument}
}
