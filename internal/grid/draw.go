package grid

import (
	"github.com/bonnth80/html-grid/internal/surface"
)

// ClearSurface erases the entire surface, not just the grid lines.
// Anything else drawn on the surface is lost.
func (r *Renderer) ClearSurface() {
	w, h := r.surface.Size()
	r.logger.Warn("surface is being cleared", "id", r.id, "width", w, "height", h)
	r.surface.ClearRect(0, 0, float64(w), float64(h))
}

// DrawMinorLines strokes one vertical line per column and one horizontal
// line per row in the minor colour. It does not clear first.
func (r *Renderer) DrawMinorLines() {
	r.drawLines(r.cfg.ColorMinor, 0, 1)
}

// DrawMajorLines strokes a line every MajorLineInterval cells in the major
// colour. It does nothing while major lines are disabled.
func (r *Renderer) DrawMajorLines() {
	if !r.cfg.DrawMajorLines {
		return
	}
	r.drawLines(r.cfg.ColorMajor, r.cfg.MajorLineInterval, r.cfg.MajorLineInterval)
}

// DrawGrid clears the surface, then draws minor lines and, when enabled,
// major lines. It is the only operation that clears before drawing.
func (r *Renderer) DrawGrid() {
	r.ClearSurface()
	r.DrawMinorLines()
	r.DrawMajorLines()
	r.logger.Debug("grid drawn", "id", r.id,
		"vertical", r.cfg.LineCountVertical,
		"horizontal", r.cfg.LineCountHorizontal,
		"major", r.cfg.DrawMajorLines,
	)
}

// drawLines strokes vertical lines at cell indexes first, first+step, ...
// and then the horizontal lines at the same indexes, in color.
// Lines start at PixelOffset and stop before the far edge.
func (r *Renderer) drawLines(color string, first, step int) {
	w, h := r.surface.Size()
	width, height := float64(w), float64(h)
	cw, ch := r.CellWidth(), r.CellHeight()

	r.surface.SetStrokeStyle(color)

	r.surface.BeginPath()
	for i := first; ; i += step {
		x := PixelOffset + float64(i)*cw
		if x >= width {
			break
		}
		r.surface.MoveTo(x, PixelOffset)
		r.surface.LineTo(x, height)
	}
	r.surface.Stroke()

	r.surface.BeginPath()
	for i := first; ; i += step {
		y := PixelOffset + float64(i)*ch
		if y >= height {
			break
		}
		r.surface.MoveTo(PixelOffset, y)
		r.surface.LineTo(width, y)
	}
	r.surface.Stroke()
}

// FillCell paints cell (col, row) inset by one unit from its top-left
// corner, leaving the grid lines visible. An empty color uses FillColor; a
// nil dst paints on the bound surface. Cell geometry always comes from the
// bound surface, so dst can be an off-screen surface of the same size.
func (r *Renderer) FillCell(col, row int, color string, dst surface.Surface) error {
	if col < 0 || row < 0 || col >= r.cfg.LineCountVertical || row >= r.cfg.LineCountHorizontal {
		r.logger.Warn("cell out of bounds", "id", r.id, "col", col, "row", row)
		return &ValidationError{Field: "cell", Value: [2]int{col, row}, Err: ErrOutOfBounds}
	}
	if color == "" {
		color = r.cfg.FillColor
	}
	if !surface.ValidColor(color) {
		r.logger.Error("invalid color string", "id", r.id, "field", "fill", "value", color, "hint", surface.ColorHint)
		return &ValidationError{Field: "fill", Value: color, Err: ErrInvalidColor}
	}
	if dst == nil {
		dst = r.surface
	}

	rect := r.CellRect(col, row)
	dst.SetFillStyle(color)
	dst.FillRect(rect.X, rect.Y, rect.W, rect.H)
	return nil
}

// ClearCell paints cell (col, row) with the background colour.
func (r *Renderer) ClearCell(col, row int) error {
	return r.FillCell(col, row, r.cfg.BackgroundColor, nil)
}

// CellRect returns the fill rectangle of cell (col, row): the cell origin
// moved one unit right and down, one unit smaller in each dimension.
// Cells narrower than one unit get a zero-size rectangle.
func (r *Renderer) CellRect(col, row int) surface.Rect {
	cw, ch := r.CellWidth(), r.CellHeight()
	return surface.Rect{
		X: float64(col)*cw + 1,
		Y: float64(row)*ch + 1,
		W: max(0, cw-1),
		H: max(0, ch-1),
	}
}

// CellAt returns the cell containing surface point (x, y).
// ok is false when the point is outside the grid.
func (r *Renderer) CellAt(x, y float64) (col, row int, ok bool) {
	w, h := r.surface.Size()
	// NaN fails every comparison, so test for the inside rather than the outside.
	if !(x >= 0 && x < float64(w) && y >= 0 && y < float64(h)) {
		return 0, 0, false
	}
	col = int(x / r.CellWidth())
	row = int(y / r.CellHeight())
	if col >= r.cfg.LineCountVertical || row >= r.cfg.LineCountHorizontal {
		return 0, 0, false
	}
	return col, row, true
}
