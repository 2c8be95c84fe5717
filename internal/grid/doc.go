// Package grid draws a configurable line grid on a drawing surface.
//
// A Renderer owns one grid configuration and is bound to one
// surface.Surface for its lifetime. It tracks the number of vertical and
// horizontal lines, line colours and an optional major-line overlay drawn
// every N cells. Cell dimensions are derived from the surface size on every
// read, so a host that resizes the surface out of band gets correct
// geometry on the next call.
//
// Lines are placed half a unit into each pixel (see PixelOffset) so that
// one-unit strokes cover exactly one pixel row or column instead of being
// anti-aliased across two.
//
// Usage:
//
//	r := grid.New(raster.New(400, 400), grid.WithLogger(slog.Default()))
//	if err := r.SetColorMajor("#888", false); err != nil {
//	    // the previous colour is kept
//	}
//	r.SetDrawMajorLines(true)
//	r.DrawGrid()
//	_ = r.FillCell(2, 3, "#00F", nil)
//
// A Renderer is not safe for concurrent use; the surfaces it draws on are
// single-threaded immediate-mode targets.
package grid
