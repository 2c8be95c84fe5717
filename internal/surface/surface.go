// Package surface defines the drawing-surface contract the grid renderer paints on.
//
// A Surface mirrors the immediate-mode subset of an HTML canvas 2D context:
// path construction (BeginPath/MoveTo/LineTo/Stroke), rectangle fills and
// rectangle clears. Coordinates are in surface units with the origin at the
// top-left corner. Implementations live in the subpackages:
//
//	raster      in-memory RGBA image, PNG output
//	svg         retained SVG document
//	terminal    tcell screen, one cell per unit
//	htmlcanvas  browser canvas via syscall/js (js/wasm only)
//
// Surfaces are not safe for concurrent use unless an implementation says so.
package surface

// Surface is a fixed-size 2D drawing target.
// The renderer never creates or resizes a surface; it only reads its size
// and issues drawing calls against it.
type Surface interface {
	// Size returns the current surface dimensions.
	// It is read on every draw so out-of-band resizes are picked up.
	Size() (width, height int)

	// SetStrokeStyle sets the colour used by subsequent Stroke calls.
	SetStrokeStyle(color string)

	// SetFillStyle sets the colour used by subsequent FillRect calls.
	SetFillStyle(color string)

	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new sub-path at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight segment from the current point to (x, y).
	LineTo(x, y float64)

	// Stroke draws the current path with the stroke style.
	Stroke()

	// FillRect paints a rectangle with the fill style.
	FillRect(x, y, w, h float64)

	// ClearRect erases a rectangle back to transparent.
	ClearRect(x, y, w, h float64)
}

// Flusher is implemented by surfaces that buffer output until flushed.
type Flusher interface {
	Flush() error
}

// Flush flushes s if it buffers output.
func Flush(s Surface) error {
	if f, ok := s.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Point is a position on a surface.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// Vertical reports whether the segment is parallel to the y axis.
func (s Segment) Vertical() bool {
	return s.From.X == s.To.X
}

// Horizontal reports whether the segment is parallel to the x axis.
func (s Segment) Horizontal() bool {
	return s.From.Y == s.To.Y
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Covers reports whether r covers the whole of a width x height surface.
func (r Rect) Covers(width, height int) bool {
	return r.X <= 0 && r.Y <= 0 && r.X+r.W >= float64(width) && r.Y+r.H >= float64(height)
}

// Path accumulates segments between BeginPath and Stroke.
// Surface implementations embed it to share path bookkeeping.
type Path struct {
	segments []Segment
	current  Point
	started  bool
}

// BeginPath discards all segments.
func (p *Path) BeginPath() {
	p.segments = p.segments[:0]
	p.started = false
}

// MoveTo moves the pen without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.current = Point{X: x, Y: y}
	p.started = true
}

// LineTo appends a segment from the pen position.
// A LineTo without a preceding MoveTo behaves like MoveTo, as on a canvas.
func (p *Path) LineTo(x, y float64) {
	next := Point{X: x, Y: y}
	if p.started {
		p.segments = append(p.segments, Segment{From: p.current, To: next})
	}
	p.current = next
	p.started = true
}

// Segments returns the segments of the current path.
func (p *Path) Segments() []Segment {
	return p.segments
}
