package surface

// OpKind identifies a recorded drawing primitive.
type OpKind int

const (
	OpStrokeStyle OpKind = iota
	OpFillStyle
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpStroke
	OpFillRect
	OpClearRect
)

var opNames = [...]string{
	OpStrokeStyle: "strokeStyle",
	OpFillStyle:   "fillStyle",
	OpBeginPath:   "beginPath",
	OpMoveTo:      "moveTo",
	OpLineTo:      "lineTo",
	OpStroke:      "stroke",
	OpFillRect:    "fillRect",
	OpClearRect:   "clearRect",
}

// String returns the canvas method name of the op.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one recorded call.
type Op struct {
	Kind  OpKind
	Style string
	X, Y  float64
	W, H  float64
}

// StrokedSegment is a segment painted by Stroke with the style active at the time.
type StrokedSegment struct {
	Segment
	Color string
}

// PaintedRect is a rectangle filled with a colour.
type PaintedRect struct {
	Rect
	Color string
}

// Recorder is a Surface that records every call instead of drawing.
// It is the test double for renderer code.
type Recorder struct {
	Path

	width, height int
	strokeStyle   string
	fillStyle     string

	ops     []Op
	strokes []StrokedSegment
	fills   []PaintedRect
	clears  []Rect
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:       width,
		height:      height,
		strokeStyle: "#000000",
		fillStyle:   "#000000",
	}
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) SetStrokeStyle(color string) {
	r.strokeStyle = color
	r.ops = append(r.ops, Op{Kind: OpStrokeStyle, Style: color})
}

func (r *Recorder) SetFillStyle(color string) {
	r.fillStyle = color
	r.ops = append(r.ops, Op{Kind: OpFillStyle, Style: color})
}

func (r *Recorder) BeginPath() {
	r.Path.BeginPath()
	r.ops = append(r.ops, Op{Kind: OpBeginPath})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Path.MoveTo(x, y)
	r.ops = append(r.ops, Op{Kind: OpMoveTo, X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Path.LineTo(x, y)
	r.ops = append(r.ops, Op{Kind: OpLineTo, X: x, Y: y})
}

func (r *Recorder) Stroke() {
	for _, seg := range r.Segments() {
		r.strokes = append(r.strokes, StrokedSegment{Segment: seg, Color: r.strokeStyle})
	}
	r.ops = append(r.ops, Op{Kind: OpStroke, Style: r.strokeStyle})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.fills = append(r.fills, PaintedRect{Rect: Rect{X: x, Y: y, W: w, H: h}, Color: r.fillStyle})
	r.ops = append(r.ops, Op{Kind: OpFillRect, Style: r.fillStyle, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.clears = append(r.clears, Rect{X: x, Y: y, W: w, H: h})
	r.ops = append(r.ops, Op{Kind: OpClearRect, X: x, Y: y, W: w, H: h})
}

// Resize simulates the host resizing the surface out of band.
func (r *Recorder) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Ops returns all recorded calls in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Strokes returns every stroked segment in order.
func (r *Recorder) Strokes() []StrokedSegment {
	return r.strokes
}

// StrokesWithColor returns the stroked segments painted in color.
func (r *Recorder) StrokesWithColor(color string) []StrokedSegment {
	var out []StrokedSegment
	for _, s := range r.strokes {
		if s.Color == color {
			out = append(out, s)
		}
	}
	return out
}

// Fills returns every filled rectangle in order.
func (r *Recorder) Fills() []PaintedRect {
	return r.fills
}

// Clears returns every cleared rectangle in order.
func (r *Recorder) Clears() []Rect {
	return r.clears
}

// Reset forgets all recorded calls. Size and styles are kept.
func (r *Recorder) Reset() {
	r.Path.BeginPath()
	r.ops = nil
	r.strokes = nil
	r.fills = nil
	r.clears = nil
}

// Ensure Recorder implements Surface.
var _ Surface = (*Recorder)(nil)
