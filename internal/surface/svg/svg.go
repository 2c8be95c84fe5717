// Package svg implements surface.Surface as a retained SVG document.
//
// Drawing calls build an element list that is written with
// github.com/ajstarks/svgo on Flush or Encode. svgo works in integer
// coordinates: stroke coordinates are floored and emitted inside a
// translate(0.5,0.5) group, which reproduces the half-unit line offset;
// rectangle edges are rounded to the nearest unit.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/bonnth80/html-grid/internal/surface"
)

// DefaultBackground paints partially cleared areas.
const DefaultBackground = "#FFFFFF"

type elementKind int

const (
	elementLine elementKind = iota
	elementRect
)

type element struct {
	kind           elementKind
	x1, y1, x2, y2 int
	style          string
}

// Surface accumulates drawing calls as SVG elements.
type Surface struct {
	surface.Path

	width, height int
	out           io.Writer
	title         string
	background    string

	stroke   color.NRGBA
	fill     color.NRGBA
	elements []element
}

// Option configures a Surface.
type Option func(*Surface)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(s *Surface) {
		s.title = title
	}
}

// WithBackground sets the colour used for partial clears.
func WithBackground(c string) Option {
	return func(s *Surface) {
		if surface.ValidColor(c) {
			s.background = c
		}
	}
}

// New creates an SVG surface. Flush writes the document to out; out may be
// nil when only Encode is used.
func New(width, height int, out io.Writer, opts ...Option) *Surface {
	s := &Surface{
		width:      width,
		height:     height,
		out:        out,
		background: DefaultBackground,
		stroke:     color.NRGBA{A: 255},
		fill:       color.NRGBA{A: 255},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the document size. Existing elements are kept.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
}

func (s *Surface) SetStrokeStyle(c string) {
	if parsed, err := surface.ParseColor(c); err == nil {
		s.stroke = parsed
	}
}

func (s *Surface) SetFillStyle(c string) {
	if parsed, err := surface.ParseColor(c); err == nil {
		s.fill = parsed
	}
}

func (s *Surface) Stroke() {
	style := paint("stroke", s.stroke) + ";stroke-width:1;shape-rendering:crispEdges"
	for _, seg := range s.Segments() {
		s.elements = append(s.elements, element{
			kind:  elementLine,
			x1:    int(math.Floor(seg.From.X)),
			y1:    int(math.Floor(seg.From.Y)),
			x2:    int(math.Floor(seg.To.X)),
			y2:    int(math.Floor(seg.To.Y)),
			style: style,
		})
	}
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.rect(x, y, w, h, paint("fill", s.fill))
}

// ClearRect drops every element when the whole surface is cleared.
// A partial clear paints the background colour instead, since SVG has no
// way to erase part of an element.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if (surface.Rect{X: x, Y: y, W: w, H: h}).Covers(s.width, s.height) {
		s.elements = s.elements[:0]
		return
	}
	s.rect(x, y, w, h, paint("fill", surface.MustParseColor(s.background)))
}

func (s *Surface) rect(x, y, w, h float64, style string) {
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	if x1 <= x0 || y1 <= y0 {
		return
	}
	s.elements = append(s.elements, element{
		kind:  elementRect,
		x1:    x0,
		y1:    y0,
		x2:    x1,
		y2:    y1,
		style: style + ";shape-rendering:crispEdges",
	})
}

// Len returns the number of retained elements.
func (s *Surface) Len() int {
	return len(s.elements)
}

// Encode writes the document to w.
func (s *Surface) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	doc := svgo.New(ew)
	doc.Start(s.width, s.height)
	if s.title != "" {
		doc.Title(s.title)
	}

	inLines := false
	for _, e := range s.elements {
		switch e.kind {
		case elementLine:
			if !inLines {
				doc.Gtransform("translate(0.5,0.5)")
				inLines = true
			}
			doc.Line(e.x1, e.y1, e.x2, e.y2, e.style)
		case elementRect:
			if inLines {
				doc.Gend()
				inLines = false
			}
			doc.Rect(e.x1, e.y1, e.x2-e.x1, e.y2-e.y1, e.style)
		}
	}
	if inLines {
		doc.Gend()
	}
	doc.End()
	return ew.err
}

// Flush writes the document to the writer given to New.
func (s *Surface) Flush() error {
	if s.out == nil {
		return nil
	}
	return s.Encode(s.out)
}

// paint renders an SVG paint property with a separate opacity.
func paint(prop string, c color.NRGBA) string {
	out := fmt.Sprintf("%s:rgb(%d,%d,%d)", prop, c.R, c.G, c.B)
	if c.A != 255 {
		out += fmt.Sprintf(";%s-opacity:%.3f", prop, float64(c.A)/255)
	}
	return out
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Ensure Surface implements surface.Surface and surface.Flusher.
var (
	_ surface.Surface = (*Surface)(nil)
	_ surface.Flusher = (*Surface)(nil)
)
