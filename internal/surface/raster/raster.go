// Package raster implements surface.Surface on an in-memory RGBA image.
//
// Strokes are one unit wide and centred on the path, so a vertical line at
// x = k + 0.5 covers exactly pixel column k. Fills and strokes are composited
// with golang.org/x/image/vector, which gives canvas-like coverage for
// fractional coordinates.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/bonnth80/html-grid/internal/surface"
)

// LineWidth is the stroke width in surface units.
const LineWidth = 1.0

// Surface draws into an *image.RGBA.
type Surface struct {
	surface.Path

	img    *image.RGBA
	raster *vector.Rasterizer

	stroke color.NRGBA
	fill   color.NRGBA
}

// New creates a transparent surface of the given size.
func New(width, height int) *Surface {
	s := &Surface{
		stroke: color.NRGBA{A: 255},
		fill:   color.NRGBA{A: 255},
		raster: vector.NewRasterizer(width, height),
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return s
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Resize replaces the backing image with a transparent one of the new size.
func (s *Surface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetStrokeStyle sets the stroke colour. Invalid strings are ignored and the
// previous colour is kept, as a canvas context does.
func (s *Surface) SetStrokeStyle(c string) {
	if parsed, err := surface.ParseColor(c); err == nil {
		s.stroke = parsed
	}
}

// SetFillStyle sets the fill colour. Invalid strings are ignored.
func (s *Surface) SetFillStyle(c string) {
	if parsed, err := surface.ParseColor(c); err == nil {
		s.fill = parsed
	}
}

func (s *Surface) Stroke() {
	half := LineWidth / 2
	for _, seg := range s.Segments() {
		dx := seg.To.X - seg.From.X
		dy := seg.To.Y - seg.From.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit normal scaled to half the line width.
		nx, ny := -dy/length*half, dx/length*half
		s.polygon(s.stroke,
			surface.Point{X: seg.From.X + nx, Y: seg.From.Y + ny},
			surface.Point{X: seg.To.X + nx, Y: seg.To.Y + ny},
			surface.Point{X: seg.To.X - nx, Y: seg.To.Y - ny},
			surface.Point{X: seg.From.X - nx, Y: seg.From.Y - ny},
		)
	}
}

func (s *Surface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.polygon(s.fill,
		surface.Point{X: x, Y: y},
		surface.Point{X: x + w, Y: y},
		surface.Point{X: x + w, Y: y + h},
		surface.Point{X: x, Y: y + h},
	)
}

// ClearRect resets every pixel touched by the rectangle to transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// EncodePNG writes the surface as a PNG image.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// polygon fills a closed polygon with c over the existing pixels.
func (s *Surface) polygon(c color.NRGBA, pts ...surface.Point) {
	b := s.img.Bounds()
	s.raster.Reset(b.Dx(), b.Dy())
	s.raster.DrawOp = draw.Over
	s.raster.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.raster.LineTo(float32(p.X), float32(p.Y))
	}
	s.raster.ClosePath()
	s.raster.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

// Ensure Surface implements surface.Surface.
var _ surface.Surface = (*Surface)(nil)
