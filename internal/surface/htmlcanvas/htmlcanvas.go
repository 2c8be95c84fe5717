//go:build js && wasm

// Package htmlcanvas implements surface.Surface on a browser canvas element.
//
// Calls are forwarded to the element's CanvasRenderingContext2D through
// syscall/js. Colour strings pass through unchanged since the browser parses
// them itself.
package htmlcanvas

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/bonnth80/html-grid/internal/surface"
)

// ErrNoCanvas is returned when the element cannot be found or has no 2D context.
var ErrNoCanvas = errors.New("canvas element not found")

// Surface wraps a canvas element and its 2D context.
type Surface struct {
	canvas js.Value
	ctx    js.Value
}

// New looks up the canvas element with the given id.
func New(id string) (*Surface, error) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", id)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("%w: #%s", ErrNoCanvas, id)
	}
	return FromElement(canvas)
}

// FromElement wraps an existing canvas element.
func FromElement(canvas js.Value) (*Surface, error) {
	ctx := canvas.Call("getContext", "2d")
	if ctx.IsNull() || ctx.IsUndefined() {
		return nil, ErrNoCanvas
	}
	ctx.Set("lineWidth", 1)
	return &Surface{canvas: canvas, ctx: ctx}, nil
}

// Element returns the wrapped canvas element.
func (s *Surface) Element() js.Value {
	return s.canvas
}

// Size reads the canvas bitmap size, not its CSS size.
func (s *Surface) Size() (int, int) {
	return s.canvas.Get("width").Int(), s.canvas.Get("height").Int()
}

func (s *Surface) SetStrokeStyle(color string) { s.ctx.Set("strokeStyle", color) }
func (s *Surface) SetFillStyle(color string)   { s.ctx.Set("fillStyle", color) }
func (s *Surface) BeginPath()                  { s.ctx.Call("beginPath") }
func (s *Surface) MoveTo(x, y float64)         { s.ctx.Call("moveTo", x, y) }
func (s *Surface) LineTo(x, y float64)         { s.ctx.Call("lineTo", x, y) }
func (s *Surface) Stroke()                     { s.ctx.Call("stroke") }

func (s *Surface) FillRect(x, y, w, h float64) {
	s.ctx.Call("fillRect", x, y, w, h)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.ctx.Call("clearRect", x, y, w, h)
}

// Ensure Surface implements surface.Surface.
var _ surface.Surface = (*Surface)(nil)
