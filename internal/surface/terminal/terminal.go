// Package terminal implements surface.Surface on a tcell screen.
//
// Every terminal cell is one surface unit. Strokes are drawn with box-drawing
// runes in the stroke colour; fills paint the cell background. A cell is
// covered by a rectangle when its centre lies inside it, which keeps a
// half-unit offset line in the cell it was aimed at.
package terminal

import (
	"image/color"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bonnth80/html-grid/internal/surface"
)

// Box-drawing runes used for grid lines.
const (
	RuneVertical   = '│'
	RuneHorizontal = '─'
	RuneCross      = '┼'
)

// Surface draws onto a tcell.Screen.
// Screen access is serialized so an event loop can Sync while the renderer
// draws; path construction is not.
type Surface struct {
	surface.Path

	screen tcell.Screen
	mu     sync.Mutex

	stroke tcell.Color
	fill   tcell.Color
}

// New creates a surface on the controlling terminal.
// Init must be called before drawing.
func New() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing screen, such as tcell's simulation screen.
func NewWithScreen(screen tcell.Screen) *Surface {
	return &Surface{
		screen: screen,
		stroke: tcell.ColorWhite,
		fill:   tcell.ColorWhite,
	}
}

// Init initializes the underlying screen.
func (s *Surface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Init()
}

// Shutdown restores the terminal.
func (s *Surface) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Fini()
}

// Screen returns the underlying screen.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

// PollEvent waits for the next terminal event.
func (s *Surface) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync repaints the whole terminal, typically after a resize.
func (s *Surface) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Sync()
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Size()
}

func (s *Surface) SetStrokeStyle(c string) {
	if parsed, err := surface.ParseColor(c); err == nil {
		s.mu.Lock()
		s.stroke = convertColor(parsed)
		s.mu.Unlock()
	}
}

func (s *Surface) SetFillStyle(c string) {
	if parsed, err := surface.ParseColor(c); err == nil {
		s.mu.Lock()
		s.fill = convertColor(parsed)
		s.mu.Unlock()
	}
}

// Stroke draws the axis-aligned segments of the current path.
// Diagonal segments have no box-drawing equivalent and are skipped.
func (s *Surface) Stroke() {
	s.mu.Lock()
	defer s.mu.Unlock()

	width, height := s.screen.Size()
	for _, seg := range s.Segments() {
		switch {
		case seg.Vertical() && seg.Horizontal():
			continue
		case seg.Vertical():
			x := int(math.Floor(seg.From.X))
			if x < 0 || x >= width {
				continue
			}
			y0, y1 := span(seg.From.Y, seg.To.Y, height)
			for y := y0; y <= y1; y++ {
				s.plot(x, y, RuneVertical, RuneHorizontal)
			}
		case seg.Horizontal():
			y := int(math.Floor(seg.From.Y))
			if y < 0 || y >= height {
				continue
			}
			x0, x1 := span(seg.From.X, seg.To.X, width)
			for x := x0; x <= x1; x++ {
				s.plot(x, y, RuneHorizontal, RuneVertical)
			}
		}
	}
}

// plot sets a line rune, turning it into a crossing when it meets a
// perpendicular line already on screen.
func (s *Surface) plot(x, y int, r, perpendicular rune) {
	existing, _, style, _ := s.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	if existing == perpendicular || existing == RuneCross {
		r = RuneCross
	}
	s.screen.SetContent(x, y, r, nil, style.Foreground(s.stroke))
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	style := tcell.StyleDefault.Background(s.fill)
	s.paint(x, y, w, h, style)
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	width, height := s.screen.Size()
	if (surface.Rect{X: x, Y: y, W: w, H: h}).Covers(width, height) {
		s.screen.Clear()
		return
	}
	s.paint(x, y, w, h, tcell.StyleDefault)
}

// paint sets every cell whose centre lies inside the rectangle to a blank rune.
func (s *Surface) paint(x, y, w, h float64, style tcell.Style) {
	width, height := s.screen.Size()
	x0, x1 := centres(x, w, width)
	y0, y1 := centres(y, h, height)
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// Flush shows pending changes on the terminal.
func (s *Surface) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Show()
	return nil
}

// span returns the inclusive cell range touched by a line from a to b,
// clipped to [0, limit).
func span(a, b float64, limit int) (int, int) {
	lo, hi := math.Min(a, b), math.Max(a, b)
	start := max(0, int(math.Floor(lo)))
	end := min(limit-1, int(math.Ceil(hi))-1)
	return start, end
}

// centres returns the inclusive cell range whose centres fall in [pos, pos+size),
// clipped to [0, limit).
func centres(pos, size float64, limit int) (int, int) {
	start := max(0, int(math.Ceil(pos-0.5)))
	end := min(limit-1, int(math.Ceil(pos+size-0.5))-1)
	return start, end
}

func convertColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Ensure Surface implements surface.Surface and surface.Flusher.
var (
	_ surface.Surface = (*Surface)(nil)
	_ surface.Flusher = (*Surface)(nil)
)
