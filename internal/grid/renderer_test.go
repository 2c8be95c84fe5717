package grid

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/bonnth80/html-grid/internal/surface"
)

func TestNewDefaults(t *testing.T) {
	r := New(surface.NewRecorder(400, 400))
	cfg := r.Config()

	if cfg.LineCountVertical != 40 || cfg.LineCountHorizontal != 40 {
		t.Errorf("expected 40x40 lines, got %dx%d", cfg.LineCountVertical, cfg.LineCountHorizontal)
	}
	if cfg.CellWidth != 10 || cfg.CellHeight != 10 {
		t.Errorf("expected 10x10 cells, got %vx%v", cfg.CellWidth, cfg.CellHeight)
	}
	if cfg.DrawMajorLines {
		t.Error("major lines should be disabled by default")
	}
	if cfg.MajorLineInterval != 5 {
		t.Errorf("expected interval 5, got %d", cfg.MajorLineInterval)
	}
	if cfg.ColorMajor != "#CCCCCC" || cfg.ColorMinor != "#EEEEEE" {
		t.Errorf("unexpected default colours %q, %q", cfg.ColorMajor, cfg.ColorMinor)
	}
	if cfg.CellData != nil {
		t.Error("cell data should start empty")
	}
	if r.ID() == "" {
		t.Error("renderer should have an id")
	}
}

func TestNewLogsInitialization(t *testing.T) {
	log := &recordingLogger{}
	New(surface.NewRecorder(10, 10), WithLogger(log), WithID("grid-1"))
	if !log.has("info", "grid initialized") {
		t.Errorf("expected initialization notice, got %s", log)
	}
}

func TestWithNilLoggerKeepsDefault(t *testing.T) {
	r := New(surface.NewRecorder(10, 10), WithLogger(nil))
	if r.logger == nil {
		t.Fatal("nil logger option should keep the no-op logger")
	}
	r.ClearSurface()
}

func TestSlogLoggerSatisfiesLogger(t *testing.T) {
	var _ Logger = slog.Default()
}

func TestCellSizeFollowsLineCounts(t *testing.T) {
	tests := []struct {
		w, h         int
		v, hz        int
		cellW, cellH float64
	}{
		{400, 400, 40, 40, 10, 10},
		{800, 600, 40, 30, 20, 20},
		{100, 50, 3, 4, 100.0 / 3, 12.5},
		{7, 7, 7, 1, 1, 7},
	}
	for _, tt := range tests {
		r := New(surface.NewRecorder(tt.w, tt.h))
		if err := r.SetLineCounts(tt.v, tt.hz); err != nil {
			t.Fatalf("SetLineCounts(%d, %d) failed: %v", tt.v, tt.hz, err)
		}
		if got := r.CellWidth(); got != tt.cellW {
			t.Errorf("%dx%d/%d: CellWidth = %v, want %v", tt.w, tt.h, tt.v, got, tt.cellW)
		}
		if got := r.CellHeight(); got != tt.cellH {
			t.Errorf("%dx%d/%d: CellHeight = %v, want %v", tt.w, tt.h, tt.hz, got, tt.cellH)
		}
		cfg := r.Config()
		if cfg.CellWidth != tt.cellW || cfg.CellHeight != tt.cellH {
			t.Errorf("snapshot cells %vx%v, want %vx%v", cfg.CellWidth, cfg.CellHeight, tt.cellW, tt.cellH)
		}
	}
}

func TestCellSizeFollowsSurfaceResize(t *testing.T) {
	rec := surface.NewRecorder(400, 400)
	r := New(rec)

	rec.Resize(800, 200)
	if got := r.CellWidth(); got != 20 {
		t.Errorf("CellWidth after resize = %v, want 20", got)
	}
	if got := r.CellHeight(); got != 5 {
		t.Errorf("CellHeight after resize = %v, want 5", got)
	}
}

func TestSetLineCountsRejectsNonPositive(t *testing.T) {
	r := New(surface.NewRecorder(400, 400))
	for _, tc := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -3}} {
		err := r.SetLineCounts(tc[0], tc[1])
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("SetLineCounts(%d, %d): expected ErrInvalidArgument, got %v", tc[0], tc[1], err)
		}
		v, h := r.LineCounts()
		if v != 40 || h != 40 {
			t.Fatalf("line counts changed to %dx%d after rejected call", v, h)
		}
	}
}

func TestPerAxisLineSetters(t *testing.T) {
	r := New(surface.NewRecorder(400, 200))
	if err := r.SetVerticalLines(20); err != nil {
		t.Fatalf("SetVerticalLines failed: %v", err)
	}
	if err := r.SetHorizontalLines(10); err != nil {
		t.Fatalf("SetHorizontalLines failed: %v", err)
	}
	v, h := r.LineCounts()
	if v != 20 || h != 10 {
		t.Errorf("expected 20x10, got %dx%d", v, h)
	}
	if r.CellWidth() != 20 || r.CellHeight() != 20 {
		t.Errorf("expected 20x20 cells, got %vx%v", r.CellWidth(), r.CellHeight())
	}
	if err := r.SetHorizontalLines(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSetColorMajor(t *testing.T) {
	log := &recordingLogger{}
	r := New(surface.NewRecorder(100, 100), WithLogger(log))

	err := r.SetColorMajor("#ZZZ", false)
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "colorMajor" || verr.Value != "#ZZZ" {
		t.Errorf("unexpected validation error %#v", err)
	}
	if r.ColorMajor() != DefaultColorMajor {
		t.Errorf("rejected colour changed state to %q", r.ColorMajor())
	}
	if log.count("error") != 1 {
		t.Errorf("expected one error notice, got %s", log)
	}

	if err := r.SetColorMajor("#ABC", false); err != nil {
		t.Fatalf("SetColorMajor(#ABC) failed: %v", err)
	}
	if r.ColorMajor() != "#ABC" {
		t.Errorf("expected #ABC, got %q", r.ColorMajor())
	}
}

func TestSetColorGrammar(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"rgb(10,20,30)", true},
		{"rgb(999,0,0,0)", false},
		{"rgba(0,0,0,0.5)", true},
		{"rgba(0,0,0,.5f)", true},
		{"#aabbcc", true},
		{"", false},
		{"transparent", false},
	}
	for _, tt := range tests {
		r := New(surface.NewRecorder(10, 10))
		minorErr := r.SetColorMinor(tt.color, false)
		majorErr := r.SetColorMajor(tt.color, false)
		if (minorErr == nil) != tt.valid || (majorErr == nil) != tt.valid {
			t.Errorf("%q: minor err %v, major err %v, want valid=%v", tt.color, minorErr, majorErr, tt.valid)
		}
		if !tt.valid && (r.ColorMinor() != DefaultColorMinor || r.ColorMajor() != DefaultColorMajor) {
			t.Errorf("%q: rejected colour changed state", tt.color)
		}
	}
}

func TestColorsAreIndependent(t *testing.T) {
	r := New(surface.NewRecorder(10, 10))
	if err := r.SetColorMinor("#123456", false); err != nil {
		t.Fatal(err)
	}
	if r.ColorMajor() != DefaultColorMajor {
		t.Errorf("minor setter changed major colour to %q", r.ColorMajor())
	}
	if r.ColorMinor() != "#123456" {
		t.Errorf("expected minor colour #123456, got %q", r.ColorMinor())
	}
}

func TestSetColorRedraw(t *testing.T) {
	rec := surface.NewRecorder(100, 100)
	r := New(rec)

	if err := r.SetColorMinor("#010203", false); err != nil {
		t.Fatal(err)
	}
	if len(rec.Ops()) != 0 {
		t.Fatalf("setter without redraw should not draw, got %d ops", len(rec.Ops()))
	}

	if err := r.SetColorMinor("#040506", true); err != nil {
		t.Fatal(err)
	}
	if len(rec.Clears()) != 1 {
		t.Errorf("redraw should clear once, got %d", len(rec.Clears()))
	}
	if len(rec.StrokesWithColor("#040506")) == 0 {
		t.Error("redraw should stroke with the new colour")
	}

	rec.Reset()
	if err := r.SetColorMinor("nope", true); err == nil {
		t.Fatal("expected error")
	}
	if len(rec.Ops()) != 0 {
		t.Error("rejected colour must not redraw")
	}
}

func TestBackgroundAndFillColor(t *testing.T) {
	r := New(surface.NewRecorder(10, 10))
	if err := r.SetBackgroundColor("#111", false); err != nil {
		t.Fatal(err)
	}
	if err := r.SetFillColor("rgb(1,2,3)"); err != nil {
		t.Fatal(err)
	}
	if r.BackgroundColor() != "#111" || r.FillColor() != "rgb(1,2,3)" {
		t.Errorf("unexpected colours %q, %q", r.BackgroundColor(), r.FillColor())
	}
	if err := r.SetFillColor("#12"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestMajorLineSettings(t *testing.T) {
	r := New(surface.NewRecorder(10, 10))
	r.SetDrawMajorLines(true)
	if !r.DrawMajorLinesEnabled() {
		t.Error("major lines should be enabled")
	}
	if err := r.SetMajorLineInterval(4); err != nil {
		t.Fatal(err)
	}
	if r.MajorLineInterval() != 4 {
		t.Errorf("expected interval 4, got %d", r.MajorLineInterval())
	}
	if err := r.SetMajorLineInterval(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if r.MajorLineInterval() != 4 {
		t.Errorf("rejected interval changed state to %d", r.MajorLineInterval())
	}
}

func TestConfigIsSnapshot(t *testing.T) {
	r := New(surface.NewRecorder(100, 100))
	cfg := r.Config()
	cfg.LineCountVertical = 1
	cfg.ColorMajor = "#000"
	cfg.CellWidth = 99

	if v, _ := r.LineCounts(); v != 40 {
		t.Errorf("mutating snapshot changed line count to %d", v)
	}
	if r.ColorMajor() != DefaultColorMajor {
		t.Error("mutating snapshot changed colour")
	}
	if r.CellWidth() != 2.5 {
		t.Errorf("mutating snapshot changed cell width to %v", r.CellWidth())
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "colorMajor", Value: "#ZZZ", Err: ErrInvalidColor}
	want := `colorMajor: invalid color string: "#ZZZ" (try "#FFF", "#FFFFFF", "rgb(255,255,255)", or "rgba(255,255,255,1.0f)")`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = &ValidationError{Field: "majorLineInterval", Value: 0, Err: ErrInvalidArgument}
	if err.Error() != "majorLineInterval: invalid argument: 0" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
