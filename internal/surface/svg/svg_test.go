package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeLinesAndRects(t *testing.T) {
	s := New(40, 40, nil, WithTitle("grid"))
	s.SetStrokeStyle("#EEEEEE")
	s.BeginPath()
	s.MoveTo(5.5, 0.5)
	s.LineTo(5.5, 40)
	s.Stroke()
	s.SetFillStyle("#00F")
	s.FillRect(21, 31, 9, 9)

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`translate(0.5,0.5)`,
		`x1="5" y1="0" x2="5" y2="40"`,
		`stroke:rgb(238,238,238)`,
		`x="21" y="31" width="9" height="9"`,
		`fill:rgb(0,0,255)`,
		`<title>grid</title>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFullClearDropsElements(t *testing.T) {
	s := New(10, 10, nil)
	s.FillRect(0, 0, 5, 5)
	s.BeginPath()
	s.MoveTo(0.5, 0.5)
	s.LineTo(0.5, 10)
	s.Stroke()
	if s.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", s.Len())
	}

	s.ClearRect(0, 0, 10, 10)
	if s.Len() != 0 {
		t.Errorf("full clear should drop elements, got %d", s.Len())
	}
}

func TestPartialClearPaintsBackground(t *testing.T) {
	s := New(10, 10, nil, WithBackground("#ABCDEF"))
	s.ClearRect(1, 1, 2, 2)
	if s.Len() != 1 {
		t.Fatalf("expected 1 element, got %d", s.Len())
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(buf.String(), "fill:rgb(171,205,239)") {
		t.Errorf("expected background fill, got:\n%s", buf.String())
	}
}

func TestTranslucentFillOpacity(t *testing.T) {
	s := New(10, 10, nil)
	s.SetFillStyle("rgba(0,0,0,0.5)")
	s.FillRect(0, 0, 2, 2)

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(buf.String(), "fill-opacity:0.502") {
		t.Errorf("expected fill opacity, got:\n%s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFlushReportsWriteError(t *testing.T) {
	s := New(10, 10, failingWriter{})
	if err := s.Flush(); err == nil {
		t.Error("expected write error from Flush")
	}
}

func TestFlushWithoutWriter(t *testing.T) {
	s := New(10, 10, nil)
	if err := s.Flush(); err != nil {
		t.Errorf("Flush without writer should be a no-op, got %v", err)
	}
}
