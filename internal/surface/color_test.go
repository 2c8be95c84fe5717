package surface

import (
	"errors"
	"image/color"
	"testing"
)

func TestValidColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#ABC", true},
		{"#abc", true},
		{"#AABBCC", true},
		{"#aAbBcC", true},
		{"#ZZZ", false},
		{"#ABCD", false},
		{"ABC", false},
		{"rgb(10,20,30)", true},
		{"RGB(10,20,30)", true},
		{"rgb(999,0,0)", true},
		{"rgb(999,0,0,0)", false},
		{"rgb(1000,0,0)", false},
		{"rgb(10, 20, 30)", false},
		{"rgba(0,0,0,0.5)", true},
		{"rgba(0,0,0,.5f)", true},
		{"rgba(255,255,255,1.0f)", true},
		{"rgba(0,0,0,1)", false},
		{"rgba(0,0,0)", false},
		{"", false},
		{"red", false},
	}
	for _, tt := range tests {
		if got := ValidColor(tt.in); got != tt.want {
			t.Errorf("ValidColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#00F", color.NRGBA{0, 0, 255, 255}},
		{"#CCCCCC", color.NRGBA{204, 204, 204, 255}},
		{"#eeeeee", color.NRGBA{238, 238, 238, 255}},
		{"rgb(10,20,30)", color.NRGBA{10, 20, 30, 255}},
		{"rgb(999,0,0)", color.NRGBA{255, 0, 0, 255}},
		{"rgba(0,0,0,0.5)", color.NRGBA{0, 0, 0, 128}},
		{"rgba(0,0,0,.5f)", color.NRGBA{0, 0, 0, 128}},
		{"rgba(1,2,3,1.0f)", color.NRGBA{1, 2, 3, 255}},
		{"rgba(1,2,3,7.5)", color.NRGBA{1, 2, 3, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"#ZZZ", "blue", "rgb(1,2)", ""} {
		_, err := ParseColor(in)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q): expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestMustParseColor(t *testing.T) {
	if got := MustParseColor("rgba(10,20,30,0.5)"); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 128}) {
		t.Errorf("MustParseColor = %+v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseColor should panic on invalid input")
		}
	}()
	MustParseColor("blue")
}
