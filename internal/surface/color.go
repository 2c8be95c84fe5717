package surface

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParseColor for strings outside the colour grammar.
var ErrInvalidColor = errors.New("invalid color string")

// Accepted colour forms. Channels are 1-3 digits with no whitespace;
// rgba alpha is a decimal fraction that may carry a trailing "f".
var (
	hexPattern  = regexp.MustCompile(`(?i)^#([0-9a-f]{6}|[0-9a-f]{3})$`)
	rgbPattern  = regexp.MustCompile(`(?i)^rgb\(([0-9]{1,3}),([0-9]{1,3}),([0-9]{1,3})\)$`)
	rgbaPattern = regexp.MustCompile(`(?i)^rgba\(([0-9]{1,3}),([0-9]{1,3}),([0-9]{1,3}),([0-9]*\.[0-9]*)f?\)$`)
)

// ColorHint lists example strings for error messages.
const ColorHint = `try "#FFF", "#FFFFFF", "rgb(255,255,255)", or "rgba(255,255,255,1.0f)"`

// ValidColor reports whether s is a #RGB, #RRGGBB, rgb(r,g,b) or
// rgba(r,g,b,a) colour string.
func ValidColor(s string) bool {
	return hexPattern.MatchString(s) || rgbPattern.MatchString(s) || rgbaPattern.MatchString(s)
}

// ParseColor converts a valid colour string to non-premultiplied RGBA.
// Channel values above 255 are clamped; alpha is clamped to [0, 1].
func ParseColor(s string) (color.NRGBA, error) {
	if hexPattern.MatchString(s) {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return fromChannels(m[1], m[2], m[3], 1), nil
	}

	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		alpha, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			// "." alone is accepted by the grammar and reads as zero.
			alpha = 0
		}
		return fromChannels(m[1], m[2], m[3], alpha), nil
	}

	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on invalid input.
// It is intended for package-level colour constants.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func fromChannels(rs, gs, bs string, alpha float64) color.NRGBA {
	c := colorful.Color{
		R: channel(rs) / 255,
		G: channel(gs) / 255,
		B: channel(bs) / 255,
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func channel(s string) float64 {
	v, _ := strconv.Atoi(s)
	return float64(min(v, 255))
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
