package gamedata

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses "#rrggbb" (or "#rgb") into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHexColor is ParseHexColor for static catalogs; it panics on bad input.
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Tinted blends base toward tint by amount in [0,1], in linear RGB.
func Tinted(base, tint color.RGBA, amount float64) color.RGBA {
	a, _ := colorful.MakeColor(base)
	b, _ := colorful.MakeColor(tint)
	r, g, bl := a.BlendLinearRgb(b, amount).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: base.A}
}
