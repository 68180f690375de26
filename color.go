package image3d

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// ParseHexColor parses a color in "#RRGGBB" or "#RRGGBBAA" form (the leading '#' is optional).
func ParseHexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: color %q is not #RRGGBB or #RRGGBBAA", ErrInvalidConfig, hex)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, hex, err)
	}
	return NewColor(
		float32((v>>24)&0xff)/255,
		float32((v>>16)&0xff)/255,
		float32((v>>8)&0xff)/255,
		float32(v&0xff)/255,
	), nil
}

// MustParseHexColor is like ParseHexColor, but panics on malformed input. Meant for constants.
func MustParseHexColor(hex string) Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// ToRGBA64 returns the Color as float64 components.
func (c Color) ToRGBA64() (float64, float64, float64, float64) {
	return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
}

// ToNRGBA converts the Color to a color.NRGBA, for use with the standard image packages.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// ToRGBA converts the Color to a premultiplied color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBAModel.Convert(c.ToNRGBA()).(color.RGBA)
}

// Hex returns the Color in "#RRGGBBAA" form.
func (c Color) Hex() string {
	n := c.ToNRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Luminance returns a rough perceived brightness of the color, from 0 to 1.
func (c Color) Luminance() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}
