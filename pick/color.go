package pick

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

type Color color.RGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	cc := color.RGBA(c)
	return cc.RGBA()
}

func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

func NewColor(r, g, b, a uint8) Color {
	return Color(color.RGBA{R: r, G: g, B: b, A: a})
}

// HSB returns the hue/saturation/brightness representation of c. Hue is a
// fraction of a full turn in [0,1), saturation and brightness are in [0,1].
func (c Color) HSB() (h, s, b float64) {
	return RGBToHSB(c.R, c.G, c.B)
}

// Opacity returns the alpha channel as a 0-100 integer percentage.
func (c Color) Opacity() int {
	return int(float64(c.A) / 255 * 100)
}

// HSBToRGB converts hue (fraction of a turn, any value; only the fractional
// part is used), saturation and brightness in [0,1] to 8-bit channels. The six
// 60-degree hue sectors each interpolate two of the three channels.
func HSBToRGB(hue, sat, bright float64) (r, g, b uint8) {
	if sat == 0 {
		v := uint8(bright*255 + 0.5)
		return v, v, v
	}
	h := (hue - math.Floor(hue)) * 6
	f := h - math.Floor(h)
	p := bright * (1 - sat)
	q := bright * (1 - sat*f)
	t := bright * (1 - sat*(1-f))
	switch int(h) {
	case 0:
		return uint8(bright*255 + 0.5), uint8(t*255 + 0.5), uint8(p*255 + 0.5)
	case 1:
		return uint8(q*255 + 0.5), uint8(bright*255 + 0.5), uint8(p*255 + 0.5)
	case 2:
		return uint8(p*255 + 0.5), uint8(bright*255 + 0.5), uint8(t*255 + 0.5)
	case 3:
		return uint8(p*255 + 0.5), uint8(q*255 + 0.5), uint8(bright*255 + 0.5)
	case 4:
		return uint8(t*255 + 0.5), uint8(p*255 + 0.5), uint8(bright*255 + 0.5)
	default:
		return uint8(bright*255 + 0.5), uint8(p*255 + 0.5), uint8(q*255 + 0.5)
	}
}

// RGBToHSB is the inverse of HSBToRGB. Achromatic inputs (saturation zero)
// report a canonical hue of 0.
func RGBToHSB(r, g, b uint8) (hue, sat, bright float64) {
	cmax := r
	if g > cmax {
		cmax = g
	}
	if b > cmax {
		cmax = b
	}
	cmin := r
	if g < cmin {
		cmin = g
	}
	if b < cmin {
		cmin = b
	}

	bright = float64(cmax) / 255
	if cmax != 0 {
		sat = float64(cmax-cmin) / float64(cmax)
	}
	if sat == 0 {
		return 0, 0, bright
	}

	d := float64(cmax - cmin)
	redc := float64(cmax-r) / d
	greenc := float64(cmax-g) / d
	bluec := float64(cmax-b) / d
	switch cmax {
	case r:
		hue = bluec - greenc
	case g:
		hue = 2 + redc - bluec
	default:
		hue = 4 + greenc - redc
	}
	hue /= 6
	if hue < 0 {
		hue++
	}
	return hue, sat, bright
}

// colorFromHSB builds a Color from HSB components and an explicit alpha byte.
func colorFromHSB(h, s, b float64, alpha uint8) Color {
	r, g, bl := HSBToRGB(h, s, b)
	return NewColor(r, g, bl, alpha)
}

// FormatHex renders the RGB channels as six uppercase hex digits with no
// leading '#'. Alpha is carried separately by the opacity slider and is never
// part of the hex form.
func FormatHex(c Color) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses exactly six hex digits into an opaque Color. Anything else
// reports false.
func ParseHex(s string) (Color, bool) {
	if len(s) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 24)
	if err != nil {
		return Color{}, false
	}
	return NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), true
}

func isHexDigit(r rune) bool {
	return strings.ContainsRune("0123456789abcdefABCDEF", r)
}
