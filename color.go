package vterm

// Palette8RGB is the best-effort RGB rendering of the 8 color indices a
// Cell's Fg/Bg can carry, grounded on the teacher's ANSIColorsRGB table
// (phroun/purfecterm color.go) truncated to the non-bright half, since
// this engine's Non-goals exclude true-color fidelity beyond an 8-color
// palette.
var Palette8RGB = [8]RGB{
	{R: 0, G: 0, B: 0},
	{R: 170, G: 0, B: 0},
	{R: 0, G: 170, B: 0},
	{R: 170, G: 85, B: 0},
	{R: 0, G: 0, B: 170},
	{R: 170, G: 0, B: 170},
	{R: 0, G: 170, B: 170},
	{R: 170, G: 170, B: 170},
}

// RGB holds red, green, blue components for rendering a palette index.
type RGB struct {
	R, G, B uint8
}

// nearest8ColorIndex maps a 24-bit color down to the nearest of the 8
// palette entries using the spec's one-bit-per-channel rule: a channel
// contributes its bit to the index only when it exceeds the midpoint.
func nearest8ColorIndex(r, g, b uint8) int {
	idx := 0
	if r > 127 {
		idx |= 1
	}
	if g > 127 {
		idx |= 2
	}
	if b > 127 {
		idx |= 4
	}
	return idx
}

// NearestPaletteIndexFrom256 maps a 256-color palette index (as stored
// verbatim in a Cell by SGR 38/48;5;n, per §4.2) down to one of the 8
// palette entries, for a renderer that only has an 8-color output
// target available. Indices 0-7 (and their bright 8-15 counterparts) map
// directly onto themselves modulo 8.
func NearestPaletteIndexFrom256(idx int) int { return nearest8ColorIndexFrom256(idx) }

func nearest8ColorIndexFrom256(idx int) int {
	if idx < 0 {
		idx = 0
	}
	if idx < 16 {
		return idx % 8
	}
	rgb := rgb256(idx)
	return nearest8ColorIndex(rgb.R, rgb.G, rgb.B)
}

// rgb256 resolves a 256-color palette index (the standard xterm cube +
// grayscale ramp layout) to RGB, used only to feed nearest8ColorIndexFrom256.
func rgb256(idx int) RGB {
	switch {
	case idx < 16:
		if idx < 8 {
			return Palette8RGB[idx]
		}
		c := Palette8RGB[idx-8]
		return RGB{R: brighten(c.R), G: brighten(c.G), B: brighten(c.B)}
	case idx < 232:
		idx -= 16
		b := idx % 6
		g := (idx / 6) % 6
		r := idx / 36
		return RGB{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51)}
	default:
		gray := uint8((idx-232)*10 + 8)
		return RGB{R: gray, G: gray, B: gray}
	}
}

func brighten(c uint8) uint8 {
	v := int(c) + 85
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
