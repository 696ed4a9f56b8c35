// Package render paints vterm.Screen grids to a real terminal, adapted
// from the teacher's cli/renderer.go differential-rendering approach.
package render

import (
	"fmt"
	"strings"

	"github.com/kelvinarch/vterm"
)

// sgrColor renders a stored Cell color index (which may be a verbatim
// 256-color index per §4.2's SGR algorithm, or one of the 8 basic
// indices) as the corresponding ANSI SGR parameter, best-effort mapped
// down to the 8-color palette since this engine's Non-goals exclude
// true-color output fidelity.
func sgrColor(idx int, bright, background bool) string {
	if idx == vterm.DefaultColor {
		if background {
			return "49"
		}
		return "39"
	}
	base := idx
	if base > 7 {
		base = vterm.NearestPaletteIndexFrom256(base)
	}
	code := base
	if background {
		code += 40
		if bright {
			code += 60
		}
	} else {
		code += 30
		if bright {
			code += 60
		}
	}
	return fmt.Sprintf("%d", code)
}

// sgrSequence builds the CSI...m sequence that reproduces a Cell's pen
// state, skipping the attribute entirely when it matches the default.
func sgrSequence(fg, bg int, attrs vterm.Attrs) string {
	var parts []string
	parts = append(parts, "0")
	if attrs.Has(vterm.AttrBold) {
		parts = append(parts, "1")
	}
	if attrs.Has(vterm.AttrDim) {
		parts = append(parts, "2")
	}
	if attrs.Has(vterm.AttrItalic) {
		parts = append(parts, "3")
	}
	if attrs.Has(vterm.AttrUnderline) {
		parts = append(parts, "4")
	}
	if attrs.Has(vterm.AttrBlink) {
		parts = append(parts, "5")
	}
	if attrs.Has(vterm.AttrReverse) {
		parts = append(parts, "7")
	}
	if attrs.Has(vterm.AttrHidden) {
		parts = append(parts, "8")
	}
	if attrs.Has(vterm.AttrStrikethrough) {
		parts = append(parts, "9")
	}
	parts = append(parts, sgrColor(fg, attrs.Has(vterm.AttrBold), false))
	parts = append(parts, sgrColor(bg, false, true))
	return "\x1b[" + strings.Join(parts, ";") + "m"
}
