package vterm

// Pen is the current graphic-rendition state applied to newly written
// cells, per §3.
type Pen struct {
	Fg, Bg int
	Attrs  Attrs
}

var defaultPen = Pen{Fg: DefaultColor, Bg: DefaultColor}

// Cursor is a grid position plus the pending-wrap flag used for
// deferred auto-wrap at the right margin, per §3 and the Open Question
// on pending-wrap (this engine implements the deferred variant: a
// character written at the right margin with auto-wrap on doesn't
// advance to the next row until the *following* printable character
// arrives).
type Cursor struct {
	X, Y        int
	PendingWrap bool
}

// savedState is the single save/restore slot per §3.
type savedState struct {
	x, y int
	pen  Pen
}

// Screen is the event consumer of §4.2: it receives Parser dispatches
// and mutates a fixed-size cell grid, cursor, pen, modes, scrolling
// region, tab stops and character-set state accordingly. Unlike the
// teacher's Buffer, Screen carries no mutex — per §5 it has exactly one
// owner (the host loop) and is never accessed concurrently with the
// Parser feeding it.
type Screen struct {
	width, height int
	grid          [][]Cell

	cursor Cursor
	pen    Pen
	saved  savedState

	scrollTop, scrollBottom int

	tabStops []bool

	modes [modeCount]bool

	gsets [4]Charset // G0..G3 designators
	gl    int        // 0 or 1: which of G0/G1 is currently invoked (SO/SI)

	title string
}

// NewScreen constructs a Screen of the given dimensions in its initial
// state (§3 defaults: auto-wrap and cursor-visible on, everything else
// off, tab stops every 8th column, scrolling region the whole grid).
func NewScreen(width, height int) *Screen {
	s := &Screen{pen: defaultPen, modes: defaultModes()}
	s.Resize(width, height)
	return s
}

// Resize changes the grid dimensions, per §6's screen_resize. Existing
// cells within the overlapping bounds are preserved; new cells are
// blank. Tab stops and the scrolling region are recomputed for the new
// width/height, per §3's "fixed at construction and on explicit
// resize."
func (s *Screen) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	grid := make([][]Cell, height)
	for y := range grid {
		row := make([]Cell, width)
		for x := range row {
			row[x] = blankCell
		}
		if y < len(s.grid) {
			copy(row, s.grid[y])
		}
		grid[y] = row
	}
	s.grid = grid
	s.width = width
	s.height = height

	s.tabStops = make([]bool, width)
	for x := 8; x < width; x += 8 {
		s.tabStops[x] = true
	}

	s.scrollTop = 0
	s.scrollBottom = height - 1

	s.cursor.X = clampInt(s.cursor.X, 0, width-1)
	s.cursor.Y = clampInt(s.cursor.Y, 0, height-1)
	s.cursor.PendingWrap = false
}

// Reset hard-resets the screen to the state of a freshly constructed
// screen of the same dimensions, per ESC c (RIS) and §8's idempotent-
// reset law.
func (s *Screen) Reset() {
	width, height := s.width, s.height
	*s = Screen{pen: defaultPen, modes: defaultModes()}
	s.Resize(width, height)
}

// Width and Height report the grid dimensions.
func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Cell returns the grid cell at (row, col), per §6's screen_cell.
// Out-of-range coordinates return the blank cell.
func (s *Screen) Cell(row, col int) Cell {
	if row < 0 || row >= s.height || col < 0 || col >= s.width {
		return blankCell
	}
	return s.grid[row][col]
}

// CursorPos returns the cursor's position and visibility, per §6's
// screen_cursor.
func (s *Screen) CursorPos() (x, y int, visible bool) {
	return s.cursor.X, s.cursor.Y, s.modes[ModeCursorVisible]
}

// Mode reports whether a boolean flag is currently set, per §6's
// screen_mode.
func (s *Screen) Mode(m Mode) bool { return s.modes[m] }

// Title returns the most recent window title set via OSC 0/1/2.
func (s *Screen) Title() string { return s.title }

// PenState returns the current graphic-rendition pen applied to newly
// written cells.
func (s *Screen) PenState() Pen { return s.pen }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clearPendingWrap cancels a deferred wrap; any explicit cursor move or
// control character resets the right-margin latch.
func (s *Screen) clearPendingWrap() { s.cursor.PendingWrap = false }

// --- Performer: Print ---

// Print implements §4.2's print(codepoint).
func (s *Screen) Print(r rune) {
	r = translate(s.gsets[s.gl], r)

	if s.cursor.PendingWrap {
		s.cursor.X = 0
		s.cursor.PendingWrap = false
		s.lineFeed()
	}

	if s.modes[ModeInsert] {
		s.shiftRowRight(s.cursor.Y, s.cursor.X, 1)
	}

	s.grid[s.cursor.Y][s.cursor.X] = Cell{Codepoint: r, Fg: s.pen.Fg, Bg: s.pen.Bg, Attrs: s.pen.Attrs}

	s.cursor.X++
	if s.cursor.X >= s.width {
		if s.modes[ModeAutoWrap] {
			s.cursor.X = s.width - 1
			s.cursor.PendingWrap = true
		} else {
			s.cursor.X = s.width - 1
		}
	}
}

// shiftRowRight makes room for n blank cells at (row, col) by shifting
// existing cells right, discarding whatever falls off the right edge.
func (s *Screen) shiftRowRight(row, col, n int) {
	line := s.grid[row]
	w := len(line)
	if col >= w {
		return
	}
	copy(line[col+n:], line[col:w-n])
	for i := col; i < col+n && i < w; i++ {
		line[i] = blankPenCell(s.pen)
	}
}

// blankPenCell is a blank cell carrying the pen's colors, matching real
// terminal erase/insert behavior of painting the background color
// rather than always resetting to the terminal default.
func blankPenCell(p Pen) Cell {
	return Cell{Codepoint: ' ', Fg: p.Fg, Bg: p.Bg}
}

// --- Performer: Execute ---

// Execute implements §4.2's execute(byte) for C0 control characters.
func (s *Screen) Execute(b byte) {
	switch b {
	case 0x08: // BS
		s.clearPendingWrap()
		if s.cursor.X > 0 {
			s.cursor.X--
		}
	case 0x09: // HT
		s.clearPendingWrap()
		s.tabForward(1)
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		s.clearPendingWrap()
		s.cursor.X = 0
		s.lineFeed()
	case 0x0D: // CR
		s.clearPendingWrap()
		s.cursor.X = 0
	case 0x0E: // SO
		s.gl = 1
	case 0x0F: // SI
		s.gl = 0
	case 0x07: // BEL
		// No-op for the engine; the host may beep.
	}
}

// lineFeed moves the cursor down one row, scrolling the region up when
// already at scroll_bottom, per §4.2's LF semantics (minus the leading
// carriage return, which callers issue themselves when wanted).
func (s *Screen) lineFeed() {
	if s.cursor.Y == s.scrollBottom {
		s.scrollRegionUp(1)
		return
	}
	if s.cursor.Y < s.height-1 {
		s.cursor.Y++
	}
}

// reverseIndex is ESC M: move up, scrolling the region down when
// already at scroll_top.
func (s *Screen) reverseIndex() {
	if s.cursor.Y == s.scrollTop {
		s.scrollRegionDown(1)
		return
	}
	if s.cursor.Y > 0 {
		s.cursor.Y--
	}
}

// scrollRegionUp shifts the scrolling region's rows up by n, losing the
// top n rows of the region and filling the bottom n with blanks.
func (s *Screen) scrollRegionUp(n int) {
	top, bottom := s.scrollTop, s.scrollBottom
	if n > bottom-top+1 {
		n = bottom - top + 1
	}
	for y := top; y <= bottom-n; y++ {
		s.grid[y] = s.grid[y+n]
	}
	for y := bottom - n + 1; y <= bottom; y++ {
		s.grid[y] = s.blankRow()
	}
}

// scrollRegionDown shifts the scrolling region's rows down by n, losing
// the bottom n rows of the region and filling the top n with blanks.
func (s *Screen) scrollRegionDown(n int) {
	top, bottom := s.scrollTop, s.scrollBottom
	if n > bottom-top+1 {
		n = bottom - top + 1
	}
	for y := bottom; y >= top+n; y-- {
		s.grid[y] = s.grid[y-n]
	}
	for y := top; y < top+n; y++ {
		s.grid[y] = s.blankRow()
	}
}

func (s *Screen) blankRow() []Cell {
	row := make([]Cell, s.width)
	for x := range row {
		row[x] = blankCell
	}
	return row
}

// tabForward advances the cursor to the n-th tab stop to its right; if
// none remain, it goes to the last column, per §4.2's HT semantics.
func (s *Screen) tabForward(n int) {
	for ; n > 0; n-- {
		x := s.cursor.X + 1
		for x < s.width && !s.tabStops[x] {
			x++
		}
		if x >= s.width {
			s.cursor.X = s.width - 1
			return
		}
		s.cursor.X = x
	}
}

// tabBackward is CBT (CSI Z): the mirror of tabForward.
func (s *Screen) tabBackward(n int) {
	for ; n > 0; n-- {
		x := s.cursor.X - 1
		for x > 0 && !s.tabStops[x] {
			x--
		}
		if x < 0 {
			x = 0
		}
		s.cursor.X = x
		if x == 0 {
			return
		}
	}
}

// --- Performer: CSIDispatch ---

// CSIDispatch implements §4.2's csi_dispatch table. A malformed or
// overflowed sequence (ignore == true) is still applied with whatever
// parameters survived, per §7's "always make progress" contract; the
// ignore flag itself is not consulted.
func (s *Screen) CSIDispatch(params *Params, intermediates []byte, _ bool, final byte) {
	priv := len(intermediates) > 0 && intermediates[0] == '?'
	n := func(def int) int { return params.GetSingle(0, def) }

	switch final {
	case 'A':
		s.clearPendingWrap()
		s.cursor.Y = clampInt(s.cursor.Y-n(1), 0, s.height-1)
	case 'B':
		s.clearPendingWrap()
		s.cursor.Y = clampInt(s.cursor.Y+n(1), 0, s.height-1)
	case 'C':
		s.clearPendingWrap()
		s.cursor.X = clampInt(s.cursor.X+n(1), 0, s.width-1)
	case 'D':
		s.clearPendingWrap()
		s.cursor.X = clampInt(s.cursor.X-n(1), 0, s.width-1)
	case 'E':
		s.clearPendingWrap()
		s.cursor.X = 0
		s.cursor.Y = clampInt(s.cursor.Y+n(1), 0, s.height-1)
	case 'F':
		s.clearPendingWrap()
		s.cursor.X = 0
		s.cursor.Y = clampInt(s.cursor.Y-n(1), 0, s.height-1)
	case 'G':
		s.clearPendingWrap()
		s.cursor.X = clampInt(n(1)-1, 0, s.width-1)
	case 'd':
		s.clearPendingWrap()
		row := n(1) - 1
		if s.modes[ModeOrigin] {
			row += s.scrollTop
			s.cursor.Y = clampInt(row, s.scrollTop, s.scrollBottom)
		} else {
			s.cursor.Y = clampInt(row, 0, s.height-1)
		}
	case 'H', 'f':
		s.clearPendingWrap()
		row := params.GetSingle(0, 1) - 1
		col := params.GetSingle(1, 1) - 1
		if s.modes[ModeOrigin] {
			row += s.scrollTop
			s.cursor.Y = clampInt(row, s.scrollTop, s.scrollBottom)
		} else {
			s.cursor.Y = clampInt(row, 0, s.height-1)
		}
		s.cursor.X = clampInt(col, 0, s.width-1)
	case 'I':
		s.clearPendingWrap()
		s.tabForward(n(1))
	case 'Z':
		s.clearPendingWrap()
		s.tabBackward(n(1))
	case 'J':
		s.eraseInDisplay(n(0))
	case 'K':
		s.eraseInLine(n(0))
	case 'L':
		s.insertLines(n(1))
	case 'M':
		s.deleteLines(n(1))
	case '@':
		s.insertChars(n(1))
	case 'P':
		s.deleteChars(n(1))
	case 'X':
		s.eraseChars(n(1))
	case 'S':
		s.scrollRegionUp(n(1))
	case 'T':
		s.scrollRegionDown(n(1))
	case 'g':
		s.tabClear(n(0))
	case 'h':
		s.setModes(params, priv, true)
	case 'l':
		s.setModes(params, priv, false)
	case 'm':
		s.selectGraphicRendition(params)
	case 'r':
		s.setScrollingRegion(params)
	case 's':
		s.saveCursor()
	case 'u':
		s.restoreCursor()
	}
}

func (s *Screen) eraseInDisplay(mode int) {
	switch mode {
	case 0:
		s.eraseLineFrom(s.cursor.Y, s.cursor.X, s.width)
		for y := s.cursor.Y + 1; y < s.height; y++ {
			s.grid[y] = s.blankRow()
		}
	case 1:
		s.eraseLineFrom(s.cursor.Y, 0, s.cursor.X+1)
		for y := 0; y < s.cursor.Y; y++ {
			s.grid[y] = s.blankRow()
		}
	case 2, 3:
		for y := 0; y < s.height; y++ {
			s.grid[y] = s.blankRow()
		}
	}
}

func (s *Screen) eraseInLine(mode int) {
	switch mode {
	case 0:
		s.eraseLineFrom(s.cursor.Y, s.cursor.X, s.width)
	case 1:
		s.eraseLineFrom(s.cursor.Y, 0, s.cursor.X+1)
	case 2:
		s.eraseLineFrom(s.cursor.Y, 0, s.width)
	}
}

func (s *Screen) eraseLineFrom(row, from, to int) {
	if row < 0 || row >= s.height {
		return
	}
	if from < 0 {
		from = 0
	}
	if to > s.width {
		to = s.width
	}
	fill := blankPenCell(s.pen)
	for x := from; x < to; x++ {
		s.grid[row][x] = fill
	}
}

// insertLines is CSI L, confined to the scrolling region per §4.2.
func (s *Screen) insertLines(n int) {
	if s.cursor.Y < s.scrollTop || s.cursor.Y > s.scrollBottom {
		return
	}
	if n > s.scrollBottom-s.cursor.Y+1 {
		n = s.scrollBottom - s.cursor.Y + 1
	}
	for y := s.scrollBottom; y >= s.cursor.Y+n; y-- {
		s.grid[y] = s.grid[y-n]
	}
	for y := s.cursor.Y; y < s.cursor.Y+n; y++ {
		s.grid[y] = s.blankRow()
	}
}

// deleteLines is CSI M, confined to the scrolling region per §4.2.
func (s *Screen) deleteLines(n int) {
	if s.cursor.Y < s.scrollTop || s.cursor.Y > s.scrollBottom {
		return
	}
	if n > s.scrollBottom-s.cursor.Y+1 {
		n = s.scrollBottom - s.cursor.Y + 1
	}
	for y := s.cursor.Y; y <= s.scrollBottom-n; y++ {
		s.grid[y] = s.grid[y+n]
	}
	for y := s.scrollBottom - n + 1; y <= s.scrollBottom; y++ {
		s.grid[y] = s.blankRow()
	}
}

func (s *Screen) insertChars(n int) {
	if n > s.width-s.cursor.X {
		n = s.width - s.cursor.X
	}
	if n <= 0 {
		return
	}
	s.shiftRowRight(s.cursor.Y, s.cursor.X, n)
}

func (s *Screen) deleteChars(n int) {
	line := s.grid[s.cursor.Y]
	w := len(line)
	if s.cursor.X >= w {
		return
	}
	if n > w-s.cursor.X {
		n = w - s.cursor.X
	}
	copy(line[s.cursor.X:], line[s.cursor.X+n:])
	fill := blankPenCell(s.pen)
	for i := w - n; i < w; i++ {
		line[i] = fill
	}
}

func (s *Screen) eraseChars(n int) {
	s.eraseLineFrom(s.cursor.Y, s.cursor.X, s.cursor.X+n)
}

func (s *Screen) tabClear(mode int) {
	switch mode {
	case 0:
		if s.cursor.X >= 0 && s.cursor.X < s.width {
			s.tabStops[s.cursor.X] = false
		}
	case 3:
		for x := range s.tabStops {
			s.tabStops[x] = false
		}
	}
}

// setModes applies CSI h/l, per §4.2's mode tables.
func (s *Screen) setModes(params *Params, priv, set bool) {
	for i := 0; i < params.Len(); i++ {
		code := params.GetSingle(i, 0)
		if priv {
			switch code {
			case 1:
				s.modes[ModeAppCursorKeys] = set
			case 6:
				s.modes[ModeOrigin] = set
				s.homeCursor()
			case 7:
				s.modes[ModeAutoWrap] = set
			case 25:
				s.modes[ModeCursorVisible] = set
			case 2004:
				s.modes[ModeBracketedPaste] = set
			}
			continue
		}
		switch code {
		case 4:
			s.modes[ModeInsert] = set
		case 12:
			// Idiosyncratic polarity per §9's Open Question: set (h)
			// suppresses local echo; the host reads this flag as-is.
			s.modes[ModeLocalEcho] = set
		case 20:
			s.modes[ModeAutoWrap] = set
		}
	}
}

// homeCursor moves the cursor to (0, 0), or to the scrolling region's
// top-left when origin mode is active.
func (s *Screen) homeCursor() {
	s.clearPendingWrap()
	s.cursor.X = 0
	if s.modes[ModeOrigin] {
		s.cursor.Y = s.scrollTop
	} else {
		s.cursor.Y = 0
	}
}

// setScrollingRegion is CSI r. An invalid region leaves state
// untouched, per §7's "ignore the command" rule.
func (s *Screen) setScrollingRegion(params *Params) {
	top := params.GetSingle(0, 1) - 1
	bottom := params.GetSingle(1, s.height) - 1
	if top < 0 || bottom >= s.height || top >= bottom {
		return
	}
	s.scrollTop = top
	s.scrollBottom = bottom
	s.homeCursor()
}

func (s *Screen) saveCursor() {
	s.saved = savedState{x: s.cursor.X, y: s.cursor.Y, pen: s.pen}
}

func (s *Screen) restoreCursor() {
	s.clearPendingWrap()
	s.cursor.X = clampInt(s.saved.x, 0, s.width-1)
	s.cursor.Y = clampInt(s.saved.y, 0, s.height-1)
	s.pen = s.saved.pen
}

// selectGraphicRendition implements §4.2's SGR algorithm.
func (s *Screen) selectGraphicRendition(params *Params) {
	if params.Len() == 0 {
		s.pen = defaultPen
		return
	}
	for i := 0; i < params.Len(); i++ {
		code := int(params.GetSingle(i, 0))
		switch {
		case code == 0:
			s.pen = defaultPen
		case code == 1:
			s.pen.Attrs |= AttrBold
		case code == 2:
			s.pen.Attrs |= AttrDim
		case code == 3:
			s.pen.Attrs |= AttrItalic
		case code == 4:
			s.pen.Attrs |= AttrUnderline
		case code == 5:
			s.pen.Attrs |= AttrBlink
		case code == 7:
			s.pen.Attrs |= AttrReverse
		case code == 8:
			s.pen.Attrs |= AttrHidden
		case code == 9:
			s.pen.Attrs |= AttrStrikethrough
		case code == 22:
			s.pen.Attrs &^= AttrBold | AttrDim
		case code == 23:
			s.pen.Attrs &^= AttrItalic
		case code == 24:
			s.pen.Attrs &^= AttrUnderline
		case code == 25:
			s.pen.Attrs &^= AttrBlink
		case code == 27:
			s.pen.Attrs &^= AttrReverse
		case code == 28:
			s.pen.Attrs &^= AttrHidden
		case code == 29:
			s.pen.Attrs &^= AttrStrikethrough
		case code >= 30 && code <= 37:
			s.pen.Fg = code - 30
		case code == 38:
			if idx, consumed, ok := s.extendedColor(params, i); ok {
				s.pen.Fg = idx
				i += consumed
			}
		case code == 39:
			s.pen.Fg = DefaultColor
		case code >= 40 && code <= 47:
			s.pen.Bg = code - 40
		case code == 48:
			if idx, consumed, ok := s.extendedColor(params, i); ok {
				s.pen.Bg = idx
				i += consumed
			}
		case code == 49:
			s.pen.Bg = DefaultColor
		case code >= 90 && code <= 97:
			s.pen.Fg = code - 90
			s.pen.Attrs |= AttrBold
		case code >= 100 && code <= 107:
			s.pen.Bg = code - 100
		}
	}
}

// extendedColor resolves a 38/48 extended-color entry starting at
// primary parameter i, accepting both subparameter form (38:5:idx or
// 38:2:r:g:b) and legacy additional-primary-parameter form (38;5;idx).
// Per §4.2's SGR algorithm, the 256-color form (mode 5) is stored
// verbatim as the cell's fg/bg index; only the true-color form (mode 2)
// is best-effort mapped down to one of the 8 palette indices. It
// returns the resolved index, how many extra primary parameters it
// consumed in the legacy form (0 when subparameters carried
// everything), and whether a color was actually resolved.
func (s *Screen) extendedColor(params *Params, i int) (idx int, consumed int, ok bool) {
	if subs := params.SubCount(i); subs > 0 {
		switch params.GetSub(i, 0, 0) {
		case 5:
			return params.GetSub(i, 1, 0), 0, true
		case 2:
			r := params.GetSub(i, 1, 0)
			g := params.GetSub(i, 2, 0)
			b := params.GetSub(i, 3, 0)
			return nearest8ColorIndex(uint8(r), uint8(g), uint8(b)), 0, true
		}
		return 0, 0, false
	}

	mode := params.GetSingle(i+1, -1)
	switch mode {
	case 5:
		return params.GetSingle(i+2, 0), 2, true
	case 2:
		r := params.GetSingle(i+2, 0)
		g := params.GetSingle(i+3, 0)
		b := params.GetSingle(i+4, 0)
		return nearest8ColorIndex(uint8(r), uint8(g), uint8(b)), 4, true
	}
	return 0, 0, false
}

// --- Performer: EscDispatch ---

// EscDispatch implements §4.2's esc_dispatch table.
func (s *Screen) EscDispatch(intermediates []byte, _ bool, final byte) {
	if len(intermediates) == 1 {
		if gIndex, ok := gsetIndex(intermediates[0]); ok {
			if cs, ok := charsetFromFinal(final); ok {
				s.gsets[gIndex] = cs
			}
			return
		}
	}

	switch final {
	case '7':
		s.saveCursor()
	case '8':
		s.restoreCursor()
	case 'c':
		s.Reset()
	case 'D':
		s.clearPendingWrap()
		s.lineFeed()
	case 'E':
		s.clearPendingWrap()
		s.cursor.X = 0
		s.lineFeed()
	case 'H':
		if s.cursor.X >= 0 && s.cursor.X < s.width {
			s.tabStops[s.cursor.X] = true
		}
	case 'M':
		s.clearPendingWrap()
		s.reverseIndex()
	case '=':
		s.modes[ModeAppKeypad] = true
	case '>':
		s.modes[ModeAppKeypad] = false
	}
}

// gsetIndex maps an ESC intermediate byte to a G-set index, per §4.2's
// "intermediate of (, ), *, + selects G0/G1/G2/G3 respectively".
func gsetIndex(intermediate byte) (int, bool) {
	switch intermediate {
	case '(':
		return 0, true
	case ')':
		return 1, true
	case '*':
		return 2, true
	case '+':
		return 3, true
	default:
		return 0, false
	}
}

// --- Performer: OSCDispatch ---

// OSCDispatch implements §4.2's osc_dispatch: commands 0, 1, 2 set the
// window/icon title; every other code is a no-op, per §7 ("the engine
// never fails OSC dispatch").
func (s *Screen) OSCDispatch(params [][]byte, _ bool) {
	if len(params) == 0 {
		return
	}
	code := parseOSCCode(params[0])
	switch code {
	case 0, 1, 2:
		if len(params) > 1 {
			s.title = string(params[1])
		}
	}
}

func parseOSCCode(b []byte) int {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	if len(b) == 0 {
		return -1
	}
	return n
}

// --- Performer: DCS passthrough ---
//
// The engine defines no semantics for device control strings (§4.2 is
// silent on DCS beyond the parser's own hook/put/unhook contract), so
// Screen implements these as no-ops, matching its treatment of
// SOS/PM/APC bodies.

func (s *Screen) Hook(params *Params, intermediates []byte, ignore bool, final byte) {}
func (s *Screen) Put(b byte)                                                         {}
func (s *Screen) Unhook()                                                            {}
