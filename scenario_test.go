package vterm

import "testing"

// newScenarioScreen builds the 40x10 grid used by every end-to-end
// scenario.
func newScenarioScreen() (*Parser, *Screen) {
	s := NewScreen(40, 10)
	return NewParser(s), s
}

func TestScenarioTextAndControl(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("Line1\nLine2"))

	want0 := "Line1"
	want1 := "Line2"
	if got := rowText(s, 0, 0, 5); got != want0 {
		t.Fatalf("row0[0:5] = %q, want %q", got, want0)
	}
	if got := rowText(s, 1, 0, 5); got != want1 {
		t.Fatalf("row1[0:5] = %q, want %q", got, want1)
	}
	x, y, _ := s.CursorPos()
	if x != 5 || y != 1 {
		t.Fatalf("cursor = (%d,%d), want (5,1)", x, y)
	}
}

func TestScenarioSGRWithReset(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("\x1b[1;4;31;42mA\x1b[0mB"))

	a := s.Cell(0, 0)
	if a.Fg != 1 || a.Bg != 2 {
		t.Fatalf("cell[0][0] fg/bg = %d/%d, want 1/2", a.Fg, a.Bg)
	}
	if !a.Attrs.Has(AttrBold) || !a.Attrs.Has(AttrUnderline) {
		t.Fatalf("cell[0][0] attrs = %v, want bold|underline set", a.Attrs)
	}

	b := s.Cell(0, 1)
	if b.Fg != DefaultColor || b.Bg != DefaultColor || b.Attrs != 0 {
		t.Fatalf("cell[0][1] = %+v, want fg=bg=-1, attrs=0", b)
	}
}

func TestScenarioBrightColorImpliesBold(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("\x1b[91mX\x1b[39m"))

	x := s.Cell(0, 0)
	if x.Fg != 1 {
		t.Fatalf("cell[0][0] fg = %d, want 1", x.Fg)
	}
	if !x.Attrs.Has(AttrBold) {
		t.Fatalf("cell[0][0] bold bit not set")
	}
}

func TestScenarioCursorPositioning(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("\x1b[3;10H*"))

	if got := s.Cell(2, 9).Codepoint; got != '*' {
		t.Fatalf("cell[2][9] = %q, want '*'", got)
	}
	x, y, _ := s.CursorPos()
	if x != 10 || y != 2 {
		t.Fatalf("cursor = (%d,%d), want (10,2)", x, y)
	}
}

func TestScenarioEraseInDisplayFromMidScreen(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("L1\nL2\nL3\n"))
	p.Feed([]byte("\x1b[2;3H\x1b[0J"))

	if got := s.Cell(0, 0).Codepoint; got != 'L' {
		t.Fatalf("cell[0][0] = %q, want 'L' preserved", got)
	}
	for x := 3; x < s.Width(); x++ {
		if got := s.Cell(1, x).Codepoint; got != ' ' {
			t.Fatalf("cell[1][%d] = %q, want blank", x, got)
		}
	}
	for x := 0; x < s.Width(); x++ {
		if got := s.Cell(2, x).Codepoint; got != ' ' {
			t.Fatalf("cell[2][%d] = %q, want blank", x, got)
		}
	}
}

func TestScenarioDECSpecialCharsetLineDrawing(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("\x1b(0qqq\x1b(B"))

	for x := 0; x < 3; x++ {
		if got := s.Cell(0, x).Codepoint; got != '─' {
			t.Fatalf("cell[0][%d] = %U, want U+2500", x, got)
		}
	}
}

func TestScenario256ColorSGR(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("\x1b[38;5;196mZ"))

	if got := s.PenState().Fg; got != 196 {
		t.Fatalf("pen fg = %d, want 196 verbatim", got)
	}
	if got := s.Cell(0, 0).Fg; got != 196 {
		t.Fatalf("cell[0][0] fg = %d, want 196", got)
	}
}

func TestScenarioSaveRestore(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("\x1b[5;10H\x1b[31mRed\x1b[s\x1b[1;1H\x1b[32mGreen\x1b[u"))

	x, y, _ := s.CursorPos()
	if x != 12 || y != 4 {
		t.Fatalf("cursor = (%d,%d), want (12,4)", x, y)
	}
	if got := s.PenState().Fg; got != 1 {
		t.Fatalf("pen fg = %d, want 1", got)
	}
}

func TestScenarioTabBehavior(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("A\tB"))

	if got := s.Cell(0, 0).Codepoint; got != 'A' {
		t.Fatalf("cell[0][0] = %q, want 'A'", got)
	}
	if got := s.Cell(0, 8).Codepoint; got != 'B' {
		t.Fatalf("cell[0][8] = %q, want 'B'", got)
	}
	x, _, _ := s.CursorPos()
	if x != 9 {
		t.Fatalf("cursor x = %d, want 9", x)
	}
}

// Idempotent-reset law (§8): ESC c followed by any operation is
// indistinguishable from that operation on a freshly constructed screen
// of the same dimensions.
func TestLawIdempotentReset(t *testing.T) {
	p, s := newScenarioScreen()
	p.Feed([]byte("\x1b[3;10H\x1b[31mgarbage\x1b[?25l"))
	p.Feed([]byte("\x1bc"))
	p.Feed([]byte("\x1b[2;5HZ"))

	freshP, freshS := newScenarioScreen()
	freshP.Feed([]byte("\x1b[2;5HZ"))

	if s.Cell(1, 4) != freshS.Cell(1, 4) {
		t.Fatalf("cell after reset-then-op = %+v, want %+v", s.Cell(1, 4), freshS.Cell(1, 4))
	}
	x1, y1, v1 := s.CursorPos()
	x2, y2, v2 := freshS.CursorPos()
	if x1 != x2 || y1 != y2 || v1 != v2 {
		t.Fatalf("cursor after reset-then-op = (%d,%d,%v), want (%d,%d,%v)", x1, y1, v1, x2, y2, v2)
	}
}

// Slice-invariance law (§8), exercised end-to-end through Screen rather
// than just the parser's recorded dispatches.
func TestLawSliceInvarianceThroughScreen(t *testing.T) {
	input := []byte("Hello\x1b[1;31mWorld\x1b[0m\n\x1b[38:5:201mZ\x1b(0q\x1b(B")

	wholeP, wholeS := newScenarioScreen()
	wholeP.Feed(input)

	for split := 1; split < len(input); split++ {
		p, s := newScenarioScreen()
		p.Feed(input[:split])
		p.Feed(input[split:])

		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				if s.Cell(y, x) != wholeS.Cell(y, x) {
					t.Fatalf("split at %d: cell[%d][%d] = %+v, want %+v", split, y, x, s.Cell(y, x), wholeS.Cell(y, x))
				}
			}
		}
	}
}
