package vterm

// Mode is a boolean terminal flag, named per §3's Modes list.
type Mode int

const (
	ModeAppCursorKeys Mode = iota
	ModeAppKeypad
	ModeAutoWrap
	ModeOrigin
	ModeInsert
	ModeLocalEcho
	ModeCursorVisible
	ModeReverseVideo
	ModeBracketedPaste
	modeCount
)

// defaultModes returns the mode set a freshly constructed or hard-reset
// Screen starts with: auto-wrap and cursor visibility on, everything
// else off.
func defaultModes() [modeCount]bool {
	var m [modeCount]bool
	m[ModeAutoWrap] = true
	m[ModeCursorVisible] = true
	return m
}
