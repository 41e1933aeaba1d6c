// Package terminal wraps the tcell screen behind the small surface the game loop needs
package terminal

import "github.com/gdamore/tcell/v2"

// KeyEvent is a decoded key press
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Display is the character-cell output and input source
// PollKey never blocks; it reports false when no key is pending
type Display interface {
	Size() (width, height int)
	SetCell(x, y int, glyph rune, fg, bg tcell.Color)
	Clear()
	Show()
	PollKey() (KeyEvent, bool)
	Close()
}
