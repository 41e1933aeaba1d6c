package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/terminal"
)

type cellKey struct{ x, y int }

// fakeDisplay is an in-memory Display with scripted keys
type fakeDisplay struct {
	width, height int
	keys          []terminal.KeyEvent
	cells         map[cellKey]rune
	shows         int
	panicOnShow   bool
	closed        bool
}

func newFakeDisplay(w, h int) *fakeDisplay {
	return &fakeDisplay{width: w, height: h, cells: make(map[cellKey]rune)}
}

func (d *fakeDisplay) press(runes ...rune) {
	for _, r := range runes {
		d.keys = append(d.keys, terminal.KeyEvent{Key: tcell.KeyRune, Rune: r})
	}
}

func (d *fakeDisplay) Size() (int, int) { return d.width, d.height }

func (d *fakeDisplay) SetCell(x, y int, glyph rune, _, _ tcell.Color) {
	d.cells[cellKey{x, y}] = glyph
}

func (d *fakeDisplay) Clear() { clear(d.cells) }

func (d *fakeDisplay) Show() {
	if d.panicOnShow {
		panic("display lost")
	}
	d.shows++
}

func (d *fakeDisplay) PollKey() (terminal.KeyEvent, bool) {
	if len(d.keys) == 0 {
		return terminal.KeyEvent{}, false
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k, true
}

func (d *fakeDisplay) Close() { d.closed = true }
