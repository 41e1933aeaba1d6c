package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/core"
)

// Cell is one positioned terminal character in screen coordinates
type Cell struct {
	X, Y  int
	Glyph rune
	Fg    tcell.Color
	Bg    tcell.Color
}

// Buffer collects cells for one frame, clipped to the viewport
type Buffer struct {
	cells  []Cell
	offset core.Vector2
	width  int
	height int
}

func (b *Buffer) reset(offset core.Vector2, width, height int) {
	b.cells = b.cells[:0]
	b.offset = offset
	b.width = width
	b.height = height
}

// Offset is the camera offset subtracted from world coordinates
func (b *Buffer) Offset() core.Vector2 {
	return b.offset
}

// Put writes a cell at world coordinates
func (b *Buffer) Put(p core.Vector2, glyph rune, fg, bg tcell.Color) {
	s := p.Sub(b.offset)
	b.PutScreen(s.X, s.Y, glyph, fg, bg)
}

// PutScreen writes a cell at screen coordinates, dropping it outside the viewport
func (b *Buffer) PutScreen(x, y int, glyph rune, fg, bg tcell.Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells = append(b.cells, Cell{X: x, Y: y, Glyph: glyph, Fg: fg, Bg: bg})
}

// Text writes s left to right starting at world coordinates p
func (b *Buffer) Text(p core.Vector2, s string, fg, bg tcell.Color) {
	for _, r := range s {
		b.Put(p, r, fg, bg)
		p.X++
	}
}

// TextScreen writes s left to right starting at screen coordinates
func (b *Buffer) TextScreen(x, y int, s string, fg, bg tcell.Color) {
	for _, r := range s {
		b.PutScreen(x, y, r, fg, bg)
		x++
	}
}

// Len is the number of cells written this frame
func (b *Buffer) Len() int {
	return len(b.cells)
}
