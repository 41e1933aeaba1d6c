// Package render composes the map and entities into camera-relative terminal cells
package render

import (
	"errors"

	"go.uber.org/zap"

	"github.com/lixenwraith/arena/constants"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/entity"
	"github.com/lixenwraith/arena/terminal"
)

// ErrNoPlayer is returned when a scene has no placed player to center on
var ErrNoPlayer = errors.New("scene has no placed player")

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Compositor runs its layers in priority order to build a frame
// Compose never mutates the scene
type Compositor struct {
	layers   []layerEntry
	regCount int
	buf      Buffer
	log      *zap.Logger
}

// NewCompositor creates a compositor with the map, enemy, player, overlay and HUD layers
func NewCompositor(log *zap.Logger) *Compositor {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Compositor{
		layers: make([]layerEntry, 0, 8),
		log:    log,
	}
	c.Register(mapLayer{}, PriorityMap)
	c.Register(entityLayer{log: log, pick: enemiesOf}, PriorityEnemies)
	c.Register(entityLayer{log: log, pick: playersOf}, PriorityPlayer)
	c.Register(overlayLayer{}, PriorityOverlay)
	c.Register(hudLayer{row: constants.HUDRow}, PriorityHUD)
	return c
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (c *Compositor) Register(l Layer, priority Priority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    c.regCount,
	}
	c.regCount++

	pos := len(c.layers)
	for i, e := range c.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	c.layers = append(c.layers, layerEntry{})
	copy(c.layers[pos+1:], c.layers[pos:])
	c.layers[pos] = entry
}

// CameraOffset centers the player's bounding rect in a view of the given size
func CameraOffset(player *entity.Entity, viewWidth, viewHeight int) core.Vector2 {
	return player.Rect().Center().Sub(core.Vector2{X: viewWidth / 2, Y: viewHeight / 2})
}

// Compose builds the frame for s
// The returned slice is reused by the next call
func (c *Compositor) Compose(s *Scene) ([]Cell, error) {
	if s.Player == nil || !s.Player.Placed() {
		return nil, ErrNoPlayer
	}

	c.buf.reset(CameraOffset(s.Player, s.ViewWidth, s.ViewHeight), s.ViewWidth, s.ViewHeight)
	for _, entry := range c.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.Visible(s) {
			continue
		}
		entry.layer.Render(s, &c.buf)
	}
	return c.buf.cells, nil
}

// Present clears the display, writes cells in order and shows the result
func Present(d terminal.Display, cells []Cell) {
	d.Clear()
	for _, cell := range cells {
		d.SetCell(cell.X, cell.Y, cell.Glyph, cell.Fg, cell.Bg)
	}
	d.Show()
}
