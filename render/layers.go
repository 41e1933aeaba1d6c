package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/entity"
	"github.com/lixenwraith/arena/level"
	"github.com/lixenwraith/arena/status"
)

// Scene is everything a frame is composed from
type Scene struct {
	Map     *level.Map
	Enemies []*entity.Entity
	Player  *entity.Entity
	Others  []*entity.Entity

	ViewWidth  int
	ViewHeight int

	Debug  bool
	Status *status.Registry
}

// Layer is implemented by each stage of the draw order
type Layer interface {
	Render(s *Scene, buf *Buffer)
}

// VisibilityToggle is optionally implemented for layers shown only in some frames
type VisibilityToggle interface {
	Visible(s *Scene) bool
}

// MapColor is the foreground of every terrain cell
const MapColor = tcell.ColorWhite

type mapLayer struct{}

func (mapLayer) Render(s *Scene, buf *Buffer) {
	if s.Map == nil {
		return
	}
	s.Map.Each(func(p core.Vector2, ch rune) {
		buf.Put(p, ch, MapColor, tcell.ColorDefault)
	})
}

// entityLayer fills each entity's bounding rect with its glyph
type entityLayer struct {
	log  *zap.Logger
	pick func(s *Scene) []*entity.Entity
}

func (l entityLayer) Render(s *Scene, buf *Buffer) {
	for _, e := range l.pick(s) {
		drawEntity(l.log, e, buf)
	}
}

func drawEntity(log *zap.Logger, e *entity.Entity, buf *Buffer) {
	if !e.Placed() {
		log.Debug("skipping unplaced entity", zap.Stringer("entity", e))
		return
	}
	r := e.Rect()
	for y := r.Y1; y <= r.Y2; y++ {
		for x := r.X1; x <= r.X2; x++ {
			buf.Put(core.Vector2{X: x, Y: y}, e.Glyph, e.Fg, e.Bg)
		}
	}
}

func enemiesOf(s *Scene) []*entity.Entity { return s.Enemies }

// playersOf draws other players under the controlled one
func playersOf(s *Scene) []*entity.Entity {
	out := make([]*entity.Entity, 0, len(s.Others)+1)
	out = append(out, s.Others...)
	return append(out, s.Player)
}

// overlayLayer labels every placed entity with its position and extents
type overlayLayer struct{}

func (overlayLayer) Visible(s *Scene) bool { return s.Debug }

func (overlayLayer) Render(s *Scene, buf *Buffer) {
	for _, group := range [][]*entity.Entity{s.Enemies, s.Others, {s.Player}} {
		for _, e := range group {
			if !e.Placed() {
				continue
			}
			r := e.Rect()
			buf.Text(core.Vector2{X: r.X2 + 1, Y: r.Y1 + 1}, DebugLabel(e), tcell.ColorWhite, tcell.ColorDefault)
		}
	}
}

// DebugLabel is the overlay text for a placed entity
func DebugLabel(e *entity.Entity) string {
	p, _ := e.Pos()
	return fmt.Sprintf("xy(%d,%d),w=%d,h=%d", p.X, p.Y, e.Width(), e.Height())
}

// hudLayer prints the run metrics on a fixed screen row
type hudLayer struct {
	row int
}

func (hudLayer) Visible(s *Scene) bool { return s.Debug && s.Status != nil }

func (l hudLayer) Render(s *Scene, buf *Buffer) {
	buf.TextScreen(0, l.row, s.Status.Line(), tcell.ColorYellow, tcell.ColorDefault)
}
