package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/arena/constants"
	"github.com/lixenwraith/arena/core"
)

// EnemyPalette is the pool enemy foregrounds are drawn from
var EnemyPalette = []tcell.Color{
	tcell.ColorDefault,
	tcell.ColorBlack,
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorBlue,
	tcell.ColorFuchsia,
	tcell.ColorAqua,
	tcell.ColorWhite,
}

// Blocker is satisfied by terrain that can veto spawn cells
type Blocker interface {
	Blocked(p core.Vector2) bool
}

// Spawner issues entity IDs and builds entities with their default look
type Spawner struct {
	next ID
	rng  *rand.Rand
}

// NewSpawner creates a spawner; rng drives enemy placement and color
func NewSpawner(rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Spawner{rng: rng}
}

func (s *Spawner) issue() ID {
	s.next++
	return s.next
}

// NewPlayer creates a player at pos
func (s *Spawner) NewPlayer(pos core.Vector2) *Entity {
	p := pos
	return &Entity{
		ID:    s.issue(),
		Kind:  KindPlayer,
		pos:   &p,
		Size:  core.MinSize,
		Fg:    PlayerColor,
		Bg:    PlayerColor,
		Glyph: constants.PlayerGlyph,
	}
}

// NewEnemy creates an enemy at pos with a random foreground
func (s *Spawner) NewEnemy(pos core.Vector2) *Entity {
	p := pos
	return &Entity{
		ID:    s.issue(),
		Kind:  KindEnemy,
		pos:   &p,
		Size:  core.MinSize,
		Fg:    EnemyPalette[s.rng.Intn(len(EnemyPalette))],
		Bg:    tcell.ColorDefault,
		Glyph: constants.EnemyGlyph,
	}
}

// SpawnEnemies scatters up to count enemies over [X1, X2-1] x [Y1, Y2-1], one per cell
// The far edge is exclusive; with a Map.Boundary area the last column and row never get enemies
// When terrain is non-nil blocked cells are skipped; fewer enemies are returned if space runs out
func (s *Spawner) SpawnEnemies(count int, area core.Rect, terrain Blocker, avoid ...core.Vector2) []*Entity {
	spanX := area.X2 - area.X1
	spanY := area.Y2 - area.Y1
	if count <= 0 || spanX <= 0 || spanY <= 0 {
		return nil
	}

	taken := mapset.New[core.Vector2]()
	for _, p := range avoid {
		taken.Put(p)
	}

	enemies := make([]*Entity, 0, count)
	for attempts := count * 8; len(enemies) < count && attempts > 0; attempts-- {
		p := core.Vector2{
			X: area.X1 + s.rng.Intn(spanX),
			Y: area.Y1 + s.rng.Intn(spanY),
		}
		if taken.Has(p) {
			continue
		}
		if terrain != nil && terrain.Blocked(p) {
			continue
		}
		taken.Put(p)
		enemies = append(enemies, s.NewEnemy(p))
	}
	return enemies
}
