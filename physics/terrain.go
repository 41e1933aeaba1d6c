package physics

import (
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/entity"
)

// Terrain is the occupancy query the movement guard needs
type Terrain interface {
	Intersects(r core.Rect) bool
}

// Settle is the pre-move wall guard: when checkIntersect is set and the entity's
// trajectory hits terrain it is rolled back and settled again with the check off,
// so at most one rollback happens per call
// Reports whether a rollback happened
func Settle(e *entity.Entity, terrain Terrain, checkIntersect bool) bool {
	if !e.Placed() {
		return false
	}

	r := e.Rect()
	trajectory := r
	if e.Direction != core.DirNone {
		trajectory = e.Trajectory()
	}

	if checkIntersect && terrain.Intersects(trajectory) {
		e.Rollback()
		Settle(e, terrain, false)
		return true
	}
	return false
}
