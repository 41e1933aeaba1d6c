package physics

import (
	"github.com/lixenwraith/arena/entity"
)

// CollisionState is the per-tick transition of a pair's overlap flag
type CollisionState uint8

const (
	NotCollided CollisionState = iota
	Entered
	BeingCollided
	Exited
)

func (s CollisionState) String() string {
	switch s {
	case Entered:
		return "entered"
	case BeingCollided:
		return "being_collided"
	case Exited:
		return "exited"
	}
	return "not_collided"
}

// Transition derives the state from the stored flag and this tick's overlap
func Transition(was, now bool) CollisionState {
	switch {
	case !was && now:
		return Entered
	case was && !now:
		return Exited
	case now:
		return BeingCollided
	}
	return NotCollided
}

// Collide is the averaged-extent box test: centers must be closer than the mean
// of the two widths on x and the mean of the two heights on y
// This is not a true AABB overlap; the averaged radius shapes game feel and is kept as is
func Collide(a, b *entity.Entity) bool {
	if !a.Placed() || !b.Placed() {
		return false
	}
	ra, rb := a.Rect(), b.Rect()
	ca, cb := ra.Center(), rb.Center()

	width := (ra.Width() + rb.Width()) / 2
	height := (ra.Height() + rb.Height()) / 2

	return absInt(ca.X-cb.X) < width && absInt(ca.Y-cb.Y) < height
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
