package physics

import (
	"testing"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/entity"
)

func place(s *entity.Spawner, kind entity.Kind, x, y int, size core.Size) *entity.Entity {
	var e *entity.Entity
	if kind == entity.KindPlayer {
		e = s.NewPlayer(core.Vector2{X: x, Y: y})
	} else {
		e = s.NewEnemy(core.Vector2{X: x, Y: y})
	}
	e.Size = size
	return e
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		was, now bool
		want     CollisionState
	}{
		{false, true, Entered},
		{true, false, Exited},
		{true, true, BeingCollided},
		{false, false, NotCollided},
	}
	for _, tt := range tests {
		if got := Transition(tt.was, tt.now); got != tt.want {
			t.Errorf("Transition(%v,%v): expected %s, got %s", tt.was, tt.now, tt.want, got)
		}
	}
}

func TestCollideAveragedExtents(t *testing.T) {
	s := entity.NewSpawner(nil)

	// Widths 3 and 5 average to 4; centers 3 apart on x overlap
	a := place(s, entity.KindPlayer, 10, 10, 3)
	b := place(s, entity.KindEnemy, 13, 10, 5)
	if !Collide(a, b) {
		t.Error("Expected overlap with x distance 3 < averaged width 4")
	}

	// Distance equal to the averaged width does not overlap
	c := place(s, entity.KindEnemy, 14, 10, 5)
	if Collide(a, c) {
		t.Error("Expected no overlap with x distance 4 == averaged width 4")
	}

	// y axis must hold as well
	d := place(s, entity.KindEnemy, 13, 14, 5)
	if Collide(a, d) {
		t.Error("Expected no overlap when y distance exceeds averaged height")
	}
}

func TestCollideUnplaced(t *testing.T) {
	s := entity.NewSpawner(nil)
	a := place(s, entity.KindPlayer, 0, 0, 1)
	ghost := &entity.Entity{ID: 77, Kind: entity.KindEnemy, Size: core.MinSize}
	if Collide(a, ghost) || Collide(ghost, a) {
		t.Error("Expected unplaced entity to never collide")
	}
}

func TestCollideSymmetric(t *testing.T) {
	s := entity.NewSpawner(nil)
	sizes := []core.Size{1, 3, 5, 9}
	for _, sa := range sizes {
		for _, sb := range sizes {
			for dx := -8; dx <= 8; dx++ {
				for dy := -5; dy <= 5; dy++ {
					a := place(s, entity.KindPlayer, 20, 20, sa)
					b := place(s, entity.KindEnemy, 20+dx, 20+dy, sb)
					if Collide(a, b) != Collide(b, a) {
						t.Fatalf("Asymmetric collide: sizes %d/%d offset (%d,%d)", sa, sb, dx, dy)
					}
				}
			}
		}
	}
}

func TestPairKeyCanonical(t *testing.T) {
	if MakePairKey(3, 9) != MakePairKey(9, 3) {
		t.Error("Expected unordered pair keys to match")
	}
	k := MakePairKey(9, 3)
	if k.Lo != 3 || k.Hi != 9 {
		t.Errorf("Expected Lo=3 Hi=9, got %+v", k)
	}
}

func TestPairTableForget(t *testing.T) {
	pt := NewPairTable()
	pt.Set(MakePairKey(1, 2), true)
	pt.Set(MakePairKey(1, 3), false)
	pt.Set(MakePairKey(4, 2), true)

	pt.Forget(2)
	if pt.Len() != 1 {
		t.Errorf("Expected 1 remaining pair, got %d", pt.Len())
	}
	if pt.Get(MakePairKey(1, 2)) {
		t.Error("Expected forgotten pair to read false")
	}
}
