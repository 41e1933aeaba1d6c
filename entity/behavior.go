package entity

import (
	"github.com/gdamore/tcell/v2"
)

// Palette colors for collision feedback
var (
	PlayerColor      = tcell.ColorRed
	PlayerAlertColor = tcell.ColorGreen
	EnemyHitColor    = tcell.ColorGreen
	EnemyGoneColor   = tcell.ColorBlue
)

// behavior is the per-kind collision reaction
type behavior struct {
	entered func(self, other *Entity)
	exited  func(self, other *Entity)
}

// behaviors is indexed by Kind; the set of kinds is closed
var behaviors = [kindCount]behavior{
	KindPlayer: {
		entered: func(self, _ *Entity) {
			self.SetColor(PlayerAlertColor, PlayerAlertColor)
			self.Grow()
		},
		exited: func(self, _ *Entity) {
			self.SetColor(PlayerColor, PlayerColor)
		},
	},
	KindEnemy: {
		entered: func(self, _ *Entity) {
			self.SetColor(EnemyHitColor, tcell.ColorDefault)
		},
		exited: func(self, _ *Entity) {
			// Touching the player is lethal once contact ends
			self.SetColor(EnemyGoneColor, tcell.ColorDefault)
			self.Destroy()
		},
	},
}

// Entered dispatches self's reaction to a new contact with other
func Entered(self, other *Entity) {
	behaviors[self.Kind].entered(self, other)
}

// Exited dispatches self's reaction to contact with other ending
func Exited(self, other *Entity) {
	behaviors[self.Kind].exited(self, other)
}
