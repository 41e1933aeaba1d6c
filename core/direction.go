package core

import "github.com/lixenwraith/arena/constants"

// Direction is one of the four movement directions, or None
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Step returns the per-tick displacement for the direction
// Horizontal steps are wider than vertical ones because terminal cells are taller than wide
func (d Direction) Step() Vector2 {
	switch d {
	case DirLeft:
		return Vector2{X: -constants.HorizontalStep}
	case DirRight:
		return Vector2{X: constants.HorizontalStep}
	case DirUp:
		return Vector2{Y: -constants.VerticalStep}
	case DirDown:
		return Vector2{Y: constants.VerticalStep}
	}
	return Vector2{}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}
