package core

import "fmt"

// Rect is an axis-aligned box with inclusive corners
// Y grows downward, so Y1 is the top edge on screen and Y2 the bottom edge
type Rect struct {
	X1, Y1, X2, Y2 int
}

// RectAround builds the bounding box of an odd-sized square centered on c
func RectAround(c Vector2, size Size) Rect {
	r := (int(size) - 1) / 2
	return Rect{
		X1: c.X - r,
		Y1: c.Y - r,
		X2: c.X + r,
		Y2: c.Y + r,
	}
}

// LB is the (X1, Y1) corner
func (r Rect) LB() Vector2 { return Vector2{X: r.X1, Y: r.Y1} }

// LT is the (X1, Y2) corner
func (r Rect) LT() Vector2 { return Vector2{X: r.X1, Y: r.Y2} }

// RB is the (X2, Y1) corner
func (r Rect) RB() Vector2 { return Vector2{X: r.X2, Y: r.Y1} }

// RT is the (X2, Y2) corner
func (r Rect) RT() Vector2 { return Vector2{X: r.X2, Y: r.Y2} }

// Corners returns LB, LT, RB, RT in that order
func (r Rect) Corners() [4]Vector2 {
	return [4]Vector2{r.LB(), r.LT(), r.RB(), r.RT()}
}

func (r Rect) Width() int {
	return abs(r.X2-r.X1) + 1
}

func (r Rect) Height() int {
	return abs(r.Y2-r.Y1) + 1
}

// Center returns the midpoint, exact for rects built by RectAround
func (r Rect) Center() Vector2 {
	return Vector2{
		X: r.X1 + (r.X2-r.X1)/2,
		Y: r.Y1 + (r.Y2-r.Y1)/2,
	}
}

// Contains reports whether p lies inside the rect, edges included
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Trajectory stretches the trailing edge back over the step just taken, so the
// box spans the old and new position for the pre-move terrain check
// Vertical steps are one cell, so Up and Down only move the leading row
func (r Rect) Trajectory(dir Direction) Rect {
	step := dir.Step()
	t := r
	switch dir {
	case DirLeft:
		t.X2 -= step.X
	case DirRight:
		t.X1 -= step.X
	case DirUp:
		t.Y1 -= step.Y
	case DirDown:
		t.Y2 -= step.Y
	}
	return t
}

func (r Rect) String() string {
	return fmt.Sprintf("lb=%s,lt=%s,rt=%s,rb=%s,w=%d,h=%d",
		r.LB(), r.LT(), r.RT(), r.RB(), r.Width(), r.Height())
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
