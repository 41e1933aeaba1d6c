// Package entity defines the movable, renderable, collidable objects of the arena
package entity

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arena/core"
)

// ID is a stable identity issued at spawn; 0 is never issued
type ID uint64

// Kind selects an entity's collision behavior
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	}
	return "unknown"
}

// Entity is the shared state of every arena object
type Entity struct {
	ID   ID
	Kind Kind

	pos     *core.Vector2
	prevPos *core.Vector2

	Size  core.Size
	Fg    tcell.Color
	Bg    tcell.Color
	Glyph rune

	Direction     core.Direction
	PrevDirection core.Direction

	destroyed bool
}

// Pos returns the current position and false before first placement
func (e *Entity) Pos() (core.Vector2, bool) {
	if e.pos == nil {
		return core.Vector2{}, false
	}
	return *e.pos, true
}

// PrevPos returns the position saved by the last move
func (e *Entity) PrevPos() (core.Vector2, bool) {
	if e.prevPos == nil {
		return core.Vector2{}, false
	}
	return *e.prevPos, true
}

// Placed reports whether the entity has a position
func (e *Entity) Placed() bool {
	return e.pos != nil
}

// Move steps one tick in dir; DirNone only records the direction history
func (e *Entity) Move(dir core.Direction) {
	e.PrevDirection = e.Direction
	if dir == core.DirNone || e.pos == nil {
		return
	}
	e.Direction = dir
	e.savePrev()
	next := e.pos.Add(dir.Step())
	e.pos = &next
}

// Teleport overwrites the position, still saving the previous one
func (e *Entity) Teleport(p core.Vector2) {
	e.PrevDirection = e.Direction
	e.savePrev()
	e.pos = &p
}

// Rollback restores the position saved by the last move, if any
func (e *Entity) Rollback() {
	if e.prevPos == nil {
		return
	}
	p := *e.prevPos
	e.pos = &p
}

func (e *Entity) savePrev() {
	if e.pos == nil {
		e.prevPos = nil
		return
	}
	p := *e.pos
	e.prevPos = &p
}

// Grow enlarges by one size step, clamped
func (e *Entity) Grow() {
	e.Size = e.Size.Grow()
}

// Shrink reduces by one size step, clamped
func (e *Entity) Shrink() {
	e.Size = e.Size.Shrink()
}

func (e *Entity) Width() int  { return int(e.Size) }
func (e *Entity) Height() int { return int(e.Size) }

// Rect is the bounding box around the current position; callers must check Placed
func (e *Entity) Rect() core.Rect {
	p, _ := e.Pos()
	return core.RectAround(p, e.Size)
}

// Trajectory is the bounding box pulled in along the current direction
func (e *Entity) Trajectory() core.Rect {
	return e.Rect().Trajectory(e.Direction)
}

// SetColor replaces both colors
func (e *Entity) SetColor(fg, bg tcell.Color) {
	e.Fg = fg
	e.Bg = bg
}

// Destroy marks the entity for removal at the next sweep
func (e *Entity) Destroy() {
	e.destroyed = true
}

func (e *Entity) Destroyed() bool {
	return e.destroyed
}

func (e *Entity) String() string {
	if p, ok := e.Pos(); ok {
		return fmt.Sprintf("<%s#%d(x=%d,y=%d)>", e.Kind, e.ID, p.X, p.Y)
	}
	return fmt.Sprintf("<%s#%d(unplaced)>", e.Kind, e.ID)
}
