package constants

import "time"

// Game Loop Timing
const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 40

	// TickInterval is the sleep between ticks; no drift compensation is applied
	TickInterval = time.Second / TickRate
)

// Movement steps in cells per tick
// Horizontal is doubled so motion looks even on terminal cells that are twice as tall as wide
const (
	HorizontalStep = 2
	VerticalStep   = 1
)

// Entity sizing: odd edge lengths only
const (
	MinSize  = 1
	MaxSize  = 19
	SizeStep = 2
)

// Spawning defaults
const (
	DefaultEnemyCount = 300
	DefaultPlayerX    = 10
	DefaultPlayerY    = 10
)

// Glyphs
const (
	PlayerGlyph = ' '
	EnemyGlyph  = '•'
	WallGlyph   = '#'
)
