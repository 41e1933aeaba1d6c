package level

import (
	"fmt"

	"github.com/lixenwraith/arena/constants"
	"github.com/lixenwraith/arena/maze"
)

// GenerateConfig sizes a procedural arena in terminal cells
type GenerateConfig struct {
	Width, Height int
	Braiding      float64
	Seed          int64
}

// Maze cell footprint; corridors end up 8x4 cells, roomy enough for mid-size entities
const (
	cellScaleX = 8
	cellScaleY = 4
)

// Generate builds a braided maze arena scaled to roughly Width x Height cells
func Generate(cfg GenerateConfig) (*Map, error) {
	braid := cfg.Braiding
	if braid <= 0 {
		braid = 0.8
	}
	grid := maze.Generate(maze.Config{
		Width:    max(cfg.Width/cellScaleX, 3),
		Height:   max(cfg.Height/cellScaleY, 3),
		Braiding: braid,
		Seed:     cfg.Seed,
	})

	rows := grid.Rows(cellScaleX, cellScaleY, constants.WallGlyph)
	m, err := New(rows)
	if err != nil {
		return nil, fmt.Errorf("generated map: %w", err)
	}
	return m, nil
}

// GeneratedSpawn is the center of the first carved maze cell, always open
func GeneratedSpawn() (x, y int) {
	return cellScaleX + cellScaleX/2, cellScaleY + cellScaleY/2
}
