// Package maze carves braided mazes used as procedural arena terrain
package maze

import (
	"math/rand"
	"strings"
)

// Cell values
const (
	Wall    = true
	Passage = false
)

type Point struct {
	X, Y int
}

type Config struct {
	// Width and Height are in maze cells, rounded down to odd, minimum 3
	Width, Height int

	// Braiding: 0.0 keeps a perfect maze (tree), 1.0 removes every dead end it safely can
	Braiding float64

	Seed int64 // 0 picks a fixed default so output stays reproducible
}

// Grid is a row-major wall mask, Grid[y][x]
type Grid [][]bool

// Generate carves a maze with a recursive backtracker then braids dead ends into loops
func Generate(cfg Config) Grid {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	grid := make(Grid, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			grid[y][x] = Wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	carve(grid, Point{1, 1}, rng)
	if cfg.Braiding > 0 {
		braid(grid, cfg.Braiding, rng)
	}
	return grid
}

// Rows expands every maze cell into a scaleX by scaleY block and renders walls with glyph
func (g Grid) Rows(scaleX, scaleY int, glyph rune) []string {
	scaleX = max(scaleX, 1)
	scaleY = max(scaleY, 1)

	rows := make([]string, 0, len(g)*scaleY)
	var sb strings.Builder
	for _, line := range g {
		sb.Reset()
		for _, wall := range line {
			ch := ' '
			if wall {
				ch = glyph
			}
			for i := 0; i < scaleX; i++ {
				sb.WriteRune(ch)
			}
		}
		row := sb.String()
		for i := 0; i < scaleY; i++ {
			rows = append(rows, row)
		}
	}
	return rows
}

// Open counts passage cells
func (g Grid) Open() int {
	n := 0
	for _, line := range g {
		for _, wall := range line {
			if !wall {
				n++
			}
		}
	}
	return n
}

var jumps = []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
var ortho = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// carve walks odd cells depth-first, knocking out the wall between each step
// The outer ring is never touched
func carve(grid Grid, start Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	stack := []Point{start}
	grid[start.Y][start.X] = Passage

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next := make([]Point, 0, 4)
		for _, d := range jumps {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == Wall {
				next = append(next, d)
			}
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := next[rng.Intn(len(next))]
		grid[cur.Y+d.Y/2][cur.X+d.X/2] = Passage
		grid[cur.Y+d.Y][cur.X+d.X] = Passage
		stack = append(stack, Point{cur.X + d.X, cur.Y + d.Y})
	}
}

// braid opens one wall next to a dead end with the given probability
func braid(grid Grid, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == Wall {
				continue
			}

			exits := 0
			for _, d := range ortho {
				if grid[y+d.Y][x+d.X] == Passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			walls := make([]Point, 0, 4)
			for _, d := range jumps {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if grid[ny][nx] == Passage && grid[wy][wx] == Wall && !makesPlaza(grid, wx, wy) {
					walls = append(walls, Point{wx, wy})
				}
			}
			if len(walls) > 0 {
				w := walls[rng.Intn(len(walls))]
				grid[w.Y][w.X] = Passage
			}
		}
	}
}

// makesPlaza reports whether opening (x, y) would complete a 2x2 open square
func makesPlaza(grid Grid, x, y int) bool {
	open := func(tx, ty int) bool {
		if ty < 0 || ty >= len(grid) || tx < 0 || tx >= len(grid[0]) {
			return false
		}
		return grid[ty][tx] == Passage
	}
	for _, q := range [][3]Point{
		{{-1, -1}, {0, -1}, {-1, 0}},
		{{0, -1}, {1, -1}, {1, 0}},
		{{-1, 0}, {-1, 1}, {0, 1}},
		{{1, 0}, {0, 1}, {1, 1}},
	} {
		if open(x+q[0].X, y+q[0].Y) && open(x+q[1].X, y+q[1].Y) && open(x+q[2].X, y+q[2].Y) {
			return true
		}
	}
	return false
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
