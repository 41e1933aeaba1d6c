// Package level holds the static terrain the arena is played on
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/lixenwraith/arena/core"
)

// ErrEmptyMap is returned when a map source holds no rows
var ErrEmptyMap = errors.New("map has no rows")

// Map is immutable terrain; a cell is blocking when its character is not blank
// Row index is y, column index is x
type Map struct {
	cells [][]rune
	width int
}

// New builds a map from row strings, copying them
func New(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	m := &Map{cells: make([][]rune, len(rows))}
	for y, row := range rows {
		m.cells[y] = []rune(row)
	}
	m.width = len(m.cells[0])
	return m, nil
}

// Load reads one row per line; line endings are stripped, blanks are kept as floor
func Load(r io.Reader) (*Map, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan map: %w", err)
	}
	return New(rows)
}

// LoadFile opens and parses a map text file
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return m, nil
}

// Width is the length of the first row
func (m *Map) Width() int { return m.width }

// Height is the number of rows
func (m *Map) Height() int { return len(m.cells) }

// Boundary spans (0,0) to (last column, last row)
func (m *Map) Boundary() core.Rect {
	return core.Rect{X1: 0, Y1: 0, X2: m.width - 1, Y2: len(m.cells) - 1}
}

// At returns the terrain character and false when p is off the map
func (m *Map) At(p core.Vector2) (rune, bool) {
	if p.Y < 0 || p.Y >= len(m.cells) {
		return 0, false
	}
	row := m.cells[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return 0, false
	}
	return row[p.X], true
}

// Blocked reports terrain at p; anything off the map counts as blocked
func (m *Map) Blocked(p core.Vector2) bool {
	ch, ok := m.At(p)
	if !ok {
		return true
	}
	return !unicode.IsSpace(ch)
}

// Intersects samples only the four corners of r
// Walls thinner than r that slip between corners are not detected
func (m *Map) Intersects(r core.Rect) bool {
	for _, c := range r.Corners() {
		if m.Blocked(c) {
			return true
		}
	}
	return false
}

// Rows returns a copy of the terrain rows
func (m *Map) Rows() []string {
	rows := make([]string, len(m.cells))
	for y, row := range m.cells {
		rows[y] = string(row)
	}
	return rows
}

// Each calls fn for every terrain character in row-major order
func (m *Map) Each(fn func(p core.Vector2, ch rune)) {
	for y, row := range m.cells {
		for x, ch := range row {
			fn(core.Vector2{X: x, Y: y}, ch)
		}
	}
}
