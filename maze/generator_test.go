package maze

import "testing"

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Width: 21, Height: 11, Braiding: 0.5, Seed: 42}
	a := Generate(cfg).Rows(1, 1, '#')
	b := Generate(cfg).Rows(1, 1, '#')

	if len(a) != len(b) {
		t.Fatalf("Expected equal row counts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Row %d differs for same seed:\n%s\n%s", i, a[i], b[i])
		}
	}
}

func TestGenerateSolidBorder(t *testing.T) {
	g := Generate(Config{Width: 30, Height: 12, Braiding: 1, Seed: 7})

	// Even dimensions round down to odd
	if len(g) != 11 || len(g[0]) != 29 {
		t.Fatalf("Expected 29x11 grid, got %dx%d", len(g[0]), len(g))
	}
	for x := range g[0] {
		if !g[0][x] || !g[len(g)-1][x] {
			t.Errorf("Expected wall on top/bottom border at x=%d", x)
		}
	}
	for y := range g {
		if !g[y][0] || !g[y][len(g[0])-1] {
			t.Errorf("Expected wall on left/right border at y=%d", y)
		}
	}
	if g.Open() == 0 {
		t.Error("Expected carved passages")
	}
}

func TestRowsScaling(t *testing.T) {
	g := Grid{
		{Wall, Passage},
		{Passage, Wall},
	}
	rows := g.Rows(3, 2, '#')

	want := []string{"###   ", "###   ", "   ###", "   ###"}
	if len(rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("Row %d: expected %q, got %q", i, want[i], rows[i])
		}
	}
}

func TestGenerateMinimumSize(t *testing.T) {
	g := Generate(Config{Width: 0, Height: 1})
	if len(g) != 3 || len(g[0]) != 3 {
		t.Errorf("Expected 3x3 minimum, got %dx%d", len(g[0]), len(g))
	}
	if g[1][1] != Passage {
		t.Error("Expected start cell carved")
	}
}
