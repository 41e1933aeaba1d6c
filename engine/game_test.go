package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/entity"
	"github.com/lixenwraith/arena/level"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/status"
	"github.com/lixenwraith/arena/terminal"
)

func newGame(t *testing.T, cfg Config) *Game {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func mustStep(t *testing.T, g *Game) {
	t.Helper()
	if err := g.Step(); err != nil {
		t.Fatalf("Step %d: %v", g.Tick(), err)
	}
}

func TestNewRejectsMissingCollaborators(t *testing.T) {
	sp := entity.NewSpawner(nil)
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no display", Config{Player: sp.NewPlayer(core.Vector2{})}},
		{"no player", Config{Display: newFakeDisplay(10, 10)}},
		{"unplaced player", Config{Display: newFakeDisplay(10, 10), Player: &entity.Entity{ID: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			var ie *InvariantError
			if !errors.As(err, &ie) {
				t.Errorf("Expected InvariantError, got %v", err)
			}
			if ExitCode(err) != ExitFailure {
				t.Errorf("Expected failure exit code, got %d", ExitCode(err))
			}
		})
	}
}

// Player at (10,10) moves right once then up once
func TestMoveScenario(t *testing.T) {
	d := newFakeDisplay(40, 20)
	sp := entity.NewSpawner(nil)
	g := newGame(t, Config{Display: d, Player: sp.NewPlayer(core.Vector2{X: 10, Y: 10})})

	d.press('l')
	mustStep(t, g)
	if p, _ := g.Player().Pos(); p != (core.Vector2{X: 12, Y: 10}) {
		t.Errorf("Expected (12,10) after right, got %v", p)
	}

	d.press('k')
	mustStep(t, g)
	if p, _ := g.Player().Pos(); p != (core.Vector2{X: 12, Y: 9}) {
		t.Errorf("Expected (12,9) after up, got %v", p)
	}
	if d.shows != 2 {
		t.Errorf("Expected 2 frames presented, got %d", d.shows)
	}
}

// Enemy overlaps for ticks 1-3, separates at tick 4, is swept at tick 5
func TestEnemyLifecycle(t *testing.T) {
	d := newFakeDisplay(40, 20)
	sp := entity.NewSpawner(nil)
	player := sp.NewPlayer(core.Vector2{X: 10, Y: 10})
	enemy := sp.NewEnemy(core.Vector2{X: 10, Y: 10})

	var entered, exited []uint64
	var g *Game
	g = newGame(t, Config{
		Display: d,
		Player:  player,
		Enemies: []*entity.Entity{enemy},
		Observers: []Observer{func(c physics.Contact) {
			switch c.State {
			case physics.Entered:
				entered = append(entered, g.Tick())
			case physics.Exited:
				exited = append(exited, g.Tick())
			}
		}},
	})

	for tick := 1; tick <= 3; tick++ {
		mustStep(t, g)
		if enemy.Destroyed() {
			t.Fatalf("Enemy destroyed early at tick %d", tick)
		}
	}
	if player.Size != 3 {
		t.Errorf("Expected player grown to 3 on enter, got %d", player.Size)
	}

	d.press('l')
	mustStep(t, g)
	if !enemy.Destroyed() {
		t.Error("Expected enemy destroyed at tick 4")
	}
	if len(g.Enemies()) != 1 {
		t.Errorf("Expected enemy still active at tick 4, got %d", len(g.Enemies()))
	}

	mustStep(t, g)
	if len(g.Enemies()) != 0 {
		t.Errorf("Expected enemy swept at tick 5, got %d", len(g.Enemies()))
	}
	if g.Detector().Pairs().Len() != 0 {
		t.Errorf("Expected pair rows dropped, got %d", g.Detector().Pairs().Len())
	}

	if len(entered) != 1 || entered[0] != 1 {
		t.Errorf("Expected one enter at tick 1, got %v", entered)
	}
	if len(exited) != 1 || exited[0] != 4 {
		t.Errorf("Expected one exit at tick 4, got %v", exited)
	}
	if got := g.Status().Ints.Get(status.Consumed).Load(); got != 1 {
		t.Errorf("Expected 1 consumed, got %d", got)
	}
	if got := g.Status().Ints.Get(status.Enemies).Load(); got != 0 {
		t.Errorf("Expected 0 enemies published, got %d", got)
	}
}

func openMap(t *testing.T) *level.Map {
	t.Helper()
	m, err := level.New([]string{
		"          ",
		"          ",
		"          ",
		"          ",
		"          ",
	})
	if err != nil {
		t.Fatalf("level.New: %v", err)
	}
	return m
}

// Stepping off the left edge probes x < 0, which counts as wall
func TestBoundaryRollback(t *testing.T) {
	for _, check := range []bool{true, false} {
		d := newFakeDisplay(20, 10)
		sp := entity.NewSpawner(nil)
		g := newGame(t, Config{
			Display:        d,
			Map:            openMap(t),
			Player:         sp.NewPlayer(core.Vector2{X: 1, Y: 2}),
			CheckIntersect: check,
		})

		d.press('h')
		mustStep(t, g)

		p, _ := g.Player().Pos()
		rollbacks := g.Status().Ints.Get(status.Rollbacks).Load()
		if check {
			if p != (core.Vector2{X: 1, Y: 2}) {
				t.Errorf("Expected rollback to (1,2), got %v", p)
			}
			if rollbacks != 1 {
				t.Errorf("Expected 1 rollback, got %d", rollbacks)
			}
		} else {
			if p != (core.Vector2{X: -1, Y: 2}) {
				t.Errorf("Expected unchecked move to (-1,2), got %v", p)
			}
			if rollbacks != 0 {
				t.Errorf("Expected no rollback, got %d", rollbacks)
			}
		}
	}
}

func TestQuitCompletesFrame(t *testing.T) {
	d := newFakeDisplay(20, 10)
	sp := entity.NewSpawner(nil)
	g := newGame(t, Config{Display: d, Player: sp.NewPlayer(core.Vector2{X: 5, Y: 5})})

	d.press('q')
	if err := g.Step(); !errors.Is(err, ErrShutdown) {
		t.Fatalf("Expected ErrShutdown, got %v", err)
	}
	if d.shows != 1 {
		t.Errorf("Expected the quitting tick to render, got %d frames", d.shows)
	}
	if g.State() != StateStopped {
		t.Errorf("Expected stopped, got %v", g.State())
	}
	if err := g.Step(); !errors.Is(err, ErrShutdown) || d.shows != 1 {
		t.Errorf("Expected no further ticks, got %v with %d frames", err, d.shows)
	}
}

func TestIntentsResizeAndToggle(t *testing.T) {
	d := newFakeDisplay(20, 10)
	sp := entity.NewSpawner(nil)
	g := newGame(t, Config{Display: d, Player: sp.NewPlayer(core.Vector2{X: 5, Y: 5})})

	d.press('o', 'o', 'p', 'd')
	mustStep(t, g)
	if g.Player().Size != 3 {
		t.Errorf("Expected size 3, got %d", g.Player().Size)
	}
	if !g.Debug() || !g.Status().Bools.Get(status.Debug).Load() {
		t.Error("Expected debug overlay on")
	}
	if got := g.Status().Ints.Get(status.Size).Load(); got != 3 {
		t.Errorf("Expected published size 3, got %d", got)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	d := newFakeDisplay(20, 10)
	sp := entity.NewSpawner(nil)
	clock := NewMockClock(time.Unix(0, 0))
	g := newGame(t, Config{Display: d, Player: sp.NewPlayer(core.Vector2{X: 5, Y: 5}), Clock: clock})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock.OnSleep(func(n int) {
		if n == 3 {
			cancel()
		}
	})

	err := g.Run(ctx)
	if !errors.Is(err, ErrShutdown) {
		t.Fatalf("Expected ErrShutdown, got %v", err)
	}
	if ExitCode(err) != ExitQuit {
		t.Errorf("Expected quit exit code, got %d", ExitCode(err))
	}
	if g.Tick() != 4 {
		t.Errorf("Expected 4 ticks, got %d", g.Tick())
	}
	sleeps := clock.Sleeps()
	if len(sleeps) != 3 {
		t.Fatalf("Expected 3 sleeps, got %d", len(sleeps))
	}
	for _, s := range sleeps {
		if s != 25*time.Millisecond {
			t.Errorf("Expected full 25ms sleep, got %v", s)
		}
	}
	if !clock.Now().Equal(time.Unix(0, 0).Add(75 * time.Millisecond)) {
		t.Errorf("Expected mock time advanced 75ms, got %v", clock.Now())
	}
}

func TestRunRecoversPanic(t *testing.T) {
	d := newFakeDisplay(20, 10)
	d.panicOnShow = true
	sp := entity.NewSpawner(nil)
	g := newGame(t, Config{Display: d, Player: sp.NewPlayer(core.Vector2{X: 5, Y: 5}), Clock: NewMockClock(time.Now())})

	err := g.Run(context.Background())
	var pe *core.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("Expected PanicError, got %v", err)
	}
	if pe.Value != "display lost" || len(pe.Stack) == 0 {
		t.Errorf("Expected panic value and stack, got %v", pe.Value)
	}
	if ExitCode(err) != ExitFailure {
		t.Errorf("Expected failure exit code, got %d", ExitCode(err))
	}
	if g.State() != StateStopped {
		t.Error("Expected stopped after panic")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{ErrShutdown, ExitQuit},
		{errors.Join(errors.New("wrapped"), ErrShutdown), ExitQuit},
		{&InvariantError{What: "x"}, ExitFailure},
		{errors.New("boom"), ExitFailure},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v): expected %d, got %d", tt.err, tt.want, got)
		}
	}
}

func TestStepPresentsToSimulationScreen(t *testing.T) {
	scr, sim, err := terminal.NewSimulation(20, 10, nil)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	defer scr.Close()

	sp := entity.NewSpawner(nil)
	g := newGame(t, Config{Display: scr, Player: sp.NewPlayer(core.Vector2{X: 10, Y: 10})})
	mustStep(t, g)

	// Offset (10,10)-(10,5) puts the player at screen (10,5)
	_, _, style, _ := sim.GetContent(10, 5)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorRed {
		t.Errorf("Expected red player cell, got bg %v", bg)
	}
}
