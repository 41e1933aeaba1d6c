// Package engine drives the fixed-tick arena simulation
package engine

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/arena/constants"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/entity"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/level"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/render"
	"github.com/lixenwraith/arena/status"
	"github.com/lixenwraith/arena/terminal"
)

// State is the loop lifecycle
type State uint8

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Observer is notified of every collision edge after detection
type Observer func(c physics.Contact)

// Config wires a Game; Display and Player are required
type Config struct {
	Display terminal.Display
	Map     *level.Map
	Player  *entity.Entity
	Enemies []*entity.Entity
	Others  []*entity.Entity

	Keys           *input.KeyTable
	CheckIntersect bool
	Debug          bool

	// TickInterval defaults to constants.TickInterval
	TickInterval time.Duration
	Clock        Clock

	Log       *zap.Logger
	Status    *status.Registry
	Observers []Observer
}

// Game owns all simulation state; it must only be driven from one goroutine
type Game struct {
	display terminal.Display
	terrain *level.Map
	player  *entity.Entity
	enemies []*entity.Entity
	others  []*entity.Entity

	queue      *input.Queue
	dispatch   *input.Dispatcher
	detector   *physics.Detector
	compositor *render.Compositor

	checkIntersect bool
	debug          bool
	quit           bool
	state          State
	tick           uint64

	interval  time.Duration
	clock     Clock
	log       *zap.Logger
	status    *status.Registry
	observers []Observer
}

// New validates cfg and builds a running game
func New(cfg Config) (*Game, error) {
	if cfg.Display == nil {
		return nil, invariant("no display", nil)
	}
	if cfg.Player == nil {
		return nil, invariant("no player", nil)
	}
	if !cfg.Player.Placed() {
		return nil, invariant("player has no position", nil)
	}

	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = RealClock{}
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = constants.TickInterval
	}
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	g := &Game{
		display:        cfg.Display,
		terrain:        cfg.Map,
		player:         cfg.Player,
		enemies:        cfg.Enemies,
		others:         cfg.Others,
		queue:          input.NewQueue(),
		dispatch:       input.NewDispatcher(cfg.Keys),
		detector:       physics.NewDetector(log.Named("physics")),
		compositor:     render.NewCompositor(log.Named("render")),
		checkIntersect: cfg.CheckIntersect,
		debug:          cfg.Debug,
		state:          StateRunning,
		interval:       interval,
		clock:          clock,
		log:            log,
		status:         reg,
		observers:      cfg.Observers,
	}
	g.bindIntents()
	g.publish()
	return g, nil
}

func (g *Game) bindIntents() {
	moves := map[input.Intent]core.Direction{
		input.IntentMoveLeft:  core.DirLeft,
		input.IntentMoveRight: core.DirRight,
		input.IntentMoveUp:    core.DirUp,
		input.IntentMoveDown:  core.DirDown,
	}
	for intent, dir := range moves {
		g.dispatch.Handle(intent, func() { g.player.Move(dir) })
	}
	g.dispatch.Handle(input.IntentGrow, g.player.Grow)
	g.dispatch.Handle(input.IntentShrink, g.player.Shrink)
	g.dispatch.Handle(input.IntentToggleDebug, func() { g.debug = !g.debug })
	g.dispatch.Handle(input.IntentQuit, g.Shutdown)
}

// Shutdown sets the quit flag; the current tick still renders
func (g *Game) Shutdown() {
	g.quit = true
}

func (g *Game) State() State                { return g.state }
func (g *Game) Tick() uint64                { return g.tick }
func (g *Game) Player() *entity.Entity      { return g.player }
func (g *Game) Enemies() []*entity.Entity   { return g.enemies }
func (g *Game) Detector() *physics.Detector { return g.detector }
func (g *Game) Debug() bool                 { return g.debug }
func (g *Game) Status() *status.Registry    { return g.status }

// Step runs one tick: sweep, input, terrain guard, render, collisions
// Returns ErrShutdown once the quit flag is set, after the frame is presented
func (g *Game) Step() error {
	if g.state == StateStopped {
		return ErrShutdown
	}
	g.tick++

	g.sweep()

	g.queue.Poll(g.display, g.dispatch.Table())
	for _, intent := range g.queue.Drain() {
		g.dispatch.Invoke(intent)
	}

	g.settle()

	if err := g.render(); err != nil {
		return err
	}

	for _, c := range g.detector.Run(g.player, g.enemies, g.others) {
		if c.State == physics.Exited && c.Other.Kind == entity.KindEnemy {
			g.status.Ints.Get(status.Consumed).Add(1)
		}
		for _, obs := range g.observers {
			obs(c)
		}
	}

	g.publish()

	if g.quit {
		g.state = StateStopped
		return ErrShutdown
	}
	return nil
}

// sweep drops enemies destroyed during the previous tick
func (g *Game) sweep() {
	live := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Destroyed() {
			g.detector.Forget(e.ID)
			g.log.Debug("enemy swept", zap.Stringer("enemy", e))
			continue
		}
		live = append(live, e)
	}
	clear(g.enemies[len(live):])
	g.enemies = live
}

func (g *Game) settle() {
	if g.terrain == nil {
		return
	}
	rollbacks := g.status.Ints.Get(status.Rollbacks)
	for _, group := range [][]*entity.Entity{g.enemies, g.others, {g.player}} {
		for _, e := range group {
			if physics.Settle(e, g.terrain, g.checkIntersect) {
				rollbacks.Add(1)
			}
		}
	}
}

func (g *Game) render() error {
	w, h := g.display.Size()
	cells, err := g.compositor.Compose(&render.Scene{
		Map:        g.terrain,
		Enemies:    g.enemies,
		Player:     g.player,
		Others:     g.others,
		ViewWidth:  w,
		ViewHeight: h,
		Debug:      g.debug,
		Status:     g.status,
	})
	if err != nil {
		if errors.Is(err, render.ErrNoPlayer) {
			return invariant("render", err)
		}
		return err
	}
	render.Present(g.display, cells)
	return nil
}

func (g *Game) publish() {
	g.status.Ints.Get(status.Ticks).Store(int64(g.tick))
	g.status.Ints.Get(status.Enemies).Store(int64(len(g.enemies)))
	g.status.Ints.Get(status.Size).Store(int64(g.player.Size))
	g.status.Bools.Get(status.Debug).Store(g.debug)
}

// Run steps until shutdown or failure, sleeping one full interval between ticks
// Context cancellation is honored at the next tick boundary as a shutdown
// A panic inside a tick is recovered once and returned as a *core.PanicError
func (g *Game) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.RecoverError(r)
			var pe *core.PanicError
			if errors.As(err, &pe) {
				g.log.Error("tick panicked",
					zap.Uint64("tick", g.tick),
					zap.Any("value", pe.Value),
					zap.ByteString("stack", pe.Stack))
			}
		}
		g.state = StateStopped
	}()

	g.log.Info("loop started",
		zap.Duration("interval", g.interval),
		zap.Int("enemies", len(g.enemies)))

	for {
		if ctx.Err() != nil {
			g.Shutdown()
		}

		if err := g.Step(); err != nil {
			if errors.Is(err, ErrShutdown) {
				g.log.Info("loop stopped", zap.Uint64("ticks", g.tick))
			} else {
				g.log.Error("tick failed", zap.Uint64("tick", g.tick), zap.Error(err))
			}
			return err
		}

		g.clock.Sleep(g.interval)
	}
}
