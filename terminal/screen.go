package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/arena/constants"
	"github.com/lixenwraith/arena/core"
)

// Screen is a Display backed by a tcell screen
// A pump goroutine drains tcell events into a buffered key channel
type Screen struct {
	screen tcell.Screen
	log    *zap.Logger

	keys chan KeyEvent
	quit chan struct{}
	done chan struct{}

	closeOnce sync.Once
}

// NewScreen initializes the controlling terminal
func NewScreen(log *zap.Logger) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return attach(s, log), nil
}

// NewSimulation returns a Screen over an in-memory tcell screen of the given size
// The simulation screen is returned so callers can inject keys and inspect cells
func NewSimulation(width, height int, log *zap.Logger) (*Screen, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, nil, fmt.Errorf("init simulation screen: %w", err)
	}
	sim.SetSize(width, height)
	return attach(sim, log), sim, nil
}

func attach(s tcell.Screen, log *zap.Logger) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen: s,
		log:    log,
		keys:   make(chan KeyEvent, constants.EventBufferSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	core.Go(scr.pump, constants.ExitFailure)
	return scr
}

func (s *Screen) pump() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			key := KeyEvent{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}
			select {
			case s.keys <- key:
			case <-s.quit:
				return
			}
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventError:
			s.log.Debug("terminal event error", zap.Error(ev))
		}
	}
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) SetCell(x, y int, glyph rune, fg, bg tcell.Color) {
	s.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) PollKey() (KeyEvent, bool) {
	select {
	case k := <-s.keys:
		return k, true
	default:
		return KeyEvent{}, false
	}
}

// Close restores the terminal and stops the pump; safe to call more than once
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
		<-s.done
	})
}
