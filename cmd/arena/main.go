package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/arena/audio"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/physics"
	"github.com/lixenwraith/arena/status"
	"github.com/lixenwraith/arena/terminal"
)

var (
	configFlag  = flag.String("config", "arena.toml", "Path to the TOML configuration file")
	mapFlag     = flag.String("map", "", "Map file path or catalogue entry name")
	debugFlag   = flag.Bool("debug", false, "Start with the debug overlay and debug logging")
	seedFlag    = flag.Int64("seed", 0, "Random seed for enemy placement, 0 seeds from the clock")
	enemiesFlag = flag.Int("enemies", -1, "Enemy count, overrides the configuration")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, engine.ExitFailure)
		}
	}()

	cfg, err := config.LoadOrDefault(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return engine.ExitFailure
	}
	applyFlags(cfg)

	log, syncLog, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return engine.ExitFailure
	}
	defer syncLog()

	w, err := buildWorld(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build arena: %v\n", err)
		return engine.ExitFailure
	}
	log.Info("arena built",
		zap.Int("width", w.terrain.Width()),
		zap.Int("height", w.terrain.Height()),
		zap.Int("enemies", len(w.enemies)),
		zap.Int64("seed", w.seed))

	keys := input.DefaultKeyTable()
	if err := keys.Apply(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid [keys] section: %v\n", err)
		return engine.ExitFailure
	}

	scr, err := terminal.NewScreen(log.Named("terminal"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return engine.ExitFailure
	}
	core.SetCrashTeardown(scr.Close)
	// Normal exit terminal cleanup
	defer core.RunTeardown()

	sounds := audio.NewSoundManager()
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		}
	}
	defer sounds.Cleanup()

	reg := status.NewRegistry()
	g, err := engine.New(engine.Config{
		Display:        scr,
		Map:            w.terrain,
		Player:         w.player,
		Enemies:        w.enemies,
		Keys:           keys,
		CheckIntersect: cfg.Game.CheckIntersect,
		Debug:          cfg.Display.Debug,
		TickInterval:   cfg.TickInterval(),
		Log:            log.Named("engine"),
		Status:         reg,
		Observers: []engine.Observer{
			func(c physics.Contact) { sounds.Cue(c) },
		},
	})
	if err != nil {
		core.RunTeardown()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return engine.ExitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = g.Run(ctx)

	// Terminal must be restored before anything is printed
	core.RunTeardown()
	log.Info("run finished", zap.String("metrics", reg.Line()))

	code := engine.ExitCode(err)
	if code == engine.ExitFailure {
		var pe *core.PanicError
		if errors.As(err, &pe) {
			fmt.Fprintf(os.Stderr, "ARENA CRASHED: %v\nStack Trace:\n%s\n", pe.Value, pe.Stack)
		} else {
			fmt.Fprintf(os.Stderr, "Arena failed: %v\n", err)
		}
	}
	return code
}

// applyFlags layers command-line overrides onto the loaded configuration
func applyFlags(cfg *config.Config) {
	if *mapFlag != "" {
		if _, err := os.Stat(*mapFlag); err == nil {
			cfg.Map.File = *mapFlag
		} else {
			cfg.Map.Name = *mapFlag
		}
	}
	if *debugFlag {
		cfg.Display.Debug = true
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *enemiesFlag >= 0 {
		cfg.Game.EnemyCount = *enemiesFlag
	}
}
