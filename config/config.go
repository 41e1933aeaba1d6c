// Package config loads arena.toml
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/arena/constants"
)

type Config struct {
	Game    GameConfig        `toml:"game"`
	Map     MapConfig         `toml:"map"`
	Keys    map[string]string `toml:"keys"` // key name → action name
	Logging LoggingConfig     `toml:"logging"`
	Audio   AudioConfig       `toml:"audio"`
	Display DisplayConfig     `toml:"display"`
}

type GameConfig struct {
	TickRate       int   `toml:"tick_rate"` // ticks per second
	EnemyCount     int   `toml:"enemy_count"`
	Seed           int64 `toml:"seed"` // 0 seeds from the clock
	PlayerX        int   `toml:"player_x"`
	PlayerY        int   `toml:"player_y"`
	CheckIntersect bool  `toml:"check_intersect"`
}

type MapConfig struct {
	File     string `toml:"file"`
	Manifest string `toml:"manifest"`
	Name     string `toml:"name"`
	Generate bool   `toml:"generate"`
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`  // debug, info, warn, error
	Format  string `toml:"format"` // console or json
	Dir     string `toml:"dir"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type DisplayConfig struct {
	Debug bool `toml:"debug"`
}

// Load reads path over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOrDefault is Load, except a missing file yields the defaults
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Parse decodes TOML data over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			TickRate:       constants.TickRate,
			EnemyCount:     constants.DefaultEnemyCount,
			PlayerX:        constants.DefaultPlayerX,
			PlayerY:        constants.DefaultPlayerY,
			CheckIntersect: true,
		},
		Map: MapConfig{
			Width:  160,
			Height: 48,
		},
		Keys: map[string]string{},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Dir:    constants.LogDir,
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// Validate rejects values the loop cannot run with
func (c *Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("game.tick_rate must be positive, got %d", c.Game.TickRate)
	}
	if c.Game.EnemyCount < 0 {
		return fmt.Errorf("game.enemy_count must not be negative, got %d", c.Game.EnemyCount)
	}
	if c.Map.Generate && (c.Map.Width <= 0 || c.Map.Height <= 0) {
		return fmt.Errorf("map.width and map.height must be positive to generate, got %dx%d", c.Map.Width, c.Map.Height)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// TickInterval is the sleep between ticks at the configured rate
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Game.TickRate)
}
