package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/arena/asset"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/entity"
	"github.com/lixenwraith/arena/level"
)

// world is the initial arena state handed to the engine
type world struct {
	terrain *level.Map
	player  *entity.Entity
	enemies []*entity.Entity
	seed    int64
}

// buildWorld picks the terrain, in order: map file, generated maze, catalogue entry
func buildWorld(cfg *config.Config) (*world, error) {
	spawn := core.Vector2{X: cfg.Game.PlayerX, Y: cfg.Game.PlayerY}
	count := cfg.Game.EnemyCount

	var terrain *level.Map
	switch {
	case cfg.Map.File != "":
		m, err := level.LoadFile(cfg.Map.File)
		if err != nil {
			return nil, err
		}
		terrain = m

	case cfg.Map.Generate:
		m, err := level.Generate(level.GenerateConfig{
			Width:  cfg.Map.Width,
			Height: cfg.Map.Height,
			Seed:   cfg.Game.Seed,
		})
		if err != nil {
			return nil, err
		}
		terrain = m
		spawn.X, spawn.Y = level.GeneratedSpawn()

	default:
		mf, err := openCatalogue(cfg.Map.Manifest)
		if err != nil {
			return nil, err
		}
		e, ok := mf.Find(cfg.Map.Name)
		if !ok {
			return nil, fmt.Errorf("map %q not in catalogue", cfg.Map.Name)
		}
		if terrain, err = mf.Open(e); err != nil {
			return nil, err
		}
		if e.Generate {
			spawn.X, spawn.Y = level.GeneratedSpawn()
		}
		if e.SpawnX != nil && e.SpawnY != nil {
			spawn = core.Vector2{X: *e.SpawnX, Y: *e.SpawnY}
		}
		if e.Enemies > 0 {
			count = e.Enemies
		}
	}

	if terrain.Blocked(spawn) {
		return nil, fmt.Errorf("player spawn %s is inside terrain", spawn)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sp := entity.NewSpawner(rand.New(rand.NewSource(seed)))
	player := sp.NewPlayer(spawn)

	return &world{
		terrain: terrain,
		player:  player,
		enemies: sp.SpawnEnemies(count, terrain.Boundary(), terrain, spawn),
		seed:    seed,
	}, nil
}

func openCatalogue(path string) (*level.Manifest, error) {
	if path == "" {
		return level.LoadManifestFS(asset.Maps, asset.ManifestName)
	}
	return level.LoadManifest(path)
}
