package level

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Entry describes one arena in the map catalogue
type Entry struct {
	Name     string  `yaml:"name"`
	File     string  `yaml:"file"`     // relative to the manifest directory
	SpawnX   *int    `yaml:"spawn_x"`  // optional player spawn override
	SpawnY   *int    `yaml:"spawn_y"`  // optional player spawn override
	Enemies  int     `yaml:"enemies"`  // 0 keeps the configured count
	Generate bool    `yaml:"generate"` // ignore File and build a maze arena
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Braiding float64 `yaml:"braiding"`
	Seed     int64   `yaml:"seed"`
}

// Manifest is the parsed map catalogue
type Manifest struct {
	Maps []Entry `yaml:"maps"`

	fsys fs.FS
	dir  string
}

// LoadManifest parses a YAML map catalogue from disk
func LoadManifest(name string) (*Manifest, error) {
	return LoadManifestFS(os.DirFS(filepath.Dir(name)), filepath.Base(name))
}

// LoadManifestFS parses a catalogue inside fsys; map files resolve relative to it
func LoadManifestFS(fsys fs.FS, name string) (*Manifest, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read map manifest %s: %w", name, err)
	}
	var mf Manifest
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse map manifest: %w", err)
	}
	if len(mf.Maps) == 0 {
		return nil, fmt.Errorf("map manifest %s: no maps", name)
	}
	mf.fsys = fsys
	mf.dir = path.Dir(name)
	return &mf, nil
}

// Find returns the named entry, or the first one when name is empty
func (mf *Manifest) Find(name string) (Entry, bool) {
	if name == "" {
		return mf.Maps[0], true
	}
	for _, e := range mf.Maps {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Open loads or generates the terrain for e
func (mf *Manifest) Open(e Entry) (*Map, error) {
	if e.Generate {
		return Generate(GenerateConfig{
			Width:    e.Width,
			Height:   e.Height,
			Braiding: e.Braiding,
			Seed:     e.Seed,
		})
	}
	if e.File == "" {
		return nil, fmt.Errorf("map %q: no file", e.Name)
	}
	if filepath.IsAbs(e.File) {
		return LoadFile(e.File)
	}
	name := path.Join(mf.dir, filepath.ToSlash(e.File))
	f, err := mf.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", name, err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", name, err)
	}
	return m, nil
}
