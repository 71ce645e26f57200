package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/voxel-terrain/internal/stream"
	"github.com/OCharnyshevich/voxel-terrain/pkg/atlas"
)

// Config holds the terrain runner configuration.
type Config struct {
	Seed       int64           `json:"seed" yaml:"seed"`
	Streaming  stream.Tunables `json:"streaming" yaml:"streaming"`
	Atlas      Atlas           `json:"atlas" yaml:"atlas"`
	Simulation Simulation      `json:"simulation" yaml:"simulation"`
	LogLevel   string          `json:"log_level" yaml:"log_level"` // debug, info, warn or error
}

// Atlas locates the texture atlas image.
type Atlas struct {
	// Source is a go-getter source: a local path, URL or archive subpath.
	// Empty means untextured rendering.
	Source   string `json:"source" yaml:"source"`
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`
	Grid     int    `json:"grid" yaml:"grid"`
}

// Simulation drives the headless observer walk.
type Simulation struct {
	Ticks   int     `json:"ticks" yaml:"ticks"`
	Step    float32 `json:"step" yaml:"step"`       // blocks per tick
	Heading float32 `json:"heading" yaml:"heading"` // degrees, 0 = +X
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Streaming: stream.DefaultTunables(),
		Atlas: Atlas{
			CacheDir: "./assets",
			Grid:     atlas.DefaultGrid,
		},
		Simulation: Simulation{
			Ticks: 200,
			Step:  4,
		},
		LogLevel: "info",
	}
}

// Load reads a config file on top of the defaults. Files ending in .yaml or
// .yml are decoded as YAML, anything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path atomically, in the format chosen by its extension.
func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["load-radius"] {
		cfg.Streaming.LoadRadius = fromFile.Streaming.LoadRadius
	}
	if !explicitFlags["unload-radius"] {
		cfg.Streaming.UnloadRadius = fromFile.Streaming.UnloadRadius
	}
	if !explicitFlags["max-chunks"] {
		cfg.Streaming.MaxChunksPerTick = fromFile.Streaming.MaxChunksPerTick
	}
	if !explicitFlags["view-distance"] {
		cfg.Streaming.ViewDistance = fromFile.Streaming.ViewDistance
	}
	if !explicitFlags["atlas"] {
		cfg.Atlas.Source = fromFile.Atlas.Source
	}
	if !explicitFlags["cache-dir"] {
		cfg.Atlas.CacheDir = fromFile.Atlas.CacheDir
	}
	if !explicitFlags["grid"] {
		cfg.Atlas.Grid = fromFile.Atlas.Grid
	}
	if !explicitFlags["ticks"] {
		cfg.Simulation.Ticks = fromFile.Simulation.Ticks
	}
	if !explicitFlags["step"] {
		cfg.Simulation.Step = fromFile.Simulation.Step
	}
	if !explicitFlags["heading"] {
		cfg.Simulation.Heading = fromFile.Simulation.Heading
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := c.Streaming.Validate(); err != nil {
		return fmt.Errorf("streaming: %w", err)
	}
	if c.Atlas.Grid <= 0 {
		return fmt.Errorf("atlas grid %d must be positive", c.Atlas.Grid)
	}
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("simulation ticks %d is negative", c.Simulation.Ticks)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
