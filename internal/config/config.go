package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Loop    LoopConfig    `toml:"loop"`
	Scene   SceneConfig   `toml:"scene"`
	Camera  CameraConfig  `toml:"camera"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

// WindowConfig sizes the logical view. The terminal is scaled onto it.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type LoopConfig struct {
	TickRate         time.Duration `toml:"tick_rate"`
	MaxEventsPerTick int           `toml:"max_events_per_tick"`
	EventQueueSize   int           `toml:"event_queue_size"`
}

type SceneConfig struct {
	InitialCapacity int           `toml:"initial_capacity"`
	SpawnInterval   time.Duration `toml:"spawn_interval"`
	NodeSize        int           `toml:"node_size"`
	SpawnList       string        `toml:"spawn_list"` // yaml, optional
	ScriptsDir      string        `toml:"scripts_dir"`
}

type CameraConfig struct {
	ZoomRatio float64 `toml:"zoom_ratio"`
	MinWidth  int     `toml:"min_width"`
	MinHeight int     `toml:"min_height"`
}

type AudioConfig struct {
	Enabled    bool          `toml:"enabled"`
	SampleRate int           `toml:"sample_rate"`
	ToneHz     float64       `toml:"tone_hz"`
	ToneLength time.Duration `toml:"tone_length"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // file path; the terminal owns stdout
}

// Load reads path over the defaults. A missing file is an error; callers
// that can run without one use Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaults(), nil
	}
	return cfg, err
}

func Default() *Config { return defaults() }

func (c *Config) validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("loop.tick_rate %s must be positive", c.Loop.TickRate)
	case c.Scene.NodeSize <= 0:
		return fmt.Errorf("scene.node_size %d must be positive", c.Scene.NodeSize)
	case c.Camera.ZoomRatio <= 0 || c.Camera.ZoomRatio >= 1:
		return fmt.Errorf("camera.zoom_ratio %g must be in (0, 1)", c.Camera.ZoomRatio)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Quadtree Demo",
			Width:  1280,
			Height: 720,
		},
		Loop: LoopConfig{
			TickRate:         25 * time.Millisecond,
			MaxEventsPerTick: 64,
			EventQueueSize:   256,
		},
		Scene: SceneConfig{
			InitialCapacity: 64,
			SpawnInterval:   50 * time.Millisecond,
			NodeSize:        10,
			SpawnList:       "data/yaml/spawn_list.yaml",
			ScriptsDir:      "scripts",
		},
		Camera: CameraConfig{
			ZoomRatio: 0.05,
			MinWidth:  160,
			MinHeight: 80,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			ToneHz:     660,
			ToneLength: 40 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "quadscene.log",
		},
	}
}
