package config

import (
	"fmt"
	"os"

	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/source"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 1024
	DefaultHeight    = 768
	DefaultCount     = 100
	DefaultFPS       = 60
	DefaultTitle     = "Sort visualizer"
	DefaultAlgorithm = engine.Bubble
	DefaultDraw      = engine.Bars
	DefaultPattern   = "random"
	DefaultTheme     = "mono"
)

type Config struct {
	Algorithm string       `yaml:"algorithm"`
	Draw      string       `yaml:"draw"`
	FPS       int          `yaml:"fps"`
	Seed      int64        `yaml:"seed"`
	Theme     string       `yaml:"theme"`
	Sound     bool         `yaml:"sound"`
	Source    SourceConfig `yaml:"source"`
	Window    WindowConfig `yaml:"window"`
}

// SourceConfig picks the data source: File wins over Count when set.
type SourceConfig struct {
	Count   int    `yaml:"count"`
	Pattern string `yaml:"pattern"`
	File    string `yaml:"file"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: string(DefaultAlgorithm),
		Draw:      string(DefaultDraw),
		FPS:       DefaultFPS,
		Theme:     DefaultTheme,
		Source: SourceConfig{
			Count:   DefaultCount,
			Pattern: DefaultPattern,
		},
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field the engine consumes at setup.
func (c *Config) Validate() error {
	if _, err := engine.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if _, err := engine.ParseDrawMethod(c.Draw); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", engine.ErrInvalidArgument, c.Window.Width, c.Window.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", engine.ErrInvalidArgument, c.FPS)
	}
	if c.Source.File == "" && c.Source.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", engine.ErrInvalidArgument, c.Source.Count)
	}
	return nil
}

func (c *Config) GetAlgorithm() engine.Algorithm { return engine.Algorithm(c.Algorithm) }
func (c *Config) GetDraw() engine.DrawMethod     { return engine.DrawMethod(c.Draw) }

// Sequence builds the configured sequence from the file or the generator.
func (c *Config) Sequence() (*engine.Sequence, error) {
	if c.Source.File != "" {
		return source.LoadFile(c.Source.File)
	}
	return source.Generate(c.Source.Pattern, c.Source.Count, c.Seed)
}
