// Package config loads the demo configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinyrange/raywin/ray"
)

type Config struct {
	Window WindowConfig `yaml:"window"`

	// Library is the raylib shared library path. Empty uses $RAYWIN_LIBRARY or
	// the platform default.
	Library string `yaml:"library"`

	Colors ColorConfig `yaml:"colors"`

	FontSize    int `yaml:"font_size"`
	LineSpacing int `yaml:"line_spacing"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// ColorConfig holds color names or hex codes as accepted by ray.ParseColor.
type ColorConfig struct {
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
}

// Palette is a ColorConfig resolved to colors.
type Palette struct {
	Background ray.Color
	Accent     ray.Color
	Text       ray.Color
}

type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "raywin",
			TargetFPS: 60,
		},
		Colors: ColorConfig{
			Background: "raywhite",
			Accent:     "maroon",
			Text:       "darkgray",
		},
		FontSize:    20,
		LineSpacing: 2,
	}
}

// LoadFromPath overlays the YAML file at path on DefaultConfig. A missing file
// yields the defaults. Unknown keys are rejected.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := decode(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("must be positive, got %d", c.Window.Width)}
	}
	if c.Window.Height <= 0 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("must be positive, got %d", c.Window.Height)}
	}
	if strings.ContainsRune(c.Window.Title, 0) {
		return &ValidationError{Path: "window.title", Err: fmt.Errorf("must not contain NUL bytes")}
	}
	if c.Window.TargetFPS < 0 {
		return &ValidationError{Path: "window.target_fps", Err: fmt.Errorf("must not be negative")}
	}
	if c.FontSize <= 0 {
		return &ValidationError{Path: "font_size", Err: fmt.Errorf("must be positive, got %d", c.FontSize)}
	}
	if c.LineSpacing < 0 {
		return &ValidationError{Path: "line_spacing", Err: fmt.Errorf("must not be negative")}
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette resolves the configured colors.
func (c *Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		path string
		name string
		dst  *ray.Color
	}{
		{"colors.background", c.Colors.Background, &p.Background},
		{"colors.accent", c.Colors.Accent, &p.Accent},
		{"colors.text", c.Colors.Text, &p.Text},
	}
	for _, f := range fields {
		col, err := ray.ParseColor(f.name)
		if err != nil {
			return Palette{}, &ValidationError{Path: f.path, Err: err}
		}
		*f.dst = col
	}
	return p, nil
}
