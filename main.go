package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tinyrange/raywin/internal/config"
	"github.com/tinyrange/raywin/ray"
)

var errFrameLimit = errors.New("frame limit reached")

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("config", "raywin.yaml", "path to the YAML config file")
	library := fs.String("library", "", "path to the raylib shared library")
	frameLimit := fs.Int("frames", 0, "exit after this many frames (0 runs until the window is closed)")
	verbose := fs.Bool("v", false, "enable debug logging")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *library != "" {
		cfg.Library = *library
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	win, err := ray.OpenWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title,
		ray.WithLogger(logger),
		ray.WithLibraryPath(cfg.Library),
		ray.WithTargetFPS(cfg.Window.TargetFPS),
	)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	win.SetTextLineSpacing(cfg.LineSpacing)
	font := win.DefaultFont()
	logger.Debug("default font", "base_size", font.BaseSize(), "glyphs", font.GlyphCount())

	const quadSize = 200

	var (
		frames int
		angle  float32
	)
	err = win.Loop(func(f *ray.Frame) error {
		f.Clear(palette.Background)

		x, y := f.CursorPos()
		f.DrawRectangle(int(x)-quadSize/2, int(y)-quadSize/2, quadSize, quadSize, palette.Accent)

		w, h := f.WindowSize()
		center := ray.Vector2{X: float32(w) / 2, Y: float32(h) / 2}
		angle += win.FrameTime()
		hand := ray.FromAngle(angle, float32(min(w, h))/3)
		f.DrawLine(center, center.Add(hand), 4, palette.Text)
		f.DrawCircle(int(center.X), int(center.Y), 8, palette.Text)

		text := fmt.Sprintf("The quick brown fox jumps over the lazy dog.\nFPS = %d", win.FPS())
		size := win.MeasureText(font, text, float32(cfg.FontSize), 1)
		f.DrawText(text, int(float32(w)-size.X)/2, h-int(size.Y)-10, cfg.FontSize, palette.Text)

		frames++
		if *frameLimit > 0 && frames >= *frameLimit {
			return errFrameLimit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errFrameLimit) {
		log.Fatalf("run loop: %v", err)
	}
}
