package ray

import (
	"log/slog"

	"github.com/tinyrange/raywin/internal/native"
)

// Option configures OpenWindow.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	libraryPath string
	targetFPS   int
	lib         native.Library
}

// WithLogger sets the logger for window lifecycle events. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLibraryPath loads raylib from path instead of the platform defaults.
func WithLibraryPath(path string) Option {
	return func(o *options) {
		o.libraryPath = path
	}
}

// WithTargetFPS caps the frame rate. Zero leaves raylib's default (uncapped).
func WithTargetFPS(fps int) Option {
	return func(o *options) {
		o.targetFPS = fps
	}
}

// withLibrary uses lib instead of loading the shared library.
func withLibrary(lib native.Library) Option {
	return func(o *options) {
		o.lib = lib
	}
}
