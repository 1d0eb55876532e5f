// Package ray is a memory-safe binding over a subset of raylib: the window and
// frame lifecycle, basic drawing, input polling and text measurement.
//
// raylib is single threaded. Every call must come from the goroutine that
// opened the window; OpenWindow locks that goroutine to its OS thread.
package ray

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"github.com/tinyrange/raywin/internal/native"
)

var loadLibrary = native.Load

var (
	openMu  sync.Mutex
	current *Window
)

// Window owns the process-wide raylib window. Only one may be open at a time,
// and it must be driven from the goroutine that opened it.
type Window struct {
	lib    native.Library
	log    *slog.Logger
	frame  *Frame
	frames uint64
	closed bool
}

// OpenWindow opens the raylib window.
//
// A negative size, or a title containing a NUL byte or invalid UTF-8, is a
// programming error and panics before raylib is touched. So does opening a
// second window while one is open. Each of these is logged at Error level
// through the configured logger first. An error is returned only when the raylib
// shared library cannot be loaded.
//
// The calling goroutine is locked to its OS thread until Close.
func OpenWindow(width, height int, title string, opts ...Option) (*Window, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if width < 0 || height < 0 {
		misuse(o.logger, fmt.Sprintf("window size %dx%d: width and height must be non-negative", width, height))
	}
	if width > math.MaxInt32 || height > math.MaxInt32 {
		misuse(o.logger, fmt.Sprintf("window size %dx%d out of range", width, height))
	}
	ctitle := cString(o.logger, title)

	openMu.Lock()
	defer openMu.Unlock()

	if current != nil {
		misuse(o.logger, "a window is already open")
	}

	lib := o.lib
	if lib == nil {
		var err error
		lib, err = loadLibrary(o.libraryPath)
		if err != nil {
			return nil, fmt.Errorf("load raylib: %w", err)
		}
	}

	runtime.LockOSThread()
	lib.InitWindow(int32(width), int32(height), &ctitle[0])
	runtime.KeepAlive(ctitle)
	if o.targetFPS > 0 {
		lib.SetTargetFPS(int32(o.targetFPS))
	}

	w := &Window{lib: lib, log: o.logger}
	current = w

	w.log.Info("window opened", "width", width, "height", height, "title", title)
	return w, nil
}

// misuse logs a caller contract violation and panics with it.
func misuse(logger *slog.Logger, msg string) {
	logger.Error("ray misuse", "error", msg)
	panic("ray: " + msg)
}

func (w *Window) fail(msg string) {
	misuse(w.log, msg)
}

func (w *Window) cString(s string) []byte {
	return cString(w.log, s)
}

func (w *Window) keyCode(key Key) int32 {
	if key < 0 || key >= keyCount {
		w.fail(fmt.Sprintf("invalid key %d", int(key)))
	}
	return key.Code()
}

func (w *Window) buttonCode(button MouseButton) int32 {
	if button < MouseLeft || button > MouseMiddle {
		w.fail(fmt.Sprintf("invalid mouse button %d", int(button)))
	}
	return button.Code()
}

func (w *Window) mustBeOpen(op string) {
	if w.closed {
		w.fail(op + " on a closed window")
	}
}

// Close closes the window. A frame still in progress is ended first. Calling
// Close again does nothing.
func (w *Window) Close() {
	if w.closed {
		return
	}
	if w.frame != nil {
		w.log.Warn("closing window with a frame in progress")
		w.frame.End()
	}

	w.lib.CloseWindow()
	w.closed = true

	openMu.Lock()
	if current == w {
		current = nil
	}
	openMu.Unlock()
	runtime.UnlockOSThread()

	w.log.Info("window closed", "frames", w.frames)
}

// ShouldClose reports whether the user or the OS asked the application to exit.
func (w *Window) ShouldClose() bool {
	w.mustBeOpen("ShouldClose")
	return w.lib.WindowShouldClose()
}

// BeginFrame starts compositing a frame. The frame must be ended before the
// next one begins.
func (w *Window) BeginFrame() *Frame {
	w.mustBeOpen("BeginFrame")
	if w.frame != nil {
		w.fail("BeginFrame while another frame is in progress")
	}

	w.lib.BeginDrawing()
	w.frame = &Frame{w: w}
	return w.frame
}

// Frame runs fn inside a frame. The frame is ended however fn returns,
// including by panicking.
func (w *Window) Frame(fn func(f *Frame) error) error {
	f := w.BeginFrame()
	defer f.End()
	return fn(f)
}

// Loop calls step once per frame until the window should close, step returns
// an error, or step closes the window. The window is closed when Loop returns.
func (w *Window) Loop(step func(f *Frame) error) error {
	defer w.Close()

	for !w.closed && !w.ShouldClose() {
		if err := w.Frame(step); err != nil {
			return err
		}
	}
	return nil
}

// FrameTime returns the seconds taken by the last frame.
func (w *Window) FrameTime() float32 {
	w.mustBeOpen("FrameTime")
	return w.lib.GetFrameTime()
}

func (w *Window) FPS() int {
	w.mustBeOpen("FPS")
	return int(w.lib.GetFPS())
}

func (w *Window) ScreenWidth() int {
	w.mustBeOpen("ScreenWidth")
	return int(w.lib.GetScreenWidth())
}

func (w *Window) ScreenHeight() int {
	w.mustBeOpen("ScreenHeight")
	return int(w.lib.GetScreenHeight())
}

func (w *Window) MousePosition() Vector2 {
	w.mustBeOpen("MousePosition")
	return vectorFromNative(w.lib.GetMousePosition())
}

func (w *Window) IsKeyDown(key Key) bool {
	w.mustBeOpen("IsKeyDown")
	return w.lib.IsKeyDown(w.keyCode(key))
}

func (w *Window) IsKeyPressed(key Key) bool {
	w.mustBeOpen("IsKeyPressed")
	return w.lib.IsKeyPressed(w.keyCode(key))
}

// IsKeyPressedRepeat reports an auto-repeat of a held key this frame.
func (w *Window) IsKeyPressedRepeat(key Key) bool {
	w.mustBeOpen("IsKeyPressedRepeat")
	return w.lib.IsKeyPressedRepeat(w.keyCode(key))
}

func (w *Window) IsKeyReleased(key Key) bool {
	w.mustBeOpen("IsKeyReleased")
	return w.lib.IsKeyReleased(w.keyCode(key))
}

// KeyState folds the per-frame key queries into a single state.
func (w *Window) KeyState(key Key) KeyState {
	switch {
	case w.IsKeyPressed(key):
		return KeyStatePressed
	case w.IsKeyPressedRepeat(key):
		return KeyStateRepeated
	case w.IsKeyReleased(key):
		return KeyStateReleased
	case w.IsKeyDown(key):
		return KeyStateDown
	default:
		return KeyStateUp
	}
}

// CharPressed pops the next typed character. Only printable ASCII is
// reported; anything else is consumed and dropped.
func (w *Window) CharPressed() (rune, bool) {
	w.mustBeOpen("CharPressed")
	return decodeChar(w.lib.GetCharPressed())
}

func (w *Window) IsMouseButtonPressed(button MouseButton) bool {
	w.mustBeOpen("IsMouseButtonPressed")
	return w.lib.IsMouseButtonPressed(w.buttonCode(button))
}

func (w *Window) IsMouseButtonDown(button MouseButton) bool {
	w.mustBeOpen("IsMouseButtonDown")
	return w.lib.IsMouseButtonDown(w.buttonCode(button))
}

func (w *Window) IsMouseButtonReleased(button MouseButton) bool {
	w.mustBeOpen("IsMouseButtonReleased")
	return w.lib.IsMouseButtonReleased(w.buttonCode(button))
}

// ButtonState folds the per-frame mouse button queries into a single state.
func (w *Window) ButtonState(button MouseButton) ButtonState {
	switch {
	case w.IsMouseButtonPressed(button):
		return ButtonStatePressed
	case w.IsMouseButtonReleased(button):
		return ButtonStateReleased
	case w.IsMouseButtonDown(button):
		return ButtonStateDown
	default:
		return ButtonStateUp
	}
}

// DefaultFont returns raylib's built-in font.
func (w *Window) DefaultFont() Font {
	w.mustBeOpen("DefaultFont")
	return Font{f: w.lib.GetFontDefault()}
}

// SetTextLineSpacing sets the distance between lines of multi-line text.
// spacing is passed to raylib as an int32 and truncated if it does not fit.
func (w *Window) SetTextLineSpacing(spacing int) {
	w.mustBeOpen("SetTextLineSpacing")
	w.lib.SetTextLineSpacing(int32(spacing))
}

// MeasureText returns the size text would take when drawn with font.
func (w *Window) MeasureText(font Font, text string, fontSize, spacing float32) Vector2 {
	w.mustBeOpen("MeasureText")
	ctext := w.cString(text)
	size := w.lib.MeasureTextEx(font.native(), &ctext[0], fontSize, spacing)
	runtime.KeepAlive(ctext)
	return vectorFromNative(size)
}
