package native

import (
	"errors"
	"unsafe"
)

// ErrUnsupported is returned by Load on platforms without a raylib loader.
var ErrUnsupported = errors.New("raylib loader not available on this platform")

// LibraryEnv names the environment variable that overrides the shared library path.
const LibraryEnv = "RAYWIN_LIBRARY"

// Color matches raylib's Color: four 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Vector2 matches raylib's Vector2.
type Vector2 struct {
	X, Y float32
}

// Rectangle matches raylib's Rectangle.
type Rectangle struct {
	X, Y, Width, Height float32
}

// Texture matches raylib's Texture (and Texture2D).
type Texture struct {
	ID      uint32
	Width   int32
	Height  int32
	Mipmaps int32
	Format  int32
}

// Image matches raylib's Image. Data is owned by raylib.
type Image struct {
	Data    unsafe.Pointer
	Width   int32
	Height  int32
	Mipmaps int32
	Format  int32
}

// GlyphInfo matches raylib's GlyphInfo.
type GlyphInfo struct {
	Value    int32
	OffsetX  int32
	OffsetY  int32
	AdvanceX int32
	Image    Image
}

// Font matches raylib's Font. Recs and Glyphs point into memory owned by raylib;
// copying a Font never copies or frees that memory.
type Font struct {
	BaseSize     int32
	GlyphCount   int32
	GlyphPadding int32
	Texture      Texture
	Recs         *Rectangle
	Glyphs       *GlyphInfo
}

// Library describes the subset of raylib entry points used by this module.
//
// Every method is a direct, blocking call into raylib and must be made from the
// thread that called InitWindow. Text arguments are NUL-terminated byte strings
// that must stay alive for the duration of the call.
type Library interface {
	// InitWindow opens the window and the graphics context.
	InitWindow(width, height int32, title *byte)
	// CloseWindow closes the window and unloads the graphics context.
	CloseWindow()
	// WindowShouldClose reports whether the close button or exit key was hit.
	WindowShouldClose() bool
	// SetTargetFPS makes EndDrawing wait to cap the frame rate. Zero disables the cap.
	SetTargetFPS(fps int32)

	BeginDrawing()
	EndDrawing()

	ClearBackground(c Color)
	DrawText(text *byte, posX, posY, fontSize int32, c Color)
	DrawRectangle(posX, posY, width, height int32, c Color)
	DrawCircle(centerX, centerY int32, radius float32, c Color)
	DrawLineEx(start, end Vector2, thickness float32, c Color)

	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
	IsKeyPressedRepeat(key int32) bool
	IsKeyReleased(key int32) bool
	// GetCharPressed pops the next unicode code point from the char queue, or 0.
	GetCharPressed() int32

	IsMouseButtonPressed(button int32) bool
	IsMouseButtonDown(button int32) bool
	IsMouseButtonReleased(button int32) bool
	GetMousePosition() Vector2

	GetFrameTime() float32
	GetScreenWidth() int32
	GetScreenHeight() int32
	GetFPS() int32

	// GetFontDefault returns the built-in font. Its glyph tables live until CloseWindow.
	GetFontDefault() Font
	SetTextLineSpacing(spacing int32)
	MeasureTextEx(font Font, text *byte, fontSize, spacing float32) Vector2
}

// GoString copies a NUL-terminated byte string into a Go string.
func GoString(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var bytes []byte
	for p := ptr; *p != 0; p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}
