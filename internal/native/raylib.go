//go:build darwin || freebsd || linux || windows

package native

import (
	"fmt"
	"os"

	"github.com/ebitengine/purego"
)

// raylib binds the entry points of a loaded raylib shared library.
type raylib struct {
	initWindow        func(int32, int32, *byte)
	closeWindow       func()
	windowShouldClose func() bool
	setTargetFPS      func(int32)

	beginDrawing func()
	endDrawing   func()

	clearBackground func(Color)
	drawText        func(*byte, int32, int32, int32, Color)
	drawRectangle   func(int32, int32, int32, int32, Color)
	drawCircle      func(int32, int32, float32, Color)
	drawLineEx      func(Vector2, Vector2, float32, Color)

	isKeyDown          func(int32) bool
	isKeyPressed       func(int32) bool
	isKeyPressedRepeat func(int32) bool
	isKeyReleased      func(int32) bool
	getCharPressed     func() int32

	isMouseButtonPressed  func(int32) bool
	isMouseButtonDown     func(int32) bool
	isMouseButtonReleased func(int32) bool
	getMousePosition      func() Vector2

	getFrameTime    func() float32
	getScreenWidth  func() int32
	getScreenHeight func() int32
	getFPS          func() int32

	getFontDefault     func() Font
	setTextLineSpacing func(int32)
	measureTextEx      func(Font, *byte, float32, float32) Vector2
}

func (rl *raylib) InitWindow(width, height int32, title *byte) {
	rl.initWindow(width, height, title)
}

func (rl *raylib) CloseWindow() {
	rl.closeWindow()
}

func (rl *raylib) WindowShouldClose() bool {
	return rl.windowShouldClose()
}

func (rl *raylib) SetTargetFPS(fps int32) {
	rl.setTargetFPS(fps)
}

func (rl *raylib) BeginDrawing() {
	rl.beginDrawing()
}

func (rl *raylib) EndDrawing() {
	rl.endDrawing()
}

func (rl *raylib) ClearBackground(c Color) {
	rl.clearBackground(c)
}

func (rl *raylib) DrawText(text *byte, posX, posY, fontSize int32, c Color) {
	rl.drawText(text, posX, posY, fontSize, c)
}

func (rl *raylib) DrawRectangle(posX, posY, width, height int32, c Color) {
	rl.drawRectangle(posX, posY, width, height, c)
}

func (rl *raylib) DrawCircle(centerX, centerY int32, radius float32, c Color) {
	rl.drawCircle(centerX, centerY, radius, c)
}

func (rl *raylib) DrawLineEx(start, end Vector2, thickness float32, c Color) {
	rl.drawLineEx(start, end, thickness, c)
}

func (rl *raylib) IsKeyDown(key int32) bool {
	return rl.isKeyDown(key)
}

func (rl *raylib) IsKeyPressed(key int32) bool {
	return rl.isKeyPressed(key)
}

func (rl *raylib) IsKeyPressedRepeat(key int32) bool {
	return rl.isKeyPressedRepeat(key)
}

func (rl *raylib) IsKeyReleased(key int32) bool {
	return rl.isKeyReleased(key)
}

func (rl *raylib) GetCharPressed() int32 {
	return rl.getCharPressed()
}

func (rl *raylib) IsMouseButtonPressed(button int32) bool {
	return rl.isMouseButtonPressed(button)
}

func (rl *raylib) IsMouseButtonDown(button int32) bool {
	return rl.isMouseButtonDown(button)
}

func (rl *raylib) IsMouseButtonReleased(button int32) bool {
	return rl.isMouseButtonReleased(button)
}

func (rl *raylib) GetMousePosition() Vector2 {
	return rl.getMousePosition()
}

func (rl *raylib) GetFrameTime() float32 {
	return rl.getFrameTime()
}

func (rl *raylib) GetScreenWidth() int32 {
	return rl.getScreenWidth()
}

func (rl *raylib) GetScreenHeight() int32 {
	return rl.getScreenHeight()
}

func (rl *raylib) GetFPS() int32 {
	return rl.getFPS()
}

func (rl *raylib) GetFontDefault() Font {
	return rl.getFontDefault()
}

func (rl *raylib) SetTextLineSpacing(spacing int32) {
	rl.setTextLineSpacing(spacing)
}

func (rl *raylib) MeasureTextEx(font Font, text *byte, fontSize, spacing float32) Vector2 {
	return rl.measureTextEx(font, text, fontSize, spacing)
}

// Load opens the raylib shared library and binds every entry point in Library.
//
// An empty path falls back to $RAYWIN_LIBRARY and then to the platform's usual
// library names.
func Load(path string) (Library, error) {
	candidates := libraryNames
	if path == "" {
		path = os.Getenv(LibraryEnv)
	}
	if path != "" {
		candidates = []string{path}
	}

	var firstErr error
	for _, name := range candidates {
		handle, err := openLibrary(name)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("open %s: %w", name, err)
			}
			continue
		}
		return bind(handle)
	}
	return nil, firstErr
}

func bind(handle uintptr) (lib Library, err error) {
	var symbol string
	defer func() {
		// RegisterLibFunc panics on a missing symbol or an unsupported signature.
		if r := recover(); r != nil {
			lib = nil
			err = fmt.Errorf("bind %s: %v", symbol, r)
		}
	}()

	register := func(dst interface{}, name string) {
		symbol = name
		purego.RegisterLibFunc(dst, handle, name)
	}

	rl := &raylib{}
	register(&rl.initWindow, "InitWindow")
	register(&rl.closeWindow, "CloseWindow")
	register(&rl.windowShouldClose, "WindowShouldClose")
	register(&rl.setTargetFPS, "SetTargetFPS")
	register(&rl.beginDrawing, "BeginDrawing")
	register(&rl.endDrawing, "EndDrawing")
	register(&rl.clearBackground, "ClearBackground")
	register(&rl.drawText, "DrawText")
	register(&rl.drawRectangle, "DrawRectangle")
	register(&rl.drawCircle, "DrawCircle")
	register(&rl.drawLineEx, "DrawLineEx")
	register(&rl.isKeyDown, "IsKeyDown")
	register(&rl.isKeyPressed, "IsKeyPressed")
	register(&rl.isKeyPressedRepeat, "IsKeyPressedRepeat")
	register(&rl.isKeyReleased, "IsKeyReleased")
	register(&rl.getCharPressed, "GetCharPressed")
	register(&rl.isMouseButtonPressed, "IsMouseButtonPressed")
	register(&rl.isMouseButtonDown, "IsMouseButtonDown")
	register(&rl.isMouseButtonReleased, "IsMouseButtonReleased")
	register(&rl.getMousePosition, "GetMousePosition")
	register(&rl.getFrameTime, "GetFrameTime")
	register(&rl.getScreenWidth, "GetScreenWidth")
	register(&rl.getScreenHeight, "GetScreenHeight")
	register(&rl.getFPS, "GetFPS")
	register(&rl.getFontDefault, "GetFontDefault")
	register(&rl.setTextLineSpacing, "SetTextLineSpacing")
	register(&rl.measureTextEx, "MeasureTextEx")
	return rl, nil
}
