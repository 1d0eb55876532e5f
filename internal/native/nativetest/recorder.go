// Package nativetest provides a recording stand-in for the raylib library.
package nativetest

import (
	"fmt"

	"github.com/tinyrange/raywin/internal/native"
)

// Call is one recorded native call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Recorder implements native.Library by recording every call in order. Text
// arguments are recorded as Go strings. Query results come from the exported
// fields, which tests set before driving the code under test.
type Recorder struct {
	Calls []Call

	// CloseAfter makes WindowShouldClose report true once it has been asked
	// more than CloseAfter times. Negative means never.
	CloseAfter int
	closeAsked int

	KeysDown     map[int32]bool
	KeysPressed  map[int32]bool
	KeysRepeated map[int32]bool
	KeysReleased map[int32]bool

	ButtonsPressed  map[int32]bool
	ButtonsDown     map[int32]bool
	ButtonsReleased map[int32]bool

	// Chars is drained one entry per GetCharPressed; 0 once empty.
	Chars []int32

	Mouse         native.Vector2
	Width, Height int32
	FrameTime     float32
	FPS           int32
	Font          native.Font

	// Measure computes MeasureTextEx results. Nil measures 10 units per byte
	// wide and fontSize tall.
	Measure func(text string, fontSize, spacing float32) native.Vector2
}

var _ native.Library = (*Recorder)(nil)

// New returns a Recorder whose window never asks to close.
func New() *Recorder {
	return &Recorder{CloseAfter: -1}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

// Names returns the names of the recorded calls, skipping any in skip.
func (r *Recorder) Names(skip ...string) []string {
	var names []string
outer:
	for _, c := range r.Calls {
		for _, s := range skip {
			if c.Name == s {
				continue outer
			}
		}
		names = append(names, c.Name)
	}
	return names
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) InitWindow(width, height int32, title *byte) {
	r.record("InitWindow", width, height, native.GoString(title))
}

func (r *Recorder) CloseWindow() {
	r.record("CloseWindow")
}

func (r *Recorder) WindowShouldClose() bool {
	r.record("WindowShouldClose")
	r.closeAsked++
	return r.CloseAfter >= 0 && r.closeAsked > r.CloseAfter
}

func (r *Recorder) SetTargetFPS(fps int32) {
	r.record("SetTargetFPS", fps)
}

func (r *Recorder) BeginDrawing() {
	r.record("BeginDrawing")
}

func (r *Recorder) EndDrawing() {
	r.record("EndDrawing")
}

func (r *Recorder) ClearBackground(c native.Color) {
	r.record("ClearBackground", c)
}

func (r *Recorder) DrawText(text *byte, posX, posY, fontSize int32, c native.Color) {
	r.record("DrawText", native.GoString(text), posX, posY, fontSize, c)
}

func (r *Recorder) DrawRectangle(posX, posY, width, height int32, c native.Color) {
	r.record("DrawRectangle", posX, posY, width, height, c)
}

func (r *Recorder) DrawCircle(centerX, centerY int32, radius float32, c native.Color) {
	r.record("DrawCircle", centerX, centerY, radius, c)
}

func (r *Recorder) DrawLineEx(start, end native.Vector2, thickness float32, c native.Color) {
	r.record("DrawLineEx", start, end, thickness, c)
}

func (r *Recorder) IsKeyDown(key int32) bool {
	r.record("IsKeyDown", key)
	return r.KeysDown[key]
}

func (r *Recorder) IsKeyPressed(key int32) bool {
	r.record("IsKeyPressed", key)
	return r.KeysPressed[key]
}

func (r *Recorder) IsKeyPressedRepeat(key int32) bool {
	r.record("IsKeyPressedRepeat", key)
	return r.KeysRepeated[key]
}

func (r *Recorder) IsKeyReleased(key int32) bool {
	r.record("IsKeyReleased", key)
	return r.KeysReleased[key]
}

func (r *Recorder) GetCharPressed() int32 {
	r.record("GetCharPressed")
	if len(r.Chars) == 0 {
		return 0
	}
	c := r.Chars[0]
	r.Chars = r.Chars[1:]
	return c
}

func (r *Recorder) IsMouseButtonPressed(button int32) bool {
	r.record("IsMouseButtonPressed", button)
	return r.ButtonsPressed[button]
}

func (r *Recorder) IsMouseButtonDown(button int32) bool {
	r.record("IsMouseButtonDown", button)
	return r.ButtonsDown[button]
}

func (r *Recorder) IsMouseButtonReleased(button int32) bool {
	r.record("IsMouseButtonReleased", button)
	return r.ButtonsReleased[button]
}

func (r *Recorder) GetMousePosition() native.Vector2 {
	r.record("GetMousePosition")
	return r.Mouse
}

func (r *Recorder) GetFrameTime() float32 {
	r.record("GetFrameTime")
	return r.FrameTime
}

func (r *Recorder) GetScreenWidth() int32 {
	r.record("GetScreenWidth")
	return r.Width
}

func (r *Recorder) GetScreenHeight() int32 {
	r.record("GetScreenHeight")
	return r.Height
}

func (r *Recorder) GetFPS() int32 {
	r.record("GetFPS")
	return r.FPS
}

func (r *Recorder) GetFontDefault() native.Font {
	r.record("GetFontDefault")
	return r.Font
}

func (r *Recorder) SetTextLineSpacing(spacing int32) {
	r.record("SetTextLineSpacing", spacing)
}

func (r *Recorder) MeasureTextEx(font native.Font, text *byte, fontSize, spacing float32) native.Vector2 {
	s := native.GoString(text)
	r.record("MeasureTextEx", font.BaseSize, s, fontSize, spacing)
	if r.Measure != nil {
		return r.Measure(s, fontSize, spacing)
	}
	return native.Vector2{X: float32(len(s)) * 10, Y: fontSize}
}
