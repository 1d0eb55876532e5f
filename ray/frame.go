package ray

import "runtime"

// Frame is a frame being composited. Draw calls are only valid until End.
//
// Integer coordinates and sizes are passed to raylib as int32; values outside
// the int32 range are truncated, not checked.
type Frame struct {
	w     *Window
	ended bool
}

// End presents the frame. Calling End again does nothing.
func (f *Frame) End() {
	if f.ended {
		return
	}
	f.ended = true
	f.w.frame = nil
	f.w.frames++
	f.w.lib.EndDrawing()
}

func (f *Frame) mustBeActive(op string) {
	if f.ended {
		f.w.fail(op + " on an ended frame")
	}
}

// Window returns the window the frame belongs to.
func (f *Frame) Window() *Window {
	return f.w
}

func (f *Frame) WindowSize() (width, height int) {
	f.mustBeActive("WindowSize")
	return f.w.ScreenWidth(), f.w.ScreenHeight()
}

func (f *Frame) CursorPos() (x, y float32) {
	f.mustBeActive("CursorPos")
	p := f.w.MousePosition()
	return p.X, p.Y
}

// Clear fills the whole frame with c.
func (f *Frame) Clear(c Color) {
	f.mustBeActive("Clear")
	f.w.lib.ClearBackground(c.native())
}

func (f *Frame) DrawRectangle(x, y, width, height int, c Color) {
	f.mustBeActive("DrawRectangle")
	f.w.lib.DrawRectangle(int32(x), int32(y), int32(width), int32(height), c.native())
}

func (f *Frame) DrawCircle(centerX, centerY int, radius float32, c Color) {
	f.mustBeActive("DrawCircle")
	f.w.lib.DrawCircle(int32(centerX), int32(centerY), radius, c.native())
}

// DrawLine draws a line segment of the given thickness.
func (f *Frame) DrawLine(start, end Vector2, thickness float32, c Color) {
	f.mustBeActive("DrawLine")
	f.w.lib.DrawLineEx(start.native(), end.native(), thickness, c.native())
}

// DrawText draws text with the default font, top-left corner at (x, y).
func (f *Frame) DrawText(text string, x, y, fontSize int, c Color) {
	f.mustBeActive("DrawText")
	ctext := f.w.cString(text)
	f.w.lib.DrawText(&ctext[0], int32(x), int32(y), int32(fontSize), c.native())
	runtime.KeepAlive(ctext)
}
