package ray

import (
	"errors"
	"testing"

	"github.com/tinyrange/raywin/internal/native"
	"github.com/tinyrange/raywin/internal/native/nativetest"
)

func TestOpenWindow_NegativeSizePanicsBeforeNativeCalls(t *testing.T) {
	saved := loadLibrary
	defer func() { loadLibrary = saved }()
	loadLibrary = func(string) (native.Library, error) {
		t.Errorf("library loaded for an invalid window")
		return nil, errors.New("unreachable")
	}

	tests := []struct {
		name          string
		width, height int
	}{
		{"negative width", -1, 600},
		{"negative height", 800, -1},
		{"both negative", -800, -600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectPanic(t, "non-negative", func() {
				OpenWindow(tt.width, tt.height, "demo")
			})
		})
	}

	rec := nativetest.New()
	expectPanic(t, "non-negative", func() {
		OpenWindow(-1, 600, "demo", withLibrary(rec))
	})
	if len(rec.Calls) != 0 {
		t.Fatalf("expected no native calls, got %v", rec.Calls)
	}
}

func TestOpenWindow_TitleWithNULPanicsBeforeNativeCalls(t *testing.T) {
	rec := nativetest.New()
	expectPanic(t, "NUL byte", func() {
		OpenWindow(800, 600, "de\x00mo", withLibrary(rec))
	})
	if len(rec.Calls) != 0 {
		t.Fatalf("expected no native calls, got %v", rec.Calls)
	}
}

func TestOpenWindow_PassesSizeTitleAndTargetFPS(t *testing.T) {
	rec := nativetest.New()
	w, err := OpenWindow(800, 600, "demo", withLibrary(rec), WithTargetFPS(60), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("open window: %v", err)
	}
	defer w.Close()

	if len(rec.Calls) != 2 {
		t.Fatalf("expected InitWindow and SetTargetFPS, got %v", rec.Calls)
	}
	initCall := rec.Calls[0]
	if initCall.Name != "InitWindow" || initCall.Args[0] != int32(800) || initCall.Args[1] != int32(600) || initCall.Args[2] != "demo" {
		t.Fatalf("unexpected init call %v", initCall)
	}
	if fps := rec.Calls[1]; fps.Name != "SetTargetFPS" || fps.Args[0] != int32(60) {
		t.Fatalf("unexpected fps call %v", fps)
	}
}

func TestOpenWindow_LoadFailureReturnsError(t *testing.T) {
	saved := loadLibrary
	defer func() { loadLibrary = saved }()

	var gotPath string
	loadLibrary = func(path string) (native.Library, error) {
		gotPath = path
		return nil, errors.New("no such file")
	}

	_, err := OpenWindow(800, 600, "demo", WithLibraryPath("/opt/raylib.so"), WithLogger(quietLogger()))
	if err == nil {
		t.Fatalf("expected an error")
	}
	if gotPath != "/opt/raylib.so" {
		t.Fatalf("expected library path to be passed through, got %q", gotPath)
	}

	// A failed open must not count as an open window.
	rec := nativetest.New()
	w, err := OpenWindow(800, 600, "demo", withLibrary(rec), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("open after failure: %v", err)
	}
	w.Close()
}

func TestOpenWindow_SecondWindowPanics(t *testing.T) {
	rec := nativetest.New()
	openTestWindow(t, rec)

	expectPanic(t, "already open", func() {
		OpenWindow(100, 100, "second", withLibrary(nativetest.New()))
	})
}

func TestWindow_CloseIsIdempotentAndAllowsReopen(t *testing.T) {
	rec := nativetest.New()
	w, err := OpenWindow(800, 600, "demo", withLibrary(rec), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("open window: %v", err)
	}

	w.Close()
	w.Close()
	if n := rec.Count("CloseWindow"); n != 1 {
		t.Fatalf("expected one CloseWindow, got %d", n)
	}

	w2, err := OpenWindow(800, 600, "again", withLibrary(rec), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	w2.Close()
}

func TestWindow_UseAfterClosePanics(t *testing.T) {
	rec := nativetest.New()
	w, err := OpenWindow(800, 600, "demo", withLibrary(rec), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("open window: %v", err)
	}
	w.Close()

	expectPanic(t, "closed window", func() { w.ShouldClose() })
	expectPanic(t, "closed window", func() { w.BeginFrame() })
	expectPanic(t, "closed window", func() { w.FPS() })
}

func TestWindow_ShouldClose(t *testing.T) {
	rec := nativetest.New()
	rec.CloseAfter = 1
	w := openTestWindow(t, rec)

	if w.ShouldClose() {
		t.Fatalf("expected first ShouldClose to be false")
	}
	if !w.ShouldClose() {
		t.Fatalf("expected second ShouldClose to be true")
	}
}

func TestWindow_Queries(t *testing.T) {
	rec := nativetest.New()
	rec.Width, rec.Height = 1024, 768
	rec.FPS = 60
	rec.FrameTime = 0.016
	rec.Mouse = native.Vector2{X: 12.5, Y: 40}
	w := openTestWindow(t, rec)

	if got := w.ScreenWidth(); got != 1024 {
		t.Errorf("ScreenWidth = %d", got)
	}
	if got := w.ScreenHeight(); got != 768 {
		t.Errorf("ScreenHeight = %d", got)
	}
	if got := w.FPS(); got != 60 {
		t.Errorf("FPS = %d", got)
	}
	if got := w.FrameTime(); got != 0.016 {
		t.Errorf("FrameTime = %v", got)
	}
	if got := w.MousePosition(); got != (Vector2{X: 12.5, Y: 40}) {
		t.Errorf("MousePosition = %v", got)
	}
}

func TestWindow_KeyAndButtonState(t *testing.T) {
	rec := nativetest.New()
	rec.KeysPressed = map[int32]bool{KeySpace.Code(): true}
	rec.KeysRepeated = map[int32]bool{KeyBackspace.Code(): true}
	rec.KeysReleased = map[int32]bool{KeyEscape.Code(): true}
	rec.KeysDown = map[int32]bool{KeyLeftShift.Code(): true, KeySpace.Code(): true}
	rec.ButtonsPressed = map[int32]bool{MouseLeft.Code(): true}
	rec.ButtonsDown = map[int32]bool{MouseRight.Code(): true}
	rec.ButtonsReleased = map[int32]bool{MouseMiddle.Code(): true}
	w := openTestWindow(t, rec)

	keys := []struct {
		key  Key
		want KeyState
	}{
		{KeySpace, KeyStatePressed},
		{KeyBackspace, KeyStateRepeated},
		{KeyEscape, KeyStateReleased},
		{KeyLeftShift, KeyStateDown},
		{KeyA, KeyStateUp},
	}
	for _, tt := range keys {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := w.KeyState(tt.key); got != tt.want {
				t.Errorf("KeyState(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	buttons := []struct {
		button MouseButton
		want   ButtonState
	}{
		{MouseLeft, ButtonStatePressed},
		{MouseRight, ButtonStateDown},
		{MouseMiddle, ButtonStateReleased},
	}
	for _, tt := range buttons {
		t.Run(tt.button.String(), func(t *testing.T) {
			if got := w.ButtonState(tt.button); got != tt.want {
				t.Errorf("ButtonState(%v) = %v, want %v", tt.button, got, tt.want)
			}
		})
	}

	if !w.IsKeyDown(KeyLeftShift) || w.IsKeyDown(KeyA) {
		t.Errorf("IsKeyDown mismatch")
	}
}

func TestWindow_CharPressedDropsNonASCII(t *testing.T) {
	rec := nativetest.New()
	rec.Chars = []int32{'h', 0x263A, 'i'}
	w := openTestWindow(t, rec)

	var got []rune
	for i := 0; i < 4; i++ {
		if r, ok := w.CharPressed(); ok {
			got = append(got, r)
		}
	}
	if string(got) != "hi" {
		t.Fatalf("CharPressed collected %q, want %q", string(got), "hi")
	}
}

func TestWindow_FontAndMeasureText(t *testing.T) {
	rec := nativetest.New()
	rec.Font = native.Font{
		BaseSize:     10,
		GlyphCount:   224,
		GlyphPadding: 0,
		Texture:      native.Texture{ID: 2, Width: 128, Height: 128},
	}
	w := openTestWindow(t, rec)

	font := w.DefaultFont()
	if font.BaseSize() != 10 || font.GlyphCount() != 224 || font.TextureID() != 2 {
		t.Fatalf("unexpected font %+v", font)
	}
	if tw, th := font.TextureSize(); tw != 128 || th != 128 {
		t.Fatalf("TextureSize = %dx%d", tw, th)
	}

	w.SetTextLineSpacing(4)
	size := w.MeasureText(font, "hello", 20, 1)
	if size != (Vector2{X: 50, Y: 20}) {
		t.Fatalf("MeasureText = %v", size)
	}

	want := []string{"GetFontDefault", "SetTextLineSpacing", "MeasureTextEx"}
	if got := rec.Names(); !equalNames(got, want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	measure := rec.Calls[2]
	if measure.Args[0] != int32(10) || measure.Args[1] != "hello" || measure.Args[2] != float32(20) || measure.Args[3] != float32(1) {
		t.Fatalf("unexpected measure call %v", measure)
	}

	expectPanic(t, "NUL byte", func() { w.MeasureText(font, "a\x00b", 20, 1) })
	if n := rec.Count("MeasureTextEx"); n != 1 {
		t.Fatalf("MeasureTextEx reached native code with a NUL byte")
	}
}
