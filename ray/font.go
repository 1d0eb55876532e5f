package ray

import "github.com/tinyrange/raywin/internal/native"

// Font is a snapshot of a raylib font. It does not own the glyph tables or the
// texture it refers to; those belong to raylib. The default font stays valid
// until the window that produced it is closed.
type Font struct {
	f native.Font
}

func (f Font) BaseSize() int {
	return int(f.f.BaseSize)
}

func (f Font) GlyphCount() int {
	return int(f.f.GlyphCount)
}

func (f Font) GlyphPadding() int {
	return int(f.f.GlyphPadding)
}

// TextureID returns the GPU id of the font atlas.
func (f Font) TextureID() uint32 {
	return f.f.Texture.ID
}

// TextureSize returns the size of the font atlas in pixels.
func (f Font) TextureSize() (width, height int) {
	return int(f.f.Texture.Width), int(f.f.Texture.Height)
}

func (f Font) native() native.Font {
	return f.f
}
