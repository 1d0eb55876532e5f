package ray

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/tinyrange/raywin/internal/native"
)

// Color is an 8-bit-per-channel, non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func (c Color) native() native.Color {
	return native.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// The raylib palette.
var (
	LightGray  = Color{200, 200, 200, 255}
	Gray       = Color{130, 130, 130, 255}
	DarkGray   = Color{80, 80, 80, 255}
	Yellow     = Color{253, 249, 0, 255}
	Gold       = Color{255, 203, 0, 255}
	Orange     = Color{255, 161, 0, 255}
	Pink       = Color{255, 109, 194, 255}
	Red        = Color{230, 41, 55, 255}
	Maroon     = Color{190, 33, 55, 255}
	Green      = Color{0, 228, 48, 255}
	Lime       = Color{0, 158, 47, 255}
	DarkGreen  = Color{0, 117, 44, 255}
	SkyBlue    = Color{102, 191, 255, 255}
	Blue       = Color{0, 121, 241, 255}
	DarkBlue   = Color{0, 82, 172, 255}
	Purple     = Color{200, 122, 255, 255}
	Violet     = Color{135, 60, 190, 255}
	DarkPurple = Color{112, 31, 126, 255}
	Beige      = Color{211, 176, 131, 255}
	Brown      = Color{127, 106, 79, 255}
	DarkBrown  = Color{76, 63, 47, 255}

	White    = Color{255, 255, 255, 255}
	Black    = Color{0, 0, 0, 255}
	Blank    = Color{0, 0, 0, 0}
	Magenta  = Color{255, 0, 255, 255}
	RayWhite = Color{245, 245, 245, 255}
)

var palette = map[string]Color{
	"lightgray":  LightGray,
	"gray":       Gray,
	"darkgray":   DarkGray,
	"yellow":     Yellow,
	"gold":       Gold,
	"orange":     Orange,
	"pink":       Pink,
	"red":        Red,
	"maroon":     Maroon,
	"green":      Green,
	"lime":       Lime,
	"darkgreen":  DarkGreen,
	"skyblue":    SkyBlue,
	"blue":       Blue,
	"darkblue":   DarkBlue,
	"purple":     Purple,
	"violet":     Violet,
	"darkpurple": DarkPurple,
	"beige":      Beige,
	"brown":      Brown,
	"darkbrown":  DarkBrown,
	"white":      White,
	"black":      Black,
	"blank":      Blank,
	"magenta":    Magenta,
	"raywhite":   RayWhite,
}

// ParseColor resolves a color by name or hex code.
//
// Names are matched case-insensitively, ignoring spaces, dashes and
// underscores. The raylib palette wins over the SVG color names, so "gray"
// is raylib's gray. Hex codes are "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
	if c, ok := palette[key]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[key]; ok {
		return FromColor(c), nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (Color, error) {
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
