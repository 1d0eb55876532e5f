package ray

import (
	"image/color"
	"testing"

	"github.com/tinyrange/raywin/internal/native"
)

func TestColor_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"blank", Blank, 0, 0, 0, 0},
		{"half red", Color{255, 0, 0, 128}, 0x8080, 0, 0, 0x8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestColor_FromColorRoundTrip(t *testing.T) {
	for _, c := range []Color{LightGray, Gold, Blank, Color{10, 20, 30, 40}} {
		if got := FromColor(c); got != c {
			t.Errorf("FromColor(%v) = %v", c, got)
		}
	}
	if got := FromColor(color.Gray{Y: 0x40}); got != (Color{0x40, 0x40, 0x40, 0xff}) {
		t.Errorf("FromColor(gray) = %v", got)
	}
}

func TestColor_NativeIsFieldForField(t *testing.T) {
	c := Color{1, 2, 3, 4}
	if got := c.native(); got != (native.Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("native() = %v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"raywhite", RayWhite},
		{"Ray White", RayWhite},
		{"dark_gray", DarkGray},
		{"GRAY", Gray},
		{"cornflowerblue", Color{100, 149, 237, 255}},
		{"#102030", Color{0x10, 0x20, 0x30, 0xff}},
		{"#10203040", Color{0x10, 0x20, 0x30, 0x40}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "notacolor", "#12", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) succeeded", bad)
		}
	}
}
