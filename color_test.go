package pcview

import (
	"image/color"
	"testing"
)

func TestRGB8(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color3
	}{
		{"black", 0, 0, 0, RGB(0, 0, 0)},
		{"white", 255, 255, 255, RGB(1, 1, 1)},
		{"mixed", 255, 0, 51, RGB(1, 0, 0.2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGB8(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGB8(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestColor3_RGB255(t *testing.T) {
	tests := []struct {
		name    string
		c       Color3
		r, g, b uint8
	}{
		{"black", RGB(0, 0, 0), 0, 0, 0},
		{"white", RGB(1, 1, 1), 255, 255, 255},
		{"clamp", RGB(-1, 2, 0.5), 0, 255, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.RGB255()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("%v.RGB255() = (%d, %d, %d), want (%d, %d, %d)", tt.c, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestColor3_Color(t *testing.T) {
	got := RGB(1, 0, 0).Color()
	want := color.NRGBA{R: 255, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}
