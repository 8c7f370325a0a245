package text

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func countDark(bm *Bitmap) int {
	n := 0
	for row := 0; row < bm.Height; row++ {
		for col := 0; col < bm.Width; col++ {
			if r, _, _ := bm.RGB(row, col); r < 128 {
				n++
			}
		}
	}
	return n
}

func TestRasterize(t *testing.T) {
	face := loadTestFont(t).Face(16)

	bm, err := Rasterize(face, "Hello, World!")
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if bm.Empty() {
		t.Fatal("Rasterize() returned empty bitmap")
	}
	if len(bm.Pix) != bm.Width*bm.Height*3 {
		t.Errorf("len(Pix) = %d, want %d", len(bm.Pix), bm.Width*bm.Height*3)
	}

	wantW := int(math.Ceil(face.Advance("Hello, World!")))
	if bm.Width < wantW-3 || bm.Width > wantW+3 {
		t.Errorf("Width = %d, want about %d", bm.Width, wantW)
	}
	m := face.Metrics()
	wantH := int(math.Ceil(m.Ascent + m.Descent))
	if bm.Height < wantH-1 || bm.Height > wantH+1 {
		t.Errorf("Height = %d, want about %d", bm.Height, wantH)
	}

	if countDark(bm) == 0 {
		t.Error("no glyph pixels below threshold")
	}
}

func TestRasterizeBackgroundIsWhite(t *testing.T) {
	bm, err := Rasterize(loadTestFont(t).Face(16), "A")
	if err != nil {
		t.Fatal(err)
	}
	// The top-left corner lies above the cap height of 'A'.
	r, g, b := bm.RGB(0, 0)
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("corner pixel = (%d, %d, %d), want white", r, g, b)
	}
	// Glyph pixels are grey: all channels equal.
	for i := 0; i < len(bm.Pix); i += 3 {
		if bm.Pix[i] != bm.Pix[i+1] || bm.Pix[i] != bm.Pix[i+2] {
			t.Fatalf("pixel %d is not grey: %v", i/3, bm.Pix[i:i+3])
		}
	}
}

func TestRasterizeWhitespace(t *testing.T) {
	face := loadTestFont(t).Face(16)

	for _, s := range []string{" ", "   "} {
		bm, err := Rasterize(face, s)
		if err != nil {
			t.Fatalf("Rasterize(%q) error = %v", s, err)
		}
		if n := countDark(bm); n != 0 {
			t.Errorf("Rasterize(%q) has %d dark pixels, want 0", s, n)
		}
	}

	bm, err := Rasterize(face, "")
	if err != nil {
		t.Fatalf("Rasterize(\"\") error = %v", err)
	}
	if !bm.Empty() {
		t.Errorf("Rasterize(\"\") = %dx%d, want empty", bm.Width, bm.Height)
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	face := loadTestFont(t).Face(16)
	a, err := Rasterize(face, "idx: 7 | file: x.ply")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Rasterize(face, "idx: 7 | file: x.ply")
	if err != nil {
		t.Fatal(err)
	}
	if a.Width != b.Width || a.Height != b.Height || !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Rasterize is not deterministic")
	}
}

func TestRasterizeErrors(t *testing.T) {
	source := loadTestFont(t)

	tests := []struct {
		name string
		face Face
		want error
	}{
		{"nil face", nil, errNotRasterizable},
		{"zero size", source.Face(0), ErrInvalidSize},
		{"negative size", source.Face(-4), ErrInvalidSize},
		{"NaN size", source.Face(math.NaN()), ErrInvalidSize},
		{"zero dpi", source.Face(12, WithDPI(0)), ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rasterize(tt.face, "A")
			if !errors.Is(err, tt.want) {
				t.Errorf("Rasterize() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRasterizeClosedSource(t *testing.T) {
	source, err := NewFontSource(loadTestFont(t).data)
	if err != nil {
		t.Fatal(err)
	}
	face := source.Face(12)
	_ = source.Close()

	if _, err := Rasterize(face, "A"); err == nil {
		t.Error("Rasterize() on closed source succeeded")
	}
}

func TestBitmapImage(t *testing.T) {
	bm := NewBitmap(2, 1)
	bm.Pix[3], bm.Pix[4], bm.Pix[5] = 10, 20, 30

	img := bm.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Image bounds = %v", img.Bounds())
	}
	c := img.RGBAAt(1, 0)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("pixel (1,0) = %v", c)
	}
	if c := img.RGBAAt(0, 0); c.R != 255 {
		t.Errorf("pixel (0,0) = %v, want white", c)
	}

	if empty := NewBitmap(-1, 3); !empty.Empty() || len(empty.Pix) != 0 {
		t.Errorf("NewBitmap(-1, 3) = %+v", empty)
	}
}
