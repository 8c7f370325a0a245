package text

import (
	"image"
	"image/color"
)

// Bitmap is an RGB image stored row-major, three bytes per pixel.
// Row 0 is the top of the rendered text.
type Bitmap struct {
	Width, Height int
	Pix           []uint8
}

// NewBitmap returns a white bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pix := make([]uint8, width*height*3)
	for i := range pix {
		pix[i] = 0xff
	}
	return &Bitmap{Width: width, Height: height, Pix: pix}
}

// RGB returns the color of the pixel at (row, col).
func (bm *Bitmap) RGB(row, col int) (r, g, b uint8) {
	i := (row*bm.Width + col) * 3
	return bm.Pix[i], bm.Pix[i+1], bm.Pix[i+2]
}

// Empty reports whether the bitmap has no pixels.
func (bm *Bitmap) Empty() bool {
	return bm.Width == 0 || bm.Height == 0
}

// Image converts the bitmap to an *image.RGBA, e.g. for writing a PNG.
func (bm *Bitmap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bm.Width, bm.Height))
	for row := 0; row < bm.Height; row++ {
		for col := 0; col < bm.Width; col++ {
			r, g, b := bm.RGB(row, col)
			img.SetRGBA(col, row, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// bitmapFromRGBA drops the alpha channel of img.
func bitmapFromRGBA(img *image.RGBA) *Bitmap {
	bounds := img.Bounds()
	b := &Bitmap{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]uint8, bounds.Dx()*bounds.Dy()*3),
	}
	for row := 0; row < b.Height; row++ {
		src := img.Pix[row*img.Stride : row*img.Stride+b.Width*4]
		dst := b.Pix[row*b.Width*3 : (row+1)*b.Width*3]
		for col := 0; col < b.Width; col++ {
			dst[col*3] = src[col*4]
			dst[col*3+1] = src[col*4+1]
			dst[col*3+2] = src[col*4+2]
		}
	}
	return b
}
