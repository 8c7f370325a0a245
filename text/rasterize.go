package text

import (
	"errors"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// errNotRasterizable is returned for faces whose parser has no rasterizer.
var errNotRasterizable = errors.New("text: face cannot be rasterized")

// Rasterize renders s as black glyphs on a white background.
//
// The bitmap is exactly as wide as the text advance and as tall as the
// face's ascent plus descent, with the baseline at the ascent. Glyph pixels
// are dark and anti-aliased edges are grey, so callers can separate glyph
// from background with a threshold on any channel.
//
// An empty string or one without visible glyphs yields a bitmap that is
// entirely white (possibly zero-sized); this is not an error.
func Rasterize(face Face, s string) (*Bitmap, error) {
	sf, ok := face.(*sourceFace)
	if !ok || sf == nil {
		return nil, errNotRasterizable
	}
	if !(sf.size > 0) || !(sf.config.dpi > 0) {
		return nil, ErrInvalidSize
	}

	xparsed, ok := sf.source.Parsed().(*ximageParsedFont)
	if !ok {
		return nil, errNotRasterizable
	}

	otFace, err := opentype.NewFace(xparsed.font, &opentype.FaceOptions{
		Size:    sf.size,
		DPI:     sf.config.dpi,
		Hinting: mapHinting(sf.config.hinting),
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = otFace.Close()
	}()

	metrics := otFace.Metrics()
	width := font.MeasureString(otFace, s).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width <= 0 || height <= 0 {
		return NewBitmap(0, 0), nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: otFace,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(s)

	return bitmapFromRGBA(img), nil
}
