// Package text resolves fonts and rasterizes strings to RGB bitmaps.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF/TTC files)
//   - Face: lightweight font instance at a specific size
//   - ParsedFont: font tables parsed with golang.org/x/image/font/sfnt
//
// # Example usage
//
//	source, err := text.ResolveFontSource("OpenSans-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	bm, err := text.Rasterize(source.Face(16), "idx: 3 | file: frame3.ply")
//
// Font descriptors may name a builtin Go font, a font file, or an installed
// font; see ResolveFontSource. Installed fonts are discovered with
// github.com/go-text/typesetting/fontscan.
package text
