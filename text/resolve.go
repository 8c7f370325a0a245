package text

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFont is the descriptor used when none is given.
const DefaultFont = "goregular"

// builtinFonts are always available, independent of installed fonts.
var builtinFonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gobold":    gobold.TTF,
	"gomono":    gomono.TTF,
}

// BuiltinFonts returns the names of the embedded fonts.
func BuiltinFonts() []string {
	return []string{"gobold", "gomono", "goregular"}
}

// systemFont is one installed font as seen by the resolver.
type systemFont struct {
	family string
	file   string
	index  int
}

// systemFonts lists installed fonts. Replaced in tests.
var systemFonts = func() ([]systemFont, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	footprints, err := fontscan.SystemFonts(nil, cacheDir)
	if err != nil {
		return nil, err
	}
	fonts := make([]systemFont, 0, len(footprints))
	for _, fp := range footprints {
		fonts = append(fonts, systemFont{
			family: fp.Family,
			file:   fp.Location.File,
			index:  int(fp.Location.Index),
		})
	}
	return fonts, nil
}

// ResolveFontSource loads the font named by descriptor.
//
// The descriptor is tried, in order, as:
//   - a builtin font name ("goregular", "gobold", "gomono"), case-insensitive
//   - a path to a TTF, OTF or TTC file
//   - an installed font, matched by family name ("Open Sans") or by file
//     name with or without extension ("OpenSans-Regular.ttf")
//
// An empty descriptor selects DefaultFont. A descriptor that matches nothing
// returns an error wrapping ErrFontNotFound.
func ResolveFontSource(descriptor string, opts ...SourceOption) (*FontSource, error) {
	d := strings.TrimSpace(descriptor)
	if d == "" {
		d = DefaultFont
	}

	if data, ok := builtinFonts[strings.ToLower(d)]; ok {
		s, err := NewFontSource(data, opts...)
		if err != nil {
			return nil, err
		}
		s.origin = strings.ToLower(d)
		return s, nil
	}

	if info, err := os.Stat(d); err == nil && !info.IsDir() {
		return NewFontSourceFromFile(d, opts...)
	}

	fonts, err := systemFonts()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: scanning system fonts: %v", ErrFontNotFound, descriptor, err)
	}
	if sf, ok := matchSystemFont(fonts, d); ok {
		return NewFontSourceFromFile(sf.file, append(opts, WithCollectionIndex(sf.index))...)
	}
	return nil, fmt.Errorf("%w: %q", ErrFontNotFound, descriptor)
}

// matchSystemFont prefers a file name match over a family match, since a
// family usually spans several files (bold, italic, ...).
func matchSystemFont(fonts []systemFont, name string) (systemFont, bool) {
	for _, f := range fonts {
		base := filepath.Base(f.file)
		if strings.EqualFold(base, name) ||
			strings.EqualFold(strings.TrimSuffix(base, filepath.Ext(base)), name) {
			return f, true
		}
	}

	var best systemFont
	found := false
	for _, f := range fonts {
		if !strings.EqualFold(f.family, name) {
			continue
		}
		// Among a family, pick a regular face when one is recognizable.
		if !found || (isRegularFile(f.file) && !isRegularFile(best.file)) {
			best, found = f, true
		}
	}
	return best, found
}

func isRegularFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if strings.Contains(base, "regular") {
		return true
	}
	for _, style := range []string{"bold", "italic", "oblique", "light", "thin", "black", "medium"} {
		if strings.Contains(base, style) {
			return false
		}
	}
	return true
}
