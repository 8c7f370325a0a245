package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when a font descriptor matches no builtin
	// font, no file and no installed system font.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrInvalidSize is returned when a face size is not a positive number.
	ErrInvalidSize = errors.New("text: font size must be positive")
)
