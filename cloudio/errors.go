package cloudio

import "errors"

var (
	// ErrNoFrames is returned when a directory holds no frame files.
	ErrNoFrames = errors.New("cloudio: no frames found")

	// ErrUnsupportedFormat is returned for file extensions without a decoder.
	ErrUnsupportedFormat = errors.New("cloudio: unsupported format")
)
