package cloudio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/pcview"
)

// Decoder reads one point cloud from r.
type Decoder func(r io.Reader) (*pcview.PointCloud, error)

var (
	formatsMu sync.RWMutex
	formats   = map[string]Decoder{
		".ply": DecodePLY,
		".pcd": DecodePCD,
		".xyz": DecodeXYZ,
	}
)

// RegisterFormat registers a decoder for a file extension such as ".bin".
// The extension is matched case-insensitively.
func RegisterFormat(ext string, dec Decoder) {
	formatsMu.Lock()
	defer formatsMu.Unlock()
	formats[strings.ToLower(ext)] = dec
}

// DecoderFor returns the decoder registered for path's extension.
func DecoderFor(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	formatsMu.RLock()
	dec, ok := formats[ext]
	formatsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return dec, nil
}

// Load decodes the point cloud stored at path.
// The returned cloud always has one color per point.
func Load(path string) (*pcview.PointCloud, error) {
	dec, err := DecoderFor(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- frame path comes from the listed frame directory
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cloudio: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	pc, err := dec(f)
	if err != nil {
		return nil, fmt.Errorf("cloudio: decoding %s: %w", filepath.Base(path), err)
	}
	fillColors(pc)

	pcview.Logger().Debug("cloudio: frame loaded", "path", path, "points", pc.Len())
	return pc, nil
}

// fillColors pads or trims Colors to match Points, using pcview.Gray.
func fillColors(pc *pcview.PointCloud) {
	switch {
	case len(pc.Colors) > len(pc.Points):
		pc.Colors = pc.Colors[:len(pc.Points)]
	case len(pc.Colors) < len(pc.Points):
		for len(pc.Colors) < len(pc.Points) {
			pc.Colors = append(pc.Colors, pcview.Gray)
		}
	}
}

// normalizeColors rescales 0-255 colors to [0, 1] when any channel exceeds 1.
func normalizeColors(colors []pcview.Color3) {
	for _, c := range colors {
		if c.R > 1 || c.G > 1 || c.B > 1 {
			for i := range colors {
				colors[i] = colors[i].Scale(1.0 / 255)
			}
			return
		}
	}
}
