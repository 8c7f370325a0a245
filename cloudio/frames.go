package cloudio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gogpu/pcview"
)

// ListFrames returns the names of the regular files in dir that end with
// ext, sorted by name. Names are relative to dir. An empty result is
// reported as ErrNoFrames.
func ListFrames(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cloudio: reading frame directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s with extension %q", ErrNoFrames, dir, ext)
	}
	sort.Strings(names)

	pcview.Logger().Info("cloudio: frames listed", "dir", dir, "ext", ext, "count", len(names))
	return names, nil
}

// MatchesExt reports whether name would be listed by ListFrames for ext.
func MatchesExt(name, ext string) bool {
	return strings.HasSuffix(filepath.Base(name), ext)
}
