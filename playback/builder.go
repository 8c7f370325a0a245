package playback

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gogpu/pcview"
	"github.com/gogpu/pcview/cloudio"
	"github.com/gogpu/pcview/internal/cache"
)

// FrameCacheSize is the number of built frames a Builder keeps.
const FrameCacheSize = 32

// ErrNoFrames is returned when the builder has no frames to build.
var ErrNoFrames = errors.New("playback: no frames")

// Frame is one annotated point cloud ready for rendering.
type Frame struct {
	// Index is the frame's position in the listing.
	Index int
	// Name is the frame's file name.
	Name string
	// Label is the text burned into Cloud.
	Label string
	// Bounds are the bounds of the frame before the label was added.
	Bounds pcview.Box3
	// Cloud holds the frame's points followed by the label's points.
	Cloud *pcview.PointCloud
}

// Builder loads frames from a directory and labels them.
type Builder struct {
	dir       string
	projector *pcview.Projector
	load      func(path string) (*pcview.PointCloud, error)
	frames    *cache.Cache[frameKey, *Frame]

	mu    sync.RWMutex
	names []string
}

// NewBuilder returns a builder over the named files in dir.
func NewBuilder(dir string, names []string, projector *pcview.Projector) *Builder {
	b := &Builder{
		dir:       dir,
		projector: projector,
		load:      cloudio.Load,
		frames:    cache.New[frameKey, *Frame](FrameCacheSize),
	}
	b.SetFrames(names)
	return b
}

// SetFrames replaces the frame list.
func (b *Builder) SetFrames(names []string) {
	cp := make([]string, len(names))
	copy(cp, names)

	b.mu.Lock()
	b.names = cp
	b.mu.Unlock()
}

// Len returns the number of frames.
func (b *Builder) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.names)
}

// Name returns the file name of frame i modulo Len.
func (b *Builder) Name(i int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.names) == 0 {
		return "", ErrNoFrames
	}
	return b.names[mod(i, len(b.names))], nil
}

// frameKey identifies one version of a frame file at one position.
type frameKey struct {
	index   int
	name    string
	size    int64
	modTime time.Time
}

// Build loads frame i modulo Len and adds its label. Frames are cached
// until their file changes; callers must not modify the returned frame.
func (b *Builder) Build(i int) (*Frame, error) {
	b.mu.RLock()
	n := len(b.names)
	if n == 0 {
		b.mu.RUnlock()
		return nil, ErrNoFrames
	}
	i = mod(i, n)
	name := b.names[i]
	b.mu.RUnlock()

	path := filepath.Join(b.dir, name)
	var key frameKey
	cached := false
	if fi, err := os.Stat(path); err == nil {
		key = frameKey{index: i, name: name, size: fi.Size(), modTime: fi.ModTime()}
		cached = true
		if f, ok := b.frames.Get(key); ok {
			return f, nil
		}
	}

	cloud, err := b.load(path)
	if err != nil {
		return nil, err
	}

	bounds := cloud.Bounds()
	label := pcview.LabelText(i, name)
	labelCloud, err := b.projector.Project(label, pcview.LabelAnchor(bounds))
	if err != nil {
		return nil, fmt.Errorf("playback: labeling %s: %w", name, err)
	}

	pcview.Logger().Debug("playback: frame built",
		"index", i,
		"name", name,
		"points", cloud.Len(),
		"labelPoints", labelCloud.Len())

	f := &Frame{
		Index:  i,
		Name:   name,
		Label:  label,
		Bounds: bounds,
		Cloud:  pcview.Concat(cloud, labelCloud),
	}
	if cached {
		b.frames.Set(key, f)
	}
	return f, nil
}

// CacheStats reports how often Build reused a frame.
func (b *Builder) CacheStats() cache.Stats {
	return b.frames.Stats()
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
