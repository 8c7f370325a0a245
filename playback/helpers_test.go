package playback

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/pcview"
	"github.com/gogpu/pcview/text"
)

func testProjector(t *testing.T) *pcview.Projector {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return pcview.NewProjectorFromFace(src.Face(16))
}

// frameDir writes name -> content .xyz frames into a temp dir.
func frameDir(t *testing.T, frames map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range frames {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

var threeFrames = map[string]string{
	"a.xyz": "0 0 0\n1 1 1\n",
	"b.xyz": "0 0 0\n2 2 2\n",
	"c.xyz": "0 0 0\n3 3 3\n",
}

// recorder is a Renderer that remembers every frame.
type recorder struct {
	mu       sync.Mutex
	frames   []*Frame
	rendered chan *Frame
	err      error
}

func newRecorder() *recorder {
	return &recorder{rendered: make(chan *Frame, 64)}
}

func (r *recorder) Render(f *Frame) error {
	r.mu.Lock()
	r.frames = append(r.frames, f)
	r.mu.Unlock()
	select {
	case r.rendered <- f:
	default:
	}
	return r.err
}

func (r *recorder) indices() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.frames))
	for i, f := range r.frames {
		out[i] = f.Index
	}
	return out
}

// chanInput is an Input backed by a channel.
type chanInput chan Event

func (c chanInput) Events() <-chan Event { return c }
