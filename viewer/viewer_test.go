package viewer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/pcview"
	"github.com/gogpu/pcview/playback"
)

func newTestViewer(t *testing.T, opts ...Option) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	opts = append([]Option{WithScreen(s), WithWindowSize(40*cellWidthPx, 12*cellHeightPx)}, opts...)
	v, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = v.Close() })
	return v, s
}

func cellAt(s tcell.SimulationScreen, x, y int) (rune, tcell.Color) {
	r, _, style, _ := s.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return r, fg
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

// nextEvent returns the next event that is not a Redraw.
func nextEvent(t *testing.T, v *Viewer) playback.Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-v.Events():
			if !ok {
				t.Fatal("event channel closed")
			}
			if ev.Kind != playback.Redraw {
				return ev
			}
		case <-timeout:
			t.Fatal("timed out waiting for an event")
		}
	}
}

func TestRenderPoint(t *testing.T) {
	v, s := newTestViewer(t)
	cloud := pcview.NewPointCloud(0)
	cloud.Append(pcview.V3(5, 5, 5), pcview.RGB(1, 0, 0))

	f := &playback.Frame{Index: 3, Name: "x.ply", Label: "idx: 3 | file: x.ply", Cloud: cloud}
	if err := v.Render(f); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	r, fg := cellAt(s, 20, 5)
	if r != PointRune {
		t.Errorf("center cell = %q, want %q", r, PointRune)
	}
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("center color = %v, want red", fg)
	}
	if got := rowText(s, 11); !strings.HasPrefix(got, "idx: 3 | file: x.ply | 1 points") {
		t.Errorf("status line = %q", got)
	}
	if v.Camera().Center != pcview.V3(5, 5, 5) {
		t.Errorf("camera not fitted: %v", v.Camera().Center)
	}
}

func TestRenderNearestPointWins(t *testing.T) {
	v, s := newTestViewer(t)
	cloud := pcview.NewPointCloud(0)
	cloud.Append(pcview.V3(0, 0, -1), pcview.RGB(1, 0, 0))
	cloud.Append(pcview.V3(0, 0, 1), pcview.RGB(0, 0, 1))
	cloud.Append(pcview.V3(0, 0, -0.5), pcview.RGB(0, 1, 0))

	if err := v.Render(&playback.Frame{Cloud: cloud}); err != nil {
		t.Fatal(err)
	}
	if _, fg := cellAt(s, 20, 5); fg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("center color = %v, want blue", fg)
	}
}

func TestRenderNil(t *testing.T) {
	v, _ := newTestViewer(t)
	if err := v.Render(nil); err != nil {
		t.Errorf("Render(nil) error = %v", err)
	}
	if err := v.Render(&playback.Frame{}); err != nil {
		t.Errorf("Render(no cloud) error = %v", err)
	}
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want playback.Event
	}{
		{"space", tcell.KeyRune, ' ', playback.Event{Kind: playback.KeyDown, Key: playback.AdvanceKey}},
		{"other rune", tcell.KeyRune, 'x', playback.Event{Kind: playback.KeyDown, Key: 'x'}},
		{"q", tcell.KeyRune, 'q', playback.Event{Kind: playback.Quit}},
		{"escape", tcell.KeyEscape, 0, playback.Event{Kind: playback.Quit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, playback.Event{Kind: playback.Quit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, s := newTestViewer(t)
			s.InjectKey(tt.key, tt.r, tcell.ModNone)
			if got := nextEvent(t, v); got != tt.want {
				t.Errorf("event = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCameraKeys(t *testing.T) {
	v, s := newTestViewer(t)
	start := v.Camera()

	s.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	if ev := nextEvent(t, v); ev.Key != 'x' {
		t.Fatalf("event = %+v, want x", ev)
	}

	c := v.Camera()
	if c.Yaw != start.Yaw+RotateStep || c.Pitch != start.Pitch-RotateStep {
		t.Errorf("yaw, pitch = %v, %v", c.Yaw, c.Pitch)
	}
	if c.Zoom != start.Zoom*ZoomStep {
		t.Errorf("zoom = %v, want %v", c.Zoom, start.Zoom*ZoomStep)
	}

	s.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	nextEvent(t, v)
	if got := v.Camera(); got != start {
		t.Errorf("camera after reset = %+v, want %+v", got, start)
	}
}

func TestSaveViewKey(t *testing.T) {
	dir := t.TempDir()
	v, s := newTestViewer(t, WithSaveDir(dir))
	v.now = func() time.Time { return time.Date(2021, 6, 29, 14, 56, 27, 0, time.UTC) }

	s.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	nextEvent(t, v)

	path := filepath.Join(dir, "ScreenCamera_2021-06-29-14-56-27.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("view file not written: %v", err)
	}
	c, err := LoadCamera(path)
	if err != nil {
		t.Fatal(err)
	}
	if !c.View().Approx(v.Camera().View(), 1e-12) {
		t.Error("saved view differs from the viewer camera")
	}
}

func TestCloseEndsEvents(t *testing.T) {
	v, _ := newTestViewer(t)
	if err := v.Close(); err != nil {
		t.Fatal(err)
	}
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-v.Events():
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("events not closed after Close")
		}
	}
}

func TestViewerDrivesPlayer(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.xyz", "b.xyz"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("0 0 0 255 0 0\n1 1 1 0 255 0\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	proj, err := pcview.NewProjector("goregular", 12)
	if err != nil {
		t.Fatal(err)
	}

	v, s := newTestViewer(t)
	p := playback.NewPlayer(playback.NewBuilder(dir, []string{"a.xyz", "b.xyz"}, proj), v,
		playback.WithInput(v), playback.WithTick(time.Millisecond))

	done := make(chan error, 1)
	go func() { done <- p.RunKeys(t.Context()) }()

	s.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	deadline := time.Now().Add(5 * time.Second)
	for !strings.HasPrefix(rowText(s, 11), "idx: 1 | file: b.xyz") {
		if time.Now().After(deadline) {
			t.Fatalf("status line = %q, want frame 1", rowText(s, 11))
		}
		time.Sleep(5 * time.Millisecond)
	}
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := <-done; err != nil {
		t.Fatalf("RunKeys() error = %v", err)
	}
	if st := p.State(); st.Index != 1 {
		t.Errorf("state index = %d, want 1", st.Index)
	}
}
