package viewer

import (
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/pcview"
	"github.com/gogpu/pcview/playback"
)

// PointRune is drawn for every visible point.
const PointRune = '•'

// Pixel size of a terminal cell, used to turn a window size in pixels
// into a cell grid.
const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

// Viewer is a terminal renderer and input source.
// Render may be called from one goroutine while events are read from
// another.
type Viewer struct {
	screen  tcell.Screen
	events  chan playback.Event
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
	saveDir string
	now     func() time.Time
	cols    int
	rows    int

	mu     sync.Mutex
	cam    Camera
	home   Camera
	frame  *playback.Frame
	fitted *playback.Frame
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithScreen uses s instead of the terminal, e.g. a tcell simulation
// screen. The viewer initializes and finalizes it.
func WithScreen(s tcell.Screen) Option {
	return func(v *Viewer) {
		v.screen = s
	}
}

// WithCamera sets the initial camera, typically from LoadCamera.
func WithCamera(c Camera) Option {
	return func(v *Viewer) {
		v.cam = c
	}
}

// WithWindowSize asks the terminal to resize to roughly width x height
// pixels. Terminals that do not support resizing ignore it.
func WithWindowSize(width, height int) Option {
	return func(v *Viewer) {
		if width > 0 && height > 0 {
			v.cols = max(1, width/cellWidthPx)
			v.rows = max(2, height/cellHeightPx)
		}
	}
}

// WithSaveDir sets where key p writes camera view files.
func WithSaveDir(dir string) Option {
	return func(v *Viewer) {
		v.saveDir = dir
	}
}

// New initializes the screen and starts reading its events.
func New(opts ...Option) (*Viewer, error) {
	v := &Viewer{
		events:  make(chan playback.Event),
		done:    make(chan struct{}),
		saveDir: ".",
		now:     time.Now,
		cam:     DefaultCamera(),
	}
	for _, opt := range opts {
		opt(v)
	}

	if v.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("viewer: creating screen: %w", err)
		}
		v.screen = s
	}
	if err := v.screen.Init(); err != nil {
		return nil, fmt.Errorf("viewer: initializing screen: %w", err)
	}
	if v.cols > 0 {
		v.screen.SetSize(v.cols, v.rows)
	}
	v.screen.Clear()
	v.home = v.cam

	v.wg.Add(1)
	go v.poll()
	return v, nil
}

// Events returns the input events. The channel is closed after Close.
func (v *Viewer) Events() <-chan playback.Event {
	return v.events
}

// Camera returns a copy of the current camera.
func (v *Viewer) Camera() Camera {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cam
}

// Close restores the terminal and stops the event reader.
func (v *Viewer) Close() error {
	v.once.Do(func() {
		close(v.done)
		v.screen.Fini()
		v.wg.Wait()
	})
	return nil
}

// Render draws f. The camera is fitted when f differs from the frame
// drawn last.
func (v *Viewer) Render(f *playback.Frame) error {
	if f == nil || f.Cloud == nil {
		return nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	cols, rows := v.screen.Size()
	viewRows := rows - 1
	if f != v.fitted {
		v.cam.Fit(f.Cloud.Bounds(), cols, viewRows)
		v.fitted = f
	}
	v.frame = f

	v.screen.Clear()
	if cols > 0 && viewRows > 0 {
		v.drawPoints(f.Cloud, cols, viewRows)
	}
	if rows > 0 {
		status := fmt.Sprintf("%s | %d points", f.Label, f.Cloud.Len())
		drawText(v.screen, 0, rows-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), status)
	}
	v.screen.Show()
	return nil
}

// drawPoints projects the cloud, keeping the nearest point per cell.
func (v *Viewer) drawPoints(pc *pcview.PointCloud, cols, rows int) {
	depth := make([]float64, cols*rows)
	for i := range depth {
		depth[i] = math.Inf(1)
	}

	view := v.cam.View()
	for i, p := range pc.Points {
		x, y, z := v.cam.project(view, p, cols, rows)
		if x < 0 || x >= cols || y < 0 || y >= rows {
			continue
		}
		k := y*cols + x
		if z >= depth[k] {
			continue
		}
		depth[k] = z
		r, g, b := pc.Colors[i].RGB255()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		v.screen.SetContent(x, y, PointRune, nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// poll forwards screen events until the screen is finalized.
func (v *Viewer) poll() {
	defer v.wg.Done()
	defer close(v.events)
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		out, ok := v.translate(ev)
		if !ok {
			continue
		}
		select {
		case v.events <- out:
		case <-v.done:
			return
		}
	}
}

// translate turns a screen event into a playback event, applying camera
// keys on the way.
func (v *Viewer) translate(ev tcell.Event) (playback.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return playback.Event{Kind: playback.Quit}, true
		case tcell.KeyLeft:
			return v.moveCamera(func(c *Camera) { c.Orbit(-RotateStep, 0) })
		case tcell.KeyRight:
			return v.moveCamera(func(c *Camera) { c.Orbit(RotateStep, 0) })
		case tcell.KeyUp:
			return v.moveCamera(func(c *Camera) { c.Orbit(0, -RotateStep) })
		case tcell.KeyDown:
			return v.moveCamera(func(c *Camera) { c.Orbit(0, RotateStep) })
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q', 'Q':
				return playback.Event{Kind: playback.Quit}, true
			case '+', '=':
				return v.moveCamera(func(c *Camera) { c.ZoomBy(ZoomStep) })
			case '-', '_':
				return v.moveCamera(func(c *Camera) { c.ZoomBy(1 / ZoomStep) })
			case 'r', 'R':
				return v.resetCamera()
			case 'p', 'P':
				v.saveCamera()
				return playback.Event{}, false
			default:
				return playback.Event{Kind: playback.KeyDown, Key: r}, true
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.mu.Lock()
		v.fitted = nil
		v.mu.Unlock()
		return playback.Event{Kind: playback.Redraw}, true
	}
	return playback.Event{}, false
}

func (v *Viewer) moveCamera(move func(*Camera)) (playback.Event, bool) {
	v.mu.Lock()
	move(&v.cam)
	v.mu.Unlock()
	return playback.Event{Kind: playback.Redraw}, true
}

func (v *Viewer) resetCamera() (playback.Event, bool) {
	v.mu.Lock()
	v.cam = v.home
	v.fitted = nil
	v.mu.Unlock()
	return playback.Event{Kind: playback.Redraw}, true
}

func (v *Viewer) saveCamera() {
	v.mu.Lock()
	c := v.cam
	v.mu.Unlock()

	path := filepath.Join(v.saveDir, "ScreenCamera_"+v.now().Format("2006-01-02-15-04-05")+".json")
	if err := SaveCamera(path, c); err != nil {
		pcview.Logger().Warn("viewer: saving camera view", "err", err)
		return
	}
	pcview.Logger().Info("viewer: camera view saved", "path", path)
}
