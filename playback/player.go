package playback

import (
	"context"
	"errors"
	"time"

	"github.com/gogpu/pcview"
)

const (
	// DefaultPause is the auto-play delay between frames.
	DefaultPause = 200 * time.Millisecond

	// DefaultTick is how often key-driven playback checks for an
	// advance request.
	DefaultTick = time.Second / 30
)

// Player drives a Renderer through the frames of a Builder.
// A Player is not safe for concurrent use; run one loop at a time.
type Player struct {
	builder  *Builder
	renderer Renderer
	input    Input
	watcher  *Watcher
	pause    time.Duration
	tick     time.Duration
	loop     bool

	state State
	// current is the last frame rendered, kept for Redraw.
	current *Frame
}

// Option configures a Player.
type Option func(*Player)

// WithInput sets the event source. Without one, RunKeys never advances
// and playback ends only when the context is cancelled.
func WithInput(in Input) Option {
	return func(p *Player) {
		p.input = in
	}
}

// WithPause sets the auto-play delay between frames.
func WithPause(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.pause = d
		}
	}
}

// WithTick sets how often key-driven playback polls the advance request.
func WithTick(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.tick = d
		}
	}
}

// WithLoop makes auto-play start over after the last frame.
func WithLoop(loop bool) Option {
	return func(p *Player) {
		p.loop = loop
	}
}

// WithWatcher refreshes the frame list from w while playing.
func WithWatcher(w *Watcher) Option {
	return func(p *Player) {
		p.watcher = w
	}
}

// NewPlayer creates a player. The builder must hold at least one frame
// when a Run method is called.
func NewPlayer(b *Builder, r Renderer, opts ...Option) *Player {
	p := &Player{
		builder:  b,
		renderer: r,
		pause:    DefaultPause,
		tick:     DefaultTick,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a copy of the playback state.
func (p *Player) State() State {
	return p.state
}

// RunAuto shows every frame in order, pausing between frames. It returns
// after the last frame has been shown for one pause, or never when
// looping; a Quit event or cancelled context stops it early.
func (p *Player) RunAuto(ctx context.Context) error {
	if p.builder.Len() == 0 {
		return ErrNoFrames
	}
	p.state = State{}
	if err := p.show(0); err != nil {
		return err
	}

	ticker := time.NewTicker(p.pause)
	defer ticker.Stop()

	events := p.events()
	changes := p.changes()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if stop, err := p.handleCommon(ev); stop || err != nil {
				return err
			}

		case names := <-changes:
			p.refresh(names)

		case <-ticker.C:
			next := p.state.Index + 1
			if next >= p.builder.Len() {
				if !p.loop {
					return nil
				}
				next = 0
			}
			p.state.Index = next
			if err := p.show(next); err != nil {
				return err
			}
		}
	}
}

// RunKeys shows the first frame, then moves one frame forward each time the
// advance key is pressed, wrapping after the last frame. It returns on a
// Quit event, when the input closes, or when ctx is cancelled.
func (p *Player) RunKeys(ctx context.Context) error {
	if p.builder.Len() == 0 {
		return ErrNoFrames
	}
	p.state = State{}
	if err := p.show(0); err != nil {
		return err
	}

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	events := p.events()
	changes := p.changes()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if p.state.HandleKey(ev) {
				continue
			}
			if stop, err := p.handleCommon(ev); stop || err != nil {
				return err
			}

		case names := <-changes:
			p.refresh(names)

		case <-ticker.C:
			if p.state.Tick(p.builder.Len()) {
				if err := p.show(p.state.Index); err != nil {
					return err
				}
			}
		}
	}
}

// handleCommon processes events shared by both modes.
func (p *Player) handleCommon(ev Event) (stop bool, err error) {
	switch ev.Kind {
	case Quit:
		return true, nil
	case Redraw:
		if p.current != nil {
			return false, p.renderer.Render(p.current)
		}
	}
	return false, nil
}

// show builds and renders frame i. Frames that fail to load are logged
// and skipped; configuration and render errors stop playback.
func (p *Player) show(i int) error {
	f, err := p.builder.Build(i)
	if err != nil {
		var cfgErr *pcview.ConfigurationError
		if errors.As(err, &cfgErr) || errors.Is(err, ErrNoFrames) {
			return err
		}
		pcview.Logger().Warn("playback: skipping frame", "index", i, "err", err)
		return nil
	}
	p.current = f
	return p.renderer.Render(f)
}

func (p *Player) refresh(names []string) {
	p.builder.SetFrames(names)
	p.state.Clamp(len(names))
	pcview.Logger().Info("playback: frame list changed", "count", len(names))
}

func (p *Player) events() <-chan Event {
	if p.input == nil {
		return nil
	}
	return p.input.Events()
}

func (p *Player) changes() <-chan []string {
	if p.watcher == nil {
		return nil
	}
	return p.watcher.Changes()
}
