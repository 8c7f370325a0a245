package playback

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/pcview"
	"github.com/gogpu/pcview/cloudio"
)

// Watcher reports the frame list of a directory whenever frame files are
// added, removed or renamed.
type Watcher struct {
	dir, ext string
	fsw      *fsnotify.Watcher
	changes  chan []string
	done     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWatcher starts watching dir for files ending in ext.
func NewWatcher(dir, ext string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("playback: creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("playback: watching %s: %w", dir, err)
	}

	w := &Watcher{
		dir:     dir,
		ext:     ext,
		fsw:     fsw,
		changes: make(chan []string, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes delivers the latest frame list. Only the newest list is kept
// when the reader falls behind.
func (w *Watcher) Changes() <-chan []string {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			names, err := cloudio.ListFrames(w.dir, w.ext)
			if err != nil {
				if !errors.Is(err, cloudio.ErrNoFrames) {
					pcview.Logger().Warn("playback: rescanning frames", "err", err)
				}
				continue
			}
			w.publish(names)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			pcview.Logger().Warn("playback: watcher error", "err", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return cloudio.MatchesExt(ev.Name, w.ext)
}

// publish replaces any unread list with names.
func (w *Watcher) publish(names []string) {
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- names:
	default:
	}
}
