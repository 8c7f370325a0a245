package playback

// State is the playback position shared by the key handler and the
// frame tick. Both run on the player goroutine, one event at a time.
type State struct {
	// Index is the frame currently shown.
	Index int

	// AdvanceRequested is set while the advance key is held and cleared
	// once the tick has moved to the next frame or the key is released.
	AdvanceRequested bool
}

// HandleKey updates the advance request from a key event.
// It reports whether the event was consumed.
func (s *State) HandleKey(ev Event) bool {
	if ev.Key != AdvanceKey {
		return false
	}
	switch ev.Kind {
	case KeyDown:
		s.AdvanceRequested = true
	case KeyUp:
		s.AdvanceRequested = false
	default:
		return false
	}
	return true
}

// Tick advances to the next of n frames, wrapping around, if an advance
// was requested. It reports whether the index changed.
func (s *State) Tick(n int) bool {
	if !s.AdvanceRequested || n <= 0 {
		return false
	}
	s.Index = (s.Index + 1) % n
	s.AdvanceRequested = false
	return true
}

// Clamp keeps Index valid after the frame count changed to n.
func (s *State) Clamp(n int) {
	if n <= 0 || s.Index < n {
		return
	}
	s.Index = n - 1
}
