package playback

import "testing"

func TestStateHandleKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       Event
		consumed bool
		want     bool
	}{
		{"space down", Event{Kind: KeyDown, Key: AdvanceKey}, true, true},
		{"space up", Event{Kind: KeyUp, Key: AdvanceKey}, true, false},
		{"other key", Event{Kind: KeyDown, Key: 'x'}, false, false},
		{"quit", Event{Kind: Quit}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s State
			if got := s.HandleKey(tt.ev); got != tt.consumed {
				t.Errorf("HandleKey() = %v, want %v", got, tt.consumed)
			}
			if s.AdvanceRequested != tt.want {
				t.Errorf("AdvanceRequested = %v, want %v", s.AdvanceRequested, tt.want)
			}
		})
	}
}

func TestStateTick(t *testing.T) {
	var s State
	if s.Tick(3) {
		t.Fatal("Tick without request advanced")
	}

	want := []int{1, 2, 0, 1}
	for _, w := range want {
		s.HandleKey(Event{Kind: KeyDown, Key: AdvanceKey})
		if !s.Tick(3) {
			t.Fatal("Tick with request did not advance")
		}
		if s.Index != w {
			t.Errorf("Index = %d, want %d", s.Index, w)
		}
		if s.AdvanceRequested {
			t.Error("request not cleared after advancing")
		}
	}

	s.AdvanceRequested = true
	if s.Tick(0) {
		t.Error("Tick(0) advanced")
	}
}

func TestStateKeyUpCancelsRequest(t *testing.T) {
	var s State
	s.HandleKey(Event{Kind: KeyDown, Key: AdvanceKey})
	s.HandleKey(Event{Kind: KeyUp, Key: AdvanceKey})
	if s.Tick(5) {
		t.Error("released key still advanced")
	}
}

func TestStateClamp(t *testing.T) {
	s := State{Index: 7}
	s.Clamp(3)
	if s.Index != 2 {
		t.Errorf("Index = %d, want 2", s.Index)
	}
	s.Clamp(0)
	if s.Index != 2 {
		t.Errorf("Clamp(0) changed Index to %d", s.Index)
	}
}

func TestEventKindString(t *testing.T) {
	for k, want := range map[EventKind]string{KeyDown: "KeyDown", KeyUp: "KeyUp", Redraw: "Redraw", Quit: "Quit", EventKind(99): "Unknown"} {
		if got := k.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
