package term

import (
	"testing"
	"time"

	"github.com/pixeldeck/arcade/internal/core"
)

func newTestKeys(quit func()) (*Keys, *time.Time) {
	k := NewKeys(quit)
	now := time.Unix(1000, 0)
	k.now = func() time.Time { return now }
	return k, &now
}

func TestKeysHoldWindow(t *testing.T) {
	k, now := newTestKeys(nil)

	k.Feed([]byte{'a'})
	if !k.Pressed(core.ButtonLeft) {
		t.Fatal("left should be held right after the key event")
	}

	// Still inside the window.
	*now = now.Add(holdWindow)
	if !k.Pressed(core.ButtonLeft) {
		t.Error("left should still be held at the window edge")
	}

	// Past the window: released.
	*now = now.Add(time.Millisecond)
	if k.Pressed(core.ButtonLeft) {
		t.Error("left should be released after the window expires")
	}

	// Auto-repeat refreshes the window.
	k.Feed([]byte{'a'})
	if !k.Pressed(core.ButtonLeft) {
		t.Error("a repeat event should re-press the button")
	}
}

func TestKeysBindings(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  core.Button
	}{
		{"a steers left", []byte{'a'}, core.ButtonLeft},
		{"d steers right", []byte{'d'}, core.ButtonRight},
		{"left arrow", []byte{0x1b, '[', 'D'}, core.ButtonLeft},
		{"right arrow", []byte{0x1b, '[', 'C'}, core.ButtonRight},
		{"space is ok", []byte{' '}, core.ButtonOK},
		{"enter is exe", []byte{'\r'}, core.ButtonEXE},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, _ := newTestKeys(nil)
			k.Feed(tc.input)
			if !k.Pressed(tc.want) {
				t.Errorf("%v should press %v", tc.input, tc.want)
			}
		})
	}
}

func TestKeysQuit(t *testing.T) {
	quits := 0
	k, _ := newTestKeys(func() { quits++ })

	k.Feed([]byte{'q'})
	k.Feed([]byte{0x03})
	if quits != 2 {
		t.Errorf("quit invoked %d times, want 2", quits)
	}
}

func TestKeysMixedChunk(t *testing.T) {
	// A single read can carry several events; all of them must land.
	k, _ := newTestKeys(nil)
	k.Feed([]byte{0x1b, '[', 'C', ' ', 'a'})

	for _, b := range []core.Button{core.ButtonRight, core.ButtonOK, core.ButtonLeft} {
		if !k.Pressed(b) {
			t.Errorf("button %v not pressed after mixed chunk", b)
		}
	}
}
