package term

import (
	"io"
	"sync"
	"time"

	"github.com/pixeldeck/arcade/internal/core"
)

// holdWindow is how long a keypress counts as "held". Terminals report
// discrete key events, not key state, so a held key shows up as auto-repeat;
// the window bridges the gap between repeats. 150ms sits above the repeat
// interval of common terminal setups.
const holdWindow = 150 * time.Millisecond

// Keys converts a terminal byte stream into the level-polled button state the
// games expect. Safe for one reader goroutine feeding bytes while the frame
// loop polls.
type Keys struct {
	mu       sync.Mutex
	lastSeen map[core.Button]time.Time

	now  func() time.Time
	quit func()
}

// NewKeys creates a key source. quit is invoked when the player presses q or
// Ctrl-C; pass the run's context cancel so the frame loop unwinds cleanly.
func NewKeys(quit func()) *Keys {
	return &Keys{
		lastSeen: make(map[core.Button]time.Time),
		now:      time.Now,
		quit:     quit,
	}
}

// Pressed reports whether the button's last key event falls inside the hold
// window.
func (k *Keys) Pressed(b core.Button) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	seen, ok := k.lastSeen[b]
	return ok && k.now().Sub(seen) <= holdWindow
}

// ReadLoop reads raw input bytes until r fails, typically because the
// terminal or session closed. Run it on its own goroutine.
func (k *Keys) ReadLoop(r io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			k.Feed(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// Feed parses a chunk of raw terminal input. Arrow keys and a/d steer,
// space and enter launch, q and Ctrl-C quit.
func (k *Keys) Feed(p []byte) {
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case 0x1b:
			// CSI arrow sequences: ESC [ D (left), ESC [ C (right).
			if i+2 < len(p) && p[i+1] == '[' {
				switch p[i+2] {
				case 'D':
					k.press(core.ButtonLeft)
				case 'C':
					k.press(core.ButtonRight)
				}
				i += 2
			}
		case 'a', 'A':
			k.press(core.ButtonLeft)
		case 'd', 'D':
			k.press(core.ButtonRight)
		case ' ':
			k.press(core.ButtonOK)
		case '\r', '\n':
			k.press(core.ButtonEXE)
		case 'q', 'Q', 0x03:
			if k.quit != nil {
				k.quit()
			}
		}
	}
}

func (k *Keys) press(b core.Button) {
	k.mu.Lock()
	k.lastSeen[b] = k.now()
	k.mu.Unlock()
}
